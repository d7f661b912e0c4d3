package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ntgiang/attt-survey-server/models"
)

// Bộ câu hỏi chỉ đọc ở runtime; seed một lần lúc khởi động.

func ListCauHoi(db *gorm.DB) ([]models.CauHoi, error) {
	var qs []models.CauHoi
	err := db.
		Preload("LuaChons", func(db *gorm.DB) *gorm.DB { return db.Order("thu_tu ASC, id ASC") }).
		Order("thu_tu ASC").
		Find(&qs).Error
	return qs, err
}

func GetCauHoi(db *gorm.DB, id uint) (*models.CauHoi, error) {
	var q models.CauHoi
	err := db.
		Preload("LuaChons", func(db *gorm.DB) *gorm.DB { return db.Order("thu_tu ASC, id ASC") }).
		First(&q, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}
