package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ntgiang/attt-survey-server/models"
)

// CreateWithPhieu tạo người khảo sát và phiếu trả lời toàn điểm 0 trong
// một transaction: hoặc cả hai bản ghi tồn tại, hoặc không bản ghi nào.
// Phiếu có đúng một câu trả lời cho mỗi mục của bộ câu hỏi, theo thứ tự bộ.
func CreateWithPhieu(db *gorm.DB, nks *models.NguoiKhaoSat, catalog []models.CauHoi) error {
	if nks.ID == "" {
		nks.ID = uuid.NewString()
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(nks).Error; err != nil {
			return err
		}

		phieu := models.PhieuTraLoi{NguoiKhaoSatID: nks.ID}
		for _, q := range catalog {
			phieu.CauTraLois = append(phieu.CauTraLois, models.CauTraLoi{
				CauHoiID: q.ID,
				Diem:     0,
				ThuTu:    q.ThuTu,
			})
		}
		return tx.Create(&phieu).Error
	})
}

func GetNguoiKhaoSat(db *gorm.DB, id string) (*models.NguoiKhaoSat, error) {
	var nks models.NguoiKhaoSat
	err := db.First(&nks, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &nks, nil
}

// UpdateNguoiKhaoSat sửa hồ sơ khi phiếu chưa hoàn thành. ID không đổi.
func UpdateNguoiKhaoSat(db *gorm.DB, id string, updates map[string]interface{}) error {
	if _, err := GetNguoiKhaoSat(db, id); err != nil {
		return err
	}

	var phieu models.PhieuTraLoi
	if err := db.First(&phieu, "nguoi_khao_sat_id = ?", id).Error; err == nil && phieu.IsFinished {
		return ErrDaHoanThanh
	}

	delete(updates, "id")
	return db.Model(&models.NguoiKhaoSat{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteNguoiKhaoSat xoá hồ sơ kèm phiếu trả lời (thao tác quản trị).
func DeleteNguoiKhaoSat(db *gorm.DB, id string) error {
	if _, err := GetNguoiKhaoSat(db, id); err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		var phieu models.PhieuTraLoi
		if err := tx.First(&phieu, "nguoi_khao_sat_id = ?", id).Error; err == nil {
			if err := tx.Where("phieu_tra_loi_id = ?", phieu.ID).Delete(&models.CauTraLoi{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&phieu).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.NguoiKhaoSat{}, "id = ?", id).Error
	})
}

func ListNguoiKhaoSat(db *gorm.DB) ([]models.NguoiKhaoSat, error) {
	var out []models.NguoiKhaoSat
	err := db.Order("ngay_tao DESC").Find(&out).Error
	return out, err
}

// ListByEmail tra các lần khảo sát cùng email để tự so sánh lịch sử.
func ListByEmail(db *gorm.DB, email string) ([]models.NguoiKhaoSat, error) {
	var out []models.NguoiKhaoSat
	err := db.Where("email = ?", email).Order("ngay_tao DESC").Find(&out).Error
	return out, err
}

func CountNguoiKhaoSat(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&models.NguoiKhaoSat{}).Count(&n).Error
	return n, err
}

// CountTrongNNgay đếm người khảo sát tạo trong n ngày gần nhất.
func CountTrongNNgay(db *gorm.DB, n int) (int64, error) {
	var count int64
	since := time.Now().AddDate(0, 0, -n)
	err := db.Model(&models.NguoiKhaoSat{}).Where("ngay_tao >= ?", since).Count(&count).Error
	return count, err
}
