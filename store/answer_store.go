package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ntgiang/attt-survey-server/models"
	"github.com/ntgiang/attt-survey-server/scoring"
)

// GetPhieu tra phiếu trả lời theo mã người khảo sát, câu trả lời theo
// thứ tự bộ câu hỏi.
func GetPhieu(db *gorm.DB, nguoiKhaoSatID string) (*models.PhieuTraLoi, error) {
	var phieu models.PhieuTraLoi
	err := db.
		Preload("CauTraLois", func(db *gorm.DB) *gorm.DB { return db.Order("thu_tu ASC") }).
		First(&phieu, "nguoi_khao_sat_id = ?", nguoiKhaoSatID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &phieu, nil
}

func ListPhieu(db *gorm.DB) ([]models.PhieuTraLoi, error) {
	var out []models.PhieuTraLoi
	err := db.
		Preload("CauTraLois", func(db *gorm.DB) *gorm.DB { return db.Order("thu_tu ASC") }).
		Find(&out).Error
	return out, err
}

// UpdateDiem ghi điểm cho đúng một câu trả lời. Điểm phải là một trong
// các lựa chọn của câu hỏi; phiếu đã hoàn thành hoặc mục kết thúc bị từ
// chối. Ghi cùng điểm hai lần không đổi trạng thái (idempotent).
func UpdateDiem(db *gorm.DB, nguoiKhaoSatID string, cauHoiID uint, diem int) error {
	phieu, err := GetPhieu(db, nguoiKhaoSatID)
	if err != nil {
		return err
	}
	if phieu.IsFinished {
		return ErrDaHoanThanh
	}

	q, err := GetCauHoi(db, cauHoiID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrCauHoiKhongHopLe
		}
		return err
	}
	if q.LaKetThuc {
		return ErrMucKetThuc
	}
	if !q.CoLuaChonDiem(diem) {
		return ErrDiemKhongHopLe
	}

	res := db.Model(&models.CauTraLoi{}).
		Where("phieu_tra_loi_id = ? AND cau_hoi_id = ?", phieu.ID, cauHoiID).
		Update("diem", diem)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// phiếu không chứa mục cho câu hỏi này
		var n int64
		db.Model(&models.CauTraLoi{}).
			Where("phieu_tra_loi_id = ? AND cau_hoi_id = ?", phieu.ID, cauHoiID).
			Count(&n)
		if n == 0 {
			return ErrCauHoiKhongHopLe
		}
	}
	return nil
}

// DanhDauHoanThanh chốt phiếu đúng một lần; gọi lại bị từ chối.
func DanhDauHoanThanh(db *gorm.DB, nguoiKhaoSatID string) error {
	phieu, err := GetPhieu(db, nguoiKhaoSatID)
	if err != nil {
		return err
	}
	if phieu.IsFinished {
		return ErrDaHoanThanh
	}
	return db.Model(phieu).Update("is_finished", true).Error
}

// ToggleBanned đảo cờ ẩn của phiếu và trả về trạng thái mới. Cờ này chỉ
// loại phiếu khỏi báo cáo tổng hợp, không xoá dữ liệu.
func ToggleBanned(db *gorm.DB, nguoiKhaoSatID string) (bool, error) {
	phieu, err := GetPhieu(db, nguoiKhaoSatID)
	if err != nil {
		return false, err
	}
	newState := !phieu.IsBanned
	if err := db.Model(phieu).Update("is_banned", newState).Error; err != nil {
		return false, err
	}
	return newState, nil
}

func DeletePhieu(db *gorm.DB, nguoiKhaoSatID string) error {
	phieu, err := GetPhieu(db, nguoiKhaoSatID)
	if err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("phieu_tra_loi_id = ?", phieu.ID).Delete(&models.CauTraLoi{}).Error; err != nil {
			return err
		}
		return tx.Delete(phieu).Error
	})
}

func CountFinished(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&models.PhieuTraLoi{}).Where("is_finished = ?", true).Count(&n).Error
	return n, err
}

func CountBanned(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&models.PhieuTraLoi{}).Where("is_banned = ?", true).Count(&n).Error
	return n, err
}

// ListEligibleSheets trả các phiếu đủ điều kiện thống kê (hoàn thành và
// không bị ẩn), đã bỏ mục kết thúc, kèm ngày tạo người khảo sát. Phiếu
// không tra được người khảo sát vẫn được trả về với NgayTao zero; các
// báo cáo có lọc ngày sẽ tự loại.
func ListEligibleSheets(db *gorm.DB) ([]scoring.Sheet, error) {
	var phieus []models.PhieuTraLoi
	err := db.
		Preload("CauTraLois", func(db *gorm.DB) *gorm.DB { return db.Order("thu_tu ASC") }).
		Where("is_finished = ? AND is_banned = ?", true, false).
		Find(&phieus).Error
	if err != nil {
		return nil, err
	}

	sheets := make([]scoring.Sheet, 0, len(phieus))
	for _, p := range phieus {
		s := scoring.Sheet{
			NguoiKhaoSatID: p.NguoiKhaoSatID,
			Answers:        scoring.TrimKetThuc(p.CauTraLois),
		}
		if nks, err := GetNguoiKhaoSat(db, p.NguoiKhaoSatID); err == nil {
			s.NgayTao = nks.NgayTao
		}
		sheets = append(sheets, s)
	}
	return sheets, nil
}
