package models

import "time"

// PhieuTraLoi là phiếu trả lời duy nhất của một người khảo sát (quan hệ 1:1).
// Mỗi mục trong bộ câu hỏi có đúng một CauTraLoi, khởi tạo điểm 0 theo thứ tự bộ câu hỏi.
type PhieuTraLoi struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	NguoiKhaoSatID string    `gorm:"size:36;uniqueIndex;not null" json:"nguoi_khao_sat_id"`
	IsFinished     bool      `gorm:"default:false" json:"is_finished"`
	IsBanned       bool      `gorm:"default:false" json:"is_banned"`
	NgayTao        time.Time `gorm:"autoCreateTime" json:"ngay_tao"`

	CauTraLois []CauTraLoi `gorm:"foreignKey:PhieuTraLoiID" json:"cau_tra_loi"`
}

func (PhieuTraLoi) TableName() string {
	return "phieu_tra_loi"
}
