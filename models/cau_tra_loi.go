package models

type CauTraLoi struct {
	ID            uint `gorm:"primaryKey;autoIncrement" json:"id"`
	PhieuTraLoiID uint `gorm:"index;not null" json:"phieu_tra_loi_id"`
	CauHoiID      uint `gorm:"not null" json:"cau_hoi_id"`
	Diem          int  `gorm:"default:0" json:"diem"`
	ThuTu         int  `gorm:"default:0" json:"thu_tu"` // trùng thứ tự bộ câu hỏi
}

func (CauTraLoi) TableName() string {
	return "cau_tra_loi"
}
