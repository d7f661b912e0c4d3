package models

type LuaChon struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CauHoiID uint   `gorm:"index;not null" json:"cau_hoi_id"`
	NoiDung  string `gorm:"type:text;not null" json:"noi_dung"`
	Diem     int    `gorm:"not null" json:"diem"` // 0..4
	ThuTu    int    `gorm:"default:0" json:"thu_tu"`
}

func (LuaChon) TableName() string {
	return "lua_chon"
}
