package models

type CauHoi struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ThuTu     int       `gorm:"uniqueIndex;not null" json:"thu_tu"`
	PhanLoai  PhanLoai  `gorm:"size:20;index" json:"phan_loai"` // rỗng với mục kết thúc
	NoiDung   string    `gorm:"type:text;not null" json:"noi_dung"`
	LaKetThuc bool      `gorm:"default:false" json:"la_ket_thuc"`
	LuaChons  []LuaChon `gorm:"foreignKey:CauHoiID" json:"lua_chon"`
}

func (CauHoi) TableName() string {
	return "cau_hoi"
}

// CoLuaChonDiem kiểm tra điểm có thuộc các lựa chọn của câu hỏi không.
func (q CauHoi) CoLuaChonDiem(diem int) bool {
	for _, lc := range q.LuaChons {
		if lc.Diem == diem {
			return true
		}
	}
	return false
}
