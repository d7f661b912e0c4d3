package models

import "time"

type NguoiKhaoSat struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"` // UUID, cũng là mã khảo sát
	Email      string    `gorm:"size:100;index;not null" json:"email"`
	Ten        string    `gorm:"size:100;not null" json:"ten"`
	ChucVu     string    `gorm:"size:100" json:"chuc_vu"`
	TenToChuc  string    `gorm:"size:255" json:"ten_to_chuc"`
	LinhVuc    string    `gorm:"size:100" json:"linh_vuc"`
	SoNhanVien int       `gorm:"default:0" json:"so_nhan_vien"`
	NgayTao    time.Time `gorm:"autoCreateTime" json:"ngay_tao"`

	PhieuTraLoi *PhieuTraLoi `gorm:"foreignKey:NguoiKhaoSatID" json:"-"`
}

func (NguoiKhaoSat) TableName() string {
	return "nguoi_khao_sat"
}

// LinhVucs là 15 lĩnh vực hoạt động cố định người khảo sát chọn khi điền thông tin.
var LinhVucs = [15]string{
	"Công nghệ thông tin",
	"Tài chính - Ngân hàng",
	"Thương mại - Bán lẻ",
	"Sản xuất - Chế biến",
	"Xây dựng - Bất động sản",
	"Y tế - Dược phẩm",
	"Giáo dục - Đào tạo",
	"Du lịch - Nhà hàng - Khách sạn",
	"Vận tải - Logistics",
	"Nông nghiệp - Thủy sản",
	"Năng lượng - Môi trường",
	"Truyền thông - Quảng cáo",
	"Tư vấn - Dịch vụ pháp lý",
	"Thủ công mỹ nghệ",
	"Lĩnh vực khác",
}

func LinhVucHopLe(lv string) bool {
	for _, v := range LinhVucs {
		if v == lv {
			return true
		}
	}
	return false
}
