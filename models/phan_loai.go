package models

// PhanLoai là một trong 5 khía cạnh đánh giá cố định của bộ câu hỏi.
type PhanLoai string

const (
	PhanLoaiQuyChe  PhanLoai = "Quy chế"
	PhanLoaiToChuc  PhanLoai = "Tổ chức"
	PhanLoaiNhanLuc PhanLoai = "Nhân lực"
	PhanLoaiDauTu   PhanLoai = "Đầu tư"
	PhanLoaiVanHanh PhanLoai = "Vận hành"
)

// PhanLoais giữ thứ tự cố định dùng cho biểu đồ radar và mọi báo cáo.
var PhanLoais = [5]PhanLoai{
	PhanLoaiQuyChe,
	PhanLoaiToChuc,
	PhanLoaiNhanLuc,
	PhanLoaiDauTu,
	PhanLoaiVanHanh,
}

// Index trả về vị trí của phân loại trong PhanLoais, -1 nếu không khớp
// (mục kết thúc không có phân loại).
func (p PhanLoai) Index() int {
	for i, pl := range PhanLoais {
		if pl == p {
			return i
		}
	}
	return -1
}

func (p PhanLoai) Valid() bool {
	return p.Index() >= 0
}
