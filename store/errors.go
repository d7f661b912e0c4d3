package store

import "errors"

// Các lỗi nghiệp vụ để controller phân biệt mã trạng thái trả về.
var (
	ErrNotFound         = errors.New("không tìm thấy bản ghi")
	ErrDaHoanThanh      = errors.New("khảo sát đã hoàn thành, không thể thay đổi")
	ErrCauHoiKhongHopLe = errors.New("câu hỏi không thuộc bộ khảo sát")
	ErrDiemKhongHopLe   = errors.New("điểm không thuộc các lựa chọn của câu hỏi")
	ErrMucKetThuc       = errors.New("mục kết thúc không được chấm điểm")
)
