package scoring

import (
	"fmt"

	"github.com/ntgiang/attt-survey-server/models"
)

// Tier phân hạng một điểm trung bình: dưới 2 là yếu, từ 2 đến dưới 3 là
// trung bình, từ 3 trở lên là tốt.
type Tier int

const (
	TierYeu Tier = iota
	TierTrungBinh
	TierTot
)

func TierFor(avg float64) Tier {
	switch {
	case avg < 2:
		return TierYeu
	case avg < 3:
		return TierTrungBinh
	default:
		return TierTot
	}
}

// nhanXetTheoPhanLoai: mỗi phân loại có 3 câu nhận xét theo hạng.
var nhanXetTheoPhanLoai = map[models.PhanLoai][3]string{
	models.PhanLoaiQuyChe: {
		"Quy chế hiện tại của tổ chức còn nhiều hạn chế và cần cải thiện để nâng cao hiệu quả hoạt động.",
		"Quy chế tổ chức ở mức chấp nhận được, nhưng vẫn còn nhiều điểm cần tối ưu để đảm bảo sự ổn định.",
		"Khảo sát đánh giá quy chế của tổ chức ở mức tốt, có nền tảng vững chắc cho hoạt động.",
	},
	models.PhanLoaiToChuc: {
		"Hiệu quả quản lý hiện tại chưa đáp ứng yêu cầu, cần có những biện pháp để cải thiện.",
		"Quản lý tổ chức đạt mức trung bình, nhưng vẫn có thể nâng cao quy trình hơn.",
		"Tổ chức đạt hiệu quả quản lý ở mức tốt, có thể đảm bảo phối hợp và điều hành hiệu quả.",
	},
	models.PhanLoaiNhanLuc: {
		"Chất lượng và số lượng nhân lực còn hạn chế, cần đầu tư và phát triển hơn.",
		"Nhân lực tổ chức ở mức trung bình, cần cải thiện thêm để đáp ứng nhu cầu phát triển.",
		"Khảo sát đánh giá nhân lực tổ chức ở mức cao, đáp ứng tốt yêu cầu chuyên môn và khối lượng công việc.",
	},
	models.PhanLoaiDauTu: {
		"Mức độ đầu tư vào tổ chức còn thấp, cần có sự gia tăng đáng kể để đáp ứng các mục tiêu dài hạn.",
		"Mức đầu tư của tổ chức ở mức trung bình, nhưng vẫn có khả năng tối ưu để phát triển bền vững.",
		"Mức độ đầu tư của tổ chức rất tốt, tạo điều kiện thuận lợi cho các hoạt động phát triển.",
	},
	models.PhanLoaiVanHanh: {
		"Hoạt động vận hành còn nhiều bất cập, cần tái cấu trúc và cải thiện để đạt hiệu quả cao.",
		"Vận hành tổ chức ở mức chấp nhận được, nhưng vẫn cần điều chỉnh để đạt được sự linh hoạt và hiệu quả.",
		"Tổ chức đang vận hành trơn tru, đảm bảo sự liên tục, hiệu quả và an toàn trong các hoạt động.",
	},
}

var nhanXetTongQuan = [3]string{
	"Nhìn chung, doanh nghiệp còn nhiều khía cạnh cần cải thiện, hiệu quả hoạt động và các yếu tố quan trọng đều ở mức kém.",
	"Tổng thể, doanh nghiệp đạt mức trung bình, mặc dù đã có một số khía cạnh ở mức tốt, tuy nhiên vẫn cần cải tiến nhiều hơn để đạt hiệu quả cao.",
	"Tổng thể, tổ chức đang hoạt động tốt trên nhiều mặt, có thể duy trì các kết quả tích cực và sự phát triển bền vững.",
}

// NhanXetPhanLoai trả về nhận xét cho một phân loại kèm điểm đã định dạng.
func NhanXetPhanLoai(p models.PhanLoai, avg float64) string {
	return fmt.Sprintf("%s: %.2f/4 điểm - %s", p, avg, nhanXetTheoPhanLoai[p][TierFor(avg)])
}

// NhanXetTongQuan trả về nhận xét tổng quan trên 5 khía cạnh.
func NhanXetTongQuan(overall float64) string {
	return fmt.Sprintf("%s Tổng điểm trung bình trên 5 khía cạnh: %.2f/4 điểm!", nhanXetTongQuan[TierFor(overall)], overall)
}

// NhanXet dựng đủ 6 dòng nhận xét (5 phân loại + tổng quan) cho một phiếu.
func NhanXet(avg [5]float64) []string {
	out := make([]string, 0, 6)
	for i, p := range models.PhanLoais {
		out = append(out, NhanXetPhanLoai(p, avg[i]))
	}
	out = append(out, NhanXetTongQuan(OverallAverage(avg)))
	return out
}
