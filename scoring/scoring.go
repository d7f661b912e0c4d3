// Package scoring chấm điểm một phiếu trả lời và tổng hợp thống kê
// trên nhiều phiếu. Mọi hàm đều thuần, không chạm storage.
package scoring

import (
	"math"

	"github.com/ntgiang/attt-survey-server/models"
)

// Catalog tra cứu phân loại theo id câu hỏi.
type Catalog map[uint]models.PhanLoai

// BuildCatalog dựng bảng tra cứu từ bộ câu hỏi (mục kết thúc cho phân loại rỗng).
func BuildCatalog(qs []models.CauHoi) Catalog {
	c := make(Catalog, len(qs))
	for _, q := range qs {
		c[q.ID] = q.PhanLoai
	}
	return c
}

// TrimKetThuc bỏ mục kết thúc ở cuối phiếu. Mục này chỉ dùng để chốt
// khảo sát, không bao giờ được chấm điểm.
func TrimKetThuc(answers []models.CauTraLoi) []models.CauTraLoi {
	if len(answers) == 0 {
		return answers
	}
	return answers[:len(answers)-1]
}

// CategoryAverages tính điểm trung bình của 5 phân loại theo thứ tự
// models.PhanLoais. Phân loại không có câu trả lời nào trả về 0 (giữ
// nguyên cách phiếu đơn lẻ vẫn hiển thị trên biểu đồ radar).
// Câu trả lời không tra được câu hỏi trong bộ bị bỏ qua.
func CategoryAverages(answers []models.CauTraLoi, catalog Catalog) [5]float64 {
	var sum [5]float64
	var count [5]int
	for _, a := range answers {
		idx := catalog[a.CauHoiID].Index()
		if idx < 0 {
			continue
		}
		sum[idx] += float64(a.Diem)
		count[idx]++
	}

	var avg [5]float64
	for i := range sum {
		if count[i] > 0 {
			avg[i] = sum[i] / float64(count[i])
		}
	}
	return avg
}

// OverallAverage là trung bình cộng của 5 điểm phân loại, không trọng số
// theo số câu hỏi mỗi phân loại.
func OverallAverage(avg [5]float64) float64 {
	var total float64
	for _, v := range avg {
		total += v
	}
	return total / float64(len(avg))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
