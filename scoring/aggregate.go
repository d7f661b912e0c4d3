package scoring

import (
	"sort"
	"time"

	"github.com/ntgiang/attt-survey-server/models"
)

// Sheet là một phiếu đủ điều kiện thống kê (đã hoàn thành, không bị ẩn),
// câu trả lời đã bỏ mục kết thúc, kèm ngày tạo của người khảo sát để lọc
// theo khoảng thời gian. NgayTao zero nghĩa là không tra được người khảo
// sát; phiếu đó bị loại khỏi các báo cáo có lọc ngày.
type Sheet struct {
	NguoiKhaoSatID string
	NgayTao        time.Time
	Answers        []models.CauTraLoi
}

// FilterByDate giữ các phiếu có ngày tạo trong [start, end] (bao gồm cả
// hai đầu). start/end nil nghĩa là không chặn đầu đó. Khi có lọc, phiếu
// không có ngày tạo bị loại.
func FilterByDate(sheets []Sheet, start, end *time.Time) []Sheet {
	if start == nil && end == nil {
		return sheets
	}
	out := make([]Sheet, 0, len(sheets))
	for _, s := range sheets {
		if s.NgayTao.IsZero() {
			continue
		}
		if start != nil && s.NgayTao.Before(*start) {
			continue
		}
		if end != nil && s.NgayTao.After(*end) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// ScoreDistribution tính tỷ lệ phần trăm (làm tròn 1 chữ số) người chọn
// từng mức điểm cho một câu hỏi. Mẫu số là số phiếu có trả lời câu hỏi
// đó, không phải toàn bộ phiếu. Không có phiếu nào trả về map rỗng.
func ScoreDistribution(sheets []Sheet, cauHoiID uint) map[int]float64 {
	counts := map[int]int{}
	total := 0
	for _, s := range sheets {
		for _, a := range s.Answers {
			if a.CauHoiID == cauHoiID {
				counts[a.Diem]++
				total++
			}
		}
	}

	dist := make(map[int]float64, len(counts))
	if total == 0 {
		return dist
	}
	for diem, n := range counts {
		dist[diem] = round1(float64(n) * 100 / float64(total))
	}
	return dist
}

// AveragesByCategory gộp điểm của nhiều phiếu theo 5 phân loại. Khác với
// CategoryAverages cho phiếu đơn, phân loại không có quan sát nào trả về
// nil thay vì 0 để báo cáo phân biệt được "không có dữ liệu" với "toàn
// điểm 0". Giá trị làm tròn 2 chữ số.
func AveragesByCategory(sheets []Sheet, catalog Catalog) [5]*float64 {
	var sum [5]float64
	var count [5]int
	for _, s := range sheets {
		for _, a := range s.Answers {
			idx := catalog[a.CauHoiID].Index()
			if idx < 0 {
				continue
			}
			sum[idx] += float64(a.Diem)
			count[idx]++
		}
	}

	var avg [5]*float64
	for i := range sum {
		if count[i] > 0 {
			v := round2(sum[i] / float64(count[i]))
			avg[i] = &v
		}
	}
	return avg
}

// MeanScores tính điểm trung bình từng câu hỏi trên các phiếu đã lọc.
func MeanScores(sheets []Sheet) map[uint]float64 {
	sum := map[uint]float64{}
	count := map[uint]int{}
	for _, s := range sheets {
		for _, a := range s.Answers {
			sum[a.CauHoiID] += float64(a.Diem)
			count[a.CauHoiID]++
		}
	}
	mean := make(map[uint]float64, len(sum))
	for id, v := range sum {
		mean[id] = round2(v / float64(count[id]))
	}
	return mean
}

// SortOrder sắp thứ tự câu hỏi trong báo cáo.
type SortOrder string

const (
	SortOriginal SortOrder = "original" // theo thứ tự bộ câu hỏi
	SortAsc      SortOrder = "asc"      // điểm trung bình tăng dần
	SortDesc     SortOrder = "desc"     // điểm trung bình giảm dần
)

// SortQuestions trả về bản sao đã sắp xếp ổn định, không đụng slice gốc.
func SortQuestions(qs []models.CauHoi, means map[uint]float64, order SortOrder) []models.CauHoi {
	out := make([]models.CauHoi, len(qs))
	copy(out, qs)

	switch order {
	case SortAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return means[out[i].ID] < means[out[j].ID]
		})
	case SortDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return means[out[i].ID] > means[out[j].ID]
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ThuTu < out[j].ThuTu
		})
	}
	return out
}

// FilterQuestionsByCategory lọc câu hỏi theo phân loại; chuỗi rỗng giữ tất cả.
func FilterQuestionsByCategory(qs []models.CauHoi, p models.PhanLoai) []models.CauHoi {
	if p == "" {
		return qs
	}
	out := make([]models.CauHoi, 0, len(qs))
	for _, q := range qs {
		if q.PhanLoai == p {
			out = append(out, q)
		}
	}
	return out
}
