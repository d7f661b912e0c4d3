package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ntgiang/attt-survey-server/config"
	"github.com/ntgiang/attt-survey-server/models"
	"github.com/ntgiang/attt-survey-server/scoring"
	"github.com/ntgiang/attt-survey-server/store"
)

// ThongKeCauHoi là thống kê của một câu hỏi trong báo cáo tổng hợp.
type ThongKeCauHoi struct {
	CauHoiID  uint            `json:"cau_hoi_id"`
	ThuTu     int             `json:"thu_tu"`
	NoiDung   string          `json:"noi_dung"`
	PhanLoai  models.PhanLoai `json:"phan_loai"`
	DiemTB    float64         `json:"diem_trung_binh"`
	PhanPhoi  map[int]float64 `json:"phan_phoi"` // % người chọn từng mức điểm
	SoPhanHoi int             `json:"so_phan_hoi"`
}

// parseNgay đọc ngày dạng 2006-01-02; end được nới đến cuối ngày để
// khoảng lọc [start, end] bao trọn cả hai đầu.
func parseNgay(s string, cuoiNgay bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	if cuoiNgay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

// GetReportOverview dựng báo cáo tổng hợp trên các phiếu hoàn thành và
// không bị ẩn: bốn bộ đếm, phân phối điểm từng câu hỏi và điểm trung
// bình 5 phân loại. Hỗ trợ lọc theo khoảng ngày, theo phân loại và sắp
// xếp theo điểm trung bình.
func GetReportOverview(c *gin.Context) {
	start, err := parseNgay(c.Query("start"), false)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Ngày bắt đầu không hợp lệ (YYYY-MM-DD)"})
		return
	}
	end, err := parseNgay(c.Query("end"), true)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Ngày kết thúc không hợp lệ (YYYY-MM-DD)"})
		return
	}

	phanLoai := models.PhanLoai(c.Query("phan_loai"))
	if phanLoai != "" && !phanLoai.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Phân loại không hợp lệ"})
		return
	}

	order := scoring.SortOrder(c.DefaultQuery("sort", string(scoring.SortOriginal)))
	switch order {
	case scoring.SortOriginal, scoring.SortAsc, scoring.SortDesc:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Thứ tự sắp xếp không hợp lệ"})
		return
	}

	totalRespondents, err := store.CountNguoiKhaoSat(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể đếm người khảo sát"})
		return
	}
	finished, err := store.CountFinished(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể đếm khảo sát hoàn thành"})
		return
	}
	banned, err := store.CountBanned(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể đếm khảo sát bị ẩn"})
		return
	}
	recent, err := store.CountTrongNNgay(config.DB, 7)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể đếm người khảo sát"})
		return
	}

	cauHois, err := store.ListCauHoi(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể đọc bộ câu hỏi"})
		return
	}
	catalog := scoring.BuildCatalog(cauHois)

	sheets, err := store.ListEligibleSheets(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể đọc phiếu trả lời"})
		return
	}
	sheets = scoring.FilterByDate(sheets, start, end)

	means := scoring.MeanScores(sheets)
	avgPhanLoai := scoring.AveragesByCategory(sheets, catalog)

	// Mục kết thúc không xuất hiện trong báo cáo
	qs := make([]models.CauHoi, 0, len(cauHois))
	for _, q := range cauHois {
		if !q.LaKetThuc {
			qs = append(qs, q)
		}
	}
	qs = scoring.FilterQuestionsByCategory(qs, phanLoai)
	qs = scoring.SortQuestions(qs, means, order)

	thongKe := make([]ThongKeCauHoi, 0, len(qs))
	for _, q := range qs {
		dist := scoring.ScoreDistribution(sheets, q.ID)
		soPhanHoi := 0
		for _, s := range sheets {
			for _, a := range s.Answers {
				if a.CauHoiID == q.ID {
					soPhanHoi++
				}
			}
		}
		thongKe = append(thongKe, ThongKeCauHoi{
			CauHoiID:  q.ID,
			ThuTu:     q.ThuTu,
			NoiDung:   q.NoiDung,
			PhanLoai:  q.PhanLoai,
			DiemTB:    means[q.ID],
			PhanPhoi:  dist,
			SoPhanHoi: soPhanHoi,
		})
	}

	// nil (chưa có dữ liệu) serialize thành null để client phân biệt với 0
	diemPhanLoai := make(map[string]*float64, len(models.PhanLoais))
	for i, p := range models.PhanLoais {
		diemPhanLoai[string(p)] = avgPhanLoai[i]
	}

	c.JSON(http.StatusOK, gin.H{
		"totalRespondents":     totalRespondents,
		"finishedSurveys":      finished,
		"bannedSurveys":        banned,
		"respondentsLast7Days": recent,
		"soPhieuThongKe":       len(sheets),
		"diem_phan_loai":       diemPhanLoai,
		"cau_hoi":              thongKe,
	})
}

// ketQuaMot đọc một khảo sát đã hoàn thành để so sánh; trả lỗi gin.H khi
// không dùng được.
func ketQuaMot(id string) (gin.H, int, gin.H) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, http.StatusBadRequest, gin.H{"message": "Mã khảo sát không hợp lệ"}
	}
	nks, err := store.GetNguoiKhaoSat(config.DB, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, http.StatusNotFound, gin.H{"message": fmt.Sprintf("Không tìm thấy khảo sát mã %s", id)}
	}
	if err != nil {
		return nil, http.StatusInternalServerError, gin.H{"message": "Không thể đọc người khảo sát"}
	}
	phieu, err := store.GetPhieu(config.DB, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, http.StatusNotFound, gin.H{"message": fmt.Sprintf("Không tìm thấy khảo sát mã %s", id)}
	}
	if err != nil {
		return nil, http.StatusInternalServerError, gin.H{"message": "Không thể đọc phiếu trả lời"}
	}
	if !phieu.IsFinished {
		return nil, http.StatusUnprocessableEntity,
			gin.H{"message": fmt.Sprintf("Không thể so sánh do khảo sát mã %s chưa hoàn thiện!", id)}
	}

	cauHois, err := store.ListCauHoi(config.DB)
	if err != nil {
		return nil, http.StatusInternalServerError, gin.H{"message": "Không thể đọc bộ câu hỏi"}
	}
	avg := scoring.CategoryAverages(scoring.TrimKetThuc(phieu.CauTraLois), scoring.BuildCatalog(cauHois))

	diemPhanLoai := make(map[string]float64, len(models.PhanLoais))
	for i, p := range models.PhanLoais {
		diemPhanLoai[string(p)] = avg[i]
	}
	return gin.H{
		"nguoi_khao_sat": nks,
		"diem_phan_loai": diemPhanLoai,
		"diem_tong_quan": scoring.OverallAverage(avg),
	}, 0, nil
}

// CompareSurveys so sánh điểm 5 phân loại của hai khảo sát đã hoàn thành.
func CompareSurveys(c *gin.Context) {
	id1 := c.Query("id1")
	id2 := c.Query("id2")
	if id1 == "" || id2 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cần đủ hai mã khảo sát id1 và id2"})
		return
	}

	kq1, status, body := ketQuaMot(id1)
	if body != nil {
		c.JSON(status, body)
		return
	}
	kq2, status, body := ketQuaMot(id2)
	if body != nil {
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"khao_sat_1": kq1,
		"khao_sat_2": kq2,
	})
}
