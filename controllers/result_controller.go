package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ntgiang/attt-survey-server/config"
	"github.com/ntgiang/attt-survey-server/models"
	"github.com/ntgiang/attt-survey-server/scoring"
	"github.com/ntgiang/attt-survey-server/store"
)

// ChiTietCauHoi là một dòng trong bảng kết quả: câu hỏi, mức đã chọn và điểm.
type ChiTietCauHoi struct {
	ThuTu    int             `json:"thu_tu"`
	NoiDung  string          `json:"noi_dung"`
	PhanLoai models.PhanLoai `json:"phan_loai"`
	LuaChon  string          `json:"lua_chon"`
	Diem     int             `json:"diem"`
}

// GetResult trả kết quả chấm điểm của một khảo sát đã hoàn thành: điểm
// trung bình 5 phân loại, điểm tổng quan và 6 dòng nhận xét.
func GetResult(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Mã khảo sát không hợp lệ"})
		return
	}

	nks, err := store.GetNguoiKhaoSat(config.DB, id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Không tìm thấy người khảo sát"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể đọc người khảo sát"})
		return
	}

	phieu, err := store.GetPhieu(config.DB, id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Không tìm thấy phiếu trả lời"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể đọc phiếu trả lời"})
		return
	}
	if !phieu.IsFinished {
		c.JSON(http.StatusConflict, gin.H{"message": "Khảo sát chưa hoàn thành"})
		return
	}

	cauHois, err := store.ListCauHoi(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể đọc bộ câu hỏi"})
		return
	}
	catalog := scoring.BuildCatalog(cauHois)

	answers := scoring.TrimKetThuc(phieu.CauTraLois)
	avg := scoring.CategoryAverages(answers, catalog)
	overall := scoring.OverallAverage(avg)

	// Bảng chi tiết: nối mỗi câu trả lời với nội dung lựa chọn tương ứng
	diemTheoCauHoi := make(map[uint]int, len(answers))
	for _, a := range answers {
		diemTheoCauHoi[a.CauHoiID] = a.Diem
	}
	chiTiet := make([]ChiTietCauHoi, 0, len(answers))
	for _, q := range cauHois {
		if q.LaKetThuc {
			continue
		}
		diem, ok := diemTheoCauHoi[q.ID]
		if !ok {
			continue
		}
		luaChon := "N/A"
		for _, lc := range q.LuaChons {
			if lc.Diem == diem {
				luaChon = lc.NoiDung
				break
			}
		}
		chiTiet = append(chiTiet, ChiTietCauHoi{
			ThuTu:    q.ThuTu,
			NoiDung:  q.NoiDung,
			PhanLoai: q.PhanLoai,
			LuaChon:  luaChon,
			Diem:     diem,
		})
	}

	diemPhanLoai := make(map[string]float64, len(models.PhanLoais))
	for i, p := range models.PhanLoais {
		diemPhanLoai[string(p)] = avg[i]
	}

	c.JSON(http.StatusOK, gin.H{
		"nguoi_khao_sat": nks,
		"diem_phan_loai": diemPhanLoai,
		"diem_tong_quan": overall,
		"nhan_xet":       scoring.NhanXet(avg),
		"chi_tiet":       chiTiet,
	})
}
