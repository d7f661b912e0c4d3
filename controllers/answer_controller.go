package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ntgiang/attt-survey-server/config"
	"github.com/ntgiang/attt-survey-server/store"
)

// GetAnswer trả phiếu trả lời theo mã khảo sát; khảo sát chưa hoàn thành
// dùng chính response này để làm bài tiếp.
func GetAnswer(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Mã khảo sát không hợp lệ"})
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
	c.JSON(http.StatusOK, phieu)
}

func ListAnswers(c *gin.Context) {
	out, err := store.ListPhieu(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể lấy danh sách phiếu trả lời"})
		return
	}
	c.JSON(http.StatusOK, out)
}

type UpdateScoreReq struct {
	RespondentID string `json:"respondent_id" binding:"required"`
	QuestionID   uint   `json:"question_id" binding:"required"`
	NewScore     *int   `json:"new_score" binding:"required"`
}

// UpdateScore ghi điểm cho đúng một câu trả lời của phiếu đang làm dở.
func UpdateScore(c *gin.Context) {
	var req UpdateScoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload không hợp lệ", "error": err.Error()})
		return
	}
	if _, err := uuid.Parse(req.RespondentID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Mã khảo sát không hợp lệ"})
		return
	}

	err := store.UpdateDiem(config.DB, req.RespondentID, req.QuestionID, *req.NewScore)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Không tìm thấy phiếu trả lời"})
	case errors.Is(err, store.ErrDaHoanThanh):
		c.JSON(http.StatusConflict, gin.H{"message": "Khảo sát đã hoàn thành, không thể thay đổi câu trả lời"})
	case errors.Is(err, store.ErrCauHoiKhongHopLe):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Câu hỏi không thuộc bộ khảo sát"})
	case errors.Is(err, store.ErrMucKetThuc):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Mục kết thúc không được chấm điểm"})
	case errors.Is(err, store.ErrDiemKhongHopLe):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Điểm không thuộc các lựa chọn của câu hỏi"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể cập nhật điểm"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Cập nhật điểm thành công"})
	}
}

// MarkFinished chốt phiếu đúng một lần; sau đó phiếu chỉ còn đọc.
func MarkFinished(c *gin.Context) {
	err := store.DanhDauHoanThanh(config.DB, c.Param("id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Không tìm thấy phiếu trả lời"})
	case errors.Is(err, store.ErrDaHoanThanh):
		c.JSON(http.StatusConflict, gin.H{"message": "Khảo sát đã hoàn thành trước đó"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể chốt khảo sát"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Đã chốt khảo sát"})
	}
}

// ToggleBanned đảo cờ ẩn của phiếu khỏi báo cáo tổng hợp (quản trị).
func ToggleBanned(c *gin.Context) {
	newState, err := store.ToggleBanned(config.DB, c.Param("id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Không tìm thấy phiếu trả lời"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể cập nhật trạng thái ẩn"})
	default:
		c.JSON(http.StatusOK, gin.H{
			"message":        "Đã đổi trạng thái ẩn",
			"newBannedState": newState,
		})
	}
}

func DeleteAnswer(c *gin.Context) {
	err := store.DeletePhieu(config.DB, c.Param("id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Không tìm thấy phiếu trả lời"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Xoá thất bại"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "deleted"})
	}
}

func CountFinished(c *gin.Context) {
	n, err := store.CountFinished(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể đếm khảo sát hoàn thành"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"finishedSurveys": n})
}

func CountBanned(c *gin.Context) {
	n, err := store.CountBanned(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể đếm khảo sát bị ẩn"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bannedSurveys": n})
}
