package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ntgiang/attt-survey-server/config"
	"github.com/ntgiang/attt-survey-server/store"
)

// Bộ câu hỏi là dữ liệu tham chiếu chỉ đọc.

func ListQuestions(c *gin.Context) {
	qs, err := store.ListCauHoi(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể lấy bộ câu hỏi"})
		return
	}
	c.JSON(http.StatusOK, qs)
}

func GetQuestion(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID câu hỏi không hợp lệ"})
		return
	}

	q, err := store.GetCauHoi(config.DB, uint(id))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Câu hỏi không tồn tại"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể đọc câu hỏi"})
		return
	}
	c.JSON(http.StatusOK, q)
}
