package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/ntgiang/attt-survey-server/utils"
)

type LoginReq struct {
	MatKhau string `json:"mat_khau" binding:"required"`
}

// Login xác thực quản trị viên bằng mật khẩu duy nhất (so bcrypt với
// ADMIN_PASSWORD_HASH) và cấp JWT cho các route quản trị.
func Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload không hợp lệ"})
		return
	}

	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	if hash == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "ADMIN_PASSWORD_HASH chưa được thiết lập"})
		return
	}

	if !utils.CheckPassword(hash, req.MatKhau) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Sai mật khẩu"})
		return
	}

	token, err := utils.GenerateAdminToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể tạo token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
