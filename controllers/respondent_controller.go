package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ntgiang/attt-survey-server/config"
	"github.com/ntgiang/attt-survey-server/models"
	"github.com/ntgiang/attt-survey-server/store"
	"github.com/ntgiang/attt-survey-server/utils"
)

// Mail được gán từ main; nil thì bỏ qua bước gửi thư
var Mail *utils.Mailer

type NguoiKhaoSatReq struct {
	Email      string `json:"email" binding:"required,email"`
	Ten        string `json:"ten" binding:"required,min=1"`
	ChucVu     string `json:"chuc_vu" binding:"required"`
	TenToChuc  string `json:"ten_to_chuc" binding:"required"`
	LinhVuc    string `json:"linh_vuc" binding:"required"`
	SoNhanVien int    `json:"so_nhan_vien" binding:"gte=0"`
}

// CreateRespondent tạo người khảo sát kèm phiếu trả lời toàn điểm 0
// trong một transaction, rồi gửi mã khảo sát qua email (best-effort).
func CreateRespondent(c *gin.Context) {
	var req NguoiKhaoSatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Thông tin khảo sát không hợp lệ", "error": err.Error()})
		return
	}
	if !models.LinhVucHopLe(req.LinhVuc) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Lĩnh vực không hợp lệ"})
		return
	}

	catalog, err := store.ListCauHoi(config.DB)
	if err != nil || len(catalog) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể đọc bộ câu hỏi"})
		return
	}

	nks := models.NguoiKhaoSat{
		Email:      req.Email,
		Ten:        req.Ten,
		ChucVu:     req.ChucVu,
		TenToChuc:  req.TenToChuc,
		LinhVuc:    req.LinhVuc,
		SoNhanVien: req.SoNhanVien,
	}
	if err := store.CreateWithPhieu(config.DB, &nks, catalog); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể tạo khảo sát"})
		return
	}

	// Gửi mã khảo sát; thất bại chỉ ghi log, khảo sát vẫn được tạo
	if Mail != nil {
		go Mail.NotifyRespondentCreated(nks)
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       nks.ID,
		"ngay_tao": nks.NgayTao,
	})
}

func GetRespondent(c *gin.Context) {
	nks, err := store.GetNguoiKhaoSat(config.DB, c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Không tìm thấy người khảo sát"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể đọc người khảo sát"})
		return
	}
	c.JSON(http.StatusOK, nks)
}

type UpdateNguoiKhaoSatReq struct {
	Email      *string `json:"email"`
	Ten        *string `json:"ten"`
	ChucVu     *string `json:"chuc_vu"`
	TenToChuc  *string `json:"ten_to_chuc"`
	LinhVuc    *string `json:"linh_vuc"`
	SoNhanVien *int    `json:"so_nhan_vien"`
}

// UpdateRespondent sửa hồ sơ khi khảo sát chưa hoàn thành; ID không đổi.
func UpdateRespondent(c *gin.Context) {
	var req UpdateNguoiKhaoSatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload không hợp lệ", "error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Ten != nil {
		updates["ten"] = *req.Ten
	}
	if req.ChucVu != nil {
		updates["chuc_vu"] = *req.ChucVu
	}
	if req.TenToChuc != nil {
		updates["ten_to_chuc"] = *req.TenToChuc
	}
	if req.LinhVuc != nil {
		if !models.LinhVucHopLe(*req.LinhVuc) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Lĩnh vực không hợp lệ"})
			return
		}
		updates["linh_vuc"] = *req.LinhVuc
	}
	if req.SoNhanVien != nil {
		if *req.SoNhanVien < 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Số lượng nhân viên không hợp lệ"})
			return
		}
		updates["so_nhan_vien"] = *req.SoNhanVien
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Không có gì để cập nhật"})
		return
	}

	err := store.UpdateNguoiKhaoSat(config.DB, c.Param("id"), updates)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Không tìm thấy người khảo sát"})
	case errors.Is(err, store.ErrDaHoanThanh):
		c.JSON(http.StatusConflict, gin.H{"message": "Khảo sát đã hoàn thành, không thể sửa thông tin"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Cập nhật thất bại"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "updated"})
	}
}

func DeleteRespondent(c *gin.Context) {
	err := store.DeleteNguoiKhaoSat(config.DB, c.Param("id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Không tìm thấy người khảo sát"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Xoá thất bại"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "deleted"})
	}
}

func ListRespondents(c *gin.Context) {
	out, err := store.ListNguoiKhaoSat(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể lấy danh sách người khảo sát"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListRespondentsByEmail tra lịch sử các lần khảo sát cùng email.
func ListRespondentsByEmail(c *gin.Context) {
	out, err := store.ListByEmail(config.DB, c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể tra cứu theo email"})
		return
	}
	if len(out) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Không có khảo sát nào cho email này"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func CountRespondents(c *gin.Context) {
	n, err := store.CountNguoiKhaoSat(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể đếm người khảo sát"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"totalRespondents": n})
}

// CountRecentRespondents đếm người khảo sát trong N ngày gần nhất (mặc định 7).
func CountRecentRespondents(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days <= 0 {
		days = 7
	}
	n, err := store.CountTrongNNgay(config.DB, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể đếm người khảo sát"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"respondentsLast7Days": n, "days": days})
}
