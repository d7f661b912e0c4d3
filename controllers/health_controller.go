package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ntgiang/attt-survey-server/config"
)

// HealthCheck báo trạng thái service kèm kết quả ping database.
func HealthCheck(c *gin.Context) {
	response := gin.H{
		"status":  "ok",
		"service": "attt-survey-server",
		"db":      "ok",
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		response["status"] = "degraded"
		response["db"] = "error: cannot get DB instance"
		c.JSON(http.StatusInternalServerError, response)
		return
	}
	if err := sqlDB.Ping(); err != nil {
		response["status"] = "degraded"
		response["db"] = "error: cannot connect to DB"
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, response)
}
