package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ntgiang/attt-survey-server/controllers"
	"github.com/ntgiang/attt-survey-server/middleware"
)

func SetupRoutes(r *gin.Engine) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
		}

		questions := api.Group("/questions")
		{
			questions.GET("", controllers.ListQuestions)
			questions.GET("/:id", controllers.GetQuestion)
		}

		respondents := api.Group("/respondents")
		{
			respondents.POST("", middleware.RateLimitRespondentCreate(), controllers.CreateRespondent)
			respondents.GET("/:id", controllers.GetRespondent)
			respondents.PATCH("/:id", controllers.UpdateRespondent)
			respondents.GET("/email/:email", controllers.ListRespondentsByEmail)
			// quản trị
			respondents.GET("", middleware.AuthJWT(), middleware.RequireAdmin(), controllers.ListRespondents)
			respondents.DELETE("/:id", middleware.AuthJWT(), middleware.RequireAdmin(), controllers.DeleteRespondent)
			respondents.GET("/count", middleware.AuthJWT(), middleware.RequireAdmin(), controllers.CountRespondents)
			respondents.GET("/count/last7days", middleware.AuthJWT(), middleware.RequireAdmin(), controllers.CountRecentRespondents)
		}

		answers := api.Group("/answers")
		{
			answers.GET("/:id", controllers.GetAnswer)
			answers.PATCH("/score", controllers.UpdateScore)
			answers.PATCH("/finished/:id", controllers.MarkFinished)
			// quản trị
			answers.GET("", middleware.AuthJWT(), middleware.RequireAdmin(), controllers.ListAnswers)
			answers.PATCH("/banned/:id", middleware.AuthJWT(), middleware.RequireAdmin(), controllers.ToggleBanned)
			answers.DELETE("/:id", middleware.AuthJWT(), middleware.RequireAdmin(), controllers.DeleteAnswer)
			answers.GET("/count/finished", middleware.AuthJWT(), middleware.RequireAdmin(), controllers.CountFinished)
			answers.GET("/count/banned", middleware.AuthJWT(), middleware.RequireAdmin(), controllers.CountBanned)
		}

		api.GET("/results/:id", controllers.GetResult)

		reports := api.Group("/reports")
		reports.Use(middleware.AuthJWT(), middleware.RequireAdmin())
		{
			reports.GET("/overview", controllers.GetReportOverview)
			reports.GET("/compare", controllers.CompareSurveys)
		}
	}
}
