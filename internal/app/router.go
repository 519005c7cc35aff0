package app

import (
	"quizmaster_backend/docs"
	"quizmaster_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 所有接口均无需登录，令牌不做校验
	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		api.POST("/login", c.auth.Login)
		api.POST("/register", c.auth.Register)

		api.GET("/quizzes", c.quiz.ListQuizzes)
		api.POST("/quizzes", c.quiz.CreateQuiz)
		api.DELETE("/quizzes/:id", c.quiz.DeleteQuiz)

		api.POST("/results", c.result.SaveResult)
		api.GET("/results/:userId", c.result.GetResultsForUser)

		api.POST("/feedback", c.feedback.SubmitFeedback)
		api.GET("/feedback", c.feedback.ListFeedback)
	}
}
