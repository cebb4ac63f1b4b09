package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"resumeCreator/internal/api/middleware"
	"resumeCreator/internal/auth"
)

// RegisterRoutes 注册 /api 前缀下的全部路由。
// 简历路由不做令牌校验：所有简历全局可见可改，与观测到的对外契约一致。
func RegisterRoutes(
	router *gin.Engine,
	db *gorm.DB,
	authService *auth.AuthService,
	redisClient redis.UniversalClient,
	logger *slog.Logger,
	loginRateLimitPerHour int,
	loginLockThreshold int,
	loginLockTTL time.Duration,
) {
	authHandler := NewAuthHandler(db, authService, redisClient, logger, loginRateLimitPerHour, loginLockThreshold, loginLockTTL)
	resumeHandler := NewResumeHandler(db, logger)
	templateHandler := NewTemplateHandler()
	authMiddleware := middleware.AuthMiddleware(authService)

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Resume Creator API"})
		})

		apiGroup.POST("/register", authHandler.Register)
		apiGroup.POST("/login", authHandler.Login)
		apiGroup.GET("/me", authMiddleware, authHandler.Me)

		apiGroup.GET("/templates", templateHandler.ListTemplates)

		apiGroup.POST("/resumes", resumeHandler.CreateResume)
		apiGroup.GET("/resumes", resumeHandler.ListResumes)
		apiGroup.GET("/resumes/:id", resumeHandler.GetResume)
		apiGroup.PUT("/resumes/:id", resumeHandler.UpdateResume)
		apiGroup.DELETE("/resumes/:id", resumeHandler.DeleteResume)
	}
}
