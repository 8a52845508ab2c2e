package router

import (
	"concessionaria-server/internal/config"
	"concessionaria-server/internal/handler"
	"concessionaria-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// 后台管理接口，全部要求有效的管理员 Token
func registerAdminRoutes(api *gin.RouterGroup, h *handler.Handler) {
	adminGroup := api.Group("")
	adminGroup.Use(middleware.JWTAuth())
	adminGroup.Use(middleware.AdminCheck())

	// 上传限流：读取配置
	uploadLimiter := middleware.RateLimitMiddleware(
		func(c config.Config) float64 { return c.Limit.UploadRPS },
		func(c config.Config) int { return c.Limit.UploadBurst },
	)
	uploadBodyLimit := middleware.UploadBodyLimitMiddleware()

	adminGroup.POST("/vehicles", h.CreateVehicle)
	adminGroup.PUT("/vehicles", h.UpdateVehicle)
	adminGroup.DELETE("/vehicles", h.DeleteVehicle)

	adminGroup.POST("/upload", uploadBodyLimit, uploadLimiter, h.UploadMedia)
	adminGroup.DELETE("/media", h.DeleteMedia)

	adminGroup.GET("/stats", h.GetVehicleStats)
}
