package router

import (
	"concessionaria-server/internal/handler"

	"github.com/gin-gonic/gin"
)

// 公开目录接口，无需认证
func registerPublicRoutes(api *gin.RouterGroup, h *handler.Handler) {
	api.GET("/vehicles", h.GetVehicles)
	api.GET("/vehicles/options", h.GetVehicleOptions)
	api.GET("/vehicles/:id", h.GetVehicle)

	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
