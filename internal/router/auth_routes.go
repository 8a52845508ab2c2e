package router

import (
	"concessionaria-server/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, authLimiter gin.HandlerFunc, h *handler.Handler) {
	authGroup := api.Group("/auth")
	authGroup.POST("/login", authLimiter, h.Login)
}
