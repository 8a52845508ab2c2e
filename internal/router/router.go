package router

import (
	"concessionaria-server/internal/config"
	"concessionaria-server/internal/handler"
	"concessionaria-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Router struct {
	handler *handler.Handler
}

func NewRouter(h *handler.Handler) *Router {
	return &Router{
		handler: h,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	// 注册全局安全标头中间件
	r.Use(middleware.SecurityHeaders())

	api := r.Group("/api")
	// 应用请求体大小限制中间件
	api.Use(middleware.BodyLimitMiddleware())

	// 认证限流：读取配置
	authLimiter := middleware.RateLimitMiddleware(
		func(c config.Config) float64 { return c.Limit.AuthRPS },
		func(c config.Config) int { return c.Limit.AuthBurst },
	)

	registerPublicRoutes(api, rt.handler)
	registerAuthRoutes(api, authLimiter, rt.handler)
	registerAdminRoutes(api, rt.handler)
}
