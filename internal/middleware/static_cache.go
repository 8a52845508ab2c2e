package middleware

import (
	"github.com/gin-gonic/gin"
)

// StaticCacheMiddleware 为媒体静态资源添加 Cache-Control 头
// 存储文件名为 UUID，内容不变，可以长缓存
func StaticCacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age=604800, immutable")
		c.Next()
	}
}
