package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"concessionaria-server/internal/config"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证同一 IP 超过突发额度后返回 429。
func TestRateLimitMiddleware(t *testing.T) {
	limiter := RateLimitMiddleware(
		func(config.Config) float64 { return 1 },
		func(config.Config) int { return 2 },
	)

	r := gin.New()
	r.POST("/api/auth/login", limiter, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
		t.Fatalf("期望前 2 次请求放行，实际为 %v", statuses)
	}
	if statuses[2] != http.StatusTooManyRequests {
		t.Fatalf("期望第 3 次请求返回 429，实际为 %v", statuses)
	}

	// 不同 IP 拥有独立额度
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("期望其他 IP 放行，实际为 %d", w.Code)
	}
}
