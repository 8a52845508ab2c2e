package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"concessionaria-server/internal/db"
	"concessionaria-server/internal/repository"
	"concessionaria-server/internal/service"
	"concessionaria-server/internal/testutils"

	"github.com/gin-gonic/gin"
)

// setupTestRouter 构造带内存数据库和临时磁盘存储的路由
// 后台路由不挂认证中间件，认证行为由 middleware 包单独测试
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	testutils.SetupDB(t)
	repos := repository.NewRepositories(repository.NewVehicleRepository(db.DB))
	svc := service.New(repos, testutils.SetupDiskStore(t))
	h := NewHandler(svc)

	r := gin.New()
	api := r.Group("/api")
	{
		api.GET("/vehicles", h.GetVehicles)
		api.GET("/vehicles/options", h.GetVehicleOptions)
		api.GET("/vehicles/:id", h.GetVehicle)
		api.POST("/vehicles", h.CreateVehicle)
		api.PUT("/vehicles", h.UpdateVehicle)
		api.DELETE("/vehicles", h.DeleteVehicle)
		api.POST("/auth/login", h.Login)
		api.POST("/upload", h.UploadMedia)
		api.DELETE("/media", h.DeleteMedia)
		api.GET("/stats", h.GetVehicleStats)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func mustCreateVehicle(t *testing.T, r *gin.Engine, body map[string]interface{}) map[string]interface{} {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/vehicles", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("期望状态码 201，实际为 %d: %s", w.Code, w.Body.String())
	}
	var created map[string]interface{}
	decodeBody(t, w, &created)
	return created
}
