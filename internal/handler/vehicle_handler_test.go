package handler

import (
	"net/http"
	"testing"
)

// 测试内容：验证创建车辆接口返回 201，媒体按提交顺序编号为 0..n-1。
func TestCreateVehicle_MediaOrdering(t *testing.T) {
	r := setupTestRouter(t)

	created := mustCreateVehicle(t, r, map[string]interface{}{
		"title": "Ka SE", "brand": "Ford", "model": "Ka", "year": 2020,
		"media": []map[string]interface{}{
			{"url": "/media/vehicles/a.jpg"},
			{"url": "/media/vehicles/b.jpg"},
		},
	})

	media, ok := created["media"].([]interface{})
	if !ok || len(media) != 2 {
		t.Fatalf("期望 2 条媒体，实际为 %v", created["media"])
	}
	for i, raw := range media {
		m := raw.(map[string]interface{})
		if int(m["order"].(float64)) != i {
			t.Fatalf("期望 media[%d].order=%d，实际为 %v", i, i, m["order"])
		}
	}
	if created["status"] != "rascunho" {
		t.Fatalf("期望默认状态 rascunho，实际为 %v", created["status"])
	}
}

// 测试内容：验证非法 JSON 与字段校验失败都返回 400。
func TestCreateVehicle_BadRequest(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/vehicles", map[string]interface{}{
		"brand": "Ford", "model": "Ka",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望状态码 400，实际为 %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/vehicles", map[string]interface{}{
		"title": "Ka", "brand": "Ford", "model": "Ka", "fuel": "Carvão",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望状态码 400，实际为 %d: %s", w.Code, w.Body.String())
	}
}

// 测试内容：验证更新接口的媒体语义——空数组清空媒体，缺省字段保留媒体。
func TestUpdateVehicle_MediaSemantics(t *testing.T) {
	r := setupTestRouter(t)

	created := mustCreateVehicle(t, r, map[string]interface{}{
		"title": "Ka SE", "brand": "Ford", "model": "Ka",
		"media": []map[string]interface{}{{"url": "/media/vehicles/a.jpg"}},
	})
	id := created["id"].(string)

	// media 缺省：只改标题，媒体保留
	w := doJSON(t, r, http.MethodPut, "/api/vehicles", map[string]interface{}{
		"id": id, "title": "Ka SE 1.0",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("期望状态码 200，实际为 %d: %s", w.Code, w.Body.String())
	}
	var updated map[string]interface{}
	decodeBody(t, w, &updated)
	if updated["title"] != "Ka SE 1.0" {
		t.Fatalf("期望 title Ka SE 1.0，实际为 %v", updated["title"])
	}
	if media := updated["media"].([]interface{}); len(media) != 1 {
		t.Fatalf("期望媒体保持不变，实际为 %d 条", len(media))
	}

	// media 为空数组：清空媒体
	w = doJSON(t, r, http.MethodPut, "/api/vehicles", map[string]interface{}{
		"id": id, "media": []map[string]interface{}{},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("期望状态码 200，实际为 %d: %s", w.Code, w.Body.String())
	}
	decodeBody(t, w, &updated)
	if media, _ := updated["media"].([]interface{}); len(media) != 0 {
		t.Fatalf("期望媒体被清空，实际为 %d 条", len(media))
	}
}

// 测试内容：验证删除接口缺少 id 返回 400，成功后车辆不可再获取。
func TestDeleteVehicle(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodDelete, "/api/vehicles", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望状态码 400，实际为 %d: %s", w.Code, w.Body.String())
	}

	created := mustCreateVehicle(t, r, map[string]interface{}{
		"title": "Ka", "brand": "Ford", "model": "Ka",
	})
	id := created["id"].(string)

	w = doJSON(t, r, http.MethodDelete, "/api/vehicles?id="+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("期望状态码 200，实际为 %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]interface{}
	decodeBody(t, w, &resp)
	if resp["success"] != true {
		t.Fatalf("期望 success=true，实际为 %v", resp)
	}

	w = doJSON(t, r, http.MethodGet, "/api/vehicles/"+id, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("期望状态码 404，实际为 %d: %s", w.Code, w.Body.String())
	}
}

// 测试内容：验证目录接口按查询参数筛选车辆。
func TestGetVehicles_Filtering(t *testing.T) {
	r := setupTestRouter(t)

	mustCreateVehicle(t, r, map[string]interface{}{
		"title": "Ka SE", "brand": "Ford", "model": "Ka", "price": 42000,
	})
	mustCreateVehicle(t, r, map[string]interface{}{
		"title": "Corolla XEi", "brand": "Toyota", "model": "Corolla", "price": 135000,
	})

	w := doJSON(t, r, http.MethodGet, "/api/vehicles?brand=Ford", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("期望状态码 200，实际为 %d: %s", w.Code, w.Body.String())
	}
	var vehicles []map[string]interface{}
	decodeBody(t, w, &vehicles)
	if len(vehicles) != 1 || vehicles[0]["brand"] != "Ford" {
		t.Fatalf("非预期的筛选结果: %v", vehicles)
	}

	w = doJSON(t, r, http.MethodGet, "/api/vehicles?price=100-150&q=corolla", nil)
	decodeBody(t, w, &vehicles)
	if len(vehicles) != 1 || vehicles[0]["brand"] != "Toyota" {
		t.Fatalf("非预期的组合筛选结果: %v", vehicles)
	}
}

// 测试内容：验证筛选选项接口返回去重排序的候选值。
func TestGetVehicleOptions(t *testing.T) {
	r := setupTestRouter(t)

	mustCreateVehicle(t, r, map[string]interface{}{
		"title": "Ka", "brand": "Ford", "model": "Ka", "fuel": "Gasolina", "gearbox": "Manual",
	})
	mustCreateVehicle(t, r, map[string]interface{}{
		"title": "Corolla", "brand": "Toyota", "model": "Corolla", "fuel": "Híbrido", "gearbox": "CVT",
	})

	w := doJSON(t, r, http.MethodGet, "/api/vehicles/options", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("期望状态码 200，实际为 %d: %s", w.Code, w.Body.String())
	}

	var options struct {
		Brands    []string `json:"brands"`
		Fuels     []string `json:"fuels"`
		Gearboxes []string `json:"gearboxes"`
	}
	decodeBody(t, w, &options)
	if len(options.Brands) != 2 || options.Brands[0] != "Ford" {
		t.Fatalf("非预期的品牌候选: %v", options.Brands)
	}
	if len(options.Fuels) != 2 || len(options.Gearboxes) != 2 {
		t.Fatalf("非预期的候选值: %+v", options)
	}
}

// 测试内容：验证统计接口按状态分类计数。
func TestGetVehicleStats(t *testing.T) {
	r := setupTestRouter(t)

	mustCreateVehicle(t, r, map[string]interface{}{
		"title": "Ka", "brand": "Ford", "model": "Ka", "status": "anunciado",
	})
	mustCreateVehicle(t, r, map[string]interface{}{
		"title": "Uno", "brand": "Fiat", "model": "Uno",
	})

	w := doJSON(t, r, http.MethodGet, "/api/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("期望状态码 200，实际为 %d: %s", w.Code, w.Body.String())
	}

	var stats struct {
		Total  int64 `json:"total"`
		Draft  int64 `json:"draft"`
		Listed int64 `json:"listed"`
		Sold   int64 `json:"sold"`
	}
	decodeBody(t, w, &stats)
	if stats.Total != 2 || stats.Listed != 1 || stats.Draft != 1 || stats.Sold != 0 {
		t.Fatalf("非预期的统计结果: %+v", stats)
	}
}
