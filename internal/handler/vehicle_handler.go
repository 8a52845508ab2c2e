package handler

import (
	"net/http"
	"strings"

	"concessionaria-server/internal/common/httpx"
	"concessionaria-server/internal/service"

	"github.com/gin-gonic/gin"
)

// GetVehicles 公开目录：全部车辆及有序媒体，支持五项筛选参数
func (h *Handler) GetVehicles(c *gin.Context) {
	var criteria service.FilterCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "筛选参数错误"})
		return
	}

	vehicles, err := h.service.ListVehicles()
	if err != nil {
		httpx.WriteServiceError(c, err, "获取车辆列表失败")
		return
	}

	c.JSON(http.StatusOK, service.FilterVehicles(vehicles, criteria))
}

// GetVehicleOptions 由当前列表推导筛选下拉框候选值
func (h *Handler) GetVehicleOptions(c *gin.Context) {
	vehicles, err := h.service.ListVehicles()
	if err != nil {
		httpx.WriteServiceError(c, err, "获取筛选选项失败")
		return
	}

	c.JSON(http.StatusOK, service.BuildFilterOptions(vehicles))
}

// GetVehicle 车辆详情页数据
func (h *Handler) GetVehicle(c *gin.Context) {
	vehicle, err := h.service.GetVehicle(c.Param("id"))
	if err != nil {
		httpx.WriteServiceError(c, err, "获取车辆信息失败")
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// CreateVehicle 创建车辆聚合，返回带有序媒体的完整记录
func (h *Handler) CreateVehicle(c *gin.Context) {
	var input service.VehicleCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	vehicle, err := h.service.CreateVehicle(input)
	if err != nil {
		httpx.WriteServiceError(c, err, "创建车辆失败")
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

// UpdateVehicle 部分更新；请求体携带 media 字段时整体替换媒体
func (h *Handler) UpdateVehicle(c *gin.Context) {
	var input service.VehicleUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	vehicle, err := h.service.UpdateVehicle(input)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新车辆失败")
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// DeleteVehicle 按查询参数 id 删除车辆
func (h *Handler) DeleteVehicle(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少车辆 ID"})
		return
	}

	if err := h.service.DeleteVehicle(id); err != nil {
		httpx.WriteServiceError(c, err, "删除车辆失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetVehicleStats 后台看板统计数字
func (h *Handler) GetVehicleStats(c *gin.Context) {
	stats, err := h.service.GetVehicleStats()
	if err != nil {
		httpx.WriteServiceError(c, err, "获取统计数据失败")
		return
	}

	c.JSON(http.StatusOK, stats)
}
