package handler

import (
	"net/http"

	"concessionaria-server/internal/common/httpx"

	"github.com/gin-gonic/gin"
)

// UploadMedia 接收单个媒体文件，保存后返回公开 URL
// 文件顺序由前端表单维护，数据库媒体行在车辆保存时才写入
func (h *Handler) UploadMedia(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请选择文件"})
		return
	}

	result, err := h.service.ProcessMediaUpload(file)
	if err != nil {
		httpx.WriteServiceError(c, err, "上传失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteMedia 按公开 URL 删除存储网关中的文件
// 只删文件，媒体行由车辆保存流程整体替换，两者不要求事务一致
func (h *Handler) DeleteMedia(c *gin.Context) {
	var req struct {
		URL string `json:"url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少文件 URL"})
		return
	}

	if err := h.service.DeleteMediaFile(req.URL); err != nil {
		httpx.WriteServiceError(c, err, "删除文件失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
