package service

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"strings"

	"concessionaria-server/internal/common"
	"concessionaria-server/internal/config"
	"concessionaria-server/internal/consts"
	"concessionaria-server/internal/storage"
)

// MediaUploadResult 上传成功后返回给前端的信息
type MediaUploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Type     string `json:"type"`
}

// ValidateMediaFile 验证上传的媒体文件（大小、MIME 大类）
// 返回媒体类型 image / video
func ValidateMediaFile(file *multipart.FileHeader) (string, error) {
	maxSizeMB := config.Get().Storage.MaxUploadSizeMB
	if maxSizeMB <= 0 {
		maxSizeMB = 100
	}
	if file.Size > int64(maxSizeMB)*1024*1024 {
		return "", common.NewValidationError(fmt.Sprintf("文件大小不能超过 %dMB", maxSizeMB))
	}

	contentType := file.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return consts.MediaTypeImage, nil
	case strings.HasPrefix(contentType, "video/"):
		return consts.MediaTypeVideo, nil
	default:
		return "", common.NewValidationError("仅支持图片和视频文件")
	}
}

// ProcessMediaUpload 校验并保存媒体文件，返回公开 URL
func (s *Service) ProcessMediaUpload(file *multipart.FileHeader) (*MediaUploadResult, error) {
	kind, err := ValidateMediaFile(file)
	if err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, common.NewInternalError("无法读取上传文件")
	}
	defer func() { _ = src.Close() }()

	object, err := s.store.Save(src, file.Filename)
	if err != nil {
		log.Printf("Save media error: %v\n", err)
		return nil, common.NewInternalError("文件保存失败")
	}

	return &MediaUploadResult{
		URL:      object.URL,
		Filename: object.Filename,
		Type:     kind,
	}, nil
}

// DeleteMediaFile 根据公开 URL 删除存储网关中的文件
// 只删除文件本身，对应的媒体行由调用方在保存时一并处理
func (s *Service) DeleteMediaFile(url string) error {
	if strings.TrimSpace(url) == "" {
		return common.NewValidationError("缺少文件 URL")
	}

	objectPath, err := s.store.PathFromURL(url)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidURL) {
			return common.NewValidationError("URL 格式无效")
		}
		return common.NewValidationError(err.Error())
	}

	if err := s.store.Remove(objectPath); err != nil {
		log.Printf("Remove media file error: %v, path: %s\n", err, objectPath)
		return common.NewInternalError("删除文件失败")
	}
	return nil
}
