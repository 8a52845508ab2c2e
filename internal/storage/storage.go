package storage

import (
	"errors"
	"io"
)

// ErrInvalidURL 表示公开 URL 中不包含预期的存储前缀
var ErrInvalidURL = errors.New("invalid url format")

// Object 描述一个已存储的媒体对象
type Object struct {
	Path     string // 存储命名空间内的对象路径，如 vehicles/xxx.jpg
	URL      string // 对外公开 URL
	Filename string // 存储文件名
}

// Store 媒体对象存储网关
// 仅负责原始文件的存取，数据库中只保存公开 URL
type Store interface {
	// Save 保存文件内容并返回对象描述，文件名由实现生成
	Save(src io.Reader, originalFilename string) (*Object, error)

	// Remove 按对象路径删除文件
	Remove(objectPath string) error

	// PathFromURL 从公开 URL 中还原对象路径
	// URL 不含配置的公开前缀时返回 ErrInvalidURL
	PathFromURL(url string) (string, error)

	// PublicURL 拼接对象路径对应的公开 URL
	PublicURL(objectPath string) string
}
