package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskStore 本地磁盘存储实现
// 文件保存在 root/vehicles/ 下，通过 urlPrefix 对外提供静态访问
type DiskStore struct {
	root      string
	urlPrefix string
}

const vehicleObjectDir = "vehicles"

func NewDiskStore(root, urlPrefix string) (*DiskStore, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, errors.New("存储根目录不能为空")
	}
	urlPrefix = strings.TrimSpace(urlPrefix)
	if urlPrefix == "" {
		urlPrefix = "/media/"
	}
	if !strings.HasSuffix(urlPrefix, "/") {
		urlPrefix += "/"
	}

	if err := os.MkdirAll(filepath.Join(root, vehicleObjectDir), 0755); err != nil {
		return nil, err
	}

	return &DiskStore{root: root, urlPrefix: urlPrefix}, nil
}

// URLPrefix 返回对外公开前缀，供静态路由注册使用
func (s *DiskStore) URLPrefix() string {
	return s.urlPrefix
}

// Root 返回磁盘根目录
func (s *DiskStore) Root() string {
	return s.root
}

func (s *DiskStore) Save(src io.Reader, originalFilename string) (*Object, error) {
	ext := strings.ToLower(filepath.Ext(originalFilename))

	// 生成唯一文件名，避免覆盖
	newFilename := uuid.New().String() + ext
	objectPath := vehicleObjectDir + "/" + newFilename
	dst := filepath.Join(s.root, vehicleObjectDir, newFilename)

	out, err := os.Create(dst)
	if err != nil {
		return nil, err
	}
	defer func() { _ = out.Close() }()

	if _, err = io.Copy(out, src); err != nil {
		// 写入失败时清理半成品文件
		_ = os.Remove(dst)
		return nil, err
	}

	return &Object{
		Path:     objectPath,
		URL:      s.PublicURL(objectPath),
		Filename: newFilename,
	}, nil
}

func (s *DiskStore) Remove(objectPath string) error {
	full := filepath.Join(s.root, filepath.FromSlash(objectPath))
	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}

func (s *DiskStore) PathFromURL(url string) (string, error) {
	// URL 形如 /media/vehicles/xxx.jpg 或 https://host/media/vehicles/xxx.jpg
	parts := strings.SplitN(url, s.urlPrefix, 2)
	if len(parts) < 2 || parts[1] == "" {
		return "", ErrInvalidURL
	}
	return parts[1], nil
}

func (s *DiskStore) PublicURL(objectPath string) string {
	return s.urlPrefix + objectPath
}
