package mediaorder

import (
	"fmt"
	"io"
	"log"
	"strings"

	"concessionaria-server/internal/consts"
	"concessionaria-server/internal/storage"

	"github.com/google/uuid"
)

// 表单编辑期间维护媒体的有序列表
// Order 字段仅作参考，提交时以数组位置为准重新编号

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Item 编辑器中的媒体描述符
type Item struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Type     string `json:"type"`
	Filename string `json:"filename"`
	Order    int    `json:"order"`
}

// File 待上传的原始文件
type File struct {
	Name        string
	ContentType string
	Content     io.Reader
}

// Editor 媒体排序编辑器，每次变更通过 onChange 通知持有它的表单
type Editor struct {
	store    storage.Store
	items    []Item
	onChange func([]Item)
}

func NewEditor(store storage.Store, existing []Item, onChange func([]Item)) *Editor {
	items := make([]Item, len(existing))
	copy(items, existing)
	return &Editor{
		store:    store,
		items:    items,
		onChange: onChange,
	}
}

// Items 返回当前列表的副本
func (e *Editor) Items() []Item {
	items := make([]Item, len(e.items))
	copy(items, e.items)
	return items
}

// Add 逐个上传文件并追加到列表末尾
// 非图片/视频文件被拒绝并记录错误，但不中断批次内的其他文件
func (e *Editor) Add(files []File) []error {
	var errs []error

	for _, f := range files {
		kind, ok := mediaKind(f.ContentType)
		if !ok {
			errs = append(errs, fmt.Errorf("仅支持图片和视频文件: %s", f.Name))
			continue
		}

		object, err := e.store.Save(f.Content, f.Name)
		if err != nil {
			errs = append(errs, fmt.Errorf("上传失败: %s: %w", f.Name, err))
			continue
		}

		e.items = append(e.items, Item{
			ID:       uuid.New().String(),
			URL:      object.URL,
			Type:     kind,
			Filename: object.Filename,
			Order:    len(e.items),
		})
		e.notify()
	}

	return errs
}

// Remove 删除指定媒体：先尽力删除远端文件，无论成败都移除本地条目
// 远端删除失败只记录日志并返回错误，便于运维核对孤儿文件
func (e *Editor) Remove(id string) error {
	index := e.indexOf(id)
	if index < 0 {
		return nil
	}

	var remoteErr error
	item := e.items[index]
	if objectPath, err := e.store.PathFromURL(item.URL); err != nil {
		remoteErr = err
		log.Printf("⚠️ [存储清理] 无法解析媒体 URL，远端文件可能残留: url=%s err=%v", item.URL, err)
	} else if err := e.store.Remove(objectPath); err != nil {
		remoteErr = err
		log.Printf("⚠️ [存储清理] 远端删除失败，文件可能残留: path=%s err=%v", objectPath, err)
	}

	e.items = append(e.items[:index], e.items[index+1:]...)
	e.notify()
	return remoteErr
}

// Move 将指定媒体与相邻项交换位置，到达边界时不做任何操作
func (e *Editor) Move(id string, direction Direction) {
	index := e.indexOf(id)
	if index < 0 {
		return
	}

	switch direction {
	case DirectionUp:
		if index == 0 {
			return
		}
		e.items[index], e.items[index-1] = e.items[index-1], e.items[index]
	case DirectionDown:
		if index == len(e.items)-1 {
			return
		}
		e.items[index], e.items[index+1] = e.items[index+1], e.items[index]
	default:
		return
	}

	e.notify()
}

func (e *Editor) indexOf(id string) int {
	for i, item := range e.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (e *Editor) notify() {
	if e.onChange != nil {
		e.onChange(e.Items())
	}
}

func mediaKind(contentType string) (string, bool) {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return consts.MediaTypeImage, true
	case strings.HasPrefix(contentType, "video/"):
		return consts.MediaTypeVideo, true
	default:
		return "", false
	}
}
