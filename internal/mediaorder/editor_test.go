package mediaorder

import (
	"errors"
	"io"
	"strings"
	"testing"

	"concessionaria-server/internal/storage"
)

// editorStore 可注入失败的内存存储，用于隔离测试编辑器逻辑
type editorStore struct {
	saved     []string
	removed   []string
	removeErr error
	saveErr   error
}

func (s *editorStore) Save(_ io.Reader, originalFilename string) (*storage.Object, error) {
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	s.saved = append(s.saved, originalFilename)
	return &storage.Object{
		Path:     "vehicles/" + originalFilename,
		URL:      "/media/vehicles/" + originalFilename,
		Filename: originalFilename,
	}, nil
}

func (s *editorStore) Remove(objectPath string) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	s.removed = append(s.removed, objectPath)
	return nil
}

func (s *editorStore) PathFromURL(url string) (string, error) {
	const prefix = "/media/"
	if !strings.HasPrefix(url, prefix) {
		return "", storage.ErrInvalidURL
	}
	return strings.TrimPrefix(url, prefix), nil
}

func (s *editorStore) PublicURL(objectPath string) string {
	return "/media/" + objectPath
}

func imageFile(name string) File {
	return File{Name: name, ContentType: "image/jpeg", Content: strings.NewReader("x")}
}

// 测试内容：验证批量上传逐个追加到末尾，非法类型被跳过但不中断批次。
func TestEditorAdd_ContinuesPastInvalidFiles(t *testing.T) {
	store := &editorStore{}
	var notifications int
	editor := NewEditor(store, nil, func([]Item) { notifications++ })

	errs := editor.Add([]File{
		imageFile("a.jpg"),
		{Name: "doc.pdf", ContentType: "application/pdf", Content: strings.NewReader("x")},
		{Name: "b.mp4", ContentType: "video/mp4", Content: strings.NewReader("x")},
	})

	if len(errs) != 1 {
		t.Fatalf("期望 1 个错误，实际为 %d: %v", len(errs), errs)
	}

	items := editor.Items()
	if len(items) != 2 {
		t.Fatalf("期望 2 条媒体，实际为 %d", len(items))
	}
	if items[0].Filename != "a.jpg" || items[0].Type != "image" || items[0].Order != 0 {
		t.Fatalf("非预期的第一条媒体: %+v", items[0])
	}
	if items[1].Filename != "b.mp4" || items[1].Type != "video" || items[1].Order != 1 {
		t.Fatalf("非预期的第二条媒体: %+v", items[1])
	}
	if notifications != 2 {
		t.Fatalf("期望每次追加通知一次（共 2 次），实际为 %d", notifications)
	}
}

// 测试内容：验证删除媒体时先删远端文件再移除本地条目。
func TestEditorRemove_DeletesRemoteAndLocal(t *testing.T) {
	store := &editorStore{}
	editor := NewEditor(store, nil, nil)
	_ = editor.Add([]File{imageFile("a.jpg"), imageFile("b.jpg")})

	items := editor.Items()
	if err := editor.Remove(items[0].ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if len(store.removed) != 1 || store.removed[0] != "vehicles/a.jpg" {
		t.Fatalf("期望删除远端 vehicles/a.jpg，实际为 %v", store.removed)
	}
	remaining := editor.Items()
	if len(remaining) != 1 || remaining[0].Filename != "b.jpg" {
		t.Fatalf("非预期的剩余媒体: %+v", remaining)
	}
}

// 测试内容：验证远端删除失败时仍移除本地条目，并把错误返回给调用方。
func TestEditorRemove_BestEffortOnRemoteFailure(t *testing.T) {
	store := &editorStore{}
	editor := NewEditor(store, nil, nil)
	_ = editor.Add([]File{imageFile("a.jpg")})

	store.removeErr = errors.New("storage indisponível")
	err := editor.Remove(editor.Items()[0].ID)
	if err == nil {
		t.Fatalf("期望返回远端删除错误")
	}
	if len(editor.Items()) != 0 {
		t.Fatalf("远端失败时本地条目也应被移除，实际剩 %d 条", len(editor.Items()))
	}
}

// 测试内容：验证删除不存在的媒体是无操作且不报错。
func TestEditorRemove_UnknownIDNoop(t *testing.T) {
	store := &editorStore{}
	var notifications int
	editor := NewEditor(store, nil, func([]Item) { notifications++ })
	_ = editor.Add([]File{imageFile("a.jpg")})
	notifications = 0

	if err := editor.Remove("inexistente"); err != nil {
		t.Fatalf("期望无操作，实际为 %v", err)
	}
	if notifications != 0 {
		t.Fatalf("无操作不应通知，实际通知了 %d 次", notifications)
	}
}

// 测试内容：验证移动与相邻项交换位置，到达边界时不做任何操作也不通知。
func TestEditorMove(t *testing.T) {
	store := &editorStore{}
	var notifications int
	editor := NewEditor(store, nil, func([]Item) { notifications++ })
	_ = editor.Add([]File{imageFile("a.jpg"), imageFile("b.jpg"), imageFile("c.jpg")})
	notifications = 0

	items := editor.Items()

	editor.Move(items[1].ID, DirectionUp)
	got := editor.Items()
	if got[0].Filename != "b.jpg" || got[1].Filename != "a.jpg" {
		t.Fatalf("上移后顺序错误: %+v", got)
	}
	if notifications != 1 {
		t.Fatalf("期望通知 1 次，实际为 %d", notifications)
	}

	// 边界：首项上移、末项下移均为无操作
	editor.Move(got[0].ID, DirectionUp)
	editor.Move(got[2].ID, DirectionDown)
	if notifications != 1 {
		t.Fatalf("边界移动不应通知，实际为 %d", notifications)
	}

	after := editor.Items()
	if after[0].Filename != "b.jpg" || after[2].Filename != "c.jpg" {
		t.Fatalf("边界移动改变了顺序: %+v", after)
	}
}
