package layout

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteDebugJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	doc := Build("Debug", "# H\n- item", Options{})
	if err := WriteDebugJSON(doc, path); err != nil {
		t.Fatalf("WriteDebugJSON: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var decoded Document
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Title != "Debug" || len(decoded.Commands()) != 3 || decoded.Commands()[2].Role != RoleListItem {
		t.Fatalf("调试 JSON 内容错误: %+v", decoded)
	}
	if err := WriteDebugJSON(nil, path); err != nil {
		t.Fatalf("nil 文档应被忽略: %v", err)
	}
}
