package practiced

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "list.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp list: %v", err)
	}
	return path
}

func TestLoadWordListsSingleObject(t *testing.T) {
	path := writeTempList(t, `{
		"code": "ANIMALS",
		"title": "Animals",
		"entries": [
			{"text": "dog", "translation": "perro"},
			{"text": "cat", "translation": "gato", "difficulty": 0.2}
		]
	}`)

	lists, err := LoadWordLists(path)
	if err != nil {
		t.Fatalf("LoadWordLists: %v", err)
	}
	if len(lists) != 1 {
		t.Fatalf("got %d lists, want 1", len(lists))
	}
	if lists[0].Code != "ANIMALS" || len(lists[0].Entries) != 2 {
		t.Errorf("list = %+v", lists[0])
	}
}

func TestLoadWordListsArray(t *testing.T) {
	path := writeTempList(t, `[
		{"code": "A", "entries": [{"text": "dog", "translation": "perro"}]},
		{"code": "B", "entries": [{"text": "cat", "translation": "gato"}]}
	]`)

	lists, err := LoadWordLists(path)
	if err != nil {
		t.Fatalf("LoadWordLists: %v", err)
	}
	if len(lists) != 2 {
		t.Errorf("got %d lists, want 2", len(lists))
	}
}

func TestLoadWordListsRejections(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not JSON", `nope`},
		{"missing code", `{"entries": [{"text": "a", "translation": "b"}]}`},
		{"no entries", `{"code": "A", "entries": []}`},
		{"entry missing translation", `{"code": "A", "entries": [{"text": "a"}]}`},
	}

	for _, tt := range tests {
		path := writeTempList(t, tt.content)
		if _, err := LoadWordLists(path); err == nil {
			t.Errorf("%s: accepted, want error", tt.name)
		}
	}
}

func TestLoadWordListsMissingFile(t *testing.T) {
	if _, err := LoadWordLists(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("want error for missing file")
	}
}
