package osfilesystem

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFileSystem_WriteFile(t *testing.T) {
	fs := New()
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "nested", "session.gif")

	if err := fs.WriteFile(path, []byte("first")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := fs.WriteFile(path, []byte("second")); err != nil {
		t.Fatalf("WriteFile overwrite failed: %v", err)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("expected %q, got %q", "second", data)
	}

	// No temporary siblings survive a successful write.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only session.gif, got %v", names)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != filePerm {
		t.Errorf("expected mode %o, got %o", filePerm, perm)
	}
}

func TestFileSystem_ReadFileMissing(t *testing.T) {
	if _, err := New().ReadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFileSystem_Exists(t *testing.T) {
	fs := New()
	dir := t.TempDir()

	file := filepath.Join(dir, "script.yaml")
	if err := os.WriteFile(file, []byte("steps: []"), 0o644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(dir, "a", "b")
	if err := fs.MkdirAll(sub); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"file", file, true},
		{"directory", sub, true},
		{"missing", filepath.Join(dir, "nope.yaml"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fs.Exists(tt.path)
			if err != nil {
				t.Fatalf("Exists failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Exists(%s) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestFileSystem_ListFiles(t *testing.T) {
	fs := New()
	dir := t.TempDir()

	for _, name := range []string{"b.PNG", "a.jpg", "c.txt", "d.jpeg"} {
		if err := fs.WriteFile(filepath.Join(dir, name), []byte("x")); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}
	if err := fs.MkdirAll(filepath.Join(dir, "sub.png")); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	tests := []struct {
		name string
		exts []string
		want []string
	}{
		{"all", nil, []string{"a.jpg", "b.PNG", "c.txt", "d.jpeg"}},
		{"images", []string{".png", ".jpg", ".jpeg"}, []string{"a.jpg", "b.PNG", "d.jpeg"}},
		{"none match", []string{".gif"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fs.ListFiles(dir, tt.exts...)
			if err != nil {
				t.Fatalf("ListFiles failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}

	if _, err := fs.ListFiles(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestMatchExt(t *testing.T) {
	tests := []struct {
		name string
		exts []string
		want bool
	}{
		{"photo.PNG", []string{".png"}, true},
		{"photo.png", []string{".jpg", ".png"}, true},
		{"photo.png", []string{".jpg"}, false},
		{"README", []string{".png"}, false},
		{"anything", nil, true},
	}
	for _, tt := range tests {
		if got := MatchExt(tt.name, tt.exts); got != tt.want {
			t.Errorf("MatchExt(%q, %v) = %v, want %v", tt.name, tt.exts, got, tt.want)
		}
	}
}
