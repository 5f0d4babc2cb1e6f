package system

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	fs := NewFileSystem()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "present.txt")

	exists, err := fs.FileExists(path)
	if err != nil {
		t.Fatalf("FileExists() failed: %v", err)
	}
	if exists {
		t.Error("FileExists() = true for a missing file, want false")
	}

	if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	exists, err = fs.FileExists(path)
	if err != nil {
		t.Fatalf("FileExists() failed: %v", err)
	}
	if !exists {
		t.Error("FileExists() = false for an existing file, want true")
	}
}

func TestFileSize(t *testing.T) {
	fs := NewFileSystem()
	path := filepath.Join(t.TempDir(), "sized.txt")

	if err := os.WriteFile(path, []byte("ab\nab\n"), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	size, err := fs.FileSize(path)
	if err != nil {
		t.Fatalf("FileSize() failed: %v", err)
	}
	if size != 6 {
		t.Errorf("FileSize() = %d, want 6", size)
	}

	if _, err := fs.FileSize(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("FileSize() succeeded for a missing file, want error")
	}
}

func TestRemoveFile(t *testing.T) {
	fs := NewFileSystem()
	path := filepath.Join(t.TempDir(), "doomed.txt")

	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if err := fs.RemoveFile(path); err != nil {
		t.Fatalf("RemoveFile() failed: %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file still exists after RemoveFile()")
	}

	if err := fs.RemoveFile(path); err == nil {
		t.Error("RemoveFile() succeeded for a missing file, want error")
	}
}

func TestFreeSpace(t *testing.T) {
	fs := NewFileSystem()
	path := filepath.Join(t.TempDir(), "large-input.txt")

	free, err := fs.FreeSpace(path)
	if err != nil {
		t.Fatalf("FreeSpace() failed: %v", err)
	}
	if free == 0 {
		t.Error("FreeSpace() = 0 on a temp directory, want > 0")
	}
}
