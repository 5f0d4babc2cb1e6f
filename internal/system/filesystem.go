// Package system provides the small set of file system probes the tool needs
// to report on and clean up the generated input file.
package system

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// FileSystem handles file system operations
type FileSystem struct{}

// NewFileSystem creates a new FileSystem instance
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// FileExists checks if a file exists
func (fs *FileSystem) FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if file exists %s: %w", path, err)
}

// FileSize returns the size of a file in bytes
func (fs *FileSystem) FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat file %s: %w", path, err)
	}

	return info.Size(), nil
}

// RemoveFile removes a file. Removing a file that does not exist is an error.
func (fs *FileSystem) RemoveFile(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove file %s: %w", path, err)
	}
	return nil
}

// FreeSpace returns the number of bytes available to the current user on the
// filesystem holding path. The path itself does not need to exist; its
// containing directory does.
func (fs *FileSystem) FreeSpace(path string) (uint64, error) {
	dir := filepath.Dir(path)

	var stat syscall.Statfs_t
	if err := syscall.Statfs(dir, &stat); err != nil {
		return 0, fmt.Errorf("failed to get disk usage for %s: %w", dir, err)
	}

	// Available blocks * size per block = available space in bytes
	return stat.Bavail * uint64(stat.Bsize), nil
}
