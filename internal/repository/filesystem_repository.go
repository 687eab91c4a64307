package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// FileSystemRepository stores image blobs on local disk under a single
// base directory. Paths are generated, never taken from the client.
type FileSystemRepository struct {
	baseDir string
}

func NewFileSystemRepository(baseDir string) *FileSystemRepository {
	return &FileSystemRepository{baseDir: baseDir}
}

// Save writes content under a collision-resistant name derived from the
// upload time, a random id, and the original filename, and returns the
// stored path.
func (r *FileSystemRepository) Save(name string, content []byte) (string, error) {
	if err := os.MkdirAll(r.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("create image dir failed: %w", err)
	}

	fileName := fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.NewString(), filepath.Base(name))
	path := filepath.Join(r.baseDir, fileName)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write image file failed: %w", err)
	}
	return path, nil
}

func (r *FileSystemRepository) Read(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image file failed: %w", err)
	}
	return content, nil
}

func (r *FileSystemRepository) Delete(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("delete image file failed: %w", err)
	}
	return nil
}
