package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStore persists uploaded resume files. Save returns the storage key,
// Fetch materializes the object as a local file for the PDF parser (the
// cleanup func removes any temporary copy), Delete removes the object.
type FileStore interface {
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
	Fetch(ctx context.Context, key string) (string, func(), error)
	Delete(ctx context.Context, key string) error
}

type localFileStore struct {
	uploadPath string
}

func NewLocalFileStore(uploadPath string) (FileStore, error) {
	if err := os.MkdirAll(uploadPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &localFileStore{uploadPath: uploadPath}, nil
}

func (s *localFileStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	key := uniqueFilename(originalName)
	filePath := filepath.Join(s.uploadPath, key)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return key, nil
}

func (s *localFileStore) Fetch(ctx context.Context, key string) (string, func(), error) {
	filePath := filepath.Join(s.uploadPath, key)
	if _, err := os.Stat(filePath); err != nil {
		return "", nil, fmt.Errorf("failed to open stored file: %w", err)
	}
	return filePath, func() {}, nil
}

func (s *localFileStore) Delete(ctx context.Context, key string) error {
	filePath := filepath.Join(s.uploadPath, key)
	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func uniqueFilename(originalName string) string {
	ext := filepath.Ext(originalName)
	return fmt.Sprintf("%s%s", uuid.New().String(), ext)
}
