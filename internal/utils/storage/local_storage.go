package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

type localStorage struct {
	root string
}

// NewLocalStorage writes files below root; the object key doubles as the public URL path.
func NewLocalStorage(root string) ImageStorage {
	return &localStorage{root: root}
}

func (s *localStorage) UploadFile(ctx context.Context, fileName string, file *multipart.FileHeader, folder string, allowTypes ...string) (string, error) {
	if err := checkContentType(file, allowTypes); err != nil {
		return "", err
	}
	key := objectKey(folder, fileName)
	dst := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), os.ModePerm); err != nil {
		return "", fmt.Errorf("create image directory: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("write image file: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("close image file: %w", err)
	}
	return key, nil
}

func (s *localStorage) DeleteFile(ctx context.Context, objectKey string) error {
	if objectKey == "" {
		return nil
	}
	return os.Remove(filepath.Join(s.root, filepath.FromSlash(objectKey)))
}

func (s *localStorage) GetPublicLinkKey(objectKey string) string {
	return "/" + strings.TrimPrefix(objectKey, "/")
}

func (s *localStorage) GetObjectKeyFromLink(link string) string {
	return strings.TrimPrefix(link, "/")
}
