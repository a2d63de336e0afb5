package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"regexp"
	"strings"

	"baratie/domain"
	"baratie/internal/utils"
)

var AllowImage = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/webp",
	"image/gif",
}

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

type ImageStorage interface {
	// UploadFile stores file as {folder}/{fileName} and returns the object key.
	UploadFile(ctx context.Context, fileName string, file *multipart.FileHeader, folder string, allowTypes ...string) (string, error)
	DeleteFile(ctx context.Context, objectKey string) error
	GetPublicLinkKey(objectKey string) string
	GetObjectKeyFromLink(link string) string
}

// NewImageStorage picks the backend named by STORAGE_DRIVER.
func NewImageStorage(ctx context.Context) (ImageStorage, error) {
	switch strings.ToLower(utils.GetConfig("STORAGE_DRIVER")) {
	case "s3":
		return NewAwsS3(ctx)
	case "", "local":
		return NewLocalStorage(utils.GetConfig("PUBLIC_DIR")), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", utils.GetConfig("STORAGE_DRIVER"))
	}
}

// SafeFileName keeps letters, digits, dot, dash and underscore; everything else becomes "_".
func SafeFileName(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	safe := unsafeFileChars.ReplaceAllString(base, "_")
	if safe == "" || safe == "." || safe == ".." {
		return "image"
	}
	return safe
}

func checkContentType(file *multipart.FileHeader, allowTypes []string) error {
	if file == nil {
		return domain.ErrMissingImage
	}
	if len(allowTypes) == 0 {
		return nil
	}
	contentType := strings.ToLower(file.Header.Get("Content-Type"))
	for _, t := range allowTypes {
		if contentType == t {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidImageFormat, contentType)
}

func objectKey(folder, fileName string) string {
	return path.Join(strings.Trim(folder, "/"), fileName)
}
