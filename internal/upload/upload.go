package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	// MaxFileSize is 10MB in bytes
	MaxFileSize = 10 * 1024 * 1024
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// Error is a file upload validation error.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// ValidateImage checks the uploaded file's size and extension.
func ValidateImage(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size > MaxFileSize {
		return &Error{
			Code:    "file_too_large",
			Message: fmt.Sprintf("File size exceeds maximum allowed size of %d MB", MaxFileSize/(1024*1024)),
		}
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return &Error{
			Code:    "invalid_file_format",
			Message: fmt.Sprintf("File extension %q is not an accepted image format", ext),
		}
	}

	return nil
}

// SaveServiceImage stores the upload under dir with a generated unique
// filename and returns the public path for the service's image_path
// column. The file previously referenced by the service, if any, is
// left on disk.
func SaveServiceImage(fileHeader *multipart.FileHeader, dir string) (publicPath string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	filename := uuid.NewString() + ext
	fullPath := filepath.Join(dir, filename)

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer func() {
		if closeErr := dst.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close destination file: %w", closeErr)
		}
	}()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return "/static/uploads/services/" + filename, nil
}
