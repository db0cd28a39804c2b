package utils

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lnf/config"

	"github.com/google/uuid"
)

// Image extensions accepted for uploads
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

var (
	ErrFileType = errors.New("file type not allowed")
	ErrFileSize = errors.New("file exceeds maximum upload size")
)

// AllowedFile reports whether the filename has an accepted image extension
func AllowedFile(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// SaveUploadedImage validates and stores an uploaded image under the configured
// upload directory. The stored name is timestamp + uuid fragment to avoid
// collisions; the caller persists the returned filename.
func SaveUploadedImage(file *multipart.FileHeader) (string, error) {
	if !AllowedFile(file.Filename) {
		return "", ErrFileType
	}

	maxBytes := int64(config.AppConfig.MaxUploadMB) * 1024 * 1024
	if file.Size > maxBytes {
		return "", ErrFileSize
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	destDir := config.AppConfig.UploadDir
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	newFilename := time.Now().Format("20060102_150405_") + uuid.NewString()[:8] + ext
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return newFilename, nil
}

// GetFileURL maps a stored filename to its public URL
func GetFileURL(filename string) string {
	if filename == "" {
		return ""
	}
	return "/uploads/" + filename
}
