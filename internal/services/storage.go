package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
)

var ErrFileTooLarge = errors.New("file too large")

// StorageService keeps short-lived on-disk copies of uploaded resumes.
type StorageService interface {
	SaveFile(file *multipart.FileHeader) (string, error)
	DeleteFile(filePath string) error
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath        string
	maxFileSize       int64
	allowedExtensions []string
}

func NewStorageService(uploadPath string, maxFileSize int64, allowedExtensions []string) StorageService {
	return &storageService{
		uploadPath:        uploadPath,
		maxFileSize:       maxFileSize,
		allowedExtensions: allowedExtensions,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

// SaveFile copies the upload to a uniquely named file and returns its path.
// The caller owns the file and must DeleteFile it.
func (s *storageService) SaveFile(file *multipart.FileHeader) (string, error) {
	// Validate file extensions
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !slices.Contains(s.allowedExtensions, ext) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if s.maxFileSize > 0 && file.Size > s.maxFileSize {
		return "", fmt.Errorf("%w: max size %d bytes", ErrFileTooLarge, s.maxFileSize)
	}

	uniqueFilename := fmt.Sprintf("resume_%s%s", uuid.New().String(), ext)
	filePath := filepath.Join(s.uploadPath, uniqueFilename)

	// Open source file
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Create destination file
	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}

	// Copy file
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(filePath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	if err := dst.Close(); err != nil {
		os.Remove(filePath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return filePath, nil
}

func (s *storageService) DeleteFile(filePath string) error {
	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
