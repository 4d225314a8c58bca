package filestorage

import (
	"mime/multipart"

	"github.com/yigit/devacademy/internal/pkg/apperrors"
)

// Upload errors
var (
	ErrUnsupportedFileType = apperrors.NewValidationError("Invalid file type. Only JPG, JPEG, WEBP and PNG are allowed.")
	ErrFileTooLarge        = apperrors.NewValidationError("The uploaded file is too large.")
)

// FileInfo represents information about a stored file
type FileInfo struct {
	Path     string // Relative path as stored in the database
	Filename string // Original filename
	FileSize int64  // Size in bytes
	MimeType string // Detected MIME type
}

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveImage stores an uploaded image under subPath after checking its content type
	SaveImage(fileHeader *multipart.FileHeader, subPath string) (*FileInfo, error)

	// DeleteFile removes a stored file; missing files are not an error
	DeleteFile(filePath string) error

	// GetFullPath returns the filesystem path for a stored relative path
	GetFullPath(filePath string) string
}
