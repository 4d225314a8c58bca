package filestorage

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/yigit/devacademy/internal/pkg/logger"
)

// URLPrefix starts every stored relative path and is the route serving the files.
const URLPrefix = "uploads"

// DefaultMaxUploadSize is used when no limit is configured.
const DefaultMaxUploadSize int64 = 5 << 20

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/webp"}

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // Directory served under URLPrefix
	maxSize  int64
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
func NewLocalStorage(basePath string, maxSize int64) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	if maxSize <= 0 {
		maxSize = DefaultMaxUploadSize
	}

	return &LocalStorage{
		basePath: basePath,
		maxSize:  maxSize,
	}, nil
}

// BasePath returns the directory files are written to.
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// SaveImage stores a JPEG, PNG or WEBP upload under subPath with a random name
// and returns its relative path ("uploads/<subPath>/<uuid>.<ext>").
func (ls *LocalStorage) SaveImage(fileHeader *multipart.FileHeader, subPath string) (*FileInfo, error) {
	if fileHeader == nil {
		return nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	buf := bytes.NewBuffer(nil)
	if _, err := io.Copy(buf, io.LimitReader(file, ls.maxSize+1)); err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if int64(buf.Len()) > ls.maxSize {
		return nil, ErrFileTooLarge
	}

	mime := mimetype.Detect(buf.Bytes())
	if !mimetype.EqualsAny(mime.String(), allowedImageTypes...) {
		logger.Warn().Str("filename", fileHeader.Filename).Str("mime", mime.String()).Msg("Rejected upload with unsupported type")
		return nil, ErrUnsupportedFileType
	}

	fullDirPath := filepath.Join(ls.basePath, filepath.FromSlash(subPath))
	if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", fullDirPath).Msg("Failed to create subdirectory")
		return nil, fmt.Errorf("failed to create subdirectory: %w", err)
	}

	uniqueFilename := uuid.New().String() + mime.Extension()
	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	if err := os.WriteFile(dstPath, buf.Bytes(), 0o644); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write uploaded file")
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("failed to save file content: %w", err)
	}

	relative := path.Join(URLPrefix, subPath, uniqueFilename)
	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", relative).Msg("File saved successfully")

	return &FileInfo{
		Path:     relative,
		Filename: fileHeader.Filename,
		FileSize: int64(buf.Len()),
		MimeType: mime.String(),
	}, nil
}

// DeleteFile removes a file given its stored relative path.
// Returns nil if deletion is successful or if the file doesn't exist.
func (ls *LocalStorage) DeleteFile(filePath string) error {
	if filePath == "" {
		return nil
	}

	physicalPath := ls.GetFullPath(filePath)
	if physicalPath == "" {
		return fmt.Errorf("invalid file path: %s", filePath)
	}

	if err := os.Remove(physicalPath); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
			return nil
		}
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}

// GetFullPath maps a stored relative path to the filesystem. Paths escaping
// the storage directory yield "".
func (ls *LocalStorage) GetFullPath(filePath string) string {
	cleaned := path.Clean("/" + strings.ReplaceAll(filePath, "\\", "/"))
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == URLPrefix {
		return ""
	}
	cleaned = strings.TrimPrefix(cleaned, URLPrefix+"/")
	if cleaned == "" {
		return ""
	}
	return filepath.Join(ls.basePath, filepath.FromSlash(cleaned))
}

// PublicURL renders a stored relative path as an absolute URL on baseURL
// (scheme://host). Empty paths stay empty.
func PublicURL(baseURL, filePath string) string {
	if filePath == "" {
		return ""
	}
	if strings.HasPrefix(filePath, "http://") || strings.HasPrefix(filePath, "https://") {
		return filePath
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(strings.ReplaceAll(filePath, "\\", "/"), "/")
}
