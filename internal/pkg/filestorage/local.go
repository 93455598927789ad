package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/omondi/shulehub/internal/pkg/logger"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// SanitizeFilename replaces non-alphanumeric characters in the base name
// with underscores, keeping the extension, and prefixes a timestamp to
// avoid collisions.
func SanitizeFilename(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	base = strings.Trim(unsafeChars.ReplaceAllString(base, "_"), "_")
	if base == "" {
		base = "file"
	}
	return fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), base, ext)
}

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // Root directory where files are stored
	baseURL  string // Base URL the stored files are served under
}

var _ FileStorage = (*LocalStorage)(nil)

// NewLocalStorage creates a new LocalStorage instance.
// basePath is the directory on the server; baseURL is prepended to
// returned file paths.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// SaveFileWithPath saves a file to a specified subdirectory
func (ls *LocalStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (*StoredFile, error) {
	if fileHeader == nil {
		return nil, nil // No file uploaded
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := ls.basePath
	if subPath != "" {
		fullDirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", fullDirPath).Msg("Failed to create subdirectory")
			return nil, fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	storedName := SanitizeFilename(fileHeader.Filename)
	dstPath := filepath.Join(fullDirPath, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, file)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("failed to save file content: %w", err)
	}

	url := strings.TrimRight(ls.baseURL, "/")
	if subPath != "" {
		url += "/" + subPath
	}
	url += "/" + storedName

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", storedName).Str("url", url).Msg("File saved")

	return &StoredFile{
		URL:          url,
		StoredName:   storedName,
		OriginalName: fileHeader.Filename,
		Size:         written,
	}, nil
}

// SaveFile saves an uploaded file into the storage root
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader) (*StoredFile, error) {
	return ls.SaveFileWithPath(fileHeader, "")
}

// relativePath maps a stored URL or path back to the path under the
// storage root, keeping any subdirectory segment.
func (ls *LocalStorage) relativePath(filePath string) string {
	rel := strings.TrimPrefix(filePath, strings.TrimRight(ls.baseURL, "/"))
	rel = filepath.Clean(strings.TrimLeft(rel, "/"))
	if rel == "." || rel == "/" || strings.HasPrefix(rel, "..") {
		return ""
	}
	return rel
}

// DeleteFile removes a file from storage. It accepts the URL or path as
// stored with the owning record. Deleting a missing file is not an error.
func (ls *LocalStorage) DeleteFile(filePath string) error {
	if filePath == "" {
		return nil
	}

	rel := ls.relativePath(filePath)
	if rel == "" {
		return fmt.Errorf("invalid file path: %s", filePath)
	}

	physicalPath := filepath.Join(ls.basePath, rel)

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// GetFullPath returns the filesystem path for a given file URL.
func (ls *LocalStorage) GetFullPath(fileURL string) string {
	rel := ls.relativePath(fileURL)
	if rel == "" {
		return ""
	}
	return filepath.Join(ls.basePath, rel)
}
