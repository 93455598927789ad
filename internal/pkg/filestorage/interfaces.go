package filestorage

import "mime/multipart"

// StoredFile describes a file after it has been written to storage.
type StoredFile struct {
	URL          string // Public URL the file is served under
	StoredName   string // Sanitized on-disk name
	OriginalName string // Name as uploaded
	Size         int64  // Size in bytes
}

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFile saves a file into the storage root
	SaveFile(fileHeader *multipart.FileHeader) (*StoredFile, error)

	// SaveFileWithPath saves a file into a subdirectory of the storage root
	SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (*StoredFile, error)

	// DeleteFile removes a stored file given its URL or stored path
	DeleteFile(filePath string) error

	// GetFullPath returns the filesystem path for a given file URL
	GetFullPath(fileURL string) string
}
