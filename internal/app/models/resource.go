package models

import "time"

// FileCategory labels an uploaded file by its extension.
type FileCategory string

const (
	CategoryPDF          FileCategory = "pdf"
	CategoryDocument     FileCategory = "document"
	CategoryPresentation FileCategory = "presentation"
	CategorySpreadsheet  FileCategory = "spreadsheet"
	CategoryImage        FileCategory = "image"
	CategoryVideo        FileCategory = "video"
	CategoryAudio        FileCategory = "audio"
	CategoryArchive      FileCategory = "archive"
)

// ResourceFile is one file attached to a learning resource.
type ResourceFile struct {
	ID         int64        `json:"id" db:"id"`
	ResourceID int64        `json:"resourceId" db:"resource_id"`
	FileURL    string       `json:"fileUrl" db:"file_url"`
	FileName   string       `json:"fileName" db:"file_name"` // Original name as uploaded
	FileSize   int64        `json:"fileSize" db:"file_size"`
	Extension  string       `json:"extension" db:"extension"`
	Category   FileCategory `json:"category" db:"category"`
	UploadedAt time.Time    `json:"uploadedAt" db:"uploaded_at"`
}

// Resource is a teaching/learning resource with attached files.
// Type is derived: the single most frequent file category among the
// attached files, first-seen winning on ties.
type Resource struct {
	ID          int64          `json:"id" db:"id"`
	Title       string         `json:"title" db:"title"`
	Description string         `json:"description,omitempty" db:"description"`
	Subject     string         `json:"subject" db:"subject"`
	Class       string         `json:"class" db:"class"`
	Teacher     string         `json:"teacher" db:"teacher"`
	Category    string         `json:"category,omitempty" db:"category"`
	Access      AccessLevel    `json:"accessLevel" db:"access_level"`
	Type        FileCategory   `json:"type" db:"type"`
	Files       []ResourceFile `json:"files"`
	UploadedBy  int64          `json:"uploadedBy" db:"uploaded_by"`
	Downloads   int            `json:"downloads" db:"downloads"`
	Active      bool           `json:"active" db:"active"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`
}
