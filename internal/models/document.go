package models

import (
	"time"

	"github.com/google/uuid"
)

type DocumentStatus string

const (
	DocumentUploaded   DocumentStatus = "UPLOADED"
	DocumentProcessing DocumentStatus = "PROCESSING"
	DocumentCompleted  DocumentStatus = "COMPLETED"
	DocumentFailed     DocumentStatus = "FAILED"
)

type Document struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID            string         `gorm:"type:text;not null;index" json:"user_id"`
	Filename          string         `gorm:"type:text" json:"filename"`
	OriginalFileName  string         `gorm:"type:text" json:"original_filename"`
	FileType          string         `gorm:"type:text" json:"file_type"`
	StoragePath       string         `gorm:"type:text" json:"storage_path"`
	FileSizeBytes     int64          `gorm:"type:bigint" json:"file_size_bytes"`
	ParsedText        string         `gorm:"type:text" json:"parsed_text,omitempty"`
	ExtractedSections string         `gorm:"type:text" json:"-"`
	Status            DocumentStatus `gorm:"not null;default:'UPLOADED'" json:"status"`
	ErrorMessage      string         `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt         time.Time      `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (d *Document) TableName() string {
	return "documents"
}
