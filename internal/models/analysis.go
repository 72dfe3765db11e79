package models

import (
	"time"

	"github.com/google/uuid"
)

type AnalysisStatus string

// Analysis status moves strictly forward: PENDING → IN_PROGRESS → COMPLETED
// or FAILED. No transition ever reverses.
const (
	AnalysisPending    AnalysisStatus = "PENDING"
	AnalysisInProgress AnalysisStatus = "IN_PROGRESS"
	AnalysisCompleted  AnalysisStatus = "COMPLETED"
	AnalysisFailed     AnalysisStatus = "FAILED"
)

// Analysis is the persistent aggregate for one scoring run of a
// (document, job) pair. The list columns hold JSON-encoded string arrays.
type Analysis struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DocumentID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"document_id"`
	JobID               uuid.UUID      `gorm:"type:uuid;not null;index" json:"job_id"`
	UserID              string         `gorm:"type:text;not null;index" json:"user_id"`
	AtsScore            int            `gorm:"not null;default:0" json:"ats_score"`
	KeywordMatches      string         `gorm:"type:text" json:"-"`
	MissingKeywords     string         `gorm:"type:text" json:"-"`
	Suggestions         string         `gorm:"type:text" json:"-"`
	AtsIssues           string         `gorm:"type:text" json:"-"`
	Strengths           string         `gorm:"type:text" json:"-"`
	Weaknesses          string         `gorm:"type:text" json:"-"`
	KeywordMatchScore   int            `gorm:"not null;default:0" json:"keyword_match_score"`
	AtsFormatScore      int            `gorm:"not null;default:0" json:"ats_format_score"`
	ContentQualityScore int            `gorm:"not null;default:0" json:"content_quality_score"`
	LlmAnalysisScore    int            `gorm:"not null;default:0" json:"llm_analysis_score"`
	Status              AnalysisStatus `gorm:"not null;default:'PENDING'" json:"status"`
	ErrorMessage        string         `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt           time.Time      `gorm:"type:timestamp;default:now()" json:"created_at"`
	CompletedAt         *time.Time     `gorm:"type:timestamp" json:"completed_at,omitempty"`
}

func (a *Analysis) TableName() string {
	return "analyses"
}
