package models

import "time"

type DocumentUploadResponse struct {
	ID           string         `json:"id"`
	Filename     string         `json:"filename"`
	OriginalName string         `json:"original_name"`
	FileType     string         `json:"file_type"`
	Status       DocumentStatus `json:"status"`
	Message      string         `json:"message"`
}

type DocumentResponse struct {
	ID                string            `json:"id"`
	UserID            string            `json:"user_id"`
	FileName          string            `json:"file_name"`
	FileType          string            `json:"file_type"`
	ParsedText        string            `json:"parsed_text,omitempty"`
	ExtractedSections map[string]string `json:"extracted_sections,omitempty"`
	FileSizeBytes     int64             `json:"file_size_bytes"`
	Status            DocumentStatus    `json:"status"`
	ErrorMessage      string            `json:"error_message,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

type JobCreateRequest struct {
	UserID       string `json:"user_id" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Company      string `json:"company"`
	Description  string `json:"description" validate:"required"`
	Requirements string `json:"requirements"`
	Location     string `json:"location"`
	JobType      string `json:"job_type"`
	SourceURL    string `json:"source_url"`
}

type JobResponse struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	Title             string    `json:"title"`
	Company           string    `json:"company,omitempty"`
	Description       string    `json:"description"`
	Requirements      string    `json:"requirements,omitempty"`
	ExtractedKeywords []string  `json:"extracted_keywords"`
	RequiredSkills    []string  `json:"required_skills"`
	PreferredSkills   []string  `json:"preferred_skills"`
	ExperienceLevel   string    `json:"experience_level,omitempty"`
	EducationLevel    string    `json:"education_level,omitempty"`
	Location          string    `json:"location,omitempty"`
	JobType           string    `json:"job_type,omitempty"`
	SourceURL         string    `json:"source_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type AnalysisRequest struct {
	UserID     string `json:"user_id" validate:"required"`
	DocumentID string `json:"document_id" validate:"required,uuid"`
	JobID      string `json:"job_id" validate:"required,uuid"`
}

type ScoreBreakdown struct {
	KeywordMatch   int `json:"keyword_match"`
	AtsFormat      int `json:"ats_format"`
	ContentQuality int `json:"content_quality"`
	LlmAnalysis    int `json:"llm_analysis"`
	Overall        int `json:"overall"`
}

type KeywordAnalysis struct {
	Matched         []string `json:"matched"`
	Missing         []string `json:"missing"`
	MatchPercentage float64  `json:"match_percentage"`
}

type AnalysisResponse struct {
	ID              string          `json:"id"`
	DocumentID      string          `json:"document_id"`
	JobID           string          `json:"job_id"`
	UserID          string          `json:"user_id"`
	AtsScore        int             `json:"ats_score"`
	Breakdown       ScoreBreakdown  `json:"breakdown"`
	KeywordAnalysis KeywordAnalysis `json:"keyword_analysis"`
	AtsIssues       []string        `json:"ats_issues"`
	Suggestions     []string        `json:"suggestions"`
	Strengths       []string        `json:"strengths"`
	Weaknesses      []string        `json:"weaknesses"`
	Status          AnalysisStatus  `json:"status"`
	ErrorMessage    string          `json:"error_message,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
}
