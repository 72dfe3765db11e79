package models

import (
	"time"

	"github.com/google/uuid"
)

// Job is a stored job posting. The extracted keyword and skill lists are
// persisted as JSON-encoded text columns and decoded on read.
type Job struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID            string    `gorm:"type:text;not null;index" json:"user_id"`
	Title             string    `gorm:"type:text;not null" json:"title"`
	Company           string    `gorm:"type:text" json:"company,omitempty"`
	Description       string    `gorm:"type:text;not null" json:"description"`
	Requirements      string    `gorm:"type:text" json:"requirements,omitempty"`
	ExtractedKeywords string    `gorm:"type:text" json:"-"`
	RequiredSkills    string    `gorm:"type:text" json:"-"`
	PreferredSkills   string    `gorm:"type:text" json:"-"`
	ExperienceLevel   string    `gorm:"type:text" json:"experience_level,omitempty"`
	EducationLevel    string    `gorm:"type:text" json:"education_level,omitempty"`
	Location          string    `gorm:"type:text" json:"location,omitempty"`
	JobType           string    `gorm:"type:text" json:"job_type,omitempty"`
	SourceURL         string    `gorm:"type:text" json:"source_url,omitempty"`
	CreatedAt         time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt         time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}
