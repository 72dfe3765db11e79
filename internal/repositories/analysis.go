package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "atsoptimizer/ats-backend/internal/errors"
	"atsoptimizer/ats-backend/internal/models"
)

type AnalysisRepository interface {
	Create(analysis *models.Analysis) error
	FindByID(id uuid.UUID) (*models.Analysis, error)
	FindByUser(userID string) ([]models.Analysis, error)
	FindByDocument(documentID uuid.UUID) ([]models.Analysis, error)
	FindByJob(jobID uuid.UUID) ([]models.Analysis, error)
	UpdateStatus(id uuid.UUID, status models.AnalysisStatus) error
	UpdateResult(id uuid.UUID, result *AnalysisUpdateData) error
	UpdateError(id uuid.UUID, errorMsg string) error
	Delete(id uuid.UUID) error
}

// AnalysisUpdateData carries everything written on successful completion.
// The list fields are already JSON-encoded.
type AnalysisUpdateData struct {
	AtsScore            int
	KeywordMatchScore   int
	AtsFormatScore      int
	ContentQualityScore int
	LlmAnalysisScore    int
	KeywordMatches      string
	MissingKeywords     string
	Suggestions         string
	AtsIssues           string
	Strengths           string
	Weaknesses          string
	CompletedAt         time.Time
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) Create(analysis *models.Analysis) error {
	if err := r.db.Create(analysis).Error; err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}
	return nil
}

func (r *analysisRepository) FindByID(id uuid.UUID) (*models.Analysis, error) {
	var analysis models.Analysis
	if err := r.db.Where("id = ?", id).First(&analysis).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("analysis %s", id)
		}
		return nil, fmt.Errorf("failed to find analysis: %w", err)
	}
	return &analysis, nil
}

func (r *analysisRepository) FindByUser(userID string) ([]models.Analysis, error) {
	var analyses []models.Analysis
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&analyses).Error; err != nil {
		return nil, fmt.Errorf("failed to find analyses: %w", err)
	}
	return analyses, nil
}

func (r *analysisRepository) FindByDocument(documentID uuid.UUID) ([]models.Analysis, error) {
	var analyses []models.Analysis
	if err := r.db.Where("document_id = ?", documentID).Order("created_at DESC").Find(&analyses).Error; err != nil {
		return nil, fmt.Errorf("failed to find analyses: %w", err)
	}
	return analyses, nil
}

func (r *analysisRepository) FindByJob(jobID uuid.UUID) ([]models.Analysis, error) {
	var analyses []models.Analysis
	if err := r.db.Where("job_id = ?", jobID).Order("created_at DESC").Find(&analyses).Error; err != nil {
		return nil, fmt.Errorf("failed to find analyses: %w", err)
	}
	return analyses, nil
}

func (r *analysisRepository) UpdateStatus(id uuid.UUID, status models.AnalysisStatus) error {
	result := r.db.Model(&models.Analysis{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NotFound("analysis %s", id)
	}

	return nil
}

func (r *analysisRepository) UpdateResult(id uuid.UUID, data *AnalysisUpdateData) error {
	result := r.db.Model(&models.Analysis{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":                models.AnalysisCompleted,
			"ats_score":             data.AtsScore,
			"keyword_match_score":   data.KeywordMatchScore,
			"ats_format_score":      data.AtsFormatScore,
			"content_quality_score": data.ContentQualityScore,
			"llm_analysis_score":    data.LlmAnalysisScore,
			"keyword_matches":       data.KeywordMatches,
			"missing_keywords":      data.MissingKeywords,
			"suggestions":           data.Suggestions,
			"ats_issues":            data.AtsIssues,
			"strengths":             data.Strengths,
			"weaknesses":            data.Weaknesses,
			"completed_at":          data.CompletedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update result: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NotFound("analysis %s", id)
	}

	return nil
}

func (r *analysisRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.Analysis{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.AnalysisFailed,
			"error_message": errorMsg,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NotFound("analysis %s", id)
	}

	return nil
}

func (r *analysisRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Analysis{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete analysis: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("analysis %s", id)
	}
	return nil
}
