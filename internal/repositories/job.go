package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "atsoptimizer/ats-backend/internal/errors"
	"atsoptimizer/ats-backend/internal/models"
)

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id uuid.UUID) (*models.Job, error)
	FindByUser(userID string) ([]models.Job, error)
	Search(keyword string) ([]models.Job, error)
	Update(job *models.Job) error
	Delete(id uuid.UUID) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// Create implements JobRepository.
func (r *jobRepository) Create(job *models.Job) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// FindByID implements JobRepository.
func (r *jobRepository) FindByID(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := r.db.Where("id = ?", id).First(&job).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("job %s", id)
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return &job, nil
}

// FindByUser implements JobRepository.
func (r *jobRepository) FindByUser(userID string) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to find jobs: %w", err)
	}
	return jobs, nil
}

// Search implements JobRepository.
func (r *jobRepository) Search(keyword string) ([]models.Job, error) {
	var jobs []models.Job
	pattern := "%" + keyword + "%"
	err := r.db.
		Where("title ILIKE ? OR description ILIKE ? OR company ILIKE ?", pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search jobs: %w", err)
	}
	return jobs, nil
}

// Update implements JobRepository.
func (r *jobRepository) Update(job *models.Job) error {
	result := r.db.Model(&models.Job{}).Where("id = ?", job.ID).Updates(job)
	if result.Error != nil {
		return fmt.Errorf("failed to update job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("job %s", job.ID)
	}
	return nil
}

// Delete implements JobRepository.
func (r *jobRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Job{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("job %s", id)
	}
	return nil
}
