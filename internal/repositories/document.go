package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "atsoptimizer/ats-backend/internal/errors"
	"atsoptimizer/ats-backend/internal/models"
)

type DocumentRepository interface {
	Create(document *models.Document) error
	FindByID(id uuid.UUID) (*models.Document, error)
	FindByUser(userID string) ([]models.Document, error)
	FindByStatus(status models.DocumentStatus, limit int) ([]models.Document, error)
	UpdateParsed(id uuid.UUID, parsedText, sectionsJSON string) error
	UpdateStatus(id uuid.UUID, status models.DocumentStatus) error
	UpdateError(id uuid.UUID, errorMsg string) error
	Delete(id uuid.UUID) error
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

// Create implements DocumentRepository.
func (d *documentRepository) Create(document *models.Document) error {
	if err := d.db.Create(document).Error; err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	return nil
}

// FindByID implements DocumentRepository.
func (d *documentRepository) FindByID(id uuid.UUID) (*models.Document, error) {
	var doc models.Document
	if err := d.db.Where("id = ?", id).First(&doc).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("document %s", id)
		}

		return nil, fmt.Errorf("failed to find document: %w", err)
	}

	return &doc, nil
}

// FindByUser implements DocumentRepository.
func (d *documentRepository) FindByUser(userID string) ([]models.Document, error) {
	var docs []models.Document
	if err := d.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("failed to find documents: %w", err)
	}

	return docs, nil
}

// FindByStatus implements DocumentRepository.
func (d *documentRepository) FindByStatus(status models.DocumentStatus, limit int) ([]models.Document, error) {
	var docs []models.Document
	err := d.db.
		Where("status = ?", status).
		Order("created_at ASC").
		Limit(limit).
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find documents by status: %w", err)
	}

	return docs, nil
}

// UpdateParsed implements DocumentRepository.
func (d *documentRepository) UpdateParsed(id uuid.UUID, parsedText, sectionsJSON string) error {
	result := d.db.Model(&models.Document{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"parsed_text":        parsedText,
			"extracted_sections": sectionsJSON,
			"status":             models.DocumentCompleted,
			"updated_at":         time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update parsed text: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NotFound("document %s", id)
	}

	return nil
}

// UpdateStatus implements DocumentRepository.
func (d *documentRepository) UpdateStatus(id uuid.UUID, status models.DocumentStatus) error {
	result := d.db.Model(&models.Document{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NotFound("document %s", id)
	}

	return nil
}

// UpdateError implements DocumentRepository.
func (d *documentRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := d.db.Model(&models.Document{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.DocumentFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NotFound("document %s", id)
	}

	return nil
}

// Delete implements DocumentRepository.
func (d *documentRepository) Delete(id uuid.UUID) error {
	result := d.db.Where("id = ?", id).Delete(&models.Document{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete document: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NotFound("document %s", id)
	}

	return nil
}
