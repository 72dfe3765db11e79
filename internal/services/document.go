package services

import (
	"context"
	"encoding/json"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "atsoptimizer/ats-backend/internal/errors"
	"atsoptimizer/ats-backend/internal/models"
	"atsoptimizer/ats-backend/internal/repositories"
)

// DocumentService handles resume uploads and parsing. Upload stores the
// file and records it as UPLOADED; the background worker later drives
// Parse, which extracts text and sections and moves the record to
// COMPLETED or FAILED.
type DocumentService interface {
	Upload(ctx context.Context, userID string, fileHeader *multipart.FileHeader) (*models.DocumentUploadResponse, error)
	GetDocument(ctx context.Context, id uuid.UUID) (*models.DocumentResponse, error)
	GetByUser(userID string) ([]models.DocumentResponse, error)
	Parse(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// supportedFileTypes maps accepted upload extensions to the stored file type.
var supportedFileTypes = map[string]string{
	".pdf":  "pdf",
	".docx": "docx",
}

type documentService struct {
	repo        repositories.DocumentRepository
	store       FileStore
	pdfParser   PDFParserService
	docxParser  DocxParserService
	maxFileSize int64
}

func NewDocumentService(
	repo repositories.DocumentRepository,
	store FileStore,
	pdfParser PDFParserService,
	docxParser DocxParserService,
	maxFileSize int64,
) DocumentService {
	return &documentService{
		repo:        repo,
		store:       store,
		pdfParser:   pdfParser,
		docxParser:  docxParser,
		maxFileSize: maxFileSize,
	}
}

func (s *documentService) Upload(ctx context.Context, userID string, fileHeader *multipart.FileHeader) (*models.DocumentUploadResponse, error) {
	if userID == "" {
		return nil, apperrors.Validation("user_id is required")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	fileType, ok := supportedFileTypes[ext]
	if !ok {
		return nil, apperrors.Validation("only PDF and DOCX files are supported, got %s", ext)
	}

	if fileHeader.Size > s.maxFileSize {
		return nil, apperrors.Validation("file size %d exceeds limit of %d bytes", fileHeader.Size, s.maxFileSize)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, apperrors.Validation("failed to open uploaded file: %v", err)
	}
	defer src.Close()

	storagePath, err := s.store.Save(ctx, fileHeader.Filename, src)
	if err != nil {
		return nil, err
	}

	document := &models.Document{
		ID:               uuid.New(),
		UserID:           userID,
		Filename:         storagePath,
		OriginalFileName: fileHeader.Filename,
		FileType:         fileType,
		StoragePath:      storagePath,
		FileSizeBytes:    fileHeader.Size,
		Status:           models.DocumentUploaded,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := s.repo.Create(document); err != nil {
		// The row failed, so the stored file is orphaned; best effort cleanup.
		if delErr := s.store.Delete(ctx, storagePath); delErr != nil {
			log.Printf("Failed to clean up stored file %s: %v\n", storagePath, delErr)
		}
		return nil, err
	}

	log.Printf("Document uploaded: %s (%s)\n", document.ID, fileHeader.Filename)

	return &models.DocumentUploadResponse{
		ID:           document.ID.String(),
		Filename:     document.Filename,
		OriginalName: document.OriginalFileName,
		FileType:     document.FileType,
		Status:       document.Status,
		Message:      "Document uploaded successfully and queued for processing",
	}, nil
}

func (s *documentService) GetDocument(ctx context.Context, id uuid.UUID) (*models.DocumentResponse, error) {
	document, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toDocumentResponse(document), nil
}

func (s *documentService) GetByUser(userID string) ([]models.DocumentResponse, error) {
	documents, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]models.DocumentResponse, 0, len(documents))
	for i := range documents {
		responses = append(responses, *toDocumentResponse(&documents[i]))
	}
	return responses, nil
}

// Parse extracts text and sections from a stored document. Failures are
// recorded on the row as FAILED and also returned.
func (s *documentService) Parse(ctx context.Context, id uuid.UUID) error {
	document, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	// The poller and the upload handler can both enqueue the same document;
	// only an UPLOADED row is eligible for parsing.
	if document.Status != models.DocumentUploaded {
		log.Printf("Skipping parse for document %s: status is %s\n", id, document.Status)
		return nil
	}

	if err := s.repo.UpdateStatus(id, models.DocumentProcessing); err != nil {
		return err
	}

	log.Printf("Parsing document: %s\n", id)

	parsedText, err := s.extract(ctx, document)
	if err != nil {
		log.Printf("Failed to parse document %s: %v\n", id, err)
		if updateErr := s.repo.UpdateError(id, err.Error()); updateErr != nil {
			log.Printf("Failed to record parse failure %s: %v\n", id, updateErr)
		}
		return err
	}

	sections := ExtractSections(parsedText)

	if err := s.repo.UpdateParsed(id, parsedText, toJSONMap(sections)); err != nil {
		return err
	}

	log.Printf("Document parsed successfully: %s (%d chars, %d sections)\n", id, len(parsedText), len(sections))
	return nil
}

func (s *documentService) extract(ctx context.Context, document *models.Document) (string, error) {
	localPath, cleanup, err := s.store.Fetch(ctx, document.StoragePath)
	if err != nil {
		return "", err
	}
	defer cleanup()

	if document.FileType == "docx" {
		return s.docxParser.ExtractText(localPath)
	}
	return s.pdfParser.ExtractText(localPath)
}

func (s *documentService) Delete(ctx context.Context, id uuid.UUID) error {
	document, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, document.StoragePath); err != nil {
		log.Printf("Failed to delete stored file %s: %v\n", document.StoragePath, err)
	}

	log.Printf("Document deleted: %s\n", id)
	return nil
}

func toDocumentResponse(document *models.Document) *models.DocumentResponse {
	return &models.DocumentResponse{
		ID:                document.ID.String(),
		UserID:            document.UserID,
		FileName:          document.OriginalFileName,
		FileType:          document.FileType,
		ParsedText:        document.ParsedText,
		ExtractedSections: fromJSONMap(document.ExtractedSections),
		FileSizeBytes:     document.FileSizeBytes,
		Status:            document.Status,
		ErrorMessage:      document.ErrorMessage,
		CreatedAt:         document.CreatedAt,
		UpdatedAt:         document.UpdatedAt,
	}
}

func toJSONMap(m map[string]string) string {
	if m == nil {
		m = map[string]string{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		log.Printf("Error converting map to JSON: %v\n", err)
		return "{}"
	}
	return string(data)
}

func fromJSONMap(raw string) map[string]string {
	if raw == "" {
		return map[string]string{}
	}
	var m map[string]string
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		log.Printf("Error parsing JSON map %q: %v\n", raw, err)
		return map[string]string{}
	}
	if m == nil {
		return map[string]string{}
	}
	return m
}
