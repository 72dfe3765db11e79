package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"atsoptimizer/ats-backend/internal/models"
	"atsoptimizer/ats-backend/internal/repositories"
)

// JobService stores job postings and runs keyword extraction over their text
// on every create and update. Reads by id go through the cache; update and
// delete invalidate it.
type JobService interface {
	Create(req *models.JobCreateRequest) (*models.JobResponse, error)
	GetJob(ctx context.Context, id uuid.UUID) (*models.JobResponse, error)
	GetByUser(userID string) ([]models.JobResponse, error)
	Search(keyword string) ([]models.JobResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *models.JobCreateRequest) (*models.JobResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type jobService struct {
	repo      repositories.JobRepository
	extractor KeywordExtractionService
	cache     JobCache
}

func NewJobService(repo repositories.JobRepository, extractor KeywordExtractionService, cache JobCache) JobService {
	return &jobService{
		repo:      repo,
		extractor: extractor,
		cache:     cache,
	}
}

func (s *jobService) Create(req *models.JobCreateRequest) (*models.JobResponse, error) {
	log.Printf("Creating job for user: %s, title: %s\n", req.UserID, req.Title)

	job := &models.Job{
		ID:           uuid.New(),
		UserID:       req.UserID,
		Title:        req.Title,
		Company:      req.Company,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		JobType:      req.JobType,
		SourceURL:    req.SourceURL,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	s.analyze(job, req)

	if err := s.repo.Create(job); err != nil {
		return nil, err
	}

	log.Printf("Job created successfully with id: %s\n", job.ID)
	return toJobResponse(job), nil
}

func (s *jobService) GetJob(ctx context.Context, id uuid.UUID) (*models.JobResponse, error) {
	if cached := s.cache.GetJob(ctx, id); cached != nil {
		return cached, nil
	}

	job, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	response := toJobResponse(job)
	s.cache.SetJob(ctx, id, response)
	return response, nil
}

func (s *jobService) GetByUser(userID string) ([]models.JobResponse, error) {
	jobs, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	return toJobResponses(jobs), nil
}

func (s *jobService) Search(keyword string) ([]models.JobResponse, error) {
	jobs, err := s.repo.Search(keyword)
	if err != nil {
		return nil, err
	}
	return toJobResponses(jobs), nil
}

func (s *jobService) Update(ctx context.Context, id uuid.UUID, req *models.JobCreateRequest) (*models.JobResponse, error) {
	log.Printf("Updating job with id: %s\n", id)

	job, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	job.Title = req.Title
	job.Company = req.Company
	job.Description = req.Description
	job.Requirements = req.Requirements
	job.Location = req.Location
	job.JobType = req.JobType
	job.SourceURL = req.SourceURL
	job.UpdatedAt = time.Now()
	s.analyze(job, req)

	if err := s.repo.Update(job); err != nil {
		return nil, err
	}
	s.cache.InvalidateJob(ctx, id)

	return toJobResponse(job), nil
}

func (s *jobService) Delete(ctx context.Context, id uuid.UUID) error {
	log.Printf("Deleting job with id: %s\n", id)
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.cache.InvalidateJob(ctx, id)
	return nil
}

// analyze re-runs keyword extraction over the combined description and
// requirements text and writes the results onto the entity.
func (s *jobService) analyze(job *models.Job, req *models.JobCreateRequest) {
	fullText := req.Description
	if req.Requirements != "" {
		fullText += " " + req.Requirements
	}

	job.ExtractedKeywords = toJSONList(s.extractor.ExtractKeywords(fullText))
	job.RequiredSkills = toJSONList(s.extractor.ExtractRequiredSkills(fullText))
	job.PreferredSkills = toJSONList(s.extractor.ExtractPreferredSkills(fullText))
	job.ExperienceLevel = s.extractor.DetectExperienceLevel(fullText)
	job.EducationLevel = s.extractor.DetectEducationLevel(fullText)
}

func toJobResponses(jobs []models.Job) []models.JobResponse {
	responses := make([]models.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, *toJobResponse(&jobs[i]))
	}
	return responses
}

func toJobResponse(job *models.Job) *models.JobResponse {
	return &models.JobResponse{
		ID:                job.ID.String(),
		UserID:            job.UserID,
		Title:             job.Title,
		Company:           job.Company,
		Description:       job.Description,
		Requirements:      job.Requirements,
		ExtractedKeywords: fromJSONList(job.ExtractedKeywords),
		RequiredSkills:    fromJSONList(job.RequiredSkills),
		PreferredSkills:   fromJSONList(job.PreferredSkills),
		ExperienceLevel:   job.ExperienceLevel,
		EducationLevel:    job.EducationLevel,
		Location:          job.Location,
		JobType:           job.JobType,
		SourceURL:         job.SourceURL,
		CreatedAt:         job.CreatedAt,
		UpdatedAt:         job.UpdatedAt,
	}
}
