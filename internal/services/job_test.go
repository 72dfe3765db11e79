package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "atsoptimizer/ats-backend/internal/errors"
	"atsoptimizer/ats-backend/internal/models"
	"atsoptimizer/ats-backend/internal/repositories"
)

type fakeJobRepo struct {
	jobs map[uuid.UUID]*models.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[uuid.UUID]*models.Job)}
}

func (r *fakeJobRepo) Create(job *models.Job) error {
	copied := *job
	r.jobs[job.ID] = &copied
	return nil
}

func (r *fakeJobRepo) FindByID(id uuid.UUID) (*models.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, apperrors.NotFound("job %s", id)
	}
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) FindByUser(userID string) ([]models.Job, error) {
	var out []models.Job
	for _, j := range r.jobs {
		if j.UserID == userID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) Search(keyword string) ([]models.Job, error) {
	var out []models.Job
	lower := strings.ToLower(keyword)
	for _, j := range r.jobs {
		if strings.Contains(strings.ToLower(j.Title), lower) ||
			strings.Contains(strings.ToLower(j.Description), lower) {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) Update(job *models.Job) error {
	if _, ok := r.jobs[job.ID]; !ok {
		return apperrors.NotFound("job %s", job.ID)
	}
	copied := *job
	r.jobs[job.ID] = &copied
	return nil
}

func (r *fakeJobRepo) Delete(id uuid.UUID) error {
	if _, ok := r.jobs[id]; !ok {
		return apperrors.NotFound("job %s", id)
	}
	delete(r.jobs, id)
	return nil
}

var _ repositories.JobRepository = (*fakeJobRepo)(nil)

type fakeJobCache struct {
	entries map[uuid.UUID]*models.JobResponse
}

func newFakeJobCache() *fakeJobCache {
	return &fakeJobCache{entries: make(map[uuid.UUID]*models.JobResponse)}
}

func (c *fakeJobCache) GetJob(ctx context.Context, id uuid.UUID) *models.JobResponse {
	return c.entries[id]
}

func (c *fakeJobCache) SetJob(ctx context.Context, id uuid.UUID, job *models.JobResponse) {
	c.entries[id] = job
}

func (c *fakeJobCache) InvalidateJob(ctx context.Context, id uuid.UUID) {
	delete(c.entries, id)
}

var _ JobCache = (*fakeJobCache)(nil)

func TestJobServiceCreateExtractsKeywords(t *testing.T) {
	repo := newFakeJobRepo()
	service := NewJobService(repo, NewKeywordExtractionService(), NewNoopJobCache())

	response, err := service.Create(&models.JobCreateRequest{
		UserID:       "user-1",
		Title:        "Senior Backend Engineer",
		Description:  "We build services in Go with PostgreSQL and Docker.",
		Requirements: "Must have strong Go skills. 5+ years building systems.",
	})

	require.NoError(t, err)
	assert.Contains(t, response.ExtractedKeywords, "go")
	assert.Contains(t, response.ExtractedKeywords, "postgresql")
	assert.Contains(t, response.ExtractedKeywords, "docker")
	assert.Contains(t, response.ExtractedKeywords, "5+ years experience")
	assert.Contains(t, response.RequiredSkills, "go")
	assert.Equal(t, "Senior", response.ExperienceLevel)
}

func TestJobServiceUpdateReextractsKeywords(t *testing.T) {
	repo := newFakeJobRepo()
	service := NewJobService(repo, NewKeywordExtractionService(), NewNoopJobCache())

	created, err := service.Create(&models.JobCreateRequest{
		UserID:      "user-1",
		Title:       "Backend Engineer",
		Description: "We build services in Go.",
	})
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), uuid.MustParse(created.ID), &models.JobCreateRequest{
		UserID:      "user-1",
		Title:       "Data Engineer",
		Description: "We build pipelines in Python.",
	})
	require.NoError(t, err)

	assert.Contains(t, updated.ExtractedKeywords, "python")
	assert.NotContains(t, updated.ExtractedKeywords, "go")
}

func TestJobServiceGetNotFound(t *testing.T) {
	service := NewJobService(newFakeJobRepo(), NewKeywordExtractionService(), NewNoopJobCache())

	_, err := service.GetJob(context.Background(), uuid.New())

	assert.True(t, apperrors.IsNotFound(err))
}

func TestJobServiceGetDecodesStoredLists(t *testing.T) {
	repo := newFakeJobRepo()
	service := NewJobService(repo, NewKeywordExtractionService(), NewNoopJobCache())

	id := uuid.New()
	repo.jobs[id] = &models.Job{
		ID:                id,
		UserID:            "user-1",
		Title:             "Backend Engineer",
		ExtractedKeywords: `["go","docker"]`,
		RequiredSkills:    `["go"]`,
	}

	response, err := service.GetJob(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, []string{"go", "docker"}, response.ExtractedKeywords)
	assert.Equal(t, []string{"go"}, response.RequiredSkills)
	assert.Empty(t, response.PreferredSkills)
}

func TestJobServiceDelete(t *testing.T) {
	repo := newFakeJobRepo()
	service := NewJobService(repo, NewKeywordExtractionService(), NewNoopJobCache())

	created, err := service.Create(&models.JobCreateRequest{
		UserID:      "user-1",
		Title:       "Backend Engineer",
		Description: "Build things",
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), uuid.MustParse(created.ID)))
	assert.True(t, apperrors.IsNotFound(service.Delete(context.Background(), uuid.MustParse(created.ID))))
}

func TestJobServiceGetCachesResponse(t *testing.T) {
	repo := newFakeJobRepo()
	cache := newFakeJobCache()
	service := NewJobService(repo, NewKeywordExtractionService(), cache)

	created, err := service.Create(&models.JobCreateRequest{
		UserID:      "user-1",
		Title:       "Backend Engineer",
		Description: "We build services in Go.",
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	first, err := service.GetJob(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, cache.entries[id])

	// Served from cache: removing the row from the repo must not matter.
	delete(repo.jobs, id)
	second, err := service.GetJob(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestJobServiceUpdateInvalidatesCache(t *testing.T) {
	repo := newFakeJobRepo()
	cache := newFakeJobCache()
	service := NewJobService(repo, NewKeywordExtractionService(), cache)

	created, err := service.Create(&models.JobCreateRequest{
		UserID:      "user-1",
		Title:       "Backend Engineer",
		Description: "We build services in Go.",
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	_, err = service.GetJob(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, cache.entries[id])

	_, err = service.Update(context.Background(), id, &models.JobCreateRequest{
		UserID:      "user-1",
		Title:       "Data Engineer",
		Description: "We build pipelines in Python.",
	})
	require.NoError(t, err)
	assert.Nil(t, cache.entries[id])

	refreshed, err := service.GetJob(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Data Engineer", refreshed.Title)
}

func TestJobServiceDeleteInvalidatesCache(t *testing.T) {
	repo := newFakeJobRepo()
	cache := newFakeJobCache()
	service := NewJobService(repo, NewKeywordExtractionService(), cache)

	created, err := service.Create(&models.JobCreateRequest{
		UserID:      "user-1",
		Title:       "Backend Engineer",
		Description: "We build services in Go.",
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	_, err = service.GetJob(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, cache.entries[id])

	require.NoError(t, service.Delete(context.Background(), id))
	assert.Nil(t, cache.entries[id])
}
