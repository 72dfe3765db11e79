package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "atsoptimizer/ats-backend/internal/errors"
	"atsoptimizer/ats-backend/internal/models"
	"atsoptimizer/ats-backend/internal/repositories"
)

type fakeAnalysisRepo struct {
	analyses map[uuid.UUID]*models.Analysis
}

func newFakeAnalysisRepo() *fakeAnalysisRepo {
	return &fakeAnalysisRepo{analyses: make(map[uuid.UUID]*models.Analysis)}
}

func (r *fakeAnalysisRepo) Create(analysis *models.Analysis) error {
	copied := *analysis
	r.analyses[analysis.ID] = &copied
	return nil
}

func (r *fakeAnalysisRepo) FindByID(id uuid.UUID) (*models.Analysis, error) {
	analysis, ok := r.analyses[id]
	if !ok {
		return nil, apperrors.NotFound("analysis %s", id)
	}
	copied := *analysis
	return &copied, nil
}

func (r *fakeAnalysisRepo) FindByUser(userID string) ([]models.Analysis, error) {
	var out []models.Analysis
	for _, a := range r.analyses {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAnalysisRepo) FindByDocument(documentID uuid.UUID) ([]models.Analysis, error) {
	var out []models.Analysis
	for _, a := range r.analyses {
		if a.DocumentID == documentID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAnalysisRepo) FindByJob(jobID uuid.UUID) ([]models.Analysis, error) {
	var out []models.Analysis
	for _, a := range r.analyses {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAnalysisRepo) UpdateStatus(id uuid.UUID, status models.AnalysisStatus) error {
	analysis, ok := r.analyses[id]
	if !ok {
		return apperrors.NotFound("analysis %s", id)
	}
	analysis.Status = status
	return nil
}

func (r *fakeAnalysisRepo) UpdateResult(id uuid.UUID, data *repositories.AnalysisUpdateData) error {
	analysis, ok := r.analyses[id]
	if !ok {
		return apperrors.NotFound("analysis %s", id)
	}
	analysis.Status = models.AnalysisCompleted
	analysis.AtsScore = data.AtsScore
	analysis.KeywordMatchScore = data.KeywordMatchScore
	analysis.AtsFormatScore = data.AtsFormatScore
	analysis.ContentQualityScore = data.ContentQualityScore
	analysis.LlmAnalysisScore = data.LlmAnalysisScore
	analysis.KeywordMatches = data.KeywordMatches
	analysis.MissingKeywords = data.MissingKeywords
	analysis.Suggestions = data.Suggestions
	analysis.AtsIssues = data.AtsIssues
	analysis.Strengths = data.Strengths
	analysis.Weaknesses = data.Weaknesses
	completedAt := data.CompletedAt
	analysis.CompletedAt = &completedAt
	return nil
}

func (r *fakeAnalysisRepo) UpdateError(id uuid.UUID, errorMsg string) error {
	analysis, ok := r.analyses[id]
	if !ok {
		return apperrors.NotFound("analysis %s", id)
	}
	analysis.Status = models.AnalysisFailed
	analysis.ErrorMessage = errorMsg
	return nil
}

func (r *fakeAnalysisRepo) Delete(id uuid.UUID) error {
	if _, ok := r.analyses[id]; !ok {
		return apperrors.NotFound("analysis %s", id)
	}
	delete(r.analyses, id)
	return nil
}

func analysisFixtures() (*stubDocumentProvider, *stubJobProvider) {
	docs := &stubDocumentProvider{doc: &models.DocumentResponse{
		ID:         uuid.New().String(),
		ParsedText: wellFormedResume() + " go docker",
	}}
	jobs := &stubJobProvider{job: &models.JobResponse{
		ID:                uuid.New().String(),
		Title:             "Backend Engineer",
		Description:       "Build services",
		ExtractedKeywords: []string{"go", "docker", "terraform"},
		RequiredSkills:    []string{"go"},
	}}
	return docs, jobs
}

func validAnalysisRequest() *models.AnalysisRequest {
	return &models.AnalysisRequest{
		UserID:     "user-1",
		DocumentID: uuid.New().String(),
		JobID:      uuid.New().String(),
	}
}

func TestAnalysisServiceCreateCompletes(t *testing.T) {
	repo := newFakeAnalysisRepo()
	docs, jobs := analysisFixtures()
	llm := &stubLLM{response: "SCORE: 90\nSUGGESTIONS:\n- Mention terraform"}
	service := NewAnalysisService(repo, newTestOrchestrator(docs, jobs, llm))

	response, err := service.Create(context.Background(), validAnalysisRequest())

	require.NoError(t, err)
	assert.Equal(t, models.AnalysisCompleted, response.Status)
	assert.Equal(t, 83, response.AtsScore)
	assert.Equal(t, 83, response.Breakdown.Overall)
	assert.Equal(t, 67, response.Breakdown.KeywordMatch)
	assert.Equal(t, 100, response.Breakdown.AtsFormat)
	assert.Equal(t, 75, response.Breakdown.ContentQuality)
	assert.Equal(t, 90, response.Breakdown.LlmAnalysis)
	assert.Equal(t, []string{"go", "docker"}, response.KeywordAnalysis.Matched)
	assert.Equal(t, []string{"terraform"}, response.KeywordAnalysis.Missing)
	assert.InDelta(t, 66.7, response.KeywordAnalysis.MatchPercentage, 0.1)
	assert.Contains(t, response.Suggestions, "Mention terraform")
	assert.NotNil(t, response.CompletedAt)
}

func TestAnalysisServiceCreateRecordsFailure(t *testing.T) {
	repo := newFakeAnalysisRepo()
	docs := &stubDocumentProvider{err: apperrors.Communication("document service unreachable")}
	jobs := &stubJobProvider{job: &models.JobResponse{}}
	service := NewAnalysisService(repo, newTestOrchestrator(docs, jobs, &stubLLM{}))

	_, err := service.Create(context.Background(), validAnalysisRequest())

	require.Error(t, err)
	require.Len(t, repo.analyses, 1)
	for _, analysis := range repo.analyses {
		assert.Equal(t, models.AnalysisFailed, analysis.Status)
		assert.Contains(t, analysis.ErrorMessage, "document service unreachable")
	}
}

func TestAnalysisServiceCreateValidatesIDs(t *testing.T) {
	repo := newFakeAnalysisRepo()
	docs, jobs := analysisFixtures()
	service := NewAnalysisService(repo, newTestOrchestrator(docs, jobs, &stubLLM{}))

	req := validAnalysisRequest()
	req.DocumentID = "not-a-uuid"
	_, err := service.Create(context.Background(), req)

	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, repo.analyses)
}

func TestAnalysisServiceCreateRejectsMissingFields(t *testing.T) {
	repo := newFakeAnalysisRepo()
	docs, jobs := analysisFixtures()
	service := NewAnalysisService(repo, newTestOrchestrator(docs, jobs, &stubLLM{}))

	_, err := service.Create(context.Background(), &models.AnalysisRequest{})

	assert.True(t, apperrors.IsValidation(err))
}

func TestAnalysisServiceGetNotFound(t *testing.T) {
	repo := newFakeAnalysisRepo()
	docs, jobs := analysisFixtures()
	service := NewAnalysisService(repo, newTestOrchestrator(docs, jobs, &stubLLM{}))

	_, err := service.Get(uuid.New())

	assert.True(t, apperrors.IsNotFound(err))
}

func TestAnalysisServiceGetIsIdempotent(t *testing.T) {
	repo := newFakeAnalysisRepo()
	docs, jobs := analysisFixtures()
	llm := &stubLLM{response: "SCORE: 90\nSUGGESTIONS:\n- Mention terraform"}
	service := NewAnalysisService(repo, newTestOrchestrator(docs, jobs, llm))

	created, err := service.Create(context.Background(), validAnalysisRequest())
	require.NoError(t, err)

	first, err := service.Get(uuid.MustParse(created.ID))
	require.NoError(t, err)
	second, err := service.Get(uuid.MustParse(created.ID))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalysisServiceDeleteNotFound(t *testing.T) {
	repo := newFakeAnalysisRepo()
	docs, jobs := analysisFixtures()
	service := NewAnalysisService(repo, newTestOrchestrator(docs, jobs, &stubLLM{}))

	err := service.Delete(uuid.New())

	assert.True(t, apperrors.IsNotFound(err))
}

func TestJSONListRoundTrip(t *testing.T) {
	assert.Equal(t, `["a","b"]`, toJSONList([]string{"a", "b"}))
	assert.Equal(t, "[]", toJSONList(nil))
	assert.Equal(t, []string{"a", "b"}, fromJSONList(`["a","b"]`))
}

func TestFromJSONListDegradesOnCorruptData(t *testing.T) {
	assert.Empty(t, fromJSONList("not json"))
	assert.Empty(t, fromJSONList(""))
	assert.Empty(t, fromJSONList("null"))
}

func TestDistinctPreservesFirstSeenOrder(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, distinct([]string{"b", "a", "b", "c", "a"}))
}

func TestFilterContainsIsCaseInsensitive(t *testing.T) {
	items := []string{"Missing key sections: education", "Good use of bullet points", "No email address detected"}

	out := filterContains(items, "missing", "no ")

	assert.Equal(t, []string{"Missing key sections: education", "No email address detected"}, out)
}

var _ repositories.AnalysisRepository = (*fakeAnalysisRepo)(nil)
