package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "atsoptimizer/ats-backend/internal/errors"
	"atsoptimizer/ats-backend/internal/models"
	"atsoptimizer/ats-backend/internal/repositories"
)

// AnalysisService owns the analysis lifecycle: it creates the PENDING
// record, drives the orchestrator synchronously, and is the single place
// that turns an in-flight failure into a persisted FAILED record before
// re-returning the error to the caller.
type AnalysisService interface {
	Create(ctx context.Context, req *models.AnalysisRequest) (*models.AnalysisResponse, error)
	Get(id uuid.UUID) (*models.AnalysisResponse, error)
	GetByUser(userID string) ([]models.AnalysisResponse, error)
	GetByDocument(documentID uuid.UUID) ([]models.AnalysisResponse, error)
	GetByJob(jobID uuid.UUID) ([]models.AnalysisResponse, error)
	Delete(id uuid.UUID) error
}

type analysisService struct {
	repo         repositories.AnalysisRepository
	orchestrator *Orchestrator
}

func NewAnalysisService(repo repositories.AnalysisRepository, orchestrator *Orchestrator) AnalysisService {
	return &analysisService{
		repo:         repo,
		orchestrator: orchestrator,
	}
}

func (s *analysisService) Create(ctx context.Context, req *models.AnalysisRequest) (*models.AnalysisResponse, error) {
	if req.UserID == "" || req.DocumentID == "" || req.JobID == "" {
		return nil, apperrors.Validation("user_id, document_id and job_id are required")
	}

	documentID, err := uuid.Parse(req.DocumentID)
	if err != nil {
		return nil, apperrors.Validation("invalid document_id: %v", err)
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return nil, apperrors.Validation("invalid job_id: %v", err)
	}

	log.Printf("Creating analysis for user=%s, doc=%s, job=%s\n", req.UserID, documentID, jobID)

	analysis := &models.Analysis{
		ID:         uuid.New(),
		DocumentID: documentID,
		JobID:      jobID,
		UserID:     req.UserID,
		Status:     models.AnalysisPending,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.Create(analysis); err != nil {
		return nil, err
	}
	log.Printf("Analysis created with id: %s\n", analysis.ID)

	response, err := s.process(ctx, analysis)
	if err != nil {
		log.Printf("Error processing analysis %s: %v\n", analysis.ID, err)
		if updateErr := s.repo.UpdateError(analysis.ID, err.Error()); updateErr != nil {
			log.Printf("Failed to record analysis failure %s: %v\n", analysis.ID, updateErr)
		}
		return nil, err
	}

	return response, nil
}

func (s *analysisService) process(ctx context.Context, analysis *models.Analysis) (*models.AnalysisResponse, error) {
	if err := s.repo.UpdateStatus(analysis.ID, models.AnalysisInProgress); err != nil {
		return nil, err
	}

	results, err := s.orchestrator.Run(ctx, analysis.DocumentID, analysis.JobID)
	if err != nil {
		return nil, err
	}

	keyword := results.Keyword
	ats := results.AtsCheck
	suggestion := results.Suggestion
	final := results.Final

	// All agent suggestions, combined and deduplicated in order.
	allSuggestions := distinct(concat(keyword.Suggestions, ats.Suggestions, suggestion.Suggestions))

	allIssues := filterContains(ats.Findings, "missing", "no ", "limited")

	strengths := firstN(distinct(filterContains(
		concat(keyword.Findings, ats.Findings, suggestion.Findings),
		"good", "strong", "appropriate",
	)), 5)

	weaknesses := firstN(distinct(filterContains(
		concat(keyword.Findings, ats.Findings),
		"missing", "lacks", "limited",
	)), 5)

	completedAt := time.Now()
	update := &repositories.AnalysisUpdateData{
		AtsScore:            final.Score,
		KeywordMatchScore:   keyword.Score,
		AtsFormatScore:      ats.Score,
		ContentQualityScore: ContentQualityScore,
		LlmAnalysisScore:    suggestion.Score,
		KeywordMatches:      toJSONList(keyword.Matched),
		MissingKeywords:     toJSONList(keyword.Missing),
		Suggestions:         toJSONList(allSuggestions),
		AtsIssues:           toJSONList(allIssues),
		Strengths:           toJSONList(strengths),
		Weaknesses:          toJSONList(weaknesses),
		CompletedAt:         completedAt,
	}

	if err := s.repo.UpdateResult(analysis.ID, update); err != nil {
		return nil, err
	}

	log.Printf("Analysis completed: %s, score: %d\n", analysis.ID, final.Score)

	saved, err := s.repo.FindByID(analysis.ID)
	if err != nil {
		return nil, err
	}
	return toAnalysisResponse(saved), nil
}

func (s *analysisService) Get(id uuid.UUID) (*models.AnalysisResponse, error) {
	analysis, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toAnalysisResponse(analysis), nil
}

func (s *analysisService) GetByUser(userID string) ([]models.AnalysisResponse, error) {
	analyses, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	return toAnalysisResponses(analyses), nil
}

func (s *analysisService) GetByDocument(documentID uuid.UUID) ([]models.AnalysisResponse, error) {
	analyses, err := s.repo.FindByDocument(documentID)
	if err != nil {
		return nil, err
	}
	return toAnalysisResponses(analyses), nil
}

func (s *analysisService) GetByJob(jobID uuid.UUID) ([]models.AnalysisResponse, error) {
	analyses, err := s.repo.FindByJob(jobID)
	if err != nil {
		return nil, err
	}
	return toAnalysisResponses(analyses), nil
}

func (s *analysisService) Delete(id uuid.UUID) error {
	log.Printf("Deleting analysis: %s\n", id)
	return s.repo.Delete(id)
}

func toAnalysisResponses(analyses []models.Analysis) []models.AnalysisResponse {
	responses := make([]models.AnalysisResponse, 0, len(analyses))
	for i := range analyses {
		responses = append(responses, *toAnalysisResponse(&analyses[i]))
	}
	return responses
}

func toAnalysisResponse(analysis *models.Analysis) *models.AnalysisResponse {
	matched := fromJSONList(analysis.KeywordMatches)
	missing := fromJSONList(analysis.MissingKeywords)

	matchPercentage := 0.0
	if total := len(matched) + len(missing); total > 0 {
		matchPercentage = float64(len(matched)) / float64(total) * 100
	}

	return &models.AnalysisResponse{
		ID:         analysis.ID.String(),
		DocumentID: analysis.DocumentID.String(),
		JobID:      analysis.JobID.String(),
		UserID:     analysis.UserID,
		AtsScore:   analysis.AtsScore,
		Breakdown: models.ScoreBreakdown{
			KeywordMatch:   analysis.KeywordMatchScore,
			AtsFormat:      analysis.AtsFormatScore,
			ContentQuality: analysis.ContentQualityScore,
			LlmAnalysis:    analysis.LlmAnalysisScore,
			Overall:        analysis.AtsScore,
		},
		KeywordAnalysis: models.KeywordAnalysis{
			Matched:         matched,
			Missing:         missing,
			MatchPercentage: matchPercentage,
		},
		AtsIssues:    fromJSONList(analysis.AtsIssues),
		Suggestions:  fromJSONList(analysis.Suggestions),
		Strengths:    fromJSONList(analysis.Strengths),
		Weaknesses:   fromJSONList(analysis.Weaknesses),
		Status:       analysis.Status,
		ErrorMessage: analysis.ErrorMessage,
		CreatedAt:    analysis.CreatedAt,
		CompletedAt:  analysis.CompletedAt,
	}
}

// toJSONList encodes a string list for a text column. Encoding errors
// degrade to an empty list.
func toJSONList(list []string) string {
	if list == nil {
		list = []string{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		log.Printf("Error converting list to JSON: %v\n", err)
		return "[]"
	}
	return string(data)
}

// fromJSONList decodes a text column back to a string list. Corrupt JSON
// degrades to an empty list rather than failing the read.
func fromJSONList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		log.Printf("Error parsing JSON list %q: %v\n", raw, err)
		return []string{}
	}
	if list == nil {
		return []string{}
	}
	return list
}

func concat(lists ...[]string) []string {
	var out []string
	for _, list := range lists {
		out = append(out, list...)
	}
	return out
}

func distinct(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}

func filterContains(items []string, substrings ...string) []string {
	var out []string
	for _, item := range items {
		lower := strings.ToLower(item)
		for _, sub := range substrings {
			if strings.Contains(lower, sub) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
