package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	apperrors "atsoptimizer/ats-backend/internal/errors"
	"atsoptimizer/ats-backend/internal/models"
)

// ContentQualityScore stands in for a content-quality agent that does not
// exist yet. Independent content scoring was never implemented upstream;
// keeping the constant explicit (instead of hiding a magic 75 in the
// calculator call) makes the gap visible.
const ContentQualityScore = 75

// DocumentProvider supplies parsed resume documents to the orchestrator.
type DocumentProvider interface {
	GetDocument(ctx context.Context, id uuid.UUID) (*models.DocumentResponse, error)
}

// JobProvider supplies analyzed job postings to the orchestrator.
type JobProvider interface {
	GetJob(ctx context.Context, id uuid.UUID) (*models.JobResponse, error)
}

// OrchestrationResult is the combined output of one pipeline run.
type OrchestrationResult struct {
	Keyword    KeywordMatchResult
	AtsCheck   AgentResult
	Suggestion AgentResult
	Final      AgentResult
	Document   *models.DocumentResponse
	Job        *models.JobResponse
}

// Orchestrator coordinates the scoring agents over one (document, job) pair:
// fetch both inputs in parallel, run the two independent scorers in parallel,
// then the LLM suggestion pass, then the final weighted score. The context is
// threaded through every fetch and the LLM round-trip so a cancelled request
// aborts in-flight work. There are no retries; only the SuggestionAgent
// recovers from its own failures.
type Orchestrator struct {
	documents       DocumentProvider
	jobs            JobProvider
	keywordMatcher  *KeywordMatcherAgent
	atsChecker      *AtsCheckerAgent
	suggestionAgent *SuggestionAgent
	scoreCalculator *ScoreCalculatorAgent
}

func NewOrchestrator(
	documents DocumentProvider,
	jobs JobProvider,
	keywordMatcher *KeywordMatcherAgent,
	atsChecker *AtsCheckerAgent,
	suggestionAgent *SuggestionAgent,
	scoreCalculator *ScoreCalculatorAgent,
) *Orchestrator {
	return &Orchestrator{
		documents:       documents,
		jobs:            jobs,
		keywordMatcher:  keywordMatcher,
		atsChecker:      atsChecker,
		suggestionAgent: suggestionAgent,
		scoreCalculator: scoreCalculator,
	}
}

func (o *Orchestrator) Run(ctx context.Context, documentID, jobID uuid.UUID) (*OrchestrationResult, error) {
	log.Printf("Orchestrator: Starting analysis for document=%s, job=%s\n", documentID, jobID)

	// Step 1: Fetch document and job in parallel
	var document *models.DocumentResponse
	var job *models.JobResponse

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		document, err = o.documents.GetDocument(gctx, documentID)
		return err
	})
	g.Go(func() error {
		var err error
		job, err = o.jobs.GetJob(gctx, jobID)
		return err
	})
	if err := g.Wait(); err != nil {
		// Missing rows and validation failures keep their classification;
		// anything else is an upstream communication failure.
		if apperrors.IsNotFound(err) || apperrors.IsValidation(err) {
			return nil, err
		}
		return nil, apperrors.Communication("failed to load analysis inputs: %v", err)
	}

	log.Println("Orchestrator: Fetched document and job successfully")

	if document.ParsedText == "" {
		return nil, apperrors.Validation("document has no parsed text")
	}

	// Step 2: Run the independent scorers in parallel. They share no state
	// and cannot fail, so the group only joins them.
	var keywordResult KeywordMatchResult
	var atsResult AgentResult

	g, _ = errgroup.WithContext(ctx)
	g.Go(func() error {
		keywordResult = o.keywordMatcher.Analyze(document.ParsedText, job.ExtractedKeywords, job.RequiredSkills)
		return nil
	})
	g.Go(func() error {
		atsResult = o.atsChecker.Analyze(document.ParsedText, document.ExtractedSections)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Println("Orchestrator: Completed keyword and ATS analysis")

	// Step 3: Suggestion agent needs the missing-keyword list from step 2.
	suggestionResult := o.suggestionAgent.Analyze(ctx, document.ParsedText, job.Title, job.Description, keywordResult.Missing)

	log.Println("Orchestrator: Completed LLM-based suggestion analysis")

	// Step 4: Final weighted score.
	finalResult := o.scoreCalculator.Calculate(
		keywordResult.Score,
		atsResult.Score,
		ContentQualityScore,
		suggestionResult.Score,
	)

	log.Printf("Orchestrator: Analysis complete. Final score: %d\n", finalResult.Score)

	return &OrchestrationResult{
		Keyword:    keywordResult,
		AtsCheck:   atsResult,
		Suggestion: suggestionResult,
		Final:      finalResult,
		Document:   document,
		Job:        job,
	}, nil
}
