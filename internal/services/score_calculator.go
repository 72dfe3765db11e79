package services

import (
	"fmt"
	"log"
	"math"
	"time"

	"atsoptimizer/ats-backend/internal/config"
)

// ScoreCalculatorAgent rolls the four component scores into one final ATS
// score with a configured linear weighting. Weights are expected to sum to
// 1.0 but are not validated; the rounded result is clamped to [0, 100] so a
// misconfigured weighting cannot leak an out-of-range score.
type ScoreCalculatorAgent struct {
	weights config.AgentWeights
}

func NewScoreCalculatorAgent(weights config.AgentWeights) *ScoreCalculatorAgent {
	return &ScoreCalculatorAgent{weights: weights}
}

func (a *ScoreCalculatorAgent) Calculate(keywordScore, atsScore, contentScore, llmScore int) AgentResult {
	log.Println("ScoreCalculatorAgent: Calculating final score")
	start := time.Now()

	weighted := float64(keywordScore)*a.weights.Keyword +
		float64(atsScore)*a.weights.Ats +
		float64(contentScore)*a.weights.Content +
		float64(llmScore)*a.weights.Llm
	finalScore := clampScore(int(math.Round(weighted)))

	rating := ratingFor(finalScore)

	findings := []string{
		fmt.Sprintf("Overall ATS Compatibility: %s (%d/100)", rating, finalScore),
		fmt.Sprintf("Keyword Match: %d/100 (%d%% weight)", keywordScore, int(a.weights.Keyword*100)),
		fmt.Sprintf("ATS Format: %d/100 (%d%% weight)", atsScore, int(a.weights.Ats*100)),
		fmt.Sprintf("Content Quality: %d/100 (%d%% weight)", contentScore, int(a.weights.Content*100)),
		fmt.Sprintf("AI Analysis: %d/100 (%d%% weight)", llmScore, int(a.weights.Llm*100)),
	}

	var suggestions []string
	switch {
	case finalScore < 60:
		suggestions = []string{
			"Your resume needs significant improvements to pass ATS screening",
			"Focus on adding missing keywords and improving formatting",
			"Consider a professional resume review",
		}
	case finalScore < 75:
		suggestions = []string{
			"Your resume has a moderate chance of passing ATS screening",
			"Review the specific suggestions from each category",
			"Pay special attention to areas with scores below 70",
		}
	case finalScore < 85:
		suggestions = []string{
			"Your resume has a good chance of passing ATS screening",
			"Make minor adjustments to improve your score further",
			"Focus on areas with the lowest individual scores",
		}
	default:
		suggestions = []string{
			"Your resume is well-optimized for ATS screening",
			"Continue to tailor it for each specific job application",
			"Ensure all information is current and accurate",
		}
	}

	log.Printf("ScoreCalculatorAgent: Final score calculated: %d\n", finalScore)

	return AgentResult{
		AgentName:       "ScoreCalculator",
		Score:           finalScore,
		Findings:        findings,
		Suggestions:     suggestions,
		ExecutionTimeMs: time.Since(start).Milliseconds(),
	}
}

// WeakestArea names the component with the lowest score. Ties resolve to the
// first area in the fixed order below.
func (a *ScoreCalculatorAgent) WeakestArea(keywordScore, atsScore, contentScore, llmScore int) string {
	areas := []struct {
		name  string
		score int
	}{
		{"Keyword Matching", keywordScore},
		{"ATS Format", atsScore},
		{"Content Quality", contentScore},
		{"Overall Quality", llmScore},
	}

	weakest := areas[0]
	for _, area := range areas[1:] {
		if area.score < weakest.score {
			weakest = area
		}
	}
	return weakest.name
}

func ratingFor(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 80:
		return "Very Good"
	case score >= 70:
		return "Good"
	case score >= 60:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}
