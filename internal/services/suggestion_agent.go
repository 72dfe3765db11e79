package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const defaultLlmScore = 75

// SuggestionAgent asks the configured LLM for personalized resume advice.
// LLM unavailability is recoverable here and only here: any client error is
// swallowed and replaced with rule-based fallback suggestions, so this agent
// can never fail an orchestration run.
type SuggestionAgent struct {
	llm LLMClient
}

func NewSuggestionAgent(llm LLMClient) *SuggestionAgent {
	return &SuggestionAgent{llm: llm}
}

func (a *SuggestionAgent) Analyze(ctx context.Context, resumeText, jobTitle, jobDescription string, missingKeywords []string) AgentResult {
	log.Println("SuggestionAgent: Starting LLM-based analysis")
	start := time.Now()

	score := defaultLlmScore
	var findings, suggestions []string

	prompt := buildSuggestionPrompt(resumeText, jobTitle, jobDescription, missingKeywords)
	response, err := a.llm.Generate(ctx, prompt)
	if err != nil {
		log.Printf("SuggestionAgent: LLM call failed: %v\n", err)
		findings = append(findings, "LLM analysis unavailable - using rule-based suggestions")
		suggestions = append(suggestions, fallbackSuggestions(missingKeywords)...)
	} else {
		parsed := parseSuggestions(response)
		suggestions = append(suggestions, parsed...)
		score = parseLlmScore(response)
		findings = append(findings, "AI analysis completed successfully")
		findings = append(findings, fmt.Sprintf("Generated %d personalized recommendations", len(parsed)))
	}

	log.Printf("SuggestionAgent: Completed with score %d\n", score)

	return AgentResult{
		AgentName:       "SuggestionAgent",
		Score:           clampScore(score),
		Findings:        findings,
		Suggestions:     suggestions,
		ExecutionTimeMs: time.Since(start).Milliseconds(),
	}
}

func buildSuggestionPrompt(resumeText, jobTitle, jobDescription string, missingKeywords []string) string {
	return fmt.Sprintf(`You are an expert resume reviewer helping a candidate optimize their resume for an ATS system.

JOB TITLE: %s

JOB DESCRIPTION:
%s

CANDIDATE'S RESUME:
%s

MISSING KEYWORDS: %s

Please provide:
1. 3-5 specific, actionable suggestions to improve the resume for this job
2. Rate the overall resume quality from 0-100
3. Identify the top 3 strengths
4. Identify the top 3 weaknesses

Format your response as:
SCORE: [number]
STRENGTHS:
- [strength 1]
- [strength 2]
- [strength 3]
WEAKNESSES:
- [weakness 1]
- [weakness 2]
- [weakness 3]
SUGGESTIONS:
- [suggestion 1]
- [suggestion 2]
- [suggestion 3]`,
		jobTitle,
		truncate(jobDescription, 1000),
		truncate(resumeText, 2000),
		strings.Join(firstN(missingKeywords, 10), ", "),
	)
}

// parseSuggestions collects the dash-prefixed lines after the SUGGESTIONS:
// marker. An empty result degrades to one generic suggestion.
func parseSuggestions(response string) []string {
	var suggestions []string

	_, section, found := strings.Cut(response, "SUGGESTIONS:")
	if found {
		for _, line := range strings.Split(section, "\n") {
			trimmed := strings.TrimSpace(line)
			if !strings.HasPrefix(trimmed, "-") {
				continue
			}
			suggestion := strings.TrimSpace(strings.TrimPrefix(trimmed, "-"))
			if suggestion != "" {
				suggestions = append(suggestions, suggestion)
			}
		}
	}

	if len(suggestions) == 0 {
		return []string{"Review your resume against the job description carefully"}
	}
	return suggestions
}

func parseLlmScore(response string) int {
	_, rest, found := strings.Cut(response, "SCORE:")
	if !found {
		return defaultLlmScore
	}
	scoreText, _, _ := strings.Cut(rest, "\n")
	score, err := strconv.Atoi(strings.TrimSpace(scoreText))
	if err != nil {
		return defaultLlmScore
	}
	return score
}

func fallbackSuggestions(missingKeywords []string) []string {
	return []string{
		"Incorporate these missing keywords naturally: " + strings.Join(firstN(missingKeywords, 5), ", "),
		"Tailor your experience section to highlight relevant achievements for this role",
		"Add quantifiable metrics to demonstrate your impact (e.g., percentages, dollar amounts)",
		"Ensure your skills section includes both technical and soft skills mentioned in the job description",
		"Use industry-specific terminology that appears in the job posting",
	}
}

// truncate cuts text to at most max bytes without splitting a multi-byte rune.
func truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	for max > 0 && !utf8.RuneStart(text[max]) {
		max--
	}
	return text[:max]
}
