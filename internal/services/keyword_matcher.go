package services

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"
)

// KeywordMatcherAgent measures keyword overlap between a resume and a job
// posting. A keyword counts as present when the lowercased resume text
// contains the lowercased keyword as a substring; this is deliberately not a
// word-boundary match so that "PostgreSQL experience" satisfies "sql".
type KeywordMatcherAgent struct{}

func NewKeywordMatcherAgent() *KeywordMatcherAgent {
	return &KeywordMatcherAgent{}
}

func (a *KeywordMatcherAgent) Analyze(resumeText string, jobKeywords, requiredSkills []string) KeywordMatchResult {
	log.Println("KeywordMatcherAgent: Starting analysis")
	start := time.Now()

	resumeLower := strings.ToLower(resumeText)

	// Combine keywords and required skills, deduplicated in first-seen order.
	seen := make(map[string]bool)
	var allKeywords []string
	for _, kw := range append(append([]string{}, jobKeywords...), requiredSkills...) {
		if !seen[kw] {
			seen[kw] = true
			allKeywords = append(allKeywords, kw)
		}
	}

	var matched, missing []string
	for _, kw := range allKeywords {
		if strings.Contains(resumeLower, strings.ToLower(kw)) {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	matchPercentage := 100
	if len(allKeywords) > 0 {
		matchPercentage = int(math.Round(float64(len(matched)) / float64(len(allKeywords)) * 100))
	}

	findings := []string{
		fmt.Sprintf("Matched %d out of %d keywords (%d%%)", len(matched), len(allKeywords), matchPercentage),
	}

	if len(matched) > 0 {
		findings = append(findings, "Strong matches: "+strings.Join(firstN(matched, 5), ", "))
	}

	if len(missing) > 0 {
		findings = append(findings, "Missing keywords: "+strings.Join(firstN(missing, 5), ", "))
	}

	var suggestions []string
	if matchPercentage < 70 {
		suggestions = append(suggestions,
			fmt.Sprintf("Your resume is missing %d key terms from the job description", len(missing)),
			"Consider adding these keywords naturally throughout your experience: "+strings.Join(firstN(missing, 3), ", "),
		)
	}

	requiredSet := make(map[string]bool, len(requiredSkills))
	for _, s := range requiredSkills {
		requiredSet[s] = true
	}
	var missingRequired []string
	for _, kw := range missing {
		if requiredSet[kw] {
			missingRequired = append(missingRequired, kw)
		}
	}
	if len(missingRequired) > 0 {
		suggestions = append(suggestions, "Critical: You're missing required skills: "+strings.Join(missingRequired, ", "))
	}

	log.Printf("KeywordMatcherAgent: Completed with score %d\n", matchPercentage)

	return KeywordMatchResult{
		AgentResult: AgentResult{
			AgentName:       "KeywordMatcher",
			Score:           clampScore(matchPercentage),
			Findings:        findings,
			Suggestions:     suggestions,
			ExecutionTimeMs: time.Since(start).Milliseconds(),
		},
		Matched: matched,
		Missing: missing,
	}
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		return items
	}
	return items[:n]
}
