package services

import (
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"
)

var (
	emailPattern      = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern      = regexp.MustCompile(`\(?\d{3}\)?[-.]?\d{3}[-.]?\d{4}`)
	percentPattern    = regexp.MustCompile(`\d+%`)
	dollarPattern     = regexp.MustCompile(`\$\d+`)
	numberPlusPattern = regexp.MustCompile(`\d+\+`)
)

var actionVerbs = []string{
	"achieved", "improved", "developed", "created", "managed", "led", "designed",
	"implemented", "increased", "reduced", "optimized", "streamlined", "built",
}

var expectedSections = []string{"experience", "education", "skills"}

// AtsCheckerAgent evaluates structural compatibility with applicant tracking
// systems. Each of the six checks can deduct from a starting score of 100;
// the result never drops below 0.
type AtsCheckerAgent struct{}

func NewAtsCheckerAgent() *AtsCheckerAgent {
	return &AtsCheckerAgent{}
}

func (a *AtsCheckerAgent) Analyze(resumeText string, resumeSections map[string]string) AgentResult {
	log.Println("AtsCheckerAgent: Starting analysis")
	start := time.Now()

	var findings, suggestions []string
	score := 100

	resumeLower := strings.ToLower(resumeText)

	// Check 1: Resume length
	wordCount := len(strings.Fields(resumeText))
	switch {
	case wordCount < 300:
		score -= 15
		findings = append(findings, fmt.Sprintf("Resume is too short (%d words)", wordCount))
		suggestions = append(suggestions, "Expand your resume to 400-800 words for better impact")
	case wordCount > 1000:
		score -= 10
		findings = append(findings, fmt.Sprintf("Resume is quite long (%d words)", wordCount))
		suggestions = append(suggestions, "Consider condensing to 600-800 words for better readability")
	default:
		findings = append(findings, fmt.Sprintf("Resume length is appropriate (%d words)", wordCount))
	}

	// Check 2: Section structure
	var missingSections []string
	for _, expected := range expectedSections {
		if !hasSection(resumeSections, resumeLower, expected) {
			missingSections = append(missingSections, expected)
		}
	}
	if len(missingSections) > 0 {
		score -= 20
		findings = append(findings, "Missing key sections: "+strings.Join(missingSections, ", "))
		suggestions = append(suggestions, "Add these critical sections: "+strings.Join(missingSections, ", "))
	} else {
		findings = append(findings, "Resume has all standard sections")
	}

	// Check 3: Contact information
	if !emailPattern.MatchString(resumeText) {
		score -= 15
		findings = append(findings, "No email address detected")
		suggestions = append(suggestions, "Ensure your email address is clearly visible at the top")
	}

	if !phonePattern.MatchString(resumeText) {
		score -= 10
		findings = append(findings, "No phone number detected")
		suggestions = append(suggestions, "Add your phone number in standard format")
	}

	// Check 4: Bullet points and formatting
	hasBullets := strings.ContainsAny(resumeText, "•*-") || strings.Contains(resumeText, "–")
	if !hasBullets {
		score -= 15
		findings = append(findings, "No bullet points detected")
		suggestions = append(suggestions, "Use bullet points to highlight achievements and responsibilities")
	} else {
		findings = append(findings, "Good use of bullet points for readability")
	}

	// Check 5: Action verbs
	var usedActionVerbs []string
	for _, verb := range actionVerbs {
		if strings.Contains(resumeLower, verb) {
			usedActionVerbs = append(usedActionVerbs, verb)
		}
	}
	if len(usedActionVerbs) < 3 {
		score -= 10
		findings = append(findings, "Limited use of strong action verbs")
		suggestions = append(suggestions, "Start bullet points with action verbs like: "+strings.Join(actionVerbs[:5], ", "))
	} else {
		findings = append(findings, "Good use of action verbs: "+strings.Join(usedActionVerbs[:3], ", "))
	}

	// Check 6: Quantifiable achievements
	hasNumbers := percentPattern.MatchString(resumeText) ||
		dollarPattern.MatchString(resumeText) ||
		numberPlusPattern.MatchString(resumeText)
	if !hasNumbers {
		score -= 15
		findings = append(findings, "Lacks quantifiable achievements")
		suggestions = append(suggestions, "Add numbers and metrics to demonstrate impact (e.g., 'Increased sales by 30%')")
	} else {
		findings = append(findings, "Contains quantifiable achievements")
	}

	score = clampScore(score)

	log.Printf("AtsCheckerAgent: Completed with score %d\n", score)

	return AgentResult{
		AgentName:       "AtsChecker",
		Score:           score,
		Findings:        findings,
		Suggestions:     suggestions,
		ExecutionTimeMs: time.Since(start).Milliseconds(),
	}
}

// hasSection accepts a section either as a case-insensitive substring of one
// of the extracted section keys or anywhere in the full resume text.
func hasSection(sections map[string]string, resumeLower, expected string) bool {
	for key := range sections {
		if strings.Contains(strings.ToLower(key), expected) {
			return true
		}
	}
	return strings.Contains(resumeLower, expected)
}
