package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// wellFormedResume passes all six structural checks.
func wellFormedResume() string {
	var b strings.Builder
	b.WriteString("John Doe\n")
	b.WriteString("john.doe@example.com\n")
	b.WriteString("555-123-4567\n\n")
	b.WriteString("Experience\n")
	b.WriteString("• Achieved 30% revenue growth and managed a team of 10+ engineers\n")
	b.WriteString("• Improved and developed internal tooling used across the company\n\n")
	b.WriteString("Education\n")
	b.WriteString("University of Somewhere\n\n")
	b.WriteString("Skills\n")
	b.WriteString("Go, distributed systems\n")
	b.WriteString(strings.Repeat("additional detail ", 160))
	return b.String()
}

func TestAtsCheckerWellFormedResumeScoresFull(t *testing.T) {
	agent := NewAtsCheckerAgent()

	result := agent.Analyze(wellFormedResume(), nil)

	assert.Equal(t, 100, result.Score)
	assert.Contains(t, result.Findings, "Resume has all standard sections")
	assert.Contains(t, result.Findings, "Good use of bullet points for readability")
	assert.Contains(t, result.Findings, "Contains quantifiable achievements")
	assert.Empty(t, result.Suggestions)
}

func TestAtsCheckerEverythingWrongFloorsAtZero(t *testing.T) {
	agent := NewAtsCheckerAgent()

	result := agent.Analyze("just a few plain words here", nil)

	assert.Equal(t, 0, result.Score)
}

func TestAtsCheckerShortResumeDeduction(t *testing.T) {
	agent := NewAtsCheckerAgent()

	resume := strings.Replace(wellFormedResume(), strings.Repeat("additional detail ", 160), "", 1)
	result := agent.Analyze(resume, nil)

	assert.Equal(t, 85, result.Score)
	assert.Contains(t, result.Suggestions, "Expand your resume to 400-800 words for better impact")
}

func TestAtsCheckerLongResumeDeduction(t *testing.T) {
	agent := NewAtsCheckerAgent()

	resume := wellFormedResume() + strings.Repeat("padding ", 900)
	result := agent.Analyze(resume, nil)

	assert.Equal(t, 90, result.Score)
	assert.Contains(t, result.Suggestions, "Consider condensing to 600-800 words for better readability")
}

func TestAtsCheckerMissingEmailDeduction(t *testing.T) {
	agent := NewAtsCheckerAgent()

	resume := strings.Replace(wellFormedResume(), "john.doe@example.com", "contact on request", 1)
	result := agent.Analyze(resume, nil)

	assert.Equal(t, 85, result.Score)
	assert.Contains(t, result.Findings, "No email address detected")
}

func TestAtsCheckerMissingPhoneDeduction(t *testing.T) {
	agent := NewAtsCheckerAgent()

	resume := strings.Replace(wellFormedResume(), "555-123-4567", "", 1)
	result := agent.Analyze(resume, nil)

	assert.Equal(t, 90, result.Score)
	assert.Contains(t, result.Findings, "No phone number detected")
}

func TestAtsCheckerMissingSectionsDeduction(t *testing.T) {
	agent := NewAtsCheckerAgent()

	resume := wellFormedResume()
	resume = strings.Replace(resume, "Education\n", "Background\n", 1)
	result := agent.Analyze(resume, nil)

	assert.Equal(t, 80, result.Score)
	assert.Contains(t, result.Findings, "Missing key sections: education")
}

func TestAtsCheckerSectionSatisfiedByExtractedSections(t *testing.T) {
	agent := NewAtsCheckerAgent()

	resume := strings.Replace(wellFormedResume(), "Education\n", "Training\n", 1)
	sections := map[string]string{"education": "University of Somewhere"}
	result := agent.Analyze(resume, sections)

	assert.Equal(t, 100, result.Score)
}

func TestAtsCheckerNoQuantifiableAchievements(t *testing.T) {
	agent := NewAtsCheckerAgent()

	resume := wellFormedResume()
	resume = strings.Replace(resume, "30% revenue growth and managed a team of 10+ engineers", "significant revenue growth and managed a large team", 1)
	result := agent.Analyze(resume, nil)

	assert.Equal(t, 85, result.Score)
	assert.Contains(t, result.Findings, "Lacks quantifiable achievements")
}
