package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordMatcherEmptyKeywordSet(t *testing.T) {
	agent := NewKeywordMatcherAgent()

	result := agent.Analyze("any resume text", nil, nil)

	assert.Equal(t, 100, result.Score)
	assert.Empty(t, result.Matched)
	assert.Empty(t, result.Missing)
	assert.Empty(t, result.Suggestions)
}

func TestKeywordMatcherPartitionsKeywords(t *testing.T) {
	agent := NewKeywordMatcherAgent()

	resume := "Experienced Go developer who ships services with Docker"
	result := agent.Analyze(resume, []string{"go", "python", "docker"}, nil)

	assert.Equal(t, []string{"go", "docker"}, result.Matched)
	assert.Equal(t, []string{"python"}, result.Missing)
	// round(2/3 * 100) = 67
	assert.Equal(t, 67, result.Score)
}

func TestKeywordMatcherCaseInsensitiveSubstring(t *testing.T) {
	agent := NewKeywordMatcherAgent()

	result := agent.Analyze("Worked extensively with PostgreSQL", []string{"SQL"}, nil)

	assert.Equal(t, []string{"SQL"}, result.Matched)
	assert.Equal(t, 100, result.Score)
}

func TestKeywordMatcherFindings(t *testing.T) {
	agent := NewKeywordMatcherAgent()

	result := agent.Analyze("go docker", []string{"go", "docker", "python", "rust"}, nil)

	assert.Contains(t, result.Findings, "Matched 2 out of 4 keywords (50%)")
	assert.Contains(t, result.Findings, "Strong matches: go, docker")
	assert.Contains(t, result.Findings, "Missing keywords: python, rust")
}

func TestKeywordMatcherLowScoreSuggestions(t *testing.T) {
	agent := NewKeywordMatcherAgent()

	result := agent.Analyze("go", []string{"go", "python", "rust", "java"}, nil)

	assert.Less(t, result.Score, 70)
	assert.Contains(t, result.Suggestions, "Your resume is missing 3 key terms from the job description")
	assert.Contains(t, result.Suggestions, "Consider adding these keywords naturally throughout your experience: python, rust, java")
}

func TestKeywordMatcherMissingRequiredSkills(t *testing.T) {
	agent := NewKeywordMatcherAgent()

	result := agent.Analyze("go developer", []string{"go"}, []string{"kubernetes"})

	assert.Contains(t, result.Suggestions, "Critical: You're missing required skills: kubernetes")
}

func TestKeywordMatcherDeduplicatesRequiredSkills(t *testing.T) {
	agent := NewKeywordMatcherAgent()

	// "go" appears both as keyword and required skill; it must count once.
	result := agent.Analyze("go developer", []string{"go", "python"}, []string{"go"})

	assert.Equal(t, 50, result.Score)
	assert.Equal(t, []string{"go"}, result.Matched)
}
