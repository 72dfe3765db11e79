package services

import (
	"regexp"
	"sort"
	"strings"
)

// technicalSkills is the vocabulary the extractor matches job text against.
var technicalSkills = []string{
	"java", "python", "javascript", "typescript", "kotlin", "swift", "c++", "c#", "go", "rust",
	"react", "angular", "vue", "spring", "spring boot", "django", "flask", "node.js", "express",
	"sql", "nosql", "postgresql", "mysql", "mongodb", "redis", "elasticsearch",
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "git", "ci/cd",
	"rest api", "graphql", "microservices", "agile", "scrum", "devops",
	"machine learning", "ai", "data science", "tensorflow", "pytorch",
	"html", "css", "sass", "webpack", "babel", "npm", "yarn",
}

var yearsPattern = regexp.MustCompile(`(\d+)\+?\s*years?`)

var requiredIndicators = []string{
	"required", "must have", "must-have", "mandatory", "essential",
}

var preferredIndicators = []string{
	"preferred", "nice to have", "nice-to-have", "bonus", "plus", "desired",
}

type levelPattern struct {
	pattern *regexp.Regexp
	level   string
}

// Level checks run in order; the first match wins.
var experienceLevels = []levelPattern{
	{regexp.MustCompile(`junior|entry|graduate|0-2 years`), "Entry"},
	{regexp.MustCompile(`mid|intermediate|2-5 years|3-5 years`), "Mid"},
	{regexp.MustCompile(`senior|lead|principal|5\+ years|6\+ years`), "Senior"},
	{regexp.MustCompile(`staff|architect|distinguished`), "Staff"},
}

var educationLevels = []levelPattern{
	{regexp.MustCompile(`phd|doctorate|ph\.d\.`), "PhD"},
	{regexp.MustCompile(`master|ms|ma|m\.s\.|m\.a\.|mba`), "Master's"},
	{regexp.MustCompile(`bachelor|bs|ba|b\.s\.|b\.a\.`), "Bachelor's"},
	{regexp.MustCompile(`associate|aa|as|a\.a\.|a\.s\.`), "Associate"},
}

// KeywordExtractionService pulls keywords, skills, and seniority signals out
// of raw job posting text with simple substring and regex matching.
type KeywordExtractionService interface {
	ExtractKeywords(text string) []string
	ExtractRequiredSkills(text string) []string
	ExtractPreferredSkills(text string) []string
	DetectExperienceLevel(text string) string
	DetectEducationLevel(text string) string
}

type keywordExtractionService struct{}

func NewKeywordExtractionService() KeywordExtractionService {
	return &keywordExtractionService{}
}

// ExtractKeywords returns every known technical skill the text mentions plus
// any "N years" phrases, sorted alphabetically.
func (s *keywordExtractionService) ExtractKeywords(text string) []string {
	if text == "" {
		return []string{}
	}

	lowerText := strings.ToLower(text)
	found := make(map[string]bool)

	for _, skill := range technicalSkills {
		if strings.Contains(lowerText, skill) {
			found[skill] = true
		}
	}

	for _, match := range yearsPattern.FindAllString(lowerText, -1) {
		found[match+" experience"] = true
	}

	keywords := make([]string, 0, len(found))
	for keyword := range found {
		keywords = append(keywords, keyword)
	}
	sort.Strings(keywords)

	return keywords
}

// ExtractRequiredSkills finds technical skills mentioned within 500 characters
// of a requirement indicator like "required" or "must have".
func (s *keywordExtractionService) ExtractRequiredSkills(text string) []string {
	return skillsNearIndicators(text, requiredIndicators)
}

// ExtractPreferredSkills finds technical skills mentioned within 500 characters
// of a preference indicator like "preferred" or "nice to have".
func (s *keywordExtractionService) ExtractPreferredSkills(text string) []string {
	return skillsNearIndicators(text, preferredIndicators)
}

func skillsNearIndicators(text string, indicators []string) []string {
	if text == "" {
		return []string{}
	}

	lowerText := strings.ToLower(text)
	found := make(map[string]bool)

	for _, indicator := range indicators {
		index := strings.Index(lowerText, indicator)
		if index == -1 {
			continue
		}

		end := index + 500
		if end > len(lowerText) {
			end = len(lowerText)
		}
		section := lowerText[index:end]

		for _, skill := range technicalSkills {
			if strings.Contains(section, skill) {
				found[skill] = true
			}
		}
	}

	skills := make([]string, 0, len(found))
	for skill := range found {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	return skills
}

func (s *keywordExtractionService) DetectExperienceLevel(text string) string {
	return detectLevel(text, experienceLevels)
}

func (s *keywordExtractionService) DetectEducationLevel(text string) string {
	return detectLevel(text, educationLevels)
}

func detectLevel(text string, levels []levelPattern) string {
	if text == "" {
		return "Not Specified"
	}

	lowerText := strings.ToLower(text)
	for _, lp := range levels {
		if lp.pattern.MatchString(lowerText) {
			return lp.level
		}
	}

	return "Not Specified"
}
