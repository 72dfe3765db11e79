package services

import "strings"

var commonSections = []string{
	"summary", "objective", "experience", "education",
	"skills", "certifications", "projects", "achievements",
}

// ExtractSections splits resume text into named sections. A line counts as
// a section heading when it is shorter than 50 characters and contains one
// of the common section names; everything until the next heading belongs to
// that section. Text before the first heading lands under "other".
func ExtractSections(text string) map[string]string {
	currentSection := "other"
	sectionContent := make(map[string][]string)

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		matched := ""
		if len(trimmed) < 50 {
			lower := strings.ToLower(trimmed)
			for _, section := range commonSections {
				if strings.Contains(lower, section) {
					matched = section
					break
				}
			}
		}

		if matched != "" {
			currentSection = matched
		} else {
			sectionContent[currentSection] = append(sectionContent[currentSection], trimmed)
		}
	}

	sections := make(map[string]string, len(sectionContent))
	for section, content := range sectionContent {
		sections[section] = strings.Join(content, "\n")
	}

	return sections
}
