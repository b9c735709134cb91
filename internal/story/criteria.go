package story

import (
	"regexp"
	"strings"
)

// listItemPattern matches a line that reads as a list entry: a bullet marker
// or a short numeric/alphabetic enumeration ("1.", "12)", "a)").
var listItemPattern = regexp.MustCompile(`^(?:[-*•→►▪▸]|\d{1,3}[.)]|[a-zA-Z][.)])\s+`)

// knownSections are headers that terminate a criteria list even without a
// trailing colon.
var knownSections = []string{
	"notes", "background", "description", "context", "out of scope",
	"open questions", "technical notes", "implementation notes",
}

// ExtractCriteria scans flattened description text for an acceptance-criteria
// section and returns its list items, markers stripped. It returns nil when
// no section or no items are found; callers fall back to FallbackCriteria.
func ExtractCriteria(text string) []string {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		if isCriteriaHeader(line) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	var criteria []string
	sawBlank := false
	for _, line := range lines[start:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			sawBlank = true
			continue
		}
		if marker := listItemPattern.FindString(trimmed); marker != "" {
			item := strings.TrimSpace(trimmed[len(marker):])
			if item != "" {
				criteria = append(criteria, item)
			}
			sawBlank = false
			continue
		}
		// Non-list content: a section header always ends the list, as does
		// any prose after a blank line.
		if sawBlank || isSectionBoundary(trimmed) {
			break
		}
	}

	return criteria
}

// FallbackCriteria synthesizes three criteria from the ticket title, used
// when the description contains no extractable acceptance criteria.
func FallbackCriteria(title string) []string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "the ticket"
	}
	return []string{
		"Implement " + title,
		title + " is verified to work as expected",
		title + " does not introduce regressions",
	}
}

// isCriteriaHeader reports whether the line announces an acceptance-criteria
// section. Leading markdown heading markers and a trailing colon are allowed.
func isCriteriaHeader(line string) bool {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimLeft(trimmed, "#")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), ":")
	lower := strings.ToLower(strings.TrimSpace(trimmed))
	return lower == "acceptance criteria" || lower == "acceptance" ||
		strings.HasPrefix(lower, "acceptance criteria") || strings.HasPrefix(lower, "acceptance ")
}

// isSectionBoundary reports whether the line looks like the start of another
// section: a heading marker, a short line ending in a colon, or a known
// section name.
func isSectionBoundary(line string) bool {
	if strings.HasPrefix(line, "#") {
		return true
	}
	if strings.HasSuffix(line, ":") && len(line) <= 40 {
		return true
	}
	lower := strings.ToLower(strings.TrimSuffix(line, ":"))
	for _, name := range knownSections {
		if lower == name {
			return true
		}
	}
	return false
}
