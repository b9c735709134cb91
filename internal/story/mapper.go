package story

import "strings"

// DefaultPriority is used for unrecognized or missing priority labels.
const DefaultPriority = 3

// priorityScale maps JIRA priority names to the 1 (highest) – 5 (lowest)
// numeric scale used in PRD documents.
var priorityScale = map[string]int{
	"highest": 1,
	"high":    2,
	"medium":  3,
	"low":     4,
	"lowest":  5,
}

// doneStatuses are the status names that count as a passing story.
var doneStatuses = map[string]bool{
	"done":      true,
	"closed":    true,
	"resolved":  true,
	"completed": true,
}

// MapPriority converts a JIRA priority label to the numeric scale.
// Matching is case-insensitive; unknown or empty labels map to Medium.
func MapPriority(label string) int {
	if p, ok := priorityScale[strings.ToLower(strings.TrimSpace(label))]; ok {
		return p
	}
	return DefaultPriority
}

// StatusPasses reports whether a status label marks the story as done.
func StatusPasses(label string) bool {
	return doneStatuses[strings.ToLower(strings.TrimSpace(label))]
}
