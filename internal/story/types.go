package story

// UserStory is the normalized PRD record for one JIRA ticket.
type UserStory struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	AcceptanceCriteria []string `json:"acceptanceCriteria"`
	Priority           int      `json:"priority"`
	Passes             bool     `json:"passes"`
	Notes              string   `json:"notes"`
}

// Document is the project-level PRD output. Story order matches the server's
// listing order.
type Document struct {
	Project     string      `json:"project"`
	BranchName  string      `json:"branchName"`
	Description string      `json:"description"`
	UserStories []UserStory `json:"userStories"`
}

// Options are the per-run parameters for building a Document. Zero-value
// fields fall back to defaults derived from ProjectKey.
type Options struct {
	ProjectKey  string
	ProjectName string
	BranchName  string
	Description string
}
