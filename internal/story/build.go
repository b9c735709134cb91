package story

import (
	"strings"

	"github.com/dt-pm-tools/prd-export/internal/adf"
	"github.com/dt-pm-tools/prd-export/internal/jira"
)

// BuildDocument converts fetched JIRA issues into a PRD document. Issues are
// converted in the order given, which is the server's listing order.
func BuildDocument(issues []jira.Issue, opts Options) *Document {
	project := opts.ProjectName
	if project == "" {
		project = opts.ProjectKey
	}
	branch := opts.BranchName
	if branch == "" {
		branch = DeriveBranchName(project)
	}

	stories := make([]UserStory, 0, len(issues))
	for _, issue := range issues {
		stories = append(stories, buildStory(issue))
	}

	return &Document{
		Project:     project,
		BranchName:  branch,
		Description: opts.Description,
		UserStories: stories,
	}
}

func buildStory(issue jira.Issue) UserStory {
	description := adf.RenderBody(issue.Fields.Description)

	criteria := ExtractCriteria(description)
	if len(criteria) == 0 {
		criteria = FallbackCriteria(issue.Fields.Summary)
	}

	var priority, status string
	if issue.Fields.Priority != nil {
		priority = issue.Fields.Priority.Name
	}
	if issue.Fields.Status != nil {
		status = issue.Fields.Status.Name
	}

	return UserStory{
		ID:                 issue.Key,
		Title:              issue.Fields.Summary,
		Description:        description,
		AcceptanceCriteria: criteria,
		Priority:           MapPriority(priority),
		Passes:             StatusPasses(status),
		Notes:              "",
	}
}

// DeriveBranchName builds a feature branch name from the project name:
// lower-cased, whitespace collapsed to single hyphens.
func DeriveBranchName(project string) string {
	slug := strings.Join(strings.Fields(strings.ToLower(project)), "-")
	return "feature/" + slug
}
