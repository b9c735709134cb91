package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dt-pm-tools/prd-export/internal/jira"
	"github.com/dt-pm-tools/prd-export/internal/story"
	"github.com/spf13/cobra"
)

var (
	exportProject     string
	exportOutput      string
	exportProjectName string
	exportBranchName  string
	exportDescription string
	exportMaxResults  int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Fetch all tickets for a project and write a PRD document",
	Long: `Fetches every ticket in the given JIRA project and converts them into a
PRD-format JSON document. Each ticket becomes one user story: the description
is flattened to plain text, acceptance criteria are extracted from it (or
synthesized from the title), and priority/status are mapped to the PRD scale.

Writes to stdout by default, or to a file with --output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportProject == "" {
			return fmt.Errorf("--project (-p) is required")
		}
		if exportMaxResults < 1 || exportMaxResults > 100 {
			return fmt.Errorf("--max-results must be between 1 and 100, got %d", exportMaxResults)
		}

		if err := loadConfig(); err != nil {
			return err
		}

		projectKey := exportProject

		client := jira.NewClient(appConfig)
		issues, err := client.SearchProject(cmd.Context(), projectKey, exportMaxResults)
		if err != nil {
			return fmt.Errorf("fetching tickets for %s: %w", projectKey, err)
		}
		fmt.Fprintf(os.Stderr, "Fetched %d tickets for project %s\n", len(issues), projectKey)

		doc := story.BuildDocument(issues, story.Options{
			ProjectKey:  projectKey,
			ProjectName: exportProjectName,
			BranchName:  exportBranchName,
			Description: exportDescription,
		})

		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling document: %w", err)
		}
		data = append(data, '\n')

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0644); err != nil {
				return fmt.Errorf("writing output file: %w", err)
			}
			fmt.Fprintf(os.Stderr, "PRD written to %s (%d user stories)\n", exportOutput, len(doc.UserStories))
		} else {
			fmt.Print(string(data))
		}

		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportProject, "project", "p", "", "JIRA project key (e.g. PROJ)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output JSON file path (stdout if omitted)")
	exportCmd.Flags().StringVar(&exportProjectName, "project-name", "", "project name for the PRD (defaults to the project key)")
	exportCmd.Flags().StringVar(&exportBranchName, "branch-name", "", "branch name for the PRD (derived from the project name if omitted)")
	exportCmd.Flags().StringVar(&exportDescription, "project-description", "", "project description for the PRD")
	exportCmd.Flags().IntVar(&exportMaxResults, "max-results", jira.DefaultPageSize, "results per page (1-100)")
	rootCmd.AddCommand(exportCmd)
}
