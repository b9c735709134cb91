package cmd

import (
	"fmt"
	"os"

	"github.com/dt-pm-tools/prd-export/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	appConfig config.Config
	version   = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:     "prd-export",
	Short:   "Export JIRA project tickets as a PRD user-story document",
	Long:    `A CLI tool that fetches all tickets for a JIRA project and converts them into a PRD-format JSON document with a userStories array, for use by downstream planning tooling.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.prd-export.yaml)")
}

// loadConfig loads and validates configuration. Commands that need JIRA access call this.
func loadConfig() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w\nRun 'prd-export config' to set up credentials", err)
	}
	appConfig = cfg
	return nil
}
