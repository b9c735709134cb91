package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/dt-pm-tools/prd-export/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure JIRA connection settings",
	Long:  `Interactively set up JIRA URL, email, and API token. Settings are saved to ~/.prd-export.yaml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(os.Stdin)

		// Existing values become the defaults, so re-running only changes
		// what the user types.
		existing, _ := config.Load(cfgFile)

		url := promptString(reader, "JIRA URL", "https://your-org.atlassian.net", existing.URL)
		email := promptString(reader, "Email", "", existing.Email)

		fmt.Print("API Token (input hidden): ")
		tokenBytes, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("reading token: %w", err)
		}
		token := strings.TrimSpace(string(tokenBytes))
		if token == "" {
			token = existing.Token
		}

		cfg := config.Config{URL: url, Email: email, Token: token}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}
		if err := config.Save(cfg, path); err != nil {
			return err
		}

		fmt.Printf("Configuration saved to %s\n", path)
		return nil
	},
}

// promptString asks for a value, showing the current one (or an example) and
// keeping it when the user just presses enter.
func promptString(reader *bufio.Reader, label, example, current string) string {
	switch {
	case current != "":
		fmt.Printf("%s [%s]: ", label, current)
	case example != "":
		fmt.Printf("%s (e.g., %s): ", label, example)
	default:
		fmt.Printf("%s: ", label)
	}
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	return line
}

func init() {
	rootCmd.AddCommand(configCmd)
}
