package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds the JIRA instance URL and API credentials.
type Config struct {
	URL   string `yaml:"url"   mapstructure:"url"`
	Email string `yaml:"email" mapstructure:"email"`
	Token string `yaml:"token" mapstructure:"token"`
}

// DefaultPath is where the config lives unless --config says otherwise:
// ~/.prd-export.yaml, falling back to the working directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".prd-export.yaml"
	}
	return filepath.Join(home, ".prd-export.yaml")
}

// Load reads the YAML config file, then lets JIRA_URL, JIRA_EMAIL, and
// JIRA_TOKEN env vars override individual values. A missing file is not an
// error, so a fully env-configured run needs no file at all.
func Load(configPath string) (Config, error) {
	v := viper.New()

	if configPath == "" {
		configPath = DefaultPath()
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.BindEnv("url", "JIRA_URL")
	v.BindEnv("email", "JIRA_EMAIL")
	v.BindEnv("token", "JIRA_TOKEN")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// A parse failure is real; only a missing file is tolerated.
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Validate reports the first missing required field.
func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("no JIRA URL configured (add url to the config file or set JIRA_URL)")
	}
	if c.Email == "" {
		return fmt.Errorf("no JIRA email configured (add email to the config file or set JIRA_EMAIL)")
	}
	if c.Token == "" {
		return fmt.Errorf("no JIRA API token configured (add token to the config file or set JIRA_TOKEN)")
	}
	return nil
}

// Save writes the config as YAML, readable only by the owner since it holds
// the API token. An empty path means the default path.
func Save(cfg Config, configPath string) error {
	if configPath == "" {
		configPath = DefaultPath()
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
