// Package config loads and persists the CLI's connection settings,
// defaults, and GitLab-to-JIRA project mappings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds GitLab and JIRA connection settings plus ticket defaults.
type Config struct {
	GitLab          GitLabConfig              `yaml:"gitlab" mapstructure:"gitlab"`
	Jira            JiraConfig                `yaml:"jira" mapstructure:"jira"`
	Defaults        Defaults                  `yaml:"defaults" mapstructure:"defaults"`
	ProjectMappings map[string]ProjectMapping `yaml:"project_mappings,omitempty" mapstructure:"project_mappings"`
}

// GitLabConfig holds GitLab connection settings.
type GitLabConfig struct {
	URL   string `yaml:"url" mapstructure:"url"`
	Token string `yaml:"token" mapstructure:"token"`
}

// Validate checks that required GitLab fields are present.
func (c GitLabConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.URL, validation.Required),
		validation.Field(&c.Token, validation.Required),
	)
}

// JiraConfig holds JIRA connection settings.
type JiraConfig struct {
	URL        string `yaml:"url" mapstructure:"url"`
	Username   string `yaml:"username" mapstructure:"username"`
	APIToken   string `yaml:"api_token" mapstructure:"api_token"`
	ProjectKey string `yaml:"project_key,omitempty" mapstructure:"project_key"`
}

// Validate checks that required JIRA fields are present. ProjectKey is
// optional; it can come from a flag or a project mapping instead.
func (c JiraConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.URL, validation.Required),
		validation.Field(&c.Username, validation.Required),
		validation.Field(&c.APIToken, validation.Required),
	)
}

// Defaults are applied to created tickets when no flag overrides them.
type Defaults struct {
	IssueType  string   `yaml:"issue_type,omitempty" mapstructure:"issue_type"`
	Labels     []string `yaml:"labels,omitempty" mapstructure:"labels"`
	Components []string `yaml:"components,omitempty" mapstructure:"components"`
	Priority   string   `yaml:"priority,omitempty" mapstructure:"priority"`
}

// ProjectMapping routes a GitLab project path to a JIRA project.
type ProjectMapping struct {
	JiraProjectKey string `yaml:"jira_project_key" mapstructure:"jira_project_key"`
}

// DefaultPath returns the default config file path (~/.gitlab-jira-cli.yaml).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gitlab-jira-cli.yaml"
	}
	return filepath.Join(home, ".gitlab-jira-cli.yaml")
}

// Load reads config from the YAML file and applies env var overrides.
// configPath may be empty to use the default path.
func Load(configPath string) (Config, error) {
	v := viper.New()

	if configPath == "" {
		configPath = DefaultPath()
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Env var overrides
	v.BindEnv("gitlab.url", "GITLAB_URL")
	v.BindEnv("gitlab.token", "GITLAB_TOKEN")
	v.BindEnv("jira.url", "JIRA_URL")
	v.BindEnv("jira.username", "JIRA_USERNAME")
	v.BindEnv("jira.api_token", "JIRA_API_TOKEN")
	v.BindEnv("jira.project_key", "JIRA_PROJECT_KEY")

	// Read the config file (ignore "not found" errors so env vars still work)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only ignore file-not-found; other errors (e.g. parse) are real
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

// Validate checks that both connection sections are complete.
func (c Config) Validate() error {
	if err := c.GitLab.Validate(); err != nil {
		return fmt.Errorf("gitlab: %w", err)
	}
	if err := c.Jira.Validate(); err != nil {
		return fmt.Errorf("jira: %w", err)
	}
	return nil
}

// JiraProjectFor resolves the JIRA project key for a GitLab project
// path: an explicit mapping wins, otherwise the configured default key
// (which may be empty).
func (c Config) JiraProjectFor(gitlabProjectPath string) string {
	if m, ok := c.ProjectMappings[gitlabProjectPath]; ok && m.JiraProjectKey != "" {
		return m.JiraProjectKey
	}
	return c.Jira.ProjectKey
}

// IssueTypeOr returns the issue type to use: the override if given,
// then the configured default, then "Task".
func (d Defaults) IssueTypeOr(override string) string {
	if override != "" {
		return override
	}
	if d.IssueType != "" {
		return d.IssueType
	}
	return "Task"
}

// Save writes the config to the given path (or default path if empty).
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
