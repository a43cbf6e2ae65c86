package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dt-pm-tools/gitlab-jira-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure GitLab and JIRA connection settings",
	Long:  `Interactively set up GitLab and JIRA URLs and tokens plus ticket defaults. Settings are saved to ~/.gitlab-jira-cli.yaml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(os.Stdin)

		// Load existing config for defaults
		existing, _ := config.Load(cfgFile)

		fmt.Println("--- GitLab ---")
		gitlabURL := promptLine(reader, "GitLab URL (e.g., https://gitlab.com)", existing.GitLab.URL)
		gitlabToken, err := promptSecret("GitLab Personal Access Token", existing.GitLab.Token)
		if err != nil {
			return err
		}

		fmt.Println("\n--- JIRA ---")
		jiraURL := promptLine(reader, "JIRA URL (e.g., https://your-org.atlassian.net)", existing.Jira.URL)
		jiraUser := promptLine(reader, "JIRA Username/Email", existing.Jira.Username)
		jiraToken, err := promptSecret("JIRA API Token", existing.Jira.APIToken)
		if err != nil {
			return err
		}
		projectKey := promptLine(reader, "Default JIRA Project Key", existing.Jira.ProjectKey)

		fmt.Println("\n--- Defaults ---")
		issueType := promptLine(reader, "Default Issue Type", existing.Defaults.IssueTypeOr(""))

		cfg := config.Config{
			GitLab: config.GitLabConfig{
				URL:   gitlabURL,
				Token: gitlabToken,
			},
			Jira: config.JiraConfig{
				URL:        jiraURL,
				Username:   jiraUser,
				APIToken:   jiraToken,
				ProjectKey: projectKey,
			},
			Defaults: config.Defaults{
				IssueType:  issueType,
				Labels:     existing.Defaults.Labels,
				Components: existing.Defaults.Components,
				Priority:   existing.Defaults.Priority,
			},
			ProjectMappings: existing.ProjectMappings,
		}

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

		successf("Configuration saved to %s", path)
		return nil
	},
}

// promptLine reads one line, falling back to the current value on empty
// input.
func promptLine(reader *bufio.Reader, label, current string) string {
	if current != "" {
		fmt.Printf("%s [%s]: ", label, current)
	} else {
		fmt.Printf("%s: ", label)
	}
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	return line
}

// promptSecret reads a token with input hidden, keeping the current
// value on empty input.
func promptSecret(label, current string) (string, error) {
	fmt.Printf("%s (input hidden): ", label)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // newline after hidden input
	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}
	value := strings.TrimSpace(string(raw))
	if value == "" {
		return current, nil
	}
	return value, nil
}

func init() {
	rootCmd.AddCommand(configCmd)
}
