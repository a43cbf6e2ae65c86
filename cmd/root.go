package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dt-pm-tools/gitlab-jira-cli/internal/config"
)

var (
	cfgFile   string
	appConfig config.Config
	version   = "0.1.0"
)

// Status line styles.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#2F855A", Dark: "#6BCB77"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C53030", Dark: "#FF6B6B"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#2B6CB0", Dark: "#5B9BD5"})
)

var rootCmd = &cobra.Command{
	Use:     "gitlab2jira",
	Short:   "Create JIRA tickets from GitLab merge requests",
	Long:    `A CLI tool that turns a GitLab merge request into a JIRA ticket: the MR description is converted to JIRA's rich-text document format, and the ticket links back to the MR with its details in an info panel.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.gitlab-jira-cli.yaml)")
}

// loadConfig loads and validates configuration. Commands that need API
// access call this.
func loadConfig() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w\nRun 'gitlab2jira config' to set up credentials", err)
	}
	appConfig = cfg
	return nil
}

func successf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, successStyle.Render(fmt.Sprintf(format, args...)))
}

func errorf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf(format, args...)))
}

func infof(format string, args ...any) {
	fmt.Fprintln(os.Stderr, infoStyle.Render(fmt.Sprintf(format, args...)))
}
