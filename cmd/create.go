package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/dt-pm-tools/gitlab-jira-cli/internal/gitlab"
	"github.com/dt-pm-tools/gitlab-jira-cli/internal/jira"
	"github.com/dt-pm-tools/gitlab-jira-cli/internal/markdown"
)

var (
	createProject       string
	createIssueType     string
	createLabels        []string
	createComponents    []string
	createPriority      string
	createImageHandling string
	createInProgress    bool
	createUpdateTitle   bool
	createDryRun        bool
)

var createCmd = &cobra.Command{
	Use:   "create <mr-url>",
	Short: "Create a JIRA ticket from a GitLab merge request",
	Long: `Fetches the merge request, converts its Markdown description to JIRA's
document format, and creates a ticket that links back to the MR with its
details in an info panel.

Use --dry-run to preview the ticket fields and document without creating.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}

		mrURL := args[0]
		ref, err := gitlab.ParseMergeRequestURL(mrURL)
		if err != nil {
			return err
		}

		imageMode, err := markdown.ParseImageMode(createImageHandling)
		if err != nil {
			return err
		}

		gl := gitlab.NewClient(appConfig.GitLab.URL, appConfig.GitLab.Token)

		infof("Fetching merge request details for %s...", ref.ProjectPath)
		mr, err := gl.GetMergeRequest(ref.ProjectRef, ref.IID)
		if err != nil {
			return fmt.Errorf("fetching merge request: %w", err)
		}
		if mr.Title == "" {
			return fmt.Errorf("merge request has no title; cannot create a JIRA ticket")
		}

		infof("Fetching project details...")
		project, err := gl.GetProjectDetails(ref.ProjectRef)
		if err != nil {
			return fmt.Errorf("fetching project details: %w", err)
		}

		// Flag > project mapping > config default.
		projectKey := createProject
		if projectKey == "" {
			projectKey = appConfig.JiraProjectFor(ref.ProjectPath)
		}
		if projectKey == "" {
			return fmt.Errorf("no JIRA project key found: use --project, configure a project mapping, or set jira.project_key")
		}

		issueType := appConfig.Defaults.IssueTypeOr(createIssueType)
		priority := createPriority
		if priority == "" {
			priority = appConfig.Defaults.Priority
		}
		labels := append([]string(nil), appConfig.Defaults.Labels...)
		labels = append(labels, createLabels...)

		jc := jira.NewClient(appConfig.Jira)

		components, err := resolveComponents(jc, projectKey)
		if err != nil {
			return err
		}

		// Rewrite image references, convert the description, and wrap it
		// in the fixed ticket layout.
		description := markdown.RewriteImages(mr.Description, appConfig.GitLab.URL, project.ID, imageMode)
		body := markdown.ConvertBody(description)
		doc, err := markdown.BuildDocument(mrURL, markdown.MRDetails{
			AuthorName:   mr.Author.Name,
			SourceBranch: mr.SourceBranch,
			TargetBranch: mr.TargetBranch,
			State:        mr.State,
			CreatedAt:    mr.CreatedAt,
		}, body)
		if err != nil {
			return err
		}

		payload := jira.CreatePayload{
			Fields: jira.CreateFields{
				Project:     jira.ProjectKey{Key: projectKey},
				Summary:     mr.Title,
				IssueType:   jira.IssueType{Name: issueType},
				Description: doc,
				Labels:      labels,
			},
		}
		for _, c := range components {
			payload.Fields.Components = append(payload.Fields.Components, jira.NamedField{Name: c})
		}
		if priority != "" {
			payload.Fields.Priority = &jira.NamedField{Name: priority}
		}

		if createDryRun {
			fmt.Fprintf(os.Stderr, "Dry run: would create the following JIRA ticket\n")
			fmt.Fprintf(os.Stderr, "  Project:    %s\n", projectKey)
			fmt.Fprintf(os.Stderr, "  Issue Type: %s\n", issueType)
			fmt.Fprintf(os.Stderr, "  Summary:    %s\n", mr.Title)
			fmt.Fprintf(os.Stderr, "  Labels:     %v\n", labels)
			if len(components) > 0 {
				fmt.Fprintf(os.Stderr, "  Components: %v\n", components)
			}
			if priority != "" {
				fmt.Fprintf(os.Stderr, "  Priority:   %s\n", priority)
			}
			if createInProgress {
				fmt.Fprintln(os.Stderr, "  Would set the ticket to 'In Progress'")
			}
			if createUpdateTitle {
				fmt.Fprintln(os.Stderr, "  Would prefix the MR title with the ticket key")
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(doc); err != nil {
				return fmt.Errorf("encoding document: %w", err)
			}
			return nil
		}

		infof("Creating JIRA ticket in project %s...", projectKey)
		created, err := jc.CreateIssue(payload)
		if err != nil {
			return fmt.Errorf("creating JIRA ticket: %w", err)
		}

		successf("Created JIRA ticket: %s", created.Key)
		fmt.Fprintln(os.Stderr, jc.BrowseURL(created.Key))

		// The ticket exists at this point; follow-up failures are
		// reported but do not fail the command.
		if createInProgress {
			if err := jc.TransitionByName(created.Key, "In Progress"); err != nil {
				errorf("Could not set %s to 'In Progress': %v", created.Key, err)
			} else {
				successf("Set %s to 'In Progress'", created.Key)
			}
		}

		if createUpdateTitle {
			updateMRTitle(gl, ref, mr.Title, created.Key)
		}

		return nil
	},
}

// updateMRTitle prefixes the MR title with the ticket key unless it
// already carries a bracketed key.
func updateMRTitle(gl *gitlab.Client, ref gitlab.MRRef, title, key string) {
	if strings.HasPrefix(title, "[") && strings.Contains(title, "]") {
		infof("MR title already appears to have a ticket key, skipping update")
		return
	}
	newTitle := fmt.Sprintf("[%s] %s", key, title)
	if err := gl.UpdateMergeRequestTitle(ref.ProjectRef, ref.IID, newTitle); err != nil {
		errorf("Could not update MR title: %v", err)
		return
	}
	successf("Updated MR title to: %s", newTitle)
}

// resolveComponents decides the ticket's components: a --components flag
// is validated against the project (falling back to the picker when any
// name is unknown); with no flag, the interactive picker runs with the
// configured defaults preselected.
func resolveComponents(jc *jira.Client, projectKey string) ([]string, error) {
	defaults := appConfig.Defaults.Components

	if len(createComponents) > 0 {
		available, err := jc.GetProjectComponents(projectKey)
		if err != nil {
			errorf("Could not fetch project components for validation: %v", err)
			return append(append([]string(nil), defaults...), createComponents...), nil
		}

		byLower := make(map[string]string, len(available))
		for _, c := range available {
			byLower[strings.ToLower(c.Name)] = c.Name
		}

		validated := append([]string(nil), defaults...)
		var invalid []string
		for _, name := range createComponents {
			if canonical, ok := byLower[strings.ToLower(name)]; ok {
				validated = append(validated, canonical)
			} else {
				invalid = append(invalid, name)
			}
		}
		if len(invalid) == 0 {
			return validated, nil
		}

		errorf("Invalid components: %s", strings.Join(invalid, ", "))
		return pickComponents(available, defaults)
	}

	infof("Fetching available components for project %s...", projectKey)
	available, err := jc.GetProjectComponents(projectKey)
	if err != nil {
		errorf("Could not fetch project components: %v", err)
		return defaults, nil
	}
	if len(available) == 0 {
		return nil, nil
	}
	return pickComponents(available, defaults)
}

// pickComponents shows a multi-select over the project's components with
// the defaults preselected.
func pickComponents(available []jira.Component, defaults []string) ([]string, error) {
	options := make([]huh.Option[string], 0, len(available))
	for _, c := range available {
		options = append(options, huh.NewOption(c.Name, c.Name))
	}

	selected := append([]string(nil), defaults...)
	form := huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Components").
			Description("Select components for the new ticket").
			Options(options...).
			Value(&selected),
	))
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("selecting components: %w", err)
	}
	return selected, nil
}

func init() {
	createCmd.Flags().StringVarP(&createProject, "project", "p", "", "JIRA project key (overrides config)")
	createCmd.Flags().StringVar(&createIssueType, "issue-type", "", "JIRA issue type (default: from config or Task)")
	createCmd.Flags().StringSliceVar(&createLabels, "labels", nil, "JIRA labels to add")
	createCmd.Flags().StringSliceVar(&createComponents, "components", nil, "JIRA components to add (skips interactive selection)")
	createCmd.Flags().StringVar(&createPriority, "priority", "", "JIRA priority (e.g. High, Medium, Low)")
	createCmd.Flags().StringVar(&createImageHandling, "image-handling", "jira-syntax", "how to handle images: links, jira-syntax, or strip")
	createCmd.Flags().BoolVar(&createInProgress, "set-in-progress", false, "set the ticket to 'In Progress' after creation")
	createCmd.Flags().BoolVar(&createUpdateTitle, "update-mr-title", false, "prefix the MR title with the ticket key")
	createCmd.Flags().BoolVar(&createDryRun, "dry-run", false, "preview the ticket without creating it")
	rootCmd.AddCommand(createCmd)
}
