package jira

import "github.com/dt-pm-tools/gitlab-jira-cli/internal/adf"

// CreatePayload is the body for POST /rest/api/3/issue.
type CreatePayload struct {
	Fields CreateFields `json:"fields"`
}

// CreateFields contains the fields set on issue creation. Description is
// the ADF document built from the merge request.
type CreateFields struct {
	Project     ProjectKey    `json:"project"`
	Summary     string        `json:"summary"`
	IssueType   IssueType     `json:"issuetype"`
	Description *adf.Document `json:"description"`
	Labels      []string      `json:"labels,omitempty"`
	Components  []NamedField  `json:"components,omitempty"`
	Priority    *NamedField   `json:"priority,omitempty"`
	Assignee    *User         `json:"assignee,omitempty"`
}

// ProjectKey references a JIRA project by key.
type ProjectKey struct {
	Key string `json:"key"`
}

// IssueType references an issue type by name.
type IssueType struct {
	Name string `json:"name"`
}

// NamedField is the {"name": ...} shape components and priorities use.
type NamedField struct {
	Name string `json:"name"`
}

// User references a JIRA user for assignment.
type User struct {
	AccountID string `json:"accountId"`
}

// CreatedIssue is the response from issue creation.
type CreatedIssue struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Self string `json:"self"`
}

// Component describes a project component.
type Component struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Status represents a JIRA status.
type Status struct {
	Name string `json:"name"`
}

// Transition is used to change issue status.
type Transition struct {
	ID string `json:"id"`
}

// TransitionPayload is the body for POST /rest/api/3/issue/{key}/transitions.
type TransitionPayload struct {
	Transition Transition `json:"transition"`
}

// TransitionsResponse is the response from GET transitions.
type TransitionsResponse struct {
	Transitions []TransitionInfo `json:"transitions"`
}

// TransitionInfo describes an available transition.
type TransitionInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	To   Status `json:"to"`
}
