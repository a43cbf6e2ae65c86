package gitlab

// MergeRequest holds the merge-request fields we read from the GitLab
// REST API v4.
type MergeRequest struct {
	IID          int    `json:"iid"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	State        string `json:"state"`
	SourceBranch string `json:"source_branch"`
	TargetBranch string `json:"target_branch"`
	CreatedAt    string `json:"created_at"`
	WebURL       string `json:"web_url"`
	Author       Author `json:"author"`
}

// Author is the merge-request author.
type Author struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Project holds project details; ID is the numeric project id that
// upload URLs are resolved against.
type Project struct {
	ID                int    `json:"id"`
	PathWithNamespace string `json:"path_with_namespace"`
	WebURL            string `json:"web_url"`
}
