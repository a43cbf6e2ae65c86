package gitlab

import (
	"fmt"
	"net/url"
	"strings"
)

// MRRef identifies a merge request parsed from its web URL.
type MRRef struct {
	// ProjectRef is the URL-encoded project path, usable directly in
	// API paths.
	ProjectRef string
	// ProjectPath is the human-readable namespace/project path, used
	// for project-mapping lookups.
	ProjectPath string
	// IID is the merge request's per-project id.
	IID string
}

// ParseMergeRequestURL extracts the project path and MR IID from a URL
// like https://gitlab.com/namespace/project/-/merge_requests/123.
func ParseMergeRequestURL(raw string) (MRRef, error) {
	u, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return MRRef{}, fmt.Errorf("parsing merge request URL: %w", err)
	}
	if u.Host == "" {
		return MRRef{}, fmt.Errorf("invalid merge request URL %q: missing host", raw)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")

	// The project path is everything before the "/-/merge_requests"
	// marker; nested namespaces make it variable-length.
	markerIdx := -1
	for i := 0; i+1 < len(segments); i++ {
		if segments[i] == "-" && segments[i+1] == "merge_requests" {
			markerIdx = i
			break
		}
	}
	if markerIdx <= 0 || markerIdx+2 >= len(segments) {
		return MRRef{}, fmt.Errorf("invalid merge request URL %q: expected .../-/merge_requests/<iid>", raw)
	}

	iid := segments[markerIdx+2]
	for _, r := range iid {
		if r < '0' || r > '9' {
			return MRRef{}, fmt.Errorf("invalid merge request IID %q in URL", iid)
		}
	}

	projectPath := strings.Join(segments[:markerIdx], "/")
	return MRRef{
		ProjectRef:  url.PathEscape(projectPath),
		ProjectPath: projectPath,
		IID:         iid,
	}, nil
}
