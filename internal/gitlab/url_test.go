package gitlab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMergeRequestURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want MRRef
	}{
		{
			name: "simple project",
			url:  "https://gitlab.com/group/app/-/merge_requests/123",
			want: MRRef{ProjectRef: "group%2Fapp", ProjectPath: "group/app", IID: "123"},
		},
		{
			name: "nested namespace",
			url:  "https://gitlab.example.com/org/team/app/-/merge_requests/7",
			want: MRRef{ProjectRef: "org%2Fteam%2Fapp", ProjectPath: "org/team/app", IID: "7"},
		},
		{
			name: "trailing slash",
			url:  "https://gitlab.com/group/app/-/merge_requests/9/",
			want: MRRef{ProjectRef: "group%2Fapp", ProjectPath: "group/app", IID: "9"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMergeRequestURL(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMergeRequestURL_Invalid(t *testing.T) {
	invalid := []string{
		"not a url",
		"https://gitlab.com/group/app",
		"https://gitlab.com/group/app/-/issues/5",
		"https://gitlab.com/-/merge_requests/5",
		"https://gitlab.com/group/app/-/merge_requests/abc",
		"https://gitlab.com/group/app/-/merge_requests",
	}
	for _, url := range invalid {
		_, err := ParseMergeRequestURL(url)
		assert.Error(t, err, "url %q", url)
	}
}
