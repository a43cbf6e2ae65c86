package jira

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dt-pm-tools/gitlab-jira-cli/internal/adf"
	"github.com/dt-pm-tools/gitlab-jira-cli/internal/config"
)

func testClient(url string) *Client {
	return NewClient(config.JiraConfig{
		URL:      url,
		Username: "dev@example.com",
		APIToken: "jira-token",
	})
}

func TestCreateIssue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/api/3/issue", r.URL.Path)

		expectedAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("dev@example.com:jira-token"))
		assert.Equal(t, expectedAuth, r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		fields := body["fields"].(map[string]any)
		assert.Equal(t, "Add login flow", fields["summary"])
		assert.Equal(t, map[string]any{"key": "PROJ"}, fields["project"])
		assert.Equal(t, map[string]any{"name": "Task"}, fields["issuetype"])
		desc := fields["description"].(map[string]any)
		assert.Equal(t, "doc", desc["type"])
		assert.Equal(t, float64(1), desc["version"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"10001","key":"PROJ-42","self":"https://jira/rest/api/3/issue/10001"}`))
	}))
	defer srv.Close()

	doc := &adf.Document{Version: 1, Content: []adf.Block{adf.Rule{}}}
	created, err := testClient(srv.URL).CreateIssue(CreatePayload{
		Fields: CreateFields{
			Project:     ProjectKey{Key: "PROJ"},
			Summary:     "Add login flow",
			IssueType:   IssueType{Name: "Task"},
			Description: doc,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "PROJ-42", created.Key)
}

func TestCreateIssue_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errorMessages":["field summary is required"]}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).CreateIssue(CreatePayload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestTransitionByName(t *testing.T) {
	var transitioned string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "/rest/api/3/issue/PROJ-42/transitions", r.URL.Path)
			_, _ = w.Write([]byte(`{"transitions":[
				{"id":"11","name":"To Do","to":{"name":"To Do"}},
				{"id":"21","name":"Start Progress","to":{"name":"In Progress"}}
			]}`))
		case http.MethodPost:
			var payload TransitionPayload
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			transitioned = payload.Transition.ID
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	// Matches the target status name, case-insensitive.
	err := testClient(srv.URL).TransitionByName("PROJ-42", "in progress")
	require.NoError(t, err)
	assert.Equal(t, "21", transitioned)
}

func TestTransitionByName_NoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"transitions":[{"id":"11","name":"To Do","to":{"name":"To Do"}}]}`))
	}))
	defer srv.Close()

	err := testClient(srv.URL).TransitionByName("PROJ-42", "In Progress")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no transition found")
	assert.Contains(t, err.Error(), "To Do")
}

func TestGetProjectComponents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/project/PROJ/components", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id":"1","name":"Backend"},
			{"id":"2","name":"Frontend","description":"web UI"}
		]`))
	}))
	defer srv.Close()

	components, err := testClient(srv.URL).GetProjectComponents("PROJ")
	require.NoError(t, err)
	require.Len(t, components, 2)
	assert.Equal(t, "Backend", components[0].Name)
	assert.Equal(t, "web UI", components[1].Description)
}

func TestBrowseURL(t *testing.T) {
	client := NewClient(config.JiraConfig{URL: "https://org.atlassian.net/", Username: "u", APIToken: "t"})
	assert.Equal(t, "https://org.atlassian.net/browse/PROJ-1", client.BrowseURL("PROJ-1"))
}
