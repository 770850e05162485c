package testserver_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/projectboard/internal/app"
	"github.com/rpggio/projectboard/internal/config"
	"github.com/rpggio/projectboard/internal/domain/project"
	"github.com/rpggio/projectboard/internal/testserver"
)

func noRedirectClient(ts *testserver.TestServer) *http.Client {
	client := *ts.Server.Client()
	client.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return &client
}

func submitForm(t *testing.T, ts *testserver.TestServer, title, description, people string) *http.Response {
	t.Helper()
	resp, err := noRedirectClient(ts).PostForm(ts.URL("/projects"), url.Values{
		"title":       {title},
		"description": {description},
		"people":      {people},
	})
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

func TestBoard_FormSubmissionReachesEverySurface(t *testing.T) {
	var n int
	ts := testserver.New(t, app.WithStoreOptions(project.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("p%d", n)
	})))

	resp := submitForm(t, ts, "Build a rocket", "Launch it into orbit", "3")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = submitForm(t, ts, "abcd", "Launch it into orbit", "3")
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	require.Contains(t, readBody(t, resp), "Invalid input, please try again.")

	listResp, err := ts.Server.Client().Get(ts.URL("/lists/active"))
	require.NoError(t, err)
	defer listResp.Body.Close()
	fragment := readBody(t, listResp)
	require.Contains(t, fragment, `id="project-p1"`)
	require.Contains(t, fragment, "3 persons assigned")
	require.NotContains(t, fragment, "abcd")

	require.Equal(t, 1, ts.App.Store.Len())
}

func TestBoard_MetricsEndpoint(t *testing.T) {
	ts := testserver.New(t)
	submitForm(t, ts, "Build a rocket", "Launch it into orbit", "3")
	submitForm(t, ts, "", "", "")

	resp, err := ts.Server.Client().Get(ts.URL("/metrics"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	require.Contains(t, body, `projectboard_submissions_total{result="accepted"} 1`)
	require.Contains(t, body, `projectboard_submissions_total{result="rejected"} 1`)
	require.Contains(t, body, `projectboard_projects{status="active"} 1`)
	require.Contains(t, body, `projectboard_projects{status="finished"} 0`)
}

func TestBoard_MCPOverHTTP(t *testing.T) {
	ts := testserver.New(t)
	session := ts.ConnectMCP(t)
	ctx := context.Background()

	result, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name: "add_project",
		Arguments: map[string]any{
			"title":       "Build a rocket",
			"description": "Launch it into orbit",
			"people":      2,
		},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	// The project added over MCP shows up on the board.
	resp, err := ts.Server.Client().Get(ts.URL("/"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Contains(t, readBody(t, resp), "Build a rocket")

	submitForm(t, ts, "Second project", "Added through the form", "1")

	result, err = session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "list_projects",
		Arguments: map[string]any{"status": "active"},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	data, err := json.Marshal(result.StructuredContent)
	require.NoError(t, err)
	var listed struct {
		Projects []struct {
			Title string `json:"title"`
		} `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(data, &listed))
	require.Len(t, listed.Projects, 2)
	require.Equal(t, "Build a rocket", listed.Projects[0].Title)
	require.Equal(t, "Second project", listed.Projects[1].Title)
}

func TestBoard_ConfiguredThresholds(t *testing.T) {
	cfg := config.Default()
	cfg.Validation.TitleMinLength = 1
	cfg.Validation.DescriptionMinLength = 1
	ts := testserver.NewWithConfig(t, cfg)

	resp := submitForm(t, ts, "T", "D", "1")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, 1, ts.App.Store.Len())
}

func TestBoard_Health(t *testing.T) {
	ts := testserver.New(t)

	resp, err := ts.Server.Client().Get(ts.URL("/health"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, strings.HasPrefix(readBody(t, resp), "ok"))
}
