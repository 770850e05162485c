package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/projectboard/internal/domain/activity"
	"github.com/rpggio/projectboard/internal/domain/project"
)

// ProjectView is the wire form of a project.
type ProjectView struct {
	ID          string `json:"id" jsonschema:"project identifier"`
	Title       string `json:"title" jsonschema:"project title"`
	Description string `json:"description" jsonschema:"project description"`
	People      int    `json:"people" jsonschema:"number of people assigned"`
	Status      string `json:"status" jsonschema:"active or finished"`
	CreatedAt   string `json:"created_at" jsonschema:"RFC 3339 creation time"`
}

func toProjectView(p project.Project) ProjectView {
	return ProjectView{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		People:      p.People,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toProjectViews(projects []project.Project) []ProjectView {
	views := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, toProjectView(p))
	}
	return views
}

// PingInput is the (empty) input of the ping tool.
type PingInput struct{}

// AddProjectInput mirrors the board form.
type AddProjectInput struct {
	Title       string `json:"title" jsonschema:"project title"`
	Description string `json:"description" jsonschema:"project description"`
	People      any    `json:"people" jsonschema:"number of people, as a number or as text entered in a form"`
}

// AddProjectResult is the output of add_project.
type AddProjectResult struct {
	Project ProjectView `json:"project" jsonschema:"the created project"`
}

// ListProjectsInput filters list_projects.
type ListProjectsInput struct {
	Status string `json:"status,omitempty" jsonschema:"active or finished; omit for every project"`
}

// ListProjectsResult is the output of list_projects.
type ListProjectsResult struct {
	Projects []ProjectView `json:"projects" jsonschema:"projects in insertion order"`
}

// GetRecentActivityInput filters get_recent_activity.
type GetRecentActivityInput struct {
	Type  string `json:"type,omitempty" jsonschema:"project_added or submission_rejected"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of entries"`
}

// ActivityView is the wire form of an activity entry.
type ActivityView struct {
	ID        int64  `json:"id" jsonschema:"entry identifier"`
	ProjectID string `json:"project_id,omitempty" jsonschema:"project the entry refers to"`
	Type      string `json:"type" jsonschema:"activity type"`
	Summary   string `json:"summary" jsonschema:"human readable summary"`
	CreatedAt string `json:"created_at" jsonschema:"RFC 3339 time of the entry"`
}

// GetRecentActivityResult is the output of get_recent_activity.
type GetRecentActivityResult struct {
	Entries []ActivityView `json:"entries" jsonschema:"entries, newest first"`
}

func registerTools(server *sdkmcp.Server, services Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "ping",
		Description: "Check that the server is responding",
	}, pingHandler)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_project",
		Description: "Submit a new active project; rejected when any field fails validation",
	}, addProjectHandler(services.Projects))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List projects in insertion order, optionally filtered by status",
	}, listProjectsHandler(services.Projects))

	if services.Activity != nil {
		sdkmcp.AddTool(server, &sdkmcp.Tool{
			Name:        "get_recent_activity",
			Description: "List accepted and rejected submissions, newest first",
		}, getRecentActivityHandler(services.Activity))
	}
}

func pingHandler(_ context.Context, _ *sdkmcp.CallToolRequest, _ PingInput) (*sdkmcp.CallToolResult, any, error) {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: "pong"}},
	}, nil, nil
}

func addProjectHandler(projects ProjectService) sdkmcp.ToolHandlerFor[AddProjectInput, AddProjectResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input AddProjectInput) (*sdkmcp.CallToolResult, AddProjectResult, error) {
		proj, err := projects.Submit(ctx, project.Input{
			Title:       input.Title,
			Description: input.Description,
			People:      peopleField(input.People),
		})
		if err != nil {
			return nil, AddProjectResult{}, MapError(err)
		}
		return nil, AddProjectResult{Project: toProjectView(proj)}, nil
	}
}

func listProjectsHandler(projects ProjectService) sdkmcp.ToolHandlerFor[ListProjectsInput, ListProjectsResult] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, input ListProjectsInput) (*sdkmcp.CallToolResult, ListProjectsResult, error) {
		if input.Status == "" {
			return nil, ListProjectsResult{Projects: toProjectViews(projects.All())}, nil
		}
		status, err := project.ParseStatus(input.Status)
		if err != nil {
			return nil, ListProjectsResult{}, MapError(err)
		}
		list, err := projects.List(status)
		if err != nil {
			return nil, ListProjectsResult{}, MapError(err)
		}
		return nil, ListProjectsResult{Projects: toProjectViews(list)}, nil
	}
}

func getRecentActivityHandler(svc ActivityService) sdkmcp.ToolHandlerFor[GetRecentActivityInput, GetRecentActivityResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input GetRecentActivityInput) (*sdkmcp.CallToolResult, GetRecentActivityResult, error) {
		opts := activity.ListActivityOptions{Limit: input.Limit}
		if input.Type != "" {
			typ, err := activity.ParseType(input.Type)
			if err != nil {
				return nil, GetRecentActivityResult{}, MapError(err)
			}
			opts.ActivityType = &typ
		}
		entries, err := svc.GetRecentActivity(ctx, opts)
		if err != nil {
			return nil, GetRecentActivityResult{}, MapError(err)
		}
		views := make([]ActivityView, 0, len(entries))
		for _, entry := range entries {
			view := ActivityView{
				ID:        entry.ID,
				Type:      string(entry.ActivityType),
				Summary:   entry.Summary,
				CreatedAt: entry.CreatedAt.UTC().Format(time.RFC3339),
			}
			if entry.ProjectID != nil {
				view.ProjectID = *entry.ProjectID
			}
			views = append(views, view)
		}
		return nil, GetRecentActivityResult{Entries: views}, nil
	}
}

// peopleField renders the people argument as the text a form would submit.
func peopleField(v any) string {
	switch people := v.(type) {
	case nil:
		return ""
	case string:
		return people
	case float64:
		return strconv.FormatFloat(people, 'f', -1, 64)
	case json.Number:
		return people.String()
	case bool:
		// Not a number; unary plus would coerce it, the form cannot send it.
		return "invalid"
	default:
		return fmt.Sprint(people)
	}
}

func registerProjectResources(server *sdkmcp.Server, projects ProjectService) {
	for _, status := range project.Statuses {
		uri := "projects://" + string(status)
		server.AddResource(&sdkmcp.Resource{
			URI:         uri,
			Name:        string(status) + "_projects",
			Title:       fmt.Sprintf("%s projects", status),
			Description: fmt.Sprintf("JSON listing of %s projects in insertion order", status),
			MIMEType:    "application/json",
		}, func(_ context.Context, _ *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			list, err := projects.List(status)
			if err != nil {
				return nil, MapError(err)
			}
			data, err := json.MarshalIndent(ListProjectsResult{Projects: toProjectViews(list)}, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("marshal %s projects: %w", status, err)
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "application/json",
					Text:     string(data),
				}},
			}, nil
		})
	}
}
