package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `projectboard keeps an in-memory list of projects, each either active or finished.

- add_project(title, description, people): submit a project through the same checks as the board form.
  Title needs at least 5 characters, description at least 10 (unless configured otherwise), people must be a whole number of at least 1.
  A rejected submission changes nothing and reports only "invalid project input".
- list_projects(status): list projects, optionally only "active" or "finished".
- get_recent_activity(type, limit): accepted and rejected submissions, newest first.

Resources: projects://active, projects://finished, projectboard://docs/index.
Projects live only as long as the server process.
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "projectboard://docs/index",
		Name:        "docs_index",
		Title:       "projectboard docs",
		Description: "What the board stores, how submissions are validated, and which tools to call.",
		Content: `# projectboard

## Model

- **Project**: title, description, people count, status (` + "`active`" + ` or ` + "`finished`" + `).
  Projects are created active and are never modified or deleted.
- **Store**: one ordered list per server process. Every addition is pushed to the board lists,
  the live websocket feed and the metrics gauges before ` + "`add_project`" + ` returns.

## Validation

A submission is accepted only when every rule holds:

| Field | Rule |
| --- | --- |
| title | required, minimum length |
| description | required, minimum length |
| people | required, numeric minimum (and maximum when configured), whole number |

People is parsed the way a browser parses a number field: blank is 0, garbage is not a number.
The error never says which field failed.

## Tools

1. ` + "`add_project`" + ` to submit.
2. ` + "`list_projects`" + ` to read back, filtered by status.
3. ` + "`get_recent_activity`" + ` to audit submissions.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
