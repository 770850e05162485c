package web

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/rpggio/projectboard/internal/domain/project"
)

// invalidInputMessage is shown when a submission fails validation.
const invalidInputMessage = "Invalid input, please try again."

func esc(s string) string {
	return templ.EscapeString(s)
}

// htmlComponent adapts a string builder function to templ.Component.
func htmlComponent(build func(ctx context.Context, b *strings.Builder)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		build(ctx, &b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func renderTo(ctx context.Context, b *strings.Builder, c templ.Component) {
	if c == nil {
		return
	}
	// Writes to a strings.Builder never fail.
	_ = c.Render(ctx, b)
}

func peopleLabel(n int) string {
	if n == 1 {
		return "1 person assigned"
	}
	return fmt.Sprintf("%d persons assigned", n)
}

func projectListComponent(status project.Status, projects []project.Project) templ.Component {
	return htmlComponent(func(_ context.Context, b *strings.Builder) {
		fmt.Fprintf(b, `<section class="projects" id="%s-projects">`, esc(string(status)))
		fmt.Fprintf(b, `<header><h2>%s PROJECTS</h2></header>`, esc(strings.ToUpper(string(status))))
		fmt.Fprintf(b, `<ul id="%s-projects-list">`, esc(string(status)))
		for _, proj := range projects {
			fmt.Fprintf(b, `<li id="project-%s"><h2>%s</h2><h3>%s</h3><p>%s</p></li>`,
				esc(proj.ID), esc(proj.Title), esc(peopleLabel(proj.People)), esc(proj.Description))
		}
		b.WriteString(`</ul></section>`)
	})
}

func projectFormComponent(in project.Input, alert string) templ.Component {
	return htmlComponent(func(_ context.Context, b *strings.Builder) {
		b.WriteString(`<form id="user-input" method="post" action="/projects">`)
		if alert != "" {
			fmt.Fprintf(b, `<div class="alert" role="alert">%s</div>`, esc(alert))
		}
		fmt.Fprintf(b, `<div class="form-control"><label for="title">Title</label><input type="text" id="title" name="title" value="%s"></div>`, esc(in.Title))
		fmt.Fprintf(b, `<div class="form-control"><label for="description">Description</label><textarea id="description" name="description" rows="3">%s</textarea></div>`, esc(in.Description))
		fmt.Fprintf(b, `<div class="form-control"><label for="people">People</label><input type="number" id="people" name="people" step="1" min="1" value="%s"></div>`, esc(in.People))
		b.WriteString(`<button type="submit">ADD PROJECT</button></form>`)
	})
}

const liveScript = `<script>
document.querySelectorAll("section.projects").forEach(function (section) {
  var status = section.id.replace(/-projects$/, "");
  var scheme = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(scheme + location.host + "/live?status=" + status);
  ws.onmessage = function (event) {
    var current = document.getElementById(status + "-projects");
    if (current) { current.outerHTML = event.data; }
  };
});
</script>`

func pageComponent(form templ.Component, lists []templ.Component) templ.Component {
	return htmlComponent(func(ctx context.Context, b *strings.Builder) {
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="UTF-8"><title>Project Board</title></head><body><div id="app">`)
		renderTo(ctx, b, form)
		for _, list := range lists {
			renderTo(ctx, b, list)
		}
		b.WriteString(`</div>`)
		b.WriteString(liveScript)
		b.WriteString(`</body></html>`)
	})
}
