// Package web serves the project board: the submission form, the per-status
// project lists and the live list feed.
package web

import (
	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
)

// View is a board component. Configure wires it to the router (and to the
// store, for views that observe it); RenderContent renders its current state.
type View interface {
	Configure(r chi.Router)
	RenderContent() templ.Component
}

var (
	_ View = (*ProjectInput)(nil)
	_ View = (*ProjectList)(nil)
)
