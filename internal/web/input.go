package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/rpggio/projectboard/internal/domain/project"
)

// ProjectInput is the submission form.
type ProjectInput struct {
	service *project.Service
	logger  *slog.Logger
	// layout wraps a rendered form in the full page.
	layout func(form templ.Component) templ.Component
}

// NewProjectInput creates the form view.
func NewProjectInput(service *project.Service, logger *slog.Logger) *ProjectInput {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ProjectInput{
		service: service,
		logger:  logger,
		layout:  func(form templ.Component) templ.Component { return form },
	}
}

// Configure mounts the submit handler.
func (f *ProjectInput) Configure(r chi.Router) {
	r.Post("/projects", f.submit)
}

// RenderContent renders an empty form.
func (f *ProjectInput) RenderContent() templ.Component {
	return projectFormComponent(project.Input{}, "")
}

func (f *ProjectInput) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	in := project.Input{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		People:      r.PostFormValue("people"),
	}

	_, err := f.service.Submit(r.Context(), in)
	switch {
	case errors.Is(err, project.ErrInvalidInput):
		// The entered values stay in the form.
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnprocessableEntity)
		if err := f.layout(projectFormComponent(in, invalidInputMessage)).Render(r.Context(), w); err != nil {
			f.logger.Error("failed to render form", "error", err)
		}
		return
	case err != nil:
		f.logger.Error("project submission failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
