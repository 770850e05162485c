package web

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/rpggio/projectboard/internal/domain/project"
)

// ProjectList renders the projects of one status. It observes the store and
// keeps the most recent filtered snapshot.
type ProjectList struct {
	status project.Status
	store  *project.Store

	mu       sync.RWMutex
	projects []project.Project
}

// NewProjectList creates the list view for status. An unknown status is a
// construction error.
func NewProjectList(store *project.Store, status string) (*ProjectList, error) {
	parsed, err := project.ParseStatus(status)
	if err != nil {
		return nil, fmt.Errorf("project list %q: %w", status, err)
	}
	return &ProjectList{
		status:   parsed,
		store:    store,
		projects: []project.Project{},
	}, nil
}

// Status returns the status this list shows.
func (l *ProjectList) Status() project.Status {
	return l.status
}

// Configure subscribes the list to the store and mounts its fragment route.
func (l *ProjectList) Configure(r chi.Router) {
	l.update(l.store.Snapshot())
	l.store.Subscribe(l.update)
	r.Get("/lists/"+string(l.status), l.serveFragment)
}

// Projects returns the projects currently shown.
func (l *ProjectList) Projects() []project.Project {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]project.Project, len(l.projects))
	copy(out, l.projects)
	return out
}

// RenderContent renders the list section.
func (l *ProjectList) RenderContent() templ.Component {
	return projectListComponent(l.status, l.Projects())
}

func (l *ProjectList) update(snapshot []project.Project) {
	filtered := project.FilterByStatus(snapshot, l.status)
	l.mu.Lock()
	l.projects = filtered
	l.mu.Unlock()
}

func (l *ProjectList) serveFragment(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := l.RenderContent().Render(r.Context(), w); err != nil {
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}
