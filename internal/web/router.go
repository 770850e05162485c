package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rpggio/projectboard/internal/domain/project"
)

// listStatuses are the lists shown on the board, in display order.
var listStatuses = []string{"active", "finished"}

// Config holds router dependencies.
type Config struct {
	Service *project.Service
	Logger  *slog.Logger
}

// Board composes the form and the lists into the page.
type Board struct {
	Input *ProjectInput
	Lists []*ProjectList
	Live  *Hub
}

func (b *Board) page(form templ.Component) templ.Component {
	lists := make([]templ.Component, 0, len(b.Lists))
	for _, list := range b.Lists {
		lists = append(lists, list.RenderContent())
	}
	return pageComponent(form, lists)
}

func (b *Board) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := b.page(b.Input.RenderContent()).Render(r.Context(), w); err != nil {
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}

// NewBoard constructs and configures every view against r.
func NewBoard(r chi.Router, service *project.Service, logger *slog.Logger) (*Board, error) {
	board := &Board{
		Input: NewProjectInput(service, logger),
		Live:  NewHub(service.Store(), logger),
	}
	for _, status := range listStatuses {
		list, err := NewProjectList(service.Store(), status)
		if err != nil {
			return nil, err
		}
		board.Lists = append(board.Lists, list)
	}
	board.Input.layout = board.page

	board.Input.Configure(r)
	for _, list := range board.Lists {
		list.Configure(r)
	}
	board.Live.Configure(r)
	r.Get("/", board.serveIndex)

	return board, nil
}

// NewRouter creates the board's HTTP router.
func NewRouter(cfg Config) (*chi.Mux, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	if _, err := NewBoard(r, cfg.Service, logger); err != nil {
		return nil, err
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r, nil
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
