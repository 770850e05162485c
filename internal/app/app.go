package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/projectboard/internal/config"
	"github.com/rpggio/projectboard/internal/domain/activity"
	"github.com/rpggio/projectboard/internal/domain/project"
	"github.com/rpggio/projectboard/internal/mcp"
	"github.com/rpggio/projectboard/internal/metrics"
	"github.com/rpggio/projectboard/internal/sqlite"
	"github.com/rpggio/projectboard/internal/web"
)

// App holds the wired board: one store shared by the web views, the MCP
// server and the metrics listener.
type App struct {
	DB       *sqlite.DB
	Store    *project.Store
	Projects *project.Service
	Activity *activity.Service
	Metrics  *metrics.Metrics
	MCP      *sdkmcp.Server

	logger *slog.Logger
}

// Option configures an App.
type Option func(*options)

type options struct {
	storeOpts []project.StoreOption
}

// WithStoreOptions passes opts to the project store.
func WithStoreOptions(opts ...project.StoreOption) Option {
	return func(o *options) { o.storeOpts = append(o.storeOpts, opts...) }
}

// New opens the activity database and wires every component from cfg.
func New(cfg config.Config, logger *slog.Logger, opts ...Option) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.RunMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	activitySvc := activity.NewService(sqlite.NewActivityRepository(db), logger)
	m := metrics.New()

	store := project.NewStore(o.storeOpts...)
	store.Subscribe(m.Listener())

	projectSvc := project.NewService(store, logger,
		project.WithThresholds(Thresholds(cfg.Validation)),
		project.WithActivityLogger(activitySvc),
		project.WithObserver(m),
	)

	server := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Projects: projectSvc,
			Activity: activitySvc,
		},
		Logger: logger,
	})

	return &App{
		DB:       db,
		Store:    store,
		Projects: projectSvc,
		Activity: activitySvc,
		Metrics:  m,
		MCP:      server,
		logger:   logger,
	}, nil
}

// Thresholds converts validation config into project thresholds.
func Thresholds(v config.ValidationConfig) project.Thresholds {
	return project.Thresholds{
		TitleMinLength:       v.TitleMinLength,
		DescriptionMinLength: v.DescriptionMinLength,
		PeopleMin:            v.PeopleMin,
		PeopleMax:            v.PeopleMax,
	}
}

// Handler serves the board, MCP over streamable HTTP, and metrics.
func (a *App) Handler() (http.Handler, error) {
	router, err := web.NewRouter(web.Config{
		Service: a.Projects,
		Logger:  a.logger,
	})
	if err != nil {
		return nil, err
	}

	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return a.MCP },
		&sdkmcp.StreamableHTTPOptions{
			SessionTimeout: 30 * time.Minute,
		},
	)
	mountMCP(router, mcpHandler)
	router.Handle("/metrics", a.Metrics.Handler())

	return router, nil
}

func mountMCP(r chi.Router, h http.Handler) {
	r.Handle("/mcp", h)
	r.Handle("/mcp/*", h)
}

// Close releases the database.
func (a *App) Close() error {
	return a.DB.Close()
}
