package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rpggio/projectboard/internal/domain/activity"
)

// ActivityLogger records submission outcomes.
type ActivityLogger interface {
	LogActivity(ctx context.Context, entry *activity.ActivityEntry) error
}

// SubmissionObserver counts submission outcomes.
type SubmissionObserver interface {
	ObserveSubmission(accepted bool)
}

// Service gates submissions through validation before they reach the store.
type Service struct {
	store      *Store
	thresholds Thresholds
	activity   ActivityLogger
	observer   SubmissionObserver
	logger     *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithThresholds overrides the default validation thresholds.
func WithThresholds(t Thresholds) ServiceOption {
	return func(s *Service) { s.thresholds = t }
}

// WithActivityLogger records accepted and rejected submissions.
func WithActivityLogger(l ActivityLogger) ServiceOption {
	return func(s *Service) { s.activity = l }
}

// WithObserver reports submission outcomes to o.
func WithObserver(o SubmissionObserver) ServiceOption {
	return func(s *Service) { s.observer = o }
}

// NewService creates a new project service backed by store.
func NewService(store *Store, logger *slog.Logger, opts ...ServiceOption) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Service{
		store:      store,
		thresholds: DefaultThresholds(),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Thresholds returns the validation thresholds in effect.
func (s *Service) Thresholds() Thresholds {
	return s.thresholds
}

// Submit validates in and adds the resulting project to the store. On
// validation failure the store is left untouched and ErrInvalidInput is
// returned.
func (s *Service) Submit(ctx context.Context, in Input) (Project, error) {
	req, err := s.thresholds.Gather(in)
	if err != nil {
		s.observe(false)
		s.logger.Info("project submission rejected")
		s.record(ctx, &activity.ActivityEntry{
			ActivityType: activity.TypeSubmissionRejected,
			Summary:      "Invalid input, please try again.",
		})
		return Project{}, err
	}

	proj := s.store.Add(req.Title, req.Description, req.People)
	s.observe(true)
	s.logger.Info("project added", "id", proj.ID, "people", proj.People)

	details, err := json.Marshal(proj)
	if err != nil {
		details = nil
	}
	projectID := proj.ID
	s.record(ctx, &activity.ActivityEntry{
		ProjectID:    &projectID,
		ActivityType: activity.TypeProjectAdded,
		Summary:      fmt.Sprintf("Added project %q", proj.Title),
		Details:      string(details),
	})

	return proj, nil
}

// List returns the stored projects with the given status.
func (s *Service) List(status Status) ([]Project, error) {
	if _, err := ParseStatus(string(status)); err != nil {
		return nil, err
	}
	return FilterByStatus(s.store.Snapshot(), status), nil
}

// All returns every stored project in insertion order.
func (s *Service) All() []Project {
	return s.store.Snapshot()
}

// Store returns the store the service writes to.
func (s *Service) Store() *Store {
	return s.store
}

func (s *Service) observe(accepted bool) {
	if s.observer != nil {
		s.observer.ObserveSubmission(accepted)
	}
}

// record never fails the submission; the store has already been mutated.
func (s *Service) record(ctx context.Context, entry *activity.ActivityEntry) {
	if s.activity == nil {
		return
	}
	if err := s.activity.LogActivity(ctx, entry); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Warn("failed to record activity", "type", entry.ActivityType, "error", err)
	}
}
