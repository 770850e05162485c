// Package metrics exposes prometheus instrumentation for the project board.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rpggio/projectboard/internal/domain/project"
)

const namespace = "projectboard"

// Metrics holds the board's collectors on a private registry.
type Metrics struct {
	registry    *prometheus.Registry
	submissions *prometheus.CounterVec
	projects    *prometheus.GaugeVec
}

// New creates and registers the board's collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Project submissions by outcome.",
		}, []string{"result"}),
		projects: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "projects",
			Help:      "Stored projects by status.",
		}, []string{"status"}),
	}
	m.registry.MustRegister(m.submissions, m.projects)

	for _, status := range project.Statuses {
		m.projects.WithLabelValues(string(status)).Set(0)
	}
	m.submissions.WithLabelValues("accepted")
	m.submissions.WithLabelValues("rejected")

	return m
}

// ObserveSubmission counts a submission outcome.
func (m *Metrics) ObserveSubmission(accepted bool) {
	result := "rejected"
	if accepted {
		result = "accepted"
	}
	m.submissions.WithLabelValues(result).Inc()
}

// Listener returns a store listener that keeps the per-status gauge current.
func (m *Metrics) Listener() project.Listener {
	return func(snapshot []project.Project) {
		for _, status := range project.Statuses {
			count := len(project.FilterByStatus(snapshot, status))
			m.projects.WithLabelValues(string(status)).Set(float64(count))
		}
	}
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
