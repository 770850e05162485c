package project

import (
	"strings"
	"time"
)

// Status is the lifecycle state of a project.
type Status string

const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusActive, StatusFinished}

// ParseStatus resolves a status name, ignoring case and surrounding space.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusActive:
		return StatusActive, nil
	case StatusFinished:
		return StatusFinished, nil
	default:
		return "", ErrUnknownStatus
	}
}

// Project is a submitted project. Values are never mutated after the store
// creates them.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	People      int       `json:"people"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// FilterByStatus returns the projects in snapshot with the given status,
// preserving order.
func FilterByStatus(snapshot []Project, status Status) []Project {
	filtered := make([]Project, 0, len(snapshot))
	for _, proj := range snapshot {
		if proj.Status == status {
			filtered = append(filtered, proj)
		}
	}
	return filtered
}
