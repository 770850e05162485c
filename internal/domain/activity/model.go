package activity

import "time"

// ActivityType represents the type of activity event
type ActivityType string

const (
	TypeProjectAdded       ActivityType = "project_added"
	TypeSubmissionRejected ActivityType = "submission_rejected"
)

// ParseType resolves an activity type name.
func ParseType(s string) (ActivityType, error) {
	switch t := ActivityType(s); t {
	case TypeProjectAdded, TypeSubmissionRejected:
		return t, nil
	default:
		return "", ErrInvalidInput
	}
}

// ActivityEntry represents an event in the activity log
type ActivityEntry struct {
	ID           int64        `json:"id"`
	ProjectID    *string      `json:"project_id,omitempty"`
	ActivityType ActivityType `json:"type"`
	Summary      string       `json:"summary"`
	Details      string       `json:"details,omitempty"` // JSON string
	CreatedAt    time.Time    `json:"created_at"`
}
