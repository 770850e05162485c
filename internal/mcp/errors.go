package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/projectboard/internal/domain/activity"
	"github.com/rpggio/projectboard/internal/domain/project"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
}

// MapError maps domain errors to MCP error codes. Unknown errors pass
// through unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, project.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: "invalid project input", RecoveryHint: "Check title, description and people against the documented rules"}
	case errors.Is(err, project.ErrUnknownStatus):
		return &APIError{Code: "UNKNOWN_STATUS", Message: "unknown project status", RecoveryHint: "Use active or finished"}
	case errors.Is(err, activity.ErrInvalidInput):
		return &APIError{Code: "INVALID_FILTER", Message: "invalid activity filter", RecoveryHint: "Use a known type and a non-negative limit"}
	default:
		return err
	}
}
