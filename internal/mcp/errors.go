package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/noteflow/internal/domain/activity"
	"github.com/rpggio/noteflow/internal/domain/note"
	"github.com/rpggio/noteflow/internal/domain/notification"
)

var (
	errInsightsDisabled = errors.New("insights disabled")
	errUnknownTool      = errors.New("unknown tool")
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	switch {
	case errors.Is(err, note.ErrNoteNotFound):
		return &APIError{Code: "NOTE_NOT_FOUND", Message: "note not found", RecoveryHint: "Call list_notes to find valid IDs"}
	case errors.Is(err, note.ErrInvalidImport):
		return &APIError{Code: "INVALID_IMPORT", Message: err.Error(), RecoveryHint: "Pass the object produced by export_notes"}
	case errors.Is(err, note.ErrInvalidInput), errors.Is(err, activity.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error(), RecoveryHint: "Provide a title or content; check category and color values"}
	case errors.Is(err, notification.ErrUnknownEventType):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.Is(err, errInsightsDisabled):
		return &APIError{Code: "INSIGHTS_DISABLED", Message: "insights are disabled", RecoveryHint: "Set insights.enabled in the server config"}
	case errors.Is(err, errUnknownTool):
		return &APIError{Code: "UNKNOWN_TOOL", Message: err.Error()}
	default:
		return nil
	}
}

func invalidParams(err error) *APIError {
	return &APIError{Code: "INVALID_PARAMS", Message: err.Error(), RecoveryHint: "Check the tool input schema"}
}
