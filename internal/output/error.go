package output

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	lwerr "github.com/mrz1836/lastword/pkg/errors"
)

// ErrorOutput represents a structured error for JSON output.
type ErrorOutput struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error details.
type ErrorDetail struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	Suggestion string            `json:"suggestion,omitempty"`
	ExitCode   int               `json:"exit_code"`
}

// NewErrorDetail flattens err for rendering.
func NewErrorDetail(err error) ErrorDetail {
	var le *lwerr.LastwordError
	if lwerr.As(err, &le) {
		return ErrorDetail{
			Code:       le.Code,
			Message:    le.Message,
			Details:    le.Details,
			Suggestion: le.Suggestion,
			ExitCode:   le.ExitCode,
		}
	}
	return ErrorDetail{
		Code:     "GENERAL_ERROR",
		Message:  err.Error(),
		ExitCode: lwerr.ExitGeneral,
	}
}

// FormatError formats an error for display.
func FormatError(w io.Writer, err error, format Format) error {
	if err == nil {
		return nil
	}

	detail := NewErrorDetail(err)
	if format == FormatJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(ErrorOutput{Error: detail})
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Error: %s\n", detail.Message)

	if len(detail.Details) > 0 {
		sb.WriteString("\nDetails:\n")
		keys := make([]string, 0, len(detail.Details))
		for k := range detail.Details {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(&sb, "  %s: %s\n", k, detail.Details[k])
		}
	}

	if detail.Suggestion != "" {
		fmt.Fprintf(&sb, "\nSuggestion: %s\n", detail.Suggestion)
	}

	_, writeErr := io.WriteString(w, sb.String())
	return writeErr
}

// FormatSuccess formats a success message.
func FormatSuccess(w io.Writer, message string, format Format) error {
	if format == FormatJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(map[string]string{"status": "success", "message": message})
	}
	_, err := fmt.Fprintln(w, message)
	return err
}
