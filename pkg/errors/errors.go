// Package errors provides structured error handling for lastword.
// It defines sentinel errors, exit codes, and helpers for adding
// context, details, and suggestions to errors.
//
//nolint:revive // Package name intentionally shadows stdlib for domain-specific error handling
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess  = 0 // Successful execution
	ExitGeneral  = 1 // General/unknown error
	ExitInput    = 2 // Invalid input (unknown word, bad checksum, bad flag)
	ExitNotFound = 4 // Resource not found
)

// LastwordError is the structured error type for lastword.
type LastwordError struct {
	Code       string            // Machine-readable error code
	Message    string            // Human-readable message
	Details    map[string]string // Additional context
	Suggestion string            // Actionable suggestion for user
	Cause      error             // Underlying error
	ExitCode   int               // Exit code for CLI
}

func (e *LastwordError) Error() string {
	msg := e.Message

	// Include details in error message (sorted for deterministic output)
	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *LastwordError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for LastwordError. Two errors match when their codes match.
func (e *LastwordError) Is(target error) bool {
	var t *LastwordError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel errors.
var (
	ErrGeneral = &LastwordError{
		Code:     "GENERAL_ERROR",
		Message:  "an error occurred",
		ExitCode: ExitGeneral,
	}

	ErrInvalidInput = &LastwordError{
		Code:     "INVALID_INPUT",
		Message:  "invalid input",
		ExitCode: ExitInput,
	}

	ErrNotFound = &LastwordError{
		Code:     "NOT_FOUND",
		Message:  "resource not found",
		ExitCode: ExitNotFound,
	}

	// Mnemonic errors.
	ErrUnknownWord = &LastwordError{
		Code:     "UNKNOWN_WORD",
		Message:  "unknown word",
		ExitCode: ExitInput,
	}

	ErrInvalidWordCount = &LastwordError{
		Code:     "INVALID_WORD_COUNT",
		Message:  "word count must be 12, 15, 18, 21 or 24",
		ExitCode: ExitInput,
	}

	ErrInvalidChecksum = &LastwordError{
		Code:     "INVALID_CHECKSUM",
		Message:  "mnemonic checksum does not match",
		ExitCode: ExitInput,
	}

	ErrInvalidWordList = &LastwordError{
		Code:     "INVALID_WORDLIST",
		Message:  "word list violates dictionary invariants",
		ExitCode: ExitGeneral,
	}

	// Config-specific errors.
	ErrConfigNotFound = &LastwordError{
		Code:     "CONFIG_NOT_FOUND",
		Message:  "configuration file not found",
		ExitCode: ExitNotFound,
	}

	ErrConfigInvalid = &LastwordError{
		Code:     "CONFIG_INVALID",
		Message:  "configuration file is invalid",
		ExitCode: ExitInput,
	}

	ErrUnknownConfigKey = &LastwordError{
		Code:     "UNKNOWN_CONFIG_KEY",
		Message:  "unknown config key",
		ExitCode: ExitInput,
	}
)

// New creates a new LastwordError with the given code and message.
func New(code, message string) *LastwordError {
	return &LastwordError{
		Code:     code,
		Message:  message,
		ExitCode: ExitGeneral,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...)

	var le *LastwordError
	if errors.As(err, &le) {
		return &LastwordError{
			Code:       le.Code,
			Message:    fmt.Sprintf("%s: %s", msg, le.Message),
			Details:    le.Details,
			Suggestion: le.Suggestion,
			Cause:      err,
			ExitCode:   le.ExitCode,
		}
	}

	return &LastwordError{
		Code:     "GENERAL_ERROR",
		Message:  msg,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithDetails adds details to an error. Existing details are kept unless
// overwritten by a key in details.
func WithDetails(err error, details map[string]string) error {
	if err == nil {
		return nil
	}

	var le *LastwordError
	if errors.As(err, &le) {
		merged := make(map[string]string, len(le.Details)+len(details))
		for k, v := range le.Details {
			merged[k] = v
		}
		for k, v := range details {
			merged[k] = v
		}
		return &LastwordError{
			Code:       le.Code,
			Message:    le.Message,
			Details:    merged,
			Suggestion: le.Suggestion,
			Cause:      le.Cause,
			ExitCode:   le.ExitCode,
		}
	}

	return &LastwordError{
		Code:     "GENERAL_ERROR",
		Message:  err.Error(),
		Details:  details,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithSuggestion adds a suggestion to an error.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}

	var le *LastwordError
	if errors.As(err, &le) {
		return &LastwordError{
			Code:       le.Code,
			Message:    le.Message,
			Details:    le.Details,
			Suggestion: suggestion,
			Cause:      le.Cause,
			ExitCode:   le.ExitCode,
		}
	}

	return &LastwordError{
		Code:       "GENERAL_ERROR",
		Message:    err.Error(),
		Suggestion: suggestion,
		Cause:      err,
		ExitCode:   ExitGeneral,
	}
}

// ExitCode returns the appropriate exit code for an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var le *LastwordError
	if errors.As(err, &le) {
		return le.ExitCode
	}

	return ExitGeneral
}

// Code returns the error code for an error.
func Code(err error) string {
	var le *LastwordError
	if errors.As(err, &le) {
		return le.Code
	}
	return "GENERAL_ERROR"
}

// Detail returns a single detail value from a LastwordError, or "" if absent.
func Detail(err error, key string) string {
	var le *LastwordError
	if errors.As(err, &le) {
		return le.Details[key]
	}
	return ""
}

// Is wraps errors.Is for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience.
func As(err error, target any) bool {
	return errors.As(err, target)
}
