// SPDX-License-Identifier: MPL-2.0

package issue

import "strings"

// ActionableError is an error with context for user-facing failure messages.
// It carries the operation that failed, the settings key involved (if any),
// and suggestions for how to fix the problem.
type ActionableError struct {
	// Operation describes what was being attempted (e.g., "register settings").
	Operation string

	// Key identifies the settings key involved (optional).
	Key string

	// Suggestions provides hints on how to fix the issue (optional).
	Suggestions []string

	// Cause is the underlying error that triggered this error (optional).
	Cause error
}

// Wrap wraps an error with operation context. Returns nil when err is nil so
// call sites can wrap unconditionally.
func Wrap(err error, operation string) *ActionableError {
	if err == nil {
		return nil
	}
	return &ActionableError{
		Operation: operation,
		Cause:     err,
	}
}

// WrapKey wraps an error with operation and settings-key context.
func WrapKey(err error, operation, key string) *ActionableError {
	if err == nil {
		return nil
	}
	return &ActionableError{
		Operation: operation,
		Key:       key,
		Cause:     err,
	}
}

// Suggest appends fix hints and returns the receiver for chaining.
func (e *ActionableError) Suggest(hints ...string) *ActionableError {
	e.Suggestions = append(e.Suggestions, hints...)
	return e
}

// Error implements the error interface.
// Returns a concise message suitable for default (non-verbose) output.
func (e *ActionableError) Error() string {
	var msg strings.Builder

	msg.WriteString("failed to ")
	msg.WriteString(e.Operation)

	if e.Key != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Key)
	}

	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}

	return msg.String()
}

// Unwrap returns the underlying cause for use with errors.Is/As.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}
