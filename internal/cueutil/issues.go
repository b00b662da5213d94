// SPDX-License-Identifier: MPL-2.0

// Package cueutil turns CUE validation failures into structured issues that
// callers can map onto their own error types.
package cueutil

import (
	"strings"

	"cuelang.org/go/cue/errors"
)

// Issue is one structural problem reported by CUE validation.
type Issue struct {
	// Path locates the problematic value in JSON-path notation
	// (e.g., "databases.default.port"). Empty when CUE reports no position.
	Path string

	// Message is the validation message with any redundant path prefix
	// stripped.
	Message string

	// NotAllowed is true when a closed schema rejected the field, i.e. the
	// key itself is unknown rather than its value being mistyped.
	NotAllowed bool
}

// Issues splits err into the individual CUE validation problems it carries.
// Non-CUE errors yield a single pathless issue with the raw message.
func Issues(err error) []Issue {
	if err == nil {
		return nil
	}

	cueErrors := errors.Errors(err)
	if len(cueErrors) == 0 {
		return []Issue{{Message: err.Error()}}
	}

	issues := make([]Issue, 0, len(cueErrors))
	for _, e := range cueErrors {
		rawPath := errors.Path(e)
		pathStr := FormatPath(rawPath)
		msg := e.Error()

		// CUE sometimes includes the path in the message itself, with the
		// definition root still attached.
		for _, prefix := range []string{joinPath(rawPath), pathStr} {
			if prefix != "" && strings.HasPrefix(msg, prefix) {
				msg = strings.TrimPrefix(msg, prefix)
				msg = strings.TrimPrefix(msg, ":")
				msg = strings.TrimSpace(msg)
				break
			}
		}

		issues = append(issues, Issue{
			Path:       pathStr,
			Message:    msg,
			NotAllowed: strings.Contains(msg, "not allowed"),
		})
	}

	return issues
}

// FormatPath converts a CUE error path to JSON-path notation. CUE provides
// paths as flat string slices (e.g., ["databases", "default", "port"] or
// ["middleware", "0"]) where numeric elements are array indices; the result
// is "databases.default.port" or "middleware[0]". Errors raised while
// unifying against a definition carry the definition's own name as the
// first element ("#Settings"); that root is schema plumbing, not part of
// the caller's data, and is dropped.
func FormatPath(path []string) string {
	if len(path) > 0 && strings.HasPrefix(path[0], "#") {
		path = path[1:]
	}
	return joinPath(path)
}

func joinPath(path []string) string {
	if len(path) == 0 {
		return ""
	}

	var result strings.Builder
	for i, part := range path {
		isIndex := part != ""
		for _, c := range part {
			if c < '0' || c > '9' {
				isIndex = false
				break
			}
		}

		if isIndex && i > 0 {
			result.WriteString("[")
			result.WriteString(part)
			result.WriteString("]")
		} else {
			if i > 0 {
				result.WriteString(".")
			}
			result.WriteString(part)
		}
	}

	return result.String()
}
