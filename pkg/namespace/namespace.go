// SPDX-License-Identifier: MPL-2.0

package namespace

import "errors"

// Sentinel errors for namespace writes. Use errors.Is to match.
var (
	// ErrNilNamespace indicates a write against a nil or uninitialized
	// target.
	ErrNilNamespace = errors.New("nil settings namespace")

	// ErrWriteRefused is the default error injected by a Recorder when a
	// write hits its configured failure key.
	ErrWriteRefused = errors.New("namespace write refused")
)

// Namespace is the write side of a global settings table. Implementations
// must treat Set as a plain overwrite: binding the same key twice leaves the
// second value, with no duplication and no error.
type Namespace interface {
	// Set binds key to value, replacing any previous binding.
	Set(key string, value any) error
}

// Map adapts a caller-owned map as a registration target. The zero value
// (a nil map) is the invalid-target case and refuses writes.
type Map map[string]any

// Set implements Namespace.
func (m Map) Set(key string, value any) error {
	if m == nil {
		return ErrNilNamespace
	}
	m[key] = value
	return nil
}
