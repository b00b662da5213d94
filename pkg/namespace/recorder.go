// SPDX-License-Identifier: MPL-2.0

package namespace

import "maps"

type (
	// Write is one recorded Set call.
	Write struct {
		Key   string
		Value any
	}

	// Recorder is a Namespace test double. It records every write in call
	// order and can inject a failure for a chosen key, which makes it
	// suitable for asserting registration order, idempotency, and the
	// partial state left behind by a mid-sequence failure.
	Recorder struct {
		// FailOn, when non-empty, makes Set fail for that exact key.
		FailOn string

		// FailErr is the error returned for the FailOn key. When nil,
		// ErrWriteRefused is returned.
		FailErr error

		writes []Write
		values map[string]any
	}
)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{values: make(map[string]any)}
}

// Set implements Namespace.
func (r *Recorder) Set(key string, value any) error {
	if r.FailOn != "" && key == r.FailOn {
		if r.FailErr != nil {
			return r.FailErr
		}
		return ErrWriteRefused
	}

	if r.values == nil {
		r.values = make(map[string]any)
	}
	r.writes = append(r.writes, Write{Key: key, Value: value})
	r.values[key] = value
	return nil
}

// Writes returns a copy of the recorded calls in order.
func (r *Recorder) Writes() []Write {
	out := make([]Write, len(r.writes))
	copy(out, r.writes)
	return out
}

// Values returns a copy of the current bindings.
func (r *Recorder) Values() map[string]any {
	return maps.Clone(r.values)
}

// Has reports whether key is currently bound.
func (r *Recorder) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Reset discards all recorded writes and bindings.
func (r *Recorder) Reset() {
	r.writes = nil
	r.values = make(map[string]any)
}
