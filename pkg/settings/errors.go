// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"errors"
	"fmt"
)

// Sentinel errors for construction failures. Use errors.Is to match a kind
// and errors.As to recover the offending key.
var (
	// ErrTypeMismatch indicates a supplied value whose shape conflicts with
	// the declared field type.
	ErrTypeMismatch = errors.New("settings value type mismatch")

	// ErrUnknownKey indicates a key outside the fixed schema that was not
	// routed through the extra mechanism.
	ErrUnknownKey = errors.New("unknown settings key")

	// ErrReservedKey indicates an extra key that collides with a fixed
	// schema field.
	ErrReservedKey = errors.New("reserved settings key")
)

type (
	// TypeMismatchError reports a value that does not fit its field's
	// declared type. Key is the dotted path to the value ("debug",
	// "databases.default.conn_max_age"); Detail preserves the validator's
	// description of the conflict.
	TypeMismatchError struct {
		Key    string
		Detail string
	}

	// UnknownKeyError reports a key that matches no fixed schema field.
	UnknownKeyError struct {
		Key string
	}

	// ReservedKeyError reports an extra key that would shadow a fixed
	// schema field.
	ReservedKeyError struct {
		Key string
	}
)

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	switch {
	case e.Key == "" && e.Detail == "":
		return ErrTypeMismatch.Error()
	case e.Key == "":
		return fmt.Sprintf("%s: %s", ErrTypeMismatch, e.Detail)
	case e.Detail == "":
		return fmt.Sprintf("%s: %s", ErrTypeMismatch, e.Key)
	default:
		return fmt.Sprintf("%s: %s: %s", ErrTypeMismatch, e.Key, e.Detail)
	}
}

// Unwrap returns ErrTypeMismatch for use with errors.Is.
func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// Error implements the error interface.
func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("%s: %q is not a recognized option; route caller-defined keys through \"extra\"", ErrUnknownKey, e.Key)
}

// Unwrap returns ErrUnknownKey for use with errors.Is.
func (e *UnknownKeyError) Unwrap() error {
	return ErrUnknownKey
}

// Error implements the error interface.
func (e *ReservedKeyError) Error() string {
	return fmt.Sprintf("%s: %q collides with a fixed schema field", ErrReservedKey, e.Key)
}

// Unwrap returns ErrReservedKey for use with errors.Is.
func (e *ReservedKeyError) Unwrap() error {
	return ErrReservedKey
}
