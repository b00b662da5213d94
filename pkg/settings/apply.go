// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// New builds an instance from Default with the supplied overrides layered
// on top. Override keys are the canonical lowercase names ("debug",
// "allowed_hosts"); nested blocks are plain maps:
//
//	s, err := settings.New(map[string]any{
//	    "debug":         true,
//	    "allowed_hosts": []string{"example.com"},
//	    "databases": map[string]any{
//	        "default": map[string]any{"engine": "django.db.backends.postgresql"},
//	    },
//	    "extra": map[string]any{"sentry_dsn": "https://..."},
//	})
//
// New(nil) equals Default(). On any validation failure no instance is
// returned.
func New(overrides map[string]any) (*Settings, error) {
	s := Default()
	if err := s.Apply(overrides); err != nil {
		return nil, err
	}
	return s, nil
}

// Apply layers an override map onto the instance. Each key present assigns
// that field wholesale: collections are replaced, not merged, exactly as if
// the field had been assigned directly. Keys absent from the map keep their
// current values.
//
// The map is validated structurally before anything is written. On error
// the receiver is unchanged; every violation in the map is reported in the
// joined error, each matching ErrUnknownKey, ErrTypeMismatch, or
// ErrReservedKey.
func (s *Settings) Apply(overrides map[string]any) error {
	if len(overrides) == 0 {
		return nil
	}

	if err := validateOverrides(overrides); err != nil {
		return err
	}

	scratch := s.Clone()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      scratch,
		ErrorUnused: true,
		ZeroFields:  true,
	})
	if err != nil {
		return fmt.Errorf("internal error: failed to build settings decoder: %w", err)
	}
	if err := dec.Decode(overrides); err != nil {
		return decodeError(err)
	}

	if err := scratch.checkExtra(); err != nil {
		return err
	}

	// Managers mirrors admins when only admins was configured.
	if scratch.Managers == nil && len(scratch.Admins) > 0 {
		scratch.Managers = slices.Clone(scratch.Admins)
	}

	// Swap in a fresh clone so the new state shares nothing with the
	// caller's override map.
	*s = *scratch.Clone()
	return nil
}

// SetExtra stores one free-form key outside the fixed schema. The key
// renders and registers under its uppercase form, so keys that would
// collide with a fixed schema field are rejected with ErrReservedKey.
// The value is deep-copied on the way in.
func (s *Settings) SetExtra(key string, value any) error {
	if isFixedKey(strings.ToUpper(key)) {
		return &ReservedKeyError{Key: key}
	}
	if s.Extra == nil {
		s.Extra = Extra{}
	}
	s.Extra[key] = cloneAny(value)
	return nil
}

// checkExtra rejects extra keys whose uppercase form shadows a fixed
// schema field.
func (s *Settings) checkExtra() error {
	var errs []error
	for _, k := range slices.Sorted(maps.Keys(s.Extra)) {
		if isFixedKey(strings.ToUpper(k)) {
			errs = append(errs, &ReservedKeyError{Key: k})
		}
	}
	return errors.Join(errs...)
}

const invalidKeysPrefix = "has invalid keys: "

// decodeError translates decoder failures into the package error kinds.
// The schema pass catches almost everything first; this backstop covers
// shapes the schema admits but the decoder cannot place. The decoder
// reports each failure as a DecodeError carrying the field path, with
// several of them joined (and wrapped once more) when more than one field
// fails; unused keys arrive as one DecodeError per owning struct listing
// the keys it could not place.
func decodeError(err error) error {
	leaves := flattenDecode(err)
	errs := make([]error, 0, len(leaves))
	for _, leaf := range leaves {
		dec, ok := leaf.(*mapstructure.DecodeError)
		if !ok {
			errs = append(errs, &TypeMismatchError{Detail: leaf.Error()})
			continue
		}
		msg := dec.Unwrap().Error()
		if list, found := strings.CutPrefix(msg, invalidKeysPrefix); found {
			for _, key := range strings.Split(list, ", ") {
				errs = append(errs, &UnknownKeyError{Key: joinFieldPath(dec.Name(), key)})
			}
			continue
		}
		errs = append(errs, &TypeMismatchError{Key: dec.Name(), Detail: msg})
	}
	return errors.Join(errs...)
}

// flattenDecode splits the decoder's wrapped and joined error tree into its
// leaves. DecodeError values are leaves themselves; descending into their
// cause would lose the field path.
func flattenDecode(err error) []error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*mapstructure.DecodeError); ok {
		return []error{err}
	}
	switch t := err.(type) {
	case interface{ Unwrap() []error }:
		var out []error
		for _, e := range t.Unwrap() {
			out = append(out, flattenDecode(e)...)
		}
		return out
	case interface{ Unwrap() error }:
		if inner := t.Unwrap(); inner != nil {
			return flattenDecode(inner)
		}
	}
	return []error{err}
}

// joinFieldPath prefixes a key with its owning struct's path. Unused keys
// at the top level arrive with an empty parent.
func joinFieldPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}
