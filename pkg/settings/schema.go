// SPDX-License-Identifier: MPL-2.0

package settings

import (
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"slices"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"djsettings/internal/cueutil"
)

//go:embed settings_schema.cue
var settingsSchema string

// validateOverrides checks a raw override map against the embedded
// #Settings definition before anything is decoded. The definition is
// closed, so keys outside the fixed schema fail here unless they are
// routed through "extra"; value shapes that conflict with the declared
// field types fail the same pass.
//
// Entries are unified one at a time: CUE stops evaluating a struct at a
// hard conflict, so validating the whole map in one pass can report one
// bad key and swallow the rest. Per-entry unification keeps every
// violation visible in the joined result.
func validateOverrides(overrides map[string]any) error {
	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(settingsSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile settings schema: %w", schemaValue.Err())
	}
	schema := schemaValue.LookupPath(cue.ParsePath("#Settings"))

	var errs []error
	for _, key := range slices.Sorted(maps.Keys(overrides)) {
		entry := ctx.Encode(map[string]any{key: overrides[key]})
		if entry.Err() != nil {
			errs = append(errs, &TypeMismatchError{Key: key, Detail: entry.Err().Error()})
			continue
		}
		if err := schema.Unify(entry).Validate(cue.Concrete(false)); err != nil {
			errs = append(errs, overridesError(err))
		}
	}
	return errors.Join(errs...)
}

// overridesError translates CUE validation failures into the package error
// kinds and joins them so one pass reports every problem. Closed-definition
// violations ("field not allowed") name unknown keys; anything else is a
// type conflict at the reported path.
func overridesError(err error) error {
	issues := cueutil.Issues(err)
	errs := make([]error, 0, len(issues))
	for _, iss := range issues {
		if iss.NotAllowed {
			errs = append(errs, &UnknownKeyError{Key: iss.Path})
		} else {
			errs = append(errs, &TypeMismatchError{Key: iss.Path, Detail: iss.Message})
		}
	}
	return errors.Join(errs...)
}
