// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-viper/mapstructure/v2"
)

func TestTypeMismatchError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *TypeMismatchError
		want string
	}{
		{
			name: "key and detail",
			err:  &TypeMismatchError{Key: "debug", Detail: "conflicting values \"yes\" and bool"},
			want: `settings value type mismatch: debug: conflicting values "yes" and bool`,
		},
		{
			name: "key only",
			err:  &TypeMismatchError{Key: "debug"},
			want: "settings value type mismatch: debug",
		},
		{
			name: "detail only",
			err:  &TypeMismatchError{Detail: "expected struct input"},
			want: "settings value type mismatch: expected struct input",
		},
		{
			name: "empty",
			err:  &TypeMismatchError{},
			want: "settings value type mismatch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnknownKeyError_Error(t *testing.T) {
	t.Parallel()

	err := &UnknownKeyError{Key: "ghost_setting"}
	want := `unknown settings key: "ghost_setting" is not a recognized option; route caller-defined keys through "extra"`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestReservedKeyError_Error(t *testing.T) {
	t.Parallel()

	err := &ReservedKeyError{Key: "debug"}
	want := `reserved settings key: "debug" collides with a fixed schema field`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrors_SentinelMatching(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{name: "type mismatch", err: &TypeMismatchError{Key: "debug"}, sentinel: ErrTypeMismatch},
		{name: "unknown key", err: &UnknownKeyError{Key: "ghost"}, sentinel: ErrUnknownKey},
		{name: "reserved key", err: &ReservedKeyError{Key: "debug"}, sentinel: ErrReservedKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, sentinel) = false, want true", tt.err)
			}
			for _, other := range []error{ErrTypeMismatch, ErrUnknownKey, ErrReservedKey} {
				if other != tt.sentinel && errors.Is(tt.err, other) {
					t.Errorf("errors.Is(%v, %v) = true, want only its own sentinel", tt.err, other)
				}
			}
		})
	}
}

func TestErrors_AsRecoversKey(t *testing.T) {
	t.Parallel()

	joined := errors.Join(
		&UnknownKeyError{Key: "ghost"},
		&TypeMismatchError{Key: "debug", Detail: "conflicting values"},
	)

	var unknown *UnknownKeyError
	if !errors.As(joined, &unknown) || unknown.Key != "ghost" {
		t.Errorf("errors.As recovered unknown key %+v, want ghost", unknown)
	}

	var mismatch *TypeMismatchError
	if !errors.As(joined, &mismatch) || mismatch.Key != "debug" {
		t.Errorf("errors.As recovered mismatch key %+v, want debug", mismatch)
	}
}

// decodeFailure runs a real decode with the same decoder settings Apply
// uses so the triage sees the decoder's own error shapes, not hand-built
// fixtures.
func decodeFailure(t *testing.T, input map[string]any) error {
	t.Helper()

	var out struct {
		Debug bool   `mapstructure:"debug"`
		Name  string `mapstructure:"name"`
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &out,
		ErrorUnused: true,
		ZeroFields:  true,
	})
	if err != nil {
		t.Fatalf("NewDecoder() error = %v", err)
	}
	err = dec.Decode(input)
	if err == nil {
		t.Fatal("Decode() succeeded, want a failure to triage")
	}
	return err
}

func TestDecodeError(t *testing.T) {
	t.Parallel()

	t.Run("invalid keys become unknown key errors", func(t *testing.T) {
		t.Parallel()
		err := decodeError(decodeFailure(t, map[string]any{
			"first_ghost":  1,
			"second_ghost": 2,
		}))
		if !errors.Is(err, ErrUnknownKey) {
			t.Fatalf("decodeError() = %v, want ErrUnknownKey", err)
		}

		var unknown *UnknownKeyError
		if !errors.As(err, &unknown) {
			t.Fatalf("decodeError() = %v, want *UnknownKeyError inside", err)
		}
		// errors.As stops at the first match; check the message for both.
		for _, key := range []string{"first_ghost", "second_ghost"} {
			if got := err.Error(); !strings.Contains(got, key) {
				t.Errorf("decodeError() = %q, want it to name %q", got, key)
			}
		}
	})

	t.Run("field failures become mismatch errors with the key", func(t *testing.T) {
		t.Parallel()
		err := decodeError(decodeFailure(t, map[string]any{"debug": "definitely"}))
		var mismatch *TypeMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("decodeError() = %v, want *TypeMismatchError", err)
		}
		if mismatch.Key != "debug" {
			t.Errorf("mismatch key = %q, want debug", mismatch.Key)
		}
		if mismatch.Detail == "" {
			t.Error("mismatch detail is empty, want the decoder's description")
		}
	})

	t.Run("mixed failures report both kinds", func(t *testing.T) {
		t.Parallel()
		err := decodeError(decodeFailure(t, map[string]any{
			"debug": "definitely",
			"ghost": 1,
		}))
		if !errors.Is(err, ErrUnknownKey) {
			t.Errorf("decodeError() = %v, want ErrUnknownKey among the joined errors", err)
		}
		if !errors.Is(err, ErrTypeMismatch) {
			t.Errorf("decodeError() = %v, want ErrTypeMismatch among the joined errors", err)
		}
	})

	t.Run("other errors pass through as mismatch detail", func(t *testing.T) {
		t.Parallel()
		err := decodeError(errors.New("result must be a pointer"))
		var mismatch *TypeMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("decodeError() = %v, want *TypeMismatchError", err)
		}
		if mismatch.Key != "" || mismatch.Detail != "result must be a pointer" {
			t.Errorf("mismatch = %+v, want detail preserved with no key", mismatch)
		}
	})
}

func TestJoinFieldPath(t *testing.T) {
	t.Parallel()

	if got := joinFieldPath("", "ghost"); got != "ghost" {
		t.Errorf("joinFieldPath(empty, ghost) = %q, want ghost", got)
	}
	if got := joinFieldPath("databases[default]", "flavor"); got != "databases[default].flavor" {
		t.Errorf("joinFieldPath() = %q, want the parent path prefixed", got)
	}
}

func TestSettings_CheckExtra(t *testing.T) {
	t.Parallel()

	t.Run("clean extra passes", func(t *testing.T) {
		t.Parallel()
		s := Default()
		s.Extra["sentry_dsn"] = "https://sentry.example.com/1"
		if err := s.checkExtra(); err != nil {
			t.Errorf("checkExtra() error = %v, want nil", err)
		}
	})

	t.Run("colliding keys rejected", func(t *testing.T) {
		t.Parallel()
		s := Default()
		s.Extra["debug"] = true
		s.Extra["time_zone"] = "UTC"
		s.Extra["harmless"] = 1

		err := s.checkExtra()
		if !errors.Is(err, ErrReservedKey) {
			t.Fatalf("checkExtra() = %v, want ErrReservedKey", err)
		}
		for _, key := range []string{"debug", "time_zone"} {
			if got := err.Error(); !strings.Contains(got, key) {
				t.Errorf("checkExtra() = %q, want it to name %q", got, key)
			}
		}
		if got := err.Error(); strings.Contains(got, "harmless") {
			t.Errorf("checkExtra() = %q, names a non-colliding key", got)
		}
	})
}
