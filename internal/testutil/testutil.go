// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
package testutil

import (
	"testing"

	"djsettings/pkg/namespace"
	"djsettings/pkg/settings"
)

// MustNew builds a settings instance from the given overrides.
// The test fails immediately if construction fails.
func MustNew(t testing.TB, overrides map[string]any) *settings.Settings {
	t.Helper()
	s, err := settings.New(overrides)
	if err != nil {
		t.Fatalf("failed to build settings: %v", err)
	}
	return s
}

// MustApply layers overrides onto an existing instance.
// The test fails immediately if the apply fails.
func MustApply(t testing.TB, s *settings.Settings, overrides map[string]any) {
	t.Helper()
	if err := s.Apply(overrides); err != nil {
		t.Fatalf("failed to apply overrides: %v", err)
	}
}

// MustValue reads key through the uppercase view.
// The test fails immediately if the key does not exist.
func MustValue(t testing.TB, s *settings.Settings, key string) any {
	t.Helper()
	v, ok := s.Value(key)
	if !ok {
		t.Fatalf("settings key %q does not exist", key)
	}
	return v
}

// MustSetExtra stores a free-form key on the instance.
// The test fails immediately if the key is rejected.
func MustSetExtra(t testing.TB, s *settings.Settings, key string, value any) {
	t.Helper()
	if err := s.SetExtra(key, value); err != nil {
		t.Fatalf("failed to set extra key %q: %v", key, err)
	}
}

// MustRegister writes the instance into the target namespace.
// The test fails immediately if registration fails.
func MustRegister(t testing.TB, s *settings.Settings, ns namespace.Namespace) {
	t.Helper()
	if err := s.Register(ns); err != nil {
		t.Fatalf("failed to register settings: %v", err)
	}
}
