// SPDX-License-Identifier: MPL-2.0

// Package settings maps a typed configuration object onto a Django-style
// global settings namespace.
//
// The package carries the framework's full fixed schema as the Settings
// struct: every known key with its documented default and Go type, plus
// nested definitions for named database connections, caches, storages, and
// template engines. Override maps are validated structurally against an
// embedded CUE schema before they touch an instance, so a misspelled key or
// a wrongly-typed value fails at construction, atomically, instead of
// surfacing somewhere inside the host framework later.
//
// Values are readable two ways: directly through the struct fields
// (lowercase view, compile-time checked) and through Value/ToMap/Keys
// (uppercase view, rendered in the framework's conventional shapes). The
// uppercase view is read-only and recomputed per call, so field writes are
// visible immediately.
//
// # Usage
//
//	base := settings.Recommended()
//	prod := base.Clone()
//	if err := prod.Apply(map[string]any{
//	    "debug":         false,
//	    "allowed_hosts": []string{"example.com"},
//	    "databases": map[string]any{
//	        "default": map[string]any{
//	            "engine": "django.db.backends.postgresql",
//	            "name":   "app",
//	        },
//	    },
//	}); err != nil {
//	    return err
//	}
//	if err := prod.Register(namespace.Global()); err != nil {
//	    return err
//	}
//
// Registration is an explicit, single call into a caller-supplied target;
// nothing is installed implicitly. Instances are meant to be built and
// registered once during process startup and are not safe for concurrent
// mutation.
package settings
