// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"maps"
	"slices"

	"github.com/charmbracelet/log"

	"djsettings/internal/issue"
	"djsettings/pkg/namespace"
)

type (
	// RegisterOption adjusts how Register writes into its target.
	RegisterOption func(*registerConfig)

	registerConfig struct {
		logger *log.Logger
	}
)

// WithLogger makes Register log a debug line per key written and one info
// summary at the end. Without it, registration is silent.
func WithLogger(logger *log.Logger) RegisterOption {
	return func(c *registerConfig) { c.logger = logger }
}

// Register renders the instance once and writes every entry into the
// target namespace in sorted key order. Registering the same instance
// twice yields identical bindings.
//
// A write failure stops the sequence and names the offending key; entries
// written before it remain in the target, and the deterministic order
// makes the cut point reproducible.
func (s *Settings) Register(ns namespace.Namespace, opts ...RegisterOption) error {
	var cfg registerConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if ns == nil {
		return issue.Wrap(namespace.ErrNilNamespace, "register settings").
			Suggest(
				"Pass namespace.Global() to bind the process-wide configuration",
				"Pass a namespace.Map or namespace.NewViper target instead",
			)
	}

	rendered := s.ToMap()
	for _, key := range slices.Sorted(maps.Keys(rendered)) {
		if err := ns.Set(key, rendered[key]); err != nil {
			return issue.WrapKey(err, "register settings", key).
				Suggest("Keys before this one stayed bound; fix the target and register again")
		}
		if cfg.logger != nil {
			cfg.logger.Debug("registered setting", "key", key)
		}
	}

	if cfg.logger != nil {
		cfg.logger.Info("settings registered", "keys", len(rendered))
	}
	return nil
}
