// SPDX-License-Identifier: MPL-2.0

// Package namespace abstracts the global, string-keyed configuration table
// that rendered settings are installed into.
//
// The Namespace interface has a single operation, Set, so any key/value
// store can serve as a registration target. Three implementations cover the
// common cases: Map writes into a caller-owned map, Viper writes into a
// viper instance (hard sets by default, defaults-seeding with AsDefaults),
// and Recorder is a test double that records writes and can inject
// failures.
package namespace
