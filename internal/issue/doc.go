// SPDX-License-Identifier: MPL-2.0

// Package issue provides structured error context for user-facing failures.
//
// ActionableError pairs the failing operation and settings key with
// suggestions for fixing the problem, all readable from the returned
// error value.
package issue
