// Package domain holds the snapshot and report types shared by the
// collectors, the engine and the presentation layer.
package domain

import "errors"

// ErrUnavailable marks a per-entity read that failed and is rendered as
// unavailable instead of failing the cycle.
var ErrUnavailable = errors.New("unavailable")
