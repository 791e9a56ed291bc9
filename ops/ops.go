// Copyright 2025 Cinder ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	internalops "github.com/cinder-ml/cinder/internal/ops"

	"github.com/cinder-ml/cinder/backend"
)

// Builder is a graph-construction session.
type Builder = internalops.Builder

// ShapeMismatchError reports a rank, channel, or feature mismatch
// detected during shape inference.
type ShapeMismatchError = internalops.ShapeMismatchError

// Common errors.
var (
	// ErrNoActiveGraph is returned when a node is built while the
	// builder has no graph set.
	ErrNoActiveGraph = internalops.ErrNoActiveGraph

	// ErrUnknownPadding is returned when an unrecognized padding mode
	// reaches a convolution constructor.
	ErrUnknownPadding = internalops.ErrUnknownPadding
)

// NewBuilder creates a session with a fresh graph targeting the given
// backend profile.
func NewBuilder(name string, target backend.Target) *Builder {
	return internalops.NewBuilder(name, target)
}
