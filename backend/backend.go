// Copyright 2025 Cinder ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package backend

import (
	internalbackend "github.com/cinder-ml/cinder/internal/backend"
)

// Target selects an execution profile.
type Target = internalbackend.Target

// Targets.
const (
	// Reference is the reference interpreter profile.
	Reference = internalbackend.Reference
	// SMV is the accelerator-like profile.
	SMV = internalbackend.SMV
)

// Requirement is the layout an operator demands of its inputs and
// stamps on its outputs under one target.
type Requirement = internalbackend.Requirement

// ConfigurationError reports a policy lookup outside the configured
// (target, operator) set.
type ConfigurationError = internalbackend.ConfigurationError

// ParseTarget resolves a target from its name ("reference", "smv").
func ParseTarget(s string) (Target, error) {
	return internalbackend.ParseTarget(s)
}

// CalcPadding returns the element count needed to pad size up to a
// multiple of alignment (0 alignment means no constraint).
func CalcPadding(size, alignment int) int {
	return internalbackend.CalcPadding(size, alignment)
}
