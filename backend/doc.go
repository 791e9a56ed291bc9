// Copyright 2025 Cinder ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package backend defines the execution-target profiles cinder can
// build graphs for.
//
// # Overview
//
// A Target fixes two pieces of policy the builder consults on every
// operator constructor call:
//   - the data layout each operator kind requires of its inputs and
//     stamps on its outputs (LayoutRequirement)
//   - the element-count alignment buffers must respect (Alignment),
//     consumed by downstream placement logic
//
// Two profiles exist: Reference (NCHW images, no alignment) and SMV,
// an accelerator-like profile (NHWC images, 8-element alignment).
// Lookups are never defaulted: a pair outside the configured set is a
// ConfigurationError, because a silently wrong layout requirement would
// corrupt every downstream shape computation.
package backend
