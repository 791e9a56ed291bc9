// Package backend defines the execution-target profiles the graph builder
// can construct for, and the layout/alignment policy each one imposes.
package backend

import (
	"fmt"
	"strings"
)

// Target selects an execution profile. Each target fixes the data layout
// its operators require and the element-count alignment its buffers must
// respect; the builder consults this policy on every constructor call.
type Target int

const (
	// Reference is the reference interpreter: row-major NCHW image
	// layout, no alignment constraint.
	Reference Target = iota
	// SMV is the accelerator-like profile: channel-last NHWC image
	// layout, 8-element alignment.
	SMV
)

// ConfigurationError reports a (target, operator) pair missing from the
// layout policy, or an unknown target. Policy lookups are never
// defaulted: a wrong layout requirement would corrupt every downstream
// shape computation.
type ConfigurationError struct {
	Target string
	Op     string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("no layout policy for operator %s on target %s", e.Op, e.Target)
	}
	return fmt.Sprintf("unknown backend target %s", e.Target)
}

// String returns the target's name.
func (t Target) String() string {
	switch t {
	case Reference:
		return "Reference"
	case SMV:
		return "SMV"
	default:
		return fmt.Sprintf("Target(%d)", int(t))
	}
}

// ParseTarget resolves a target from its name.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(s) {
	case "reference", "ref":
		return Reference, nil
	case "smv":
		return SMV, nil
	default:
		return 0, &ConfigurationError{Target: s}
	}
}

// Alignment returns the element-count granularity the target imposes on
// certain dimensions. Zero means no constraint. The value is policy
// metadata for downstream placement logic; it never reshapes tensors
// during graph construction.
func (t Target) Alignment() (int, error) {
	switch t {
	case Reference:
		return 0, nil
	case SMV:
		return 8, nil
	default:
		return 0, &ConfigurationError{Target: t.String()}
	}
}

// CalcPadding returns the number of elements needed to pad size up to a
// multiple of alignment. Alignment 0 means no constraint.
func CalcPadding(size, alignment int) int {
	if alignment == 0 || size%alignment == 0 {
		return 0
	}
	return alignment - size%alignment
}
