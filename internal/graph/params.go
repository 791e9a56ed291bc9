package graph

import "strings"

// PaddingMode is the closed set of convolution padding modes. The zero
// value is UnknownPadding so an unset mode can never be mistaken for a
// valid one; operator constructors reject it at build time.
type PaddingMode int

const (
	// UnknownPadding marks an unrecognized or unset padding token.
	UnknownPadding PaddingMode = iota
	// SamePadding pads so unit stride preserves spatial extent.
	SamePadding
	// ValidPadding applies no padding.
	ValidPadding
)

// ParsePaddingMode maps a padding token to its mode. Unrecognized tokens
// map to UnknownPadding; the caller decides when that is an error.
func ParsePaddingMode(s string) PaddingMode {
	switch strings.ToLower(s) {
	case "same":
		return SamePadding
	case "valid":
		return ValidPadding
	default:
		return UnknownPadding
	}
}

// String returns the padding token.
func (p PaddingMode) String() string {
	switch p {
	case SamePadding:
		return "same"
	case ValidPadding:
		return "valid"
	default:
		return "unknown"
	}
}

// ConvParams are the hyperparameters of convolution kinds.
type ConvParams struct {
	Padding PaddingMode
	Stride  [2]int // row stride, column stride
}

// PoolParams are the hyperparameters of pooling kinds.
type PoolParams struct {
	PoolSize [2]int // window rows, window columns
	Stride   [2]int
}

// Activation describes an activation fused onto a node, or a standalone
// activation node's own parameters. Only the fields relevant to Kind are
// meaningful.
type Activation struct {
	Kind   OpKind
	Slope  float64 // LeakyReLU negative-region slope
	Alpha  float64 // ELU / SELU alpha
	Lambda float64 // SELU lambda
	Min    float64 // HardTanh lower bound
	Max    float64 // HardTanh upper bound
}

// Params is a node's typed parameter record. Fields are nil when the
// operator kind has no such hyperparameters.
type Params struct {
	Conv *ConvParams
	Pool *PoolParams
	Act  *Activation
}
