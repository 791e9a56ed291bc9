package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Layout identifies the dimension-ordering convention of a tensor.
//
// The same logical axis occupies different positions under different
// layouts (channel is axis 1 under NCHW but axis 3 under NHWC), so all
// axis indexing must go through the semantic accessors below rather than
// hard-coded positions.
type Layout int

const (
	// UnknownLayout is the zero value. It is a transient default only and
	// is never a valid operator input layout.
	UnknownLayout Layout = iota
	// NCHW is the row-major 4D image layout: batch, channel, height, width.
	NCHW
	// NHWC is the channel-last 4D image layout: batch, height, width, channel.
	NHWC
	// NC is the 2D layout: batch, feature.
	NC
	// X is the opaque passthrough layout used by elementwise and
	// activation operators. Tensors tagged X impose no ordering.
	X
)

// String returns the conventional name of the layout.
func (l Layout) String() string {
	switch l {
	case NCHW:
		return "NCHW"
	case NHWC:
		return "NHWC"
	case NC:
		return "NC"
	case X:
		return "X"
	default:
		return "unknown"
	}
}

// Rank returns the number of dimensions the layout implies, or -1 for
// layouts without a fixed arity (X, unknown).
func (l Layout) Rank() int {
	switch l {
	case NCHW, NHWC:
		return 4
	case NC:
		return 2
	default:
		return -1
	}
}

// BatchAxis returns the position of the batch axis.
func (l Layout) BatchAxis() int {
	switch l {
	case NCHW, NHWC, NC:
		return 0
	default:
		panic(fmt.Sprintf("layout %s has no batch axis", l))
	}
}

// ChannelAxis returns the position of the channel axis. For NC this is
// the feature axis.
func (l Layout) ChannelAxis() int {
	switch l {
	case NCHW:
		return 1
	case NHWC:
		return 3
	case NC:
		return 1
	default:
		panic(fmt.Sprintf("layout %s has no channel axis", l))
	}
}

// HeightAxis returns the position of the spatial row axis.
func (l Layout) HeightAxis() int {
	switch l {
	case NCHW:
		return 2
	case NHWC:
		return 1
	default:
		panic(fmt.Sprintf("layout %s has no height axis", l))
	}
}

// WidthAxis returns the position of the spatial column axis.
func (l Layout) WidthAxis() int {
	switch l {
	case NCHW:
		return 3
	case NHWC:
		return 2
	default:
		panic(fmt.Sprintf("layout %s has no width axis", l))
	}
}

// FeatureAxis returns the position of the feature axis of a 2D layout.
func (l Layout) FeatureAxis() int {
	if l != NC {
		panic(fmt.Sprintf("layout %s has no feature axis", l))
	}
	return 1
}

// PermutationTo returns the axis permutation that converts a shape in
// layout l into layout to, in the form consumed by Shape.Permute:
// perm[i] is the source axis providing destination axis i.
//
// Only the 4D image layouts are interconvertible; converting a layout to
// itself yields the identity permutation.
func (l Layout) PermutationTo(to Layout) ([]int, error) {
	if l == to {
		if r := l.Rank(); r > 0 {
			perm := make([]int, r)
			for i := range perm {
				perm[i] = i
			}
			return perm, nil
		}
		return nil, errors.Errorf("layout %s has no fixed rank to permute", l)
	}
	switch {
	case l == NCHW && to == NHWC:
		return []int{0, 2, 3, 1}, nil
	case l == NHWC && to == NCHW:
		return []int{0, 3, 1, 2}, nil
	default:
		return nil, errors.Errorf("no permutation from layout %s to %s", l, to)
	}
}
