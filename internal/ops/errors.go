package ops

import (
	"errors"
	"fmt"

	"github.com/cinder-ml/cinder/internal/graph"
)

// Common errors.
var (
	// ErrNoActiveGraph is returned when a node is built while the
	// builder has no graph set.
	ErrNoActiveGraph = errors.New("no active graph: set a graph on the builder before adding nodes")

	// ErrUnknownPadding is returned when an unrecognized padding mode
	// reaches a convolution constructor. It is never silently treated as
	// zero padding: that would corrupt the output shape.
	ErrUnknownPadding = errors.New("unknown padding mode")
)

// ShapeMismatchError reports a rank, channel, or feature mismatch
// detected during shape inference. Construction of the node aborts.
type ShapeMismatchError struct {
	Op     graph.OpKind
	Node   string
	Detail string
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Op, e.Node, e.Detail)
}

func shapeMismatchf(op graph.OpKind, node, format string, args ...any) error {
	return &ShapeMismatchError{Op: op, Node: node, Detail: fmt.Sprintf(format, args...)}
}
