package tensor

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Tensor is a symbolic tensor: a named, shaped, typed value flowing
// between graph nodes. It carries no element data; allocation and
// numeric execution belong to downstream engines.
//
// Tensors are immutable after creation. Identity is a stable UUID, so
// two tensors with equal shapes are still distinct graph values.
type Tensor struct {
	id     uuid.UUID
	name   string
	shape  Shape
	layout Layout
	dtype  DataType
}

// New creates a symbolic tensor.
//
// The shape must be valid and its rank must match the arity the layout
// implies (4 for NCHW/NHWC, 2 for NC); X and UnknownLayout accept any
// rank.
func New(name string, shape Shape, layout Layout, dtype DataType) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrapf(err, "tensor %q", name)
	}
	if r := layout.Rank(); r > 0 && r != len(shape) {
		return nil, errors.Errorf("tensor %q: layout %s implies rank %d, got shape %v", name, layout, r, shape)
	}
	return &Tensor{
		id:     uuid.New(),
		name:   name,
		shape:  shape.Clone(),
		layout: layout,
		dtype:  dtype,
	}, nil
}

// ID returns the tensor's stable identity.
func (t *Tensor) ID() uuid.UUID {
	return t.id
}

// Name returns the tensor's name.
func (t *Tensor) Name() string {
	return t.name
}

// Shape returns the tensor's shape.
//
// The returned slice is shared; callers must not modify it.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Layout returns the tensor's layout tag.
func (t *Tensor) Layout() Layout {
	return t.layout
}

// DType returns the tensor's element type.
func (t *Tensor) DType() DataType {
	return t.dtype
}

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// Dim returns the size of the given axis.
func (t *Tensor) Dim(axis int) int {
	return t.shape[axis]
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor(%s)%v %s %s", t.name, t.shape, t.layout, t.dtype)
}
