// Copyright 2025 Cinder ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	internaltensor "github.com/cinder-ml/cinder/internal/tensor"
)

// Tensor is a symbolic tensor: a named, shaped, typed graph value.
type Tensor = internaltensor.Tensor

// Shape represents the dimensions of a tensor.
type Shape = internaltensor.Shape

// DataType represents runtime element-type information.
type DataType = internaltensor.DataType

// Layout identifies the dimension-ordering convention of a tensor.
type Layout = internaltensor.Layout

// Supported element types.
const (
	Float32 = internaltensor.Float32
	Float64 = internaltensor.Float64
	Int32   = internaltensor.Int32
	Int64   = internaltensor.Int64
)

// Layout tags.
const (
	UnknownLayout = internaltensor.UnknownLayout
	NCHW          = internaltensor.NCHW
	NHWC          = internaltensor.NHWC
	NC            = internaltensor.NC
	X             = internaltensor.X
)

// New creates a symbolic tensor. The shape's rank must match the arity
// the layout implies (4 for NCHW/NHWC, 2 for NC).
//
// Example:
//
//	image, err := tensor.New("image", tensor.Shape{1, 3, 32, 32}, tensor.NCHW, tensor.Float32)
func New(name string, shape Shape, layout Layout, dtype DataType) (*Tensor, error) {
	return internaltensor.New(name, shape, layout, dtype)
}
