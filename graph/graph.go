// Copyright 2025 Cinder ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package graph

import (
	internalgraph "github.com/cinder-ml/cinder/internal/graph"
)

// Graph is an append-only node list forming a DAG.
type Graph = internalgraph.Graph

// Node is a single operator instance.
type Node = internalgraph.Node

// OpKind identifies an operator from the closed set.
type OpKind = internalgraph.OpKind

// Operator kinds.
const (
	Data                 = internalgraph.Data
	Convolution          = internalgraph.Convolution
	DepthwiseConvolution = internalgraph.DepthwiseConvolution
	MaxPooling           = internalgraph.MaxPooling
	AveragePooling       = internalgraph.AveragePooling
	InnerProduct         = internalgraph.InnerProduct
	BatchNorm            = internalgraph.BatchNorm
	Reorder              = internalgraph.Reorder
	ReLU                 = internalgraph.ReLU
	LeakyReLU            = internalgraph.LeakyReLU
	ELU                  = internalgraph.ELU
	SELU                 = internalgraph.SELU
	Tanh                 = internalgraph.Tanh
	HardTanh             = internalgraph.HardTanh
	Sigmoid              = internalgraph.Sigmoid
	Softmax              = internalgraph.Softmax
	EltwiseAdd           = internalgraph.EltwiseAdd
)

// PaddingMode is the closed set of convolution padding modes.
type PaddingMode = internalgraph.PaddingMode

// Padding modes.
const (
	UnknownPadding = internalgraph.UnknownPadding
	SamePadding    = internalgraph.SamePadding
	ValidPadding   = internalgraph.ValidPadding
)

// Params is a node's typed parameter record.
type Params = internalgraph.Params

// ConvParams are convolution hyperparameters.
type ConvParams = internalgraph.ConvParams

// PoolParams are pooling hyperparameters.
type PoolParams = internalgraph.PoolParams

// Activation describes an activation and its scalar parameters.
type Activation = internalgraph.Activation

// New creates an empty graph.
func New(name string) *Graph {
	return internalgraph.New(name)
}

// ParsePaddingMode maps a padding token to its mode; unrecognized
// tokens map to UnknownPadding.
func ParsePaddingMode(s string) PaddingMode {
	return internalgraph.ParsePaddingMode(s)
}
