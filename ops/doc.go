// Copyright 2025 Cinder ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops provides the operator constructors of the cinder graph
// builder.
//
// # Overview
//
// A Builder is a graph-construction session: it holds the graph under
// construction and the backend target whose layout policy governs every
// call. Each constructor (Convolution, BatchNorm, MaxPooling, MatMul,
// activations, ...) negotiates its inputs' layouts against that policy,
// inserting Reorder nodes where a tensor's layout does not match the
// requirement, infers the output shape, and appends exactly one node to
// the graph.
//
// # Basic Usage
//
//	import (
//	    "github.com/cinder-ml/cinder/backend"
//	    "github.com/cinder-ml/cinder/graph"
//	    "github.com/cinder-ml/cinder/ops"
//	    "github.com/cinder-ml/cinder/tensor"
//	)
//
//	func main() {
//	    b := ops.NewBuilder("mnist", backend.SMV)
//
//	    image, _ := tensor.New("image", tensor.Shape{1, 1, 28, 28}, tensor.NCHW, tensor.Float32)
//	    kernel, _ := tensor.New("w0", tensor.Shape{8, 1, 3, 3}, tensor.NCHW, tensor.Float32)
//
//	    input, _ := b.Data(image, "input")
//	    conv, err := b.Convolution(input, kernel, [2]int{1, 1}, graph.SamePadding, nil, "")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    pooled, _ := b.MaxPooling(conv, [2]int{2, 2}, [2]int{2, 2}, "")
//	    _ = pooled
//	    b.Graph().Summary(os.Stdout)
//	}
//
// # Errors
//
// All validation is eager: a constructor call either appends a fully
// built node and returns its outputs, or fails with one of
// ErrNoActiveGraph, ErrUnknownPadding, a ShapeMismatchError, or a
// backend.ConfigurationError, leaving the graph untouched.
//
// # Concurrency
//
// A Builder is single-owner state. Build each graph to completion on
// one goroutine; use independent Builders for independent graphs.
package ops
