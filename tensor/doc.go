// Copyright 2025 Cinder ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the symbolic tensor type for the cinder graph
// builder.
//
// # Overview
//
// A cinder tensor is a named, shaped, typed value flowing between graph
// nodes. It carries no element data: buffer allocation and numeric
// execution belong to the execution engine a finished graph is handed
// to. This package provides:
//   - Shape: ordered dimension sizes with permutation support
//   - Layout: the closed set of dimension-ordering conventions
//     (NCHW, NHWC, NC, X) with semantic axis accessors
//   - Tensor: an immutable symbolic value with a stable identity
//
// # Basic Usage
//
//	import "github.com/cinder-ml/cinder/tensor"
//
//	func main() {
//	    image, err := tensor.New("image", tensor.Shape{1, 3, 32, 32}, tensor.NCHW, tensor.Float32)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(image.Dim(image.Layout().ChannelAxis())) // 3
//	}
//
// # Layouts
//
// The same logical axis occupies different positions under different
// layouts: channel is axis 1 under NCHW but axis 3 under NHWC. Code
// must never assume fixed positions; the Layout accessors (BatchAxis,
// ChannelAxis, HeightAxis, WidthAxis, FeatureAxis) map semantic axes to
// positions per layout. The X layout is opaque: elementwise operators
// accept any ordering and impose none.
package tensor
