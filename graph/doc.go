// Copyright 2025 Cinder ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph provides the computation-graph container for cinder.
//
// # Overview
//
// A Graph is an append-only list of Nodes in insertion order. Each Node
// records an operator kind, its input and output tensors, and a typed
// parameter record. Nodes can only reference tensors produced by nodes
// appended strictly earlier (or tensors created outside the graph), so
// every graph is a DAG by construction; Validate checks the property.
//
// Graphs are built through an ops.Builder session rather than by
// appending nodes directly; direct Append is for tooling that already
// holds finished nodes.
//
// # Concurrency
//
// Construction is single-owner: one goroutine builds a graph to
// completion, then hands it off. Graphs are not safe for concurrent
// mutation.
package graph
