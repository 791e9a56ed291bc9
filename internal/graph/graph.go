package graph

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Graph is an append-only list of nodes in insertion order. A node can
// only reference tensors produced by nodes appended strictly earlier (or
// tensors created outside the graph), so the graph is a DAG by
// construction.
//
// Graph is not safe for concurrent use: construction runs on a single
// goroutine, then the finished graph is handed off.
type Graph struct {
	name       string
	nodes      []*Node
	nameCounts map[string]int
}

// New creates an empty graph.
func New(name string) *Graph {
	return &Graph{
		name:       name,
		nameCounts: make(map[string]int),
	}
}

// Name returns the graph's name.
func (g *Graph) Name() string {
	return g.name
}

// UniqueName derives a node name from base, suffixing a counter on
// collision ("conv", "conv_1", "conv_2", ...).
func (g *Graph) UniqueName(base string) string {
	n := g.nameCounts[base]
	g.nameCounts[base] = n + 1
	if n == 0 {
		return base
	}
	return fmt.Sprintf("%s_%d", base, n)
}

// Append adds a node to the end of the graph.
func (g *Graph) Append(n *Node) {
	g.nodes = append(g.nodes, n)
}

// Nodes returns the nodes in insertion order.
//
// The returned slice is shared; callers must not modify it.
func (g *Graph) Nodes() []*Node {
	return g.nodes
}

// NumNodes returns the number of nodes.
func (g *Graph) NumNodes() int {
	return len(g.nodes)
}

// Validate checks the DAG property: every node input is either external
// (no producer in this graph) or produced by a strictly earlier node.
func (g *Graph) Validate() error {
	producedAt := make(map[uuid.UUID]int)
	for i, n := range g.nodes {
		for _, out := range n.Outputs() {
			if j, dup := producedAt[out.ID()]; dup {
				return errors.Errorf("graph %s: tensor %s produced by both node %d and node %d",
					g.name, out.Name(), j, i)
			}
			producedAt[out.ID()] = i
		}
	}
	for i, n := range g.nodes {
		for _, in := range n.Inputs() {
			if j, ok := producedAt[in.ID()]; ok && j >= i {
				return errors.Errorf("graph %s: node %s consumes tensor %s produced by later node %s",
					g.name, n.Name(), in.Name(), g.nodes[j].Name())
			}
		}
	}
	return nil
}

// Summary writes a human-readable listing of the graph's nodes in
// insertion order.
func (g *Graph) Summary(w io.Writer) {
	fmt.Fprintf(w, "Graph %s (%d nodes)\n", g.name, len(g.nodes))
	for _, n := range g.nodes {
		fmt.Fprintf(w, "  %s\n", n)
	}
}
