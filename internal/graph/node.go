package graph

import (
	"fmt"
	"strings"

	"github.com/cinder-ml/cinder/internal/tensor"
)

// Node is a single operator instance: kind, ordered inputs, ordered
// outputs, and a typed parameter record. Nodes are immutable once
// appended to a graph; any input rewiring (layout negotiation) happens
// before the node is built.
type Node struct {
	name    string
	op      OpKind
	inputs  []*tensor.Tensor
	outputs []*tensor.Tensor
	params  *Params
}

// NewNode creates a node. Input and output slices are copied.
func NewNode(name string, op OpKind, inputs, outputs []*tensor.Tensor, params *Params) *Node {
	if params == nil {
		params = &Params{}
	}
	n := &Node{
		name:    name,
		op:      op,
		inputs:  make([]*tensor.Tensor, len(inputs)),
		outputs: make([]*tensor.Tensor, len(outputs)),
		params:  params,
	}
	copy(n.inputs, inputs)
	copy(n.outputs, outputs)
	return n
}

// Name returns the node's unique name within its graph.
func (n *Node) Name() string {
	return n.name
}

// Op returns the operator kind.
func (n *Node) Op() OpKind {
	return n.op
}

// Inputs returns the node's input tensors in order.
//
// The returned slice is shared; callers must not modify it.
func (n *Node) Inputs() []*tensor.Tensor {
	return n.inputs
}

// Outputs returns the node's output tensors in order.
func (n *Node) Outputs() []*tensor.Tensor {
	return n.outputs
}

// Params returns the node's parameter record.
func (n *Node) Params() *Params {
	return n.params
}

// String returns a one-line summary of the node.
func (n *Node) String() string {
	ins := make([]string, len(n.inputs))
	for i, in := range n.inputs {
		ins[i] = fmt.Sprintf("%v %s", in.Shape(), in.Layout())
	}
	outs := make([]string, len(n.outputs))
	for i, out := range n.outputs {
		outs[i] = fmt.Sprintf("%v %s", out.Shape(), out.Layout())
	}
	return fmt.Sprintf("%s (%s): [%s] -> [%s]",
		n.name, n.op, strings.Join(ins, ", "), strings.Join(outs, ", "))
}
