// Package ops implements the operator constructors of the cinder graph
// builder: layout negotiation, per-operator shape inference, and node
// creation, driven by the backend target's layout policy.
package ops

import (
	"fmt"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/cinder-ml/cinder/internal/backend"
	"github.com/cinder-ml/cinder/internal/graph"
	"github.com/cinder-ml/cinder/internal/tensor"
)

// Builder is a graph-construction session: it holds the graph under
// construction and the backend target whose layout policy governs every
// constructor call. Create one Builder per graph.
//
// A Builder is single-owner state: graph construction runs to completion
// on one goroutine before the graph is handed to an execution engine.
// Concurrent use of one Builder is unsupported; independent Builders are
// fine.
type Builder struct {
	target backend.Target
	graph  *graph.Graph
}

// NewBuilder creates a session with a fresh graph.
func NewBuilder(name string, target backend.Target) *Builder {
	return &Builder{
		target: target,
		graph:  graph.New(name),
	}
}

// Target returns the session's backend target.
func (b *Builder) Target() backend.Target {
	return b.target
}

// Graph returns the graph under construction, or nil when none is set.
func (b *Builder) Graph() *graph.Graph {
	return b.graph
}

// SetGraph replaces the graph under construction unconditionally
// (last write wins).
func (b *Builder) SetGraph(g *graph.Graph) {
	b.graph = g
}

// ClearGraph detaches the session from its graph. Constructor calls made
// before the next SetGraph fail with ErrNoActiveGraph.
func (b *Builder) ClearGraph() {
	b.graph = nil
}

// addNode is the single mutation point for graph topology. It allocates
// one fresh output tensor per entry in outputDims, each stamped with
// outputLayout and dtype, appends a node referencing inputs and those
// outputs, and returns the outputs in order. Every operator constructor,
// including synthesized reorder nodes, goes through here, so graph
// growth is append-only and DAG-shaped by construction.
func (b *Builder) addNode(
	name string,
	op graph.OpKind,
	inputs []*tensor.Tensor,
	outputDims []tensor.Shape,
	outputLayout tensor.Layout,
	dtype tensor.DataType,
	params *graph.Params,
) ([]*tensor.Tensor, error) {
	if b.graph == nil {
		return nil, errors.Wrapf(ErrNoActiveGraph, "building %s %q", op, name)
	}

	nodeName := b.graph.UniqueName(name)
	outputs := make([]*tensor.Tensor, len(outputDims))
	for i, dims := range outputDims {
		out, err := tensor.New(tensorName(nodeName, i), dims, outputLayout, dtype)
		if err != nil {
			return nil, errors.Wrapf(err, "output %d of %s %q", i, op, nodeName)
		}
		outputs[i] = out
	}

	b.graph.Append(graph.NewNode(nodeName, op, inputs, outputs, params))
	klog.V(2).Infof("graph %s: added %s %q (%d inputs, %d outputs, layout %s)",
		b.graph.Name(), op, nodeName, len(inputs), len(outputs), outputLayout)
	return outputs, nil
}

func tensorName(node string, i int) string {
	if i == 0 {
		return node
	}
	return fmt.Sprintf("%s:%d", node, i)
}

// attachActivation records a fused activation on a node's parameter
// record. The descriptor never affects shape or layout inference.
func attachActivation(params *graph.Params, act *graph.Activation) error {
	if act == nil {
		return nil
	}
	if !isActivationKind(act.Kind) {
		return errors.Errorf("%s is not an activation kind", act.Kind)
	}
	params.Act = act
	return nil
}

func isActivationKind(op graph.OpKind) bool {
	switch op {
	case graph.ReLU, graph.LeakyReLU, graph.ELU, graph.SELU,
		graph.Tanh, graph.HardTanh, graph.Sigmoid, graph.Softmax:
		return true
	default:
		return false
	}
}
