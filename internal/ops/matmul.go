package ops

import (
	"github.com/pkg/errors"

	"github.com/cinder-ml/cinder/internal/graph"
	"github.com/cinder-ml/cinder/internal/tensor"
)

// MatMul adds a fully connected (inner product) node.
//
// Both operands are negotiated to NC and must be rank 2. The weight's
// layout decides which of its axes is the neuron-count axis: under NC,
// axis 0 counts neurons and axis 1 counts activations; any other
// accepted layout reverses that. The input's feature-axis size must
// equal the weight's activation-count-axis size. The output is
// [batch, neurons] in NC.
func (b *Builder) MatMul(
	input, weight *tensor.Tensor,
	act *graph.Activation,
	name string,
) (*tensor.Tensor, error) {
	if name == "" {
		name = "mat_mul"
	}

	negotiated, err := b.negotiateLayout(name, graph.InnerProduct, []*tensor.Tensor{input, weight})
	if err != nil {
		return nil, err
	}
	input, weight = negotiated[0], negotiated[1]

	if input.Rank() != 2 || weight.Rank() != 2 {
		return nil, shapeMismatchf(graph.InnerProduct, name,
			"operands must be rank 2: input %v, weight %v", input.Shape(), weight.Shape())
	}

	actAxis, neuronAxis := 1, 0
	if weight.Layout() != tensor.NC {
		actAxis, neuronAxis = 0, 1
	}
	if input.Dim(1) != weight.Dim(actAxis) {
		return nil, shapeMismatchf(graph.InnerProduct, name,
			"input feature size %d does not match weight activation size %d (input %v, weight %v %s)",
			input.Dim(1), weight.Dim(actAxis), input.Shape(), weight.Shape(), weight.Layout())
	}

	outDims := tensor.Shape{input.Dim(0), weight.Dim(neuronAxis)}
	params := &graph.Params{}
	if err := attachActivation(params, act); err != nil {
		return nil, errors.Wrapf(err, "%s %q", graph.InnerProduct, name)
	}

	outputs, err := b.addNode(name, graph.InnerProduct,
		[]*tensor.Tensor{input, weight},
		[]tensor.Shape{outDims}, tensor.NC, input.DType(), params)
	if err != nil {
		return nil, err
	}
	return outputs[0], nil
}
