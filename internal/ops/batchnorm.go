package ops

import (
	"github.com/pkg/errors"

	"github.com/cinder-ml/cinder/internal/graph"
	"github.com/cinder-ml/cinder/internal/tensor"
)

// BatchNorm adds a batch-normalization node.
//
// The four statistic tensors (mean, variance, scale, shift) must be
// rank 2. A rank-2 input means the node follows a fully connected layer:
// no layout negotiation happens and the output layout is fixed to NC.
// Otherwise the input is negotiated to the target's image layout and the
// output carries that layout. The output shape always equals the input
// shape.
func (b *Builder) BatchNorm(
	input, mean, variance, scale, shift *tensor.Tensor,
	act *graph.Activation,
	name string,
) (*tensor.Tensor, error) {
	if name == "" {
		name = "batch_norm"
	}

	stats := []*tensor.Tensor{mean, variance, scale, shift}
	statNames := []string{"mean", "variance", "scale", "shift"}
	for i, s := range stats {
		if s.Rank() != 2 {
			return nil, shapeMismatchf(graph.BatchNorm, name,
				"%s tensor must be rank 2, got %v", statNames[i], s.Shape())
		}
	}

	postFC := input.Rank() == 2
	if !postFC {
		negotiated, err := b.negotiateLayout(name, graph.BatchNorm, []*tensor.Tensor{input})
		if err != nil {
			return nil, err
		}
		input = negotiated[0]
	}

	outputLayout := tensor.NC
	if !postFC {
		outputLayout = input.Layout()
	}

	params := &graph.Params{}
	if err := attachActivation(params, act); err != nil {
		return nil, errors.Wrapf(err, "%s %q", graph.BatchNorm, name)
	}

	outputs, err := b.addNode(name, graph.BatchNorm,
		[]*tensor.Tensor{input, mean, variance, scale, shift},
		[]tensor.Shape{input.Shape().Clone()}, outputLayout, input.DType(), params)
	if err != nil {
		return nil, err
	}
	return outputs[0], nil
}
