package ops

import (
	"github.com/pkg/errors"

	"github.com/cinder-ml/cinder/internal/graph"
	"github.com/cinder-ml/cinder/internal/tensor"
)

// poolOutDim computes one spatial output extent:
// floor((input − window) / stride) + 1. Pooling supports no padding.
func poolOutDim(inputDim, window, stride int) int {
	return (inputDim-window)/stride + 1
}

// MaxPooling adds a 2D max-pooling node. The input is negotiated to the
// target's image layout; batch and channel dimensions pass through.
func (b *Builder) MaxPooling(input *tensor.Tensor, poolSize, stride [2]int, name string) (*tensor.Tensor, error) {
	if name == "" {
		name = "max_pool"
	}
	return b.pooling(graph.MaxPooling, input, poolSize, stride, name)
}

// AveragePooling adds a 2D average-pooling node with the same shape law
// as max pooling.
func (b *Builder) AveragePooling(input *tensor.Tensor, poolSize, stride [2]int, name string) (*tensor.Tensor, error) {
	if name == "" {
		name = "avg_pool"
	}
	return b.pooling(graph.AveragePooling, input, poolSize, stride, name)
}

func (b *Builder) pooling(op graph.OpKind, input *tensor.Tensor, poolSize, stride [2]int, name string) (*tensor.Tensor, error) {
	if poolSize[0] <= 0 || poolSize[1] <= 0 {
		return nil, errors.Errorf("%s %q: invalid pool size %v", op, name, poolSize)
	}
	if stride[0] <= 0 || stride[1] <= 0 {
		return nil, errors.Errorf("%s %q: invalid stride %v", op, name, stride)
	}

	negotiated, err := b.negotiateLayout(name, op, []*tensor.Tensor{input})
	if err != nil {
		return nil, err
	}
	input = negotiated[0]

	layout := input.Layout()
	outRows := poolOutDim(input.Dim(layout.HeightAxis()), poolSize[0], stride[0])
	outCols := poolOutDim(input.Dim(layout.WidthAxis()), poolSize[1], stride[1])
	if outRows <= 0 || outCols <= 0 {
		return nil, shapeMismatchf(op, name,
			"pool window %v with stride %v does not fit input %v", poolSize, stride, input.Shape())
	}

	outDims := make(tensor.Shape, 4)
	outDims[layout.BatchAxis()] = input.Dim(layout.BatchAxis())
	outDims[layout.ChannelAxis()] = input.Dim(layout.ChannelAxis())
	outDims[layout.HeightAxis()] = outRows
	outDims[layout.WidthAxis()] = outCols

	params := &graph.Params{Pool: &graph.PoolParams{PoolSize: poolSize, Stride: stride}}
	outputs, err := b.addNode(name, op, []*tensor.Tensor{input},
		[]tensor.Shape{outDims}, layout, input.DType(), params)
	if err != nil {
		return nil, err
	}
	return outputs[0], nil
}
