package ops

import (
	"github.com/pkg/errors"

	"github.com/cinder-ml/cinder/internal/graph"
	"github.com/cinder-ml/cinder/internal/tensor"
)

// convOutDim computes one spatial output extent:
// floor((input − filter + pad) / stride) + 1, where pad is filter−1
// under same padding and 0 under valid padding.
func convOutDim(inputDim, filterDim, stride int, padding graph.PaddingMode) int {
	pad := 0
	if padding == graph.SamePadding {
		pad = filterDim - 1
	}
	return (inputDim-filterDim+pad)/stride + 1
}

// Convolution adds a 2D convolution node.
//
// The input and filter are negotiated to the target's image layout.
// After negotiation the filter's channel-axis size must equal the
// input's; the output carries the input's (negotiated) layout, the
// filter's leading dimension as channel count, and spatial extents per
// the padding law. An optional activation descriptor is recorded on the
// node without affecting shapes.
func (b *Builder) Convolution(
	input, filter *tensor.Tensor,
	stride [2]int,
	padding graph.PaddingMode,
	act *graph.Activation,
	name string,
) (*tensor.Tensor, error) {
	if name == "" {
		name = "conv"
	}
	if padding == graph.UnknownPadding {
		return nil, errors.Wrapf(ErrUnknownPadding, "%s %q", graph.Convolution, name)
	}
	if stride[0] <= 0 || stride[1] <= 0 {
		return nil, errors.Errorf("%s %q: invalid stride %v", graph.Convolution, name, stride)
	}

	negotiated, err := b.negotiateLayout(name, graph.Convolution, []*tensor.Tensor{input, filter})
	if err != nil {
		return nil, err
	}
	input, filter = negotiated[0], negotiated[1]

	layout := input.Layout()
	chanAxis := layout.ChannelAxis()
	if input.Dim(chanAxis) != filter.Dim(chanAxis) {
		return nil, shapeMismatchf(graph.Convolution, name,
			"filter must have the same channel count as the input: input %v, filter %v (channel axis %d under %s)",
			input.Shape(), filter.Shape(), chanAxis, layout)
	}

	outRows := convOutDim(input.Dim(layout.HeightAxis()), filter.Dim(layout.HeightAxis()), stride[0], padding)
	outCols := convOutDim(input.Dim(layout.WidthAxis()), filter.Dim(layout.WidthAxis()), stride[1], padding)
	if outRows <= 0 || outCols <= 0 {
		return nil, shapeMismatchf(graph.Convolution, name,
			"filter %v with stride %v does not fit input %v", filter.Shape(), stride, input.Shape())
	}

	outDims := make(tensor.Shape, 4)
	outDims[layout.BatchAxis()] = input.Dim(layout.BatchAxis())
	outDims[layout.ChannelAxis()] = filter.Dim(0) // leading dim = output channels
	outDims[layout.HeightAxis()] = outRows
	outDims[layout.WidthAxis()] = outCols

	params := &graph.Params{Conv: &graph.ConvParams{Padding: padding, Stride: stride}}
	if err := attachActivation(params, act); err != nil {
		return nil, errors.Wrapf(err, "%s %q", graph.Convolution, name)
	}

	outputs, err := b.addNode(name, graph.Convolution,
		[]*tensor.Tensor{input, filter},
		[]tensor.Shape{outDims}, layout, input.DType(), params)
	if err != nil {
		return nil, err
	}
	return outputs[0], nil
}

// DepthwiseConvolution adds a depthwise 2D convolution node: each input
// channel is convolved independently, so the channel count passes
// through unchanged. The filter's channel-axis size must equal the
// input's.
func (b *Builder) DepthwiseConvolution(
	input, filter *tensor.Tensor,
	stride [2]int,
	padding graph.PaddingMode,
	act *graph.Activation,
	name string,
) (*tensor.Tensor, error) {
	if name == "" {
		name = "depthwise_conv"
	}
	if padding == graph.UnknownPadding {
		return nil, errors.Wrapf(ErrUnknownPadding, "%s %q", graph.DepthwiseConvolution, name)
	}
	if stride[0] <= 0 || stride[1] <= 0 {
		return nil, errors.Errorf("%s %q: invalid stride %v", graph.DepthwiseConvolution, name, stride)
	}

	negotiated, err := b.negotiateLayout(name, graph.DepthwiseConvolution, []*tensor.Tensor{input, filter})
	if err != nil {
		return nil, err
	}
	input, filter = negotiated[0], negotiated[1]

	layout := input.Layout()
	chanAxis := layout.ChannelAxis()
	if input.Dim(chanAxis) != filter.Dim(chanAxis) {
		return nil, shapeMismatchf(graph.DepthwiseConvolution, name,
			"filter must have the same channel count as the input: input %v, filter %v",
			input.Shape(), filter.Shape())
	}

	outRows := convOutDim(input.Dim(layout.HeightAxis()), filter.Dim(layout.HeightAxis()), stride[0], padding)
	outCols := convOutDim(input.Dim(layout.WidthAxis()), filter.Dim(layout.WidthAxis()), stride[1], padding)
	if outRows <= 0 || outCols <= 0 {
		return nil, shapeMismatchf(graph.DepthwiseConvolution, name,
			"filter %v with stride %v does not fit input %v", filter.Shape(), stride, input.Shape())
	}

	outDims := make(tensor.Shape, 4)
	outDims[layout.BatchAxis()] = input.Dim(layout.BatchAxis())
	outDims[layout.ChannelAxis()] = input.Dim(chanAxis) // channels pass through
	outDims[layout.HeightAxis()] = outRows
	outDims[layout.WidthAxis()] = outCols

	params := &graph.Params{Conv: &graph.ConvParams{Padding: padding, Stride: stride}}
	if err := attachActivation(params, act); err != nil {
		return nil, errors.Wrapf(err, "%s %q", graph.DepthwiseConvolution, name)
	}

	outputs, err := b.addNode(name, graph.DepthwiseConvolution,
		[]*tensor.Tensor{input, filter},
		[]tensor.Shape{outDims}, layout, input.DType(), params)
	if err != nil {
		return nil, err
	}
	return outputs[0], nil
}
