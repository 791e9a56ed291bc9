package ops

import (
	"github.com/cinder-ml/cinder/internal/graph"
	"github.com/cinder-ml/cinder/internal/tensor"
)

// Data registers an externally created tensor (a graph input or a
// weight) as a source node, so every tensor consumed downstream has a
// producing node inside the graph. The returned tensor mirrors the
// argument's shape, layout, and type.
func (b *Builder) Data(t *tensor.Tensor, name string) (*tensor.Tensor, error) {
	if name == "" {
		name = "data"
	}
	outputs, err := b.addNode(name, graph.Data,
		[]*tensor.Tensor{t},
		[]tensor.Shape{t.Shape().Clone()}, t.Layout(), t.DType(), &graph.Params{})
	if err != nil {
		return nil, err
	}
	return outputs[0], nil
}

// unary adds a shape-preserving, layout-agnostic node: the output copies
// the input's shape and actual layout. Negotiation still runs so the
// policy lookup stays on the common path, but an X requirement never
// inserts a transform.
func (b *Builder) unary(op graph.OpKind, input *tensor.Tensor, params *graph.Params, name string) (*tensor.Tensor, error) {
	negotiated, err := b.negotiateLayout(name, op, []*tensor.Tensor{input})
	if err != nil {
		return nil, err
	}
	input = negotiated[0]

	outputs, err := b.addNode(name, op, []*tensor.Tensor{input},
		[]tensor.Shape{input.Shape().Clone()}, input.Layout(), input.DType(), params)
	if err != nil {
		return nil, err
	}
	return outputs[0], nil
}

// ReLU adds a rectified-linear activation node.
func (b *Builder) ReLU(input *tensor.Tensor, name string) (*tensor.Tensor, error) {
	if name == "" {
		name = "relu"
	}
	return b.unary(graph.ReLU, input, &graph.Params{Act: &graph.Activation{Kind: graph.ReLU}}, name)
}

// LeakyReLU adds a leaky rectified-linear activation node with the given
// negative-region slope.
func (b *Builder) LeakyReLU(input *tensor.Tensor, slope float64, name string) (*tensor.Tensor, error) {
	if name == "" {
		name = "lrelu"
	}
	return b.unary(graph.LeakyReLU, input,
		&graph.Params{Act: &graph.Activation{Kind: graph.LeakyReLU, Slope: slope}}, name)
}

// ELU adds an exponential-linear activation node.
func (b *Builder) ELU(input *tensor.Tensor, alpha float64, name string) (*tensor.Tensor, error) {
	if name == "" {
		name = "elu"
	}
	return b.unary(graph.ELU, input,
		&graph.Params{Act: &graph.Activation{Kind: graph.ELU, Alpha: alpha}}, name)
}

// SELU adds a scaled exponential-linear activation node.
func (b *Builder) SELU(input *tensor.Tensor, alpha, lambda float64, name string) (*tensor.Tensor, error) {
	if name == "" {
		name = "selu"
	}
	return b.unary(graph.SELU, input,
		&graph.Params{Act: &graph.Activation{Kind: graph.SELU, Alpha: alpha, Lambda: lambda}}, name)
}

// Tanh adds a hyperbolic-tangent activation node.
func (b *Builder) Tanh(input *tensor.Tensor, name string) (*tensor.Tensor, error) {
	if name == "" {
		name = "tanh"
	}
	return b.unary(graph.Tanh, input, &graph.Params{Act: &graph.Activation{Kind: graph.Tanh}}, name)
}

// HardTanh adds a clipped hyperbolic-tangent activation node bounded to
// [min, max].
func (b *Builder) HardTanh(input *tensor.Tensor, min, max float64, name string) (*tensor.Tensor, error) {
	if name == "" {
		name = "hard_tanh"
	}
	return b.unary(graph.HardTanh, input,
		&graph.Params{Act: &graph.Activation{Kind: graph.HardTanh, Min: min, Max: max}}, name)
}

// Sigmoid adds a sigmoid activation node.
func (b *Builder) Sigmoid(input *tensor.Tensor, name string) (*tensor.Tensor, error) {
	if name == "" {
		name = "sigmoid"
	}
	return b.unary(graph.Sigmoid, input, &graph.Params{Act: &graph.Activation{Kind: graph.Sigmoid}}, name)
}

// Softmax adds a softmax node.
func (b *Builder) Softmax(input *tensor.Tensor, name string) (*tensor.Tensor, error) {
	if name == "" {
		name = "softmax"
	}
	return b.unary(graph.Softmax, input, &graph.Params{Act: &graph.Activation{Kind: graph.Softmax}}, name)
}

// EltwiseAdd adds an elementwise-addition node. Both operands must share
// a shape; the output copies the first operand's shape and layout.
func (b *Builder) EltwiseAdd(x, y *tensor.Tensor, name string) (*tensor.Tensor, error) {
	if name == "" {
		name = "add"
	}
	negotiated, err := b.negotiateLayout(name, graph.EltwiseAdd, []*tensor.Tensor{x, y})
	if err != nil {
		return nil, err
	}
	x, y = negotiated[0], negotiated[1]

	if !x.Shape().Equal(y.Shape()) {
		return nil, shapeMismatchf(graph.EltwiseAdd, name,
			"operands must have equal shapes: %v vs %v", x.Shape(), y.Shape())
	}

	outputs, err := b.addNode(name, graph.EltwiseAdd, []*tensor.Tensor{x, y},
		[]tensor.Shape{x.Shape().Clone()}, x.Layout(), x.DType(), &graph.Params{})
	if err != nil {
		return nil, err
	}
	return outputs[0], nil
}
