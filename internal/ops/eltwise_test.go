package ops

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinder-ml/cinder/internal/backend"
	"github.com/cinder-ml/cinder/internal/graph"
	"github.com/cinder-ml/cinder/internal/tensor"
)

// TestData tests source-node registration.
func TestData(t *testing.T) {
	b := NewBuilder("test", backend.Reference)
	raw := newTensor(t, "image", tensor.Shape{2, 3, 32, 32}, tensor.NCHW)

	out, err := b.Data(raw, "input")
	require.NoError(t, err)
	assert.True(t, out.Shape().Equal(raw.Shape()))
	assert.Equal(t, raw.Layout(), out.Layout())
	assert.NotEqual(t, raw.ID(), out.ID(), "the graph-owned tensor is a fresh value")

	node := b.Graph().Nodes()[0]
	assert.Equal(t, graph.Data, node.Op())
	assert.Same(t, raw, node.Inputs()[0])
}

// TestActivations_ShapePreserving tests that every activation kind
// passes shape and layout through unchanged.
func TestActivations_ShapePreserving(t *testing.T) {
	b := NewBuilder("test", backend.SMV)
	input := newTensor(t, "in", tensor.Shape{2, 3, 32, 32}, tensor.NCHW)

	cases := []struct {
		name string
		call func() (*tensor.Tensor, error)
		kind graph.OpKind
	}{
		{"relu", func() (*tensor.Tensor, error) { return b.ReLU(input, "") }, graph.ReLU},
		{"lrelu", func() (*tensor.Tensor, error) { return b.LeakyReLU(input, 0.2, "") }, graph.LeakyReLU},
		{"elu", func() (*tensor.Tensor, error) { return b.ELU(input, 1.0, "") }, graph.ELU},
		{"selu", func() (*tensor.Tensor, error) { return b.SELU(input, 1.6733, 1.0507, "") }, graph.SELU},
		{"tanh", func() (*tensor.Tensor, error) { return b.Tanh(input, "") }, graph.Tanh},
		{"hard_tanh", func() (*tensor.Tensor, error) { return b.HardTanh(input, -1, 1, "") }, graph.HardTanh},
		{"sigmoid", func() (*tensor.Tensor, error) { return b.Sigmoid(input, "") }, graph.Sigmoid},
		{"softmax", func() (*tensor.Tensor, error) { return b.Softmax(input, "") }, graph.Softmax},
	}
	for _, tc := range cases {
		out, err := tc.call()
		require.NoError(t, err, tc.name)
		assert.True(t, out.Shape().Equal(input.Shape()), tc.name)
		assert.Equal(t, input.Layout(), out.Layout(), tc.name)
	}

	nodes := b.Graph().Nodes()
	require.Len(t, nodes, len(cases), "layout-agnostic ops must not insert reorders")
	for i, tc := range cases {
		assert.Equal(t, tc.kind, nodes[i].Op(), tc.name)
	}
}

// TestActivations_ParamsRecorded tests kind-specific scalar parameters.
func TestActivations_ParamsRecorded(t *testing.T) {
	b := NewBuilder("test", backend.Reference)
	input := newTensor(t, "in", tensor.Shape{4, 64}, tensor.NC)

	_, err := b.LeakyReLU(input, 0.2, "")
	require.NoError(t, err)
	_, err = b.SELU(input, 1.6733, 1.0507, "")
	require.NoError(t, err)
	_, err = b.HardTanh(input, -2, 2, "")
	require.NoError(t, err)

	nodes := b.Graph().Nodes()
	assert.Equal(t, 0.2, nodes[0].Params().Act.Slope)
	assert.Equal(t, 1.6733, nodes[1].Params().Act.Alpha)
	assert.Equal(t, 1.0507, nodes[1].Params().Act.Lambda)
	assert.Equal(t, -2.0, nodes[2].Params().Act.Min)
	assert.Equal(t, 2.0, nodes[2].Params().Act.Max)
}

// TestEltwiseAdd tests the two-operand elementwise case.
func TestEltwiseAdd(t *testing.T) {
	b := NewBuilder("test", backend.Reference)
	x := newTensor(t, "x", tensor.Shape{2, 3, 32, 32}, tensor.NCHW)
	y := newTensor(t, "y", tensor.Shape{2, 3, 32, 32}, tensor.NCHW)

	out, err := b.EltwiseAdd(x, y, "")
	require.NoError(t, err)
	assert.True(t, out.Shape().Equal(x.Shape()))
	assert.Equal(t, tensor.NCHW, out.Layout())

	// Mismatched shapes are rejected.
	z := newTensor(t, "z", tensor.Shape{2, 3, 16, 16}, tensor.NCHW)
	_, err = b.EltwiseAdd(x, z, "")
	var mismatch *ShapeMismatchError
	assert.True(t, errors.As(err, &mismatch))
}

// TestEltwiseAdd_MixedLayouts tests that layout-agnostic ops tolerate
// operands whose layouts differ.
func TestEltwiseAdd_MixedLayouts(t *testing.T) {
	b := NewBuilder("test", backend.Reference)
	x := newTensor(t, "x", tensor.Shape{2, 8}, tensor.NC)
	y := newTensor(t, "y", tensor.Shape{2, 8}, tensor.X)

	out, err := b.EltwiseAdd(x, y, "")
	require.NoError(t, err)
	assert.Equal(t, tensor.NC, out.Layout(), "output copies the first operand's layout")
	assert.Equal(t, 1, b.Graph().NumNodes())
}
