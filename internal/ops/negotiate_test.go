package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinder-ml/cinder/internal/backend"
	"github.com/cinder-ml/cinder/internal/graph"
	"github.com/cinder-ml/cinder/internal/tensor"
)

// TestNegotiate_MatchPassesThrough verifies that a tensor already in the
// required layout is returned unchanged, same identity, no transform.
func TestNegotiate_MatchPassesThrough(t *testing.T) {
	b := NewBuilder("test", backend.Reference)
	input := newTensor(t, "in", tensor.Shape{2, 3, 32, 32}, tensor.NCHW)
	filter := newTensor(t, "w", tensor.Shape{8, 3, 3, 3}, tensor.NCHW)

	_, err := b.Convolution(input, filter, [2]int{1, 1}, graph.ValidPadding, nil, "")
	require.NoError(t, err)

	g := b.Graph()
	require.Equal(t, 1, g.NumNodes(), "no reorder node expected")
	conv := g.Nodes()[0]
	assert.Same(t, input, conv.Inputs()[0])
	assert.Same(t, filter, conv.Inputs()[1])
}

// TestNegotiate_MismatchInsertsReorder verifies transform synthesis on a
// layout mismatch: the reorder consumes the original tensor and its
// permuted output replaces it as the operator's input.
func TestNegotiate_MismatchInsertsReorder(t *testing.T) {
	b := NewBuilder("test", backend.Reference)
	input := newTensor(t, "in", tensor.Shape{2, 32, 32, 3}, tensor.NHWC)
	filter := newTensor(t, "w", tensor.Shape{8, 3, 3, 3}, tensor.NCHW)

	out, err := b.Convolution(input, filter, [2]int{1, 1}, graph.ValidPadding, nil, "")
	require.NoError(t, err)

	g := b.Graph()
	require.Equal(t, 2, g.NumNodes())

	reorder := g.Nodes()[0]
	assert.Equal(t, graph.Reorder, reorder.Op())
	assert.Same(t, input, reorder.Inputs()[0])
	converted := reorder.Outputs()[0]
	assert.Equal(t, tensor.NCHW, converted.Layout())
	assert.True(t, converted.Shape().Equal(tensor.Shape{2, 3, 32, 32}),
		"reorder output must be a dimension permutation of its input")

	conv := g.Nodes()[1]
	assert.Equal(t, graph.Convolution, conv.Op())
	assert.Same(t, converted, conv.Inputs()[0], "input must be rewired to the reorder output")
	assert.Same(t, filter, conv.Inputs()[1], "matching inputs stay untouched")
	assert.True(t, out.Shape().Equal(tensor.Shape{2, 8, 30, 30}))
}

// TestNegotiate_Idempotent verifies that the output of a reorder is not
// reordered again under the same requirement.
func TestNegotiate_Idempotent(t *testing.T) {
	b := NewBuilder("test", backend.Reference)
	input := newTensor(t, "in", tensor.Shape{2, 3, 32, 32}, tensor.NHWC)

	first, err := b.MaxPooling(input, [2]int{2, 2}, [2]int{1, 1}, "")
	require.NoError(t, err)
	require.Equal(t, 2, b.Graph().NumNodes()) // reorder + pool

	_, err = b.MaxPooling(first, [2]int{2, 2}, [2]int{1, 1}, "")
	require.NoError(t, err)
	assert.Equal(t, 3, b.Graph().NumNodes(), "second pooling must not insert another reorder")
}

// TestNegotiate_PassthroughRequirement verifies that X-requirement
// operators never trigger a transform regardless of the input's layout.
func TestNegotiate_PassthroughRequirement(t *testing.T) {
	for _, layout := range []tensor.Layout{tensor.NCHW, tensor.NHWC} {
		b := NewBuilder("test", backend.SMV)
		input := newTensor(t, "in", tensor.Shape{2, 3, 32, 32}, layout)

		out, err := b.ReLU(input, "")
		require.NoError(t, err)
		assert.Equal(t, 1, b.Graph().NumNodes(), "layout %s", layout)
		assert.Equal(t, layout, out.Layout(), "elementwise output keeps the actual layout")
	}
}

// TestNegotiate_PerInputLookup verifies each input is negotiated
// independently: only mismatching inputs get a reorder.
func TestNegotiate_PerInputLookup(t *testing.T) {
	b := NewBuilder("test", backend.SMV)
	input := newTensor(t, "in", tensor.Shape{2, 32, 32, 3}, tensor.NHWC) // matches SMV
	filter := newTensor(t, "w", tensor.Shape{8, 3, 3, 3}, tensor.NCHW)  // mismatch

	_, err := b.Convolution(input, filter, [2]int{1, 1}, graph.ValidPadding, nil, "")
	require.NoError(t, err)

	g := b.Graph()
	require.Equal(t, 2, g.NumNodes())
	reorder := g.Nodes()[0]
	assert.Same(t, filter, reorder.Inputs()[0], "only the mismatching input is transformed")
	conv := g.Nodes()[1]
	assert.Same(t, input, conv.Inputs()[0])
}

// TestNegotiate_UnconvertibleLayout verifies that a layout with no
// permutation to the requirement surfaces an error instead of a
// transform.
func TestNegotiate_UnconvertibleLayout(t *testing.T) {
	b := NewBuilder("test", backend.Reference)
	input := newTensor(t, "in", tensor.Shape{4, 128}, tensor.X)
	weight := newTensor(t, "w", tensor.Shape{64, 128}, tensor.NC)

	_, err := b.MatMul(input, weight, nil, "")
	assert.Error(t, err, "X cannot be permuted into NC")
	assert.Equal(t, 0, b.Graph().NumNodes())
}
