package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Valid tests tensor creation with matching layout arity.
func TestNew_Valid(t *testing.T) {
	tsr, err := New("input", Shape{2, 3, 32, 32}, NCHW, Float32)
	require.NoError(t, err)

	assert.Equal(t, "input", tsr.Name())
	assert.True(t, tsr.Shape().Equal(Shape{2, 3, 32, 32}))
	assert.Equal(t, NCHW, tsr.Layout())
	assert.Equal(t, Float32, tsr.DType())
	assert.Equal(t, 4, tsr.Rank())
	assert.Equal(t, 3, tsr.Dim(1))
}

// TestNew_RankMismatch tests that layout arity is enforced.
func TestNew_RankMismatch(t *testing.T) {
	_, err := New("bad", Shape{2, 3, 32}, NCHW, Float32)
	assert.Error(t, err)

	_, err = New("bad", Shape{2, 3, 4}, NC, Float32)
	assert.Error(t, err)

	// X accepts any rank.
	_, err = New("ok", Shape{7}, X, Float32)
	assert.NoError(t, err)
}

// TestNew_InvalidShape tests that invalid dimensions are rejected.
func TestNew_InvalidShape(t *testing.T) {
	_, err := New("bad", Shape{2, 0, 4, 4}, NCHW, Float32)
	assert.Error(t, err)
}

// TestTensor_Identity tests that tensors have distinct stable identities.
func TestTensor_Identity(t *testing.T) {
	a, err := New("a", Shape{2, 8}, NC, Float32)
	require.NoError(t, err)
	b, err := New("a", Shape{2, 8}, NC, Float32)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID(), b.ID(), "equal shapes must still be distinct values")
	assert.Equal(t, a.ID(), a.ID())
}

// TestTensor_ShapeImmutable tests that the constructor copies the shape.
func TestTensor_ShapeImmutable(t *testing.T) {
	dims := Shape{2, 8}
	tsr, err := New("w", dims, NC, Float32)
	require.NoError(t, err)

	dims[0] = 99
	assert.Equal(t, 2, tsr.Dim(0), "tensor shape must not alias caller slice")
}
