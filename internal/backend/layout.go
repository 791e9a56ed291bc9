package backend

import (
	"github.com/cinder-ml/cinder/internal/graph"
	"github.com/cinder-ml/cinder/internal/tensor"
)

// Requirement is the layout an operator demands of its inputs and
// stamps on its outputs under one target.
type Requirement struct {
	Input  tensor.Layout
	Output tensor.Layout
}

// imageLayout returns the 4D image layout the target's spatial
// operators use.
func (t Target) imageLayout() (tensor.Layout, error) {
	switch t {
	case Reference:
		return tensor.NCHW, nil
	case SMV:
		return tensor.NHWC, nil
	default:
		return tensor.UnknownLayout, &ConfigurationError{Target: t.String()}
	}
}

// LayoutRequirement returns the layout requirement for one operator kind
// on one target. The operator set is closed; a kind outside it (or an
// unknown target) yields a ConfigurationError, never a default.
func (t Target) LayoutRequirement(op graph.OpKind) (Requirement, error) {
	img, err := t.imageLayout() // also rejects unknown targets
	if err != nil {
		return Requirement{}, err
	}

	switch op {
	case graph.Convolution, graph.DepthwiseConvolution,
		graph.MaxPooling, graph.AveragePooling, graph.BatchNorm:
		return Requirement{Input: img, Output: img}, nil

	case graph.InnerProduct:
		return Requirement{Input: tensor.NC, Output: tensor.NC}, nil

	case graph.Data, graph.Reorder,
		graph.ReLU, graph.LeakyReLU, graph.ELU, graph.SELU,
		graph.Tanh, graph.HardTanh, graph.Sigmoid, graph.Softmax,
		graph.EltwiseAdd:
		return Requirement{Input: tensor.X, Output: tensor.X}, nil

	default:
		return Requirement{}, &ConfigurationError{Target: t.String(), Op: op.String()}
	}
}
