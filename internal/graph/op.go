// Package graph provides the computation-graph container for the cinder
// graph builder: operator kinds, typed node parameters, nodes, and the
// append-only graph they form.
package graph

// OpKind identifies an operator. The set is closed: policy tables and
// shape rules switch exhaustively over it, so adding a kind means
// extending those switches.
type OpKind int

const (
	// Data registers an externally created tensor (graph input or weight)
	// as a source node.
	Data OpKind = iota
	// Convolution is a 2D spatial convolution over a 4D image tensor.
	Convolution
	// DepthwiseConvolution convolves each input channel independently.
	DepthwiseConvolution
	// MaxPooling is a 2D max-pooling reduction.
	MaxPooling
	// AveragePooling is a 2D average-pooling reduction.
	AveragePooling
	// InnerProduct is a fully connected layer (matrix multiply).
	InnerProduct
	// BatchNorm is a batch-normalization affine transform.
	BatchNorm
	// Reorder converts a tensor between data layouts. Reorder nodes are
	// synthesized by layout negotiation, never requested directly.
	Reorder
	// ReLU and the kinds below are shape-preserving activations.
	ReLU
	LeakyReLU
	ELU
	SELU
	Tanh
	HardTanh
	Sigmoid
	Softmax
	// EltwiseAdd adds two same-shaped tensors elementwise.
	EltwiseAdd
)

// String returns the operator kind's name.
func (op OpKind) String() string {
	switch op {
	case Data:
		return "Data"
	case Convolution:
		return "Convolution"
	case DepthwiseConvolution:
		return "DepthwiseConvolution"
	case MaxPooling:
		return "MaxPooling"
	case AveragePooling:
		return "AveragePooling"
	case InnerProduct:
		return "InnerProduct"
	case BatchNorm:
		return "BatchNorm"
	case Reorder:
		return "Reorder"
	case ReLU:
		return "ReLU"
	case LeakyReLU:
		return "LeakyReLU"
	case ELU:
		return "ELU"
	case SELU:
		return "SELU"
	case Tanh:
		return "Tanh"
	case HardTanh:
		return "HardTanh"
	case Sigmoid:
		return "Sigmoid"
	case Softmax:
		return "Softmax"
	case EltwiseAdd:
		return "EltwiseAdd"
	default:
		return "unknown"
	}
}
