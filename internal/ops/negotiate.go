package ops

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/cinder-ml/cinder/internal/graph"
	"github.com/cinder-ml/cinder/internal/tensor"
)

// negotiateLayout checks each input tensor against the layout the
// operator requires on this session's target and, for each mismatch,
// synthesizes a Reorder node converting the tensor, substituting the
// Reorder's output for the original input. Inputs whose layout already
// matches pass through untouched (same identity), so negotiation is
// idempotent. A required layout of X means the operator is
// layout-agnostic and never triggers a transform.
//
// The requirement is looked up per input: the current policy applies one
// requirement pair per operator kind, but nothing here assumes all
// inputs share it.
//
// The returned slice preserves input order.
func (b *Builder) negotiateLayout(name string, op graph.OpKind, inputs []*tensor.Tensor) ([]*tensor.Tensor, error) {
	out := make([]*tensor.Tensor, len(inputs))
	for i, in := range inputs {
		req, err := b.target.LayoutRequirement(op)
		if err != nil {
			return nil, err
		}
		if req.Input == tensor.X || in.Layout() == req.Input {
			out[i] = in
			continue
		}

		perm, err := in.Layout().PermutationTo(req.Input)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot negotiate input %q of %s %q from %s to %s",
				in.Name(), op, name, in.Layout(), req.Input)
		}
		dims, err := in.Shape().Permute(perm)
		if err != nil {
			return nil, errors.Wrapf(err, "reordering input %q of %s %q", in.Name(), op, name)
		}

		converted, err := b.addNode(
			name+"_reorder", graph.Reorder,
			[]*tensor.Tensor{in},
			[]tensor.Shape{dims}, req.Input, in.DType(),
			&graph.Params{},
		)
		if err != nil {
			return nil, err
		}
		klog.V(2).Infof("negotiated input %q of %s %q: %s -> %s", in.Name(), op, name, in.Layout(), req.Input)
		out[i] = converted[0]
	}
	return out, nil
}
