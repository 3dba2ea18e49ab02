package pricing

import (
	"fmt"

	"github.com/matst80/slask-storefront/pkg/types"
)

// Engine computes what a selected spec adds to a cart line.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// PriceDelta returns the markup spec adds to a line of qty units priced at
// unitBase, rounded to currency precision. Percentage markups always apply
// to the unit base price, so specs on one line never compound.
func (e *Engine) PriceDelta(spec types.LineItemSpec, unitBase types.Money, qty types.Quantity) (types.Money, error) {
	if err := qty.Validate(); err != nil {
		return types.Zero, err
	}
	if unitBase.IsNegative() {
		return types.Zero, fmt.Errorf("%w: unit base price %s", types.ErrInvalidPrice, unitBase)
	}
	markup := spec.Markup()
	if markup.IsNegative() {
		return types.Zero, fmt.Errorf("%w: spec %s has markup %s", types.ErrInvalidMarkup, spec.SpecID, markup)
	}

	var delta types.Money
	switch spec.MarkupType() {
	case types.NoMarkup:
		return types.Zero, nil
	case types.AmountPerQuantity:
		delta = markup.MulInt(qty.Int64())
	case types.AmountTotal:
		delta = markup
	case types.Percentage:
		delta = unitBase.Percent(markup.Decimal()).MulInt(qty.Int64())
	default:
		return types.Zero, fmt.Errorf("%w: %s", types.ErrUnknownMarkupType, spec.MarkupType())
	}
	return delta.Round(), nil
}

// SpecDeltas computes the rounded delta of every spec in order.
func (e *Engine) SpecDeltas(specs []types.LineItemSpec, unitBase types.Money, qty types.Quantity) ([]types.Money, error) {
	ret := make([]types.Money, len(specs))
	for i, spec := range specs {
		delta, err := e.PriceDelta(spec, unitBase, qty)
		if err != nil {
			return nil, fmt.Errorf("spec %s: %w", spec.SpecID, err)
		}
		ret[i] = delta
	}
	return ret, nil
}
