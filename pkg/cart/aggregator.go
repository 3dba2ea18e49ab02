package cart

import (
	"fmt"

	"github.com/matst80/slask-storefront/pkg/pricing"
	"github.com/matst80/slask-storefront/pkg/types"
	"github.com/shopspring/decimal"
)

// LineError reports which line (and spec, when known) failed. Index is the
// position of the line in the cart.
type LineError struct {
	Index  int
	SpecID string
	Err    error
}

func (e *LineError) Error() string {
	if e.SpecID != "" {
		return fmt.Sprintf("line %d spec %s: %v", e.Index, e.SpecID, e.Err)
	}
	return fmt.Sprintf("line %d: %v", e.Index, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

type SpecResult struct {
	SpecID string      `json:"specId"`
	Delta  types.Money `json:"delta"`
}

type LineResult struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    types.Quantity  `json:"quantity"`
	UnitPrice   types.Money     `json:"unitPrice"`
	Base        types.Money     `json:"base"`
	Specs       []SpecResult    `json:"specs,omitempty"`
	Total       types.Money     `json:"total"`
	Warnings    []types.Warning `json:"warnings,omitempty"`
}

type CartResult struct {
	Lines    []LineResult    `json:"lines"`
	Total    types.Money     `json:"total"`
	Warnings []types.Warning `json:"warnings,omitempty"`
}

// Aggregator composes spec deltas with base price and quantity. Nothing is
// cached, every call recomputes from the line.
type Aggregator struct {
	engine *pricing.Engine
	// deltas above UnitBasePrice * maxMarkupRatio are flagged, zero disables
	maxMarkupRatio decimal.Decimal
}

func NewAggregator(engine *pricing.Engine, maxMarkupRatio decimal.Decimal) *Aggregator {
	if engine == nil {
		engine = pricing.NewEngine()
	}
	return &Aggregator{
		engine:         engine,
		maxMarkupRatio: maxMarkupRatio,
	}
}

func (a *Aggregator) LineTotal(line CartLine) (LineResult, error) {
	return a.lineTotal(0, line)
}

func (a *Aggregator) lineTotal(index int, line CartLine) (LineResult, error) {
	if err := line.Quantity.Validate(); err != nil {
		return LineResult{}, &LineError{Index: index, Err: err}
	}
	if line.UnitBasePrice.IsNegative() {
		return LineResult{}, &LineError{Index: index, Err: fmt.Errorf("%w: %s", types.ErrInvalidPrice, line.UnitBasePrice)}
	}
	base := line.UnitBasePrice.MulInt(line.Quantity.Int64()).Round()
	result := LineResult{
		ProductID:   line.Product.ID,
		ProductName: line.Product.Name,
		Quantity:    line.Quantity,
		UnitPrice:   line.UnitBasePrice,
		Base:        base,
		Specs:       make([]SpecResult, 0, len(line.Specs)),
		Total:       base,
	}

	var limit types.Money
	checkPolicy := a.maxMarkupRatio.IsPositive()
	if checkPolicy {
		limit = line.UnitBasePrice.Mul(a.maxMarkupRatio)
	}

	for _, spec := range line.Specs {
		delta, err := a.engine.PriceDelta(spec, line.UnitBasePrice, line.Quantity)
		if err != nil {
			return LineResult{}, &LineError{Index: index, SpecID: spec.SpecID, Err: err}
		}
		result.Specs = append(result.Specs, SpecResult{SpecID: spec.SpecID, Delta: delta})
		result.Total = result.Total.Add(delta)
		if checkPolicy && delta.GreaterThan(limit) {
			result.Warnings = append(result.Warnings, types.PolicyExceeded(index+1, spec.SpecID, delta, limit))
		}
	}
	return result, nil
}

// CartTotal sums the line totals. The first failing line aborts the
// computation; the cart itself is never modified.
func (a *Aggregator) CartTotal(c Cart) (CartResult, error) {
	result := CartResult{
		Lines: make([]LineResult, 0, len(c.Lines)),
		Total: types.Zero,
	}
	for i, line := range c.Lines {
		lr, err := a.lineTotal(i, line)
		if err != nil {
			return CartResult{}, err
		}
		result.Lines = append(result.Lines, lr)
		result.Total = result.Total.Add(lr.Total)
		result.Warnings = append(result.Warnings, lr.Warnings...)
	}
	return result, nil
}
