package cart

import (
	"errors"
	"fmt"
	"slices"

	"github.com/matst80/slask-storefront/pkg/types"
)

var (
	ErrLineSubmitted = errors.New("line is submitted")
	ErrNoSuchLine    = errors.New("no such line")
)

// CartLine is one product on the cart with its selected specs.
type CartLine struct {
	Product       types.ProductRecord  `json:"product"`
	Quantity      types.Quantity       `json:"quantity"`
	Specs         []types.LineItemSpec `json:"specs"`
	UnitBasePrice types.Money          `json:"unitBasePrice"`
	Submitted     bool                 `json:"submitted,omitempty"`
}

// NewLine creates a line priced at the product's base price.
func NewLine(product types.ProductRecord, quantity int64, specs ...types.LineItemSpec) (CartLine, error) {
	q, err := types.NewQuantity(quantity)
	if err != nil {
		return CartLine{}, err
	}
	if product.BasePrice.IsNegative() {
		return CartLine{}, fmt.Errorf("%w: product %s", types.ErrInvalidPrice, product.ID)
	}
	return CartLine{
		Product:       product,
		Quantity:      q,
		Specs:         slices.Clone(specs),
		UnitBasePrice: product.BasePrice,
	}, nil
}

func (l *CartLine) SetQuantity(quantity int64) error {
	if l.Submitted {
		return ErrLineSubmitted
	}
	q, err := types.NewQuantity(quantity)
	if err != nil {
		return err
	}
	l.Quantity = q
	return nil
}

// SetSpec attaches spec, replacing an earlier spec with the same SpecID.
func (l *CartLine) SetSpec(spec types.LineItemSpec) error {
	if l.Submitted {
		return ErrLineSubmitted
	}
	idx := slices.IndexFunc(l.Specs, func(s types.LineItemSpec) bool {
		return s.SpecID == spec.SpecID
	})
	if idx >= 0 {
		l.Specs[idx] = spec
		return nil
	}
	l.Specs = append(l.Specs, spec)
	return nil
}

func (l *CartLine) RemoveSpec(specID string) error {
	if l.Submitted {
		return ErrLineSubmitted
	}
	l.Specs = slices.DeleteFunc(l.Specs, func(s types.LineItemSpec) bool {
		return s.SpecID == specID
	})
	return nil
}

// Submit locks the specs of the line.
func (l *CartLine) Submit() {
	l.Submitted = true
	for i := range l.Specs {
		l.Specs[i].Lock()
	}
}

// Cart owns its lines. It stores no totals, use Aggregator.CartTotal.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

func (c *Cart) Add(line CartLine) {
	c.Lines = append(c.Lines, line)
}

func (c *Cart) Line(index int) (*CartLine, error) {
	if index < 0 || index >= len(c.Lines) {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchLine, index)
	}
	return &c.Lines[index], nil
}

func (c *Cart) Remove(index int) error {
	if index < 0 || index >= len(c.Lines) {
		return fmt.Errorf("%w: %d", ErrNoSuchLine, index)
	}
	c.Lines = slices.Delete(c.Lines, index, index+1)
	return nil
}

func (c *Cart) Clear() {
	c.Lines = nil
}
