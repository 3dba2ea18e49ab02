package promotions

import (
	"errors"
	"fmt"

	"github.com/matst80/slask-storefront/pkg/types"
	"github.com/shopspring/decimal"
)

var ErrNotAvailable = errors.New("promotion not available")

// Promotions are the discount mechanism of the storefront. They run after
// markups are totalled and never feed back into line prices.

type PromotionAction struct {
	Type  string          `json:"type"`
	Value decimal.Decimal `json:"value"`
}

type PromotionArticle struct {
	Sku     string            `json:"sku"`
	Actions []PromotionAction `json:"actions"`
}

type Promotion struct {
	Id          int                `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Articles    []PromotionArticle `json:"articles"`
}

type PromotionOutput struct {
	*PromotionInput
	PromotionId int         `json:"promotion_id"`
	Discount    types.Money `json:"discount"`
}

// PromotionInput is one aggregated cart line; Price is the line total.
type PromotionInput struct {
	Sku      string         `json:"sku"`
	Quantity types.Quantity `json:"qty"`
	Price    types.Money    `json:"price"`
}

// IsAvailable reports whether every article of the promotion is present.
func (p *Promotion) IsAvailable(input ...*PromotionInput) bool {
	for _, article := range p.Articles {
		found := false
		for _, i := range input {
			if i.Sku == article.Sku {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return len(p.Articles) > 0
}

func (a *PromotionAction) Apply(input *PromotionInput) (PromotionOutput, error) {
	result := PromotionOutput{
		PromotionInput: input,
		Discount:       types.Zero,
	}
	if a.Value.IsNegative() {
		return result, fmt.Errorf("negative %s discount %s", a.Type, a.Value)
	}
	switch a.Type {
	case "percentage":
		if a.Value.GreaterThan(decimal.NewFromInt(100)) {
			return result, fmt.Errorf("percentage must be 0-100, got %s", a.Value)
		}
		result.Discount = input.Price.Percent(a.Value).Round()
	case "fixed":
		result.Discount = types.MoneyFromDecimal(a.Value).Min(input.Price).Round()
	default:
		return result, fmt.Errorf("unknown action type %s", a.Type)
	}
	return result, nil
}

func (p *Promotion) Apply(current *PromotionInput, others ...*PromotionInput) ([]PromotionOutput, error) {
	all := append([]*PromotionInput{current}, others...)
	if !p.IsAvailable(all...) {
		return nil, fmt.Errorf("%w: %d", ErrNotAvailable, p.Id)
	}
	result := make([]PromotionOutput, 0)
	for _, article := range p.Articles {
		for _, i := range all {
			if i.Sku == article.Sku {
				for _, action := range article.Actions {
					output, err := action.Apply(i)
					if err != nil {
						return nil, err
					}
					output.PromotionId = p.Id
					result = append(result, output)
				}
			}
		}
	}
	return result, nil
}

// ApplyAll applies every available promotion to the inputs. Unavailable
// promotions are skipped.
func ApplyAll(promotions []Promotion, inputs []*PromotionInput) ([]PromotionOutput, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	ret := make([]PromotionOutput, 0)
	for _, p := range promotions {
		if !p.IsAvailable(inputs...) {
			continue
		}
		out, err := p.Apply(inputs[0], inputs[1:]...)
		if err != nil {
			return nil, fmt.Errorf("promotion %d: %w", p.Id, err)
		}
		ret = append(ret, out...)
	}
	return ret, nil
}

func TotalDiscount(outputs []PromotionOutput) types.Money {
	total := types.Zero
	for _, o := range outputs {
		total = total.Add(o.Discount)
	}
	return total
}
