package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matst80/slask-storefront/pkg/types"
)

func TestMakeOrder(t *testing.T) {
	agg := NewAggregator(nil, decimal.Zero)
	c := Cart{}
	c.Add(newLine(t, "p1", "20.00", 2, newSpec(t, "setup", types.AmountTotal, "5.00")))
	c.Add(newLine(t, "p2", "3.50", 1))
	result, err := agg.CartTotal(c)
	require.NoError(t, err)

	order := MakeOrder(result, "USD", DiscountLine{Name: "promo", Reference: "p1", TotalAmount: 500})
	assert.Equal(t, "USD", order.PurchaseCurrency)
	require.Len(t, order.OrderLines, 2)
	assert.Equal(t, int64(2000), order.OrderLines[0].UnitPrice)
	assert.Equal(t, int64(500), order.OrderLines[0].MarkupAmount)
	assert.Equal(t, int64(4500), order.OrderLines[0].TotalAmount)
	assert.Equal(t, int64(350), order.OrderLines[1].TotalAmount)
	assert.Equal(t, int64(500), order.TotalDiscountAmount)
	assert.Equal(t, int64(4350), order.OrderAmount)
}

func TestMakeOrderCapsDiscount(t *testing.T) {
	result, err := NewAggregator(nil, decimal.Zero).CartTotal(Cart{Lines: []CartLine{newLine(t, "p1", "1", 1)}})
	require.NoError(t, err)
	order := MakeOrder(result, "USD", DiscountLine{TotalAmount: 1000})
	assert.Equal(t, int64(100), order.TotalDiscountAmount)
	assert.Equal(t, int64(0), order.OrderAmount)
}
