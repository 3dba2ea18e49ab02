package cart

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matst80/slask-storefront/pkg/pricing"
	"github.com/matst80/slask-storefront/pkg/types"
)

func newSpec(t *testing.T, id string, markupType types.MarkupType, markup string) types.LineItemSpec {
	t.Helper()
	s, err := types.NewLineItemSpec(id, id, "", "", markupType, types.MustMoney(markup))
	require.NoError(t, err)
	return s
}

func newLine(t *testing.T, id, price string, qty int64, specs ...types.LineItemSpec) CartLine {
	t.Helper()
	line, err := NewLine(types.ProductRecord{ID: id, Name: "Product " + id, BasePrice: types.MustMoney(price)}, qty, specs...)
	require.NoError(t, err)
	return line
}

func TestLineTotalWithSpecs(t *testing.T) {
	agg := NewAggregator(pricing.NewEngine(), decimal.Zero)
	line := newLine(t, "p1", "20.00", 1,
		newSpec(t, "setup", types.AmountTotal, "5.00"),
		newSpec(t, "color", types.NoMarkup, "0"),
	)
	result, err := agg.LineTotal(line)
	require.NoError(t, err)
	assert.True(t, result.Total.Equal(types.MustMoney("25.00")), "got %s", result.Total)
	assert.True(t, result.Base.Equal(types.MustMoney("20.00")))
	assert.Len(t, result.Specs, 2)
	assert.Empty(t, result.Warnings)
}

func TestLineTotalMixedMarkups(t *testing.T) {
	agg := NewAggregator(nil, decimal.Zero)
	line := newLine(t, "p1", "50.00", 2,
		newSpec(t, "a", types.AmountPerQuantity, "2.00"),
		newSpec(t, "b", types.Percentage, "10"),
		newSpec(t, "c", types.AmountTotal, "1.25"),
	)
	result, err := agg.LineTotal(line)
	require.NoError(t, err)
	// 100 + 4 + 10 + 1.25
	assert.Equal(t, "115.25", result.Total.String())
}

func TestCartTotalIsSumOfLines(t *testing.T) {
	agg := NewAggregator(nil, decimal.Zero)
	c := Cart{}
	c.Add(newLine(t, "p1", "19.99", 3, newSpec(t, "a", types.Percentage, "12.5")))
	c.Add(newLine(t, "p2", "4.10", 7, newSpec(t, "b", types.AmountPerQuantity, "0.35")))
	c.Add(newLine(t, "p3", "100", 1))

	result, err := agg.CartTotal(c)
	require.NoError(t, err)
	require.Len(t, result.Lines, 3)

	sum := types.Zero
	for _, line := range c.Lines {
		lr, err := agg.LineTotal(line)
		require.NoError(t, err)
		sum = sum.Add(lr.Total)
	}
	assert.True(t, result.Total.Equal(sum), "cart %s != sum of lines %s", result.Total, sum)

	// recomputed after a change, nothing is cached
	line, err := c.Line(2)
	require.NoError(t, err)
	require.NoError(t, line.SetQuantity(2))
	again, err := agg.CartTotal(c)
	require.NoError(t, err)
	assert.True(t, again.Total.Equal(result.Total.Add(types.MustMoney("100"))))
}

func TestCartTotalEmptyCart(t *testing.T) {
	result, err := NewAggregator(nil, decimal.Zero).CartTotal(Cart{})
	require.NoError(t, err)
	assert.True(t, result.Total.IsZero())
	assert.Empty(t, result.Lines)
}

func TestCartTotalReportsFailingLine(t *testing.T) {
	agg := NewAggregator(nil, decimal.Zero)
	c := Cart{}
	c.Add(newLine(t, "p1", "10", 1))
	bad := newLine(t, "p2", "10", 1)
	bad.Quantity = 0
	c.Add(bad)

	_, err := agg.CartTotal(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrInvalidQuantity))
	var lineErr *LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 1, lineErr.Index)
}

func TestCartTotalNegativeBasePrice(t *testing.T) {
	agg := NewAggregator(nil, decimal.Zero)
	line := newLine(t, "p1", "10", 1)
	line.UnitBasePrice = types.MustMoney("-1")
	_, err := agg.CartTotal(Cart{Lines: []CartLine{line}})
	assert.ErrorIs(t, err, types.ErrInvalidPrice)
}

func TestPolicyWarning(t *testing.T) {
	agg := NewAggregator(nil, decimal.RequireFromString("0.5"))
	c := Cart{}
	c.Add(newLine(t, "p1", "10", 1, newSpec(t, "ok", types.AmountTotal, "5")))
	c.Add(newLine(t, "p2", "10", 1, newSpec(t, "big", types.AmountTotal, "6")))

	result, err := agg.CartTotal(c)
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	w := result.Warnings[0]
	assert.Equal(t, types.WarningPolicy, w.Kind)
	assert.Equal(t, 2, w.Line)
	assert.Equal(t, "big", w.Spec)
	// warnings never change the total
	assert.Equal(t, "31.00", result.Total.String())
}

func TestPolicyWarningFollowsQuantity(t *testing.T) {
	agg := NewAggregator(nil, decimal.RequireFromString("0.5"))
	c := Cart{}
	c.Add(newLine(t, "p1", "10", 2, newSpec(t, "per", types.AmountPerQuantity, "2")))
	c.Add(newLine(t, "p2", "10", 2, newSpec(t, "pct", types.Percentage, "20")))

	result, err := agg.CartTotal(c)
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, "48.00", result.Total.String())

	for i := range c.Lines {
		line, err := c.Line(i)
		require.NoError(t, err)
		require.NoError(t, line.SetQuantity(3))
	}
	result, err = agg.CartTotal(c)
	require.NoError(t, err)
	require.Len(t, result.Warnings, 2)
	assert.Equal(t, 1, result.Warnings[0].Line)
	assert.Equal(t, "per", result.Warnings[0].Spec)
	assert.Equal(t, "6.00", result.Warnings[0].Delta.String())
	assert.Equal(t, "5.00", result.Warnings[0].Limit.String())
	assert.Equal(t, 2, result.Warnings[1].Line)
	assert.Equal(t, "pct", result.Warnings[1].Spec)
	assert.Equal(t, "72.00", result.Total.String())
}

func TestLineTotalRoundsEachSpec(t *testing.T) {
	agg := NewAggregator(nil, decimal.Zero)
	line := newLine(t, "p1", "0.10", 1,
		newSpec(t, "a", types.Percentage, "5"),
		newSpec(t, "b", types.Percentage, "5"),
	)
	result, err := agg.LineTotal(line)
	require.NoError(t, err)
	// each 0.005 delta rounds to 0.01 before summing
	assert.Equal(t, "0.01", result.Specs[0].Delta.String())
	assert.Equal(t, "0.12", result.Total.String())
}

func TestNewLineValidation(t *testing.T) {
	_, err := NewLine(types.ProductRecord{ID: "p1", BasePrice: types.MustMoney("1")}, 0)
	assert.ErrorIs(t, err, types.ErrInvalidQuantity)
	_, err = NewLine(types.ProductRecord{ID: "p1", BasePrice: types.MustMoney("-1")}, 1)
	assert.ErrorIs(t, err, types.ErrInvalidPrice)
}

func TestSubmittedLineLocksSpecs(t *testing.T) {
	line := newLine(t, "p1", "10", 1, newSpec(t, "a", types.AmountTotal, "1"))
	require.NoError(t, line.SetSpec(newSpec(t, "a", types.AmountTotal, "2")))
	assert.Len(t, line.Specs, 1)
	assert.Equal(t, "2.00", line.Specs[0].Markup().String())

	line.Submit()
	assert.ErrorIs(t, line.SetSpec(newSpec(t, "b", types.NoMarkup, "0")), ErrLineSubmitted)
	assert.ErrorIs(t, line.RemoveSpec("a"), ErrLineSubmitted)
	assert.ErrorIs(t, line.SetQuantity(2), ErrLineSubmitted)
	assert.Equal(t, int64(1), line.Quantity.Int64())
	assert.ErrorIs(t, line.Specs[0].SetMarkup(types.AmountTotal, types.MustMoney("9")), types.ErrSpecLocked)
}

func TestCartLineAccess(t *testing.T) {
	c := Cart{}
	c.Add(newLine(t, "p1", "10", 1))
	_, err := c.Line(3)
	assert.ErrorIs(t, err, ErrNoSuchLine)
	assert.ErrorIs(t, c.Remove(-1), ErrNoSuchLine)
	require.NoError(t, c.Remove(0))
	assert.Empty(t, c.Lines)
}
