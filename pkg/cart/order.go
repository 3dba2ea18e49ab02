package cart

// Amounts in an Order are minor units (cents), as checkout and webhook
// consumers expect them.

type OrderLine struct {
	Type         string `json:"type"`
	Reference    string `json:"reference"`
	Name         string `json:"name"`
	Quantity     int64  `json:"quantity"`
	UnitPrice    int64  `json:"unit_price"`
	MarkupAmount int64  `json:"markup_amount"`
	TotalAmount  int64  `json:"total_amount"`
}

type DiscountLine struct {
	Name        string `json:"name"`
	Reference   string `json:"reference"`
	TotalAmount int64  `json:"total_amount"`
}

type Order struct {
	PurchaseCurrency    string         `json:"purchase_currency"`
	Status              string         `json:"status"`
	OrderAmount         int64          `json:"order_amount"`
	TotalDiscountAmount int64          `json:"total_discount_amount"`
	OrderLines          []OrderLine    `json:"order_lines"`
	DiscountLines       []DiscountLine `json:"discount_lines,omitempty"`
}

// MakeOrder converts an aggregated cart into an order payload. Discount lines
// are subtracted from the order amount, which never goes below zero.
func MakeOrder(result CartResult, currency string, discounts ...DiscountLine) Order {
	lines := make([]OrderLine, len(result.Lines))
	for i, line := range result.Lines {
		lines[i] = OrderLine{
			Type:         "physical",
			Reference:    line.ProductID,
			Name:         line.ProductName,
			Quantity:     line.Quantity.Int64(),
			UnitPrice:    line.UnitPrice.MinorUnits(),
			MarkupAmount: line.Total.Sub(line.Base).MinorUnits(),
			TotalAmount:  line.Total.MinorUnits(),
		}
	}
	var discount int64
	for _, d := range discounts {
		discount += d.TotalAmount
	}
	discount = min(discount, result.Total.MinorUnits())
	return Order{
		PurchaseCurrency:    currency,
		Status:              "checkout_incomplete",
		OrderAmount:         result.Total.MinorUnits() - discount,
		TotalDiscountAmount: discount,
		OrderLines:          lines,
		DiscountLines:       discounts,
	}
}
