package promotions

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/matst80/slask-storefront/pkg/types"
	"github.com/shopspring/decimal"
)

func TestPromotionAvailable(t *testing.T) {
	promotion := Promotion{
		Id:          1,
		Name:        "Promotion 1",
		Description: "Description 1",
		Articles: []PromotionArticle{
			{
				Sku: "sku1",
				Actions: []PromotionAction{
					{
						Type:  "percentage",
						Value: decimal.NewFromInt(1),
					},
				},
			},
		},
	}
	validInput := &PromotionInput{
		Sku:      "sku1",
		Quantity: 1,
		Price:    types.MustMoney("100.00"),
	}
	if !promotion.IsAvailable(validInput) {
		t.Errorf("Expected to be available")
	}
	output, err := promotion.Apply(validInput)
	if err != nil {
		t.Fatal(err)
	}
	if !output[0].Discount.Equal(types.MustMoney("1.00")) {
		t.Errorf("Expected discount to be 1.00, got %s", output[0].Discount)
	}

	if promotion.IsAvailable(&PromotionInput{
		Sku:      "sku2",
		Quantity: 2,
	}) {
		t.Errorf("Expected to not be available")
	}
}

func TestPromotionMultipleBundleAvailable(t *testing.T) {
	promotion := Promotion{
		Id:   1,
		Name: "Promotion 1",
		Articles: []PromotionArticle{
			{
				Sku:     "sku1",
				Actions: []PromotionAction{{Type: "percentage", Value: decimal.NewFromInt(1)}},
			},
			{
				Sku:     "sku2",
				Actions: []PromotionAction{{Type: "fixed", Value: decimal.NewFromInt(5)}},
			},
		},
	}
	if promotion.IsAvailable(&PromotionInput{Sku: "sku1", Quantity: 1}) {
		t.Errorf("Expected to not be available")
	}
	if promotion.IsAvailable(&PromotionInput{Sku: "sku2", Quantity: 2}) {
		t.Errorf("Expected to not be available")
	}
	if !promotion.IsAvailable(&PromotionInput{Sku: "sku2", Quantity: 2}, &PromotionInput{Sku: "sku1", Quantity: 1}) {
		t.Errorf("Expected to be available")
	}
}

func TestFixedDiscountIsCappedAtPrice(t *testing.T) {
	action := PromotionAction{Type: "fixed", Value: decimal.NewFromInt(50)}
	out, err := action.Apply(&PromotionInput{Sku: "sku1", Quantity: 1, Price: types.MustMoney("20.00")})
	if err != nil {
		t.Fatal(err)
	}
	if !out.Discount.Equal(types.MustMoney("20.00")) {
		t.Errorf("Expected discount capped to 20.00, got %s", out.Discount)
	}
}

func TestInvalidActions(t *testing.T) {
	input := &PromotionInput{Sku: "sku1", Quantity: 1, Price: types.MustMoney("20.00")}
	cases := []PromotionAction{
		{Type: "percentage", Value: decimal.NewFromInt(101)},
		{Type: "fixed", Value: decimal.NewFromInt(-1)},
		{Type: "bogus", Value: decimal.NewFromInt(1)},
	}
	for _, action := range cases {
		if _, err := action.Apply(input); err == nil {
			t.Errorf("Expected %s %s to fail", action.Type, action.Value)
		}
	}
}

func TestApplyAllSkipsUnavailable(t *testing.T) {
	available := Promotion{Id: 1, Articles: []PromotionArticle{{Sku: "a", Actions: []PromotionAction{{Type: "percentage", Value: decimal.NewFromInt(10)}}}}}
	missing := Promotion{Id: 2, Articles: []PromotionArticle{{Sku: "z", Actions: []PromotionAction{{Type: "fixed", Value: decimal.NewFromInt(10)}}}}}
	inputs := []*PromotionInput{
		{Sku: "a", Quantity: 2, Price: types.MustMoney("45.55")},
		{Sku: "b", Quantity: 1, Price: types.MustMoney("10.00")},
	}
	out, err := ApplyAll([]Promotion{available, missing}, inputs)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].PromotionId != 1 {
		t.Fatalf("Expected one output from promotion 1, got %+v", out)
	}
	// 4.555 rounds half-up
	if !TotalDiscount(out).Equal(types.MustMoney("4.56")) {
		t.Errorf("Expected 4.56, got %s", TotalDiscount(out))
	}
}

func TestApplyNotAvailable(t *testing.T) {
	p := Promotion{Id: 3, Articles: []PromotionArticle{{Sku: "x"}}}
	_, err := p.Apply(&PromotionInput{Sku: "y", Quantity: 1})
	if !errors.Is(err, ErrNotAvailable) {
		t.Errorf("Expected ErrNotAvailable, got %v", err)
	}
}

func TestDiskPromotionStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "promotions.json")
	data := `{"promotions":[{"id":7,"name":"Spring","articles":[{"sku":"a","actions":[{"type":"fixed","value":"2.50"}]}]}]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	storage := &DiskPromotionStorage{Path: path}
	promotions, err := storage.GetPromotions()
	if err != nil {
		t.Fatal(err)
	}
	if len(promotions) != 1 || promotions[0].Id != 7 {
		t.Fatalf("Unexpected promotions %+v", promotions)
	}
	if !promotions[0].Articles[0].Actions[0].Value.Equal(decimal.RequireFromString("2.5")) {
		t.Errorf("Unexpected action value %s", promotions[0].Articles[0].Actions[0].Value)
	}
}
