package types

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyRoundHalfUp(t *testing.T) {
	cases := map[string]string{
		"1.005":  "1.01",
		"1.004":  "1.00",
		"2.675":  "2.68",
		"0.125":  "0.13",
		"10":     "10.00",
		"0.0049": "0.00",
	}
	for in, want := range cases {
		got := MustMoney(in).Round().String()
		if got != want {
			t.Errorf("round(%s) = %s, want %s", in, got, want)
		}
	}
}

func TestMoneyMinorUnits(t *testing.T) {
	if got := MustMoney("45.555").MinorUnits(); got != 4556 {
		t.Errorf("expected 4556 cents, got %d", got)
	}
	if got := MoneyFromCents(1999); !got.Equal(MustMoney("19.99")) {
		t.Errorf("expected 19.99, got %s", got)
	}
}

func TestMoneyPercent(t *testing.T) {
	got := MustMoney("50.00").Percent(decimal.NewFromInt(10))
	if !got.Equal(MustMoney("5")) {
		t.Errorf("expected 10%% of 50 to be 5, got %s", got)
	}
}

func TestSumMoneyAndMin(t *testing.T) {
	total := SumMoney(MustMoney("1.10"), MustMoney("2.20"), MustMoney("3.30"))
	if !total.Equal(MustMoney("6.60")) {
		t.Errorf("expected 6.60, got %s", total)
	}
	if got := total.Min(MustMoney("5")); !got.Equal(MustMoney("5")) {
		t.Errorf("expected min 5, got %s", got)
	}
	if !SumMoney().IsZero() {
		t.Error("empty sum should be zero")
	}
}

func TestMoneyJSON(t *testing.T) {
	var m Money
	if err := m.UnmarshalJSON([]byte(`"12.50"`)); err != nil {
		t.Fatal(err)
	}
	if !m.Equal(MustMoney("12.5")) {
		t.Errorf("expected 12.5, got %s", m)
	}
	if _, err := NewMoney("twelve"); err == nil {
		t.Error("expected error for malformed amount")
	}
}
