package billing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAmountCents(t *testing.T) {
	tests := []struct {
		price string
		want  int64
	}{
		{price: "19.99", want: 1999},
		{price: "19.999", want: 2000},
		{price: "19.994", want: 1999},
		{price: "19.995", want: 2000},
		{price: "20", want: 2000},
		{price: "0.01", want: 1},
	}

	for _, tt := range tests {
		price := decimal.RequireFromString(tt.price)
		if got := AmountCents(price); got != tt.want {
			t.Fatalf("AmountCents(%s) = %d, want %d", tt.price, got, tt.want)
		}
	}
}

func TestAmountFromCents(t *testing.T) {
	if got := AmountFromCents(2000); got.StringFixed(2) != "20.00" {
		t.Fatalf("AmountFromCents(2000) = %s, want 20.00", got)
	}
}
