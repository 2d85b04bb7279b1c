package billing

import "github.com/shopspring/decimal"

// AmountCents converts a plan price to the smallest currency unit using
// round-half-up on the cents value. A plan priced 19.999 charges 2000 cents,
// never 1999.
func AmountCents(price decimal.Decimal) int64 {
	return price.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// AmountFromCents converts a cents value back to decimal currency units for
// snapshotting on the ledger entry.
func AmountFromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
