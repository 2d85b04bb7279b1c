package models

import "github.com/shopspring/decimal"

// MonthlyRevenue is a dashboard aggregation row: confirmed revenue grouped by
// calendar month.
type MonthlyRevenue struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
	Count   int64           `json:"count"`
}
