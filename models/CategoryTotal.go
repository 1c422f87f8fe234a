package models

import "github.com/shopspring/decimal"

// CategoryTotal is one row of the per-category report.
type CategoryTotal struct {
	Category string          `json:"category"`
	Type     TransactionType `json:"type"`
	Total    decimal.Decimal `json:"total"`
	Count    int64           `json:"count"`
}
