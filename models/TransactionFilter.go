package models

import (
	"strings"
	"time"
)

// TransactionFilter narrows list, summary and report reads. Zero fields do
// not filter. From and To are whole UTC days, both inclusive.
type TransactionFilter struct {
	Currency string    `form:"currency" json:"currency,omitempty" validate:"omitempty,iso4217"`
	From     time.Time `form:"from" time_format:"2006-01-02" time_utc:"1" json:"from,omitempty"`
	To       time.Time `form:"to" time_format:"2006-01-02" time_utc:"1" json:"to,omitempty"`
}

func (f TransactionFilter) IsZero() bool {
	return f.Currency == "" && f.From.IsZero() && f.To.IsZero()
}

func (f TransactionFilter) Normalize() TransactionFilter {
	f.Currency = strings.ToUpper(strings.TrimSpace(f.Currency))
	if !f.From.IsZero() {
		f.From = f.From.UTC().Truncate(24 * time.Hour)
	}
	if !f.To.IsZero() {
		f.To = f.To.UTC().Truncate(24 * time.Hour)
	}
	return f
}

func (f TransactionFilter) Validate() error {
	if err := validate.Struct(f); err != nil {
		return &ValidationError{Field: "currency", Message: "currency must be an ISO 4217 currency code"}
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.To.Before(f.From) {
		return &ValidationError{Field: "to", Message: "to must not be before from"}
	}
	return nil
}

// Until is the exclusive upper bound of the date range, or zero when open.
func (f TransactionFilter) Until() time.Time {
	if f.To.IsZero() {
		return time.Time{}
	}
	return f.To.AddDate(0, 0, 1)
}
