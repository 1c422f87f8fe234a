package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// MaxAmount is the largest value a decimal(15,2) amount column holds.
var MaxAmount = decimal.RequireFromString("9999999999999.99")

// NewTransaction is the input of the add operation. ID and Date are assigned
// by the store, never by the caller.
type NewTransaction struct {
	Amount   decimal.Decimal `json:"amount" validate:"gt=0,lte=9999999999999.99"`
	Type     TransactionType `json:"type" validate:"required,oneof=income expense"`
	Category string          `json:"category" validate:"required,max=64"`
	Currency string          `json:"currency" validate:"required,iso4217"`
	Notes    string          `json:"notes" validate:"max=500"`
}

// ValidationError reports the first invalid field of an input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// IsValidationError reports whether err carries a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// decimal.Decimal is a struct; expose it as a float so gt/lt tags apply.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// Normalize trims text fields, rounds the amount to cents and fills in the
// currency when the caller left it empty.
func (n NewTransaction) Normalize(defaultCurrency string) NewTransaction {
	n.Amount = n.Amount.Round(2)
	n.Type = TransactionType(strings.TrimSpace(string(n.Type)))
	n.Category = strings.TrimSpace(n.Category)
	n.Currency = strings.ToUpper(strings.TrimSpace(n.Currency))
	if n.Currency == "" {
		n.Currency = strings.ToUpper(defaultCurrency)
	}
	n.Notes = strings.TrimSpace(n.Notes)
	return n
}

func (n NewTransaction) Validate() error {
	err := validate.Struct(n)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}
	fe := verrs[0]
	return &ValidationError{Field: fe.Field(), Message: fieldMessage(fe)}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be '%s'", fe.Field(), strings.Join(strings.Fields(fe.Param()), "' or '"))
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "iso4217":
		return fmt.Sprintf("%s must be an ISO 4217 currency code", fe.Field())
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
