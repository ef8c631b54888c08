package monnify

import (
	"github.com/shopspring/decimal"
)

// Amount is a monetary value. It marshals to a JSON number with two fraction
// digits, e.g. 1000.00.
type Amount struct {
	decimal.Decimal
}

// NewAmount converts a float to an Amount.
func NewAmount(v float64) Amount {
	return Amount{decimal.NewFromFloat(v)}
}

// ParseAmount parses a decimal string such as "1000.50".
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{d}, nil
}

// AmountPtr is a helper for optional amount parameters.
func AmountPtr(v float64) *Amount {
	a := NewAmount(v)
	return &a
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.StringFixed(2)), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	return a.Decimal.UnmarshalJSON(data)
}
