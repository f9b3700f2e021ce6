package finsight

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Quantity represents a dimensionless quantity, such as a number of shares.
type Quantity struct {
	value decimal.Decimal
}

// Q creates a Quantity.
func Q[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

// ParseQuantity parses a decimal quantity like "50" or "0.5".
func ParseQuantity(str string) (Quantity, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(str))
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid quantity %q: %w", str, err)
	}
	return Quantity{value: v}, nil
}

func (t Quantity) Equal(p Quantity) bool    { return t.value.Equal(p.value) }
func (t Quantity) LessThan(p Quantity) bool { return t.value.LessThan(p.value) }
func (t Quantity) Add(p Quantity) Quantity  { return Quantity{value: t.value.Add(p.value)} }
func (t Quantity) Sub(p Quantity) Quantity  { return Quantity{value: t.value.Sub(p.value)} }
func (t Quantity) Mul(p Quantity) Quantity  { return Quantity{value: t.value.Mul(p.value)} }
func (t Quantity) Div(p Quantity) Quantity  { return Quantity{value: t.value.Div(p.value)} }
func (t Quantity) IsNegative() bool         { return t.value.IsNegative() }
func (t Quantity) IsPositive() bool         { return t.value.IsPositive() }
func (t Quantity) IsZero() bool             { return t.value.IsZero() }
func (t Quantity) String() string           { return t.value.String() }

// MarshalJSON implements the json.Marshaler interface for Quantity.
func (t Quantity) MarshalJSON() ([]byte, error) {
	return t.value.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Quantity.
func (t *Quantity) UnmarshalJSON(decimalBytes []byte) error {
	return t.value.UnmarshalJSON(decimalBytes)
}
