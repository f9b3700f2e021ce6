package finsight

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency assumed for all amounts in a dataset. The
// CLI sets it from the -currency flag before decoding anything.
var DefaultCurrency = "USD"

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Money represents a monetary value. Amounts are signed: income is positive,
// expenses are negative. The zero value is zero in the default currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money in the default currency.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value), cur: DefaultCurrency}
}

// ParseMoney parses a decimal amount like "-156.89" into a Money in the
// default currency.
func ParseMoney(str string) (Money, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(str))
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", str, err)
	}
	return Money{value: v, cur: DefaultCurrency}, nil
}

// currency returns the money's currency.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the amount formatted with its currency symbol and grouping,
// e.g. "$1,234.56".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// SignedString returns the string representation of the money value with an
// explicit sign. 0 is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string             { return m.cur }
func (m Money) Equal(n Money) bool           { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                 { return m.value.IsZero() }
func (m Money) IsPositive() bool             { return m.value.IsPositive() }
func (m Money) IsNegative() bool             { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool        { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool     { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                   { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Abs() Money                   { return Money{value: m.value.Abs(), cur: m.cur} }
func (m Money) Mul(n Quantity) Money         { return Money{value: m.value.Mul(n.value), cur: m.cur} }
func (m Money) Div(n Quantity) Money         { return Money{value: m.value.Div(n.value), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// PercentOf returns m as a percentage of n. It returns 0 when n is zero, so
// that ratios over empty totals never divide by zero.
func (m Money) PercentOf(n Money) Percent {
	if n.value.IsZero() {
		return 0
	}
	return Percent(m.value.Div(n.value).InexactFloat64() * 100)
}

// AsFloat returns the amount as a float64. Reports use it for geometric
// derivations; exact arithmetic stays in decimal.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// MarshalJSON implements the json.Marshaler interface for Money. The amount
// is rounded to the currency's fraction, the monetary presentation boundary.
func (m Money) MarshalJSON() ([]byte, error) {
	rounded := m.value.Round(int32(m.currency().Fraction))
	return json.Marshal(struct {
		Amount   decimal.Decimal `json:"amount"`
		Currency string          `json:"currency"`
	}{Amount: rounded, Currency: m.cur})
}
