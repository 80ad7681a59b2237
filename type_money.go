package limitcalc

import (
	"github.com/shopspring/decimal"
)

// Money represents a price or an amount in the major unit of the (implicit)
// quotation currency. Currency is a presentation concern, see package renderer.
type Money struct {
	value decimal.Decimal
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(q Quantity) Money            { return Money{value: m.value.Mul(q.value)} }
func (m Money) String() string                  { return m.value.String() }

// Scale multiplies m by a raw factor.
func (m Money) Scale(factor decimal.Decimal) Money { return Money{value: m.value.Mul(factor)} }

// Round rounds half away from zero to 'places' decimals.
func (m Money) Round(places int32) Money { return Money{value: m.value.Round(places)} }

// RoundFloor truncates toward -inf at 'places' decimals.
func (m Money) RoundFloor(places int32) Money { return Money{value: m.value.RoundFloor(places)} }

// RoundCeil rounds toward +inf at 'places' decimals.
func (m Money) RoundCeil(places int32) Money { return Money{value: m.value.RoundCeil(places)} }

// Ratio returns m/n expressed as a percentage.
// n must not be zero.
func (m Money) Ratio(n Money) Percent {
	return Percent{value: m.value.Div(n.value).Mul(hundred)}
}

// Money is persisted as a plain JSON number.
func (m Money) MarshalJSON() ([]byte, error) { return []byte(m.value.String()), nil }

func (m *Money) UnmarshalJSON(b []byte) error { return m.value.UnmarshalJSON(b) }

// Set implements flag.Value.
func (m *Money) Set(s string) error {
	d, err := parseDecimal(s)
	if err != nil {
		return err
	}
	m.value = d
	return nil
}
