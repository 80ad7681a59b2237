package limitcalc

import (
	"fmt"

	"github.com/shopspring/decimal"
)

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

// parseDecimal reads a user supplied number.
func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return d, nil
}

// Quantity is a number of units held (shares, fund units).
type Quantity struct {
	value decimal.Decimal
}

func Q[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

func (q Quantity) Decimal() decimal.Decimal   { return q.value }
func (q Quantity) Equal(p Quantity) bool      { return q.value.Equal(p.value) }
func (q Quantity) IsPositive() bool           { return q.value.IsPositive() }
func (q Quantity) IsZero() bool               { return q.value.IsZero() }
func (q Quantity) MulPrice(p Money) Money     { return Money{value: q.value.Mul(p.value)} }
func (q Quantity) String() string             { return q.value.String() }

// Quantity is persisted as a plain JSON number.
func (q Quantity) MarshalJSON() ([]byte, error) { return []byte(q.value.String()), nil }

func (q *Quantity) UnmarshalJSON(b []byte) error { return q.value.UnmarshalJSON(b) }

// Set implements flag.Value.
func (q *Quantity) Set(s string) error {
	d, err := parseDecimal(s)
	if err != nil {
		return err
	}
	q.value = d
	return nil
}
