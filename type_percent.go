package limitcalc

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Percent is a percentage: P(10) is 10%.
type Percent struct {
	value decimal.Decimal
}

func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

func (p Percent) Decimal() decimal.Decimal { return p.value }
func (p Percent) Equal(q Percent) bool     { return p.value.Equal(q.value) }
func (p Percent) IsZero() bool             { return p.value.IsZero() }
func (p Percent) Neg() Percent             { return Percent{value: p.value.Neg()} }
func (p Percent) Round(places int32) Percent {
	return Percent{value: p.value.Round(places)}
}

// Fraction returns p/100.
func (p Percent) Fraction() decimal.Decimal { return p.value.Div(hundred) }

func (p Percent) String() string { return p.value.StringFixed(2) + "%" }

// SignedString always carries the sign, "+0.00%" included.
func (p Percent) SignedString() string {
	if p.value.IsNegative() {
		return p.String()
	}
	return "+" + p.String()
}

func (p Percent) MarshalJSON() ([]byte, error) { return []byte(p.value.String()), nil }

func (p *Percent) UnmarshalJSON(b []byte) error { return p.value.UnmarshalJSON(b) }

// Set implements flag.Value.
func (p *Percent) Set(s string) error {
	d, err := parseDecimal(s)
	if err != nil {
		return err
	}
	p.value = d
	return nil
}
