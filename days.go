package limitcalc

import (
	"fmt"
	"math"
	"strconv"
)

// Days is a projection horizon read from user input. It implements
// flag.Value and only accepts positive whole numbers ("3", "3.0"), so "2.5"
// is rejected with ErrInvalidDays instead of being truncated.
type Days int

func (d Days) String() string { return strconv.Itoa(int(d)) }

func (d *Days) Set(s string) error {
	v, err := parseDecimal(s)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDays, err)
	}
	if !v.IsInteger() || !v.IsPositive() || v.IntPart() > math.MaxInt32 {
		return fmt.Errorf("%w: got %s", ErrInvalidDays, s)
	}
	*d = Days(v.IntPart())
	return nil
}
