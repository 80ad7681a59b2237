package limitcalc

import (
	"errors"
	"fmt"

	"github.com/etnz/limitcalc/date"
)

// Validation errors. They are user input errors: callers match them with
// errors.Is to pick a message, they are never system faults.
var (
	ErrInvalidPosition     = errors.New("position must be greater than 0")
	ErrInvalidCostPrice    = errors.New("cost price must be greater than 0")
	ErrInvalidCurrentPrice = errors.New("current price must be greater than 0")
	ErrInvalidLimitPercent = errors.New("limit percent must be in (0, 100]")
	ErrInvalidDays         = errors.New("days must be a positive whole number")
)

// DefaultDays is the projection horizon when none is given.
const DefaultDays = 5

// HoldingInput is the position to project.
type HoldingInput struct {
	Position     Quantity
	CostPrice    Money
	CurrentPrice Money
	LimitPercent Percent
	Days         int

	// Start is the day the position is observed on. Optional: when set,
	// projected days are labeled with the following trading days.
	Start date.Date
}

// Validate checks the input rules in a fixed order and returns the first
// violation, wrapped with the offending value.
func (in HoldingInput) Validate() error {
	if !in.Position.IsPositive() {
		return fmt.Errorf("%w: got %v", ErrInvalidPosition, in.Position)
	}
	if !in.CostPrice.IsPositive() {
		return fmt.Errorf("%w: got %v", ErrInvalidCostPrice, in.CostPrice)
	}
	if !in.CurrentPrice.IsPositive() {
		return fmt.Errorf("%w: got %v", ErrInvalidCurrentPrice, in.CurrentPrice)
	}
	if l := in.LimitPercent.Decimal(); !l.IsPositive() || l.GreaterThan(hundred) {
		return fmt.Errorf("%w: got %v", ErrInvalidLimitPercent, in.LimitPercent.Decimal())
	}
	if in.Days <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDays, in.Days)
	}
	return nil
}
