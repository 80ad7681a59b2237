package limitcalc

import (
	"github.com/etnz/limitcalc/date"
	"github.com/shopspring/decimal"
)

// PathProjection is the state of the holding on one day of a limit path.
type PathProjection struct {
	Price       Money
	MarketValue Money
	// Profit is cumulative, against the total cost.
	Profit        Money
	ProfitPercent Percent
	// ActualProfit is the day over day change of the market value.
	ActualProfit Money
	// ActualProfitPercent is ActualProfit relative to the day's (new) market
	// value, not the previous one.
	ActualProfitPercent Percent
	ChangePercent       Percent
}

// DayProjection is one projected day on both paths.
type DayProjection struct {
	Day  int
	Date date.Date // zero when the input has no Start

	BasePrice        Money // current price of the input, for reference
	BasePriceForUp   Money
	BasePriceForDown Money

	LimitUp   PathProjection
	LimitDown PathProjection
}

// limitPath is the running state of one scenario. The up and down paths
// never read each other.
type limitPath struct {
	base     Money // price the day is computed from
	previous Money // market value of the previous day
	factor   decimal.Decimal
	round    func(Money) Money // tick rounding of the limit price
	change   Percent
}

func newLimitPath(position Quantity, currentPrice Money, change Percent, round func(Money) Money) *limitPath {
	return &limitPath{
		base:     currentPrice,
		previous: position.MulPrice(currentPrice),
		factor:   decimal.NewFromInt(1).Add(change.Fraction()),
		round:    round,
		change:   change,
	}
}

// step computes the next day and advances the path to it.
// The next base is the tick-rounded price, not the raw product.
func (p *limitPath) step(position Quantity, costPrice, totalCost Money) PathProjection {
	price := p.round(p.base.Scale(p.factor))
	marketValue := position.MulPrice(price)
	profit := marketValue.Sub(totalCost)
	actual := marketValue.Sub(p.previous)

	pp := PathProjection{
		Price:               price.Round(pricePlaces),
		MarketValue:         marketValue.Round(pricePlaces),
		Profit:              profit.Round(pricePlaces),
		ProfitPercent:       price.Sub(costPrice).Ratio(costPrice).Round(percentPlaces),
		ActualProfit:        actual.Round(pricePlaces),
		ActualProfitPercent: actualRatio(actual, marketValue).Round(percentPlaces),
		ChangePercent:       p.change.Round(percentPlaces),
	}

	p.base = price
	p.previous = marketValue
	return pp
}

// actualRatio is actual/marketValue in percent. A 100% limit-down wipes the
// market value out: the day it vanishes reads -100%, the following days 0%.
func actualRatio(actual, marketValue Money) Percent {
	if !marketValue.IsZero() {
		return actual.Ratio(marketValue)
	}
	if actual.IsZero() {
		return Percent{}
	}
	return P(-100)
}

// limitUpRound never overstates the capped price.
func limitUpRound(m Money) Money { return m.RoundFloor(pricePlaces) }

// limitDownRound never understates the floored price.
func limitDownRound(m Money) Money { return m.RoundCeil(pricePlaces) }

// ProjectLimitTrajectory projects the holding over in.Days consecutive
// limit-up days and, independently, consecutive limit-down days.
//
// Each day's limit price is derived from the previous day's limit price on the
// same path and rounded to the 4th decimal: down (floor) for limit-up, up
// (ceil) for limit-down. Prices compound without clamping.
//
// The input is validated first and the returned error wraps one of the
// ErrInvalid* sentinels.
func ProjectLimitTrajectory(in HoldingInput) ([]DayProjection, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	totalCost := in.Position.MulPrice(in.CostPrice)
	up := newLimitPath(in.Position, in.CurrentPrice, in.LimitPercent, limitUpRound)
	down := newLimitPath(in.Position, in.CurrentPrice, in.LimitPercent.Neg(), limitDownRound)

	var dates []date.Date
	if !in.Start.IsZero() {
		dates = make([]date.Date, 0, in.Days)
		for on := range in.Start.TradingDays(in.Days) {
			dates = append(dates, on)
		}
	}

	days := make([]DayProjection, 0, in.Days)
	for i := range in.Days {
		d := DayProjection{
			Day:              i + 1,
			BasePrice:        in.CurrentPrice.Round(pricePlaces),
			BasePriceForUp:   up.base.Round(pricePlaces),
			BasePriceForDown: down.base.Round(pricePlaces),
		}
		d.LimitUp = up.step(in.Position, in.CostPrice, totalCost)
		d.LimitDown = down.step(in.Position, in.CostPrice, totalCost)
		if dates != nil {
			d.Date = dates[i]
		}
		days = append(days, d)
	}
	return days, nil
}

// MarshalJSON writes the path fields in a stable order.
func (p PathProjection) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("price", p.Price)
	w.Append("marketValue", p.MarketValue)
	w.Append("profit", p.Profit)
	w.Append("profitPercent", p.ProfitPercent)
	w.Append("actualProfit", p.ActualProfit)
	w.Append("actualProfitPercent", p.ActualProfitPercent)
	w.Append("changePercent", p.ChangePercent)
	return w.MarshalJSON()
}

// MarshalJSON writes the day fields in a stable order, "date" only when set.
func (d DayProjection) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("day", d.Day)
	w.Optional("date", d.Date.String())
	w.Append("basePrice", d.BasePrice)
	w.Append("basePriceForUp", d.BasePriceForUp)
	w.Append("basePriceForDown", d.BasePriceForDown)
	w.Append("limitUp", d.LimitUp)
	w.Append("limitDown", d.LimitDown)
	return w.MarshalJSON()
}
