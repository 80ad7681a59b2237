package limitcalc

// Display precision of computed values.
const (
	pricePlaces   = 4 // prices, market values, profits
	percentPlaces = 2
)

// InitialSnapshot is the holding valued at the current price.
type InitialSnapshot struct {
	Position             Quantity
	CostPrice            Money
	CurrentPrice         Money
	TotalCost            Money
	CurrentMarketValue   Money
	CurrentProfit        Money
	CurrentProfitPercent Percent
}

// ComputeInitialSnapshot values the position at the current price.
//
// It performs no validation: costPrice must not be zero, see HoldingInput.Validate.
func ComputeInitialSnapshot(position Quantity, costPrice, currentPrice Money) InitialSnapshot {
	totalCost := position.MulPrice(costPrice)
	marketValue := position.MulPrice(currentPrice)
	return InitialSnapshot{
		Position:             position,
		CostPrice:            costPrice.Round(pricePlaces),
		CurrentPrice:         currentPrice.Round(pricePlaces),
		TotalCost:            totalCost.Round(pricePlaces),
		CurrentMarketValue:   marketValue.Round(pricePlaces),
		CurrentProfit:        marketValue.Sub(totalCost).Round(pricePlaces),
		CurrentProfitPercent: currentPrice.Sub(costPrice).Ratio(costPrice).Round(percentPlaces),
	}
}

// MarshalJSON writes the snapshot fields in a stable order.
func (s InitialSnapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("position", s.Position)
	w.Append("costPrice", s.CostPrice)
	w.Append("currentPrice", s.CurrentPrice)
	w.Append("totalCost", s.TotalCost)
	w.Append("currentMarketValue", s.CurrentMarketValue)
	w.Append("currentProfit", s.CurrentProfit)
	w.Append("currentProfitPercent", s.CurrentProfitPercent)
	return w.MarshalJSON()
}
