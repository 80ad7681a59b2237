// Package limitcalc projects a stock holding under price-limit markets.
//
// Markets such as the Shanghai and Shenzhen exchanges cap the daily move of a
// stock to a fixed percentage of the previous close. Given a position, its
// cost price and the current price, the package computes:
//   - Initial snapshot: total cost, market value and profit at the current
//     price (ComputeInitialSnapshot).
//   - Limit trajectory: the day by day value of the holding if the stock hits
//     its limit-up every day, and independently if it hits its limit-down
//     every day (ProjectLimitTrajectory).
//
// All values are exact decimals. Limit prices are rounded at the 4th decimal
// on each day, toward the holder's disadvantage: limit-up prices are floored
// and limit-down prices are ceiled, and the next day compounds from the
// rounded price.
//
// This package serves as the foundational logic for the `lcs` command-line
// tool. Persistence of the last used inputs lives in package store, and
// presentation in package renderer.
package limitcalc
