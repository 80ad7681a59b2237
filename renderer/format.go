package renderer

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Default display precision.
const (
	DefaultPercentDecimals = 2
	DefaultAmountDecimals  = 4
)

// DefaultCurrency is the quotation currency of the limit markets the tool is
// made for.
const DefaultCurrency = money.CNY

// symbols overrides go-money graphemes that differ from the usual price
// notation (go-money writes CNY as a trailing 元).
var symbols = map[string]string{
	money.CNY: "¥",
}

// Formatter formats prices, amounts and percents for display. All rounding is
// half away from zero.
type Formatter struct {
	code    string
	symbol  string
	decimal string // decimal separator
}

// NewFormatter returns a Formatter for the ISO 4217 currency code.
func NewFormatter(code string) (*Formatter, error) {
	cur := money.GetCurrency(code)
	if cur == nil {
		return nil, fmt.Errorf("unknown currency %q", code)
	}
	symbol, ok := symbols[cur.Code]
	if !ok {
		symbol = cur.Grapheme
	}
	return &Formatter{code: cur.Code, symbol: symbol, decimal: cur.Decimal}, nil
}

// Default is the Formatter of the DefaultCurrency.
var Default = must(NewFormatter(DefaultCurrency))

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Currency returns the currency code.
func (f *Formatter) Currency() string { return f.code }

// number formats |v| with exactly 'decimals' decimals, without grouping.
func (f *Formatter) number(v decimal.Decimal, decimals int) string {
	rounded := v.Abs().Round(int32(decimals))
	minor := rounded.Shift(int32(decimals))
	if !minor.BigInt().IsInt64() {
		// beyond go-money range, compounding can get there.
		return strings.Replace(rounded.StringFixed(int32(decimals)), ".", f.decimal, 1)
	}
	return money.NewFormatter(decimals, f.decimal, "", "", "1").Format(minor.IntPart())
}

// sign returns "-" for values that display as negative, "+" otherwise.
func sign(v decimal.Decimal) string {
	if v.IsNegative() {
		return "-"
	}
	return "+"
}

// Percent formats v with an explicit sign and a % suffix: "+5.50%".
func (f *Formatter) Percent(v decimal.Decimal, decimals int) string {
	return sign(v) + f.number(v, decimals) + "%"
}

// Amount formats v prefixed by the currency symbol, with an explicit sign: "¥+100.5000".
func (f *Formatter) Amount(v decimal.Decimal, decimals int) string {
	return f.symbol + sign(v) + f.number(v, decimals)
}

// Price formats v prefixed by the currency symbol, unsigned: "¥9.9990".
func (f *Formatter) Price(v decimal.Decimal, decimals int) string {
	if v.IsNegative() {
		return f.symbol + "-" + f.number(v, decimals)
	}
	return f.symbol + f.number(v, decimals)
}

// FormatPercent formats v with the Default formatter.
func FormatPercent(v decimal.Decimal, decimals int) string { return Default.Percent(v, decimals) }

// FormatAmount formats v with the Default formatter.
func FormatAmount(v decimal.Decimal, decimals int) string { return Default.Amount(v, decimals) }

// FormatPrice formats v with the Default formatter.
func FormatPrice(v decimal.Decimal, decimals int) string { return Default.Price(v, decimals) }
