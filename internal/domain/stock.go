package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Stock is market reference data: a ticker and its current price.
// Immutable once constructed.
type Stock struct {
	Ticker string
	Price  decimal.Decimal
}

func NewStock(ticker string, price decimal.Decimal) (Stock, error) {
	normalized := NormalizeTicker(ticker)
	if normalized == "" {
		return Stock{}, EmptyTickerError{}
	}
	if price.IsNegative() {
		return Stock{}, NegativePriceError{Ticker: normalized, Price: price.String()}
	}
	return Stock{Ticker: normalized, Price: price}, nil
}

// NormalizeTicker is the single normalization rule applied before any
// ticker comparison: trim and uppercase.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// Holding is portfolio-specific: how many shares of a stock we own.
// Separate from Stock because market data is shared while a position is ours.
type Holding struct {
	Stock  Stock
	Shares decimal.Decimal
}

func NewHolding(stock Stock, shares decimal.Decimal) (Holding, error) {
	if shares.IsNegative() {
		return Holding{}, NegativeSharesError{Ticker: stock.Ticker, Shares: shares.String()}
	}
	return Holding{Stock: stock, Shares: shares}, nil
}

// MarketValue is the current worth of the position, exact.
func (h Holding) MarketValue() decimal.Decimal {
	return h.Shares.Mul(h.Stock.Price)
}
