package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Portfolio is a snapshot of holdings, a target allocation, and idle cash.
// Construction validates everything up front so a misconfigured portfolio
// is rejected when a human assembles it, not mid-rebalance. A constructed
// Portfolio is treated as immutable; Rebalance is a pure function of it.
type Portfolio struct {
	holdings   map[string]Holding
	allocation Allocation
	cash       decimal.Decimal
}

func NewPortfolio(holdings []Holding, allocation Allocation, cash decimal.Decimal) (*Portfolio, error) {
	if cash.IsNegative() {
		return nil, NegativeCashError{Cash: cash.String()}
	}

	byTicker := make(map[string]Holding, len(holdings))
	for _, h := range holdings {
		// NewStock/NewHolding already validated and normalized; holdings
		// built by hand are re-checked here so a raw struct can't slip in
		ticker := NormalizeTicker(h.Stock.Ticker)
		if ticker == "" {
			return nil, EmptyTickerError{}
		}
		if _, ok := byTicker[ticker]; ok {
			return nil, DuplicateHoldingError{Ticker: ticker}
		}
		if h.Stock.Price.IsNegative() {
			return nil, NegativePriceError{Ticker: ticker, Price: h.Stock.Price.String()}
		}
		if h.Shares.IsNegative() {
			return nil, NegativeSharesError{Ticker: ticker, Shares: h.Shares.String()}
		}
		h.Stock.Ticker = ticker
		byTicker[ticker] = h
	}

	return &Portfolio{
		holdings:   byTicker,
		allocation: allocation,
		cash:       cash,
	}, nil
}

// TotalValue is the market value of all holdings plus cash. Idle cash is
// capital to deploy, so it is part of the base every target is computed on.
func (p *Portfolio) TotalValue() decimal.Decimal {
	total := p.cash
	for _, h := range p.holdings {
		total = total.Add(h.MarketValue())
	}
	return total
}

func (p *Portfolio) Cash() decimal.Decimal {
	return p.cash
}

func (p *Portfolio) Allocation() Allocation {
	return p.allocation
}

// Holding returns the position for a ticker, if held.
func (p *Portfolio) Holding(ticker string) (Holding, bool) {
	h, ok := p.holdings[NormalizeTicker(ticker)]
	return h, ok
}

// HeldTickers returns held tickers in alphabetical order.
func (p *Portfolio) HeldTickers() []string {
	tickers := make([]string, 0, len(p.holdings))
	for ticker := range p.holdings {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)
	return tickers
}

// CurrentWeights reports each held ticker's share of total value.
// All zero when the portfolio is worth nothing.
func (p *Portfolio) CurrentWeights() map[string]decimal.Decimal {
	weights := make(map[string]decimal.Decimal, len(p.holdings))
	total := p.TotalValue()
	for ticker, h := range p.holdings {
		if total.IsZero() {
			weights[ticker] = decimal.Zero
			continue
		}
		weights[ticker] = h.MarketValue().Div(total)
	}
	return weights
}
