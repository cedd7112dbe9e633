package domain

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// RebalanceInput configures a single rebalance pass.
type RebalanceInput struct {
	// Threshold is the minimum monetary deviation worth trading. It is
	// evaluated on dollar value, never share count, because the cost of
	// trading is a monetary concern. Zero means every deviation trades.
	Threshold decimal.Decimal

	// Quotes supplies prices for allocated tickers that are not currently
	// held. Held tickers always price from their own holding.
	Quotes map[string]decimal.Decimal
}

// Rebalance computes the trades that move the portfolio toward its target
// allocation, deploying idle cash along the way. It is a pure function of
// the portfolio snapshot and its input: the same call twice returns the
// same result.
//
// Tickers held but not allocated are fully liquidated. Tickers allocated
// but not held become zero-share placeholders priced from Quotes, with a
// warning; an unresolvable price is a MissingPriceError. Surviving trades
// come back sells first, alphabetical within each side, so that executed
// in order the sells fund the buys.
func (p *Portfolio) Rebalance(in RebalanceInput) (*RebalanceResult, error) {
	if in.Threshold.IsNegative() {
		return nil, InvalidThresholdError{Threshold: in.Threshold.String()}
	}

	quotes := make(map[string]decimal.Decimal, len(in.Quotes))
	for ticker, price := range in.Quotes {
		quotes[NormalizeTicker(ticker)] = price
	}

	total := p.TotalValue()
	warnings := []string{}

	// resolve placeholder prices up front so a missing quote fails the
	// whole call instead of emitting a partial trade list
	placeholderPrices := map[string]decimal.Decimal{}
	for _, ticker := range p.allocation.Tickers() {
		weight, _ := p.allocation.Weight(ticker)
		if _, held := p.holdings[ticker]; held || weight.IsZero() {
			continue
		}
		price, ok := quotes[ticker]
		if !ok {
			return nil, MissingPriceError{Ticker: ticker}
		}
		if price.IsNegative() {
			return nil, NegativePriceError{Ticker: ticker, Price: price.String()}
		}
		placeholderPrices[ticker] = price
		warnings = append(warnings, fmt.Sprintf(
			"%s is allocated %s%% but not held; buying from a zero-share position",
			ticker, weight.Shift(2).String(),
		))
	}

	trades := []Trade{}
	for _, ticker := range p.universe() {
		weight, _ := p.allocation.Weight(ticker) // zero when unallocated: liquidate

		var price, current decimal.Decimal
		holding, held := p.holdings[ticker]
		if held {
			price = holding.Stock.Price
			current = holding.MarketValue()
		} else {
			price = placeholderPrices[ticker]
		}

		target := total.Mul(weight)
		delta := target.Sub(current)

		if delta.IsZero() || delta.Abs().LessThan(in.Threshold) {
			continue
		}

		if weight.IsZero() && held {
			// full liquidation: sell the exact share count rather than
			// re-deriving it from delta/price
			trades = append(trades, newTrade(ticker, TradeActionSell, holding.Shares, current))
			continue
		}

		if price.IsZero() {
			// a deviation exists but cannot be sized into shares
			warnings = append(warnings, fmt.Sprintf("cannot size trade for %s: price is zero", ticker))
			continue
		}

		action := TradeActionBuy
		if delta.IsNegative() {
			action = TradeActionSell
		}
		shares := delta.Abs().Div(price)
		if shares.RoundBank(sharePrecision).IsZero() {
			continue
		}
		trades = append(trades, newTrade(ticker, action, shares, delta))
	}

	sort.Slice(trades, func(i, j int) bool {
		if trades[i].Action != trades[j].Action {
			return trades[i].Action == TradeActionSell
		}
		return trades[i].Ticker < trades[j].Ticker
	})

	return &RebalanceResult{Trades: trades, Warnings: warnings}, nil
}

// universe is the union of held and allocated tickers, alphabetical.
func (p *Portfolio) universe() []string {
	seen := make(map[string]bool, len(p.holdings)+p.allocation.Len())
	tickers := []string{}
	for ticker := range p.holdings {
		seen[ticker] = true
		tickers = append(tickers, ticker)
	}
	for _, ticker := range p.allocation.Tickers() {
		if !seen[ticker] {
			tickers = append(tickers, ticker)
		}
	}
	sort.Strings(tickers)
	return tickers
}
