package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TradeAction is a closed enum. It stays string-comparable
// (TradeActionBuy == "BUY") so serialization and log output are free of
// mapping tables, while the type still prevents typos at compile time.
type TradeAction string

const (
	TradeActionBuy  TradeAction = "BUY"
	TradeActionSell TradeAction = "SELL"
)

const (
	// rounding is bankers (half-even), applied only when a Trade is
	// materialized; intermediate arithmetic stays exact
	sharePrecision = 4
	valuePrecision = 2
)

// Trade is one actionable order produced by a rebalance. Value is the
// absolute monetary amount moved, never signed.
type Trade struct {
	Ticker string          `json:"ticker"`
	Action TradeAction     `json:"action"`
	Shares decimal.Decimal `json:"shares"`
	Value  decimal.Decimal `json:"value"`
}

func newTrade(ticker string, action TradeAction, shares, value decimal.Decimal) Trade {
	return Trade{
		Ticker: ticker,
		Action: action,
		Shares: shares.RoundBank(sharePrecision),
		Value:  value.Abs().RoundBank(valuePrecision),
	}
}

func (t Trade) String() string {
	return fmt.Sprintf("%s %s shares of %s (~$%s)", t.Action, t.Shares, t.Ticker, t.Value)
}

// RebalanceResult is the structured output of a rebalance: the trades to
// execute plus non-fatal warnings. The aggregates below are derived from
// Trades on every call, so they can never disagree with the trade list.
type RebalanceResult struct {
	Trades   []Trade  `json:"trades"`
	Warnings []string `json:"warnings"`
}

func (r RebalanceResult) TotalBuyValue() decimal.Decimal {
	return r.sumValues(TradeActionBuy)
}

func (r RebalanceResult) TotalSellValue() decimal.Decimal {
	return r.sumValues(TradeActionSell)
}

// NetCashFlow is sells minus buys: positive means the rebalance frees
// cash, negative means idle cash is being deployed.
func (r RebalanceResult) NetCashFlow() decimal.Decimal {
	return r.TotalSellValue().Sub(r.TotalBuyValue())
}

// IsBalanced reports whether every ticker was already within threshold of
// its target.
func (r RebalanceResult) IsBalanced() bool {
	return len(r.Trades) == 0
}

func (r RebalanceResult) sumValues(action TradeAction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range r.Trades {
		if t.Action == action {
			total = total.Add(t.Value)
		}
	}
	return total
}
