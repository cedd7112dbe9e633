package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// allocationSumEpsilon tolerates decimal rounding from input parsing
// (e.g. three 0.333 weights), not genuine misconfiguration; 0.99 fails.
var allocationSumEpsilon = decimal.New(1, -3) // 0.001

var one = decimal.New(1, 0)

// Allocation maps tickers to target weights summing to 1. All validation
// happens here, at construction; an Allocation that exists is consistent
// for its lifetime and is never re-checked at rebalance time.
type Allocation struct {
	weights map[string]decimal.Decimal
}

func NewAllocation(weights map[string]decimal.Decimal) (Allocation, error) {
	normalized := make(map[string]decimal.Decimal, len(weights))
	sum := decimal.Zero
	for ticker, weight := range weights {
		key := NormalizeTicker(ticker)
		if key == "" {
			return Allocation{}, EmptyTickerError{}
		}
		if _, ok := normalized[key]; ok {
			return Allocation{}, DuplicateTickerError{Ticker: key}
		}
		if weight.IsNegative() || weight.GreaterThan(one) {
			return Allocation{}, InvalidWeightError{Ticker: key, Weight: weight.String()}
		}
		normalized[key] = weight
		sum = sum.Add(weight)
	}

	if sum.Sub(one).Abs().GreaterThan(allocationSumEpsilon) {
		return Allocation{}, AllocationSumError{Sum: sum.String()}
	}

	return Allocation{weights: normalized}, nil
}

// Weight returns the target weight for a ticker, and whether the ticker is
// part of the allocation at all.
func (a Allocation) Weight(ticker string) (decimal.Decimal, bool) {
	w, ok := a.weights[NormalizeTicker(ticker)]
	return w, ok
}

// Tickers returns the allocated tickers in alphabetical order.
func (a Allocation) Tickers() []string {
	tickers := make([]string, 0, len(a.weights))
	for ticker := range a.weights {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)
	return tickers
}

func (a Allocation) Len() int {
	return len(a.weights)
}
