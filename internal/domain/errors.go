package domain

import "fmt"

// Construction and rebalance failures are typed so callers can branch on
// the kind with errors.As instead of string matching. Nothing is ever
// silently coerced; a bad input fails at the earliest point it is knowable.

type DuplicateTickerError struct {
	Ticker string
}

func (e DuplicateTickerError) Error() string {
	return fmt.Sprintf("duplicate ticker in allocation: %s", e.Ticker)
}

type AllocationSumError struct {
	Sum string
}

func (e AllocationSumError) Error() string {
	return fmt.Sprintf("allocation weights must sum to 1, got %s", e.Sum)
}

type InvalidWeightError struct {
	Ticker string
	Weight string
}

func (e InvalidWeightError) Error() string {
	return fmt.Sprintf("allocation weight for %s must be between 0 and 1, got %s", e.Ticker, e.Weight)
}

type DuplicateHoldingError struct {
	Ticker string
}

func (e DuplicateHoldingError) Error() string {
	return fmt.Sprintf("duplicate holding for ticker: %s", e.Ticker)
}

type NegativeSharesError struct {
	Ticker string
	Shares string
}

func (e NegativeSharesError) Error() string {
	return fmt.Sprintf("shares cannot be negative for %s, got %s", e.Ticker, e.Shares)
}

type NegativePriceError struct {
	Ticker string
	Price  string
}

func (e NegativePriceError) Error() string {
	return fmt.Sprintf("price cannot be negative for %s, got %s", e.Ticker, e.Price)
}

type NegativeCashError struct {
	Cash string
}

func (e NegativeCashError) Error() string {
	return fmt.Sprintf("cash cannot be negative, got %s", e.Cash)
}

type MissingPriceError struct {
	Ticker string
}

func (e MissingPriceError) Error() string {
	return fmt.Sprintf("no resolvable price for allocated ticker %s", e.Ticker)
}

type InvalidThresholdError struct {
	Threshold string
}

func (e InvalidThresholdError) Error() string {
	return fmt.Sprintf("threshold cannot be negative, got %s", e.Threshold)
}

type EmptyTickerError struct{}

func (e EmptyTickerError) Error() string {
	return "ticker cannot be empty"
}
