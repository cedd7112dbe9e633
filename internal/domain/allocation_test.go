package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_NewAllocation(t *testing.T) {
	t.Run("valid allocation normalizes tickers", func(t *testing.T) {
		a, err := NewAllocation(map[string]decimal.Decimal{
			"meta ": MustDecimal("0.40"),
			"AAPL":  MustDecimal("0.35"),
			"nvda":  MustDecimal("0.25"),
		})
		require.NoError(t, err)

		require.Equal(t, []string{"AAPL", "META", "NVDA"}, a.Tickers())

		w, ok := a.Weight("meta")
		require.True(t, ok)
		require.True(t, w.Equal(MustDecimal("0.40")))
	})

	t.Run("weights must sum to 1", func(t *testing.T) {
		_, err := NewAllocation(map[string]decimal.Decimal{
			"META": MustDecimal("0.40"),
			"AAPL": MustDecimal("0.59"),
		})
		var sumErr AllocationSumError
		require.ErrorAs(t, err, &sumErr)
		require.Equal(t, "0.99", sumErr.Sum)
	})

	t.Run("tolerates parse rounding within epsilon", func(t *testing.T) {
		_, err := NewAllocation(map[string]decimal.Decimal{
			"A": MustDecimal("0.333"),
			"B": MustDecimal("0.333"),
			"C": MustDecimal("0.333"),
		})
		require.NoError(t, err)
	})

	t.Run("duplicate tickers differing only by case", func(t *testing.T) {
		_, err := NewAllocation(map[string]decimal.Decimal{
			"META": MustDecimal("0.5"),
			"meta": MustDecimal("0.5"),
		})
		var dupErr DuplicateTickerError
		require.ErrorAs(t, err, &dupErr)
		require.Equal(t, "META", dupErr.Ticker)
	})

	t.Run("negative weight", func(t *testing.T) {
		_, err := NewAllocation(map[string]decimal.Decimal{
			"META": MustDecimal("1.1"),
			"AAPL": MustDecimal("-0.1"),
		})
		var weightErr InvalidWeightError
		require.ErrorAs(t, err, &weightErr)
	})

	t.Run("empty allocation fails the sum check", func(t *testing.T) {
		_, err := NewAllocation(map[string]decimal.Decimal{})
		var sumErr AllocationSumError
		require.ErrorAs(t, err, &sumErr)
	})
}
