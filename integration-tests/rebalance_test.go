package integration_tests

import (
	"context"
	"strings"
	"testing"

	"rebalancer/internal/domain"
	"rebalancer/internal/repository"
	"rebalancer/internal/service"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type holdingRow struct {
	Ticker string          `csv:"ticker"`
	Shares decimal.Decimal `csv:"shares"`
	Price  decimal.Decimal `csv:"price"`
}

type allocationRow struct {
	Ticker string          `csv:"ticker"`
	Weight decimal.Decimal `csv:"weight"`
}

const holdingsCsv = `ticker,shares,price
META,50,585.00
AAPL,100,228.00
NVDA,200,131.00
`

const allocationCsv = `ticker,weight
META,0.40
AAPL,0.35
NVDA,0.25
`

// end to end: parse csv inputs, build the portfolio, run the service with
// a preloaded price feed, and check the numbers all the way through.
func TestRebalanceEndToEnd(t *testing.T) {
	holdingRows := []holdingRow{}
	require.NoError(t, gocsv.Unmarshal(strings.NewReader(holdingsCsv), &holdingRows))
	allocationRows := []allocationRow{}
	require.NoError(t, gocsv.Unmarshal(strings.NewReader(allocationCsv), &allocationRows))

	holdings := []domain.Holding{}
	for _, row := range holdingRows {
		stock, err := domain.NewStock(row.Ticker, row.Price)
		require.NoError(t, err)
		holding, err := domain.NewHolding(stock, row.Shares)
		require.NoError(t, err)
		holdings = append(holdings, holding)
	}

	weights := map[string]decimal.Decimal{}
	for _, row := range allocationRows {
		weights[row.Ticker] = row.Weight
	}
	allocation, err := domain.NewAllocation(weights)
	require.NoError(t, err)

	portfolio, err := domain.NewPortfolio(holdings, allocation, decimal.NewFromInt(2000))
	require.NoError(t, err)
	require.True(t, portfolio.TotalValue().Equal(decimal.NewFromInt(80250)))

	priceRepository := repository.NewPriceRepository()
	rebalanceService := service.NewRebalanceService(nil, priceRepository, nil, nil)

	out, err := rebalanceService.Run(context.Background(), service.RunInput{
		Portfolio: portfolio,
		Threshold: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	result := out.Result
	require.Empty(t, result.Warnings)
	require.Len(t, result.Trades, 3)

	// sells come first so their proceeds fund the buys
	nvda := result.Trades[0]
	require.Equal(t, "NVDA", nvda.Ticker)
	require.Equal(t, domain.TradeActionSell, nvda.Action)
	require.True(t, nvda.Shares.Equal(decimal.NewFromFloat(46.8511)), "got %s", nvda.Shares.String())
	require.True(t, nvda.Value.Equal(decimal.NewFromFloat(6137.50)), "got %s", nvda.Value.String())

	aapl := result.Trades[1]
	require.Equal(t, "AAPL", aapl.Ticker)
	require.Equal(t, domain.TradeActionBuy, aapl.Action)
	require.True(t, aapl.Shares.Equal(decimal.NewFromFloat(23.1908)), "got %s", aapl.Shares.String())

	meta := result.Trades[2]
	require.Equal(t, "META", meta.Ticker)
	require.Equal(t, domain.TradeActionBuy, meta.Action)
	require.True(t, meta.Shares.Equal(decimal.NewFromFloat(4.8718)), "got %s", meta.Shares.String())

	require.True(t, result.NetCashFlow().Equal(decimal.NewFromInt(-2000)), "got %s", result.NetCashFlow().String())
	require.False(t, result.IsBalanced())

	// the same snapshot rebalanced again yields the identical trade list
	again, err := rebalanceService.Run(context.Background(), service.RunInput{
		Portfolio: portfolio,
		Threshold: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	require.Equal(t, result.Trades, again.Result.Trades)
}
