package service

import (
	"context"
	"testing"

	"rebalancer/internal/domain"
	mock_repository "rebalancer/internal/repository/mocks"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testPortfolio(t *testing.T) *domain.Portfolio {
	t.Helper()

	meta, err := domain.NewStock("META", decimal.NewFromInt(585))
	require.NoError(t, err)
	aapl, err := domain.NewStock("AAPL", decimal.NewFromInt(228))
	require.NoError(t, err)

	metaHolding, err := domain.NewHolding(meta, decimal.NewFromInt(50))
	require.NoError(t, err)
	aaplHolding, err := domain.NewHolding(aapl, decimal.NewFromInt(80))
	require.NoError(t, err)

	allocation, err := domain.NewAllocation(map[string]decimal.Decimal{
		"META": decimal.NewFromFloat(0.4),
		"AAPL": decimal.NewFromFloat(0.3),
		"NVDA": decimal.NewFromFloat(0.3),
	})
	require.NoError(t, err)

	portfolio, err := domain.NewPortfolio(
		[]domain.Holding{metaHolding, aaplHolding},
		allocation,
		decimal.NewFromInt(2000),
	)
	require.NoError(t, err)

	return portfolio
}

func Test_rebalanceServiceHandler_Run(t *testing.T) {
	t.Run("resolves quotes for allocated but unheld tickers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockPriceRepository(ctrl)

		handler := rebalanceServiceHandler{
			PriceRepository: priceRepository,
		}

		priceRepository.EXPECT().
			Get(gomock.Any(), "NVDA").
			Return(decimal.NewFromInt(131), nil)

		out, err := handler.Run(context.Background(), RunInput{
			Portfolio: testPortfolio(t),
			Threshold: decimal.Zero,
		})
		require.NoError(t, err)
		require.Nil(t, out.RebalancerRunID)

		// total value is 50*585 + 80*228 + 2000 = 49490, all of NVDA's 30%
		// target is bought from the placeholder position
		require.Len(t, out.Result.Warnings, 1)

		var nvdaTrade *domain.Trade
		for i := range out.Result.Trades {
			if out.Result.Trades[i].Ticker == "NVDA" {
				nvdaTrade = &out.Result.Trades[i]
			}
		}
		require.NotNil(t, nvdaTrade)
		require.Equal(t, domain.TradeActionBuy, nvdaTrade.Action)
		require.True(t, nvdaTrade.Value.Equal(decimal.NewFromInt(14847)), "got %s", nvdaTrade.Value.String())
	})

	t.Run("inline quotes skip the price repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockPriceRepository(ctrl)

		handler := rebalanceServiceHandler{
			PriceRepository: priceRepository,
		}

		// no EXPECT on the mock: any call fails the test
		out, err := handler.Run(context.Background(), RunInput{
			Portfolio: testPortfolio(t),
			Threshold: decimal.Zero,
			Quotes: map[string]decimal.Decimal{
				"nvda": decimal.NewFromInt(131),
			},
		})
		require.NoError(t, err)
		require.False(t, out.Result.IsBalanced())
	})

	t.Run("quote resolution failure aborts the run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockPriceRepository(ctrl)

		handler := rebalanceServiceHandler{
			PriceRepository: priceRepository,
		}

		priceRepository.EXPECT().
			Get(gomock.Any(), "NVDA").
			Return(decimal.Zero, context.DeadlineExceeded)

		_, err := handler.Run(context.Background(), RunInput{
			Portfolio: testPortfolio(t),
			Threshold: decimal.Zero,
		})
		require.ErrorContains(t, err, "failed to resolve quote for NVDA")
	})

	t.Run("no price repository defers missing quotes to the core", func(t *testing.T) {
		handler := rebalanceServiceHandler{}

		_, err := handler.Run(context.Background(), RunInput{
			Portfolio: testPortfolio(t),
			Threshold: decimal.Zero,
		})

		var missingPrice domain.MissingPriceError
		require.ErrorAs(t, err, &missingPrice)
		require.Equal(t, "NVDA", missingPrice.Ticker)
	})

	t.Run("runs are deterministic", func(t *testing.T) {
		handler := rebalanceServiceHandler{}
		input := RunInput{
			Portfolio: testPortfolio(t),
			Threshold: decimal.NewFromInt(100),
			Quotes: map[string]decimal.Decimal{
				"NVDA": decimal.NewFromInt(131),
			},
		}

		first, err := handler.Run(context.Background(), input)
		require.NoError(t, err)
		second, err := handler.Run(context.Background(), input)
		require.NoError(t, err)

		if diff := cmp.Diff(first.Result, second.Result); diff != "" {
			t.Errorf("results differ (-first +second):\n%s", diff)
		}
	})

	t.Run("nil portfolio is rejected", func(t *testing.T) {
		handler := rebalanceServiceHandler{}
		_, err := handler.Run(context.Background(), RunInput{})
		require.ErrorContains(t, err, "no portfolio")
	})
}
