package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"rebalancer/internal/db/models/postgres/public/model"
	"rebalancer/internal/repository"
	mock_repository "rebalancer/internal/repository/mocks"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_tradingServiceHandler_ExecuteRun(t *testing.T) {
	t.Run("submits pending orders in repository order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)
		tradeOrderRepository := mock_repository.NewMockTradeOrderRepository(ctrl)

		handler := tradingServiceHandler{
			AlpacaRepository:     alpacaRepository,
			TradeOrderRepository: tradeOrderRepository,
		}

		runID := uuid.New()
		sellOrder := model.TradeOrder{
			TradeOrderID:   uuid.New(),
			Symbol:         "NVDA",
			Side:           model.TradeOrderSide_Sell,
			ExpectedAmount: decimal.NewFromFloat(6137.50),
			Status:         model.TradeOrderStatus_Pending,
		}
		buyOrder := model.TradeOrder{
			TradeOrderID:   uuid.New(),
			Symbol:         "AAPL",
			Side:           model.TradeOrderSide_Buy,
			ExpectedAmount: decimal.NewFromFloat(5287.50),
			Status:         model.TradeOrderStatus_Pending,
		}

		alpacaRepository.EXPECT().IsMarketOpen().Return(true, nil)
		tradeOrderRepository.EXPECT().
			ListForRun(runID).
			Return([]model.TradeOrder{sellOrder, buyOrder}, nil)

		submitted := []repository.AlpacaPlaceOrderRequest{}
		alpacaRepository.EXPECT().
			PlaceOrder(gomock.Any()).
			DoAndReturn(func(req repository.AlpacaPlaceOrderRequest) (*alpaca.Order, error) {
				submitted = append(submitted, req)
				return &alpaca.Order{ID: uuid.New().String()}, nil
			}).
			Times(2)
		tradeOrderRepository.EXPECT().
			Update(gomock.Nil(), sellOrder.TradeOrderID, gomock.Any(), gomock.Any()).
			Return(&sellOrder, nil)
		tradeOrderRepository.EXPECT().
			Update(gomock.Nil(), buyOrder.TradeOrderID, gomock.Any(), gomock.Any()).
			Return(&buyOrder, nil)

		err := handler.ExecuteRun(context.Background(), runID)
		require.NoError(t, err)

		require.Len(t, submitted, 2)
		require.Equal(t, "NVDA", submitted[0].Symbol)
		require.Equal(t, alpaca.Sell, submitted[0].Side)
		require.Equal(t, "AAPL", submitted[1].Symbol)
		require.Equal(t, alpaca.Buy, submitted[1].Side)
	})

	t.Run("refuses to trade while the market is closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)
		tradeOrderRepository := mock_repository.NewMockTradeOrderRepository(ctrl)

		handler := tradingServiceHandler{
			AlpacaRepository:     alpacaRepository,
			TradeOrderRepository: tradeOrderRepository,
		}

		alpacaRepository.EXPECT().IsMarketOpen().Return(false, nil)

		err := handler.ExecuteRun(context.Background(), uuid.New())
		require.ErrorContains(t, err, "market is closed")
	})

	t.Run("flags failed submissions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)
		tradeOrderRepository := mock_repository.NewMockTradeOrderRepository(ctrl)

		handler := tradingServiceHandler{
			AlpacaRepository:     alpacaRepository,
			TradeOrderRepository: tradeOrderRepository,
		}

		runID := uuid.New()
		order := model.TradeOrder{
			TradeOrderID:   uuid.New(),
			Symbol:         "META",
			Side:           model.TradeOrderSide_Buy,
			ExpectedAmount: decimal.NewFromFloat(2850),
			Status:         model.TradeOrderStatus_Pending,
		}

		alpacaRepository.EXPECT().IsMarketOpen().Return(true, nil)
		tradeOrderRepository.EXPECT().
			ListForRun(runID).
			Return([]model.TradeOrder{order}, nil)
		alpacaRepository.EXPECT().
			PlaceOrder(gomock.Any()).
			Return(nil, fmt.Errorf("insufficient buying power"))
		tradeOrderRepository.EXPECT().
			Update(gomock.Nil(), order.TradeOrderID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(tx interface{}, id uuid.UUID, to model.TradeOrder, columns interface{}) (*model.TradeOrder, error) {
				require.Equal(t, model.TradeOrderStatus_Error, to.Status)
				require.NotNil(t, to.Notes)
				return &to, nil
			})

		err := handler.ExecuteRun(context.Background(), runID)
		require.ErrorContains(t, err, "insufficient buying power")
	})
}

func Test_tradingServiceHandler_ReconcileOrders(t *testing.T) {
	t.Run("records fills for submitted orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)
		tradeOrderRepository := mock_repository.NewMockTradeOrderRepository(ctrl)

		handler := tradingServiceHandler{
			AlpacaRepository:     alpacaRepository,
			TradeOrderRepository: tradeOrderRepository,
		}

		runID := uuid.New()
		providerID := uuid.New()
		order := model.TradeOrder{
			TradeOrderID:   uuid.New(),
			Symbol:         "AAPL",
			Side:           model.TradeOrderSide_Buy,
			ExpectedAmount: decimal.NewFromFloat(5287.50),
			Status:         model.TradeOrderStatus_Submitted,
			ProviderID:     &providerID,
		}

		filledAt := time.Now().UTC()
		filledPrice := decimal.NewFromFloat(227.95)
		tradeOrderRepository.EXPECT().
			ListForRun(runID).
			Return([]model.TradeOrder{order}, nil)
		alpacaRepository.EXPECT().
			GetOrder(providerID).
			Return(&alpaca.Order{
				ID:             providerID.String(),
				FilledQty:      decimal.NewFromFloat(23.1954),
				FilledAvgPrice: &filledPrice,
				FilledAt:       &filledAt,
			}, nil)
		tradeOrderRepository.EXPECT().
			Update(gomock.Nil(), order.TradeOrderID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(tx interface{}, id uuid.UUID, to model.TradeOrder, columns interface{}) (*model.TradeOrder, error) {
				require.Equal(t, model.TradeOrderStatus_Completed, to.Status)
				require.NotNil(t, to.FilledQuantity)
				require.NotNil(t, to.FilledPrice)
				require.NotNil(t, to.FilledAt)
				return &to, nil
			})

		err := handler.ReconcileOrders(context.Background(), runID)
		require.NoError(t, err)
	})

	t.Run("leaves unfilled orders alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)
		tradeOrderRepository := mock_repository.NewMockTradeOrderRepository(ctrl)

		handler := tradingServiceHandler{
			AlpacaRepository:     alpacaRepository,
			TradeOrderRepository: tradeOrderRepository,
		}

		runID := uuid.New()
		providerID := uuid.New()
		order := model.TradeOrder{
			TradeOrderID: uuid.New(),
			Symbol:       "AAPL",
			Side:         model.TradeOrderSide_Buy,
			Status:       model.TradeOrderStatus_Submitted,
			ProviderID:   &providerID,
		}

		tradeOrderRepository.EXPECT().
			ListForRun(runID).
			Return([]model.TradeOrder{order}, nil)
		alpacaRepository.EXPECT().
			GetOrder(providerID).
			Return(&alpaca.Order{ID: providerID.String()}, nil)

		err := handler.ReconcileOrders(context.Background(), runID)
		require.NoError(t, err)
	})
}
