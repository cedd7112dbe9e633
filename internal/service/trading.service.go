package service

import (
	"context"
	"fmt"

	"rebalancer/internal/db/models/postgres/public/model"
	"rebalancer/internal/db/models/postgres/public/table"
	"rebalancer/internal/logger"
	"rebalancer/internal/repository"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

// TradingService pushes a persisted run's orders to the broker. Orders come
// back from the repository sells first, so executing them in sequence lets
// sale proceeds fund the buys.
type TradingService interface {
	ExecuteRun(ctx context.Context, rebalancerRunID uuid.UUID) error
	ReconcileOrders(ctx context.Context, rebalancerRunID uuid.UUID) error
}

type tradingServiceHandler struct {
	AlpacaRepository     repository.AlpacaRepository
	TradeOrderRepository repository.TradeOrderRepository
}

func NewTradingService(
	alpacaRepository repository.AlpacaRepository,
	tradeOrderRepository repository.TradeOrderRepository,
) TradingService {
	return tradingServiceHandler{
		AlpacaRepository:     alpacaRepository,
		TradeOrderRepository: tradeOrderRepository,
	}
}

func (h tradingServiceHandler) ExecuteRun(ctx context.Context, rebalancerRunID uuid.UUID) error {
	log := logger.FromContext(ctx)

	open, err := h.AlpacaRepository.IsMarketOpen()
	if err != nil {
		return fmt.Errorf("failed to check market clock: %w", err)
	}
	if !open {
		return fmt.Errorf("market is closed, refusing to submit orders for run %s", rebalancerRunID.String())
	}

	orders, err := h.TradeOrderRepository.ListForRun(rebalancerRunID)
	if err != nil {
		return err
	}

	for _, order := range orders {
		if order.Status != model.TradeOrderStatus_Pending {
			log.Infof("skipping order %s (%s %s): status %s", order.TradeOrderID.String(), order.Side, order.Symbol, order.Status)
			continue
		}
		if err := h.submitOrder(order); err != nil {
			return err
		}
	}

	log.Infof("submitted orders for run %s", rebalancerRunID.String())
	return nil
}

func (h tradingServiceHandler) submitOrder(order model.TradeOrder) error {
	side := alpaca.Buy
	if order.Side == model.TradeOrderSide_Sell {
		side = alpaca.Sell
	}

	placedOrder, err := h.AlpacaRepository.PlaceOrder(repository.AlpacaPlaceOrderRequest{
		TradeOrderID:    order.TradeOrderID,
		Symbol:          order.Symbol,
		AmountInDollars: order.ExpectedAmount,
		Side:            side,
	})
	if err != nil {
		note := err.Error()
		order.Status = model.TradeOrderStatus_Error
		order.Notes = &note
		if _, updateErr := h.TradeOrderRepository.Update(nil, order.TradeOrderID, order, postgres.ColumnList{
			table.TradeOrder.Status,
			table.TradeOrder.Notes,
		}); updateErr != nil {
			return fmt.Errorf("failed to flag trade order %s as errored: %w", order.TradeOrderID.String(), updateErr)
		}
		return err
	}

	providerID, err := uuid.Parse(placedOrder.ID)
	if err != nil {
		return fmt.Errorf("unparseable provider order id %q: %w", placedOrder.ID, err)
	}

	order.Status = model.TradeOrderStatus_Submitted
	order.ProviderID = &providerID
	_, err = h.TradeOrderRepository.Update(nil, order.TradeOrderID, order, postgres.ColumnList{
		table.TradeOrder.Status,
		table.TradeOrder.ProviderID,
	})
	if err != nil {
		return fmt.Errorf("failed to record submission of trade order %s: %w", order.TradeOrderID.String(), err)
	}

	return nil
}

// ReconcileOrders pulls fill state from the broker for every submitted
// order in the run.
func (h tradingServiceHandler) ReconcileOrders(ctx context.Context, rebalancerRunID uuid.UUID) error {
	log := logger.FromContext(ctx)

	orders, err := h.TradeOrderRepository.ListForRun(rebalancerRunID)
	if err != nil {
		return err
	}

	for _, order := range orders {
		if order.Status != model.TradeOrderStatus_Submitted || order.ProviderID == nil {
			continue
		}

		providerOrder, err := h.AlpacaRepository.GetOrder(*order.ProviderID)
		if err != nil {
			return fmt.Errorf("failed to fetch provider order for trade order %s: %w", order.TradeOrderID.String(), err)
		}
		if providerOrder.FilledAt == nil {
			log.Infof("order %s (%s %s) not filled yet", order.TradeOrderID.String(), order.Side, order.Symbol)
			continue
		}

		order.Status = model.TradeOrderStatus_Completed
		order.FilledQuantity = &providerOrder.FilledQty
		order.FilledPrice = providerOrder.FilledAvgPrice
		order.FilledAt = providerOrder.FilledAt
		_, err = h.TradeOrderRepository.Update(nil, order.TradeOrderID, order, postgres.ColumnList{
			table.TradeOrder.Status,
			table.TradeOrder.FilledQuantity,
			table.TradeOrder.FilledPrice,
			table.TradeOrder.FilledAt,
		})
		if err != nil {
			return fmt.Errorf("failed to record fill of trade order %s: %w", order.TradeOrderID.String(), err)
		}
	}

	return nil
}
