package repository

import (
	"context"
	"fmt"
	"time"

	"rebalancer/internal/logger"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AlpacaRepository interface {
	PlaceOrder(req AlpacaPlaceOrderRequest) (*alpaca.Order, error)
	CancelOpenOrders(context.Context) error
	GetPositions() ([]alpaca.Position, error)
	IsMarketOpen() (bool, error)
	GetAccount() (*alpaca.Account, error)
	GetOrder(alpacaOrderID uuid.UUID) (*alpaca.Order, error)
}

func NewAlpacaRepository(apiKey, apiSecret, endpoint string) AlpacaRepository {
	client := alpaca.NewClient(alpaca.ClientOpts{
		APIKey:     apiKey,
		APISecret:  apiSecret,
		BaseURL:    endpoint,
		RetryLimit: 3,
	})

	return &alpacaRepositoryHandler{
		Client: client,
	}
}

type alpacaRepositoryHandler struct {
	Client *alpaca.Client
}

func (h alpacaRepositoryHandler) CancelOpenOrders(ctx context.Context) error {
	log := logger.FromContext(ctx)
	orders, err := h.Client.GetOrders(alpaca.GetOrdersRequest{
		Status: "open",
		Until:  time.Now(),
		Limit:  100,
	})
	if err != nil {
		return fmt.Errorf("failed to list orders: %w", err)
	}
	for _, order := range orders {
		if err := h.Client.CancelOrder(order.ID); err != nil {
			return fmt.Errorf("failed to cancel order %s: %w", order.ID, err)
		}
	}

	log.Infof("%d order(s) cancelled", len(orders))
	return nil
}

func (h alpacaRepositoryHandler) GetPositions() ([]alpaca.Position, error) {
	positions, err := h.Client.GetPositions()
	if err != nil {
		return nil, fmt.Errorf("failed to get positions: %w", err)
	}
	return positions, nil
}

func (h alpacaRepositoryHandler) IsMarketOpen() (bool, error) {
	clock, err := h.Client.GetClock()
	if err != nil {
		return false, err
	}
	return clock.IsOpen, nil
}

func (h alpacaRepositoryHandler) GetAccount() (*alpaca.Account, error) {
	acct, err := h.Client.GetAccount()
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return acct, nil
}

type AlpacaPlaceOrderRequest struct {
	TradeOrderID    uuid.UUID
	Symbol          string
	AmountInDollars decimal.Decimal
	Side            alpaca.Side
}

func (a AlpacaPlaceOrderRequest) isValid() error {
	if a.AmountInDollars.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("notional amount is <= 0, order of |%s %s| not sent", a.AmountInDollars.String(), a.Side)
	}
	if a.Symbol == "" {
		return fmt.Errorf("missing symbol")
	}
	return nil
}

func (h alpacaRepositoryHandler) GetOrder(alpacaOrderID uuid.UUID) (*alpaca.Order, error) {
	return h.Client.GetOrder(alpacaOrderID.String())
}

// PlaceOrder submits a notional market order. Dollar amounts instead of
// share quantities so fractional trades round-trip exactly.
func (h alpacaRepositoryHandler) PlaceOrder(req AlpacaPlaceOrderRequest) (*alpaca.Order, error) {
	if err := req.isValid(); err != nil {
		return nil, fmt.Errorf("invalid input to alpaca submit order on trade order %s: %w", req.TradeOrderID.String(), err)
	}

	order, err := h.Client.PlaceOrder(alpaca.PlaceOrderRequest{
		Symbol:        req.Symbol,
		Notional:      &req.AmountInDollars,
		Side:          req.Side,
		Type:          alpaca.Market,
		TimeInForce:   alpaca.Day,
		ClientOrderID: req.TradeOrderID.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("order for trade request %s %s $%s failed: %w", req.Side, req.Symbol, req.AmountInDollars.String(), err)
	}

	return order, nil
}
