package repository

import (
	"context"
	"fmt"
	"sync"

	"rebalancer/internal/domain"
	"rebalancer/internal/logger"

	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
)

type PriceCache map[string]decimal.Decimal

// PriceRepository resolves current market prices for tickers. Quotes are
// fetched once per symbol and cached for the lifetime of the handler.
type PriceRepository interface {
	Get(ctx context.Context, symbol string) (decimal.Decimal, error)
	GetMany(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error)
	Preload(prices map[string]decimal.Decimal)
}

func NewPriceRepository() PriceRepository {
	return &priceRepositoryHandler{
		Cache:     make(PriceCache),
		ReadMutex: &sync.RWMutex{},
	}
}

type priceRepositoryHandler struct {
	Cache     PriceCache
	ReadMutex *sync.RWMutex
}

func (h *priceRepositoryHandler) getFromCache(symbol string) *decimal.Decimal {
	h.ReadMutex.RLock()
	defer h.ReadMutex.RUnlock()
	if price, ok := h.Cache[symbol]; ok {
		return &price
	}
	return nil
}

func (h *priceRepositoryHandler) addToCache(symbol string, price decimal.Decimal) {
	h.ReadMutex.Lock()
	h.Cache[symbol] = price
	h.ReadMutex.Unlock()
}

// Preload seeds the cache, normalizing symbols first. Useful when prices
// come from the caller instead of the quote feed.
func (h *priceRepositoryHandler) Preload(prices map[string]decimal.Decimal) {
	for symbol, price := range prices {
		h.addToCache(domain.NormalizeTicker(symbol), price)
	}
}

func (h *priceRepositoryHandler) Get(ctx context.Context, symbol string) (decimal.Decimal, error) {
	symbol = domain.NormalizeTicker(symbol)
	if cached := h.getFromCache(symbol); cached != nil {
		return *cached, nil
	}

	log := logger.FromContext(ctx)
	log.Infof("cache miss, fetching quote for %s", symbol)

	q, err := quote.Get(symbol)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fetch quote for %s: %w", symbol, err)
	}
	if q == nil {
		return decimal.Zero, fmt.Errorf("no quote found for %s", symbol)
	}

	price, err := domain.NewDecimal(q.RegularMarketPrice)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid quote price for %s: %w", symbol, err)
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("got %s price for %s from quote feed", price.String(), symbol)
	}

	h.addToCache(symbol, price)
	return price, nil
}

func (h *priceRepositoryHandler) GetMany(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	out := map[string]decimal.Decimal{}
	for _, symbol := range symbols {
		symbol = domain.NormalizeTicker(symbol)
		if _, ok := out[symbol]; ok {
			continue
		}
		price, err := h.Get(ctx, symbol)
		if err != nil {
			return nil, err
		}
		out[symbol] = price
	}

	return out, nil
}
