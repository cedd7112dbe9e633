package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"rebalancer/internal/db/models/postgres/public/model"
	"rebalancer/internal/domain"
	"rebalancer/internal/logger"
	"rebalancer/internal/repository"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// RebalanceService orchestrates a rebalance pass: resolve any prices the
// portfolio can't supply itself, run the core computation, and record the
// run when a database is configured. The core stays pure; all IO lives here.
type RebalanceService interface {
	Run(ctx context.Context, input RunInput) (*RunOutput, error)
}

type RunInput struct {
	Portfolio *domain.Portfolio
	Threshold decimal.Decimal
	// Quotes optionally supplies prices for allocated tickers that are not
	// held. Anything still missing is resolved through the price repository.
	Quotes map[string]decimal.Decimal
}

type RunOutput struct {
	Result *domain.RebalanceResult
	// RebalancerRunID is set when the run was persisted.
	RebalancerRunID *uuid.UUID
}

type rebalanceServiceHandler struct {
	Db                      *sql.DB
	PriceRepository         repository.PriceRepository
	RebalancerRunRepository repository.RebalancerRunRepository
	TradeOrderRepository    repository.TradeOrderRepository
}

func NewRebalanceService(
	db *sql.DB,
	priceRepository repository.PriceRepository,
	rebalancerRunRepository repository.RebalancerRunRepository,
	tradeOrderRepository repository.TradeOrderRepository,
) RebalanceService {
	return rebalanceServiceHandler{
		Db:                      db,
		PriceRepository:         priceRepository,
		RebalancerRunRepository: rebalancerRunRepository,
		TradeOrderRepository:    tradeOrderRepository,
	}
}

func (h rebalanceServiceHandler) Run(ctx context.Context, input RunInput) (*RunOutput, error) {
	log := logger.FromContext(ctx)

	if input.Portfolio == nil {
		return nil, fmt.Errorf("no portfolio provided")
	}

	quotes, err := h.resolveQuotes(ctx, input)
	if err != nil {
		return nil, err
	}

	result, err := input.Portfolio.Rebalance(domain.RebalanceInput{
		Threshold: input.Threshold,
		Quotes:    quotes,
	})
	if err != nil {
		return nil, err
	}

	h.logDriftSummary(ctx, input.Portfolio)
	for _, warning := range result.Warnings {
		log.Warn(warning)
	}
	log.Infof(
		"proposed %d trade(s): buys $%s, sells $%s, net cash flow $%s",
		len(result.Trades),
		result.TotalBuyValue().StringFixed(2),
		result.TotalSellValue().StringFixed(2),
		result.NetCashFlow().StringFixed(2),
	)

	out := &RunOutput{Result: result}
	if h.Db != nil {
		runID, err := h.persistRun(input, result)
		if err != nil {
			return nil, err
		}
		out.RebalancerRunID = runID
	}

	return out, nil
}

// resolveQuotes fills in prices for allocated-but-not-held tickers that the
// caller didn't supply inline. Missing prices are left unresolved when no
// price repository is wired; the core reports them as errors.
func (h rebalanceServiceHandler) resolveQuotes(ctx context.Context, input RunInput) (map[string]decimal.Decimal, error) {
	quotes := make(map[string]decimal.Decimal, len(input.Quotes))
	for ticker, price := range input.Quotes {
		quotes[domain.NormalizeTicker(ticker)] = price
	}

	if h.PriceRepository == nil {
		return quotes, nil
	}

	allocation := input.Portfolio.Allocation()
	for _, ticker := range allocation.Tickers() {
		weight, _ := allocation.Weight(ticker)
		if weight.IsZero() {
			continue
		}
		if _, held := input.Portfolio.Holding(ticker); held {
			continue
		}
		if _, ok := quotes[ticker]; ok {
			continue
		}
		price, err := h.PriceRepository.Get(ctx, ticker)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve quote for %s: %w", ticker, err)
		}
		quotes[ticker] = price
	}

	return quotes, nil
}

// logDriftSummary reports how far current weights sit from targets, in
// percentage points, across the union of held and allocated tickers.
func (h rebalanceServiceHandler) logDriftSummary(ctx context.Context, portfolio *domain.Portfolio) {
	log := logger.FromContext(ctx)

	allocation := portfolio.Allocation()
	currentWeights := portfolio.CurrentWeights()

	seen := map[string]bool{}
	drifts := []float64{}
	for _, ticker := range append(portfolio.HeldTickers(), allocation.Tickers()...) {
		if seen[ticker] {
			continue
		}
		seen[ticker] = true
		target, _ := allocation.Weight(ticker)
		drift := currentWeights[ticker].Sub(target).Abs().Shift(2)
		drifts = append(drifts, drift.InexactFloat64())
	}

	mean, err := stats.Mean(drifts)
	if err != nil {
		return
	}
	max, err := stats.Max(drifts)
	if err != nil {
		return
	}
	log.Infof("weight drift across %d ticker(s): mean %.2f%%, max %.2f%%", len(drifts), mean, max)
}

// persistRun records the run and its proposed orders in one transaction.
func (h rebalanceServiceHandler) persistRun(input RunInput, result *domain.RebalanceResult) (*uuid.UUID, error) {
	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var warnings *string
	if len(result.Warnings) > 0 {
		joined := strings.Join(result.Warnings, "; ")
		warnings = &joined
	}

	insertedRun, err := h.RebalancerRunRepository.Add(tx, model.RebalancerRun{
		Threshold:       input.Threshold,
		TotalValue:      input.Portfolio.TotalValue(),
		NumTrades:       int32(len(result.Trades)),
		TotalBuyValue:   result.TotalBuyValue(),
		TotalSellValue:  result.TotalSellValue(),
		IsBalanced:      result.IsBalanced(),
		Warnings:        warnings,
	})
	if err != nil {
		return nil, err
	}

	for _, trade := range result.Trades {
		side := model.TradeOrderSide_Buy
		if trade.Action == domain.TradeActionSell {
			side = model.TradeOrderSide_Sell
		}
		_, err = h.TradeOrderRepository.Add(tx, model.TradeOrder{
			RebalancerRunID: &insertedRun.RebalancerRunID,
			Symbol:          trade.Ticker,
			Side:            side,
			Quantity:        trade.Shares,
			ExpectedAmount:  trade.Value,
			Status:          model.TradeOrderStatus_Pending,
		})
		if err != nil {
			return nil, err
		}
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}

	return &insertedRun.RebalancerRunID, nil
}
