package api

import (
	"fmt"

	"rebalancer/internal/domain"
	"rebalancer/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type rebalanceRequest struct {
	Holdings []struct {
		Ticker string          `json:"ticker"`
		Shares decimal.Decimal `json:"shares"`
		Price  decimal.Decimal `json:"price"`
	} `json:"holdings"`
	Allocation map[string]decimal.Decimal `json:"allocation"`
	Cash       decimal.Decimal            `json:"cash"`
	Threshold  decimal.Decimal            `json:"threshold"`
	// Prices optionally supplies quotes for allocated tickers that are not
	// held, bypassing the live price feed.
	Prices map[string]decimal.Decimal `json:"prices"`
}

type rebalanceResponse struct {
	Trades          []domain.Trade  `json:"trades"`
	Warnings        []string        `json:"warnings"`
	TotalBuyValue   decimal.Decimal `json:"totalBuyValue"`
	TotalSellValue  decimal.Decimal `json:"totalSellValue"`
	NetCashFlow     decimal.Decimal `json:"netCashFlow"`
	IsBalanced      bool            `json:"isBalanced"`
	RebalancerRunID *string         `json:"rebalancerRunId,omitempty"`
}

func (m ApiHandler) rebalance(ctx *gin.Context) {
	var req rebalanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse request: %w", err), ctx, 400)
		return
	}

	portfolio, err := portfolioFromRequest(req)
	if err != nil {
		returnErrorJson(err, ctx)
		return
	}

	out, err := m.RebalanceService.Run(ctx.Request.Context(), service.RunInput{
		Portfolio: portfolio,
		Threshold: req.Threshold,
		Quotes:    req.Prices,
	})
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to rebalance: %w", err), ctx)
		return
	}

	resp := rebalanceResponse{
		Trades:         out.Result.Trades,
		Warnings:       out.Result.Warnings,
		TotalBuyValue:  out.Result.TotalBuyValue(),
		TotalSellValue: out.Result.TotalSellValue(),
		NetCashFlow:    out.Result.NetCashFlow(),
		IsBalanced:     out.Result.IsBalanced(),
	}
	if out.RebalancerRunID != nil {
		id := out.RebalancerRunID.String()
		resp.RebalancerRunID = &id
	}

	ctx.JSON(200, resp)
}

func portfolioFromRequest(req rebalanceRequest) (*domain.Portfolio, error) {
	holdings := make([]domain.Holding, 0, len(req.Holdings))
	for _, h := range req.Holdings {
		stock, err := domain.NewStock(h.Ticker, h.Price)
		if err != nil {
			return nil, err
		}
		holding, err := domain.NewHolding(stock, h.Shares)
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, holding)
	}

	allocation, err := domain.NewAllocation(req.Allocation)
	if err != nil {
		return nil, err
	}

	return domain.NewPortfolio(holdings, allocation, req.Cash)
}
