package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rebalancer/internal/domain"
	"rebalancer/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := ApiHandler{
		RebalanceService: service.NewRebalanceService(nil, nil, nil, nil),
	}
	router := gin.New()
	router.POST("/rebalance", handler.rebalance)
	return router
}

func Test_rebalance(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		body := `{
			"holdings": [
				{"ticker": "META", "shares": "50", "price": "585.00"},
				{"ticker": "AAPL", "shares": "100", "price": "228.00"},
				{"ticker": "NVDA", "shares": "200", "price": "131.00"}
			],
			"allocation": {"META": "0.40", "AAPL": "0.35", "NVDA": "0.25"},
			"cash": "2000.00",
			"threshold": "100.00"
		}`

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/rebalance", strings.NewReader(body))
		testRouter().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		resp := rebalanceResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		require.Len(t, resp.Trades, 3)
		require.Equal(t, "NVDA", resp.Trades[0].Ticker)
		require.Equal(t, domain.TradeActionSell, resp.Trades[0].Action)
		require.True(t, resp.NetCashFlow.Equal(decimal.NewFromInt(-2000)), "net cash flow %s", resp.NetCashFlow.String())
		require.False(t, resp.IsBalanced)
		require.Nil(t, resp.RebalancerRunID)
	})

	t.Run("allocation that does not sum to 1 is a 400", func(t *testing.T) {
		body := `{
			"holdings": [{"ticker": "AAPL", "shares": "10", "price": "228.00"}],
			"allocation": {"AAPL": "0.50"},
			"cash": "0",
			"threshold": "0"
		}`

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/rebalance", strings.NewReader(body))
		testRouter().ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		require.Contains(t, w.Body.String(), "error")
	})

	t.Run("malformed json is a 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/rebalance", strings.NewReader("{"))
		testRouter().ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func Test_statusForError(t *testing.T) {
	require.Equal(t, 400, statusForError(domain.MissingPriceError{Ticker: "GOOG"}))
	require.Equal(t, 400, statusForError(fmt.Errorf("wrapped: %w", domain.AllocationSumError{Sum: "0.5"})))
	require.Equal(t, 500, statusForError(fmt.Errorf("db is down")))
}
