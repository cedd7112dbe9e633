package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getPrice(ctx *gin.Context) {
	symbol := ctx.Param("symbol")
	if symbol == "" {
		returnErrorJsonCode(fmt.Errorf("missing symbol"), ctx, 400)
		return
	}

	price, err := m.PriceRepository.Get(ctx.Request.Context(), symbol)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to get price for %s: %w", symbol, err), ctx)
		return
	}

	ctx.JSON(200, gin.H{
		"symbol": symbol,
		"price":  price,
	})
}
