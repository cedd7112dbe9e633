package api

import (
	"errors"
	"fmt"

	"rebalancer/internal/domain"
	"rebalancer/internal/repository"
	"rebalancer/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApiHandler struct {
	RebalanceService service.RebalanceService
	TradingService   service.TradingService
	PriceRepository  repository.PriceRepository
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to rebalancer"})
	})
	router.POST("/rebalance", m.rebalance)
	router.GET("/prices/:symbol", m.getPrice)

	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, statusForError(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	zap.S().Error(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// statusForError maps domain validation failures to 400s. Anything the
// caller can't fix by changing the request is a 500.
func statusForError(err error) int {
	var (
		duplicateTicker  domain.DuplicateTickerError
		allocationSum    domain.AllocationSumError
		invalidWeight    domain.InvalidWeightError
		duplicateHolding domain.DuplicateHoldingError
		negativeShares   domain.NegativeSharesError
		negativePrice    domain.NegativePriceError
		negativeCash     domain.NegativeCashError
		missingPrice     domain.MissingPriceError
		invalidThreshold domain.InvalidThresholdError
		emptyTicker      domain.EmptyTickerError
	)

	switch {
	case errors.As(err, &duplicateTicker),
		errors.As(err, &allocationSum),
		errors.As(err, &invalidWeight),
		errors.As(err, &duplicateHolding),
		errors.As(err, &negativeShares),
		errors.As(err, &negativePrice),
		errors.As(err, &negativeCash),
		errors.As(err, &missingPrice),
		errors.As(err, &invalidThreshold),
		errors.As(err, &emptyTicker):
		return 400
	}

	return 500
}
