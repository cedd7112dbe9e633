package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"rebalancer/api"
	"rebalancer/internal/repository"
	"rebalancer/internal/service"
	"rebalancer/internal/util"

	_ "github.com/lib/pq"
)

// Dependencies is everything a binary needs wired up. Db and the broker
// are optional: without a db section in secrets the rebalancer runs
// stateless, and without alpaca credentials execution is disabled.
type Dependencies struct {
	Db                      *sql.DB
	PriceRepository         repository.PriceRepository
	RebalancerRunRepository repository.RebalancerRunRepository
	TradeOrderRepository    repository.TradeOrderRepository
	AlpacaRepository        repository.AlpacaRepository
	RebalanceService        service.RebalanceService
	TradingService          service.TradingService
}

func CloseDependencies(deps *Dependencies) {
	if deps.Db == nil {
		return
	}
	err := deps.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*Dependencies, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	deps := &Dependencies{
		PriceRepository: repository.NewPriceRepository(),
	}

	if secrets.Db.Host != "" {
		dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to db: %w", err)
		}
		deps.Db = dbConn
		deps.RebalancerRunRepository = repository.NewRebalancerRunRepository(dbConn)
		deps.TradeOrderRepository = repository.NewTradeOrderRepository(dbConn)
	}

	if secrets.Alpaca.ApiKey != "" {
		deps.AlpacaRepository = repository.NewAlpacaRepository(
			secrets.Alpaca.ApiKey,
			secrets.Alpaca.ApiSecret,
			secrets.Alpaca.Endpoint,
		)
	}

	deps.RebalanceService = service.NewRebalanceService(
		deps.Db,
		deps.PriceRepository,
		deps.RebalancerRunRepository,
		deps.TradeOrderRepository,
	)
	if deps.AlpacaRepository != nil && deps.TradeOrderRepository != nil {
		deps.TradingService = service.NewTradingService(
			deps.AlpacaRepository,
			deps.TradeOrderRepository,
		)
	}

	return deps, nil
}

func NewApiHandler(deps *Dependencies) *api.ApiHandler {
	return &api.ApiHandler{
		RebalanceService: deps.RebalanceService,
		TradingService:   deps.TradingService,
		PriceRepository:  deps.PriceRepository,
	}
}
