package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"rebalancer/cmd"
	"rebalancer/internal/domain"
	"rebalancer/internal/service"
	"rebalancer/internal/util"

	"github.com/gocarina/gocsv"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type holdingRow struct {
	Ticker string          `csv:"ticker"`
	Shares decimal.Decimal `csv:"shares"`
	Price  decimal.Decimal `csv:"price"`
}

type allocationRow struct {
	Ticker string          `csv:"ticker"`
	Weight decimal.Decimal `csv:"weight"`
}

var rootCmd = &cobra.Command{
	Use:   "rebalancer",
	Short: "computes the trades that move a portfolio to its target allocation",
}

var (
	holdingsPath   string
	allocationPath string
	cashFlag       string
	thresholdFlag  string
	livePrices     bool
	execute        bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "rebalance a portfolio described by holdings and allocation csv files",
	RunE: func(c *cobra.Command, args []string) error {
		deps, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(deps)

		portfolio, err := loadPortfolio(c.Context(), deps)
		if err != nil {
			return err
		}

		threshold, err := domain.NewDecimal(thresholdFlag)
		if err != nil {
			return fmt.Errorf("invalid threshold %q: %w", thresholdFlag, err)
		}

		out, err := deps.RebalanceService.Run(c.Context(), service.RunInput{
			Portfolio: portfolio,
			Threshold: threshold,
		})
		if err != nil {
			return err
		}
		util.Pprint(out.Result)

		if !execute {
			return nil
		}
		if deps.TradingService == nil || out.RebalancerRunID == nil {
			return fmt.Errorf("cannot execute: trading requires alpaca credentials and a configured db")
		}
		return deps.TradingService.ExecuteRun(c.Context(), *out.RebalancerRunID)
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "run the canonical three stock walkthrough",
	RunE: func(c *cobra.Command, args []string) error {
		portfolio, err := demoPortfolio()
		if err != nil {
			return err
		}

		result, err := portfolio.Rebalance(domain.RebalanceInput{
			Threshold: decimal.NewFromInt(100),
		})
		if err != nil {
			return err
		}

		fmt.Printf("portfolio value: $%s\n", portfolio.TotalValue().StringFixed(2))
		util.Pprint(result)
		fmt.Printf("net cash flow: $%s\n", result.NetCashFlow().StringFixed(2))
		return nil
	},
}

func loadPortfolio(ctx context.Context, deps *cmd.Dependencies) (*domain.Portfolio, error) {
	holdingRows := []holdingRow{}
	if err := readCsv(holdingsPath, &holdingRows); err != nil {
		return nil, fmt.Errorf("failed to read holdings csv: %w", err)
	}
	allocationRows := []allocationRow{}
	if err := readCsv(allocationPath, &allocationRows); err != nil {
		return nil, fmt.Errorf("failed to read allocation csv: %w", err)
	}

	holdings := make([]domain.Holding, 0, len(holdingRows))
	for _, row := range holdingRows {
		price := row.Price
		if livePrices {
			livePrice, err := deps.PriceRepository.Get(ctx, row.Ticker)
			if err != nil {
				return nil, err
			}
			price = livePrice
		}
		stock, err := domain.NewStock(row.Ticker, price)
		if err != nil {
			return nil, err
		}
		holding, err := domain.NewHolding(stock, row.Shares)
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, holding)
	}

	weights := make(map[string]decimal.Decimal, len(allocationRows))
	for _, row := range allocationRows {
		weights[row.Ticker] = row.Weight
	}
	allocation, err := domain.NewAllocation(weights)
	if err != nil {
		return nil, err
	}

	cash, err := domain.NewDecimal(cashFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid cash amount %q: %w", cashFlag, err)
	}

	return domain.NewPortfolio(holdings, allocation, cash)
}

func readCsv(path string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gocsv.UnmarshalFile(f, out)
}

func demoPortfolio() (*domain.Portfolio, error) {
	type position struct {
		ticker string
		shares int64
		price  float64
	}
	positions := []position{
		{"META", 50, 585.00},
		{"AAPL", 100, 228.00},
		{"NVDA", 200, 131.00},
	}

	holdings := []domain.Holding{}
	for _, p := range positions {
		stock, err := domain.NewStock(p.ticker, decimal.NewFromFloat(p.price))
		if err != nil {
			return nil, err
		}
		holding, err := domain.NewHolding(stock, decimal.NewFromInt(p.shares))
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, holding)
	}

	allocation, err := domain.NewAllocation(map[string]decimal.Decimal{
		"META": decimal.NewFromFloat(0.40),
		"AAPL": decimal.NewFromFloat(0.35),
		"NVDA": decimal.NewFromFloat(0.25),
	})
	if err != nil {
		return nil, err
	}

	return domain.NewPortfolio(holdings, allocation, decimal.NewFromInt(2000))
}

func main() {
	runCmd.Flags().StringVar(&holdingsPath, "holdings", "holdings.csv", "csv of ticker,shares,price")
	runCmd.Flags().StringVar(&allocationPath, "allocation", "allocation.csv", "csv of ticker,weight")
	runCmd.Flags().StringVar(&cashFlag, "cash", "0", "uninvested cash to deploy")
	runCmd.Flags().StringVar(&thresholdFlag, "threshold", "0", "minimum dollar deviation worth trading")
	runCmd.Flags().BoolVar(&livePrices, "live-prices", false, "refresh holding prices from the quote feed")
	runCmd.Flags().BoolVar(&execute, "execute", false, "submit the proposed orders to the broker")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(demoCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
