package repository

import (
	"database/sql"
	"fmt"
	"time"

	"rebalancer/internal/db/models/postgres/public/model"
	"rebalancer/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type TradeOrderRepository interface {
	Add(tx *sql.Tx, to model.TradeOrder) (*model.TradeOrder, error)
	Update(tx *sql.Tx, tradeOrderID uuid.UUID, to model.TradeOrder, columns postgres.ColumnList) (*model.TradeOrder, error)
	Get(filter TradeOrderGetFilter) (*model.TradeOrder, error)
	ListForRun(rebalancerRunID uuid.UUID) ([]model.TradeOrder, error)
}

type tradeOrderRepositoryHandler struct {
	Db *sql.DB
}

func NewTradeOrderRepository(db *sql.DB) TradeOrderRepository {
	return tradeOrderRepositoryHandler{Db: db}
}

func (h tradeOrderRepositoryHandler) Add(tx *sql.Tx, to model.TradeOrder) (*model.TradeOrder, error) {
	to.CreatedAt = time.Now().UTC()
	to.ModifiedAt = time.Now().UTC()
	query := table.TradeOrder.
		INSERT(table.TradeOrder.MutableColumns).
		MODEL(to).
		RETURNING(table.TradeOrder.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.TradeOrder{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert trade order for %s: %w", to.Symbol, err)
	}

	return &out, nil
}

func (h tradeOrderRepositoryHandler) Update(tx *sql.Tx, tradeOrderID uuid.UUID, to model.TradeOrder, columns postgres.ColumnList) (*model.TradeOrder, error) {
	to.ModifiedAt = time.Now().UTC()
	columns = append(columns, table.TradeOrder.ModifiedAt)
	query := table.TradeOrder.
		UPDATE(columns).
		WHERE(
			table.TradeOrder.TradeOrderID.EQ(postgres.UUID(tradeOrderID)),
		).
		MODEL(to).
		RETURNING(table.TradeOrder.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.TradeOrder{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update trade order %s: %w", tradeOrderID.String(), err)
	}

	return &out, nil
}

type TradeOrderGetFilter struct {
	TradeOrderID *uuid.UUID
	ProviderID   *uuid.UUID
}

func (h tradeOrderRepositoryHandler) Get(filter TradeOrderGetFilter) (*model.TradeOrder, error) {
	query := table.TradeOrder.
		SELECT(table.TradeOrder.AllColumns)

	switch {
	case filter.TradeOrderID != nil:
		query = query.WHERE(table.TradeOrder.TradeOrderID.EQ(postgres.UUID(filter.TradeOrderID)))
	case filter.ProviderID != nil:
		query = query.WHERE(table.TradeOrder.ProviderID.EQ(postgres.UUID(filter.ProviderID)))
	default:
		return nil, fmt.Errorf("invalid TradeOrderGetFilter - no fields set")
	}

	result := model.TradeOrder{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get trade order: %w", err)
	}

	return &result, nil
}

// ListForRun returns the orders for a run, sells first so execution order
// matches the order the trades were generated in.
func (h tradeOrderRepositoryHandler) ListForRun(rebalancerRunID uuid.UUID) ([]model.TradeOrder, error) {
	query := table.TradeOrder.
		SELECT(table.TradeOrder.AllColumns).
		WHERE(table.TradeOrder.RebalancerRunID.EQ(postgres.UUID(rebalancerRunID))).
		ORDER_BY(
			table.TradeOrder.Side.DESC(),
			table.TradeOrder.Symbol.ASC(),
		)

	result := []model.TradeOrder{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list trade orders for run %s: %w", rebalancerRunID.String(), err)
	}

	return result, nil
}
