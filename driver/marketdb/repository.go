package marketdb

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgxpool.Pool the repository needs. Tests satisfy
// it with pgxmock.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// MarketDBRepository is the read-only driver over the marketplace database.
// The feed engine never writes through it.
type MarketDBRepository struct {
	pool Querier
}

func NewMarketDBRepository(pool *pgxpool.Pool) *MarketDBRepository {
	return &MarketDBRepository{pool: pool}
}
