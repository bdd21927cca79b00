package position_match_gateway

import (
	"context"

	"skillbridge/domain"
	"skillbridge/driver/marketdb"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PositionMatchGateway reads open positions for job-match injections.
type PositionMatchGateway struct {
	marketdb *marketdb.MarketDBRepository
}

func NewPositionMatchGateway(pool *pgxpool.Pool) *PositionMatchGateway {
	return &PositionMatchGateway{marketdb: marketdb.NewMarketDBRepository(pool)}
}

func NewPositionMatchGatewayWithRepository(repo *marketdb.MarketDBRepository) *PositionMatchGateway {
	return &PositionMatchGateway{marketdb: repo}
}

func (g *PositionMatchGateway) FetchMatchingPositions(ctx context.Context, candidateID uuid.UUID, skillIDs []uuid.UUID, limit int) ([]domain.OpenPosition, error) {
	return g.marketdb.FetchMatchingPositions(ctx, candidateID, skillIDs, limit)
}

func (g *PositionMatchGateway) FetchLatestPublicPositions(ctx context.Context, limit int) ([]domain.OpenPosition, error) {
	return g.marketdb.FetchLatestPublicPositions(ctx, limit)
}
