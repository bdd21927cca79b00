package learning_content_gateway

import (
	"context"

	"skillbridge/domain"
	"skillbridge/driver/marketdb"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LearningContentGateway reads learn-and-grow items whose targeting metadata
// overlaps the caller's failed-assessment skill names.
type LearningContentGateway struct {
	marketdb *marketdb.MarketDBRepository
}

func NewLearningContentGateway(pool *pgxpool.Pool) *LearningContentGateway {
	return &LearningContentGateway{marketdb: marketdb.NewMarketDBRepository(pool)}
}

func NewLearningContentGatewayWithRepository(repo *marketdb.MarketDBRepository) *LearningContentGateway {
	return &LearningContentGateway{marketdb: repo}
}

func (g *LearningContentGateway) FetchLearningResources(ctx context.Context, skillNames []string, limit int) ([]domain.FeedItem, error) {
	return g.marketdb.FetchLearningResources(ctx, skillNames, limit)
}
