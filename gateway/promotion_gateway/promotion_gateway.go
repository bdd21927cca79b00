package promotion_gateway

import (
	"context"
	"time"

	"skillbridge/domain"
	"skillbridge/driver/marketdb"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PromotionGateway reads live paid boosts from the marketplace database.
type PromotionGateway struct {
	marketdb *marketdb.MarketDBRepository
}

func NewPromotionGateway(pool *pgxpool.Pool) *PromotionGateway {
	return &PromotionGateway{marketdb: marketdb.NewMarketDBRepository(pool)}
}

func NewPromotionGatewayWithRepository(repo *marketdb.MarketDBRepository) *PromotionGateway {
	return &PromotionGateway{marketdb: repo}
}

func (g *PromotionGateway) FetchLivePromotions(ctx context.Context, now time.Time) ([]*domain.Promotion, error) {
	return g.marketdb.FetchLivePromotions(ctx, now)
}
