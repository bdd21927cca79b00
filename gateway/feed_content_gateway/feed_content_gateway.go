package feed_content_gateway

import (
	"context"

	"skillbridge/domain"
	"skillbridge/driver/marketdb"
	"skillbridge/port/feed_content_port"

	"github.com/jackc/pgx/v5/pgxpool"
)

// FeedContentGateway translates organic page queries into repository calls.
// Role-to-audience mapping happens here so the driver stays role-agnostic.
type FeedContentGateway struct {
	marketdb *marketdb.MarketDBRepository
}

func NewFeedContentGateway(pool *pgxpool.Pool) *FeedContentGateway {
	return &FeedContentGateway{marketdb: marketdb.NewMarketDBRepository(pool)}
}

func NewFeedContentGatewayWithRepository(repo *marketdb.MarketDBRepository) *FeedContentGateway {
	return &FeedContentGateway{marketdb: repo}
}

func (g *FeedContentGateway) FetchOrganicPage(ctx context.Context, query feed_content_port.OrganicPageQuery) ([]domain.FeedItem, error) {
	return g.marketdb.FetchOrganicPage(ctx, marketdb.OrganicPageParams{
		Audience:     domain.AudienceForRole(query.Role),
		Category:     query.Category,
		Cursor:       query.Cursor,
		SearchTokens: query.SearchTokens,
		Limit:        query.Limit,
	})
}
