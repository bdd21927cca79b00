package candidate_match_gateway

import (
	"context"

	"skillbridge/domain"
	"skillbridge/driver/marketdb"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CandidateMatchGateway reads public candidate profiles for agency spotlight
// injections.
type CandidateMatchGateway struct {
	marketdb *marketdb.MarketDBRepository
}

func NewCandidateMatchGateway(pool *pgxpool.Pool) *CandidateMatchGateway {
	return &CandidateMatchGateway{marketdb: marketdb.NewMarketDBRepository(pool)}
}

func NewCandidateMatchGatewayWithRepository(repo *marketdb.MarketDBRepository) *CandidateMatchGateway {
	return &CandidateMatchGateway{marketdb: repo}
}

func (g *CandidateMatchGateway) FetchMatchingCandidates(ctx context.Context, agencyID uuid.UUID, skillIDs []uuid.UUID, limit int) ([]domain.CandidateSummary, error) {
	return g.marketdb.FetchMatchingCandidates(ctx, agencyID, skillIDs, limit)
}
