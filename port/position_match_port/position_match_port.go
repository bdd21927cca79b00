package position_match_port

import (
	"context"

	"skillbridge/domain"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=position_match_port.go -destination=../../mocks/mock_position_match_port.go -package=mocks

// MatchPositionsPort finds open, publicly visible positions for candidate
// job-match injections.
type MatchPositionsPort interface {
	// FetchMatchingPositions returns open public positions whose declared
	// skills intersect skillIDs, excluding positions the candidate already
	// applied to, newest first.
	FetchMatchingPositions(ctx context.Context, candidateID uuid.UUID, skillIDs []uuid.UUID, limit int) ([]domain.OpenPosition, error)

	// FetchLatestPublicPositions is the blank-profile fallback: the newest
	// open public positions with no skill filtering.
	FetchLatestPublicPositions(ctx context.Context, limit int) ([]domain.OpenPosition, error)
}
