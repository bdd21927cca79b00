package candidate_match_port

import (
	"context"

	"skillbridge/domain"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=candidate_match_port.go -destination=../../mocks/mock_candidate_match_port.go -package=mocks

// MatchCandidatesPort finds candidates for agency spotlight injections.
type MatchCandidatesPort interface {
	// FetchMatchingCandidates returns candidates holding at least one of the
	// given skills who were never hired by the agency, most recently updated
	// profiles first.
	FetchMatchingCandidates(ctx context.Context, agencyID uuid.UUID, skillIDs []uuid.UUID, limit int) ([]domain.CandidateSummary, error)
}
