package profile_context_port

import (
	"context"

	"skillbridge/domain"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=profile_context_port.go -destination=../../mocks/mock_profile_context_port.go -package=mocks

// ResolveProfileContextPort loads the role-specific personalization snapshot.
// A caller without a profile or org record yields the empty-context sentinel,
// never an error.
type ResolveProfileContextPort interface {
	ResolveCandidateContext(ctx context.Context, userID uuid.UUID) (domain.ProfileContext, error)
	ResolveAgencyContext(ctx context.Context, userID uuid.UUID) (domain.ProfileContext, error)
}
