package resolve_profile_usecase

import (
	"context"

	"skillbridge/domain"
	"skillbridge/port/profile_context_port"
	"skillbridge/utils/logger"

	"github.com/google/uuid"
)

// ResolveProfileUsecase loads the role-specific personalization snapshot for
// one request. It never persists anything.
type ResolveProfileUsecase struct {
	profileGateway profile_context_port.ResolveProfileContextPort
}

func NewResolveProfileUsecase(profileGateway profile_context_port.ResolveProfileContextPort) *ResolveProfileUsecase {
	return &ResolveProfileUsecase{profileGateway: profileGateway}
}

func (u *ResolveProfileUsecase) Execute(ctx context.Context, user *domain.UserContext) (domain.ProfileContext, error) {
	if user == nil || !user.IsValid() {
		return domain.ProfileContext{}, domain.ErrInvalidUserContext
	}

	var (
		pc  domain.ProfileContext
		err error
	)
	switch user.Role {
	case domain.UserRoleAgency:
		pc, err = u.profileGateway.ResolveAgencyContext(ctx, user.UserID)
	default:
		pc, err = u.profileGateway.ResolveCandidateContext(ctx, user.UserID)
	}
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to resolve profile context", "error", err, "user_id", user.UserID, "role", user.Role)
		return domain.ProfileContext{}, err
	}

	logger.Logger.InfoContext(ctx, "resolved profile context",
		"user_id", user.UserID,
		"role", pc.Role,
		"has_profile", pc.HasProfile,
		"blank", pc.Blank,
		"skill_count", len(pc.SkillIDs))
	return pc, nil
}

// ResolveForUserID is a convenience for callers that only hold raw identity.
func (u *ResolveProfileUsecase) ResolveForUserID(ctx context.Context, userID uuid.UUID, role domain.UserRole) (domain.ProfileContext, error) {
	return u.Execute(ctx, &domain.UserContext{UserID: userID, Role: role})
}
