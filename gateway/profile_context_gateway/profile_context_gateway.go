package profile_context_gateway

import (
	"context"
	"time"

	"skillbridge/domain"
	"skillbridge/driver/marketdb"
	"skillbridge/utils/constants"
	"skillbridge/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProfileContextGateway assembles the per-request personalization snapshot
// from several repository reads. Missing profile or org records are mapped to
// the empty-context sentinel, never to errors.
type ProfileContextGateway struct {
	marketdb *marketdb.MarketDBRepository
}

func NewProfileContextGateway(pool *pgxpool.Pool) *ProfileContextGateway {
	return &ProfileContextGateway{marketdb: marketdb.NewMarketDBRepository(pool)}
}

func NewProfileContextGatewayWithRepository(repo *marketdb.MarketDBRepository) *ProfileContextGateway {
	return &ProfileContextGateway{marketdb: repo}
}

// ResolveCandidateContext loads skills, blankness, and the failed-assessment
// skill set behind the candidate's learn-and-grow targeting.
func (g *ProfileContextGateway) ResolveCandidateContext(ctx context.Context, userID uuid.UUID) (domain.ProfileContext, error) {
	stats, err := g.marketdb.FetchCandidateProfileStats(ctx, userID)
	if err != nil {
		return domain.ProfileContext{}, err
	}
	if !stats.Exists {
		logger.Logger.InfoContext(ctx, "candidate has no profile, returning empty context", "user_id", userID)
		return domain.EmptyProfileContext(domain.UserRoleCandidate), nil
	}

	pc := domain.ProfileContext{
		Role:       domain.UserRoleCandidate,
		HasProfile: true,
		Blank:      stats.SkillCount == 0 && stats.WorkCount == 0 && stats.EducationCount == 0,
	}

	if stats.SkillCount > 0 {
		pc.SkillIDs, err = g.marketdb.FetchCandidateSkillIDs(ctx, userID)
		if err != nil {
			return domain.ProfileContext{}, err
		}
	}

	since := time.Now().AddDate(0, 0, -constants.FailedAssessmentWindowDays)
	failed, err := g.marketdb.FetchFailedAssessmentSkills(ctx, userID, since)
	if err != nil {
		return domain.ProfileContext{}, err
	}
	for _, skill := range failed {
		pc.FailedSkillIDs = append(pc.FailedSkillIDs, skill.ID)
		pc.FailedSkillNames = append(pc.FailedSkillNames, skill.Name)
	}

	return pc, nil
}

// ResolveAgencyContext loads the skill ids required across the agency's open
// positions. A caller without an org record gets the empty sentinel.
func (g *ProfileContextGateway) ResolveAgencyContext(ctx context.Context, userID uuid.UUID) (domain.ProfileContext, error) {
	agencyID, err := g.marketdb.FetchAgencyIDByOwner(ctx, userID)
	if err != nil {
		return domain.ProfileContext{}, err
	}
	if agencyID == uuid.Nil {
		logger.Logger.InfoContext(ctx, "caller has no agency, returning empty context", "user_id", userID)
		return domain.EmptyProfileContext(domain.UserRoleAgency), nil
	}

	skillIDs, err := g.marketdb.FetchAgencyRequiredSkillIDs(ctx, agencyID)
	if err != nil {
		return domain.ProfileContext{}, err
	}

	return domain.ProfileContext{
		Role:             domain.UserRoleAgency,
		HasProfile:       true,
		AgencyID:         agencyID,
		RequiredSkillIDs: skillIDs,
	}, nil
}
