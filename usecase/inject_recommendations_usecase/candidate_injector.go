package inject_recommendations_usecase

import (
	"context"

	"skillbridge/domain"
	"skillbridge/port/learning_content_port"
	"skillbridge/port/position_match_port"
	"skillbridge/utils/constants"
	"skillbridge/utils/logger"
)

// Injector computes the synthetic per-request items for one caller role.
// Implementations are only invoked when the orchestrator's injection gate
// passed; they never re-derive pagination or search state.
type Injector interface {
	Inject(ctx context.Context, user *domain.UserContext, pc domain.ProfileContext, category domain.FeedCategory) ([]domain.RankedItem, error)
}

// CandidateInjector produces job-match and skill-gap learning items.
type CandidateInjector struct {
	positionGateway position_match_port.MatchPositionsPort
	learningGateway learning_content_port.FetchLearningContentPort
}

func NewCandidateInjector(
	positionGateway position_match_port.MatchPositionsPort,
	learningGateway learning_content_port.FetchLearningContentPort,
) *CandidateInjector {
	return &CandidateInjector{positionGateway: positionGateway, learningGateway: learningGateway}
}

func (u *CandidateInjector) Inject(ctx context.Context, user *domain.UserContext, pc domain.ProfileContext, category domain.FeedCategory) ([]domain.RankedItem, error) {
	if !pc.CanPersonalize() {
		return nil, nil
	}

	// Blank profiles have nothing to match on. Instead of an empty
	// recommendation surface they get the newest open positions.
	if pc.Blank {
		positions, err := u.positionGateway.FetchLatestPublicPositions(ctx, constants.MaxJobMatchInjections)
		if err != nil {
			logger.Logger.ErrorContext(ctx, "failed to fetch latest public positions", "error", err, "user_id", user.UserID)
			return nil, err
		}
		return rankPositions(positions), nil
	}

	var injected []domain.RankedItem

	if len(pc.SkillIDs) > 0 {
		positions, err := u.positionGateway.FetchMatchingPositions(ctx, user.UserID, pc.SkillIDs, constants.MaxJobMatchInjections)
		if err != nil {
			logger.Logger.ErrorContext(ctx, "failed to fetch matching positions", "error", err, "user_id", user.UserID)
			return nil, err
		}
		injected = append(injected, rankPositions(positions)...)
	}

	// Skill-gap learning items are skipped on the explicit recommendation
	// view, which is reserved for matches.
	if category != domain.FeedCategoryRecommendation && len(pc.FailedSkillNames) > 0 {
		resources, err := u.learningGateway.FetchLearningResources(ctx, pc.FailedSkillNames, constants.MaxLearningInjections)
		if err != nil {
			logger.Logger.ErrorContext(ctx, "failed to fetch learning resources", "error", err, "user_id", user.UserID)
			return nil, err
		}
		for _, item := range resources {
			item.ID = domain.VirtualID(domain.InjectionLearningMatch, item.ID)
			injected = append(injected, domain.NewInjectedRankedItem(
				item, domain.InjectionLearningMatch, domain.ScoreLearningMatch, item.CreatedAt))
		}
	}

	logger.Logger.InfoContext(ctx, "candidate injection computed", "user_id", user.UserID, "count", len(injected))
	return injected, nil
}

func rankPositions(positions []domain.OpenPosition) []domain.RankedItem {
	var ranked []domain.RankedItem
	for _, pos := range positions {
		agencyID := pos.AgencyID
		item := domain.FeedItem{
			ID:         domain.VirtualID(domain.InjectionJobMatch, pos.ID),
			Type:       domain.FeedItemTypeJobPost,
			Category:   domain.FeedCategoryRecommendation,
			Audience:   domain.AudienceCandidates,
			Title:      pos.Title,
			Body:       pos.Description,
			CTAText:    "View position",
			CTALink:    "/positions/" + pos.ID.String(),
			AgencyID:   &agencyID,
			AgencyName: pos.AgencyName,
			IsActive:   true,
			CreatedAt:  pos.CreatedAt,
		}
		ranked = append(ranked, domain.NewInjectedRankedItem(
			item, domain.InjectionJobMatch, domain.ScoreJobMatch, pos.CreatedAt))
	}
	return ranked
}
