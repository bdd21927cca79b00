package inject_recommendations_usecase

import (
	"context"

	"skillbridge/domain"
	"skillbridge/port/candidate_match_port"
	"skillbridge/utils/constants"
	"skillbridge/utils/logger"
)

// AgencyInjector produces candidate spotlight items for agency callers.
type AgencyInjector struct {
	candidateGateway candidate_match_port.MatchCandidatesPort
}

func NewAgencyInjector(candidateGateway candidate_match_port.MatchCandidatesPort) *AgencyInjector {
	return &AgencyInjector{candidateGateway: candidateGateway}
}

func (u *AgencyInjector) Inject(ctx context.Context, user *domain.UserContext, pc domain.ProfileContext, category domain.FeedCategory) ([]domain.RankedItem, error) {
	if !pc.CanPersonalize() || len(pc.RequiredSkillIDs) == 0 {
		return nil, nil
	}

	candidates, err := u.candidateGateway.FetchMatchingCandidates(ctx, pc.AgencyID, pc.RequiredSkillIDs, constants.MaxSpotlightInjections)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch matching candidates", "error", err, "agency_id", pc.AgencyID)
		return nil, err
	}

	var injected []domain.RankedItem
	for _, c := range candidates {
		userID := c.UserID
		item := domain.FeedItem{
			ID:            domain.VirtualID(domain.InjectionCandidateSpotlight, c.UserID),
			Type:          domain.FeedItemTypeSpotlight,
			Category:      domain.FeedCategoryRecommendation,
			Audience:      domain.AudienceAgencies,
			Title:         c.FirstName + " " + c.LastName,
			Body:          c.Headline,
			CTAText:       "View profile",
			CTALink:       "/candidates/" + c.UserID.String(),
			UserID:        &userID,
			UserFirstName: c.FirstName,
			UserLastName:  c.LastName,
			IsActive:      true,
			CreatedAt:     c.UpdatedAt,
		}
		injected = append(injected, domain.NewInjectedRankedItem(
			item, domain.InjectionCandidateSpotlight, domain.ScoreSpotlight, c.UpdatedAt))
	}

	logger.Logger.InfoContext(ctx, "agency injection computed", "agency_id", pc.AgencyID, "count", len(injected))
	return injected, nil
}
