package assemble_feed_usecase

import (
	"context"
	"time"

	"skillbridge/domain"
	"skillbridge/port/feed_content_port"
	"skillbridge/port/promotion_port"
	"skillbridge/usecase/inject_recommendations_usecase"
	"skillbridge/usecase/resolve_profile_usecase"
	"skillbridge/utils/constants"
	"skillbridge/utils/logger"
	"skillbridge/utils/metrics"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// FeedPage is the assembled response: ordered items plus the cursor for the
// next organic page. The cursor derives from the organic stream only.
type FeedPage struct {
	Items      []domain.RankedItem
	NextCursor *uuid.UUID
}

// AssembleFeedUsecase orchestrates one feed request: resolve the caller's
// personalization context, fetch organic content and live promotions
// concurrently, inject role-specific recommendations when the gate allows,
// score, order under the view's policy, and deduplicate.
type AssembleFeedUsecase struct {
	contentGateway    feed_content_port.FetchOrganicContentPort
	promotionGateway  promotion_port.FetchPromotionsPort
	profileUsecase    *resolve_profile_usecase.ResolveProfileUsecase
	candidateInjector inject_recommendations_usecase.Injector
	agencyInjector    inject_recommendations_usecase.Injector
	feedMetrics       *metrics.FeedMetrics
	now               func() time.Time
}

func NewAssembleFeedUsecase(
	contentGateway feed_content_port.FetchOrganicContentPort,
	promotionGateway promotion_port.FetchPromotionsPort,
	profileUsecase *resolve_profile_usecase.ResolveProfileUsecase,
	candidateInjector inject_recommendations_usecase.Injector,
	agencyInjector inject_recommendations_usecase.Injector,
	feedMetrics *metrics.FeedMetrics,
) *AssembleFeedUsecase {
	return &AssembleFeedUsecase{
		contentGateway:    contentGateway,
		promotionGateway:  promotionGateway,
		profileUsecase:    profileUsecase,
		candidateInjector: candidateInjector,
		agencyInjector:    agencyInjector,
		feedMetrics:       feedMetrics,
		now:               time.Now,
	}
}

func (u *AssembleFeedUsecase) Execute(ctx context.Context, user *domain.UserContext, query domain.FeedQuery) (*FeedPage, error) {
	start := u.now()
	policy := domain.PolicyFor(query)

	page, err := u.assemble(ctx, user, query, policy)

	u.feedMetrics.RecordRequest(policy.Name(), err)
	u.feedMetrics.ObserveAssembly(policy.Name(), u.now().Sub(start))
	return page, err
}

func (u *AssembleFeedUsecase) assemble(ctx context.Context, user *domain.UserContext, query domain.FeedQuery, policy domain.OrderingPolicy) (*FeedPage, error) {
	if user == nil || !user.IsValid() {
		return nil, domain.ErrInvalidUserContext
	}
	if !query.Category.IsValid() {
		logger.Logger.ErrorContext(ctx, "invalid feed category requested", "category", query.Category, "user_id", user.UserID)
		return nil, domain.ErrInvalidCategory
	}

	pc, err := u.profileUsecase.Execute(ctx, user)
	if err != nil {
		return nil, err
	}

	// A candidate with no profile at all has no resolvable audience; the
	// feed is empty rather than an error.
	if user.Role == domain.UserRoleCandidate && !pc.HasProfile {
		logger.Logger.InfoContext(ctx, "candidate without profile, serving empty feed", "user_id", user.UserID)
		u.feedMetrics.RecordEmptyContext()
		return &FeedPage{Items: []domain.RankedItem{}}, nil
	}
	if user.Role == domain.UserRoleAgency && !pc.HasProfile {
		u.feedMetrics.RecordEmptyContext()
	}

	limit := constants.CategoryPageSize
	if query.IsAllCategories() {
		limit = constants.AllCategoriesPageSize
	}

	var (
		organic    []domain.FeedItem
		promotions []*domain.Promotion
	)
	now := u.now()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var fetchErr error
		organic, fetchErr = u.contentGateway.FetchOrganicPage(gctx, feed_content_port.OrganicPageQuery{
			Role:         user.Role,
			Category:     query.Category,
			Cursor:       query.Cursor,
			SearchTokens: query.SearchTokens(),
			Limit:        limit,
		})
		return fetchErr
	})
	g.Go(func() error {
		var fetchErr error
		promotions, fetchErr = u.promotionGateway.FetchLivePromotions(gctx, now)
		return fetchErr
	})
	if err := g.Wait(); err != nil {
		logger.Logger.ErrorContext(ctx, "failed to assemble feed inputs", "error", err, "user_id", user.UserID)
		return nil, err
	}

	// Pagination state comes from the organic stream alone. Injected items
	// are recomputed per call and cannot back a cursor.
	var nextCursor *uuid.UUID
	if len(organic) == limit {
		last := organic[len(organic)-1].ID
		nextCursor = &last
	}

	var ranked []domain.RankedItem

	if query.AllowsInjection() {
		injected, err := u.inject(ctx, user, pc, query.Category)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, injected...)
	}

	promoIndex := domain.LivePromotionIndex(promotions, now)
	for _, item := range organic {
		ranked = append(ranked, domain.NewOrganicRankedItem(item, promoIndex[item.ID]))
	}

	ordered := domain.DeduplicateByID(policy.Order(ranked))

	logger.Logger.InfoContext(ctx, "feed assembled",
		"user_id", user.UserID,
		"policy", policy.Name(),
		"organic", len(organic),
		"total", len(ordered),
		"has_next", nextCursor != nil)

	return &FeedPage{Items: ordered, NextCursor: nextCursor}, nil
}

func (u *AssembleFeedUsecase) inject(ctx context.Context, user *domain.UserContext, pc domain.ProfileContext, category domain.FeedCategory) ([]domain.RankedItem, error) {
	injector := u.candidateInjector
	if user.Role == domain.UserRoleAgency {
		injector = u.agencyInjector
	}
	if injector == nil {
		return nil, nil
	}

	injected, err := injector.Inject(ctx, user, pc, category)
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.InjectionKind]int)
	for _, item := range injected {
		counts[item.Injection]++
	}
	for kind, count := range counts {
		u.feedMetrics.RecordInjected(string(kind), count)
	}

	return injected, nil
}
