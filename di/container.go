package di

import (
	"skillbridge/driver/marketdb"
	"skillbridge/gateway/candidate_match_gateway"
	"skillbridge/gateway/feed_content_gateway"
	"skillbridge/gateway/learning_content_gateway"
	"skillbridge/gateway/position_match_gateway"
	"skillbridge/gateway/profile_context_gateway"
	"skillbridge/gateway/promotion_gateway"
	"skillbridge/usecase/assemble_feed_usecase"
	"skillbridge/usecase/inject_recommendations_usecase"
	"skillbridge/usecase/resolve_profile_usecase"
	"skillbridge/utils/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

type ApplicationComponents struct {
	AssembleFeedUsecase   *assemble_feed_usecase.AssembleFeedUsecase
	ResolveProfileUsecase *resolve_profile_usecase.ResolveProfileUsecase
	MarketDBRepository    *marketdb.MarketDBRepository
	FeedMetrics           *metrics.FeedMetrics
}

func NewApplicationComponents(pool *pgxpool.Pool) *ApplicationComponents {
	return newApplicationComponents(pool, prometheus.DefaultRegisterer)
}

// NewApplicationComponentsWithRegistry wires the graph against an isolated
// metrics registry. Tests use it to avoid duplicate collector registration.
func NewApplicationComponentsWithRegistry(pool *pgxpool.Pool, reg prometheus.Registerer) *ApplicationComponents {
	return newApplicationComponents(pool, reg)
}

func newApplicationComponents(pool *pgxpool.Pool, reg prometheus.Registerer) *ApplicationComponents {
	contentGateway := feed_content_gateway.NewFeedContentGateway(pool)
	promotionGateway := promotion_gateway.NewPromotionGateway(pool)
	profileGateway := profile_context_gateway.NewProfileContextGateway(pool)
	positionGateway := position_match_gateway.NewPositionMatchGateway(pool)
	candidateGateway := candidate_match_gateway.NewCandidateMatchGateway(pool)
	learningGateway := learning_content_gateway.NewLearningContentGateway(pool)

	feedMetrics := metrics.NewFeedMetrics(reg)

	resolveProfileUsecase := resolve_profile_usecase.NewResolveProfileUsecase(profileGateway)
	candidateInjector := inject_recommendations_usecase.NewCandidateInjector(positionGateway, learningGateway)
	agencyInjector := inject_recommendations_usecase.NewAgencyInjector(candidateGateway)

	assembleFeedUsecase := assemble_feed_usecase.NewAssembleFeedUsecase(
		contentGateway,
		promotionGateway,
		resolveProfileUsecase,
		candidateInjector,
		agencyInjector,
		feedMetrics,
	)

	return &ApplicationComponents{
		AssembleFeedUsecase:   assembleFeedUsecase,
		ResolveProfileUsecase: resolveProfileUsecase,
		MarketDBRepository:    marketdb.NewMarketDBRepository(pool),
		FeedMetrics:           feedMetrics,
	}
}
