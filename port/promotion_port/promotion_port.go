package promotion_port

import (
	"context"
	"time"

	"skillbridge/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=promotion_port.go -destination=../../mocks/mock_promotion_port.go -package=mocks

// FetchPromotionsPort reads currently live paid boosts. Implementations must
// filter on the validity window at read time, not only on the stored status.
type FetchPromotionsPort interface {
	FetchLivePromotions(ctx context.Context, now time.Time) ([]*domain.Promotion, error)
}
