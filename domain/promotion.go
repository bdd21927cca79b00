package domain

import (
	"time"

	"github.com/google/uuid"
)

// PromotionTier decides the score bonus a boosted item receives.
type PromotionTier string

const (
	PromotionTierStandard PromotionTier = "standard"
	PromotionTierPremium  PromotionTier = "premium"
)

// PromotionStatus is the stored lifecycle state. Liveness additionally
// requires the time window to hold; the stored status alone is not trusted.
type PromotionStatus string

const (
	PromotionStatusPending PromotionStatus = "pending"
	PromotionStatusActive  PromotionStatus = "active"
	PromotionStatusExpired PromotionStatus = "expired"
	PromotionStatusFailed  PromotionStatus = "failed"
)

// Promotion is a paid boost attached to one feed item.
type Promotion struct {
	ID         uuid.UUID       `json:"id"`
	FeedItemID uuid.UUID       `json:"feed_item_id"`
	Tier       PromotionTier   `json:"tier"`
	Amount     int64           `json:"amount"`
	Status     PromotionStatus `json:"status"`
	StartsAt   time.Time       `json:"starts_at"`
	EndsAt     time.Time       `json:"ends_at"`
}

// IsLive reports whether the promotion boosts its item at the given instant.
// The window is inclusive of StartsAt and exclusive of EndsAt.
func (p *Promotion) IsLive(now time.Time) bool {
	return p.Status == PromotionStatusActive && !now.Before(p.StartsAt) && now.Before(p.EndsAt)
}

// LivePromotionIndex maps feed item ids to their live promotion, dropping
// promotions whose stored status or window disqualifies them.
func LivePromotionIndex(promotions []*Promotion, now time.Time) map[uuid.UUID]*Promotion {
	index := make(map[uuid.UUID]*Promotion, len(promotions))
	for _, p := range promotions {
		if p != nil && p.IsLive(now) {
			index[p.FeedItemID] = p
		}
	}
	return index
}
