package marketdb

import (
	"context"
	"errors"
	"time"

	"skillbridge/domain"
	"skillbridge/utils/logger"
)

// FetchLivePromotions returns promotions that are active in storage AND whose
// validity window contains now. The window check is repeated in the domain
// layer; filtering here just keeps the result small.
func (r *MarketDBRepository) FetchLivePromotions(ctx context.Context, now time.Time) ([]*domain.Promotion, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		SELECT id, feed_item_id, tier, amount, status, starts_at, ends_at
		FROM promotions
		WHERE status = 'active' AND starts_at <= $1 AND ends_at > $1
	`

	rows, err := r.pool.Query(ctx, query, now)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching live promotions", "error", err)
		return nil, errors.New("error fetching live promotions")
	}
	defer rows.Close()

	var promotions []*domain.Promotion
	for rows.Next() {
		var p domain.Promotion
		err := rows.Scan(&p.ID, &p.FeedItemID, &p.Tier, &p.Amount, &p.Status, &p.StartsAt, &p.EndsAt)
		if err != nil {
			logger.Logger.ErrorContext(ctx, "error scanning promotion", "error", err)
			return nil, errors.New("error scanning promotion")
		}
		promotions = append(promotions, &p)
	}

	return promotions, rows.Err()
}
