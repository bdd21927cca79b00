package marketdb

import (
	"context"
	"errors"

	"skillbridge/domain"
	"skillbridge/utils/logger"
)

// FetchLearningResources returns active learn-and-grow items whose targeting
// metadata overlaps the given skill names, newest first.
func (r *MarketDBRepository) FetchLearningResources(ctx context.Context, skillNames []string, limit int) ([]domain.FeedItem, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}
	if len(skillNames) == 0 {
		return nil, nil
	}

	query := selectFeedItemsSQL + `
	WHERE f.is_active = TRUE
	AND f.category = $1
	AND f.target_skills && $2
	ORDER BY f.created_at DESC, f.id DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, string(domain.FeedCategoryLearnAndGrow), skillNames, limit)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching learning resources", "error", err, "limit", limit)
		return nil, errors.New("error fetching learning resources")
	}
	defer rows.Close()

	var items []domain.FeedItem
	for rows.Next() {
		item, err := scanFeedItem(rows)
		if err != nil {
			logger.Logger.ErrorContext(ctx, "error scanning learning resource", "error", err)
			return nil, errors.New("error scanning learning resource")
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
