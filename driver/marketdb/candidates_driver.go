package marketdb

import (
	"context"
	"database/sql"
	"errors"

	"skillbridge/domain"
	"skillbridge/utils/logger"
	utilsql "skillbridge/utils/sql"

	"github.com/google/uuid"
)

// FetchMatchingCandidates returns candidates holding at least one of the
// agency's required skills, skipping candidates the agency already hired.
func (r *MarketDBRepository) FetchMatchingCandidates(ctx context.Context, agencyID uuid.UUID, skillIDs []uuid.UUID, limit int) ([]domain.CandidateSummary, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}
	if len(skillIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT cp.user_id, u.first_name, u.last_name, cp.headline, cp.updated_at
		FROM candidate_profiles cp
		JOIN users u ON u.id = cp.user_id
		WHERE cp.visibility = 'public'
		AND EXISTS (
			SELECT 1 FROM user_skills us
			WHERE us.user_id = cp.user_id AND us.skill_id = ANY($2)
		)
		AND NOT EXISTS (
			SELECT 1 FROM hires h
			WHERE h.candidate_id = cp.user_id AND h.agency_id = $1
		)
		ORDER BY cp.updated_at DESC, cp.user_id DESC
		LIMIT $3
	`

	rows, err := r.pool.Query(ctx, query, agencyID, skillIDs, limit)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching matching candidates", "error", err, "agency_id", agencyID)
		return nil, errors.New("error fetching matching candidates")
	}
	defer rows.Close()

	var candidates []domain.CandidateSummary
	for rows.Next() {
		var c domain.CandidateSummary
		var headline sql.NullString
		err := rows.Scan(&c.UserID, &c.FirstName, &c.LastName, &headline, &c.UpdatedAt)
		if err != nil {
			logger.Logger.Error("error scanning candidate summary", "error", err)
			return nil, errors.New("error scanning candidate summary")
		}
		c.Headline = utilsql.NullString(headline)
		candidates = append(candidates, c)
	}

	return candidates, rows.Err()
}
