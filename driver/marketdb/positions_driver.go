package marketdb

import (
	"context"
	"errors"

	"skillbridge/domain"
	"skillbridge/utils/logger"

	"github.com/google/uuid"
)

const selectOpenPositionsSQL = `
	SELECT p.id, p.agency_id, a.name, p.title, p.description, p.created_at
	FROM positions p
	JOIN agencies a ON a.id = p.agency_id
	WHERE p.status = 'open' AND p.is_public = TRUE
`

// FetchMatchingPositions returns open positions requiring at least one of the
// candidate's skills, skipping positions the candidate already applied to.
func (r *MarketDBRepository) FetchMatchingPositions(ctx context.Context, candidateID uuid.UUID, skillIDs []uuid.UUID, limit int) ([]domain.OpenPosition, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}
	if len(skillIDs) == 0 {
		return nil, nil
	}

	query := selectOpenPositionsSQL + `
		AND EXISTS (
			SELECT 1 FROM position_skills ps
			WHERE ps.position_id = p.id AND ps.skill_id = ANY($2)
		)
		AND NOT EXISTS (
			SELECT 1 FROM applications app
			WHERE app.position_id = p.id AND app.candidate_id = $1
		)
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $3
	`

	rows, err := r.pool.Query(ctx, query, candidateID, skillIDs, limit)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching matching positions", "error", err, "candidate_id", candidateID)
		return nil, errors.New("error fetching matching positions")
	}
	defer rows.Close()

	return scanOpenPositions(rows)
}

// FetchLatestPublicPositions returns the newest open positions regardless of
// skill overlap. Used when the candidate profile has nothing to match on.
func (r *MarketDBRepository) FetchLatestPublicPositions(ctx context.Context, limit int) ([]domain.OpenPosition, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := selectOpenPositionsSQL + `
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching latest public positions", "error", err)
		return nil, errors.New("error fetching latest public positions")
	}
	defer rows.Close()

	return scanOpenPositions(rows)
}

func scanOpenPositions(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]domain.OpenPosition, error) {
	var positions []domain.OpenPosition
	for rows.Next() {
		var pos domain.OpenPosition
		err := rows.Scan(&pos.ID, &pos.AgencyID, &pos.AgencyName, &pos.Title, &pos.Description, &pos.CreatedAt)
		if err != nil {
			logger.Logger.Error("error scanning open position", "error", err)
			return nil, errors.New("error scanning open position")
		}
		positions = append(positions, pos)
	}
	return positions, rows.Err()
}
