package marketdb

import (
	"context"
	"errors"
	"time"

	"skillbridge/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CandidateProfileStats is the raw material for the candidate profile
// context: existence plus the counts that decide blankness.
type CandidateProfileStats struct {
	Exists         bool
	SkillCount     int
	WorkCount      int
	EducationCount int
}

// FetchCandidateProfileStats loads profile existence and section counts in
// one round trip.
func (r *MarketDBRepository) FetchCandidateProfileStats(ctx context.Context, userID uuid.UUID) (CandidateProfileStats, error) {
	if r == nil || r.pool == nil {
		return CandidateProfileStats{}, errors.New("database connection not available")
	}

	query := `
		SELECT
			EXISTS(SELECT 1 FROM candidate_profiles WHERE user_id = $1),
			(SELECT COUNT(*) FROM user_skills WHERE user_id = $1),
			(SELECT COUNT(*) FROM work_experiences WHERE user_id = $1),
			(SELECT COUNT(*) FROM educations WHERE user_id = $1)
	`

	var stats CandidateProfileStats
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&stats.Exists, &stats.SkillCount, &stats.WorkCount, &stats.EducationCount)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching candidate profile stats", "error", err, "user_id", userID)
		return CandidateProfileStats{}, errors.New("error fetching candidate profile stats")
	}

	return stats, nil
}

// FetchCandidateSkillIDs returns the candidate's declared skill ids.
func (r *MarketDBRepository) FetchCandidateSkillIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `SELECT skill_id FROM user_skills WHERE user_id = $1`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching candidate skills", "error", err, "user_id", userID)
		return nil, errors.New("error fetching candidate skills")
	}
	defer rows.Close()

	return scanUUIDs(rows)
}

// FailedAssessmentSkill pairs a skill id with its display name. Names feed
// the learn-and-grow targeting metadata match.
type FailedAssessmentSkill struct {
	ID   uuid.UUID
	Name string
}

// FetchFailedAssessmentSkills returns the distinct skills behind assessment
// attempts the candidate failed since the given time.
func (r *MarketDBRepository) FetchFailedAssessmentSkills(ctx context.Context, userID uuid.UUID, since time.Time) ([]FailedAssessmentSkill, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		SELECT DISTINCT s.id, s.name
		FROM assessment_attempts aa
		JOIN skills s ON s.id = aa.skill_id
		WHERE aa.user_id = $1 AND aa.passed = FALSE AND aa.completed_at >= $2
	`

	rows, err := r.pool.Query(ctx, query, userID, since)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching failed assessment skills", "error", err, "user_id", userID)
		return nil, errors.New("error fetching failed assessment skills")
	}
	defer rows.Close()

	var skills []FailedAssessmentSkill
	for rows.Next() {
		var skill FailedAssessmentSkill
		if err := rows.Scan(&skill.ID, &skill.Name); err != nil {
			logger.Logger.ErrorContext(ctx, "error scanning failed assessment skill", "error", err)
			return nil, errors.New("error scanning failed assessment skill")
		}
		skills = append(skills, skill)
	}

	return skills, rows.Err()
}

// FetchAgencyIDByOwner resolves the agency record owned by the caller.
// Returns uuid.Nil and no error when the caller has no registered org.
func (r *MarketDBRepository) FetchAgencyIDByOwner(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	if r == nil || r.pool == nil {
		return uuid.Nil, errors.New("database connection not available")
	}

	query := `SELECT id FROM agencies WHERE owner_user_id = $1`

	var agencyID uuid.UUID
	err := r.pool.QueryRow(ctx, query, userID).Scan(&agencyID)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, nil
	}
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching agency by owner", "error", err, "user_id", userID)
		return uuid.Nil, errors.New("error fetching agency by owner")
	}

	return agencyID, nil
}

// FetchAgencyRequiredSkillIDs collects the distinct skill ids required across
// the agency's open positions.
func (r *MarketDBRepository) FetchAgencyRequiredSkillIDs(ctx context.Context, agencyID uuid.UUID) ([]uuid.UUID, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		SELECT DISTINCT ps.skill_id
		FROM position_skills ps
		JOIN positions p ON p.id = ps.position_id
		WHERE p.agency_id = $1 AND p.status = 'open'
	`

	rows, err := r.pool.Query(ctx, query, agencyID)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching agency required skills", "error", err, "agency_id", agencyID)
		return nil, errors.New("error fetching agency required skills")
	}
	defer rows.Close()

	return scanUUIDs(rows)
}

func scanUUIDs(rows pgx.Rows) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			logger.Logger.Error("error scanning uuid column", "error", err)
			return nil, errors.New("error scanning uuid column")
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
