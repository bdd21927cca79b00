package marketdb

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketDBRepository_FetchCandidateProfileStats(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MarketDBRepository{pool: mock}
	userID := uuid.New()

	mock.ExpectQuery("SELECT").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"exists", "skills", "work", "education"}).
			AddRow(true, 3, 1, 0))

	stats, err := repo.FetchCandidateProfileStats(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, stats.Exists)
	assert.Equal(t, 3, stats.SkillCount)
	assert.Equal(t, 1, stats.WorkCount)
	assert.Equal(t, 0, stats.EducationCount)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketDBRepository_FetchFailedAssessmentSkills(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MarketDBRepository{pool: mock}
	userID := uuid.New()
	since := time.Now().AddDate(0, 0, -90)
	skillID := uuid.New()

	mock.ExpectQuery("SELECT DISTINCT").
		WithArgs(userID, since).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow(skillID, "SQL"))

	skills, err := repo.FetchFailedAssessmentSkills(context.Background(), userID, since)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, skillID, skills[0].ID)
	assert.Equal(t, "SQL", skills[0].Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketDBRepository_FetchAgencyIDByOwner_NoRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MarketDBRepository{pool: mock}
	userID := uuid.New()

	mock.ExpectQuery("SELECT id FROM agencies").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	agencyID, err := repo.FetchAgencyIDByOwner(context.Background(), userID)
	require.NoError(t, err, "a caller without an org is not an error")
	assert.Equal(t, uuid.Nil, agencyID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketDBRepository_FetchAgencyIDByOwner_Found(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MarketDBRepository{pool: mock}
	userID := uuid.New()
	agencyID := uuid.New()

	mock.ExpectQuery("SELECT id FROM agencies").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(agencyID))

	got, err := repo.FetchAgencyIDByOwner(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, agencyID, got)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketDBRepository_FetchAgencyRequiredSkillIDs(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MarketDBRepository{pool: mock}
	agencyID := uuid.New()
	skillA := uuid.New()
	skillB := uuid.New()

	mock.ExpectQuery("SELECT DISTINCT ps.skill_id").
		WithArgs(agencyID).
		WillReturnRows(pgxmock.NewRows([]string{"skill_id"}).AddRow(skillA).AddRow(skillB))

	ids, err := repo.FetchAgencyRequiredSkillIDs(context.Background(), agencyID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{skillA, skillB}, ids)

	require.NoError(t, mock.ExpectationsWereMet())
}
