package marketdb

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"
)

func TestMarketDBRepository_FetchMatchingPositions(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MarketDBRepository{pool: mock}

	candidateID := uuid.New()
	skillIDs := []uuid.UUID{uuid.New()}
	posID := uuid.New()
	agencyID := uuid.New()
	createdAt := time.Now().Add(-3 * time.Hour)

	rows := pgxmock.NewRows([]string{"id", "agency_id", "name", "title", "description", "created_at"}).
		AddRow(posID, agencyID, "Acme Staffing", "Go Engineer", "Backend services", createdAt)

	mock.ExpectQuery("NOT EXISTS").
		WithArgs(candidateID, skillIDs, 10).
		WillReturnRows(rows)

	positions, err := repo.FetchMatchingPositions(context.Background(), candidateID, skillIDs, 10)
	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.Equal(t, posID, positions[0].ID)
	assert.Equal(t, "Acme Staffing", positions[0].AgencyName)
	assert.Equal(t, createdAt, positions[0].CreatedAt)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketDBRepository_FetchMatchingPositions_NoSkillsShortCircuits(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MarketDBRepository{pool: mock}

	positions, err := repo.FetchMatchingPositions(context.Background(), uuid.New(), nil, 10)
	require.NoError(t, err)
	assert.Empty(t, positions)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketDBRepository_FetchLatestPublicPositions(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MarketDBRepository{pool: mock}

	rows := pgxmock.NewRows([]string{"id", "agency_id", "name", "title", "description", "created_at"}).
		AddRow(uuid.New(), uuid.New(), "Acme", "Any role", "desc", time.Now())

	mock.ExpectQuery("ORDER BY p.created_at DESC").
		WithArgs(10).
		WillReturnRows(rows)

	positions, err := repo.FetchLatestPublicPositions(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, positions, 1)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketDBRepository_FetchMatchingCandidates(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MarketDBRepository{pool: mock}

	agencyID := uuid.New()
	skillIDs := []uuid.UUID{uuid.New()}
	candidateID := uuid.New()
	updatedAt := time.Now().Add(-time.Hour)

	rows := pgxmock.NewRows([]string{"user_id", "first_name", "last_name", "headline", "updated_at"}).
		AddRow(candidateID, "Mari", "Tanaka", "Backend engineer", updatedAt)

	mock.ExpectQuery("candidate_profiles").
		WithArgs(agencyID, skillIDs, 5).
		WillReturnRows(rows)

	candidates, err := repo.FetchMatchingCandidates(context.Background(), agencyID, skillIDs, 5)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, candidateID, candidates[0].UserID)
	assert.Equal(t, "Backend engineer", candidates[0].Headline)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketDBRepository_FetchMatchingCandidates_NullHeadline(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MarketDBRepository{pool: mock}

	agencyID := uuid.New()
	skillIDs := []uuid.UUID{uuid.New()}

	rows := pgxmock.NewRows([]string{"user_id", "first_name", "last_name", "headline", "updated_at"}).
		AddRow(uuid.New(), "Ken", "Sato", nil, time.Now())

	mock.ExpectQuery("candidate_profiles").
		WithArgs(agencyID, skillIDs, 5).
		WillReturnRows(rows)

	candidates, err := repo.FetchMatchingCandidates(context.Background(), agencyID, skillIDs, 5)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Empty(t, candidates[0].Headline)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketDBRepository_FetchLearningResources(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MarketDBRepository{pool: mock}

	itemID := uuid.New()
	rows := addFeedItemRow(pgxmock.NewRows(feedItemColumns), itemID, "SQL fundamentals", time.Now())

	mock.ExpectQuery("target_skills &&").
		WithArgs("learn_and_grow", []string{"SQL"}, 3).
		WillReturnRows(rows)

	items, err := repo.FetchLearningResources(context.Background(), []string{"SQL"}, 3)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, itemID, items[0].ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketDBRepository_FetchLearningResources_NoSkillNames(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MarketDBRepository{pool: mock}

	items, err := repo.FetchLearningResources(context.Background(), nil, 3)
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, mock.ExpectationsWereMet())
}
