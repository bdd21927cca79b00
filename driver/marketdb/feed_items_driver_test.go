package marketdb

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"skillbridge/domain"
	"skillbridge/utils/logger"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Initialize logger for tests
	var buf bytes.Buffer
	testLogger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	logger.Logger = testLogger
}

var feedItemColumns = []string{
	"id", "item_type", "category", "audience", "title", "body",
	"cta_text", "cta_link", "image_url", "agency_id", "agency_name",
	"user_id", "first_name", "last_name", "target_skills", "is_active", "created_at",
}

func addFeedItemRow(rows *pgxmock.Rows, id uuid.UUID, title string, createdAt time.Time) *pgxmock.Rows {
	return rows.AddRow(
		id, "article", "news", "candidates", title, "body text",
		nil, nil, nil, nil, nil,
		nil, nil, nil, []string{}, true, createdAt,
	)
}

func TestMarketDBRepository_FetchOrganicPage_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MarketDBRepository{pool: mock}

	itemID := uuid.New()
	createdAt := time.Now().Add(-1 * time.Hour)

	rows := addFeedItemRow(pgxmock.NewRows(feedItemColumns), itemID, "Hiring update", createdAt)

	mock.ExpectQuery("SELECT").
		WithArgs([]string{"all", "candidates"}, 30).
		WillReturnRows(rows)

	items, err := repo.FetchOrganicPage(context.Background(), OrganicPageParams{
		Audience: domain.AudienceCandidates,
		Category: domain.FeedCategoryAll,
		Limit:    30,
	})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, itemID, items[0].ID)
	assert.Equal(t, "Hiring update", items[0].Title)
	assert.Equal(t, domain.FeedCategoryNews, items[0].Category)
	assert.Empty(t, items[0].CTAText)
	assert.Nil(t, items[0].AgencyID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketDBRepository_FetchOrganicPage_CategoryAndCursor(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MarketDBRepository{pool: mock}

	cursor := uuid.New()
	itemID := uuid.New()

	rows := addFeedItemRow(pgxmock.NewRows(feedItemColumns), itemID, "Older item", time.Now().Add(-48*time.Hour))

	mock.ExpectQuery("SELECT").
		WithArgs([]string{"all", "agencies"}, "news", cursor, 10).
		WillReturnRows(rows)

	items, err := repo.FetchOrganicPage(context.Background(), OrganicPageParams{
		Audience: domain.AudienceAgencies,
		Category: domain.FeedCategoryNews,
		Cursor:   &cursor,
		Limit:    10,
	})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, itemID, items[0].ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketDBRepository_FetchOrganicPage_SearchTokens(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MarketDBRepository{pool: mock}

	rows := pgxmock.NewRows(feedItemColumns)

	mock.ExpectQuery("ILIKE").
		WithArgs([]string{"all", "candidates"}, "%engineer%", "%remote%", 30).
		WillReturnRows(rows)

	items, err := repo.FetchOrganicPage(context.Background(), OrganicPageParams{
		Audience:     domain.AudienceCandidates,
		Category:     domain.FeedCategoryAll,
		SearchTokens: []string{"engineer", "remote"},
		Limit:        30,
	})
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketDBRepository_FetchOrganicPage_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MarketDBRepository{pool: mock}

	mock.ExpectQuery("SELECT").
		WithArgs([]string{"all", "candidates"}, 30).
		WillReturnError(assert.AnError)

	_, err = repo.FetchOrganicPage(context.Background(), OrganicPageParams{
		Audience: domain.AudienceCandidates,
		Category: domain.FeedCategoryAll,
		Limit:    30,
	})
	assert.Error(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendSearchFilter(t *testing.T) {
	query, args := appendSearchFilter("SELECT 1", []any{"base"}, []string{"go", "backend"})

	assert.Contains(t, query, "f.title ILIKE $2")
	assert.Contains(t, query, "u.last_name ILIKE $2")
	assert.Contains(t, query, "f.title ILIKE $3")
	assert.Equal(t, []any{"base", "%go%", "%backend%"}, args)
}

func TestAppendSearchFilter_NoTokens(t *testing.T) {
	query, args := appendSearchFilter("SELECT 1", []any{"base"}, nil)

	assert.Equal(t, "SELECT 1", query)
	assert.Equal(t, []any{"base"}, args)
}
