package marketdb

import (
	"context"
	"testing"
	"time"

	"skillbridge/domain"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketDBRepository_FetchLivePromotions_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MarketDBRepository{pool: mock}

	now := time.Now()
	promoID := uuid.New()
	feedItemID := uuid.New()

	rows := pgxmock.NewRows([]string{
		"id", "feed_item_id", "tier", "amount", "status", "starts_at", "ends_at",
	}).AddRow(
		promoID, feedItemID, "premium", int64(50000), "active",
		now.Add(-time.Hour), now.Add(time.Hour),
	)

	mock.ExpectQuery("SELECT").
		WithArgs(now).
		WillReturnRows(rows)

	promotions, err := repo.FetchLivePromotions(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, promotions, 1)
	assert.Equal(t, promoID, promotions[0].ID)
	assert.Equal(t, feedItemID, promotions[0].FeedItemID)
	assert.Equal(t, domain.PromotionTierPremium, promotions[0].Tier)
	assert.True(t, promotions[0].IsLive(now))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketDBRepository_FetchLivePromotions_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MarketDBRepository{pool: mock}
	now := time.Now()

	mock.ExpectQuery("SELECT").
		WithArgs(now).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "feed_item_id", "tier", "amount", "status", "starts_at", "ends_at",
		}))

	promotions, err := repo.FetchLivePromotions(context.Background(), now)
	require.NoError(t, err)
	assert.Empty(t, promotions)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketDBRepository_FetchLivePromotions_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MarketDBRepository{pool: mock}
	now := time.Now()

	mock.ExpectQuery("SELECT").
		WithArgs(now).
		WillReturnError(assert.AnError)

	_, err = repo.FetchLivePromotions(context.Background(), now)
	assert.Error(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}
