package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zachweston123/artwalls-payments/internal/cache"
	"github.com/zachweston123/artwalls-payments/internal/models"
	"github.com/zachweston123/artwalls-payments/internal/repository/posgrest"
	"github.com/zachweston123/artwalls-payments/internal/service"
	"github.com/zachweston123/artwalls-payments/internal/service/mocks"
	"github.com/zachweston123/artwalls-payments/internal/webhook"
)

func TestLedgerSeen_FallsThroughToDatabase(t *testing.T) {
	mockRepo := mocks.NewMockProcessedEventRepo(t)
	ledger := service.NewEventLedgerStore(mockRepo, cache.NewMemoryStore(0))

	ctx := context.Background()
	mockRepo.EXPECT().Exists(ctx, "event_id = ?", "evt_1").Return(true, nil).Once()

	seen, err := ledger.Seen(ctx, "evt_1")

	require.NoError(t, err)
	assert.True(t, seen)
}

func TestLedgerRecord_PrimesCacheForNextLookup(t *testing.T) {
	mockRepo := mocks.NewMockProcessedEventRepo(t)
	ledger := service.NewEventLedgerStore(mockRepo, cache.NewMemoryStore(0))

	ctx := context.Background()
	mockRepo.EXPECT().
		Insert(ctx, mock.MatchedBy(func(r *models.ProcessedEvent) bool {
			return r.EventID == "evt_2"
		})).
		Return(nil).
		Once()

	require.NoError(t, ledger.Record(ctx, "evt_2"))

	// Second delivery hits the cache, not the database.
	seen, err := ledger.Seen(ctx, "evt_2")
	require.NoError(t, err)
	assert.True(t, seen)
	mockRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
}

func TestLedgerRecord_ConflictMeansAlreadyRecorded(t *testing.T) {
	mockRepo := mocks.NewMockProcessedEventRepo(t)
	ledger := service.NewEventLedgerStore(mockRepo, nil)

	ctx := context.Background()
	mockRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*models.ProcessedEvent")).
		Return(posgrest.ErrConflict).
		Once()

	err := ledger.Record(ctx, "evt_3")

	assert.ErrorIs(t, err, webhook.ErrAlreadyRecorded)
}

func TestLedgerRecord_OtherInsertFailuresSurface(t *testing.T) {
	mockRepo := mocks.NewMockProcessedEventRepo(t)
	ledger := service.NewEventLedgerStore(mockRepo, nil)

	ctx := context.Background()
	dbErr := errors.New("connection refused")
	mockRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*models.ProcessedEvent")).
		Return(dbErr).
		Once()

	err := ledger.Record(ctx, "evt_4")

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, webhook.ErrAlreadyRecorded)
}

func TestLedgerSeen_NoCacheConfigured(t *testing.T) {
	mockRepo := mocks.NewMockProcessedEventRepo(t)
	ledger := service.NewEventLedgerStore(mockRepo, nil)

	ctx := context.Background()
	mockRepo.EXPECT().Exists(ctx, "event_id = ?", "evt_5").Return(false, nil).Once()

	seen, err := ledger.Seen(ctx, "evt_5")

	require.NoError(t, err)
	assert.False(t, seen)
}

func TestLedger_CacheEntryExpires(t *testing.T) {
	mockRepo := mocks.NewMockProcessedEventRepo(t)
	store := cache.NewMemoryStore(0)
	now := time.Unix(1_700_000_000, 0)
	store.SetClock(func() time.Time { return now })
	ledger := service.NewEventLedgerStore(mockRepo, store)

	ctx := context.Background()
	mockRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*models.ProcessedEvent")).
		Return(nil).
		Once()
	require.NoError(t, ledger.Record(ctx, "evt_6"))

	// After the cache entry ages out, the database remains the source of
	// truth.
	now = now.Add(25 * time.Hour)
	mockRepo.EXPECT().Exists(ctx, "event_id = ?", "evt_6").Return(true, nil).Once()

	seen, err := ledger.Seen(ctx, "evt_6")
	require.NoError(t, err)
	assert.True(t, seen)
}
