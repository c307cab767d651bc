package service

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zachweston123/artwalls-payments/internal/cache"
	"github.com/zachweston123/artwalls-payments/internal/models"
	"github.com/zachweston123/artwalls-payments/internal/repository/posgrest"
	"github.com/zachweston123/artwalls-payments/internal/webhook"
)

// ledgerCacheTTL keeps recently processed event ids in the fast path.
// The database row is the source of truth and lives forever.
const ledgerCacheTTL = 24 * time.Hour

// ProcessedEventRepo defines the persistence operations the ledger needs.
type ProcessedEventRepo interface {
	Exists(ctx context.Context, key string, value interface{}) (bool, error)
	Insert(ctx context.Context, record *models.ProcessedEvent) error
}

// EventLedgerStore implements webhook.EventLedger on the processed_events
// table, with an optional cache in front for the lookup. A cache miss or
// cache error always falls through to the database; the unique constraint
// there is what the at-most-once guarantee actually rests on.
type EventLedgerStore struct {
	Repo  ProcessedEventRepo
	Cache cache.Store
}

func NewEventLedgerStore(repo ProcessedEventRepo, cacheStore cache.Store) *EventLedgerStore {
	return &EventLedgerStore{
		Repo:  repo,
		Cache: cacheStore,
	}
}

func (l *EventLedgerStore) Seen(ctx context.Context, eventID string) (bool, error) {
	if l.Cache != nil {
		_, found, err := l.Cache.Get(ctx, cacheKey(eventID))
		if err != nil {
			logrus.Warnf("ledger cache lookup failed (falling through): %v", err)
		} else if found {
			return true, nil
		}
	}

	return l.Repo.Exists(ctx, "event_id = ?", eventID)
}

func (l *EventLedgerStore) Record(ctx context.Context, eventID string) error {
	err := l.Repo.Insert(ctx, &models.ProcessedEvent{EventID: eventID})
	if errors.Is(err, posgrest.ErrConflict) {
		l.cachePut(ctx, eventID)
		return webhook.ErrAlreadyRecorded
	}
	if err != nil {
		return err
	}

	l.cachePut(ctx, eventID)
	return nil
}

// cachePut is best effort; the database row already exists.
func (l *EventLedgerStore) cachePut(ctx context.Context, eventID string) {
	if l.Cache == nil {
		return
	}
	if err := l.Cache.Put(ctx, cacheKey(eventID), "1", ledgerCacheTTL); err != nil {
		logrus.Warnf("ledger cache write failed (ignored): %v", err)
	}
}

func cacheKey(eventID string) string {
	return "processed:" + eventID
}
