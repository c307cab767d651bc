package ratelimit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zachweston123/artwalls-payments/internal/cache"
)

// Decision is the outcome of a rate limit check. When blocked, BlockedBy
// names the violated rule and RetryAfterSec tells the caller how long to
// back off (at least 1).
type Decision struct {
	Allowed       bool
	BlockedBy     string
	RetryAfterSec int
}

type bucket struct {
	Count       int   `json:"count"`
	WindowStart int64 `json:"window_start"`
}

// Limiter enforces fixed-window counters on top of an injected key-value
// store. Read-then-write, not an atomic increment, so concurrent bursts can
// modestly overshoot a limit; this guards abuse, not hard quota billing.
type Limiter struct {
	store cache.Store
	now   func() time.Time
}

func New(store cache.Store) *Limiter {
	return &Limiter{
		store: store,
		now:   time.Now,
	}
}

// Check evaluates the rules in order for one request and short-circuits on
// the first violated rule. A store failure skips that rule rather than
// taking the endpoint down with it.
func (l *Limiter) Check(ctx context.Context, route Route, rules []Rule, rc RequestContext) Decision {
	now := l.now()

	for _, rule := range rules {
		dimension := rule.KeyFn(rc)
		if dimension == "" {
			continue
		}

		key := fmt.Sprintf("ratelimit:%s:%s:%s", rule.Name, route, dimension)
		decision, err := l.checkRule(ctx, key, rule, now)
		if err != nil {
			logrus.Warnf("rate limit store error on rule %s, skipping: %v", rule.Name, err)
			continue
		}
		if !decision.Allowed {
			return decision
		}
	}

	return Decision{Allowed: true}
}

func (l *Limiter) checkRule(ctx context.Context, key string, rule Rule, now time.Time) (Decision, error) {
	b := bucket{WindowStart: now.Unix()}

	raw, found, err := l.store.Get(ctx, key)
	if err != nil {
		return Decision{}, err
	}
	if found {
		if err := json.Unmarshal([]byte(raw), &b); err != nil {
			// Corrupt bucket; start a fresh window.
			b = bucket{WindowStart: now.Unix()}
		} else if now.Unix()-b.WindowStart >= int64(rule.Window/time.Second) {
			b = bucket{WindowStart: now.Unix()}
		}
	}

	b.Count++

	data, err := json.Marshal(b)
	if err != nil {
		return Decision{}, err
	}
	if err := l.store.Put(ctx, key, string(data), rule.Window); err != nil {
		return Decision{}, err
	}

	if b.Count > rule.Limit {
		windowEnd := time.Unix(b.WindowStart, 0).Add(rule.Window)
		retryAfter := int(windowEnd.Sub(now).Seconds())
		if windowEnd.Sub(now)%time.Second != 0 {
			retryAfter++
		}
		if retryAfter < 1 {
			retryAfter = 1
		}
		return Decision{
			Allowed:       false,
			BlockedBy:     rule.Name,
			RetryAfterSec: retryAfter,
		}, nil
	}

	return Decision{Allowed: true}, nil
}

// SetClock overrides the time source. Tests only.
func (l *Limiter) SetClock(now func() time.Time) {
	l.now = now
}
