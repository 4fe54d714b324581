// Package usage tracks per-client daily request counts and enforces quotas.
package usage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrQuotaExceeded is returned when a client has used its daily allowance.
var ErrQuotaExceeded = errors.New("usage: daily quota exceeded")

// keyTTL keeps a day's counter around a little past midnight.
const keyTTL = 26 * time.Hour

// Tracker counts requests per key.
type Tracker interface {
	// Incr adds one to key and returns the new count.
	Incr(ctx context.Context, key string) (int64, error)
}

// MemoryTracker is an in-process tracker for single-instance deployments and
// tests. Counters from previous days are pruned on write.
type MemoryTracker struct {
	mu     sync.Mutex
	counts map[string]int64
	day    string
	clock  func() time.Time
}

// NewMemoryTracker creates an empty in-memory tracker.
func NewMemoryTracker() *MemoryTracker {
	return &MemoryTracker{
		counts: make(map[string]int64),
		clock:  time.Now,
	}
}

func (m *MemoryTracker) Incr(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if today := m.clock().UTC().Format(time.DateOnly); today != m.day {
		m.counts = make(map[string]int64)
		m.day = today
	}
	m.counts[key]++
	return m.counts[key], nil
}

// RedisTracker keeps counters in Redis/Dragonfly so every server instance
// shares the same quota.
type RedisTracker struct {
	client *redis.Client
}

// NewRedisTracker creates a tracker on an existing client.
func NewRedisTracker(client *redis.Client) *RedisTracker {
	return &RedisTracker{client: client}
}

func (r *RedisTracker) Incr(ctx context.Context, key string) (int64, error) {
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, keyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("incrementing usage counter: %w", err)
	}
	return incr.Val(), nil
}

// Quota enforces a daily request limit per client.
type Quota struct {
	tracker Tracker
	limit   int64
	clock   func() time.Time
}

// NewQuota creates a quota. A limit of zero or less disables enforcement but
// still counts requests.
func NewQuota(tracker Tracker, limit int) *Quota {
	if tracker == nil {
		tracker = NewMemoryTracker()
	}
	return &Quota{tracker: tracker, limit: int64(limit), clock: time.Now}
}

// Allow records one request for clientID on route and reports
// ErrQuotaExceeded once the daily limit is passed.
func (q *Quota) Allow(ctx context.Context, route, clientID string) (int64, error) {
	n, err := q.tracker.Incr(ctx, Key(route, clientID, q.clock()))
	if err != nil {
		return 0, err
	}
	if q.limit > 0 && n > q.limit {
		return n, ErrQuotaExceeded
	}
	return n, nil
}

// Key builds the counter key for a client on a given UTC day.
func Key(route, clientID string, at time.Time) string {
	return fmt.Sprintf("usage:%s:%s:%s", route, clientID, at.UTC().Format(time.DateOnly))
}
