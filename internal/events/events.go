// Package events records analytics events about generated plans and quiz
// analyses. Only summary metrics are stored, never the plans themselves.
package events

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/blake2b"
)

// Event types.
const (
	TypeRoadmapGenerated = "roadmap_generated"
	TypeQuizAnalyzed     = "quiz_analyzed"
)

const dbTimeout = 5 * time.Second

// Event represents an analytics event persisted to the plan_events table.
type Event struct {
	ID        string
	Type      string
	Data      map[string]any
	CreatedAt time.Time
}

// EventLogger defines event logging behavior.
type EventLogger interface {
	LogEvent(ctx context.Context, event Event) error
}

// Fingerprint returns a short digest of syllabus text so repeated syllabi can
// be counted without storing their content.
func Fingerprint(text string) string {
	sum := blake2b.Sum256([]byte(text))
	return hex.EncodeToString(sum[:8])
}

// normalize fills in ID and CreatedAt and validates the type.
func normalize(event Event) (Event, error) {
	if event.Type == "" {
		return event, fmt.Errorf("event type is required")
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	if event.Data == nil {
		event.Data = map[string]any{}
	}
	return event, nil
}

// NopEventLogger only writes events to the debug log.
type NopEventLogger struct{}

func (NopEventLogger) LogEvent(_ context.Context, event Event) error {
	slog.Debug("event dropped", "type", event.Type)
	return nil
}

// MemoryEventLogger stores events in memory for tests.
type MemoryEventLogger struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryEventLogger() *MemoryEventLogger {
	return &MemoryEventLogger{
		events: []Event{},
	}
}

func (l *MemoryEventLogger) LogEvent(_ context.Context, event Event) error {
	event, err := normalize(event)
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.events = append(l.events, event)
	l.mu.Unlock()

	return nil
}

func (l *MemoryEventLogger) Events() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Event{}, l.events...)
}

// schema creates the plan_events table and its index.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS plan_events (
		id         uuid PRIMARY KEY,
		event_type text NOT NULL,
		data       jsonb NOT NULL DEFAULT '{}'::jsonb,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS plan_events_type_created_idx ON plan_events (event_type, created_at)`,
}

// PostgresEventLogger inserts events into the plan_events table.
type PostgresEventLogger struct {
	pool *pgxpool.Pool
}

func NewPostgresEventLogger(pool *pgxpool.Pool) *PostgresEventLogger {
	return &PostgresEventLogger{pool: pool}
}

// EnsureSchema creates the events table if it does not exist.
func (l *PostgresEventLogger) EnsureSchema(ctx context.Context) error {
	if l == nil || l.pool == nil {
		return fmt.Errorf("event logger pool is nil")
	}
	for _, stmt := range schema {
		if _, err := l.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create plan_events: %w", err)
		}
	}
	return nil
}

func (l *PostgresEventLogger) LogEvent(ctx context.Context, event Event) error {
	if l == nil || l.pool == nil {
		return fmt.Errorf("event logger pool is nil")
	}
	event, err := normalize(event)
	if err != nil {
		return err
	}

	data, err := json.Marshal(event.Data)
	if err != nil {
		return fmt.Errorf("marshal event data: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if _, err := l.pool.Exec(ctx,
		`INSERT INTO plan_events (id, event_type, data, created_at)
		 VALUES ($1::uuid, $2, $3::jsonb, $4)`,
		event.ID,
		event.Type,
		string(data),
		event.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	slog.Debug("event logged", "type", event.Type, "id", event.ID)
	return nil
}

// CountByType returns how many events of the given type are stored.
func (l *PostgresEventLogger) CountByType(ctx context.Context, eventType string) (int, error) {
	if l == nil || l.pool == nil {
		return 0, fmt.Errorf("event logger pool is nil")
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	var n int
	if err := l.pool.QueryRow(ctx,
		`SELECT count(*) FROM plan_events WHERE event_type = $1`,
		eventType,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return n, nil
}
