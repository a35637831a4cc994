// Package history persists evaluated attempts in SQLite.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // register pure-Go SQLite driver

	"github.com/katalvlaran/vertexcover/cover"
)

// ErrNotConfigured is returned by a nil or closed Store.
var ErrNotConfigured = errors.New("history: storage is not configured")

// DefaultRecentLimit caps Recent when the caller passes a non-positive limit.
const DefaultRecentLimit = 50

const schema = `
CREATE TABLE IF NOT EXISTS attempts (
	id            TEXT PRIMARY KEY,
	created_at    INTEGER NOT NULL,
	vertices      INTEGER NOT NULL,
	edges         INTEGER NOT NULL,
	selected_size INTEGER NOT NULL,
	optimal_size  INTEGER,
	outcome       TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS attempts_created_at ON attempts (created_at DESC);
`

// Attempt is one recorded evaluation.
type Attempt struct {
	ID           string        `json:"id"`
	CreatedAt    time.Time     `json:"createdAt"`
	Vertices     int           `json:"vertices"`
	Edges        int           `json:"edges"`
	SelectedSize int           `json:"selectedSize"`
	OptimalSize  *int          `json:"optimalSize"`
	Outcome      cover.Outcome `json:"outcome"`
}

// NewAttempt summarizes an evaluation of g. ID and CreatedAt are left for
// Record to fill.
func NewAttempt(g cover.Graph, res cover.EvaluationResult) Attempt {
	a := Attempt{
		Vertices:     g.N,
		Edges:        len(g.Edges),
		SelectedSize: res.SelectedSize,
		Outcome:      res.Outcome,
	}
	if size, ok := res.OptimalSize(); ok {
		a.OptimalSize = &size
	}
	return a
}

// Store persists attempts in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens the SQLite file at path and creates the schema if needed.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	err := s.sqlDB.Close()
	s.sqlDB = nil
	return err
}

// Record inserts a and returns it with ID and CreatedAt set. A caller-supplied
// ID or CreatedAt is kept.
func (s *Store) Record(ctx context.Context, a Attempt) (Attempt, error) {
	if err := ctx.Err(); err != nil {
		return Attempt{}, err
	}
	if s == nil || s.sqlDB == nil {
		return Attempt{}, ErrNotConfigured
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.now()
	}
	a.CreatedAt = fromMillis(toMillis(a.CreatedAt))

	var optimal sql.NullInt64
	if a.OptimalSize != nil {
		optimal = sql.NullInt64{Int64: int64(*a.OptimalSize), Valid: true}
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO attempts (id, created_at, vertices, edges, selected_size, optimal_size, outcome)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, toMillis(a.CreatedAt), a.Vertices, a.Edges, a.SelectedSize, optimal, a.Outcome.String(),
	)
	if err != nil {
		return Attempt{}, fmt.Errorf("insert attempt: %w", err)
	}
	return a, nil
}

// Recent returns up to limit attempts, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Attempt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, ErrNotConfigured
	}
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, created_at, vertices, edges, selected_size, optimal_size, outcome
		 FROM attempts ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	out := make([]Attempt, 0)
	for rows.Next() {
		var (
			a         Attempt
			createdAt int64
			optimal   sql.NullInt64
			outcome   string
		)
		if err := rows.Scan(&a.ID, &createdAt, &a.Vertices, &a.Edges, &a.SelectedSize, &optimal, &outcome); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.CreatedAt = fromMillis(createdAt)
		if optimal.Valid {
			size := int(optimal.Int64)
			a.OptimalSize = &size
		}
		if err := a.Outcome.UnmarshalText([]byte(outcome)); err != nil {
			return nil, fmt.Errorf("scan attempt %s: %w", a.ID, err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return out, nil
}
