package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/sentiscale/sentiscale/db/sqliteutil"
	"github.com/sentiscale/sentiscale/series"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store: closed")

// Row is a persisted per-document score.
type Row struct {
	DocID string
	Date  time.Time
	Raw   float64
	Score float64
}

// Store is a SQLite-backed sentiment score store.
type Store struct {
	db            *sql.DB
	dsn           string
	table         string
	ensureSchema  bool
	openedLocally bool
	closed        bool
}

// Option configures the store.
type Option func(*Store)

// WithDB sets an existing *sql.DB to use.
func WithDB(db *sql.DB) Option {
	return func(s *Store) { s.db = db }
}

// WithDSN sets the SQLite DSN to open (e.g. /path/to/db.sqlite).
func WithDSN(dsn string) Option {
	return func(s *Store) { s.dsn = dsn }
}

// WithTable sets the score table name (default: sentiment_scores).
func WithTable(name string) Option {
	return func(s *Store) { s.table = name }
}

// WithEnsureSchema controls whether the schema is created automatically.
func WithEnsureSchema(enabled bool) Option {
	return func(s *Store) { s.ensureSchema = enabled }
}

// New opens/initializes a score store.
func New(ctx context.Context, opts ...Option) (*Store, error) {
	s := &Store{
		table:        "sentiment_scores",
		ensureSchema: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.table == "" {
		s.table = "sentiment_scores"
	}
	if s.db == nil {
		if s.dsn == "" {
			return nil, fmt.Errorf("store: dsn required")
		}
		db, err := sql.Open("sqlite", sqliteutil.DSN(s.dsn, 5000))
		if err != nil {
			return nil, err
		}
		s.db = db
		s.openedLocally = true
	}
	if s.ensureSchema {
		if err := s.init(ctx); err != nil {
			_ = s.Close()
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) init(ctx context.Context) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	corpus TEXT NOT NULL,
	doc_id TEXT NOT NULL,
	method TEXT NOT NULL,
	date TEXT NOT NULL,
	raw REAL NOT NULL,
	score REAL NOT NULL,
	PRIMARY KEY (corpus, doc_id, method)
)`, s.table)
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("store: failed to ensure schema: %w", err)
	}
	index := fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_date ON %s (corpus, method, date)`, s.table, s.table)
	if _, err := s.db.ExecContext(ctx, index); err != nil {
		return fmt.Errorf("store: failed to ensure index: %w", err)
	}
	return nil
}

// Upsert writes per-document scores for a corpus/method pair, replacing any
// previous values.
func (s *Store) Upsert(ctx context.Context, corpus, method string, rows []Row) error {
	if s.closed {
		return ErrClosed
	}
	if len(rows) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`INSERT INTO %s (corpus, doc_id, method, date, raw, score)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (corpus, doc_id, method) DO UPDATE SET date = excluded.date, raw = excluded.raw, score = excluded.score`, s.table))
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()
	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, corpus, row.DocID, method,
			row.Date.UTC().Format(time.RFC3339), row.Raw, row.Score); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("store: failed to upsert %s: %w", row.DocID, err)
		}
	}
	return tx.Commit()
}

// Series reads back the standardized scores of a corpus/method pair as a
// date-ordered series.
func (s *Store) Series(ctx context.Context, corpus, method string) (series.Series, error) {
	if s.closed {
		return nil, ErrClosed
	}
	query := fmt.Sprintf(`SELECT date, score FROM %s WHERE corpus = ? AND method = ? ORDER BY date`, s.table)
	rows, err := s.db.QueryContext(ctx, query, corpus, method)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var points []series.Point
	for rows.Next() {
		var raw string
		var score float64
		if err := rows.Scan(&raw, &score); err != nil {
			return nil, err
		}
		date, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("store: malformed date %q: %w", raw, err)
		}
		points = append(points, series.Point{Date: date, Value: score})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return series.New(points), nil
}

// Count returns the number of stored scores for a corpus/method pair.
func (s *Store) Count(ctx context.Context, corpus, method string) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE corpus = ? AND method = ?`, s.table)
	var count int
	if err := s.db.QueryRowContext(ctx, query, corpus, method).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Close releases an owned DB connection (if any).
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.openedLocally && s.db != nil {
		return s.db.Close()
	}
	return nil
}
