package history

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Result is one finished game.
type Result struct {
	ID         string
	PlayedAt   time.Time
	Score      int
	Total      int
	Category   int
	Difficulty string
	Type       string
}

// Store keeps finished games in a local sqlite file. History is a
// convenience: callers log and ignore write failures rather than fail
// the game.
type Store struct {
	db *sql.DB
}

func NewStore(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		path = "trivia.db"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	store := &Store{db: db}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS results (
			result_id TEXT PRIMARY KEY,
			played_at_unix INTEGER NOT NULL,
			score INTEGER NOT NULL,
			total INTEGER NOT NULL,
			category INTEGER NOT NULL,
			difficulty TEXT NOT NULL,
			qtype TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_results_played_at ON results(played_at_unix DESC);`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) SaveResult(ctx context.Context, result Result) error {
	if result.Total <= 0 {
		return errors.New("result total must be positive")
	}
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	if result.PlayedAt.IsZero() {
		result.PlayedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO results (result_id, played_at_unix, score, total, category, difficulty, qtype)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		result.ID,
		result.PlayedAt.Unix(),
		result.Score,
		result.Total,
		result.Category,
		result.Difficulty,
		result.Type,
	)
	return err
}

// Recent returns the newest results, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT result_id, played_at_unix, score, total, category, difficulty, qtype
		 FROM results
		 ORDER BY played_at_unix DESC, result_id
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var item Result
		var playedAtUnix int64
		if err := rows.Scan(&item.ID, &playedAtUnix, &item.Score, &item.Total, &item.Category, &item.Difficulty, &item.Type); err != nil {
			return nil, err
		}
		item.PlayedAt = time.Unix(playedAtUnix, 0).UTC()
		results = append(results, item)
	}
	return results, rows.Err()
}
