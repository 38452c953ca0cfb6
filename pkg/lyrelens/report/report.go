// Package report persists run results to SQLite so they can be queried
// after the process exits. Each export is recorded as one run, keyed by a
// ULID, alongside every text's scores and word statistics.
package report

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/verselab/lyrelens/pkg/lyrelens/corpus"
	"github.com/verselab/lyrelens/pkg/lyrelens/internalerr"
	"github.com/verselab/lyrelens/pkg/lyrelens/sentiment"
)

// Store writes and reads run reports.
type Store struct {
	db      *sql.DB
	entropy *ulid.MonotonicEntropy
}

// Open opens (creating if needed) a report database with WAL mode enabled.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:      db,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	texts INTEGER NOT NULL,
	top_words TEXT
);

CREATE TABLE IF NOT EXISTS texts (
	run_id TEXT NOT NULL,
	label TEXT NOT NULL,
	positive REAL NOT NULL,
	negative REAL NOT NULL,
	neutral REAL NOT NULL,
	compound REAL NOT NULL,
	PRIMARY KEY(run_id, label),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS word_counts (
	run_id TEXT NOT NULL,
	label TEXT NOT NULL,
	word TEXT NOT NULL,
	count INTEGER NOT NULL,
	length INTEGER NOT NULL,
	PRIMARY KEY(run_id, label, word),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// Export records the whole corpus as one run and returns the new run ID.
func (s *Store) Export(ctx context.Context, c *corpus.Corpus, topWords []string) (string, error) {
	if c.Len() == 0 {
		return "", fmt.Errorf("export report: %w", internalerr.ErrEmptyCorpus)
	}

	runID := ulid.MustNew(ulid.Now(), s.entropy).String()

	topJSON, err := json.Marshal(topWords)
	if err != nil {
		return "", err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, texts, top_words) VALUES (?, ?, ?, ?)`,
		runID, time.Now().UTC().Format(time.RFC3339), c.Len(), string(topJSON),
	)
	if err != nil {
		return "", err
	}

	textStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO texts (run_id, label, positive, negative, neutral, compound) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer textStmt.Close()

	wordStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO word_counts (run_id, label, word, count, length) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer wordStmt.Close()

	for _, label := range c.Labels() {
		rec, ok := c.Get(label)
		if !ok {
			continue
		}
		if _, err := textStmt.ExecContext(ctx, runID, label,
			rec.Sentiment.Positive, rec.Sentiment.Negative,
			rec.Sentiment.Neutral, rec.Sentiment.Compound); err != nil {
			return "", err
		}
		for word, count := range rec.WordCount {
			if _, err := wordStmt.ExecContext(ctx, runID, label, word, count, rec.WordLength[word]); err != nil {
				return "", err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return runID, nil
}

// RunInfo summarizes one recorded run.
type RunInfo struct {
	ID        string
	CreatedAt time.Time
	Texts     int
	TopWords  []string
}

// Runs lists recorded runs, oldest first. ULIDs sort by creation time, so
// ordering by ID is chronological.
func (s *Store) Runs(ctx context.Context) ([]RunInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, texts, top_words FROM runs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunInfo
	for rows.Next() {
		var info RunInfo
		var created, topJSON string
		if err := rows.Scan(&info.ID, &created, &info.Texts, &topJSON); err != nil {
			return nil, err
		}
		if info.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
			return nil, err
		}
		if topJSON != "" {
			if err := json.Unmarshal([]byte(topJSON), &info.TopWords); err != nil {
				return nil, err
			}
		}
		runs = append(runs, info)
	}
	return runs, rows.Err()
}

// TextScores returns the stored sentiment of every text in a run.
func (s *Store) TextScores(ctx context.Context, runID string) (map[string]sentiment.Scores, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT label, positive, negative, neutral, compound FROM texts WHERE run_id=?`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scores := make(map[string]sentiment.Scores)
	for rows.Next() {
		var label string
		var sc sentiment.Scores
		if err := rows.Scan(&label, &sc.Positive, &sc.Negative, &sc.Neutral, &sc.Compound); err != nil {
			return nil, err
		}
		scores[label] = sc
	}
	return scores, rows.Err()
}

// Words returns the stored word counts of one text in a run.
func (s *Store) Words(ctx context.Context, runID, label string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word, count FROM word_counts WHERE run_id=? AND label=?`, runID, label)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var word string
		var count int
		if err := rows.Scan(&word, &count); err != nil {
			return nil, err
		}
		counts[word] = count
	}
	return counts, rows.Err()
}
