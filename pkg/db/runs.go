package db

import (
	"encoding/json"
	"fmt"
	"time"
)

// Run is one recorded word-count run.
type Run struct {
	ID                 int64
	Source             string
	ContentHash        string
	TokenCount         int
	DistinctWords      int
	Workers            int
	TopWords           []string // "word:count" strings, rank order
	Language           string
	LanguageConfidence float64
	Duration           time.Duration
	CreatedAt          time.Time
}

// InsertRun records a completed run and returns its run_id.
func (db *DB) InsertRun(run Run) (int64, error) {
	topJSON, err := json.Marshal(run.TopWords)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal top words: %w", err)
	}

	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	result, err := db.Exec(`
		INSERT INTO runs (source, content_hash, token_count, distinct_words, workers,
			top_words, language, language_confidence, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.Source, run.ContentHash, run.TokenCount, run.DistinctWords, run.Workers,
		string(topJSON), run.Language, run.LanguageConfidence,
		run.Duration.Milliseconds(), createdAt.Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// ListRuns returns the most recent runs, newest first. limit <= 0 means no limit.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT run_id, source, content_hash, token_count, distinct_words, workers,
			top_words, language, language_confidence, duration_ms, created_at
		FROM runs
		ORDER BY run_id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var topJSON, createdAt string
		var durationMs int64
		if err := rows.Scan(&run.ID, &run.Source, &run.ContentHash, &run.TokenCount,
			&run.DistinctWords, &run.Workers, &topJSON, &run.Language,
			&run.LanguageConfidence, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		if err := json.Unmarshal([]byte(topJSON), &run.TopWords); err != nil {
			return nil, fmt.Errorf("failed to unmarshal top words for run %d: %w", run.ID, err)
		}
		run.Duration = time.Duration(durationMs) * time.Millisecond
		if ts, parseErr := time.Parse(time.RFC3339, createdAt); parseErr == nil {
			run.CreatedAt = ts
		}

		runs = append(runs, run)
	}
	return runs, rows.Err()
}
