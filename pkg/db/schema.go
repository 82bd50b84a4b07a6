package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- One row per word-count run
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    source TEXT NOT NULL,                -- URL or file path the text came from
    content_hash TEXT NOT NULL,          -- sha256 of the fetched text
    token_count INTEGER NOT NULL,
    distinct_words INTEGER NOT NULL,
    workers INTEGER NOT NULL,
    top_words TEXT NOT NULL,             -- JSON array of "word:count" strings
    language TEXT NOT NULL DEFAULT 'unknown',
    language_confidence REAL NOT NULL DEFAULT 0,
    duration_ms INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_source ON runs(source);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
`
