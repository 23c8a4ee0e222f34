package model

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// InitDB opens (or creates) the model artifact database at the given path
// and ensures the tables exist. Pass ":memory:" for an in-memory database.
func InitDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set wal mode: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return db, nil
}

func createTables(db *sql.DB) error {
	stmts := []string{
		// Single-row table: exactly one active model, no versioning.
		`CREATE TABLE IF NOT EXISTS model_info (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			name TEXT NOT NULL,
			intercept REAL NOT NULL,
			test_accuracy REAL NOT NULL,
			trained_at DATETIME NOT NULL
		)`,

		// level is '' for numeric coefficients, the category value otherwise.
		`CREATE TABLE IF NOT EXISTS model_weights (
			feature TEXT NOT NULL,
			level TEXT NOT NULL DEFAULT '',
			weight REAL NOT NULL,
			PRIMARY KEY (feature, level)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}

	return nil
}

// Store loads and saves the single model artifact.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Save replaces whatever artifact is stored with the given model.
func (s *Store) Save(m *Logistic) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM model_info"); err != nil {
		return fmt.Errorf("clear info: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM model_weights"); err != nil {
		return fmt.Errorf("clear weights: %w", err)
	}

	if _, err := tx.Exec(
		"INSERT INTO model_info (id, name, intercept, test_accuracy, trained_at) VALUES (1,?,?,?,?)",
		m.Name, m.Intercept, m.TestAccuracy, m.TrainedAt.Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("insert info: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO model_weights (feature, level, weight) VALUES (?,?,?)")
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	for col, coef := range m.Numeric {
		if _, err := stmt.Exec(col, "", coef); err != nil {
			return fmt.Errorf("insert numeric %s: %w", col, err)
		}
	}
	for col, levels := range m.Categorical {
		for level, w := range levels {
			if _, err := stmt.Exec(col, level, w); err != nil {
				return fmt.Errorf("insert categorical %s=%s: %w", col, level, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Load reads the stored artifact. sql.ErrNoRows means no model has been
// written yet; the composition root treats that as fatal at startup.
func (s *Store) Load() (*Logistic, error) {
	m := &Logistic{
		Numeric:     make(map[string]float64),
		Categorical: make(map[string]map[string]float64),
	}

	var trainedAt string
	err := s.db.QueryRow(
		"SELECT name, intercept, test_accuracy, trained_at FROM model_info WHERE id = 1",
	).Scan(&m.Name, &m.Intercept, &m.TestAccuracy, &trainedAt)
	if err != nil {
		return nil, fmt.Errorf("load model info: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, trainedAt); err == nil {
		m.TrainedAt = t
	}

	rows, err := s.db.Query("SELECT feature, level, weight FROM model_weights")
	if err != nil {
		return nil, fmt.Errorf("load weights: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var feature, level string
		var weight float64
		if err := rows.Scan(&feature, &level, &weight); err != nil {
			return nil, fmt.Errorf("scan weight: %w", err)
		}
		if level == "" {
			m.Numeric[feature] = weight
			continue
		}
		if m.Categorical[feature] == nil {
			m.Categorical[feature] = make(map[string]float64)
		}
		m.Categorical[feature][level] = weight
	}

	return m, rows.Err()
}
