// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store indexes the cleaned researcher dataset in SQLite for
// ad-hoc querying. It sits strictly downstream of the cleaning stage:
// ingestion reads the cleaned CSV, and nothing in the fitting stage
// depends on the database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/scholar-metrics/internal/regress"
	"github.com/pdiddy/scholar-metrics/pkg/types"
)

const (
	dbFile     = "researchers.db"
	exportFile = "export.yaml"
)

// Store manages the researcher index database.
type Store struct {
	db         *sql.DB
	indexDir   string
	maxResults int
}

// New opens or creates the index database at indexDir/researchers.db,
// creating the directory and schema if absent.
func New(cfg types.StoreConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.IndexDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(cfg.IndexDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = types.DefaultStoreMaxResults
	}

	s := &Store{db: db, indexDir: cfg.IndexDir, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS researchers (
			position INTEGER PRIMARY KEY,
			name TEXT,
			document_count REAL NOT NULL,
			total_citations REAL NOT NULL,
			cnci REAL,
			h_index REAL,
			pct_open_access REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_researchers_citations
			ON researchers(total_citations DESC)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Ingest loads the cleaned dataset at datasetPath and replaces the index
// contents with it in one transaction. Row positions preserve dataset
// order so ranked queries break citation ties deterministically.
func (s *Store) Ingest(ctx context.Context, datasetPath string, w io.Writer) (int, error) {
	records, err := regress.Load(datasetPath)
	if err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM researchers`); err != nil {
		return 0, fmt.Errorf("clearing index: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO researchers (position, name, document_count, total_citations, cnci, h_index, pct_open_access)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		_, err := stmt.ExecContext(ctx, i, r.Name, r.DocumentCount, r.TotalCitations,
			nullable(r.CNCI), nullable(r.HIndex), nullable(r.PctOpenAccess))
		if err != nil {
			return 0, fmt.Errorf("inserting researcher %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}

	fmt.Fprintf(w, "indexed %d researchers from %s\n", len(records), datasetPath)
	return len(records), nil
}

// QueryOptions filters and bounds a ranked query.
type QueryOptions struct {
	// NameSubstring filters to researchers whose name contains the value.
	NameSubstring string

	// Limit caps the result count; 0 uses the store default.
	Limit int
}

// Query returns researchers ordered by total citations descending, ties
// in dataset order.
func (s *Store) Query(ctx context.Context, opts QueryOptions) ([]types.Researcher, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = s.maxResults
	}

	query := `SELECT name, document_count, total_citations, cnci, h_index, pct_open_access
		FROM researchers`
	args := []any{}
	if opts.NameSubstring != "" {
		query += ` WHERE name LIKE ?`
		args = append(args, "%"+opts.NameSubstring+"%")
	}
	query += ` ORDER BY total_citations DESC, position ASC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var results []types.Researcher
	for rows.Next() {
		var r types.Researcher
		var cnci, hIndex, pctOA sql.NullFloat64
		if err := rows.Scan(&r.Name, &r.DocumentCount, &r.TotalCitations, &cnci, &hIndex, &pctOA); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		r.CNCI = fromNullable(cnci)
		r.HIndex = fromNullable(hIndex)
		r.PctOpenAccess = fromNullable(pctOA)
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return results, nil
}

// ExportYAML writes the full indexed set, in ranked order, to
// indexDir/export.yaml.
func (s *Store) ExportYAML(ctx context.Context) (string, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM researchers`).Scan(&count); err != nil {
		return "", fmt.Errorf("counting researchers: %w", err)
	}

	records, err := s.Query(ctx, QueryOptions{Limit: count})
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.indexDir, exportFile)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	defer enc.Close()
	if err := enc.Encode(records); err != nil {
		return "", fmt.Errorf("encoding export: %w", err)
	}
	return path, nil
}

func nullable(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func fromNullable(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
