// Package atlas persists named map records in SQLite so that
// generations can be recalled and rebuilt later. The grid itself is
// never stored: seed and parameters are enough to reproduce it exactly.
package atlas

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/JacobJanzen/map-generator/internal/rng"
	"github.com/JacobJanzen/map-generator/internal/world"
)

const schema = `
CREATE TABLE IF NOT EXISTS maps (
	map_id        TEXT PRIMARY KEY,
	name          TEXT NOT NULL UNIQUE,
	seed          TEXT NOT NULL,
	resolved_seed TEXT NOT NULL,
	height        INTEGER NOT NULL,
	width         INTEGER NOT NULL,
	params_json   TEXT,
	created_at    INTEGER NOT NULL
);
`

// Entry represents a persisted map record.
type Entry struct {
	MapID        string          `json:"map_id"`
	Name         string          `json:"name"`
	Seed         string          `json:"seed"`
	ResolvedSeed string          `json:"resolved_seed"` // decimal uint64, for display
	Height       int             `json:"height"`
	Width        int             `json:"width"`
	ParamsJSON   json.RawMessage `json:"params_json,omitempty"`
	CreatedAt    int64           `json:"created_at"` // unix nanoseconds
}

// Params decodes the stored generation parameters, falling back to the
// defaults when none were recorded.
func (e *Entry) Params() (world.Params, error) {
	params := world.DefaultParams()
	if len(e.ParamsJSON) == 0 {
		return params, nil
	}
	if err := json.Unmarshal(e.ParamsJSON, &params); err != nil {
		return params, fmt.Errorf("parse stored params for %s: %w", e.Name, err)
	}
	return params, nil
}

// Regenerate rebuilds the stored map. The same seed and parameters give
// back the identical grid.
func (e *Entry) Regenerate(ctx context.Context) (*world.Grid, error) {
	params, err := e.Params()
	if err != nil {
		return nil, err
	}
	return world.NewGenerator(params).GenerateFromSeed(ctx, e.Height, e.Width, e.Seed), nil
}

// Store provides persistence for map records.
type Store struct {
	db *sql.DB
}

// Open opens an atlas database at the given path, creating the schema
// if needed.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open atlas db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create maps table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save persists a map record. An empty MapID gets a fresh UUID, a zero
// CreatedAt the current time, and an empty ResolvedSeed is computed
// from the seed. Saving an existing name replaces that record, map ID
// included, so the caller's Entry always matches the stored row.
func (s *Store) Save(e *Entry) error {
	if e.MapID == "" {
		e.MapID = uuid.New().String()
	}
	if e.CreatedAt == 0 {
		e.CreatedAt = time.Now().UnixNano()
	}
	if e.ResolvedSeed == "" {
		e.ResolvedSeed = strconv.FormatUint(rng.ResolveSeed(e.Seed), 10)
	}

	var paramsStr interface{}
	if len(e.ParamsJSON) > 0 {
		paramsStr = string(e.ParamsJSON)
	}

	_, err := s.db.Exec(`
		INSERT INTO maps (map_id, name, seed, resolved_seed, height, width, params_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			map_id = excluded.map_id,
			seed = excluded.seed,
			resolved_seed = excluded.resolved_seed,
			height = excluded.height,
			width = excluded.width,
			params_json = excluded.params_json,
			created_at = excluded.created_at`,
		e.MapID, e.Name, e.Seed, e.ResolvedSeed, e.Height, e.Width, paramsStr, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save map %s: %w", e.Name, err)
	}
	return nil
}

// List returns all map records, newest first.
func (s *Store) List() ([]*Entry, error) {
	rows, err := s.db.Query(`
		SELECT map_id, name, seed, resolved_seed, height, width, params_json, created_at
		FROM maps
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query maps: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetByName returns a single map record by name.
func (s *Store) GetByName(name string) (*Entry, error) {
	row := s.db.QueryRow(`
		SELECT map_id, name, seed, resolved_seed, height, width, params_json, created_at
		FROM maps
		WHERE name = ?`, name)

	var e Entry
	var paramsStr sql.NullString
	err := row.Scan(&e.MapID, &e.Name, &e.Seed, &e.ResolvedSeed, &e.Height, &e.Width, &paramsStr, &e.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("map %s not found", name)
		}
		return nil, fmt.Errorf("scan map: %w", err)
	}
	if paramsStr.Valid {
		e.ParamsJSON = json.RawMessage(paramsStr.String)
	}
	return &e, nil
}

// Delete removes a map record by name.
func (s *Store) Delete(name string) error {
	result, err := s.db.Exec(`DELETE FROM maps WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete map: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("map %s not found", name)
	}
	return nil
}

// scanEntry scans a map record from a sql.Rows cursor.
func scanEntry(rows *sql.Rows) (*Entry, error) {
	var e Entry
	var paramsStr sql.NullString
	err := rows.Scan(&e.MapID, &e.Name, &e.Seed, &e.ResolvedSeed, &e.Height, &e.Width, &paramsStr, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("scan map row: %w", err)
	}
	if paramsStr.Valid {
		e.ParamsJSON = json.RawMessage(paramsStr.String)
	}
	return &e, nil
}
