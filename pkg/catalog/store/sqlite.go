package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// SQLiteBackend implements Backend using SQLite for persistence. It keeps
// the catalog cache warm across restarts, which matters for language-server
// workspaces with large application folders.
type SQLiteBackend struct {
	db *sql.DB

	saveStmt   *sql.Stmt
	loadStmt   *sql.Stmt
	deleteStmt *sql.Stmt
	listStmt   *sql.Stmt
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS catalog_specs (
	path     TEXT PRIMARY KEY,
	kind     TEXT NOT NULL,
	name     TEXT NOT NULL,
	inputs   TEXT NOT NULL,
	outputs  TEXT NOT NULL,
	mod_time INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_catalog_specs_kind ON catalog_specs(kind, name);
`

// NewSQLiteBackend opens (creating if necessary) a catalog cache database
// at the given path.
func NewSQLiteBackend(dbPath string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open catalog cache %s: %w", dbPath, err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create catalog cache schema: %w", err)
	}

	b := &SQLiteBackend{db: db}
	if err := b.prepare(); err != nil {
		db.Close()
		return nil, err
	}
	return b, nil
}

func (b *SQLiteBackend) prepare() error {
	var err error
	if b.saveStmt, err = b.db.Prepare(
		`INSERT OR REPLACE INTO catalog_specs (path, kind, name, inputs, outputs, mod_time)
		 VALUES (?, ?, ?, ?, ?, ?)`); err != nil {
		return fmt.Errorf("prepare save: %w", err)
	}
	if b.loadStmt, err = b.db.Prepare(
		`SELECT path, kind, name, inputs, outputs, mod_time FROM catalog_specs WHERE path = ?`); err != nil {
		return fmt.Errorf("prepare load: %w", err)
	}
	if b.deleteStmt, err = b.db.Prepare(
		`DELETE FROM catalog_specs WHERE path = ?`); err != nil {
		return fmt.Errorf("prepare delete: %w", err)
	}
	if b.listStmt, err = b.db.Prepare(
		`SELECT path, kind, name, inputs, outputs, mod_time FROM catalog_specs WHERE kind = ? ORDER BY name`); err != nil {
		return fmt.Errorf("prepare list: %w", err)
	}
	return nil
}

// Save persists the spec, replacing any previous entry for its path.
func (b *SQLiteBackend) Save(ctx context.Context, spec *Spec) error {
	inputs, err := json.Marshal(spec.Inputs)
	if err != nil {
		return fmt.Errorf("encode inputs: %w", err)
	}
	outputs, err := json.Marshal(spec.Outputs)
	if err != nil {
		return fmt.Errorf("encode outputs: %w", err)
	}
	_, err = b.saveStmt.ExecContext(ctx,
		spec.Path, spec.Kind, spec.Name, string(inputs), string(outputs), spec.ModTime.UnixNano())
	if err != nil {
		return fmt.Errorf("save spec %s: %w", spec.Path, err)
	}
	return nil
}

// Load retrieves the spec cached for a path, or (nil, nil) when absent.
func (b *SQLiteBackend) Load(ctx context.Context, path string) (*Spec, error) {
	row := b.loadStmt.QueryRowContext(ctx, path)
	spec, err := scanSpec(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load spec %s: %w", path, err)
	}
	return spec, nil
}

// Delete removes the entry for a path.
func (b *SQLiteBackend) Delete(ctx context.Context, path string) error {
	if _, err := b.deleteStmt.ExecContext(ctx, path); err != nil {
		return fmt.Errorf("delete spec %s: %w", path, err)
	}
	return nil
}

// List returns every cached spec of the given kind, sorted by name.
func (b *SQLiteBackend) List(ctx context.Context, kind string) ([]*Spec, error) {
	rows, err := b.listStmt.QueryContext(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("list specs: %w", err)
	}
	defer rows.Close()

	specs := make([]*Spec, 0)
	for rows.Next() {
		spec, err := scanSpec(rows)
		if err != nil {
			return nil, fmt.Errorf("scan spec: %w", err)
		}
		specs = append(specs, spec)
	}
	return specs, rows.Err()
}

// Close closes the prepared statements and the database.
func (b *SQLiteBackend) Close() error {
	for _, stmt := range []*sql.Stmt{b.saveStmt, b.loadStmt, b.deleteStmt, b.listStmt} {
		if stmt != nil {
			stmt.Close()
		}
	}
	return b.db.Close()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSpec(row rowScanner) (*Spec, error) {
	var (
		spec            Spec
		inputs, outputs string
		modTime         int64
	)
	if err := row.Scan(&spec.Path, &spec.Kind, &spec.Name, &inputs, &outputs, &modTime); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(inputs), &spec.Inputs); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(outputs), &spec.Outputs); err != nil {
		return nil, err
	}
	spec.ModTime = time.Unix(0, modTime)
	return &spec, nil
}
