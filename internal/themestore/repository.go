// Package themestore provides persistent storage for per-tenant themes.
//
// Each tenant has at most one stored configuration, kept as JSON in the
// tenant_themes table of the shared twui database.
package themestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"nathanbeddoewebdev/twui/internal/database"
	"nathanbeddoewebdev/twui/internal/retry"
	"nathanbeddoewebdev/twui/internal/theme"
)

// ErrNotFound is returned when a tenant has no stored theme.
var ErrNotFound = errors.New("themestore: tenant not found")

// Repository defines the persistence interface for tenant themes.
type Repository interface {
	// Get returns the theme stored for tenant, or ErrNotFound.
	Get(ctx context.Context, tenant string) (*TenantTheme, error)

	// Save upserts the theme for a tenant.
	Save(ctx context.Context, t *TenantTheme) error

	// List returns every stored theme ordered by tenant.
	List(ctx context.Context) ([]TenantTheme, error)

	// Delete removes a tenant's theme, or returns ErrNotFound.
	Delete(ctx context.Context, tenant string) error

	// Close releases database resources.
	Close() error
}

// SQLiteRepository implements Repository backed by a local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// Open creates or opens the repository at the default database path.
func Open() (*SQLiteRepository, error) {
	path, err := database.DefaultPath()
	if err != nil {
		return nil, err
	}
	return OpenAt(path)
}

// OpenAt creates or opens a SQLite database at the given path.
func OpenAt(path string) (*SQLiteRepository, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, err
	}

	r := &SQLiteRepository{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *SQLiteRepository) migrate() error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS tenant_themes (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			tenant     TEXT NOT NULL UNIQUE,
			config     TEXT NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		);
	`
	if _, err := r.db.Exec(ddl); err != nil {
		return fmt.Errorf("themestore: migration failed: %w", err)
	}
	return nil
}

// Get returns the theme stored for tenant.
func (r *SQLiteRepository) Get(ctx context.Context, tenant string) (*TenantTheme, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, tenant, config, updated_at
		FROM tenant_themes WHERE tenant = ?`, tenant)

	t, err := scanTheme(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, tenant)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Save upserts the theme for a tenant. The stored config always carries
// the tenant id of the record. Writes blocked by another process are
// retried.
func (r *SQLiteRepository) Save(ctx context.Context, t *TenantTheme) error {
	if !theme.ValidTenantID(t.Tenant) {
		return fmt.Errorf("themestore: %w: invalid tenant id %q", theme.ErrInvalidValue, t.Tenant)
	}
	t.Config.TenantID = t.Tenant
	data, err := json.Marshal(t.Config)
	if err != nil {
		return fmt.Errorf("themestore: marshal config: %w", err)
	}
	t.UpdatedAt = time.Now().UTC()

	var id int64
	err = retry.Do(ctx, retry.DefaultConfig(), retry.IsBusy, func() error {
		return r.db.QueryRowContext(ctx, `
			INSERT INTO tenant_themes (tenant, config, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT(tenant) DO UPDATE SET
				config = excluded.config,
				updated_at = excluded.updated_at
			RETURNING id`,
			t.Tenant, string(data), t.UpdatedAt.Format(time.RFC3339Nano),
		).Scan(&id)
	})
	if err != nil {
		return fmt.Errorf("themestore: upsert failed: %w", err)
	}
	t.ID = id
	return nil
}

// List returns every stored theme ordered by tenant.
func (r *SQLiteRepository) List(ctx context.Context) ([]TenantTheme, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, tenant, config, updated_at
		FROM tenant_themes ORDER BY tenant`)
	if err != nil {
		return nil, fmt.Errorf("themestore: query failed: %w", err)
	}
	defer rows.Close()

	var out []TenantTheme
	for rows.Next() {
		t, err := scanTheme(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("themestore: query failed: %w", err)
	}
	return out, nil
}

// Delete removes a tenant's theme.
func (r *SQLiteRepository) Delete(ctx context.Context, tenant string) error {
	var result sql.Result
	err := retry.Do(ctx, retry.DefaultConfig(), retry.IsBusy, func() error {
		var execErr error
		result, execErr = r.db.ExecContext(ctx, `DELETE FROM tenant_themes WHERE tenant = ?`, tenant)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("themestore: delete failed: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("themestore: delete failed: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, tenant)
	}
	return nil
}

// Close releases database resources.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTheme(s scanner) (*TenantTheme, error) {
	var t TenantTheme
	var configStr, updatedStr string
	if err := s.Scan(&t.ID, &t.Tenant, &configStr, &updatedStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("themestore: query failed: %w", err)
	}
	if err := json.Unmarshal([]byte(configStr), &t.Config); err != nil {
		return nil, fmt.Errorf("themestore: tenant %q has a corrupt config: %w", t.Tenant, err)
	}
	t.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedStr)
	return &t, nil
}
