// Package auditlog keeps a history of changes to stored tenant themes.
package auditlog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"nathanbeddoewebdev/twui/internal/database"
)

// Repository defines the persistence interface for audit entries.
type Repository interface {
	Save(ctx context.Context, entry *AuditEntry) error
	List(ctx context.Context, limit int) ([]AuditEntry, error)
	ListByTenant(ctx context.Context, tenant string, limit int) ([]AuditEntry, error)
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
	Close() error
}

// SQLiteRepository implements Repository backed by a local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// Open creates or opens the audit repository at the default path.
func Open() (*SQLiteRepository, error) {
	path, err := database.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("auditlog: %w", err)
	}
	return OpenAt(path)
}

// OpenAt creates or opens a SQLite database at the given path.
func OpenAt(path string) (*SQLiteRepository, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("auditlog: %w", err)
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
        CREATE TABLE IF NOT EXISTS theme_audit_log (
            id        INTEGER PRIMARY KEY AUTOINCREMENT,
            timestamp TEXT NOT NULL,
            command   TEXT NOT NULL DEFAULT '',
            action    TEXT NOT NULL,
            tenant    TEXT NOT NULL,
            before    TEXT NOT NULL DEFAULT '',
            after     TEXT NOT NULL DEFAULT '',
            outcome   TEXT NOT NULL DEFAULT '',
            detail    TEXT NOT NULL DEFAULT ''
        );
        CREATE INDEX IF NOT EXISTS idx_theme_audit_log_timestamp ON theme_audit_log(timestamp);
        CREATE INDEX IF NOT EXISTS idx_theme_audit_log_tenant ON theme_audit_log(tenant);
    `
	if _, err := r.db.Exec(ddl); err != nil {
		return fmt.Errorf("auditlog: migration failed: %w", err)
	}
	return nil
}

// Save inserts a new audit entry.
func (r *SQLiteRepository) Save(ctx context.Context, entry *AuditEntry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx, `
        INSERT INTO theme_audit_log (timestamp, command, action, tenant, before, after, outcome, detail)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.Timestamp.Format(time.RFC3339Nano), entry.Command, entry.Action, entry.Tenant,
		entry.Before, entry.After, entry.Outcome, entry.Detail,
	)
	if err != nil {
		return fmt.Errorf("auditlog: insert failed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("auditlog: failed to get last insert ID: %w", err)
	}
	entry.ID = id
	return nil
}

// List returns the most recent n audit entries.
func (r *SQLiteRepository) List(ctx context.Context, limit int) ([]AuditEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, timestamp, command, action, tenant, before, after, outcome, detail
        FROM theme_audit_log ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("auditlog: query failed: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// ListByTenant returns the most recent n audit entries for a tenant.
func (r *SQLiteRepository) ListByTenant(ctx context.Context, tenant string, limit int) ([]AuditEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, timestamp, command, action, tenant, before, after, outcome, detail
        FROM theme_audit_log WHERE tenant = ? ORDER BY timestamp DESC, id DESC LIMIT ?`, tenant, limit)
	if err != nil {
		return nil, fmt.Errorf("auditlog: query failed: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// Prune deletes entries older than the given duration.
func (r *SQLiteRepository) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan).Format(time.RFC3339Nano)
	result, err := r.db.ExecContext(ctx, `DELETE FROM theme_audit_log WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("auditlog: delete failed: %w", err)
	}
	return result.RowsAffected()
}

// Close releases database resources.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func scanRows(rows *sql.Rows) ([]AuditEntry, error) {
	var entries []AuditEntry
	for rows.Next() {
		var entry AuditEntry
		var timestampStr string
		err := rows.Scan(
			&entry.ID, &timestampStr, &entry.Command, &entry.Action, &entry.Tenant,
			&entry.Before, &entry.After, &entry.Outcome, &entry.Detail,
		)
		if err != nil {
			return nil, fmt.Errorf("auditlog: scan failed: %w", err)
		}
		entry.Timestamp, _ = time.Parse(time.RFC3339Nano, timestampStr)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
