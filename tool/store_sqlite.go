package tool

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const sqliteLogSchema = `
CREATE TABLE IF NOT EXISTS invocations (
	id TEXT PRIMARY KEY,
	tool TEXT NOT NULL,
	success INTEGER NOT NULL,
	code TEXT NOT NULL DEFAULT '',
	duration_ms INTEGER NOT NULL DEFAULT 0,
	at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_invocations_at ON invocations (at);`

const (
	defaultLogDir = ".solkit"
	defaultLogDB  = "solkit.db"
)

// InvocationRecord is one persisted adapter invocation outcome.
type InvocationRecord struct {
	ID         string
	Tool       string
	Success    bool
	Code       string
	DurationMS int64
	At         time.Time
}

// InvocationLog persists invocation records in SQLite. It is append-only:
// records are never updated after insertion.
type InvocationLog struct {
	db *sql.DB
}

// DefaultLogPath returns the default SQLite path for CLI storage.
func DefaultLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tool: resolve user home: %w", err)
	}
	return filepath.Join(home, defaultLogDir, defaultLogDB), nil
}

// OpenInvocationLog opens (or creates) an invocation log at path.
func OpenInvocationLog(path string) (*InvocationLog, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("tool: invocation log path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("tool: create invocation log dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("tool: invocation log open: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("tool: invocation log set WAL mode: %w", err)
	}
	if _, err := db.Exec(sqliteLogSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("tool: invocation log create schema: %w", err)
	}
	return &InvocationLog{db: db}, nil
}

// Append inserts one record, filling ID and At when unset.
func (l *InvocationLog) Append(ctx context.Context, record InvocationRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if l == nil || l.db == nil {
		return errors.New("tool: invocation log is nil")
	}
	if strings.TrimSpace(record.Tool) == "" {
		return errors.New("tool: invocation record tool name is required")
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.At.IsZero() {
		record.At = time.Now().UTC()
	}

	_, err := l.db.ExecContext(ctx, `
INSERT INTO invocations (id, tool, success, code, duration_ms, at)
VALUES (?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Tool,
		boolToInt(record.Success),
		record.Code,
		record.DurationMS,
		record.At.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("tool: invocation log append: %w", err)
	}
	return nil
}

// List returns up to limit records, newest first. A non-positive limit
// returns everything.
func (l *InvocationLog) List(ctx context.Context, limit int) ([]InvocationRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l == nil || l.db == nil {
		return nil, errors.New("tool: invocation log is nil")
	}

	query := `
SELECT id, tool, success, code, duration_ms, at
FROM invocations
ORDER BY at DESC, id ASC`
	args := []any{}
	if limit > 0 {
		query += `
LIMIT ?`
		args = append(args, limit)
	}

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("tool: invocation log list: %w", err)
	}
	defer rows.Close()

	var records []InvocationRecord
	for rows.Next() {
		var (
			record  InvocationRecord
			success int
			at      string
		)
		if err := rows.Scan(&record.ID, &record.Tool, &success, &record.Code, &record.DurationMS, &at); err != nil {
			return nil, fmt.Errorf("tool: invocation log scan: %w", err)
		}
		record.Success = success != 0
		parsed, err := time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, fmt.Errorf("tool: invocation log timestamp for %s: %w", record.ID, err)
		}
		record.At = parsed.UTC()
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("tool: invocation log rows: %w", err)
	}
	return records, nil
}

// Prune deletes records older than cutoff and reports how many were removed.
func (l *InvocationLog) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if l == nil || l.db == nil {
		return 0, errors.New("tool: invocation log is nil")
	}

	result, err := l.db.ExecContext(ctx,
		`DELETE FROM invocations WHERE at < ?`,
		cutoff.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("tool: invocation log prune: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("tool: invocation log prune count: %w", err)
	}
	return removed, nil
}

// Close closes the underlying database connection.
func (l *InvocationLog) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	return l.db.Close()
}

// LogObserver records every invocation observation into an InvocationLog.
type LogObserver struct {
	log *InvocationLog
}

// NewLogObserver wires an invocation log into the observer seam.
func NewLogObserver(log *InvocationLog) *LogObserver {
	return &LogObserver{log: log}
}

// ObserveInvoke appends the observation. Storage failures are dropped: the
// observer seam must never affect adapter results.
func (o *LogObserver) ObserveInvoke(observation InvokeObservation) {
	if o == nil || o.log == nil {
		return
	}
	_ = o.log.Append(context.Background(), InvocationRecord{
		Tool:       observation.Tool,
		Success:    observation.Success,
		Code:       observation.ErrorCode,
		DurationMS: observation.DurationMS,
	})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ Observer = (*LogObserver)(nil)
