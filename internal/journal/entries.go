package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by Get when no run matches.
var ErrNotFound = errors.New("run not found")

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const entryColumns = "id, run_id, operation, status, study, source_path, template_path, output_path, dropped_lines, error_message, created_at"

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// Record inserts e and returns the stored entry. A missing RunID is generated;
// a zero CreatedAt becomes the current time.
func (s *Store) Record(ctx context.Context, e Entry) (*Entry, error) {
	if strings.TrimSpace(string(e.Operation)) == "" {
		return nil, errors.New("journal entry requires an operation")
	}
	if e.RunID == "" {
		e.RunID = NewRunID()
	}
	if e.Status == "" {
		e.Status = StatusSucceeded
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.CreatedAt = e.CreatedAt.UTC()

	res, err := s.execWithRetry(
		ctx,
		`INSERT INTO runs (
            run_id, operation, status, study, source_path, template_path,
            output_path, dropped_lines, error_message, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.RunID,
		string(e.Operation),
		string(e.Status),
		nullableString(e.Study),
		nullableString(e.SourcePath),
		nullableString(e.TemplatePath),
		nullableString(e.OutputPath),
		e.DroppedLines,
		nullableString(e.ErrorMessage),
		e.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	e.ID = id
	return &e, nil
}

// Get fetches a run by its run ID.
func (s *Store) Get(ctx context.Context, runID string) (*Entry, error) {
	row := s.db.QueryRowContext(ensureContext(ctx),
		"SELECT "+entryColumns+" FROM runs WHERE run_id = ?", runID)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return entry, nil
}

// List returns up to limit runs, newest first. A limit <= 0 returns all runs.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	query := "SELECT " + entryColumns + " FROM runs ORDER BY created_at DESC, id DESC"
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ensureContext(ctx), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return entries, nil
}

// Prune deletes runs created before cutoff and returns how many were removed.
func (s *Store) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.execWithRetry(ctx, "DELETE FROM runs WHERE created_at < ?", cutoff.UTC().Format(timeLayout))
	if err != nil {
		return 0, fmt.Errorf("prune runs: %w", err)
	}
	return res.RowsAffected()
}

func scanEntry(scanner interface{ Scan(dest ...any) error }) (*Entry, error) {
	var (
		entry        Entry
		operation    string
		status       string
		study        sql.NullString
		sourcePath   sql.NullString
		templatePath sql.NullString
		outputPath   sql.NullString
		errorMessage sql.NullString
		createdRaw   string
	)
	if err := scanner.Scan(
		&entry.ID,
		&entry.RunID,
		&operation,
		&status,
		&study,
		&sourcePath,
		&templatePath,
		&outputPath,
		&entry.DroppedLines,
		&errorMessage,
		&createdRaw,
	); err != nil {
		return nil, err
	}
	entry.Operation = Operation(operation)
	entry.Status = Status(status)
	entry.Study = study.String
	entry.SourcePath = sourcePath.String
	entry.TemplatePath = templatePath.String
	entry.OutputPath = outputPath.String
	entry.ErrorMessage = errorMessage.String
	if created, err := time.Parse(time.RFC3339Nano, createdRaw); err == nil {
		entry.CreatedAt = created
	}
	return &entry, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
