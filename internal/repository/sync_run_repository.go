package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	RunStatusRunning             = "running"
	RunStatusCompleted           = "completed"
	RunStatusCompletedWithErrors = "completed_with_errors"
	RunStatusFailed              = "failed"
	RunStatusCanceled            = "canceled"
)

// SyncRun is one push of a batch of entities to the remote system.
type SyncRun struct {
	ID          string     `json:"id"`
	Source      string     `json:"source"`
	Status      string     `json:"status"`
	Total       int        `json:"total"`
	Succeeded   int        `json:"succeeded"`
	Failed      int        `json:"failed"`
	Skipped     int        `json:"skipped"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type SyncRunRepository struct {
	db *sql.DB
}

func NewSyncRunRepository(db *sql.DB) *SyncRunRepository {
	return &SyncRunRepository{db: db}
}

// Create stores run with a fresh id, overwriting run.ID and run.StartedAt.
func (r *SyncRunRepository) Create(run *SyncRun) (string, error) {
	run.ID = uuid.NewString()
	run.StartedAt = time.Now().UTC()
	if run.Status == "" {
		run.Status = RunStatusRunning
	}

	query := `
	INSERT INTO sync_runs (id, source, status, total, started_at)
        VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, run.ID, run.Source, run.Status, run.Total, run.StartedAt)
	if err != nil {
		return "", fmt.Errorf("create sync run: %w", err)
	}

	return run.ID, nil
}

func (r *SyncRunRepository) UpdateProgress(id string, succeeded, failed, skipped int) error {
	query := `UPDATE sync_runs SET succeeded = ?, failed = ?, skipped = ? WHERE id = ?`
	if _, err := r.db.Exec(query, succeeded, failed, skipped, id); err != nil {
		return fmt.Errorf("update sync run progress: %w", err)
	}
	return nil
}

func (r *SyncRunRepository) Complete(id string, status string) error {
	query := `UPDATE sync_runs SET status = ?, completed_at = ? WHERE id = ?`
	if _, err := r.db.Exec(query, status, time.Now().UTC(), id); err != nil {
		return fmt.Errorf("complete sync run: %w", err)
	}
	return nil
}

const selectRun = `
	SELECT id, source, status, total, succeeded, failed, skipped, started_at, completed_at
	FROM sync_runs
`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (SyncRun, error) {
	var run SyncRun
	var completedAt sql.NullTime
	err := row.Scan(
		&run.ID,
		&run.Source,
		&run.Status,
		&run.Total,
		&run.Succeeded,
		&run.Failed,
		&run.Skipped,
		&run.StartedAt,
		&completedAt,
	)
	if completedAt.Valid {
		run.CompletedAt = &completedAt.Time
	}
	return run, err
}

// GetRuns lists runs, newest first.
func (r *SyncRunRepository) GetRuns(limit int) ([]SyncRun, error) {
	query := selectRun + ` ORDER BY started_at DESC LIMIT ?`
	if limit <= 0 {
		limit = -1
	}

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("get sync runs: %w", err)
	}
	defer rows.Close()

	runs := []SyncRun{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sync run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

func (r *SyncRunRepository) GetRun(id string) (SyncRun, error) {
	run, err := scanRun(r.db.QueryRow(selectRun+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return SyncRun{}, fmt.Errorf("get sync run %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return SyncRun{}, fmt.Errorf("get sync run: %w", err)
	}
	return run, nil
}
