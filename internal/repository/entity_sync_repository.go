package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const (
	EntityStatusSent      = "sent"
	EntityStatusUnchanged = "unchanged"
	EntityStatusInvalid   = "invalid"
	EntityStatusFailed    = "failed"
)

// EntitySync records what happened to one entity during a run.
type EntitySync struct {
	ID            int64     `json:"id"`
	RunID         string    `json:"run_id"`
	TypeName      string    `json:"type_name"`
	IntegrationID string    `json:"integration_id"`
	Status        string    `json:"status"`
	Fingerprint   string    `json:"fingerprint,omitempty"`
	RemoteID      string    `json:"remote_id,omitempty"`
	Message       string    `json:"message,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type EntitySyncRepository struct {
	db *sql.DB
}

func NewEntitySyncRepository(db *sql.DB) *EntitySyncRepository {
	return &EntitySyncRepository{db: db}
}

func (r *EntitySyncRepository) Create(sync *EntitySync) error {
	sync.CreatedAt = time.Now().UTC()
	query := `
		INSERT INTO entity_syncs (run_id, type_name, integration_id, status, fingerprint, remote_id, message, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		sync.RunID,
		sync.TypeName,
		sync.IntegrationID,
		sync.Status,
		sync.Fingerprint,
		sync.RemoteID,
		sync.Message,
		sync.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create entity sync: %w", err)
	}

	sync.ID, err = result.LastInsertId()
	return err
}

func (r *EntitySyncRepository) GetByRun(runID string) ([]EntitySync, error) {
	query := `
		SELECT id, run_id, type_name, integration_id, status, fingerprint, remote_id, message, created_at
		FROM entity_syncs WHERE run_id = ? ORDER BY id
	`
	rows, err := r.db.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("get entity syncs: %w", err)
	}
	defer rows.Close()

	syncs := []EntitySync{}
	for rows.Next() {
		var s EntitySync
		if err := rows.Scan(
			&s.ID,
			&s.RunID,
			&s.TypeName,
			&s.IntegrationID,
			&s.Status,
			&s.Fingerprint,
			&s.RemoteID,
			&s.Message,
			&s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan entity sync: %w", err)
		}
		syncs = append(syncs, s)
	}

	return syncs, rows.Err()
}

// LastFingerprint returns the fingerprint of the latest sent or unchanged record for the
// entity, or ErrNotFound.
func (r *EntitySyncRepository) LastFingerprint(typeName, integrationID string) (string, error) {
	query := `
		SELECT fingerprint FROM entity_syncs
		WHERE type_name = ? AND integration_id = ? AND status IN (?, ?)
		ORDER BY id DESC LIMIT 1
	`

	var fingerprint string
	err := r.db.QueryRow(query, typeName, integrationID, EntityStatusSent, EntityStatusUnchanged).Scan(&fingerprint)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get last fingerprint: %w", err)
	}
	return fingerprint, nil
}
