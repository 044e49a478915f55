package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"todolist/internal/domain"
	"todolist/internal/repository"
)

type SnapshotRepository struct {
	db *DB
}

var _ repository.SnapshotRepository = (*SnapshotRepository)(nil)

func NewSnapshotRepository(db *DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

type dbEntry struct {
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// decodes the stored JSON blob into a snapshot
func (e *dbEntry) toSnapshot() (*domain.Snapshot, error) {
	var snap domain.Snapshot
	if err := json.Unmarshal([]byte(e.Value), &snap); err != nil {
		return nil, &repository.DecodeError{Key: e.Key, Err: err}
	}
	// "null" decodes to an empty struct
	if snap.Items == nil {
		snap.Items = make(map[string]*domain.Item)
	}
	return &snap, nil
}

// reads the snapshot stored under key
func (r *SnapshotRepository) Load(ctx context.Context, key string) (*domain.Snapshot, error) {
	var entry dbEntry
	query := `SELECT key, value, created_at, updated_at FROM kv_store WHERE key = ?`

	if err := r.db.GetContext(ctx, &entry, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", repository.ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	return entry.toSnapshot()
}

// upserts the snapshot under key
func (r *SnapshotRepository) Save(ctx context.Context, key string, snap *domain.Snapshot) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("storage key cannot be empty")
	}
	if snap == nil {
		snap = domain.NewSnapshot()
	}

	value, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	query := `
		INSERT INTO kv_store (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`

	if _, err := r.db.ExecContext(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

func (r *SnapshotRepository) Delete(ctx context.Context, key string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("%w: %s", repository.ErrNotFound, key)
	}

	return nil
}

// lists stored keys in ascending order
func (r *SnapshotRepository) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	if err := r.db.SelectContext(ctx, &keys, `SELECT key FROM kv_store ORDER BY key`); err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	return keys, nil
}
