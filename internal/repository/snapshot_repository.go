package repository

import (
	"context"
	"errors"
	"fmt"

	"todolist/internal/domain"
)

var ErrNotFound = errors.New("snapshot not found")

// DecodeError reports a stored blob that is not a valid snapshot.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode snapshot %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// SnapshotRepository is a key-value store for list snapshots.
type SnapshotRepository interface {
	Load(ctx context.Context, key string) (*domain.Snapshot, error)
	Save(ctx context.Context, key string, snap *domain.Snapshot) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}
