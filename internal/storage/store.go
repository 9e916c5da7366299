package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Snapshot keys. The whole state of the app is two serialized collections.
const (
	KeyProfiles   = "profiles"
	KeyActivities = "pending_activities"
)

// Store reads and writes whole-collection snapshots. There is no incremental
// diffing: every save replaces the previous value for its key.
type Store struct {
	db *sql.DB
}

// withTx runs fn inside a SQL transaction so multi-key saves land together.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	committed = true
	return nil
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) get(ctx context.Context, key string) ([]byte, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM snapshots WHERE key = ?`, key)
	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("snapshot get %q: %w", key, err)
	}
	return []byte(raw), nil
}

func putTx(ctx context.Context, tx *sql.Tx, key string, value []byte) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(value), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("snapshot put %q: %w", key, err)
	}
	return nil
}

// LoadProfiles returns the persisted profile list, empty when none was saved.
func (s *Store) LoadProfiles(ctx context.Context) ([]Profile, error) {
	raw, err := s.get(ctx, KeyProfiles)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var out []Profile
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("unmarshal profiles: %w", err)
	}
	return out, nil
}

// LoadActivities returns the persisted pending-activity list.
func (s *Store) LoadActivities(ctx context.Context) ([]PendingActivity, error) {
	raw, err := s.get(ctx, KeyActivities)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var out []PendingActivity
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("unmarshal pending activities: %w", err)
	}
	return out, nil
}

// SaveProfiles overwrites the profile snapshot.
func (s *Store) SaveProfiles(ctx context.Context, profiles []Profile) error {
	raw, err := json.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("marshal profiles: %w", err)
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		return putTx(ctx, tx, KeyProfiles, raw)
	})
}

// SaveActivities overwrites the pending-activity snapshot.
func (s *Store) SaveActivities(ctx context.Context, acts []PendingActivity) error {
	raw, err := json.Marshal(acts)
	if err != nil {
		return fmt.Errorf("marshal pending activities: %w", err)
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		return putTx(ctx, tx, KeyActivities, raw)
	})
}

// SaveAll overwrites both snapshots in one transaction. Used by operations
// that touch the queue and a profile at once (activity approval).
func (s *Store) SaveAll(ctx context.Context, profiles []Profile, acts []PendingActivity) error {
	rawP, err := json.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("marshal profiles: %w", err)
	}
	rawA, err := json.Marshal(acts)
	if err != nil {
		return fmt.Errorf("marshal pending activities: %w", err)
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := putTx(ctx, tx, KeyProfiles, rawP); err != nil {
			return err
		}
		return putTx(ctx, tx, KeyActivities, rawA)
	})
}
