package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/webclip"
)

// Compile-time interface verification.
var _ webclip.OptionsService = (*OptionsService)(nil)

// OptionsService implements webclip.OptionsService using SQLite.
// Values are stored as text, one row per key.
type OptionsService struct {
	db *DB
}

// NewOptionsService creates a new OptionsService.
func NewOptionsService(db *DB) *OptionsService {
	return &OptionsService{db: db}
}

// Get returns the raw value stored for key, or "" when unset.
func (s *OptionsService) Get(ctx context.Context, key string) (string, error) {
	if !webclip.IsOptionKey(key) {
		return "", webclip.Errorf(webclip.EINVALID, "unknown option %q", key)
	}

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM options WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set stores value for key, replacing any previous value.
// Base tags are normalized to a trimmed comma-separated list.
func (s *OptionsService) Set(ctx context.Context, key, value string) error {
	if err := webclip.ValidateOption(key, value); err != nil {
		return err
	}
	if key == webclip.OptionBaseTags {
		value = strings.Join(webclip.SplitTags(value), ",")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO options (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC().Format(time.RFC3339))
	return err
}

// Unset removes the value stored for key. Unsetting an unset key is not
// an error.
func (s *OptionsService) Unset(ctx context.Context, key string) error {
	if !webclip.IsOptionKey(key) {
		return webclip.Errorf(webclip.EINVALID, "unknown option %q", key)
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM options WHERE key = ?`, key)
	return err
}

// Options returns every stored option decoded into webclip.Options.
func (s *OptionsService) Options(ctx context.Context) (*webclip.Options, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM options`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return webclip.DecodeOptions(values)
}

// BaseTags returns the configured base tags in order.
func (s *OptionsService) BaseTags(ctx context.Context) ([]string, error) {
	value, err := s.Get(ctx, webclip.OptionBaseTags)
	if err != nil {
		return nil, err
	}
	return webclip.SplitTags(value), nil
}
