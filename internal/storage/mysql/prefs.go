package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"vue-workorders/internal/storage"
)

func (s *Storage) GetPrefs(ctx context.Context, key string) (*storage.Prefs, error) {
	const op = "storage.mysql.GetPrefs"

	var payload []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM ui_prefs WHERE pref_key = ?", key,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var prefs storage.Prefs
	if err := json.Unmarshal(payload, &prefs); err != nil {
		// Corrupt saved state is treated the same as no saved state.
		return nil, storage.ErrNotFound
	}

	return &prefs, nil
}

func (s *Storage) SavePrefs(ctx context.Context, key string, prefs storage.Prefs) error {
	const op = "storage.mysql.SavePrefs"

	payload, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO ui_prefs (pref_key, payload) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE payload = VALUES(payload)`,
		key, payload,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
