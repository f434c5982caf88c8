package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ledgerRepo implements LedgerRepo over the single-row ledger_state table.
type ledgerRepo struct {
	db *sql.DB
}

func (r *ledgerRepo) Save(ctx context.Context, data *LedgerData) error {
	blob, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO ledger_state (id, data, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		string(blob), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	return nil
}

func (r *ledgerRepo) Load(ctx context.Context) (*LedgerData, error) {
	var blob string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM ledger_state WHERE id = 1`,
	).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	var data LedgerData
	if err := json.Unmarshal([]byte(blob), &data); err != nil {
		return nil, fmt.Errorf("unmarshal ledger: %w", err)
	}
	return &data, nil
}
