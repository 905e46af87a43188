package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tdsretail/stockroom/internal/model"
)

// Save upserts the serialized state under the namespace key. The whole
// blob is replaced in one statement, so readers never observe a partially
// written snapshot.
func (s *Store) Save(ctx context.Context, namespace string, state model.State) error {
	payload, err := MarshalState(state)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (namespace, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(namespace) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`, namespace, payload, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot for the namespace. A missing row or a payload
// that fails to decode yields ok=false with a nil error: both are treated
// as "no usable snapshot" and the caller starts from the seed dataset.
// Only infrastructure failures (the query itself erroring) are returned.
func (s *Store) Load(ctx context.Context, namespace string) (model.State, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM snapshots WHERE namespace = ?`, namespace,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return model.State{}, false, nil
	}
	if err != nil {
		return model.State{}, false, fmt.Errorf("load snapshot: %w", err)
	}

	state, err := UnmarshalState(payload)
	if err != nil {
		slog.Warn("discarding malformed snapshot", "namespace", namespace, "error", err)
		return model.State{}, false, nil
	}
	return state, true, nil
}

// MarshalState serializes state to the snapshot wire format. Collections
// are slices in insertion order and struct fields encode in declaration
// order, so the same state always produces the same bytes - snapshots are
// comparable byte-for-byte in tests.
func MarshalState(state model.State) ([]byte, error) {
	payload, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}
	return payload, nil
}

// UnmarshalState decodes a snapshot payload. Nil collection fields are
// normalized to empty slices so a decoded state compares equal to the
// state that produced it.
func UnmarshalState(payload []byte) (model.State, error) {
	var state model.State
	if err := json.Unmarshal(payload, &state); err != nil {
		return model.State{}, fmt.Errorf("unmarshal state: %w", err)
	}
	if state.Stock == nil {
		state.Stock = []model.StockItem{}
	}
	if state.Menu == nil {
		state.Menu = []model.MenuItem{}
	}
	if state.Sales == nil {
		state.Sales = []model.Sale{}
	}
	return state, nil
}
