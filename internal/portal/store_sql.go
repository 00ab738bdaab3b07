package portal

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"time"
)

// stateKey is the single fixed key the whole snapshot lives under.
const stateKey = "portal_state"

// SQLStore persists the snapshot as one JSON blob in the snapshots table,
// on sqlite or postgres.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) Load(ctx context.Context) (State, error) {
	row := s.db.QueryRowContext(ctx, `SELECT data FROM snapshots WHERE key=$1`, stateKey)
	var raw string
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DefaultState(), nil
		}
		return State{}, err
	}
	return decodeState([]byte(raw)), nil
}

// decodeState is fail-open: an unreadable snapshot resets to the built-in
// catalog instead of propagating a parse error.
func decodeState(raw []byte) State {
	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		log.Printf("snapshot parse failed, falling back to defaults: %v", err)
		return DefaultState()
	}
	return st
}

func (s *SQLStore) Save(ctx context.Context, st State) error {
	buf, err := json.Marshal(st)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO snapshots (key,data,updated_at)
		VALUES ($1,$2,$3)
		ON CONFLICT (key) DO UPDATE SET data=EXCLUDED.data, updated_at=EXCLUDED.updated_at`,
		stateKey, string(buf), time.Now().Unix())
	return err
}
