package repository

import (
	"context"
	"database/sql"
)

// insertOutboxEvent stores an event on the transactional outbox and
// notifies the relay. The NOTIFY only fires if the surrounding
// transaction commits, so the relay never sees uncommitted events.
func insertOutboxEvent(ctx context.Context, tx *sql.Tx, eventType string, payload []byte) error {
	var id string
	err := tx.QueryRowContext(ctx,
		`INSERT INTO outbox_events (event_type, payload) VALUES ($1, $2) RETURNING id`,
		eventType, payload).Scan(&id)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `SELECT pg_notify('outbox_channel', $1)`, id)
	return err
}
