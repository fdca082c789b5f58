package db

import (
	"encoding/json"
	"time"

	"signal-ingest-service/internal/signals"
)

const signalColumns = `
	id::text AS id,
	device_id,
	data::text AS data,
	time,
	idempotency_key,
	created_at,
	updated_at`

type signalRow struct {
	ID             string    `db:"id"`
	DeviceID       string    `db:"device_id"`
	Data           string    `db:"data"`
	Time           int64     `db:"time"`
	IdempotencyKey *string   `db:"idempotency_key"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (r signalRow) signal() (signals.StoredSignal, error) {
	s := signals.StoredSignal{
		ID:        r.ID,
		DeviceID:  r.DeviceID,
		Time:      r.Time,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.IdempotencyKey != nil {
		s.IdempotencyKey = *r.IdempotencyKey
	}
	if err := json.Unmarshal([]byte(r.Data), &s.Data); err != nil {
		return signals.StoredSignal{}, err
	}
	return s, nil
}
