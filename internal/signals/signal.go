package signals

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrInvalidSample = errors.New("sample must be [offset, [x, y, z]]")

// Vector is three coordinates. No meaning is attached beyond that.
type Vector [3]float64

// Sample is one (offset, vector) pair. On the wire it is the tuple
// [offset, [x, y, z]].
type Sample struct {
	Offset int64
	Vector Vector
}

func (s Sample) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{s.Offset, s.Vector})
}

func (s *Sample) UnmarshalJSON(b []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(b, &parts); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSample, err)
	}
	if len(parts) != 2 {
		return ErrInvalidSample
	}
	var offset int64
	if err := json.Unmarshal(parts[0], &offset); err != nil {
		return fmt.Errorf("%w: offset: %v", ErrInvalidSample, err)
	}
	var coords []float64
	if err := json.Unmarshal(parts[1], &coords); err != nil {
		return fmt.Errorf("%w: vector: %v", ErrInvalidSample, err)
	}
	if len(coords) != 3 {
		return fmt.Errorf("%w: vector has %d coordinates", ErrInvalidSample, len(coords))
	}
	s.Offset = offset
	copy(s.Vector[:], coords)
	return nil
}

// Payload is the value stored under the device key of a signal message.
type Payload struct {
	Data []Sample `json:"data"`
	Time int64    `json:"time"`
}

// Record is what the ingest handler hands to the store.
type Record struct {
	DeviceID string
	Data     []Sample
	Time     int64
}

func (r Record) Valid() bool {
	return r.DeviceID != "" && len(r.Data) > 0 && r.Time > 0
}

type StoredSignal struct {
	ID             string    `json:"id"`
	DeviceID       string    `json:"deviceId"`
	Data           []Sample  `json:"data"`
	Time           int64     `json:"time"`
	IdempotencyKey string    `json:"idempotencyKey,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Filter narrows a signal query. Zero values mean "no constraint".
type Filter struct {
	DeviceID  string
	StartTime *int64
	EndTime   *int64
}

type Page struct {
	Data  []StoredSignal `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// Patch carries the mutable fields of a stored signal; nil means unchanged.
type Patch struct {
	DeviceID *string
	Data     []Sample
	Time     *int64
}

func (p Patch) Empty() bool {
	return p.DeviceID == nil && p.Data == nil && p.Time == nil
}
