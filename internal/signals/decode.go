package signals

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	ErrMalformed        = errors.New("malformed payload")
	ErrMissingContent   = errors.New("missing content")
	ErrInvalidStructure = errors.New("invalid signal data structure")
)

// Message is a decoded signal message. Ignored lists any top-level keys after
// the first one; only the first device is ingested.
type Message struct {
	DeviceID string
	Payload  Payload
	Ignored  []string
}

func (m Message) Record() Record {
	return Record{
		DeviceID: m.DeviceID,
		Data:     m.Payload.Data,
		Time:     m.Payload.Time,
	}
}

// Decode parses {"<deviceId>": {"data": [...], "time": <ms>}}. The device id
// is the first key in document order, so the body is walked token by token
// instead of going through a map.
func Decode(body []byte) (Message, error) {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return Message{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if tok == nil {
		return Message{}, ErrMissingContent
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return Message{}, fmt.Errorf("%w: top level must be an object", ErrMalformed)
	}

	var (
		msg        Message
		seen       bool
		payloadErr error
	)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Message{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return Message{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if seen {
			msg.Ignored = append(msg.Ignored, key)
			continue
		}
		seen = true
		msg.DeviceID = key
		msg.Payload, payloadErr = decodePayload(raw)
	}
	if _, err := dec.Token(); err != nil {
		return Message{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Message{}, fmt.Errorf("%w: trailing data after object", ErrMalformed)
	}

	if !seen {
		return Message{}, ErrMissingContent
	}
	if payloadErr != nil {
		return Message{}, payloadErr
	}
	if !msg.Record().Valid() {
		return Message{}, ErrInvalidStructure
	}
	return msg, nil
}

func decodePayload(raw json.RawMessage) (Payload, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return Payload{}, fmt.Errorf("%w: device value must be an object", ErrInvalidStructure)
	}

	var p Payload
	if data, ok := fields["data"]; ok {
		if err := json.Unmarshal(data, &p.Data); err != nil {
			return Payload{}, fmt.Errorf("%w: data: %v", ErrInvalidStructure, err)
		}
	}
	if t, ok := fields["time"]; ok {
		if err := json.Unmarshal(t, &p.Time); err != nil {
			return Payload{}, fmt.Errorf("%w: time: %v", ErrInvalidStructure, err)
		}
	}
	return p, nil
}
