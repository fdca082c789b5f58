package api

import "signal-ingest-service/internal/signals"

type ErrorResponse struct {
	Error string `json:"error"`
}

type SignalInput struct {
	DeviceID string           `json:"deviceId"`
	Data     []signals.Sample `json:"data"`
	Time     int64            `json:"time"`
}

type CreateSignalsRequest struct {
	Signals []SignalInput `json:"signals"`
}

type CreateSignalsResponse struct {
	Data []signals.StoredSignal `json:"data"`
}

type DeleteSignalsRequest struct {
	IDs []string `json:"ids"`
}

type SignalUpdate struct {
	DeviceID *string         `json:"deviceId"`
	Data     []signals.Sample `json:"data"`
	Time     *int64           `json:"time"`
}

type UpdateSignalsRequest struct {
	IDs    []string     `json:"ids"`
	Update SignalUpdate `json:"update"`
}

type AffectedResponse struct {
	Affected int64 `json:"affected"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Consumer string `json:"consumer"`
	Database string `json:"database"`
}
