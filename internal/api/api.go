package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"signal-ingest-service/internal/consumer"
	"signal-ingest-service/internal/failure"
	"signal-ingest-service/internal/signals"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type repository interface {
	InsertSignals(ctx context.Context, recs []signals.Record) ([]signals.StoredSignal, error)
	QuerySignals(ctx context.Context, f signals.Filter, page, limit int) (signals.Page, error)
	GetSignal(ctx context.Context, id string) (signals.StoredSignal, error)
	DeleteSignals(ctx context.Context, ids []string) (int64, error)
	UpdateSignals(ctx context.Context, ids []string, patch signals.Patch) (int64, error)
	Ping(ctx context.Context) error
}

type consumerState interface {
	State() consumer.State
}

type API struct {
	DB       repository
	Consumer consumerState
}

type Config struct {
	DB       repository
	Consumer consumerState
}

func New(cfg Config) *API {
	return &API{DB: cfg.DB, Consumer: cfg.Consumer}
}

func (a *API) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/health", a.Health)
	r.Route("/signals", func(r chi.Router) {
		r.Get("/", a.GetSignals)
		r.Post("/", a.CreateSignals)
		r.Patch("/", a.UpdateSignals)
		r.Delete("/", a.DeleteSignals)
		r.Get("/{id}", a.GetSignal)
		r.Delete("/{id}", a.DeleteSignal)
	})
	return r
}

// Health is ok only while the consumer is subscribed and the store answers.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok", Consumer: a.Consumer.State().String(), Database: "ok"}
	if err := a.DB.Ping(r.Context()); err != nil {
		slog.WarnContext(r.Context(), "Database ping failed", "error", err)
		resp.Database = "unreachable"
	}
	if resp.Consumer != consumer.StateConsuming.String() || resp.Database != "ok" {
		resp.Status = "unavailable"
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) GetSignals(w http.ResponseWriter, r *http.Request) {
	const fn = "API:GetSignals"
	q := r.URL.Query()

	page, err := intParam(q.Get("page"), defaultPage)
	if err != nil {
		writeError(w, r, failure.New(failure.KindInvalidArgument, fn, "page must be an integer", err))
		return
	}
	limit, err := intParam(q.Get("limit"), defaultLimit)
	if err != nil {
		writeError(w, r, failure.New(failure.KindInvalidArgument, fn, "limit must be an integer", err))
		return
	}
	if page < 1 {
		writeError(w, r, failure.New(failure.KindInvalidArgument, fn, "page must be at least 1", nil))
		return
	}
	if limit < 1 || limit > maxLimit {
		writeError(w, r, failure.New(failure.KindInvalidArgument, fn, "limit must be between 1 and 100", nil))
		return
	}

	filter := signals.Filter{DeviceID: q.Get("deviceId")}
	if filter.StartTime, err = timeParam(q.Get("startTime")); err != nil {
		writeError(w, r, failure.New(failure.KindInvalidArgument, fn, "startTime must be an integer timestamp", err))
		return
	}
	if filter.EndTime, err = timeParam(q.Get("endTime")); err != nil {
		writeError(w, r, failure.New(failure.KindInvalidArgument, fn, "endTime must be an integer timestamp", err))
		return
	}
	if filter.StartTime != nil && filter.EndTime != nil && *filter.StartTime > *filter.EndTime {
		writeError(w, r, failure.New(failure.KindInvalidArgument, fn, "startTime cannot be greater than endTime", nil))
		return
	}

	resp, err := a.DB.QuerySignals(r.Context(), filter, page, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) GetSignal(w http.ResponseWriter, r *http.Request) {
	const fn = "API:GetSignal"
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, r, failure.New(failure.KindInvalidArgument, fn, "invalid signal id", err))
		return
	}

	signal, err := a.DB.GetSignal(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, signal)
}

func (a *API) DeleteSignal(w http.ResponseWriter, r *http.Request) {
	const fn = "API:DeleteSignal"
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, r, failure.New(failure.KindInvalidArgument, fn, "invalid signal id", err))
		return
	}

	n, err := a.DB.DeleteSignals(r.Context(), []string{id})
	if err != nil {
		writeError(w, r, err)
		return
	}
	if n == 0 {
		writeError(w, r, failure.New(failure.KindNotFound, fn, "signal not found", nil))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) CreateSignals(w http.ResponseWriter, r *http.Request) {
	const fn = "API:CreateSignals"
	var req CreateSignalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, failure.New(failure.KindInvalidArgument, fn, "invalid request body", err))
		return
	}
	if len(req.Signals) == 0 {
		writeError(w, r, failure.New(failure.KindInvalidArgument, fn, "invalid signals data", nil))
		return
	}

	recs := make([]signals.Record, 0, len(req.Signals))
	for _, in := range req.Signals {
		rec := signals.Record{DeviceID: in.DeviceID, Data: in.Data, Time: in.Time}
		if !rec.Valid() {
			writeError(w, r, failure.New(failure.KindInvalidArgument, fn, "invalid signals data", nil))
			return
		}
		recs = append(recs, rec)
	}

	stored, err := a.DB.InsertSignals(r.Context(), recs)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, CreateSignalsResponse{Data: stored})
}

func (a *API) DeleteSignals(w http.ResponseWriter, r *http.Request) {
	const fn = "API:DeleteSignals"
	var req DeleteSignalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, failure.New(failure.KindInvalidArgument, fn, "invalid request body", err))
		return
	}
	if err := validateIDs(fn, req.IDs); err != nil {
		writeError(w, r, err)
		return
	}

	n, err := a.DB.DeleteSignals(r.Context(), req.IDs)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, AffectedResponse{Affected: n})
}

func (a *API) UpdateSignals(w http.ResponseWriter, r *http.Request) {
	const fn = "API:UpdateSignals"
	var req UpdateSignalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, failure.New(failure.KindInvalidArgument, fn, "invalid request body", err))
		return
	}
	if err := validateIDs(fn, req.IDs); err != nil {
		writeError(w, r, err)
		return
	}
	patch := signals.Patch{
		DeviceID: req.Update.DeviceID,
		Data:     req.Update.Data,
		Time:     req.Update.Time,
	}
	if patch.Empty() {
		writeError(w, r, failure.New(failure.KindInvalidArgument, fn, "invalid update data", nil))
		return
	}

	n, err := a.DB.UpdateSignals(r.Context(), req.IDs, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, AffectedResponse{Affected: n})
}

func validateIDs(fn string, ids []string) error {
	if len(ids) == 0 {
		return failure.New(failure.KindInvalidArgument, fn, "invalid signal ids", nil)
	}
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return failure.New(failure.KindInvalidArgument, fn, "invalid signal id in the list", err)
		}
	}
	return nil
}

func intParam(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func timeParam(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// writeError maps failure kinds to HTTP. Store details never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	var kind failure.Kind
	switch {
	case failure.Has(err, failure.KindInvalidArgument):
		status, kind = http.StatusBadRequest, failure.KindInvalidArgument
	case failure.Has(err, failure.KindValidation):
		status, kind = http.StatusBadRequest, failure.KindValidation
	case failure.Has(err, failure.KindNotFound):
		status, kind = http.StatusNotFound, failure.KindNotFound
	case failure.Has(err, failure.KindDuplicate):
		status, kind = http.StatusConflict, failure.KindDuplicate
	default:
		slog.ErrorContext(r.Context(), "Request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err,
		)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	msg := failure.MessageOf(err, kind)
	if msg == "" || kind == failure.KindDuplicate {
		msg = http.StatusText(status)
	}
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		slog.InfoContext(r.Context(), "Request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
