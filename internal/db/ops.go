package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"signal-ingest-service/internal/failure"
	"signal-ingest-service/internal/signals"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgconn"
)

var (
	ErrInsertFailed           = errors.New("insert operation failed")
	ErrTransactionStartFailed = errors.New("transaction start failed")
	ErrSelectFailed           = errors.New("select operation failed")
	ErrDeleteFailed           = errors.New("delete operation failed")
	ErrUpdateFailed           = errors.New("update operation failed")
	ErrEncodeFailed           = errors.New("encode operation failed")
)

const (
	codeUniqueViolation      = "23505"
	codeInvalidTextRepresent = "22P02"
)

// InsertSignal stores rec. With a non-empty idempotencyKey an earlier row
// with the same key is returned instead of inserting a second one.
func (db *DB) InsertSignal(ctx context.Context, rec signals.Record, idempotencyKey string) (signals.StoredSignal, error) {
	const fn = "DB:InsertSignal"
	data, err := json.Marshal(rec.Data)
	if err != nil {
		return signals.StoredSignal{}, failure.New(failure.KindPersistence, fn, "", fmt.Errorf("%w:%w", ErrEncodeFailed, err))
	}

	var row signalRow
	err = pgxscan.Get(ctx, db.pool, &row, `
		INSERT INTO signals (
			device_id,
			data,
			time,
			idempotency_key
		) VALUES ($1, $2, $3, NULLIF($4, ''))
		ON CONFLICT (idempotency_key) DO NOTHING
		RETURNING `+signalColumns,
		rec.DeviceID, string(data), rec.Time, idempotencyKey)
	if pgxscan.NotFound(err) && idempotencyKey != "" {
		err = pgxscan.Get(ctx, db.pool, &row, `
			SELECT `+signalColumns+`
			FROM signals
			WHERE idempotency_key = $1
		`, idempotencyKey)
	}
	if err != nil {
		return signals.StoredSignal{}, classify(fn, ErrInsertFailed, err)
	}
	return decodeRow(fn, row)
}

// InsertSignals stores all records or none.
func (db *DB) InsertSignals(ctx context.Context, recs []signals.Record) ([]signals.StoredSignal, error) {
	const fn = "DB:InsertSignals"
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, classify(fn, ErrTransactionStartFailed, err)
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	out := make([]signals.StoredSignal, 0, len(recs))
	for _, rec := range recs {
		var data []byte
		data, err = json.Marshal(rec.Data)
		if err != nil {
			return nil, failure.New(failure.KindPersistence, fn, "", fmt.Errorf("%w:%w", ErrEncodeFailed, err))
		}
		var row signalRow
		err = pgxscan.Get(ctx, tx, &row, `
			INSERT INTO signals (
				device_id,
				data,
				time
			) VALUES ($1, $2, $3)
			RETURNING `+signalColumns,
			rec.DeviceID, string(data), rec.Time)
		if err != nil {
			return nil, classify(fn, ErrInsertFailed, err)
		}
		var s signals.StoredSignal
		if s, err = decodeRow(fn, row); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, classify(fn, ErrInsertFailed, err)
	}
	return out, nil
}

// QuerySignals returns one page of signals, newest first.
func (db *DB) QuerySignals(ctx context.Context, f signals.Filter, page, limit int) (signals.Page, error) {
	const fn = "DB:QuerySignals"
	if page < 1 || limit < 1 {
		return signals.Page{}, failure.New(failure.KindInvalidArgument, fn, "page and limit must be positive", nil)
	}
	where, args := filterClause(f)

	var total int64
	if err := db.pool.QueryRow(ctx, `SELECT count(*) FROM signals`+where, args...).Scan(&total); err != nil {
		return signals.Page{}, classify(fn, ErrSelectFailed, err)
	}

	var rows []signalRow
	args = append(args, limit, (page-1)*limit)
	err := pgxscan.Select(ctx, db.pool, &rows, `
		SELECT `+signalColumns+`
		FROM signals`+where+`
		ORDER BY time DESC, created_at DESC
		LIMIT $`+fmt.Sprint(len(args)-1)+` OFFSET $`+fmt.Sprint(len(args)),
		args...)
	if err != nil {
		return signals.Page{}, classify(fn, ErrSelectFailed, err)
	}

	out := signals.Page{
		Data:  make([]signals.StoredSignal, 0, len(rows)),
		Total: total,
		Page:  page,
		Limit: limit,
	}
	for _, r := range rows {
		s, err := decodeRow(fn, r)
		if err != nil {
			return signals.Page{}, err
		}
		out.Data = append(out.Data, s)
	}
	return out, nil
}

func (db *DB) GetSignal(ctx context.Context, id string) (signals.StoredSignal, error) {
	const fn = "DB:GetSignal"
	var row signalRow
	err := pgxscan.Get(ctx, db.pool, &row, `
		SELECT `+signalColumns+`
		FROM signals
		WHERE id = $1::text::uuid
	`, id)
	if pgxscan.NotFound(err) {
		return signals.StoredSignal{}, failure.New(failure.KindNotFound, fn, "signal not found", err)
	}
	if err != nil {
		return signals.StoredSignal{}, classify(fn, ErrSelectFailed, err)
	}
	return decodeRow(fn, row)
}

// DeleteSignals removes the given ids and reports how many rows went away.
func (db *DB) DeleteSignals(ctx context.Context, ids []string) (int64, error) {
	const fn = "DB:DeleteSignals"
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := db.pool.Exec(ctx, `DELETE FROM signals WHERE id = ANY($1::text[]::uuid[])`, ids)
	if err != nil {
		return 0, classify(fn, ErrDeleteFailed, err)
	}
	return tag.RowsAffected(), nil
}

// UpdateSignals applies patch to every given id.
func (db *DB) UpdateSignals(ctx context.Context, ids []string, patch signals.Patch) (int64, error) {
	const fn = "DB:UpdateSignals"
	if patch.Empty() {
		return 0, failure.New(failure.KindInvalidArgument, fn, "nothing to update", nil)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	sets := []string{"updated_at = now()"}
	args := []any{ids}
	if patch.DeviceID != nil {
		args = append(args, *patch.DeviceID)
		sets = append(sets, fmt.Sprintf("device_id = $%d", len(args)))
	}
	if patch.Data != nil {
		data, err := json.Marshal(patch.Data)
		if err != nil {
			return 0, failure.New(failure.KindPersistence, fn, "", fmt.Errorf("%w:%w", ErrEncodeFailed, err))
		}
		args = append(args, string(data))
		sets = append(sets, fmt.Sprintf("data = $%d", len(args)))
	}
	if patch.Time != nil {
		args = append(args, *patch.Time)
		sets = append(sets, fmt.Sprintf("time = $%d", len(args)))
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE signals SET `+strings.Join(sets, ", ")+` WHERE id = ANY($1::text[]::uuid[])`,
		args...)
	if err != nil {
		return 0, classify(fn, ErrUpdateFailed, err)
	}
	return tag.RowsAffected(), nil
}

func filterClause(f signals.Filter) (string, []any) {
	var conds []string
	var args []any
	if f.DeviceID != "" {
		args = append(args, f.DeviceID)
		conds = append(conds, fmt.Sprintf("device_id = $%d", len(args)))
	}
	if f.StartTime != nil {
		args = append(args, *f.StartTime)
		conds = append(conds, fmt.Sprintf("time >= $%d", len(args)))
	}
	if f.EndTime != nil {
		args = append(args, *f.EndTime)
		conds = append(conds, fmt.Sprintf("time <= $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func decodeRow(fn string, row signalRow) (signals.StoredSignal, error) {
	s, err := row.signal()
	if err != nil {
		return signals.StoredSignal{}, failure.New(failure.KindPersistence, fn, "", fmt.Errorf("%w:%w", ErrSelectFailed, err))
	}
	return s, nil
}

// classify maps driver errors onto failure kinds.
func classify(fn string, op, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return failure.New(failure.KindDuplicate, fn, pgErr.ConstraintName, err)
		case codeInvalidTextRepresent:
			return failure.New(failure.KindInvalidArgument, fn, "", err)
		}
	}
	return failure.New(failure.KindPersistence, fn, "", fmt.Errorf("%w:%w", op, err))
}
