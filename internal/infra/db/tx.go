package db

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"library-service/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	defaultMaxRetries = 3
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// RunInTx runs fn in a ReadCommitted transaction and retries on
// serialization failures and deadlocks.
func RunInTx(ctx context.Context, db TxBeginner, fn func(ctx context.Context, tx DBTX) error) error {
	return runInTxWithRetry(ctx, db, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, defaultMaxRetries, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func runInTxWithRetry(ctx context.Context, db TxBeginner, options pgx.TxOptions, maxRetries int, fn func(ctx context.Context, tx DBTX) error) error {
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		tx, err := db.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, ErrTransactionBegin)
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = tx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, ErrTransactionCommit)
		}

		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !isRetryableError(err) {
			return err
		}
		if attempt == maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(err, ErrMaxRetriesExceeded)
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return ErrMaxRetriesExceeded
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit is masked above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}
