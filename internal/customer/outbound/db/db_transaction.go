package db

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/eatelite/internal/pkg/goerror"
)

const queryUpdateCredential = `
UPDATE ee_customers SET password = $2, updated_at = $3
WHERE customer_id = $1 AND is_deleted = false`

const queryConsumeOTP = `
UPDATE ee_customer_otp SET consumed_at = $3, updated_at = $3
WHERE customer_otp_id = $1 AND customer_id = $2 AND consumed_at IS NULL`

// ResetCredential stores the new credential hash and consumes the OTP record
// that authorised it, atomically. It returns goerror.ErrNotFound when the
// customer is gone and goerror.ErrConflict when the OTP was already used.
func (s *DB) ResetCredential(ctx context.Context, customerID, otpID int64, credential string, at time.Time) (err error) {
	ctx, span := s.startSpan(ctx, "ResetCredential")
	defer func() { s.endSpan(span, err) }()

	tx, err := s.conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && !errors.Is(rErr, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "failed to rollback", "error", rErr)
		}
	}()

	tag, err := tx.Exec(ctx, queryUpdateCredential, customerID, credential, at)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	tag, err = tx.Exec(ctx, queryConsumeOTP, otpID, customerID, at)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrConflict
	}

	if err = tx.Commit(ctx); err != nil {
		return s.mapError(err)
	}

	return nil
}
