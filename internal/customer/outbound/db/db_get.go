package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shandysiswandi/eatelite/internal/customer/entity"
)

const queryActiveCustomerByEmail = `
SELECT customer_id, username, email, password, mobile_number, usr_dob, credit,
       created_at, updated_at, is_deleted
FROM ee_customers
WHERE email = $1 AND is_deleted = false`

func (s *DB) GetActiveCustomerByEmail(ctx context.Context, email string) (_ *entity.Customer, err error) {
	ctx, span := s.startSpan(ctx, "GetActiveCustomerByEmail")
	defer func() { s.endSpan(span, err) }()

	var (
		c     entity.Customer
		phone pgtype.Text
		dob   pgtype.Date
	)
	err = s.conn.QueryRow(ctx, queryActiveCustomerByEmail, email).Scan(
		&c.ID, &c.Username, &c.Email, &c.Credential, &phone, &dob, &c.Credit,
		&c.CreatedAt, &c.UpdatedAt, &c.IsDeleted,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	if phone.Valid {
		c.Phone = &phone.String
	}
	if dob.Valid {
		c.DOB = &dob.Time
	}

	return &c, nil
}

const queryActiveEmailExists = `
SELECT EXISTS (SELECT 1 FROM ee_customers WHERE email = $1 AND is_deleted = false)`

func (s *DB) ExistsActiveEmail(ctx context.Context, email string) (_ bool, err error) {
	ctx, span := s.startSpan(ctx, "ExistsActiveEmail")
	defer func() { s.endSpan(span, err) }()

	var ok bool
	if err = s.conn.QueryRow(ctx, queryActiveEmailExists, email).Scan(&ok); err != nil {
		return false, s.mapError(err)
	}
	return ok, nil
}

const queryActivePhoneExists = `
SELECT EXISTS (SELECT 1 FROM ee_customers WHERE mobile_number = $1 AND is_deleted = false)`

func (s *DB) ExistsActivePhone(ctx context.Context, phone string) (_ bool, err error) {
	ctx, span := s.startSpan(ctx, "ExistsActivePhone")
	defer func() { s.endSpan(span, err) }()

	var ok bool
	if err = s.conn.QueryRow(ctx, queryActivePhoneExists, phone).Scan(&ok); err != nil {
		return false, s.mapError(err)
	}
	return ok, nil
}

// Newest first; the id breaks ties between records created in the same
// instant since snowflake ids grow monotonically per node.
const queryCurrentOTP = `
SELECT customer_otp_id, customer_id, otp, created_at, consumed_at
FROM ee_customer_otp
WHERE customer_id = $1 AND is_deleted = false
ORDER BY created_at DESC, customer_otp_id DESC
LIMIT 1`

func (s *DB) GetCurrentOTP(ctx context.Context, customerID int64) (_ *entity.OTPRecord, err error) {
	ctx, span := s.startSpan(ctx, "GetCurrentOTP")
	defer func() { s.endSpan(span, err) }()

	var (
		rec      entity.OTPRecord
		consumed pgtype.Timestamptz
	)
	err = s.conn.QueryRow(ctx, queryCurrentOTP, customerID).Scan(
		&rec.ID, &rec.CustomerID, &rec.Code, &rec.CreatedAt, &consumed,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	if consumed.Valid {
		rec.ConsumedAt = &consumed.Time
	}

	return &rec, nil
}
