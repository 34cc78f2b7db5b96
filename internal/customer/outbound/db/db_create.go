package db

import (
	"context"

	"github.com/shandysiswandi/eatelite/internal/customer/entity"
)

const queryCreateCustomer = `
INSERT INTO ee_customers (customer_id, username, email, password, mobile_number, usr_dob, credit)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// CreateCustomer inserts a customer with an already hashed credential. A race
// on the active unique indexes surfaces as entity.ErrDuplicateEmail or
// entity.ErrDuplicatePhone.
func (s *DB) CreateCustomer(ctx context.Context, c entity.NewCustomer, credential string) (err error) {
	ctx, span := s.startSpan(ctx, "CreateCustomer")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateCustomer,
		c.ID, c.Username, c.Email, credential, c.Phone, c.DOB, c.Credit,
	)
	err = s.mapError(err)
	return err
}

const queryCreateOTP = `
INSERT INTO ee_customer_otp (customer_otp_id, customer_id, otp, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)`

func (s *DB) CreateOTP(ctx context.Context, rec entity.OTPRecord) (err error) {
	ctx, span := s.startSpan(ctx, "CreateOTP")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateOTP, rec.ID, rec.CustomerID, rec.Code, rec.CreatedAt)
	err = s.mapError(err)
	return err
}

const queryCreateAuthToken = `
INSERT INTO ee_customer_auth_tokens
    (auth_token_id, customer_id, auth_access_token, auth_refresh_token, issued_at, expires_at, metadata)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (s *DB) CreateAuthToken(ctx context.Context, tok entity.AuthToken) (err error) {
	ctx, span := s.startSpan(ctx, "CreateAuthToken")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateAuthToken,
		tok.ID, tok.CustomerID, tok.AccessToken, tok.RefreshToken, tok.IssuedAt, tok.ExpiresAt, tok.Metadata,
	)
	err = s.mapError(err)
	return err
}
