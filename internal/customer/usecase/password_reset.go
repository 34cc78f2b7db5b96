package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/eatelite/internal/customer/entity"
	"github.com/shandysiswandi/eatelite/internal/customer/ledger"
	"github.com/shandysiswandi/eatelite/internal/pkg/goerror"
)

var errOTPNotIssued = errors.New("customer: no otp issued")

type ResetPasswordInput struct {
	Email           string `validate:"required"`
	NewPassword     string `validate:"required"`
	ConfirmPassword string `validate:"required"`
	OTP             string `validate:"required"`
}

func (s *Usecase) ResetPassword(ctx context.Context, in ResetPasswordInput) error {
	ctx, span := s.startSpan(ctx, "ResetPassword")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.OTP = strings.TrimSpace(in.OTP)

	if err := s.validate(in); err != nil {
		return err
	}

	if in.NewPassword != in.ConfirmPassword {
		return entity.ErrNewPasswordMismatch
	}

	customer, err := s.repoDB.GetActiveCustomerByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "password reset for unknown customer", "email", in.Email)
		return entity.ErrWrongEmail
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get customer by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	now := s.clock.Now()
	check, err := s.ledger.Verify(ctx, customer.ID, in.OTP, now)
	if err != nil {
		slog.ErrorContext(ctx, "failed to verify otp", "customer_id", customer.ID, "error", err)
		return goerror.NewServer(err)
	}

	switch check.Outcome {
	case ledger.OutcomeVerified:
	case ledger.OutcomeExpired:
		return entity.ErrOTPExpired
	case ledger.OutcomeMismatch:
		return entity.ErrOTPMismatch
	default:
		slog.ErrorContext(ctx, "password reset without an issued otp", "customer_id", customer.ID, "outcome", check.Outcome.String())
		return goerror.NewServer(errOTPNotIssued)
	}

	if err := checkPassword(in.NewPassword); err != nil {
		return err
	}

	credential, err := s.credential.Hash(in.NewPassword)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash credential", "customer_id", customer.ID, "error", err)
		return goerror.NewServer(err)
	}

	err = s.repoDB.ResetCredential(ctx, customer.ID, check.RecordID, string(credential), now)
	switch {
	case errors.Is(err, goerror.ErrConflict):
		slog.WarnContext(ctx, "otp consumed concurrently", "customer_id", customer.ID, "otp_id", check.RecordID)
		return entity.ErrOTPExpired
	case errors.Is(err, goerror.ErrNotFound):
		return entity.ErrWrongEmail
	case err != nil:
		slog.ErrorContext(ctx, "failed to repo reset credential", "customer_id", customer.ID, "error", err)
		return goerror.NewServer(err)
	}

	s.publish(ctx, "customer password reset", func(ctx context.Context) error {
		return s.repoMessaging.PublishCustomerPasswordReset(ctx, CustomerPasswordResetEvent{
			CustomerID: customer.ID,
			Email:      customer.Email,
			OccurredAt: now,
		})
	})

	return nil
}
