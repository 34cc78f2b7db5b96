package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/eatelite/internal/customer/entity"
	"github.com/shandysiswandi/eatelite/internal/pkg/goerror"
)

type RequestOTPInput struct {
	Email string `validate:"required"`
}

func (s *Usecase) RequestOTP(ctx context.Context, in RequestOTPInput) error {
	ctx, span := s.startSpan(ctx, "RequestOTP")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validate(in); err != nil {
		return err
	}

	customer, err := s.repoDB.GetActiveCustomerByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "otp requested for unknown customer", "email", in.Email)
		return entity.ErrWrongEmail
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get customer by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	code, err := s.ledger.Issue(ctx, customer.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to issue otp", "customer_id", customer.ID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.notifier.SendOTP(ctx, customer.Email, code, s.ledger.TTL()); err != nil {
		slog.ErrorContext(ctx, "failed to send otp email", "customer_id", customer.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
