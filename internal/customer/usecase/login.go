package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/shandysiswandi/eatelite/internal/customer/entity"
	"github.com/shandysiswandi/eatelite/internal/pkg/goerror"
)

type LoginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
	Client   entity.ClientInfo
}

type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	IssuedAt     time.Time
}

func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validate(in); err != nil {
		return nil, err
	}

	customer, err := s.repoDB.GetActiveCustomerByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "customer account not found", "email", in.Email)
		return nil, entity.ErrWrongEmail
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get customer by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !s.credential.Verify(customer.Credential, in.Password) {
		slog.WarnContext(ctx, "customer credential not match", "customer_id", customer.ID)
		return nil, entity.ErrIncorrectPassword
	}

	pair, err := s.tokens.IssueAndPersist(ctx, customer.ID, customer.Email, in.Client)
	if err != nil {
		slog.ErrorContext(ctx, "failed to issue tokens", "customer_id", customer.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &LoginOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		IssuedAt:     pair.IssuedAt,
	}, nil
}
