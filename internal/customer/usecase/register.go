package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/shandysiswandi/eatelite/internal/customer/entity"
	"github.com/shandysiswandi/eatelite/internal/pkg/goerror"
	"github.com/shandysiswandi/eatelite/internal/pkg/lock"
)

const dobLayout = "2006-01-02"

type RegisterInput struct {
	Username string `validate:"required,max=255"`
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required"`
	Phone    string `validate:"omitempty,phone"`
	DOB      string `validate:"omitempty,datetime=2006-01-02,pastdate"`
	Client   entity.ClientInfo
}

type RegisterOutput struct {
	AccessToken  string
	RefreshToken string
	IssuedAt     time.Time
}

func (s *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)

	if err := s.validate(in); err != nil {
		return nil, err
	}

	if err := checkPassword(in.Password); err != nil {
		return nil, err
	}

	release, err := s.locker.Acquire(ctx, "customer:register:"+in.Email, s.cfg.GetSecond("modules.customer.register_lock_seconds"))
	switch {
	case errors.Is(err, lock.ErrHeld):
		slog.WarnContext(ctx, "registration already in progress", "email", in.Email)
		return nil, entity.ErrEmailTaken
	case err != nil:
		slog.WarnContext(ctx, "failed to acquire registration lock, relying on unique index", "email", in.Email, "error", err)
	default:
		defer func() {
			if err := release(context.WithoutCancel(ctx)); err != nil {
				slog.WarnContext(ctx, "failed to release registration lock", "email", in.Email, "error", err)
			}
		}()
	}

	taken, err := s.repoDB.ExistsActiveEmail(ctx, in.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo check email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}
	if taken {
		return nil, entity.ErrEmailTaken
	}

	var phone *string
	if in.Phone != "" {
		taken, err := s.repoDB.ExistsActivePhone(ctx, in.Phone)
		if err != nil {
			slog.ErrorContext(ctx, "failed to repo check mobile number", "error", err)
			return nil, goerror.NewServer(err)
		}
		if taken {
			return nil, entity.ErrPhoneTaken
		}
		phone = &in.Phone
	}

	var dob *time.Time
	if in.DOB != "" {
		d, err := time.Parse(dobLayout, in.DOB)
		if err != nil {
			return nil, goerror.NewInvalidInput(entity.KeyBadRequest, "Bad request", err)
		}
		dob = &d
	}

	credential, err := s.credential.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash credential", "error", err)
		return nil, goerror.NewServer(err)
	}

	customer := entity.NewCustomer{
		ID:       s.uid.Generate(),
		Username: in.Username,
		Email:    in.Email,
		Phone:    phone,
		DOB:      dob,
		Credit:   s.cfg.GetString("modules.customer.default_credit"),
	}

	err = s.repoDB.CreateCustomer(ctx, customer, string(credential))
	switch {
	case errors.Is(err, entity.ErrDuplicateEmail):
		return nil, entity.ErrEmailTaken
	case errors.Is(err, entity.ErrDuplicatePhone):
		return nil, entity.ErrPhoneTaken
	case err != nil:
		slog.ErrorContext(ctx, "failed to repo create customer", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	pair, err := s.tokens.IssueAndPersist(ctx, customer.ID, customer.Email, in.Client)
	if err != nil {
		slog.ErrorContext(ctx, "failed to issue tokens", "customer_id", customer.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	s.publish(ctx, "customer registered", func(ctx context.Context) error {
		return s.repoMessaging.PublishCustomerRegistered(ctx, CustomerRegisteredEvent{
			CustomerID: customer.ID,
			Username:   customer.Username,
			Email:      customer.Email,
			OccurredAt: pair.IssuedAt,
		})
	})

	return &RegisterOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		IssuedAt:     pair.IssuedAt,
	}, nil
}
