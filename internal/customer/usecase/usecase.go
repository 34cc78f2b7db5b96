package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shandysiswandi/eatelite/internal/customer/entity"
	"github.com/shandysiswandi/eatelite/internal/customer/ledger"
	"github.com/shandysiswandi/eatelite/internal/pkg/clock"
	"github.com/shandysiswandi/eatelite/internal/pkg/config"
	"github.com/shandysiswandi/eatelite/internal/pkg/goerror"
	"github.com/shandysiswandi/eatelite/internal/pkg/goroutine"
	"github.com/shandysiswandi/eatelite/internal/pkg/hash"
	"github.com/shandysiswandi/eatelite/internal/pkg/instrument"
	"github.com/shandysiswandi/eatelite/internal/pkg/lock"
	"github.com/shandysiswandi/eatelite/internal/pkg/password"
	"github.com/shandysiswandi/eatelite/internal/pkg/uid"
	"github.com/shandysiswandi/eatelite/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type CustomerRegisteredEvent struct {
	CustomerID int64
	Username   string
	Email      string
	OccurredAt time.Time
}

type CustomerPasswordResetEvent struct {
	CustomerID int64
	Email      string
	OccurredAt time.Time
}

type repoMessaging interface {
	PublishCustomerRegistered(ctx context.Context, msg CustomerRegisteredEvent) error
	PublishCustomerPasswordReset(ctx context.Context, msg CustomerPasswordResetEvent) error
}

type repoDB interface {
	GetActiveCustomerByEmail(ctx context.Context, email string) (*entity.Customer, error)
	ExistsActiveEmail(ctx context.Context, email string) (bool, error)
	ExistsActivePhone(ctx context.Context, phone string) (bool, error)

	CreateCustomer(ctx context.Context, c entity.NewCustomer, credential string) error
	ResetCredential(ctx context.Context, customerID, otpID int64, credential string, at time.Time) error
}

type otpLedger interface {
	Issue(ctx context.Context, customerID int64) (string, error)
	Verify(ctx context.Context, customerID int64, supplied string, now time.Time) (ledger.Verification, error)
	TTL() time.Duration
}

type tokenIssuer interface {
	IssueAndPersist(ctx context.Context, customerID int64, email string, client entity.ClientInfo) (*entity.TokenPair, error)
}

type notifier interface {
	SendOTP(ctx context.Context, email, code string, ttl time.Duration) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	ledger        otpLedger
	tokens        tokenIssuer
	notifier      notifier
	locker        lock.Locker
	validator     validator.Validator
	cfg           config.Config
	credential    hash.Hash
	uid           uid.NumberID
	clock         clock.Clocker
	ins           instrument.Instrumentation
	goroutine     *goroutine.Manager
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Ledger        otpLedger
	Tokens        tokenIssuer
	Notifier      notifier
	Locker        lock.Locker
	Validator     validator.Validator
	Config        config.Config
	Credential    hash.Hash
	UID           uid.NumberID
	Clock         clock.Clocker
	Instrument    instrument.Instrumentation
	Goroutine     *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		ledger:        dep.Ledger,
		tokens:        dep.Tokens,
		notifier:      dep.Notifier,
		locker:        dep.Locker,
		validator:     dep.Validator,
		cfg:           dep.Config,
		credential:    dep.Credential,
		uid:           dep.UID,
		clock:         dep.Clock,
		ins:           dep.Instrument,
		goroutine:     dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("customer.usecase").Start(ctx, name)
}

func (s *Usecase) validate(in any) error {
	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(entity.KeyBadRequest, "Bad request", err)
	}
	return nil
}

// checkPassword maps the first broken composition rule to its message key.
func checkPassword(candidate string) error {
	err := password.Validate(candidate)
	if err == nil {
		return nil
	}

	var v *password.Violation
	if !errors.As(err, &v) {
		return goerror.NewServer(err)
	}

	switch v.Rule {
	case password.RuleLength:
		return goerror.NewBusiness(entity.KeyPasswordLength, "Password length should be between 8 to 20", goerror.CodeBadRequest)
	case password.RuleNoDigit:
		return goerror.NewBusiness(entity.KeyPasswordNoDigit, "Password must have one number", goerror.CodeBadRequest)
	case password.RuleNoLower:
		return goerror.NewBusiness(entity.KeyPasswordNoLower, "Password must have one lowercase letter", goerror.CodeBadRequest)
	case password.RuleNoUpper:
		return goerror.NewBusiness(entity.KeyPasswordNoUpper, "Password must have one uppercase letter", goerror.CodeBadRequest)
	default:
		return goerror.NewBusiness(entity.KeyPasswordNoSpecial, "Password must have one special character", goerror.CodeBadRequest)
	}
}

// publish runs f on the goroutine manager; delivery is best effort and never
// fails the calling flow.
func (s *Usecase) publish(ctx context.Context, name string, f func(ctx context.Context) error) {
	if err := s.goroutine.Go(ctx, func(ctx context.Context) error {
		if err := f(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to publish "+name, "error", err)
			return err
		}
		return nil
	}); err != nil {
		slog.WarnContext(ctx, "dropped event "+name, "error", err)
	}
}
