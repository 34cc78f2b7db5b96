// Package ledger issues and checks one-time passcodes for customers.
//
// Codes are persisted as keyed digests. Every Issue adds a new record and the
// newest record (by creation time, then id) is the only one Verify looks at.
package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/shandysiswandi/eatelite/internal/customer/entity"
	"github.com/shandysiswandi/eatelite/internal/pkg/clock"
	"github.com/shandysiswandi/eatelite/internal/pkg/goerror"
	"github.com/shandysiswandi/eatelite/internal/pkg/hash"
	"github.com/shandysiswandi/eatelite/internal/pkg/instrument"
	"github.com/shandysiswandi/eatelite/internal/pkg/otp"
	"github.com/shandysiswandi/eatelite/internal/pkg/uid"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultTTL is how long a code stays valid after issue.
const DefaultTTL = 2 * time.Minute

// Outcome is the result of checking a supplied code.
type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomeVerified
	OutcomeExpired
	OutcomeMismatch
	OutcomeNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVerified:
		return "verified"
	case OutcomeExpired:
		return "expired"
	case OutcomeMismatch:
		return "mismatch"
	case OutcomeNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Verification carries the outcome and, when a record exists, its id so a
// caller can consume it.
type Verification struct {
	Outcome  Outcome
	RecordID int64
}

// Store persists OTP records.
type Store interface {
	CreateOTP(ctx context.Context, rec entity.OTPRecord) error
	// GetCurrentOTP returns goerror.ErrNotFound when the customer has none.
	GetCurrentOTP(ctx context.Context, customerID int64) (*entity.OTPRecord, error)
}

type Dependency struct {
	Store      Store
	Generator  otp.OTP
	Digest     hash.Hash
	UID        uid.NumberID
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
	// TTL defaults to DefaultTTL when zero.
	TTL time.Duration
}

type Ledger struct {
	store  Store
	gen    otp.OTP
	digest hash.Hash
	uid    uid.NumberID
	clock  clock.Clocker
	ins    instrument.Instrumentation
	ttl    time.Duration
}

func New(dep Dependency) *Ledger {
	ttl := dep.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	ins := dep.Instrument
	if ins == nil {
		ins = instrument.NewNoop()
	}

	return &Ledger{
		store:  dep.Store,
		gen:    dep.Generator,
		digest: dep.Digest,
		uid:    dep.UID,
		clock:  dep.Clock,
		ins:    ins,
		ttl:    ttl,
	}
}

// TTL reports the validity window in use.
func (l *Ledger) TTL() time.Duration {
	return l.ttl
}

// Issue creates a new current code for the customer and returns it in clear.
// Older records are left in place.
func (l *Ledger) Issue(ctx context.Context, customerID int64) (_ string, err error) {
	ctx, span := l.startSpan(ctx, "Issue")
	defer func() { endSpan(span, err) }()

	code, err := l.gen.Generate()
	if err != nil {
		return "", err
	}

	digest, err := l.digest.Hash(code)
	if err != nil {
		return "", err
	}

	if err := l.store.CreateOTP(ctx, entity.OTPRecord{
		ID:         l.uid.Generate(),
		CustomerID: customerID,
		Code:       string(digest),
		CreatedAt:  l.clock.Now(),
	}); err != nil {
		return "", err
	}

	return code, nil
}

// Verify checks supplied against the customer's current record as of now.
// It never mutates state. A stale or consumed record reports
// OutcomeExpired even when the code is correct.
func (l *Ledger) Verify(ctx context.Context, customerID int64, supplied string, now time.Time) (_ Verification, err error) {
	ctx, span := l.startSpan(ctx, "Verify")
	defer func() { endSpan(span, err) }()

	rec, err := l.store.GetCurrentOTP(ctx, customerID)
	if errors.Is(err, goerror.ErrNotFound) {
		return Verification{Outcome: OutcomeNotFound}, nil
	}
	if err != nil {
		return Verification{}, err
	}

	out := Verification{RecordID: rec.ID}
	expired := now.Sub(rec.CreatedAt) >= l.ttl || rec.ConsumedAt != nil
	matched := l.digest.Verify(rec.Code, supplied)

	switch {
	case expired:
		out.Outcome = OutcomeExpired
	case !matched:
		out.Outcome = OutcomeMismatch
	default:
		out.Outcome = OutcomeVerified
	}

	return out, nil
}

func (l *Ledger) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return l.ins.Tracer("customer.ledger").Start(ctx, name)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
