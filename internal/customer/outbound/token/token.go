// Package token mints and persists customer access/refresh token pairs.
//
// Only keyed digests of both tokens are stored; the clear values leave the
// service exactly once, in the response that issued them.
package token

import (
	"context"
	"time"

	"github.com/shandysiswandi/eatelite/internal/customer/entity"
	"github.com/shandysiswandi/eatelite/internal/pkg/clock"
	"github.com/shandysiswandi/eatelite/internal/pkg/hash"
	"github.com/shandysiswandi/eatelite/internal/pkg/instrument"
	"github.com/shandysiswandi/eatelite/internal/pkg/jwt"
	"github.com/shandysiswandi/eatelite/internal/pkg/uid"
	"github.com/shandysiswandi/eatelite/internal/pkg/valueobject"
	"go.opentelemetry.io/otel/codes"
)

type Store interface {
	CreateAuthToken(ctx context.Context, tok entity.AuthToken) error
}

type Dependency struct {
	Store      Store
	JWT        jwt.JWT
	UID        uid.NumberID
	OID        uid.StringID
	Digest     hash.Hash
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
	RefreshTTL time.Duration
}

type Issuer struct {
	store      Store
	jwt        jwt.JWT
	uid        uid.NumberID
	oid        uid.StringID
	digest     hash.Hash
	clock      clock.Clocker
	ins        instrument.Instrumentation
	refreshTTL time.Duration
}

func New(dep Dependency) *Issuer {
	ins := dep.Instrument
	if ins == nil {
		ins = instrument.NewNoop()
	}

	return &Issuer{
		store:      dep.Store,
		jwt:        dep.JWT,
		uid:        dep.UID,
		oid:        dep.OID,
		digest:     dep.Digest,
		clock:      dep.Clock,
		ins:        ins,
		refreshTTL: dep.RefreshTTL,
	}
}

// IssueAndPersist signs an access token for the customer, pairs it with a
// random refresh token and records both.
func (i *Issuer) IssueAndPersist(ctx context.Context, customerID int64, email string, client entity.ClientInfo) (_ *entity.TokenPair, err error) {
	ctx, span := i.ins.Tracer("customer.outbound.token").Start(ctx, "IssueAndPersist")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	access, err := i.jwt.Generate(customerID, email)
	if err != nil {
		return nil, err
	}

	refresh := i.oid.Generate()

	accessDigest, err := i.digest.Hash(access.Value)
	if err != nil {
		return nil, err
	}
	refreshDigest, err := i.digest.Hash(refresh)
	if err != nil {
		return nil, err
	}

	meta := valueobject.JSONMap{}
	meta.SetIfNotEmpty("ip", client.IP)
	meta.SetIfNotEmpty("user_agent", client.UserAgent)

	if err := i.store.CreateAuthToken(ctx, entity.AuthToken{
		ID:           i.uid.Generate(),
		CustomerID:   customerID,
		AccessToken:  string(accessDigest),
		RefreshToken: string(refreshDigest),
		IssuedAt:     access.IssuedAt,
		ExpiresAt:    i.clock.Now().Add(i.refreshTTL),
		Metadata:     meta,
	}); err != nil {
		return nil, err
	}

	return &entity.TokenPair{
		AccessToken:  access.Value,
		RefreshToken: refresh,
		IssuedAt:     access.IssuedAt,
	}, nil
}
