package token

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shandysiswandi/eatelite/internal/customer/entity"
	"github.com/shandysiswandi/eatelite/internal/pkg/clock"
	"github.com/shandysiswandi/eatelite/internal/pkg/hash"
	"github.com/shandysiswandi/eatelite/internal/pkg/jwt"
	"github.com/shandysiswandi/eatelite/internal/pkg/uid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	saved []entity.AuthToken
	err   error
}

func (m *memStore) CreateAuthToken(_ context.Context, tok entity.AuthToken) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, tok)
	return nil
}

type fixedID int64

func (f fixedID) Generate() int64 { return int64(f) }

func newIssuer(t *testing.T, store Store) (*Issuer, *jwt.Symmetric, *clock.Fixed) {
	t.Helper()
	clk := clock.NewFixed(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))

	j, err := jwt.NewHS512(jwt.Config{
		Secret: []byte(strings.Repeat("k", 64)),
		Issuer: "eatelite",
		TTL:    15 * time.Minute,
		Clock:  clk,
		UUID:   uid.NewUUID(),
	})
	require.NoError(t, err)

	oid, err := uid.NewObjectIDGenerator()
	require.NoError(t, err)

	return New(Dependency{
		Store:      store,
		JWT:        j,
		UID:        fixedID(77),
		OID:        oid,
		Digest:     hash.NewHMACSHA256("token-secret"),
		Clock:      clk,
		RefreshTTL: 30 * 24 * time.Hour,
	}), j, clk
}

func TestIssuer_IssueAndPersist(t *testing.T) {
	store := &memStore{}
	iss, j, clk := newIssuer(t, store)

	pair, err := iss.IssueAndPersist(context.Background(), 42, "ana@example.com", entity.ClientInfo{IP: "10.0.0.1"})

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.Len(t, pair.RefreshToken, 64)
	assert.Equal(t, clk.Now(), pair.IssuedAt)

	claims, err := j.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.CustomerID)

	require.Len(t, store.saved, 1)
	saved := store.saved[0]
	assert.Equal(t, int64(77), saved.ID)
	assert.Equal(t, int64(42), saved.CustomerID)
	assert.NotEqual(t, pair.AccessToken, saved.AccessToken)
	assert.NotEqual(t, pair.RefreshToken, saved.RefreshToken)
	assert.True(t, hash.NewHMACSHA256("token-secret").Verify(saved.RefreshToken, pair.RefreshToken))
	assert.Equal(t, clk.Now().Add(30*24*time.Hour), saved.ExpiresAt)
	assert.Equal(t, "10.0.0.1", saved.Metadata.GetString("ip"))
	assert.Empty(t, saved.Metadata.GetString("user_agent"))
}

func TestIssuer_StoreFailure(t *testing.T) {
	boom := errors.New("insert failed")
	iss, _, _ := newIssuer(t, &memStore{err: boom})

	pair, err := iss.IssueAndPersist(context.Background(), 42, "ana@example.com", entity.ClientInfo{})

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, pair)
}
