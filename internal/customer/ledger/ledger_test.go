package ledger

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/shandysiswandi/eatelite/internal/customer/entity"
	"github.com/shandysiswandi/eatelite/internal/pkg/clock"
	"github.com/shandysiswandi/eatelite/internal/pkg/goerror"
	"github.com/shandysiswandi/eatelite/internal/pkg/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	records []entity.OTPRecord
	err     error
}

func (m *memStore) CreateOTP(_ context.Context, rec entity.OTPRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, rec)
	return nil
}

func (m *memStore) GetCurrentOTP(_ context.Context, customerID int64) (*entity.OTPRecord, error) {
	if m.err != nil {
		return nil, m.err
	}

	var cur *entity.OTPRecord
	for i := range m.records {
		r := &m.records[i]
		if r.CustomerID != customerID {
			continue
		}
		if cur == nil || r.CreatedAt.After(cur.CreatedAt) || (r.CreatedAt.Equal(cur.CreatedAt) && r.ID > cur.ID) {
			cur = r
		}
	}
	if cur == nil {
		return nil, goerror.ErrNotFound
	}
	return cur, nil
}

type seqCodes struct{ codes []string }

func (s *seqCodes) Generate() (string, error) {
	if len(s.codes) == 0 {
		return "", errors.New("exhausted")
	}
	c := s.codes[0]
	s.codes = s.codes[1:]
	return c, nil
}

type seqID struct{ n int64 }

func (s *seqID) Generate() int64 {
	s.n++
	return s.n
}

var t0 = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newLedger(store *memStore, clk *clock.Fixed, codes ...string) *Ledger {
	return New(Dependency{
		Store:     store,
		Generator: &seqCodes{codes: codes},
		Digest:    hash.NewHMACSHA256("otp-secret"),
		UID:       &seqID{},
		Clock:     clk,
	})
}

func TestLedger_IssueStoresDigest(t *testing.T) {
	store := &memStore{}
	l := newLedger(store, clock.NewFixed(t0), "4821")

	code, err := l.Issue(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "4821", code)
	require.Len(t, store.records, 1)
	assert.NotEqual(t, "4821", store.records[0].Code)
	assert.Equal(t, int64(7), store.records[0].CustomerID)
	assert.Equal(t, t0, store.records[0].CreatedAt)
}

func TestLedger_Verify(t *testing.T) {
	consumed := t0.Add(30 * time.Second)

	tests := []struct {
		name     string
		supplied string
		at       time.Duration
		consume  bool
		want     Outcome
	}{
		{name: "correct within window", supplied: "4821", at: 119 * time.Second, want: OutcomeVerified},
		{name: "wrong within window", supplied: "1111", at: time.Minute, want: OutcomeMismatch},
		{name: "correct at boundary", supplied: "4821", at: 2 * time.Minute, want: OutcomeExpired},
		{name: "correct after window", supplied: "4821", at: 121 * time.Second, want: OutcomeExpired},
		{name: "wrong after window", supplied: "1111", at: 121 * time.Second, want: OutcomeExpired},
		{name: "consumed", supplied: "4821", at: time.Minute, consume: true, want: OutcomeExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memStore{}
			l := newLedger(store, clock.NewFixed(t0), "4821")

			_, err := l.Issue(context.Background(), 1)
			require.NoError(t, err)
			if tt.consume {
				store.records[0].ConsumedAt = &consumed
			}

			got, err := l.Verify(context.Background(), 1, tt.supplied, t0.Add(tt.at))

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Outcome)
			assert.Equal(t, store.records[0].ID, got.RecordID)
		})
	}
}

func TestLedger_VerifyNotFound(t *testing.T) {
	l := newLedger(&memStore{}, clock.NewFixed(t0))

	got, err := l.Verify(context.Background(), 1, "1234", t0)

	require.NoError(t, err)
	assert.Equal(t, OutcomeNotFound, got.Outcome)
}

func TestLedger_NewerCodeSupersedesOlder(t *testing.T) {
	store := &memStore{}
	clk := clock.NewFixed(t0)
	l := newLedger(store, clk, "1111", "2222")

	first, err := l.Issue(context.Background(), 1)
	require.NoError(t, err)
	clk.Advance(10 * time.Second)
	second, err := l.Issue(context.Background(), 1)
	require.NoError(t, err)

	got, err := l.Verify(context.Background(), 1, first, t0.Add(20*time.Second))
	require.NoError(t, err)
	assert.Equal(t, OutcomeMismatch, got.Outcome)

	got, err = l.Verify(context.Background(), 1, second, t0.Add(20*time.Second))
	require.NoError(t, err)
	assert.Equal(t, OutcomeVerified, got.Outcome)
	assert.Len(t, store.records, 2)
}

func TestLedger_SameInstantTieBreaksOnID(t *testing.T) {
	store := &memStore{}
	l := newLedger(store, clock.NewFixed(t0), "1111", "2222")

	_, err := l.Issue(context.Background(), 1)
	require.NoError(t, err)
	_, err = l.Issue(context.Background(), 1)
	require.NoError(t, err)

	got, err := l.Verify(context.Background(), 1, "2222", t0)
	require.NoError(t, err)
	assert.Equal(t, OutcomeVerified, got.Outcome)
	assert.Equal(t, slices.MaxFunc(store.records, func(a, b entity.OTPRecord) int { return int(a.ID - b.ID) }).ID, got.RecordID)
}

func TestLedger_StoreErrors(t *testing.T) {
	boom := errors.New("db down")
	l := newLedger(&memStore{err: boom}, clock.NewFixed(t0), "1234")

	_, err := l.Issue(context.Background(), 1)
	assert.ErrorIs(t, err, boom)

	_, err = l.Verify(context.Background(), 1, "1234", t0)
	assert.ErrorIs(t, err, boom)
}

func TestLedger_DefaultTTL(t *testing.T) {
	l := newLedger(&memStore{}, clock.NewFixed(t0))
	assert.Equal(t, DefaultTTL, l.TTL())

	l = New(Dependency{TTL: 5 * time.Minute})
	assert.Equal(t, 5*time.Minute, l.TTL())
}
