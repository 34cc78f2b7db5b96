package usecase

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/shandysiswandi/eatelite/internal/customer/entity"
	"github.com/shandysiswandi/eatelite/internal/customer/ledger"
	"github.com/shandysiswandi/eatelite/internal/pkg/clock"
	"github.com/shandysiswandi/eatelite/internal/pkg/config"
	"github.com/shandysiswandi/eatelite/internal/pkg/goerror"
	"github.com/shandysiswandi/eatelite/internal/pkg/goroutine"
	"github.com/shandysiswandi/eatelite/internal/pkg/hash"
	"github.com/shandysiswandi/eatelite/internal/pkg/instrument"
	"github.com/shandysiswandi/eatelite/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memDB is an in-memory customer store that also backs the OTP ledger.
type memDB struct {
	mu        sync.Mutex
	customers []entity.Customer
	otps      []entity.OTPRecord

	errGet    error
	errExists error
	errCreate error
	errReset  error
}

func (m *memDB) GetActiveCustomerByEmail(_ context.Context, email string) (*entity.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.errGet != nil {
		return nil, m.errGet
	}
	for _, c := range m.customers {
		if c.Email == email && !c.IsDeleted {
			return &c, nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (m *memDB) ExistsActiveEmail(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.errExists != nil {
		return false, m.errExists
	}
	for _, c := range m.customers {
		if c.Email == email && !c.IsDeleted {
			return true, nil
		}
	}
	return false, nil
}

func (m *memDB) ExistsActivePhone(_ context.Context, phone string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.customers {
		if c.Phone != nil && *c.Phone == phone && !c.IsDeleted {
			return true, nil
		}
	}
	return false, nil
}

func (m *memDB) CreateCustomer(_ context.Context, c entity.NewCustomer, credential string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.errCreate != nil {
		return m.errCreate
	}
	m.customers = append(m.customers, entity.Customer{
		ID: c.ID, Username: c.Username, Email: c.Email, Phone: c.Phone,
		Credential: credential, DOB: c.DOB, Credit: c.Credit,
	})
	return nil
}

func (m *memDB) ResetCredential(_ context.Context, customerID, otpID int64, credential string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.errReset != nil {
		return m.errReset
	}

	ci := -1
	for i, c := range m.customers {
		if c.ID == customerID && !c.IsDeleted {
			ci = i
		}
	}
	if ci < 0 {
		return goerror.ErrNotFound
	}

	for i := range m.otps {
		if m.otps[i].ID == otpID && m.otps[i].ConsumedAt == nil {
			m.otps[i].ConsumedAt = &at
			m.customers[ci].Credential = credential
			return nil
		}
	}
	return goerror.ErrConflict
}

func (m *memDB) CreateOTP(_ context.Context, rec entity.OTPRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.otps = append(m.otps, rec)
	return nil
}

func (m *memDB) GetCurrentOTP(_ context.Context, customerID int64) (*entity.OTPRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var cur *entity.OTPRecord
	for i := range m.otps {
		r := m.otps[i]
		if r.CustomerID == customerID && (cur == nil || !r.CreatedAt.Before(cur.CreatedAt)) {
			cur = &r
		}
	}
	if cur == nil {
		return nil, goerror.ErrNotFound
	}
	return cur, nil
}

func (m *memDB) credentialOf(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.customers {
		if c.Email == email && !c.IsDeleted {
			return c.Credential
		}
	}
	return ""
}

func (m *memDB) softDelete(email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.customers {
		if m.customers[i].Email == email {
			m.customers[i].IsDeleted = true
		}
	}
}

type fakeTokens struct {
	mu     sync.Mutex
	issued int
	err    error
}

func (f *fakeTokens) IssueAndPersist(_ context.Context, customerID int64, _ string, _ entity.ClientInfo) (*entity.TokenPair, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.issued++
	n := strconv.Itoa(f.issued)
	return &entity.TokenPair{
		AccessToken:  "access-" + strconv.FormatInt(customerID, 10) + "-" + n,
		RefreshToken: "refresh-" + n,
		IssuedAt:     time.Now(),
	}, nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	codes map[string][]string
	err   error
}

func (f *fakeNotifier) SendOTP(_ context.Context, email, code string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if f.codes == nil {
		f.codes = map[string][]string{}
	}
	f.codes[email] = append(f.codes[email], code)
	return nil
}

func (f *fakeNotifier) last(email string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := f.codes[email]
	if len(c) == 0 {
		return ""
	}
	return c[len(c)-1]
}

type fakeLocker struct {
	err      error
	released int
}

func (f *fakeLocker) Acquire(context.Context, string, time.Duration) (func(context.Context) error, error) {
	if f.err != nil {
		return nil, f.err
	}
	return func(context.Context) error {
		f.released++
		return nil
	}, nil
}

type fakeMessaging struct {
	mu         sync.Mutex
	registered []CustomerRegisteredEvent
	resets     []CustomerPasswordResetEvent
}

func (f *fakeMessaging) PublishCustomerRegistered(_ context.Context, msg CustomerRegisteredEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registered = append(f.registered, msg)
	return nil
}

func (f *fakeMessaging) PublishCustomerPasswordReset(_ context.Context, msg CustomerPasswordResetEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resets = append(f.resets, msg)
	return nil
}

type seqID struct {
	mu sync.Mutex
	n  int64
}

func (s *seqID) Generate() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return s.n
}

type seqCodes struct {
	mu sync.Mutex
	n  int
}

func (s *seqCodes) Generate() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return strconv.Itoa(1000 + s.n), nil
}

var t0 = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

type harness struct {
	uc       *Usecase
	db       *memDB
	tokens   *fakeTokens
	notifier *fakeNotifier
	locker   *fakeLocker
	msg      *fakeMessaging
	clock    *clock.Fixed
	gm       *goroutine.Manager
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("modules:\n  customer:\n    default_credit: \"1000\"\n"))
	require.NoError(t, err)

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	h := &harness{
		db:       &memDB{},
		tokens:   &fakeTokens{},
		notifier: &fakeNotifier{},
		locker:   &fakeLocker{},
		msg:      &fakeMessaging{},
		clock:    clock.NewFixed(t0),
		gm:       goroutine.NewManager(10, time.Second),
	}

	ids := &seqID{}
	h.uc = New(Dependency{
		RepoDB:        h.db,
		RepoMessaging: h.msg,
		Ledger: ledger.New(ledger.Dependency{
			Store:     h.db,
			Generator: &seqCodes{},
			Digest:    hash.NewHMACSHA256("otp-secret"),
			UID:       ids,
			Clock:     h.clock,
		}),
		Tokens:     h.tokens,
		Notifier:   h.notifier,
		Locker:     h.locker,
		Validator:  v,
		Config:     cfg,
		Credential: hash.NewBcrypt(bcrypt.MinCost, ""),
		UID:        ids,
		Clock:      h.clock,
		Instrument: instrument.NewNoop(),
		Goroutine:  h.gm,
	})

	return h
}

// drain waits for async event publishing to finish.
func (h *harness) drain(t *testing.T) {
	t.Helper()
	require.NoError(t, h.gm.Wait())
}

func (h *harness) register(t *testing.T, email, pass string) {
	t.Helper()
	_, err := h.uc.Register(context.Background(), RegisterInput{Username: "ana", Email: email, Password: pass})
	require.NoError(t, err)
}

func assertKey(t *testing.T, err error, key string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, key, goerror.KeyOf(err))
}

func assertServerError(t *testing.T, err error) {
	t.Helper()
	var gerr *goerror.Error
	require.True(t, errors.As(err, &gerr), "want *goerror.Error, got %v", err)
	assert.Equal(t, goerror.TypeServer, gerr.Type())
	assert.Equal(t, "Internal server error", gerr.Msg())
}

var errBoom = errors.New("boom")
