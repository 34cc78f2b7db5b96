package entity

import (
	"time"

	"github.com/shandysiswandi/eatelite/internal/pkg/valueobject"
)

// Audit is embedded in every persisted record.
type Audit struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	IsDeleted bool
}

type Customer struct {
	ID         int64
	Username   string
	Email      string
	Phone      *string
	Credential string // hashed
	DOB        *time.Time
	Credit     string
	Audit
}

type NewCustomer struct {
	ID       int64
	Username string
	Email    string
	Phone    *string
	DOB      *time.Time
	Credit   string
}

// OTPRecord is one issued passcode. Code holds the digest, never the code.
type OTPRecord struct {
	ID         int64
	CustomerID int64
	Code       string
	CreatedAt  time.Time
	ConsumedAt *time.Time
}

// AuthToken is the persisted form of a TokenPair; both tokens are digests.
type AuthToken struct {
	ID           int64
	CustomerID   int64
	AccessToken  string
	RefreshToken string
	IssuedAt     time.Time
	ExpiresAt    time.Time
	Metadata     valueobject.JSONMap
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	IssuedAt     time.Time
}

// ClientInfo describes the caller a token pair is issued to.
type ClientInfo struct {
	IP        string
	UserAgent string
}
