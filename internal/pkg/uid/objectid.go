package uid

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// ErrStableNodeIdentityUnavailable indicates no stable node identity is available.
var ErrStableNodeIdentityUnavailable = errors.New("uid: cannot determine stable node identity (machine-id/hostname unavailable)")

// ObjectIDGenerator generates 32-byte opaque IDs rendered as 64 hex chars.
//
// Layout: 6-byte millisecond timestamp, 6-byte node hash, 4-byte counter,
// 16 random bytes. Used for refresh tokens, so the random tail is mandatory.
type ObjectIDGenerator struct {
	nodeID  [6]byte
	counter atomic.Uint32
}

// NewObjectIDGenerator creates a generator with stable node identity.
func NewObjectIDGenerator() (*ObjectIDGenerator, error) {
	src, err := stableNodeIdentity()
	if err != nil {
		return nil, err
	}

	g := &ObjectIDGenerator{}
	sum := sha256.Sum256([]byte(src))
	copy(g.nodeID[:], sum[:6])

	var seed [4]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, err
	}
	g.counter.Store(binary.BigEndian.Uint32(seed[:]))

	return g, nil
}

func stableNodeIdentity() (string, error) {
	if b, err := os.ReadFile("/etc/machine-id"); err == nil {
		if s := strings.TrimSpace(string(b)); s != "" {
			return s, nil
		}
	}

	if h, err := os.Hostname(); err == nil {
		if h = strings.TrimSpace(h); h != "" {
			return h, nil
		}
	}

	return "", ErrStableNodeIdentityUnavailable
}

// Generate returns a new 64-char hex ID.
func (g *ObjectIDGenerator) Generate() string {
	var raw [32]byte

	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(time.Now().UnixMilli()))
	copy(raw[0:6], ts[2:])
	copy(raw[6:12], g.nodeID[:])
	binary.BigEndian.PutUint32(raw[12:16], g.counter.Add(1))

	if _, err := rand.Read(raw[16:]); err != nil {
		// crypto/rand does not fail on supported platforms; hash what we have
		// so the tail is at least unique per counter value.
		sum := sha256.Sum256(raw[:16])
		copy(raw[16:], sum[:16])
	}

	return hex.EncodeToString(raw[:])
}
