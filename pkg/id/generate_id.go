package id

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	contractIDMin = 10_000_000
	contractIDMax = 99_999_999
)

var contractIDSpan = big.NewInt(contractIDMax - contractIDMin + 1)

var (
	ulidMu      sync.Mutex
	ulidEntropy = ulid.Monotonic(rand.Reader, 0)
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewContractID returns an 8-digit numeric string in [10000000, 99999999].
func NewContractID() string {
	n, err := rand.Int(rand.Reader, contractIDSpan)
	if err != nil {
		// crypto/rand never fails on supported platforms; fall back to the clock
		n = big.NewInt(time.Now().UnixNano() % contractIDSpan.Int64())
	}
	return big.NewInt(0).Add(n, big.NewInt(contractIDMin)).String()
}

// NewULID returns a 26-char, time-ordered identifier for event-like rows
// (notifications, wallet transactions, outbox events).
func NewULID() string {
	ulidMu.Lock()
	defer ulidMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulidEntropy).String()
}
