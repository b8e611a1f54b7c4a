// Package idx generates and validates the ULID identifiers used for users,
// pantry items, saved recipes and request ids.
package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ID is a canonical 26 character ULID string.
type ID string

// Zero is the empty ID.
const Zero ID = ""

// ErrInvalid reports a malformed ULID string.
var ErrInvalid = errors.New("idx: invalid ulid")

var (
	mu      sync.Mutex
	entropy = ulid.Monotonic(rand.Reader, 0)
)

// New returns a lexicographically sortable ID for the current UTC time.
func New() ID {
	return NewAt(time.Now().UTC())
}

// NewAt returns an ID stamped with t. IDs created within the same
// millisecond stay ordered thanks to the monotonic entropy source.
func NewAt(t time.Time) ID {
	mu.Lock()
	defer mu.Unlock()

	return ID(ulid.MustNew(ulid.Timestamp(t), entropy).String())
}

// Parse validates s (surrounding space ignored) and returns it as an ID.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, ErrInvalid
	}

	u, err := ulid.ParseStrict(s)
	if err != nil {
		return Zero, ErrInvalid
	}

	// ParseStrict accepts lower case; store the canonical form.
	return ID(u.String()), nil
}

// Valid reports whether s is a well formed ULID.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// String returns the canonical string form.
func (id ID) String() string { return string(id) }
