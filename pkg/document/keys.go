package document

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

//nolint:gochecknoglobals // Shared entropy source and swappable generator.
var (
	entropy     io.Reader
	entropyOnce sync.Once

	keyMu        sync.Mutex
	keyGenerator = defaultKeyGenerator
)

func keyEntropy() io.Reader {
	entropyOnce.Do(func() {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		entropy = &ulid.LockedMonotonicReader{
			MonotonicReader: ulid.Monotonic(rng, 0),
		}
	})
	return entropy
}

func defaultKeyGenerator() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), keyEntropy()).String()
}

// NewKey returns a fresh block or entity key (a ULID).
func NewKey() string {
	keyMu.Lock()
	gen := keyGenerator
	keyMu.Unlock()
	return gen()
}

// ValidKey reports whether s parses as a ULID.
func ValidKey(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}

// SetKeyGenerator swaps the key generator and returns a restore function.
// Tests use it to get deterministic keys.
func SetKeyGenerator(gen func() string) (restore func()) {
	keyMu.Lock()
	prev := keyGenerator
	keyGenerator = gen
	keyMu.Unlock()
	return func() {
		keyMu.Lock()
		keyGenerator = prev
		keyMu.Unlock()
	}
}
