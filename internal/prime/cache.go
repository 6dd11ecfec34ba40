package prime

import (
	"fmt"
	"math"
	"sync"
)

// DefaultCacheSize is the number of integers covered by the default cache.
// Must be an even integer of at least 4, so that 2 is in cache range.
const DefaultCacheSize = 1 << 19

// Cache is a bit set marking which integers below its size are prime.
// It is built once by New and never mutated afterwards, so a single
// instance may be shared by any number of concurrent readers.
type Cache struct {
	size  uint64
	words []uint64
}

type settings struct {
	size uint64
}

// Option configures a Cache prior to construction.
type Option func(*settings)

// Size is a configuration option (function). Used as a parameter in New it
// sets the number of integers the cache covers. The value must be an even
// integer of at least 4; New reports an error otherwise.
func Size(n uint64) Option {
	return func(s *settings) {
		s.size = n
	}
}

// New builds a primality cache. Every odd index in [3, size) is classified
// by trial division against the odd numbers up to its square root; index 2
// is set directly and even indices are never tested. Construction is the
// only expensive step: queries afterwards are a bit lookup for arguments
// below size.
func New(opts ...Option) (*Cache, error) {
	s := settings{size: DefaultCacheSize}
	for _, opt := range opts {
		opt(&s)
	}
	// A size below 4 would leave 2 outside the cache range, where the
	// even fast path in testPrime would misclassify it.
	if s.size < 4 || s.size%2 != 0 {
		return nil, fmt.Errorf("cache size must be an even integer of at least 4, got %d", s.size)
	}
	c := &Cache{
		size:  s.size,
		words: make([]uint64, (s.size+63)/64),
	}
	c.build()
	return c, nil
}

var (
	defaultOnce  sync.Once
	defaultCache *Cache
)

// Default returns the shared process-wide cache of DefaultCacheSize,
// building it on first use.
func Default() *Cache {
	defaultOnce.Do(func() {
		c, err := New()
		if err != nil {
			// Unreachable: DefaultCacheSize is a valid size.
			panic(err)
		}
		defaultCache = c
	})
	return defaultCache
}

// Size returns the number of integers the cache covers.
func (c *Cache) Size() uint64 {
	return c.size
}

func (c *Cache) build() {
	c.set(2)
	for n := uint64(3); n < c.size; n += 2 {
		limit := isqrt(n)
		prime := true
		for d := uint64(3); d <= limit; d += 2 {
			if n%d == 0 {
				prime = false
				break
			}
		}
		if prime {
			c.set(n)
		}
	}
}

func (c *Cache) set(i uint64) {
	c.words[i>>6] |= 1 << (i & 63)
}

// bit reports whether index i is marked prime. Callers must ensure
// i < c.size.
func (c *Cache) bit(i uint64) bool {
	return c.words[i>>6]&(1<<(i&63)) != 0
}

// isqrt returns the floor of the square root of n. The float64 estimate is
// corrected in both directions, since math.Sqrt rounds for large inputs.
func isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	r := uint64(math.Sqrt(float64(n)))
	for r > 0 && r*r > n {
		r--
	}
	for r+1 < 1<<32 && (r+1)*(r+1) <= n {
		r++
	}
	return r
}
