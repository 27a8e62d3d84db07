// package testutils contains helpers to build randomness pools for tests,
// examples and benchmarks. Production code should fill pools from a
// cryptographically secure source of its own choosing.
package testutils

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"

	"github.com/giuliop/zkset/curve"
	"github.com/giuliop/zkset/randpool"
)

// RandomPool returns a pool of n words drawn from crypto/rand. Words are
// never zero, so trapdoors and hiding exponents sampled from the pool are
// never degenerate. It panics if the system randomness source fails.
func RandomPool(n int) *randpool.Pool {
	words := make([]curve.Uint128, n)
	var buf [16]byte
	for i := range words {
		for {
			if _, err := rand.Read(buf[:]); err != nil {
				panic("reading system randomness: " + err.Error())
			}
			w := curve.Uint128{
				Hi: binary.BigEndian.Uint64(buf[:8]),
				Lo: binary.BigEndian.Uint64(buf[8:]),
			}
			if w.Hi != 0 || w.Lo != 0 {
				words[i] = w
				break
			}
		}
	}
	return randpool.New(words)
}

// SeededPool returns a deterministic pool of n non-zero words derived from
// seed. Two pools with the same seed and length are identical, which makes
// protocol runs reproducible across processes and backends.
func SeededPool(seed int64, n int) *randpool.Pool {
	src := mrand.New(mrand.NewSource(seed))
	words := make([]curve.Uint128, n)
	for i := range words {
		for {
			w := curve.Uint128{Hi: src.Uint64(), Lo: src.Uint64()}
			if w.Hi != 0 || w.Lo != 0 {
				words[i] = w
				break
			}
		}
	}
	return randpool.New(words)
}
