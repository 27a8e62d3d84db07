package zkset

import (
	"fmt"
	"testing"

	"github.com/giuliop/zkset/curve"
	"github.com/giuliop/zkset/randpool"
	"github.com/giuliop/zkset/setup"
	"github.com/giuliop/zkset/testutils"
)

var benchSizes = []int{5, 10, 20, 50}

// benchFixture prepares parameters and a set of the given size, with
// enough randomness left in the returned pool for a commitment and a query.
func benchFixture(b *testing.B, cv curve.Curve, size int) (
	*setup.Pk, *Set, *randpool.Pool) {

	b.Helper()
	pool := testutils.SeededPool(int64(size), 2*size+8)

	pk, err := setup.Run(cv, uint64(size+2), pool)
	if err != nil {
		b.Fatal(err)
	}

	set := NewSet()
	for i := 0; i < size; i++ {
		w, err := pool.Pop()
		if err != nil {
			b.Fatal(err)
		}
		set.Add(cv.ScalarFromUint128(w))
	}
	return pk, set, pool
}

func BenchmarkSetup(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("degree-%d", size), func(b *testing.B) {
			cv := curve.Fast()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				pool := testutils.SeededPool(int64(i), 2)
				b.StartTimer()
				if _, err := setup.Run(cv, uint64(size), pool); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCommit(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("set-%d", size), func(b *testing.B) {
			cv := curve.Fast()
			pool := testutils.SeededPool(int64(size), 2+b.N*(size+1)+size)

			pk, err := setup.Run(cv, uint64(size+2), pool)
			if err != nil {
				b.Fatal(err)
			}
			set := NewSet()
			for i := 0; i < size; i++ {
				w, err := pool.Pop()
				if err != nil {
					b.Fatal(err)
				}
				set.Add(cv.ScalarFromUint128(w))
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, _, _, err := Commit(pk, set, pool); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkQuery(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("set-%d", size), func(b *testing.B) {
			cv := curve.Fast()
			// two Schnorr nonces per non-membership query
			pool := testutils.SeededPool(int64(size), 2*size+8+2*b.N)

			pk, err := setup.Run(cv, uint64(size+2), pool)
			if err != nil {
				b.Fatal(err)
			}
			set := NewSet()
			for i := 0; i < size; i++ {
				w, err := pool.Pop()
				if err != nil {
					b.Fatal(err)
				}
				set.Add(cv.ScalarFromUint128(w))
			}
			_, phi, phiHat, err := Commit(pk, set, pool)
			if err != nil {
				b.Fatal(err)
			}
			k := cv.ScalarFromUint64(0xDEADBEEF)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Query(pk, set, phi, phiHat, k, pool); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkVerify(b *testing.B) {
	for _, branch := range []string{"member", "non-member"} {
		for _, size := range benchSizes {
			b.Run(fmt.Sprintf("%s-set-%d", branch, size), func(b *testing.B) {
				cv := curve.Fast()
				pk, set, pool := benchFixture(b, cv, size)

				c, phi, phiHat, err := Commit(pk, set, pool)
				if err != nil {
					b.Fatal(err)
				}

				var k curve.Scalar
				if branch == "member" {
					k = set.Scalars()[0]
				} else {
					k = cv.ScalarFromUint64(0xDEADBEEF)
				}
				o, err := Query(pk, set, phi, phiHat, k, pool)
				if err != nil {
					b.Fatal(err)
				}

				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if !Verify(pk, c, o) {
						b.Fatal("honest opening rejected")
					}
				}
			})
		}
	}
}

// BenchmarkVerifySpec tracks the specification backend so regressions in
// the readable code path stay visible; sizes are kept small because the
// big.Int arithmetic is orders of magnitude slower.
func BenchmarkVerifySpec(b *testing.B) {
	cv := curve.Spec()
	pool := testutils.SeededPool(1, 64)

	pk, err := setup.Run(cv, 5, pool)
	if err != nil {
		b.Fatal(err)
	}
	set := NewSet()
	for i := 0; i < 3; i++ {
		w, _ := pool.Pop()
		set.Add(cv.ScalarFromUint128(w))
	}
	c, phi, phiHat, err := Commit(pk, set, pool)
	if err != nil {
		b.Fatal(err)
	}
	o, err := Query(pk, set, phi, phiHat, cv.ScalarFromUint64(4), pool)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !Verify(pk, c, o) {
			b.Fatal("honest opening rejected")
		}
	}
}
