package zkset

import (
	"fmt"

	"github.com/giuliop/zkset/curve"
	"github.com/giuliop/zkset/randpool"
	"github.com/giuliop/zkset/setup"
)

// schnorrProve proves knowledge of (a, b) with Z = a*g + b*h, the
// two-base Schnorr sigma protocol made non-interactive with Fiat-Shamir.
// The returned Proof carries Z recomputed from (a, b); callers that
// already hold Z overwrite the field.
//
// The same transcript doubles as a proof that a != 0: when a = 0 the
// response degenerates to s1 = r1 and the verifier's N1 == s1*g test
// fires, so an honest prover can only pass it with a non-zero a.
func schnorrProve(pk *setup.Pk, a, b curve.Scalar, pool *randpool.Pool) (*Proof, error) {
	cv := pk.Curve

	w, err := pool.Pop()
	if err != nil {
		return nil, fmt.Errorf("drawing nonce r1: %w", err)
	}
	r1 := cv.ScalarFromUint128(w)

	w, err = pool.Pop()
	if err != nil {
		return nil, fmt.Errorf("drawing nonce r2: %w", err)
	}
	r2 := cv.ScalarFromUint128(w)

	n1 := cv.G1().Mul(r1)
	n2 := pk.H1.Mul(r2)

	z := cv.G1().Mul(a).Add(pk.H1.Mul(b))

	c := cv.FiatShamirHash(z, n1, n2, pk.H1)

	s1 := r1.Sub(c.Mul(a))
	s2 := r2.Sub(c.Mul(b))

	return &Proof{Z: z, N1: n1, N2: n2, S1: s1, S2: s2}, nil
}

// schnorrVerify checks s1*g + s2*h + c*Z == N1 + N2 with the challenge c
// recomputed from the transcript.
func schnorrVerify(pk *setup.Pk, p *Proof) bool {
	cv := pk.Curve

	c := cv.FiatShamirHash(p.Z, p.N1, p.N2, pk.H1)

	left := p.N1.Add(p.N2)
	right := cv.G1().Mul(p.S1).Add(pk.H1.Mul(p.S2)).Add(p.Z.Mul(c))

	return left.Equal(right)
}
