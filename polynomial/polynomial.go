// Package polynomial implements dense polynomials over the curve's scalar
// field. Coefficients are ordered high-degree first: index 0 holds the
// leading coefficient and the length equals degree+1. Every operation in
// this package assumes and preserves that layout; it interacts with the
// basis index arithmetic in Commit and with the synthetic-division
// recurrence, so it must not be changed in isolation.
package polynomial

import (
	"errors"

	"github.com/giuliop/zkset/curve"
)

// ErrBasisTooShort is returned by Commit when the basis has fewer points
// than the polynomial has coefficients.
var ErrBasisTooShort = errors.New("basis shorter than polynomial")

// Polynomial is a coefficient sequence [c_n, c_n-1, ..., c_0] representing
// P(x) = sum c_i * x^(n-i).
type Polynomial []curve.Scalar

// New builds a polynomial from uint64 coefficient literals, high-degree
// first.
func New(cv curve.Curve, coeffs ...uint64) Polynomial {
	p := make(Polynomial, len(coeffs))
	for i, c := range coeffs {
		p[i] = cv.ScalarFromUint64(c)
	}
	return p
}

// Eval returns P(x).
func (p Polynomial) Eval(x curve.Scalar, cv curve.Curve) curve.Scalar {
	acc := cv.ScalarZero()
	pow := cv.ScalarOne()
	for i := 0; i < len(p); i++ {
		acc = acc.Add(p[len(p)-1-i].Mul(pow))
		pow = pow.Mul(x)
	}
	return acc
}

// Mul returns the dense product of p and q, of length len(p)+len(q)-1.
func (p Polynomial) Mul(q Polynomial, cv curve.Curve) Polynomial {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}
	prod := make(Polynomial, len(p)+len(q)-1)
	for i := range prod {
		prod[i] = cv.ScalarZero()
	}
	for i, a := range p {
		for j, b := range q {
			prod[i+j] = prod[i+j].Add(a.Mul(b))
		}
	}
	return prod
}

// QuotientByLinear returns Q with Q * (x - x0) = P - px0. The caller
// guarantees px0 = P(x0), so the remainder of the division is zero; it is
// dropped unconditionally and never validated.
func (p Polynomial) QuotientByLinear(px0, x0 curve.Scalar) Polynomial {
	r := make(Polynomial, len(p))
	copy(r, p)
	r[len(r)-1] = r[len(r)-1].Sub(px0)

	q := make(Polynomial, 0, len(r))
	q = append(q, r[0])
	for i := 1; i < len(r); i++ {
		q = append(q, q[i-1].Mul(x0).Add(r[i]))
	}
	return q[:len(q)-1]
}

// Commit evaluates the polynomial in the exponent under a precomputed
// basis of G1 points, returning sum p[i] * basis[len(basis)-len(p)+i].
// The basis is laid out highest power first, matching the coefficient
// order, so a short polynomial binds to the tail of the basis.
func (p Polynomial) Commit(basis []curve.G1) (curve.G1, error) {
	if len(basis) == 0 || len(p) > len(basis) {
		return nil, ErrBasisTooShort
	}
	acc := basis[0].Sub(basis[0]) // group identity
	offset := len(basis) - len(p)
	for i := range p {
		acc = acc.Add(basis[offset+i].Mul(p[i]))
	}
	return acc, nil
}
