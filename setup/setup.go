package setup

import (
	"fmt"

	"github.com/giuliop/zkset/curve"
	"github.com/giuliop/zkset/randpool"
)

// Pk holds the public parameters of the proof system. It is created once
// by Run and read-only afterwards; read-only sharing across goroutines is
// safe. The trapdoor alpha and the hiding exponent lambda never leave Run.
type Pk struct {
	// Curve is the backend every later protocol operation on these
	// parameters runs on.
	Curve curve.Curve

	// GPowers is [g*a^d, g*a^(d-1), ..., g*a, g] for trapdoor a and
	// supported degree d.
	GPowers []curve.G1

	// HPowers is the same ladder over the hiding base: [h*a^d, ..., h*a, h].
	HPowers []curve.G1

	// H1 is the hiding base h = lambda*g.
	H1 curve.G1

	// AlphaG2 is a*g2, used by the verifier's pairing equation.
	AlphaG2 curve.G2
}

// Run executes the trusted-authority setup for polynomials up to the given
// degree, drawing the trapdoor and then the hiding exponent from the pool.
// The returned parameters satisfy len(GPowers) == len(HPowers) == degree+1.
func Run(cv curve.Curve, degree uint64, pool *randpool.Pool) (*Pk, error) {
	w, err := pool.Pop()
	if err != nil {
		return nil, fmt.Errorf("drawing trapdoor: %w", err)
	}
	alpha := cv.ScalarFromUint128(w)

	w, err = pool.Pop()
	if err != nil {
		return nil, fmt.Errorf("drawing hiding exponent: %w", err)
	}
	h := cv.G1().Mul(cv.ScalarFromUint128(w))

	gPowers := make([]curve.G1, 0, degree+1)
	hPowers := make([]curve.G1, 0, degree+1)
	for i := uint64(0); i <= degree; i++ {
		pw := cv.ScalarPow(alpha, curve.Uint128{Lo: degree - i})
		gPowers = append(gPowers, cv.G1().Mul(pw))
		hPowers = append(hPowers, h.Mul(pw))
	}

	return &Pk{
		Curve:   cv,
		GPowers: gPowers,
		HPowers: hPowers,
		H1:      h,
		AlphaG2: cv.G2().Mul(alpha),
	}, nil
}
