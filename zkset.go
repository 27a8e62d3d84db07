// Package zkset implements zero-knowledge set-membership and
// non-membership proofs on top of KZG polynomial commitments over
// BLS12-381. A prover commits once to a finite set of scalars and later,
// for any queried element, produces a succinct non-interactive proof that
// the element is or is not in the set, without revealing anything else
// about the set.
//
// The set is encoded as the polynomial phi with the members as roots and
// committed together with a uniformly random hiding polynomial, making the
// commitment unconditionally hiding. Membership openings reveal the hiding
// polynomial's evaluation at the query point; non-membership openings
// carry a Schnorr proof of knowledge of the two evaluations that also
// convinces the verifier that phi(k) is non-zero. Both branches close with
// the same pairing equation against the witness.
//
// All randomness is drawn from a caller-owned randpool.Pool, so a protocol
// run is a deterministic function of its inputs. The curve backend is
// chosen at setup time; see package curve.
package zkset

import (
	"errors"
	"fmt"

	"github.com/giuliop/zkset/curve"
	"github.com/giuliop/zkset/polynomial"
	"github.com/giuliop/zkset/randpool"
	"github.com/giuliop/zkset/setup"
)

var (
	// ErrEmptySet is returned by Commit when the set has no members.
	ErrEmptySet = errors.New("cannot commit to an empty set")

	// ErrSetTooLarge is returned by Commit when the set polynomial would
	// exceed the degree the public parameters support.
	ErrSetTooLarge = errors.New("set size exceeds the supported degree")
)

// Proof is the transcript attached to a non-membership opening: the
// commitment Z to the two evaluations and the Schnorr tuple proving
// knowledge of them.
type Proof struct {
	Z  curve.G1
	N1 curve.G1
	N2 curve.G1
	S1 curve.Scalar
	S2 curve.Scalar
}

// Opening is the prover's answer to a query: the queried element, the
// witness W, and exactly one of PhiHatK (membership) or Proof
// (non-membership).
type Opening struct {
	K       curve.Scalar
	W       curve.G1
	PhiHatK curve.Scalar
	Proof   *Proof
}

// Commit builds a hiding commitment to the set. It returns the commitment
// together with the set polynomial phi and the hiding polynomial phiHat;
// the prover must retain both to answer queries. One random word is drawn
// per hiding coefficient, |set|+1 in total.
func Commit(pk *setup.Pk, set *Set, pool *randpool.Pool) (
	curve.G1, polynomial.Polynomial, polynomial.Polynomial, error) {

	cv := pk.Curve
	if set.Len() == 0 {
		return nil, nil, nil, ErrEmptySet
	}
	if set.Len()+1 > len(pk.GPowers) {
		return nil, nil, nil, ErrSetTooLarge
	}

	// phi(x) = prod (x - k) over the members
	phi := polynomial.Polynomial{cv.ScalarOne()}
	for _, k := range set.Scalars() {
		root := polynomial.Polynomial{cv.ScalarOne(), cv.ScalarZero().Sub(k)}
		phi = phi.Mul(root, cv)
	}

	phiHat := make(polynomial.Polynomial, len(phi))
	for i := range phiHat {
		w, err := pool.Pop()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("sampling hiding polynomial: %w", err)
		}
		phiHat[i] = cv.ScalarFromUint128(w)
	}

	cg, err := phi.Commit(pk.GPowers)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("committing set polynomial: %w", err)
	}
	ch, err := phiHat.Commit(pk.HPowers)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("committing hiding polynomial: %w", err)
	}
	return cg.Add(ch), phi, phiHat, nil
}

// Query produces the opening for element k against the commit secret
// (phi, phiHat). The witness is computed unconditionally; the branch only
// decides what else is revealed. Non-membership draws two random words for
// the Schnorr nonces.
func Query(pk *setup.Pk, set *Set, phi, phiHat polynomial.Polynomial,
	k curve.Scalar, pool *randpool.Pool) (*Opening, error) {

	cv := pk.Curve

	phiK := phi.Eval(k, cv)
	phiHatK := phiHat.Eval(k, cv)

	psi := phi.QuotientByLinear(phiK, k)
	psiHat := phiHat.QuotientByLinear(phiHatK, k)

	wg, err := psi.Commit(pk.GPowers)
	if err != nil {
		return nil, fmt.Errorf("committing quotient polynomial: %w", err)
	}
	wh, err := psiHat.Commit(pk.HPowers)
	if err != nil {
		return nil, fmt.Errorf("committing hiding quotient polynomial: %w", err)
	}
	w := wg.Add(wh)

	if set.Contains(k) {
		// revealing phiHat(k) lets the verifier use the evaluation
		// equation with phi(k) = 0 implicit, so the committer cannot later
		// deny that k is in the set
		return &Opening{K: k, W: w, PhiHatK: phiHatK}, nil
	}

	z := cv.G1().Mul(phiK).Add(pk.H1.Mul(phiHatK))
	proof, err := schnorrProve(pk, phiK, phiHatK, pool)
	if err != nil {
		return nil, fmt.Errorf("proving non-membership: %w", err)
	}
	proof.Z = z
	return &Opening{K: k, W: w, Proof: proof}, nil
}

// Verify checks an opening against the commitment. It never returns an
// error: any malformed or dishonest transcript verifies to false.
func Verify(pk *setup.Pk, commitment curve.G1, o *Opening) bool {
	if o == nil {
		return false
	}
	cv := pk.Curve

	if o.PhiHatK != nil {
		return verifyEval(pk, commitment, o.K, cv.ScalarZero(), o.PhiHatK, o.W)
	}

	if o.Proof == nil {
		return false
	}
	p := o.Proof

	// N1 == s1*g can only hold when phi(k) = 0, i.e. the committer claimed
	// non-membership for an element of their set
	if p.N1.Equal(cv.G1().Mul(p.S1)) {
		return false
	}

	if !schnorrVerify(pk, p) {
		return false
	}

	left := cv.Pair(commitment.Sub(p.Z), cv.G2())
	right := cv.Pair(o.W, pk.AlphaG2.Sub(cv.G2().Mul(o.K)))
	return left.Equal(right)
}

// verifyEval checks the evaluation equation
// e(W, alpha*g2 - k*g2) == e(C - phiK*g - phiHatK*h, g2).
func verifyEval(pk *setup.Pk, commitment curve.G1, k, phiK, phiHatK curve.Scalar,
	w curve.G1) bool {

	cv := pk.Curve
	left := cv.Pair(w, pk.AlphaG2.Sub(cv.G2().Mul(k)))
	ys := cv.G1().Mul(phiK).Add(pk.H1.Mul(phiHatK))
	right := cv.Pair(commitment.Sub(ys), cv.G2())
	return left.Equal(right)
}
