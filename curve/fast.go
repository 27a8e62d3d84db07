package curve

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/zeebo/blake3"
)

// fastCurve is the performance backend, built on gnark-crypto's BLS12-381.
type fastCurve struct {
	benchHash bool
}

// Fast returns the performance backend. Its Fiat-Shamir challenge is the
// same SHA-256 over canonical encodings as the Spec backend, so the two
// backends are interchangeable.
func Fast() Curve { return fastCurve{} }

// FastBench returns the performance backend with the Fiat-Shamir challenge
// replaced by a blake3 digest over point string representations. It exists
// only to benchmark the group arithmetic without the canonical-encoding
// cost and MUST NOT be used in production: the string encoding is not a
// stable protocol contract and its transcripts do not verify under the
// other backends.
func FastBench() Curve { return fastCurve{benchHash: true} }

func (c fastCurve) Name() string {
	if c.benchHash {
		return "fast-bench"
	}
	return "fast"
}

func (fastCurve) ScalarFromUint128(x Uint128) Scalar {
	v := new(big.Int).SetUint64(x.Hi)
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(x.Lo))
	var e fr.Element
	e.SetBigInt(v)
	return fastScalar{e}
}

func (fastCurve) ScalarFromUint64(x uint64) Scalar {
	var e fr.Element
	e.SetUint64(x)
	return fastScalar{e}
}

func (fastCurve) ScalarZero() Scalar { return fastScalar{} }

func (fastCurve) ScalarOne() Scalar {
	var e fr.Element
	e.SetOne()
	return fastScalar{e}
}

func (fastCurve) ScalarPow(x Scalar, e Uint128) Scalar {
	exp := new(big.Int).SetUint64(e.Hi)
	exp.Lsh(exp, 64)
	exp.Or(exp, new(big.Int).SetUint64(e.Lo))
	var r fr.Element
	r.Exp(x.(fastScalar).v, exp)
	return fastScalar{r}
}

func (fastCurve) G1() G1 {
	_, _, g1, _ := bls12381.Generators()
	return fastG1{g1}
}

func (fastCurve) G2() G2 {
	_, _, _, g2 := bls12381.Generators()
	return fastG2{g2}
}

func (fastCurve) Pair(p G1, q G2) Gt {
	gt, err := bls12381.Pair(
		[]bls12381.G1Affine{p.(fastG1).p},
		[]bls12381.G2Affine{q.(fastG2).p},
	)
	if err != nil {
		panic(fmt.Sprintf("pairing: %v", err))
	}
	return fastGt{gt}
}

func (c fastCurve) FiatShamirHash(z, n1, n2, h G1) Scalar {
	var e fr.Element
	if c.benchHash {
		hs := blake3.New()
		zp, n1p, n2p, hp := z.(fastG1).p, n1.(fastG1).p, n2.(fastG1).p, h.(fastG1).p
		hs.Write([]byte(zp.String()))
		hs.Write([]byte(n1p.String()))
		hs.Write([]byte(n2p.String()))
		hs.Write([]byte(hp.String()))
		e.SetBytes(hs.Sum(nil))
		return fastScalar{e}
	}
	d := transcriptDigest(c.G1(), h, z, n1, n2)
	e.SetBytes(d[:])
	return fastScalar{e}
}

type fastScalar struct {
	v fr.Element
}

func (s fastScalar) Add(o Scalar) Scalar {
	ov := o.(fastScalar)
	var r fr.Element
	r.Add(&s.v, &ov.v)
	return fastScalar{r}
}

func (s fastScalar) Sub(o Scalar) Scalar {
	ov := o.(fastScalar)
	var r fr.Element
	r.Sub(&s.v, &ov.v)
	return fastScalar{r}
}

func (s fastScalar) Mul(o Scalar) Scalar {
	ov := o.(fastScalar)
	var r fr.Element
	r.Mul(&s.v, &ov.v)
	return fastScalar{r}
}

func (s fastScalar) Equal(o Scalar) bool {
	ov := o.(fastScalar)
	return s.v.Equal(&ov.v)
}

func (s fastScalar) IsZero() bool { return s.v.IsZero() }

func (s fastScalar) Bytes() [32]byte { return s.v.Bytes() }

type fastG1 struct {
	p bls12381.G1Affine
}

func (a fastG1) Add(b G1) G1 {
	bv := b.(fastG1)
	var aj, bj bls12381.G1Jac
	aj.FromAffine(&a.p)
	bj.FromAffine(&bv.p)
	aj.AddAssign(&bj)
	var r bls12381.G1Affine
	r.FromJacobian(&aj)
	return fastG1{r}
}

func (a fastG1) Sub(b G1) G1 {
	bv := b.(fastG1)
	var aj, bj bls12381.G1Jac
	aj.FromAffine(&a.p)
	bj.FromAffine(&bv.p)
	aj.SubAssign(&bj)
	var r bls12381.G1Affine
	r.FromJacobian(&aj)
	return fastG1{r}
}

func (a fastG1) Neg() G1 {
	var r bls12381.G1Affine
	r.Neg(&a.p)
	return fastG1{r}
}

func (a fastG1) Mul(s Scalar) G1 {
	var bi big.Int
	sv := s.(fastScalar).v
	sv.BigInt(&bi)
	var r bls12381.G1Affine
	r.ScalarMultiplication(&a.p, &bi)
	return fastG1{r}
}

func (a fastG1) Equal(b G1) bool {
	bv := b.(fastG1)
	return a.p.Equal(&bv.p)
}

func (a fastG1) Bytes() []byte {
	out := make([]byte, 0, 97)
	x := a.p.X.Bytes()
	y := a.p.Y.Bytes()
	out = append(out, x[:]...)
	out = append(out, y[:]...)
	if a.p.IsInfinity() {
		out = append(out, 0x01)
	} else {
		out = append(out, 0x00)
	}
	return out
}

type fastG2 struct {
	p bls12381.G2Affine
}

func (a fastG2) Add(b G2) G2 {
	bv := b.(fastG2)
	var aj, bj bls12381.G2Jac
	aj.FromAffine(&a.p)
	bj.FromAffine(&bv.p)
	aj.AddAssign(&bj)
	var r bls12381.G2Affine
	r.FromJacobian(&aj)
	return fastG2{r}
}

func (a fastG2) Sub(b G2) G2 {
	bv := b.(fastG2)
	var aj, bj bls12381.G2Jac
	aj.FromAffine(&a.p)
	bj.FromAffine(&bv.p)
	aj.SubAssign(&bj)
	var r bls12381.G2Affine
	r.FromJacobian(&aj)
	return fastG2{r}
}

func (a fastG2) Mul(s Scalar) G2 {
	var bi big.Int
	sv := s.(fastScalar).v
	sv.BigInt(&bi)
	var r bls12381.G2Affine
	r.ScalarMultiplication(&a.p, &bi)
	return fastG2{r}
}

func (a fastG2) Equal(b G2) bool {
	bv := b.(fastG2)
	return a.p.Equal(&bv.p)
}

type fastGt struct {
	v bls12381.GT
}

func (a fastGt) Equal(b Gt) bool {
	bv := b.(fastGt).v
	return a.v.Equal(&bv)
}
