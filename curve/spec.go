package curve

import (
	"bytes"
	"math/big"

	bls12381 "github.com/ethereum/go-ethereum/crypto/bls12381"
)

// frOrder is the order of the BLS12-381 scalar field.
var frOrder, _ = new(big.Int).SetString(
	"52435875175126190479447740508185965837690552500527637822603658699938581184513", 10)

// specCurve is the specification backend: group operations from
// go-ethereum's bls12381 package and scalar arithmetic on math/big reduced
// modulo the group order. It favors code that is easy to audit over speed.
type specCurve struct{}

// Spec returns the specification backend.
func Spec() Curve { return specCurve{} }

func (specCurve) Name() string { return "spec" }

func (specCurve) ScalarFromUint128(x Uint128) Scalar {
	v := new(big.Int).SetUint64(x.Hi)
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(x.Lo))
	return specScalar{v.Mod(v, frOrder)}
}

func (c specCurve) ScalarFromUint64(x uint64) Scalar {
	return c.ScalarFromUint128(Uint128{Lo: x})
}

func (c specCurve) ScalarZero() Scalar { return specScalar{big.NewInt(0)} }
func (c specCurve) ScalarOne() Scalar  { return specScalar{big.NewInt(1)} }

func (specCurve) ScalarPow(x Scalar, e Uint128) Scalar {
	exp := new(big.Int).SetUint64(e.Hi)
	exp.Lsh(exp, 64)
	exp.Or(exp, new(big.Int).SetUint64(e.Lo))
	v := new(big.Int).Exp(x.(specScalar).v, exp, frOrder)
	return specScalar{v}
}

func (specCurve) G1() G1 {
	return specG1{bls12381.NewG1().One()}
}

func (specCurve) G2() G2 {
	return specG2{bls12381.NewG2().One()}
}

func (specCurve) Pair(p G1, q G2) Gt {
	// the engine normalizes its inputs in place, so pair on copies
	pc := new(bls12381.PointG1).Set(p.(specG1).p)
	qc := new(bls12381.PointG2).Set(q.(specG2).p)
	e := bls12381.NewPairingEngine()
	e.AddPair(pc, qc)
	return specGt{bls12381.NewGT().ToBytes(e.Result())}
}

func (c specCurve) FiatShamirHash(z, n1, n2, h G1) Scalar {
	d := transcriptDigest(c.G1(), h, z, n1, n2)
	v := new(big.Int).SetBytes(d[:])
	return specScalar{v.Mod(v, frOrder)}
}

type specScalar struct {
	v *big.Int // reduced into [0, frOrder)
}

func (s specScalar) Add(o Scalar) Scalar {
	v := new(big.Int).Add(s.v, o.(specScalar).v)
	return specScalar{v.Mod(v, frOrder)}
}

func (s specScalar) Sub(o Scalar) Scalar {
	v := new(big.Int).Sub(s.v, o.(specScalar).v)
	return specScalar{v.Mod(v, frOrder)}
}

func (s specScalar) Mul(o Scalar) Scalar {
	v := new(big.Int).Mul(s.v, o.(specScalar).v)
	return specScalar{v.Mod(v, frOrder)}
}

func (s specScalar) Equal(o Scalar) bool {
	return s.v.Cmp(o.(specScalar).v) == 0
}

func (s specScalar) IsZero() bool { return s.v.Sign() == 0 }

func (s specScalar) Bytes() [32]byte {
	var b [32]byte
	s.v.FillBytes(b[:])
	return b
}

type specG1 struct {
	p *bls12381.PointG1
}

func (a specG1) Add(b G1) G1 {
	r := new(bls12381.PointG1)
	bls12381.NewG1().Add(r, a.p, b.(specG1).p)
	return specG1{r}
}

func (a specG1) Sub(b G1) G1 {
	return a.Add(b.(specG1).Neg())
}

func (a specG1) Neg() G1 {
	r := new(bls12381.PointG1)
	bls12381.NewG1().Neg(r, a.p)
	return specG1{r}
}

func (a specG1) Mul(s Scalar) G1 {
	r := new(bls12381.PointG1)
	bls12381.NewG1().MulScalar(r, a.p, s.(specScalar).v)
	return specG1{r}
}

func (a specG1) Equal(b G1) bool {
	return bls12381.NewG1().Equal(a.p, b.(specG1).p)
}

func (a specG1) Bytes() []byte {
	g := bls12381.NewG1()
	// ToBytes normalizes the point in place, keep ours untouched
	p := new(bls12381.PointG1).Set(a.p)
	out := make([]byte, 0, 97)
	out = append(out, g.ToBytes(p)...)
	if g.IsZero(p) {
		out = append(out, 0x01)
	} else {
		out = append(out, 0x00)
	}
	return out
}

type specG2 struct {
	p *bls12381.PointG2
}

func (a specG2) Add(b G2) G2 {
	r := new(bls12381.PointG2)
	bls12381.NewG2().Add(r, a.p, b.(specG2).p)
	return specG2{r}
}

func (a specG2) Sub(b G2) G2 {
	neg := new(bls12381.PointG2)
	bls12381.NewG2().Neg(neg, b.(specG2).p)
	r := new(bls12381.PointG2)
	bls12381.NewG2().Add(r, a.p, neg)
	return specG2{r}
}

func (a specG2) Mul(s Scalar) G2 {
	r := new(bls12381.PointG2)
	bls12381.NewG2().MulScalar(r, a.p, s.(specScalar).v)
	return specG2{r}
}

func (a specG2) Equal(b G2) bool {
	return bls12381.NewG2().Equal(a.p, b.(specG2).p)
}

type specGt struct {
	b []byte // canonical target-group encoding
}

func (a specGt) Equal(b Gt) bool {
	return bytes.Equal(a.b, b.(specGt).b)
}
