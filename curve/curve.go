// Package curve abstracts the pairing-friendly curve the proof system runs
// on. Two interchangeable BLS12-381 backends are provided: Spec, built on
// go-ethereum's readable bls12381 package with math/big field arithmetic,
// and Fast, built on gnark-crypto's optimized implementation. Both agree
// bit-for-bit on the standard generators and on the Fiat-Shamir challenge
// for identical transcripts, so identical inputs and randomness pools yield
// identical commitments and transcripts on either backend.
//
// Elements from different backends must not be mixed; doing so panics on
// the first group operation.
package curve

// Uint128 is an unsigned 128-bit integer, the unit of randomness consumed
// by the protocol and the exponent type for scalar exponentiation.
type Uint128 struct {
	Hi, Lo uint64
}

// Scalar is an element of the curve's prime-order scalar field.
// Implementations return new values; receivers are never mutated.
type Scalar interface {
	Add(Scalar) Scalar
	Sub(Scalar) Scalar
	Mul(Scalar) Scalar
	Equal(Scalar) bool
	IsZero() bool

	// Bytes returns the canonical 32-byte big-endian encoding.
	Bytes() [32]byte
}

// G1 is a point in the first source group.
type G1 interface {
	Add(G1) G1
	Sub(G1) G1
	Neg() G1
	Mul(Scalar) G1
	Equal(G1) bool

	// Bytes returns the 97-byte transcript encoding: 48-byte big-endian x,
	// 48-byte big-endian y, and a trailing 0x01 if the point is at infinity,
	// 0x00 otherwise. This encoding is part of the protocol contract and is
	// identical across backends.
	Bytes() []byte
}

// G2 is a point in the second source group.
type G2 interface {
	Add(G2) G2
	Sub(G2) G2
	Mul(Scalar) G2
	Equal(G2) bool
}

// Gt is an element of the pairing target group. Only equality is needed by
// the protocol.
type Gt interface {
	Equal(Gt) bool
}

// Curve is the capability set a backend must provide.
type Curve interface {
	Name() string

	ScalarFromUint128(Uint128) Scalar
	ScalarFromUint64(uint64) Scalar
	ScalarZero() Scalar
	ScalarOne() Scalar

	// ScalarPow raises x to a nonnegative 128-bit exponent.
	ScalarPow(x Scalar, e Uint128) Scalar

	// G1 and G2 return the standard BLS12-381 generators.
	G1() G1
	G2() G2

	// Pair evaluates the bilinear map e: G1 x G2 -> Gt.
	Pair(G1, G2) Gt

	// FiatShamirHash derives the verifier challenge from the Schnorr
	// transcript (z, n1, n2) and the hiding base h. Production backends
	// hash SHA-256 over the canonical encodings of g1, h, z, n1, n2 in that
	// order and reduce the digest big-endian modulo the group order.
	FiatShamirHash(z, n1, n2, h G1) Scalar
}
