package polynomial

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/giuliop/zkset/curve"
)

var cv = curve.Fast()

// encode renders a polynomial as hex-comparable coefficient bytes so that
// cmp can print a useful diff.
func encode(p Polynomial) [][32]byte {
	out := make([][32]byte, len(p))
	for i, c := range p {
		out[i] = c.Bytes()
	}
	return out
}

func TestMul(t *testing.T) {
	tests := []struct {
		name string
		p, q Polynomial
		want Polynomial
	}{
		{
			name: "square of x+1",
			p:    New(cv, 1, 1),
			q:    New(cv, 1, 1),
			want: New(cv, 1, 2, 1),
		},
		{
			name: "quadratic times linear",
			p:    New(cv, 1, 1, 1),
			q:    New(cv, 1, 1),
			want: New(cv, 1, 2, 2, 1),
		},
		{
			name: "constants",
			p:    New(cv, 5),
			q:    New(cv, 7),
			want: New(cv, 35),
		},
		{
			name: "with zero coefficients",
			p:    New(cv, 2, 0, 3),
			q:    New(cv, 1, 0),
			want: New(cv, 2, 0, 3, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Mul(tt.q, cv)
			if diff := cmp.Diff(encode(tt.want), encode(got)); diff != "" {
				t.Errorf("product mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		p    Polynomial
		x    uint64
		want uint64
	}{
		{"linear", New(cv, 2, 1), 3, 7},
		{"quadratic", New(cv, 2, 1, 0), 3, 21},
		{"constant", New(cv, 9), 1000, 9},
		{"monomial", New(cv, 1, 0, 0), 5, 25},
		{"at zero", New(cv, 4, 3, 11), 0, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Eval(cv.ScalarFromUint64(tt.x), cv)
			if !got.Equal(cv.ScalarFromUint64(tt.want)) {
				t.Errorf("P(%d) = %x, want %d", tt.x, got.Bytes(), tt.want)
			}
		})
	}
}

func TestQuotientByLinear(t *testing.T) {
	tests := []struct {
		name string
		p    Polynomial
		x0   uint64
		want Polynomial
	}{
		{
			// (x-1)(x-2) / (x-1) = x-2
			name: "root of quadratic",
			p:    New(cv, 1).Mul(linearRoot(1), cv).Mul(linearRoot(2), cv),
			x0:   1,
			want: linearRoot(2),
		},
		{
			// x / (x-3) = 1, remainder folded into the claimed value
			name: "linear at non-root",
			p:    New(cv, 1, 0),
			x0:   3,
			want: New(cv, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x0 := cv.ScalarFromUint64(tt.x0)
			got := tt.p.QuotientByLinear(tt.p.Eval(x0, cv), x0)
			if diff := cmp.Diff(encode(tt.want), encode(got)); diff != "" {
				t.Errorf("quotient mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// linearRoot returns (x - k).
func linearRoot(k uint64) Polynomial {
	return Polynomial{cv.ScalarOne(), cv.ScalarZero().Sub(cv.ScalarFromUint64(k))}
}

func TestQuotientRoundTrip(t *testing.T) {
	// Q*(x-x0) + P(x0) must reconstruct P for arbitrary P and x0
	polys := []Polynomial{
		New(cv, 3, 1, 4, 1, 5),
		New(cv, 1, 0, 0, 0),
		New(cv, 7, 7),
	}
	points := []uint64{0, 1, 42, 1 << 40}

	for _, p := range polys {
		for _, x := range points {
			x0 := cv.ScalarFromUint64(x)
			px0 := p.Eval(x0, cv)
			q := p.QuotientByLinear(px0, x0)
			if len(q) != len(p)-1 {
				t.Fatalf("quotient length %d, want %d", len(q), len(p)-1)
			}

			back := q.Mul(Polynomial{cv.ScalarOne(), cv.ScalarZero().Sub(x0)}, cv)
			back[len(back)-1] = back[len(back)-1].Add(px0)
			if diff := cmp.Diff(encode(p), encode(back)); diff != "" {
				t.Errorf("Q*(x-%d)+P(%d) != P (-want +got):\n%s", x, x, diff)
			}
		}
	}
}

func TestCommit(t *testing.T) {
	// basis over a known exponent: basis[i] = g * x^(n-1-i), so committing
	// P must equal g * P(x)
	const n = 6
	x := cv.ScalarFromUint64(1337)
	basis := make([]curve.G1, n)
	for i := range basis {
		pw := cv.ScalarPow(x, curve.Uint128{Lo: uint64(n - 1 - i)})
		basis[i] = cv.G1().Mul(pw)
	}

	polys := []Polynomial{
		New(cv, 1, 2, 3, 4, 5, 6),
		New(cv, 9, 0, 1),
		New(cv, 5),
	}
	for _, p := range polys {
		got, err := p.Commit(basis)
		if err != nil {
			t.Fatalf("Commit: %v", err)
		}
		want := cv.G1().Mul(p.Eval(x, cv))
		if !got.Equal(want) {
			t.Errorf("Commit(len %d) != g*P(x)", len(p))
		}
	}
}

func TestCommitBasisTooShort(t *testing.T) {
	basis := []curve.G1{cv.G1(), cv.G1()}
	_, err := New(cv, 1, 2, 3).Commit(basis)
	if !errors.Is(err, ErrBasisTooShort) {
		t.Errorf("expected ErrBasisTooShort, got %v", err)
	}
	_, err = New(cv, 1).Commit(nil)
	if !errors.Is(err, ErrBasisTooShort) {
		t.Errorf("expected ErrBasisTooShort for empty basis, got %v", err)
	}
}
