// Package randpool provides the consumable randomness buffer the protocol
// draws from. The core never calls into an RNG: all randomness enters as a
// caller-owned pool of uniform 128-bit words, which makes every protocol
// execution deterministic given its inputs. A single logical call tree (one
// setup, one commit, many queries) uses one pool; concurrent provers must
// use disjoint pools.
package randpool

import (
	"errors"

	"github.com/giuliop/zkset/curve"
)

// ErrInsufficientRandomness is returned when the pool is exhausted before a
// required draw. It is fatal to the calling protocol operation.
var ErrInsufficientRandomness = errors.New("insufficient randomness in pool")

// Pool is a stack of uniform 128-bit words consumed from the end.
type Pool struct {
	words []curve.Uint128
}

// New wraps words in a Pool. The Pool takes ownership of the slice.
func New(words []curve.Uint128) *Pool {
	return &Pool{words: words}
}

// FromUint64 builds a Pool from 64-bit words, one word per pool entry.
func FromUint64(words []uint64) *Pool {
	ws := make([]curve.Uint128, len(words))
	for i, w := range words {
		ws[i] = curve.Uint128{Lo: w}
	}
	return &Pool{words: ws}
}

// Pop removes and returns the last word of the pool.
func (p *Pool) Pop() (curve.Uint128, error) {
	if len(p.words) == 0 {
		return curve.Uint128{}, ErrInsufficientRandomness
	}
	w := p.words[len(p.words)-1]
	p.words = p.words[:len(p.words)-1]
	return w, nil
}

// Len returns the number of words left in the pool.
func (p *Pool) Len() int {
	return len(p.words)
}
