package zkset

import (
	"bytes"
	"sort"

	"github.com/giuliop/zkset/curve"
)

// Set is a collection of distinct scalars. Order is irrelevant to the
// protocol; enumeration is by canonical byte order so that runs with the
// same inputs produce bit-identical transcripts.
type Set struct {
	elems map[[32]byte]curve.Scalar
}

// NewSet returns a Set holding the given members.
func NewSet(members ...curve.Scalar) *Set {
	s := &Set{elems: make(map[[32]byte]curve.Scalar, len(members))}
	for _, m := range members {
		s.Add(m)
	}
	return s
}

// Add inserts k; adding an element twice is a no-op.
func (s *Set) Add(k curve.Scalar) {
	s.elems[k.Bytes()] = k
}

// Contains reports whether k is a member.
func (s *Set) Contains(k curve.Scalar) bool {
	_, ok := s.elems[k.Bytes()]
	return ok
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.elems)
}

// Scalars returns the members sorted by their canonical encoding.
func (s *Set) Scalars() []curve.Scalar {
	keys := make([][32]byte, 0, len(s.elems))
	for k := range s.elems {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return bytes.Compare(keys[i][:], keys[j][:]) < 0
	})
	out := make([]curve.Scalar, len(keys))
	for i, k := range keys {
		out[i] = s.elems[k]
	}
	return out
}
