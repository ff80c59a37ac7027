// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero

import (
	"fmt"
	"slices"
	"strings"
)

// hashIndex buckets positions by the [Hash] of the element stored there.
type hashIndex map[uint64][]int

// find returns the position of the element equal to x, or -1.
func (ix hashIndex) find(x any, h uint64, at func(i int) any) int {
	for _, i := range ix[h] {
		if Equal(at(i), x) {
			return i
		}
	}
	return -1
}

func (ix hashIndex) clone() hashIndex {
	out := make(hashIndex, len(ix))
	for h, positions := range ix {
		out[h] = slices.Clone(positions)
	}
	return out
}

// Set is an unordered collection of distinct Hashable values.
// Elements are kept in insertion order for folding and printing, but two
// sets with the same elements are equal regardless of that order.
// Set is immutable: Insert and Erase return new sets.
type Set struct {
	elems []any
	index hashIndex
}

// MakeSet creates a set holding xs. Later duplicates are ignored.
func MakeSet(xs ...any) Set {
	s := Set{index: make(hashIndex, len(xs))}
	for _, x := range xs {
		s.add(x)
	}
	return s
}

func (s *Set) add(x any) bool {
	h := Hash(x)
	if s.index.find(x, h, s.at) >= 0 {
		return false
	}
	s.index[h] = append(s.index[h], len(s.elems))
	s.elems = append(s.elems, x)
	return true
}

func (s Set) at(i int) any { return s.elems[i] }

// Tag implements [Tagged].
func (Set) Tag() Tag { return SetTag }

// Len returns the number of elements.
func (s Set) Len() int { return len(s.elems) }

// Contains reports whether x is an element of s.
func (s Set) Contains(x any) bool {
	return s.index.find(x, Hash(x), s.at) >= 0
}

// Elems returns the elements in insertion order.
func (s Set) Elems() []any { return slices.Clone(s.elems) }

// Insert returns s with x added. s is returned unchanged when x is already
// an element.
func (s Set) Insert(x any) Set {
	if s.Contains(x) {
		return s
	}
	out := Set{elems: slices.Clone(s.elems), index: s.index.clone()}
	if out.index == nil {
		out.index = make(hashIndex)
	}
	out.add(x)
	return out
}

// Erase returns s without x.
func (s Set) Erase(x any) Set {
	i := s.index.find(x, Hash(x), s.at)
	if i < 0 {
		return s
	}
	return MakeSet(slices.Delete(slices.Clone(s.elems), i, i+1)...)
}

func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range s.elems {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", e)
	}
	b.WriteByte('}')
	return b.String()
}

func setEqual(a, b any) bool {
	sa, sb := a.(Set), b.(Set)
	if sa.Len() != sb.Len() {
		return false
	}
	for _, e := range sa.elems {
		if !sb.Contains(e) {
			return false
		}
	}
	return true
}

func setFoldLeft(xs, state any, f func(acc, x any) any) any {
	for _, e := range xs.(Set).elems {
		state = f(state, e)
	}
	return state
}

func setFindIf(xs any, pred func(any) bool) Maybe {
	for _, e := range xs.(Set).elems {
		if pred(e) {
			return Just(e)
		}
	}
	return Nothing()
}

func init() {
	Implement(EqualMethod, setEqual, SetTag, SetTag)
	Implement(HashMethod, func(x any) uint64 { return hashUnordered("set", x.(Set).elems...) }, SetTag)
	Implement(FoldLeftMethod, setFoldLeft, SetTag)
	Implement(LengthMethod, func(xs any) int { return xs.(Set).Len() }, SetTag)
	Implement(FindIfMethod, setFindIf, SetTag)
	Implement(AnyOfMethod, func(xs any, pred func(any) bool) bool { return setFindIf(xs, pred).IsJust() }, SetTag)
	Implement(MakeMethod, func(xs ...any) any { return MakeSet(xs...) }, SetTag)
}
