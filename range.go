// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero

import "fmt"

// Range is the half-open interval of integers [From, To).
// Two ranges are equal when they hold the same integers, so all empty
// ranges are equal.
type Range struct {
	from, to int
}

// MakeRange creates the range [from, to).
// Panics with [ShapeError] when to < from or when the length of the range
// does not fit in an int.
func MakeRange(from, to int) Range {
	if to < from {
		shapeViolation("make_range", "upper bound %d below lower bound %d", to, from)
	}
	if to-from < 0 {
		shapeViolation("make_range", "length of [%d, %d) overflows int", from, to)
	}
	return Range{from: from, to: to}
}

// Tag implements [Tagged].
func (Range) Tag() Tag { return RangeTag }

// From returns the inclusive lower bound.
func (r Range) From() int { return r.from }

// To returns the exclusive upper bound.
func (r Range) To() int { return r.to }

// Len returns the number of integers in r.
func (r Range) Len() int { return r.to - r.from }

func (r Range) String() string {
	return fmt.Sprintf("range(%d, %d)", r.from, r.to)
}

func rangeEqual(a, b any) bool {
	ra, rb := a.(Range), b.(Range)
	if ra.Len() == 0 || rb.Len() == 0 {
		return ra.Len() == rb.Len()
	}
	return ra == rb
}

func rangeHash(x any) uint64 {
	r := x.(Range)
	if r.Len() == 0 {
		return hashOrdered("range")
	}
	return hashOrdered("range", r.from, r.to)
}

func rangeAt(xs any, n int) any {
	r := xs.(Range)
	checkIndex("at", n, r.Len())
	return r.from + n
}

func rangeDropFront(xs any, n int) any {
	r := xs.(Range)
	return Range{from: r.from + min(n, r.Len()), to: r.to}
}

func rangeFoldLeft(xs, state any, f func(acc, x any) any) any {
	r := xs.(Range)
	for i := r.from; i < r.to; i++ {
		state = f(state, i)
	}
	return state
}

func init() {
	Implement(EqualMethod, rangeEqual, RangeTag, RangeTag)
	Implement(HashMethod, rangeHash, RangeTag)
	Implement(AtMethod, rangeAt, RangeTag)
	Implement(DropFrontMethod, rangeDropFront, RangeTag)
	Implement(IsEmptyMethod, func(xs any) bool { return xs.(Range).Len() == 0 }, RangeTag)
	Implement(FoldLeftMethod, rangeFoldLeft, RangeTag)
	Implement(LengthMethod, func(xs any) int { return xs.(Range).Len() }, RangeTag)
}
