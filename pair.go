// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero

import "fmt"

// Pair holds two values. It models Product, Comparable, Orderable,
// Hashable and Foldable.
type Pair struct {
	Fst any
	Snd any
}

// MakePair creates a pair.
func MakePair(fst, snd any) Pair {
	return Pair{Fst: fst, Snd: snd}
}

// Tag implements [Tagged].
func (Pair) Tag() Tag { return PairTag }

func (p Pair) String() string {
	return fmt.Sprintf("pair(%v, %v)", p.Fst, p.Snd)
}

// First returns the first component of a Product.
func First(p any) any {
	return dispatch(FirstMethod, TagOf(p))(p)
}

// Second returns the second component of a Product.
func Second(p any) any {
	return dispatch(SecondMethod, TagOf(p))(p)
}

func asPair(op string, x any) Pair {
	p, ok := x.(Pair)
	if !ok {
		shapeViolation(op, "expected a pair, got %T", x)
	}
	return p
}

func pairEqual(a, b any) bool {
	pa, pb := a.(Pair), b.(Pair)
	return Equal(pa.Fst, pb.Fst) && Equal(pa.Snd, pb.Snd)
}

func pairLess(a, b any) bool {
	pa, pb := a.(Pair), b.(Pair)
	return lexicographic([]any{pa.Fst, pa.Snd}, []any{pb.Fst, pb.Snd})
}

func pairFoldLeft(xs, state any, f func(acc, x any) any) any {
	p := xs.(Pair)
	return f(f(state, p.Fst), p.Snd)
}

func pairMake(xs ...any) any {
	if len(xs) != 2 {
		shapeViolation("make", "pair needs 2 elements, got %d", len(xs))
	}
	return Pair{Fst: xs[0], Snd: xs[1]}
}

func init() {
	Implement(FirstMethod, func(p any) any { return p.(Pair).Fst }, PairTag)
	Implement(SecondMethod, func(p any) any { return p.(Pair).Snd }, PairTag)
	Implement(EqualMethod, pairEqual, PairTag, PairTag)
	Implement(LessMethod, pairLess, PairTag, PairTag)
	Implement(HashMethod, func(x any) uint64 {
		p := x.(Pair)
		return hashOrdered("pair", p.Fst, p.Snd)
	}, PairTag)
	Implement(FoldLeftMethod, pairFoldLeft, PairTag)
	Implement(MakeMethod, pairMake, PairTag)
}
