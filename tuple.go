// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero

import (
	"fmt"
	"slices"
	"strings"
)

// Tuple is the canonical fixed-length, ordered, heterogeneous sequence.
//
// Elements are stored in boxed slots; each slot keeps the dynamic type it was
// constructed with. A Tuple never shares its storage: construction copies the
// arguments, accessors copy out, and every algorithm returns a new Tuple.
// The zero Tuple is the empty tuple.
type Tuple struct {
	elems []any
}

// MakeTuple creates a tuple holding xs in order.
func MakeTuple(xs ...any) Tuple {
	return Tuple{elems: slices.Clone(xs)}
}

// tupleOf adopts elems without copying; callers must not retain elems.
func tupleOf(elems []any) Tuple {
	return Tuple{elems: elems}
}

// Tag implements [Tagged].
func (Tuple) Tag() Tag { return TupleTag }

// Len returns the number of elements.
func (t Tuple) Len() int { return len(t.elems) }

// At returns the element at index i.
// Panics with [ShapeError] when i is out of range.
func (t Tuple) At(i int) any {
	checkIndex("at", i, len(t.elems))
	return t.elems[i]
}

// Elems returns a copy of the elements.
func (t Tuple) Elems() []any { return slices.Clone(t.elems) }

// With returns a copy of t whose element at index i is v.
func (t Tuple) With(i int, v any) Tuple {
	checkIndex("with", i, len(t.elems))
	elems := slices.Clone(t.elems)
	elems[i] = v
	return tupleOf(elems)
}

func (t Tuple) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, e := range t.elems {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", e)
	}
	b.WriteByte(')')
	return b.String()
}

// Get returns the element at index i as a T.
// Panics with [ShapeError] when i is out of range or the element is not a T.
func Get[T any](t Tuple, i int) T {
	checkIndex("get", i, len(t.elems))
	v, ok := t.elems[i].(T)
	if !ok {
		var zero T
		shapeViolation("get", "element %d is %T, not %T", i, t.elems[i], zero)
	}
	return v
}

// Homogeneous returns the elements as a []T when every element is a T.
// Only homogeneous tuples support indexing by a runtime-computed position
// with a static result type.
func Homogeneous[T any](t Tuple) ([]T, bool) {
	out := make([]T, len(t.elems))
	for i, e := range t.elems {
		v, ok := e.(T)
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func asTuple(op string, x any) Tuple {
	t, ok := x.(Tuple)
	if !ok {
		shapeViolation(op, "expected a tuple, got %T", x)
	}
	return t
}

func tupleEqual(a, b any) bool {
	return pairwiseEqual(a.(Tuple).elems, b.(Tuple).elems)
}

func tupleLess(a, b any) bool {
	return lexicographic(a.(Tuple).elems, b.(Tuple).elems)
}

func tupleHash(x any) uint64 {
	return hashOrdered("tuple", x.(Tuple).elems...)
}

func tupleFoldLeft(xs, state any, f func(acc, x any) any) any {
	for _, e := range xs.(Tuple).elems {
		state = f(state, e)
	}
	return state
}

func tupleFoldRight(xs, state any, f func(x, acc any) any) any {
	elems := xs.(Tuple).elems
	for i := len(elems) - 1; i >= 0; i-- {
		state = f(elems[i], state)
	}
	return state
}

func tupleAt(xs any, n int) any { return xs.(Tuple).At(n) }

func tupleDropFront(xs any, n int) any {
	elems := xs.(Tuple).elems
	if n < 0 {
		shapeViolation("drop_front", "negative count %d", n)
	}
	if n >= len(elems) {
		return Tuple{}
	}
	return MakeTuple(elems[n:]...)
}

func tupleTransform(xs any, f func(any) any) any {
	elems := xs.(Tuple).elems
	out := make([]any, len(elems))
	for i, e := range elems {
		out[i] = f(e)
	}
	return tupleOf(out)
}

// tupleAp applies every function of fs to every element of xs,
// functions varying slowest.
func tupleAp(fs, xs any) any {
	funcs, args := fs.(Tuple).elems, asTuple("ap", xs).elems
	out := make([]any, 0, len(funcs)*len(args))
	for _, f := range funcs {
		fn := asFunc("ap", f)
		for _, x := range args {
			out = append(out, fn(x))
		}
	}
	return tupleOf(out)
}

func tupleFlatten(xss any) any {
	var out []any
	for _, inner := range xss.(Tuple).elems {
		out = append(out, asTuple("flatten", inner).elems...)
	}
	return tupleOf(out)
}

func tupleConcat(a, b any) any {
	return tupleOf(slices.Concat(a.(Tuple).elems, asTuple("concat", b).elems))
}

func tupleFilter(xs any, pred func(any) bool) any {
	var out []any
	for _, e := range xs.(Tuple).elems {
		if pred(e) {
			out = append(out, e)
		}
	}
	return tupleOf(out)
}

func tupleFindIf(xs any, pred func(any) bool) Maybe {
	for _, e := range xs.(Tuple).elems {
		if pred(e) {
			return Just(e)
		}
	}
	return Nothing()
}

func tupleAnyOf(xs any, pred func(any) bool) bool {
	return slices.ContainsFunc(xs.(Tuple).elems, pred)
}

func init() {
	Implement(EqualMethod, tupleEqual, TupleTag, TupleTag)
	Implement(LessMethod, tupleLess, TupleTag, TupleTag)
	Implement(HashMethod, tupleHash, TupleTag)
	Implement(FoldLeftMethod, tupleFoldLeft, TupleTag)
	Implement(FoldRightMethod, tupleFoldRight, TupleTag)
	Implement(LengthMethod, func(xs any) int { return xs.(Tuple).Len() }, TupleTag)
	Implement(AtMethod, tupleAt, TupleTag)
	Implement(DropFrontMethod, tupleDropFront, TupleTag)
	Implement(IsEmptyMethod, func(xs any) bool { return xs.(Tuple).Len() == 0 }, TupleTag)
	Implement(FindIfMethod, tupleFindIf, TupleTag)
	Implement(AnyOfMethod, tupleAnyOf, TupleTag)
	Implement(TransformMethod, tupleTransform, TupleTag)
	Implement(LiftMethod, func(x any) any { return MakeTuple(x) }, TupleTag)
	Implement(ApMethod, tupleAp, TupleTag)
	Implement(FlattenMethod, tupleFlatten, TupleTag)
	Implement(EmptyMethod, func() any { return Tuple{} }, TupleTag)
	Implement(ConcatMethod, tupleConcat, TupleTag)
	Implement(FilterMethod, tupleFilter, TupleTag)
	Implement(MakeMethod, func(xs ...any) any { return MakeTuple(xs...) }, TupleTag)
}
