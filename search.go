// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero

// Iterable and Searchable operations.
//
// Searches stop at the first element that decides the answer, so they
// terminate on infinite Iterable structures whenever such an element exists.

// At returns the element of xs at index n.
func At(xs any, n int) any {
	if n < 0 {
		shapeViolation("at", "negative index %d", n)
	}
	return dispatch(AtMethod, TagOf(xs))(xs, n)
}

// Front returns the first element of xs.
func Front(xs any) any {
	tag := TagOf(xs)
	if dispatch(IsEmptyMethod, tag)(xs) {
		shapeViolation("front", "empty structure")
	}
	return dispatch(AtMethod, tag)(xs, 0)
}

// Back returns the last element of xs, which must be finite.
func Back(xs any) any {
	n := Length(xs)
	if n == 0 {
		shapeViolation("back", "empty structure")
	}
	return At(xs, n-1)
}

// DropFront returns xs without its first n elements.
func DropFront(xs any, n int) any {
	if n < 0 {
		shapeViolation("drop_front", "negative count %d", n)
	}
	return dispatch(DropFrontMethod, TagOf(xs))(xs, n)
}

// IsEmpty reports whether xs has no elements.
func IsEmpty(xs any) bool {
	return dispatch(IsEmptyMethod, TagOf(xs))(xs)
}

// DropWhile drops the leading elements of xs that satisfy pred.
func DropWhile(xs any, pred func(any) bool) any {
	it := iteratorOf("drop_while", xs)
	for !it.empty(xs) && pred(it.at(xs, 0)) {
		xs = it.drop(xs, 1)
	}
	return xs
}

// IndexIf returns the index of the first element satisfying pred.
func IndexIf(xs any, pred func(any) bool) Maybe {
	it := iteratorOf("index_if", xs)
	for i := 0; !it.empty(xs); i++ {
		if pred(it.at(xs, 0)) {
			return Just(i)
		}
		xs = it.drop(xs, 1)
	}
	return Nothing()
}

// FindIf returns the first element of xs satisfying pred.
func FindIf(xs any, pred func(any) bool) Maybe {
	return dispatch(FindIfMethod, TagOf(xs))(xs, pred)
}

// Find returns the first element of xs equal to key. Associative structures
// search their keys and return the associated value.
func Find(xs, key any) Maybe {
	return FindIf(xs, EqualTo(key))
}

// AnyOf reports whether some element of xs satisfies pred.
func AnyOf(xs any, pred func(any) bool) bool {
	return dispatch(AnyOfMethod, TagOf(xs))(xs, pred)
}

// AllOf reports whether every element of xs satisfies pred.
func AllOf(xs any, pred func(any) bool) bool {
	return !AnyOf(xs, func(x any) bool { return !pred(x) })
}

// NoneOf reports whether no element of xs satisfies pred.
func NoneOf(xs any, pred func(any) bool) bool {
	return !AnyOf(xs, pred)
}

// Contains reports whether some element of xs equals v.
func Contains(xs, v any) bool {
	return AnyOf(xs, EqualTo(v))
}

// In reports whether v is an element of xs.
func In(v, xs any) bool {
	return Contains(xs, v)
}

// IsSubset reports whether every element of xs is contained in ys.
func IsSubset(xs, ys any) bool {
	return AllOf(xs, func(x any) bool { return Contains(ys, x) })
}

// IsDisjoint reports whether xs and ys share no element.
func IsDisjoint(xs, ys any) bool {
	return NoneOf(xs, func(x any) bool { return Contains(ys, x) })
}

type iterator struct {
	at    func(xs any, n int) any
	drop  func(xs any, n int) any
	empty func(xs any) bool
}

func iteratorOf(op string, xs any) iterator {
	tag := TagOf(xs)
	mustModel(Iterable, op, tag)
	return iterator{
		at:    dispatch(AtMethod, tag),
		drop:  dispatch(DropFrontMethod, tag),
		empty: dispatch(IsEmptyMethod, tag),
	}
}

func iterableFindIf(xs any, pred func(any) bool) Maybe {
	it := iteratorOf("find_if", xs)
	for !it.empty(xs) {
		if x := it.at(xs, 0); pred(x) {
			return Just(x)
		}
		xs = it.drop(xs, 1)
	}
	return Nothing()
}

func iterableAnyOf(xs any, pred func(any) bool) bool {
	return iterableFindIf(xs, pred).IsJust()
}

func init() {
	ImplementWhen(FindIfMethod, WhenModels(Iterable), iterableFindIf)
	ImplementWhen(AnyOfMethod, WhenModels(Iterable), iterableAnyOf)
}
