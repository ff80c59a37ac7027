// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero

// Equal reports whether a and b are equal.
//
// Operands of the same family use that family's Comparable instance and
// panic with [CapabilityError] when it has none. Operands of different
// families use a registered cross-family implementation when one exists,
// registered for either operand order, and are otherwise unequal.
func Equal(a, b any) bool {
	ta, tb := TagOf(a), TagOf(b)
	if impl, ok := Lookup(EqualMethod, ta, tb); ok {
		return impl(a, b)
	}
	if ta == tb {
		unimplemented(EqualMethod.d, []Tag{ta, tb})
	}
	if impl, ok := Lookup(EqualMethod, tb, ta); ok {
		return impl(b, a)
	}
	return false
}

// NotEqual is the negation of [Equal].
func NotEqual(a, b any) bool { return !Equal(a, b) }

// EqualTo returns the predicate x → Equal(x, key).
func EqualTo(key any) func(any) bool {
	return func(x any) bool { return Equal(x, key) }
}

// Less reports whether a is strictly less than b.
// Panics with [CapabilityError] when no ordering is registered for the
// operand families.
func Less(a, b any) bool {
	return dispatch(LessMethod, TagOf(a), TagOf(b))(a, b)
}

// LessEqual reports whether b is not less than a.
func LessEqual(a, b any) bool { return !Less(b, a) }

// Greater reports whether b is less than a.
func Greater(a, b any) bool { return Less(b, a) }

// GreaterEqual reports whether a is not less than b.
func GreaterEqual(a, b any) bool { return !Less(a, b) }

// LessThan returns the predicate x → Less(x, key).
func LessThan(key any) func(any) bool {
	return func(x any) bool { return Less(x, key) }
}

// Min returns the lesser of a and b, preferring a when they are equivalent.
func Min(a, b any) any {
	if Less(b, a) {
		return b
	}
	return a
}

// Max returns the greater of a and b, preferring a when they are equivalent.
func Max(a, b any) any {
	if Less(a, b) {
		return b
	}
	return a
}

// Ordering adapts [Less] to a three-way comparison usable with slices.SortStableFunc.
func Ordering(a, b any) int {
	switch {
	case Less(a, b):
		return -1
	case Less(b, a):
		return 1
	}
	return 0
}

// lexicographic compares two element lists with the elements' own
// Orderable instances.
func lexicographic(xs, ys []any) bool {
	for i := 0; i < len(xs) && i < len(ys); i++ {
		if Less(xs[i], ys[i]) {
			return true
		}
		if Less(ys[i], xs[i]) {
			return false
		}
	}
	return len(xs) < len(ys)
}

// pairwiseEqual compares two element lists of equal length.
func pairwiseEqual(xs, ys []any) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if !Equal(xs[i], ys[i]) {
			return false
		}
	}
	return true
}
