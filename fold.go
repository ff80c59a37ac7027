// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero

// FoldLeft reduces xs from the left: f(...f(f(state, x0), x1)..., xn-1).
func FoldLeft(xs, state any, f func(acc, x any) any) any {
	return dispatch(FoldLeftMethod, TagOf(xs))(xs, state, f)
}

// FoldRight reduces xs from the right: f(x0, f(x1, ...f(xn-1, state))).
func FoldRight(xs, state any, f func(x, acc any) any) any {
	return dispatch(FoldRightMethod, TagOf(xs))(xs, state, f)
}

// FoldLeft1 is [FoldLeft] seeded with the first element.
// Panics with [ShapeError] when xs is empty.
func FoldLeft1(xs any, f func(acc, x any) any) any {
	elems := elementsOf("fold_left", xs)
	if len(elems) == 0 {
		shapeViolation("fold_left", "empty structure without initial state")
	}
	acc := elems[0]
	for _, e := range elems[1:] {
		acc = f(acc, e)
	}
	return acc
}

// FoldRight1 is [FoldRight] seeded with the last element.
// Panics with [ShapeError] when xs is empty.
func FoldRight1(xs any, f func(x, acc any) any) any {
	elems := elementsOf("fold_right", xs)
	if len(elems) == 0 {
		shapeViolation("fold_right", "empty structure without initial state")
	}
	acc := elems[len(elems)-1]
	for i := len(elems) - 2; i >= 0; i-- {
		acc = f(elems[i], acc)
	}
	return acc
}

// Length returns the number of elements of xs.
func Length(xs any) int {
	return dispatch(LengthMethod, TagOf(xs))(xs)
}

// Unpack calls f with the elements of xs as arguments.
func Unpack(xs any, f func(elems ...any) any) any {
	return f(elementsOf("unpack", xs)...)
}

// ForEach calls f on every element of xs, in order.
func ForEach(xs any, f func(any)) {
	FoldLeft(xs, nil, func(_, x any) any {
		f(x)
		return nil
	})
}

// CountIf returns the number of elements satisfying pred.
func CountIf(xs any, pred func(any) bool) int {
	return FoldLeft(xs, 0, func(acc, x any) any {
		if pred(x) {
			return acc.(int) + 1
		}
		return acc
	}).(int)
}

// Count returns the number of elements equal to v.
func Count(xs, v any) int {
	return CountIf(xs, EqualTo(v))
}

// Maximum returns the greatest element of xs by [Less], the first one on ties.
// Panics with [ShapeError] when xs is empty.
func Maximum(xs any) any {
	return MaximumBy(xs, Less)
}

// MaximumBy is [Maximum] with a caller-provided strict ordering.
func MaximumBy(xs any, less func(a, b any) bool) any {
	return FoldLeft1(xs, func(acc, x any) any {
		if less(acc, x) {
			return x
		}
		return acc
	})
}

// Minimum returns the least element of xs by [Less], the first one on ties.
// Panics with [ShapeError] when xs is empty.
func Minimum(xs any) any {
	return MinimumBy(xs, Less)
}

// MinimumBy is [Minimum] with a caller-provided strict ordering.
func MinimumBy(xs any, less func(a, b any) bool) any {
	return FoldLeft1(xs, func(acc, x any) any {
		if less(x, acc) {
			return x
		}
		return acc
	})
}

// elementsOf lists the elements of a Foldable structure.
// The result may alias the storage of xs and must not be modified.
func elementsOf(op string, xs any) []any {
	if t, ok := xs.(Tuple); ok {
		return t.elems
	}
	tag := TagOf(xs)
	fold, ok := Lookup(FoldLeftMethod, tag)
	if !ok {
		notModeled(Foldable, op, tag)
	}
	var out []any
	fold(xs, nil, func(_, x any) any {
		out = append(out, x)
		return nil
	})
	return out
}

func foldableFoldRight(xs, state any, f func(x, acc any) any) any {
	elems := elementsOf("fold_right", xs)
	for i := len(elems) - 1; i >= 0; i-- {
		state = f(elems[i], state)
	}
	return state
}

func foldableLength(xs any) int {
	return FoldLeft(xs, 0, func(acc, _ any) any { return acc.(int) + 1 }).(int)
}

func init() {
	ImplementWhen(FoldRightMethod, WhenModels(Foldable), foldableFoldRight)
	ImplementWhen(LengthMethod, WhenModels(Foldable), foldableLength)
}
