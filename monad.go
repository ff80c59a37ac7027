// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero

// Functor, Applicative and Monad operations.
//
// Minimal definition: transform (Functor), lift and ap (Applicative),
// flatten (Monad), empty and concat (MonadPlus). Chain, Then, Filter and
// MonadicCompose are derived from them.

// Transform applies f to every element of xs, left to right, and returns a
// structure of the same family and shape.
func Transform[S any](xs S, f func(any) any) S {
	return cast[S]("transform", dispatch(TransformMethod, TagOf(xs))(xs, f))
}

// AdjustIf applies f to the elements satisfying pred and keeps the others.
func AdjustIf[S any](xs S, pred func(any) bool, f func(any) any) S {
	return Transform(xs, func(x any) any {
		if pred(x) {
			return f(x)
		}
		return x
	})
}

// Adjust applies f to the elements equal to key.
func Adjust[S any](xs S, key any, f func(any) any) S {
	return AdjustIf(xs, EqualTo(key), f)
}

// ReplaceIf replaces the elements satisfying pred with v.
func ReplaceIf[S any](xs S, pred func(any) bool, v any) S {
	return AdjustIf(xs, pred, func(any) any { return v })
}

// Replace replaces the elements equal to old with v.
func Replace[S any](xs S, old, v any) S {
	return ReplaceIf(xs, EqualTo(old), v)
}

// Fill replaces every element with v.
func Fill[S any](xs S, v any) S {
	return Transform(xs, func(any) any { return v })
}

// Lift wraps x into the minimal structure of family tag.
func Lift(tag Tag, x any) any {
	return dispatch(LiftMethod, tag)(x)
}

// Ap applies the functions held by fs to the values held by xs.
// Every function must be a func(any) any.
func Ap[S any](fs S, xs S) S {
	return cast[S]("ap", dispatch(ApMethod, TagOf(fs))(fs, xs))
}

// Flatten collapses one level of nesting.
func Flatten[S any](xss S) S {
	return cast[S]("flatten", dispatch(FlattenMethod, TagOf(xss))(xss))
}

// Chain is monadic bind: it applies f to every value held by xs and
// flattens the results. f must return structures of the same family as xs.
func Chain[S any](xs S, f func(any) any) S {
	tag := TagOf(xs)
	mustModel(Monad, "chain", tag)
	return Flatten(Transform(xs, f))
}

// Then sequences a before b, discarding the values of a.
func Then[S any](a, b S) S {
	return Chain(a, func(any) any { return b })
}

// MonadicCompose composes two monadic functions: the result applies g, then
// chains f over its result.
func MonadicCompose(f, g func(any) any) func(any) any {
	return func(x any) any {
		return Chain(g(x), f)
	}
}

// Empty returns the identity of [Concat] for family tag.
func Empty(tag Tag) any {
	return dispatch(EmptyMethod, tag)()
}

// Concat combines a and b, which must belong to the same family.
func Concat[S any](a, b S) S {
	return cast[S]("concat", dispatch(ConcatMethod, TagOf(a))(a, b))
}

// Filter keeps the elements satisfying pred, in their original order.
func Filter[S any](xs S, pred func(any) bool) S {
	return cast[S]("filter", dispatch(FilterMethod, TagOf(xs))(xs, pred))
}

// RemoveIf drops the elements satisfying pred.
func RemoveIf[S any](xs S, pred func(any) bool) S {
	return Filter(xs, func(x any) bool { return !pred(x) })
}

// Remove drops the elements equal to v.
func Remove[S any](xs S, v any) S {
	return RemoveIf(xs, EqualTo(v))
}

// monadPlusFilter derives filter from chain: kept elements are lifted,
// the others are replaced by empty.
func monadPlusFilter(xs any, pred func(any) bool) any {
	tag := TagOf(xs)
	lift := dispatch(LiftMethod, tag)
	empty := dispatch(EmptyMethod, tag)
	return Chain(xs, func(x any) any {
		if pred(x) {
			return lift(x)
		}
		return empty()
	})
}

func asFunc(op string, f any) func(any) any {
	fn, ok := f.(func(any) any)
	if !ok {
		shapeViolation(op, "expected a func(any) any, got %T", f)
	}
	return fn
}

func cast[S any](op string, v any) S {
	s, ok := v.(S)
	if !ok {
		var zero S
		shapeViolation(op, "result %T does not match operand type %T", v, zero)
	}
	return s
}

func init() {
	ImplementWhen(FilterMethod, WhenModels(MonadPlus), monadPlusFilter)
}
