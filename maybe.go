// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero

import "fmt"

// Maybe holds zero or one value.
// It is the result type of searches and other partial operations.
//
// Maybe is immutable: Functor and Monad operations produce new values.
// Extracting the value of an empty Maybe panics with [ErrEmptyAccess].
type Maybe struct {
	just  bool
	value any
}

// Just creates a Maybe holding x.
func Just(x any) Maybe {
	return Maybe{just: true, value: x}
}

// Nothing creates an empty Maybe.
func Nothing() Maybe {
	return Maybe{}
}

// Tag implements [Tagged].
func (Maybe) Tag() Tag { return MaybeTag }

// IsJust reports whether m holds a value.
func (m Maybe) IsJust() bool { return m.just }

// IsNothing reports whether m is empty.
func (m Maybe) IsNothing() bool { return !m.just }

// Get returns the held value and true, or nil and false.
func (m Maybe) Get() (any, bool) { return m.value, m.just }

func (m Maybe) String() string {
	if !m.just {
		return "nothing"
	}
	return fmt.Sprintf("just(%v)", m.value)
}

// FromJust returns the value held by m.
// Panics with [ErrEmptyAccess] when m is empty.
func FromJust(m Maybe) any {
	if !m.just {
		panic(ErrEmptyAccess)
	}
	return m.value
}

// FromJustAs returns the value held by m as a T.
// Panics with [ErrEmptyAccess] when m is empty and with [ShapeError] when
// the value is not a T.
func FromJustAs[T any](m Maybe) T {
	v, ok := FromJust(m).(T)
	if !ok {
		shapeViolation("from_just", "value %v is %T", m.value, m.value)
	}
	return v
}

// FromMaybe returns the value held by m, or def when m is empty.
func FromMaybe(def any, m Maybe) any {
	if m.just {
		return m.value
	}
	return def
}

// MaybeOf returns f applied to the value held by m, or def when m is empty.
func MaybeOf(def any, f func(any) any, m Maybe) any {
	if m.just {
		return f(m.value)
	}
	return def
}

// MaybeWhen returns Just(x) when cond holds and Nothing otherwise.
func MaybeWhen(cond bool, x any) Maybe {
	if cond {
		return Just(x)
	}
	return Nothing()
}

// MapMaybe applies f to the value held by m.
func MapMaybe(m Maybe, f func(any) any) Maybe {
	if !m.just {
		return m
	}
	return Just(f(m.value))
}

// FlatMapMaybe sequences two partial computations.
func FlatMapMaybe(m Maybe, f func(any) Maybe) Maybe {
	if !m.just {
		return m
	}
	return f(m.value)
}

func maybeEqual(a, b any) bool {
	ma, mb := a.(Maybe), b.(Maybe)
	if ma.just != mb.just {
		return false
	}
	return !ma.just || Equal(ma.value, mb.value)
}

// maybeLess orders Nothing before every Just.
func maybeLess(a, b any) bool {
	ma, mb := a.(Maybe), b.(Maybe)
	if !mb.just {
		return false
	}
	return !ma.just || Less(ma.value, mb.value)
}

func maybeHash(x any) uint64 {
	m := x.(Maybe)
	if !m.just {
		return hashOrdered("nothing")
	}
	return hashOrdered("just", m.value)
}

func maybeAp(fs, xs any) any {
	mf, mx := fs.(Maybe), asMaybe("ap", xs)
	if !mf.just || !mx.just {
		return Nothing()
	}
	return Just(asFunc("ap", mf.value)(mx.value))
}

func maybeFlatten(xss any) any {
	m := xss.(Maybe)
	if !m.just {
		return m
	}
	return asMaybe("flatten", m.value)
}

func maybeConcat(a, b any) any {
	if ma := a.(Maybe); ma.just {
		return ma
	}
	return asMaybe("concat", b)
}

func maybeFindIf(xs any, pred func(any) bool) Maybe {
	m := xs.(Maybe)
	if m.just && pred(m.value) {
		return m
	}
	return Nothing()
}

func maybeAnyOf(xs any, pred func(any) bool) bool {
	m := xs.(Maybe)
	return m.just && pred(m.value)
}

func maybeFoldLeft(xs, state any, f func(acc, x any) any) any {
	if m := xs.(Maybe); m.just {
		return f(state, m.value)
	}
	return state
}

func maybeFoldRight(xs, state any, f func(x, acc any) any) any {
	if m := xs.(Maybe); m.just {
		return f(m.value, state)
	}
	return state
}

func asMaybe(op string, x any) Maybe {
	m, ok := x.(Maybe)
	if !ok {
		shapeViolation(op, "expected a maybe, got %T", x)
	}
	return m
}

func init() {
	Implement(EqualMethod, maybeEqual, MaybeTag, MaybeTag)
	Implement(LessMethod, maybeLess, MaybeTag, MaybeTag)
	Implement(HashMethod, maybeHash, MaybeTag)
	Implement(TransformMethod, func(xs any, f func(any) any) any { return MapMaybe(xs.(Maybe), f) }, MaybeTag)
	Implement(LiftMethod, func(x any) any { return Just(x) }, MaybeTag)
	Implement(ApMethod, maybeAp, MaybeTag)
	Implement(FlattenMethod, maybeFlatten, MaybeTag)
	Implement(EmptyMethod, func() any { return Nothing() }, MaybeTag)
	Implement(ConcatMethod, maybeConcat, MaybeTag)
	Implement(FindIfMethod, maybeFindIf, MaybeTag)
	Implement(AnyOfMethod, maybeAnyOf, MaybeTag)
	Implement(FoldLeftMethod, maybeFoldLeft, MaybeTag)
	Implement(FoldRightMethod, maybeFoldRight, MaybeTag)
}
