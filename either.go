// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero

import "fmt"

// Either represents a value that is either Left (error) or Right (success).
// Functor and Monad operations act on the Right value and pass Left through.
type Either struct {
	isRight bool
	value   any
}

// Left creates a Left (error) value.
func Left(e any) Either {
	return Either{value: e}
}

// Right creates a Right (success) value.
func Right(a any) Either {
	return Either{isRight: true, value: a}
}

// Tag implements [Tagged].
func (Either) Tag() Tag { return EitherTag }

// IsRight returns true if this is a Right value.
func (e Either) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or nil and false.
func (e Either) GetRight() (any, bool) {
	if e.isRight {
		return e.value, true
	}
	return nil, false
}

// GetLeft returns the Left value and true, or nil and false.
func (e Either) GetLeft() (any, bool) {
	if !e.isRight {
		return e.value, true
	}
	return nil, false
}

func (e Either) String() string {
	if e.isRight {
		return fmt.Sprintf("right(%v)", e.value)
	}
	return fmt.Sprintf("left(%v)", e.value)
}

// FromRight returns the Right value.
// Panics with [ErrWrongSide] on a Left.
func FromRight(e Either) any {
	if !e.isRight {
		panic(ErrWrongSide)
	}
	return e.value
}

// FromLeft returns the Left value.
// Panics with [ErrWrongSide] on a Right.
func FromLeft(e Either) any {
	if e.isRight {
		panic(ErrWrongSide)
	}
	return e.value
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither(e Either, onLeft, onRight func(any) any) any {
	if e.isRight {
		return onRight(e.value)
	}
	return onLeft(e.value)
}

// MapEither applies a function to the Right value.
func MapEither(e Either, f func(any) any) Either {
	if e.isRight {
		return Right(f(e.value))
	}
	return e
}

// FlatMapEither sequences two Either computations.
func FlatMapEither(e Either, f func(any) Either) Either {
	if e.isRight {
		return f(e.value)
	}
	return e
}

// MapLeftEither applies a function to the Left value.
func MapLeftEither(e Either, f func(any) any) Either {
	if e.isRight {
		return e
	}
	return Left(f(e.value))
}

func asEither(op string, x any) Either {
	e, ok := x.(Either)
	if !ok {
		shapeViolation(op, "expected an either, got %T", x)
	}
	return e
}

func eitherEqual(a, b any) bool {
	ea, eb := a.(Either), b.(Either)
	return ea.isRight == eb.isRight && Equal(ea.value, eb.value)
}

// eitherLess orders every Left before every Right.
func eitherLess(a, b any) bool {
	ea, eb := a.(Either), b.(Either)
	if ea.isRight != eb.isRight {
		return eb.isRight
	}
	return Less(ea.value, eb.value)
}

func eitherHash(x any) uint64 {
	e := x.(Either)
	if e.isRight {
		return hashOrdered("right", e.value)
	}
	return hashOrdered("left", e.value)
}

func eitherAp(fs, xs any) any {
	ef, ex := fs.(Either), asEither("ap", xs)
	if !ef.isRight {
		return ef
	}
	if !ex.isRight {
		return ex
	}
	return Right(asFunc("ap", ef.value)(ex.value))
}

func eitherFlatten(xss any) any {
	e := xss.(Either)
	if !e.isRight {
		return e
	}
	return asEither("flatten", e.value)
}

func init() {
	Implement(EqualMethod, eitherEqual, EitherTag, EitherTag)
	Implement(LessMethod, eitherLess, EitherTag, EitherTag)
	Implement(HashMethod, eitherHash, EitherTag)
	Implement(TransformMethod, func(xs any, f func(any) any) any { return MapEither(xs.(Either), f) }, EitherTag)
	Implement(LiftMethod, func(x any) any { return Right(x) }, EitherTag)
	Implement(ApMethod, eitherAp, EitherTag)
	Implement(FlattenMethod, eitherFlatten, EitherTag)
}
