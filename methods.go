// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero

// Method catalog.
// Each capability lists its minimal complete definition; every other
// algorithm of the family is derived from these methods.

// Comparable, Orderable, Hashable.
var (
	EqualMethod = NewMethod[func(a, b any) bool]("equal", "Comparable", 2)
	LessMethod  = NewMethod[func(a, b any) bool]("less", "Orderable", 2)
	HashMethod  = NewMethod[func(x any) uint64]("hash", "Hashable", 1)
)

// Foldable.
var (
	FoldLeftMethod  = NewMethod[func(xs, state any, f func(acc, x any) any) any]("fold_left", "Foldable", 1)
	FoldRightMethod = NewMethod[func(xs, state any, f func(x, acc any) any) any]("fold_right", "Foldable", 1)
	LengthMethod    = NewMethod[func(xs any) int]("length", "Foldable", 1)
)

// Iterable.
var (
	AtMethod        = NewMethod[func(xs any, n int) any]("at", "Iterable", 1)
	DropFrontMethod = NewMethod[func(xs any, n int) any]("drop_front", "Iterable", 1)
	IsEmptyMethod   = NewMethod[func(xs any) bool]("is_empty", "Iterable", 1)
)

// Searchable.
var (
	FindIfMethod = NewMethod[func(xs any, pred func(any) bool) Maybe]("find_if", "Searchable", 1)
	AnyOfMethod  = NewMethod[func(xs any, pred func(any) bool) bool]("any_of", "Searchable", 1)
)

// Functor, Applicative, Monad, MonadPlus.
var (
	TransformMethod = NewMethod[func(xs any, f func(any) any) any]("transform", "Functor", 1)
	LiftMethod      = NewMethod[func(x any) any]("lift", "Applicative", 1)
	ApMethod        = NewMethod[func(fs, xs any) any]("ap", "Applicative", 1)
	FlattenMethod   = NewMethod[func(xss any) any]("flatten", "Monad", 1)
	EmptyMethod     = NewMethod[func() any]("empty", "MonadPlus", 1)
	ConcatMethod    = NewMethod[func(a, b any) any]("concat", "MonadPlus", 1)
	FilterMethod    = NewMethod[func(xs any, pred func(any) bool) any]("filter", "MonadPlus", 1)
)

// Product.
var (
	FirstMethod  = NewMethod[func(p any) any]("first", "Product", 1)
	SecondMethod = NewMethod[func(p any) any]("second", "Product", 1)
)

// Construction and conversion.
var (
	MakeMethod    = NewMethod[func(xs ...any) any]("make", "Sequence", 1)
	ConvertMethod = NewMethod[func(x any) any]("to", "Convertible", 2)
)

// Capabilities.
var (
	Comparable  = NewCapability("Comparable", nil, EqualMethod)
	Orderable   = NewCapability("Orderable", nil, LessMethod)
	Hashable    = NewCapability("Hashable", nil, HashMethod)
	Foldable    = NewCapability("Foldable", nil, FoldLeftMethod)
	Iterable    = NewCapability("Iterable", nil, AtMethod, DropFrontMethod, IsEmptyMethod)
	Searchable  = NewCapability("Searchable", nil, FindIfMethod, AnyOfMethod)
	Functor     = NewCapability("Functor", nil, TransformMethod)
	Applicative = NewCapability("Applicative", []*Capability{Functor}, LiftMethod, ApMethod)
	Monad       = NewCapability("Monad", []*Capability{Applicative}, FlattenMethod)
	MonadPlus   = NewCapability("MonadPlus", []*Capability{Monad}, EmptyMethod, ConcatMethod)
	Product     = NewCapability("Product", nil, FirstMethod, SecondMethod)
	Sequence    = NewCapability("Sequence",
		[]*Capability{Iterable, Foldable, Searchable, MonadPlus, Comparable, Orderable},
		MakeMethod)
)
