// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hetero provides generic algorithms over heterogeneous containers,
// selected by tag dispatch.
//
// Every value belongs to a family identified by a [Tag]. Algorithms such as
// [Transform], [FoldLeft], [Filter], [Equal] or [FindIf] look up the
// implementation registered for the families of their operands and fail
// fast with a typed panic when the family lacks the required capability.
//
// # Design Philosophy
//
// hetero provides:
//   - One algorithm name per operation, working uniformly across families
//   - Minimal complete definitions: a family implements a few methods and
//     receives every derived algorithm of the capability
//   - Value semantics: containers are immutable and algorithms return new
//     structures of the same family
//
// # Tags
//
// [TagOf] resolves the family of any value:
//
//   - nil resolves to [NilTag]
//   - values implementing [Tagged] declare their tag
//   - Go types adopted with [Adopt] or [AdoptType] use the adopted tag
//   - every other Go type is a family of its own
//
// Built-in families: [Tuple], [Maybe], [Either], [Pair], [Lazy], [Set],
// [Map], [Range] and [Type].
//
// # Dispatch
//
// A [Method] is a typed operation identifier. [Implement] registers an
// exact implementation for one or two tags; [ImplementWhen] registers a
// conditional implementation guarded by a [Condition]. Resolution tries the
// exact match first, then conditional implementations in registration
// order. A method that does not resolve panics with [*CapabilityError]
// before the algorithm visits any element.
//
// A [Capability] groups the methods of a concept. [Models] reports whether
// a tag provides all of them:
//
//   - [Comparable]: equal
//   - [Orderable]: less
//   - [Hashable]: hash
//   - [Foldable]: fold_left
//   - [Iterable]: at, drop_front, is_empty
//   - [Searchable]: find_if, any_of (derived for every Iterable)
//   - [Functor], [Applicative], [Monad], [MonadPlus]: transform, lift and
//     ap, flatten, empty and concat
//   - [Product]: first, second
//   - [Sequence]: all of the above plus make
//
// # Sequences
//
// [Tuple] is the canonical Sequence. Structural algorithms visit elements
// left to right and check their preconditions before calling user
// functions: [ZipWith] panics with [*ShapeError] on a length mismatch,
// [Sort] panics with [*CapabilityError] when two element families are not
// ordered, and index access out of range panics with [*ShapeError].
//
//	xs := hetero.MakeTuple(1, "two", 3.0)
//	ys := hetero.Transform(xs, func(x any) any { return fmt.Sprint(x) })
//	n := hetero.Length(ys) // 3
//
// # Equality
//
// [Equal] between values of the same family uses the family's Comparable
// instance and panics when there is none. Values of different families are
// unequal unless a cross-family implementation is registered; numeric Go
// values compare by value across kinds.
//
// # Search
//
// [FindIf], [AnyOf] and the algorithms built on them stop at the first
// element that decides the result, so they terminate on infinite Iterable
// structures whenever such an element exists.
//
// # Optional Values
//
// [Maybe] and [Either] are the result types of partial operations. [Lazy]
// defers a computation until [Eval], which runs bind and map chains of any
// depth iteratively.
//
// # Logging
//
// The registry logs registrations and dispatch misses to a
// [go.uber.org/zap] logger installed with [SetLogger]. The default logger
// discards everything.
package hetero
