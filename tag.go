// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero

import (
	"reflect"
	"sync"

	"go.uber.org/zap"
)

// Tag identifies the family of algorithm implementations that applies to a value.
// Tags are compared by identity: two tags created by separate [NewTag] calls
// are distinct even when they share a name. The zero Tag is invalid.
type Tag struct {
	d *tagDescriptor
}

type tagDescriptor struct {
	name string
	typ  reflect.Type // non-nil only for fallback tags
}

// NewTag creates a new family tag.
func NewTag(name string) Tag {
	return Tag{d: &tagDescriptor{name: name}}
}

// String returns the tag name.
func (t Tag) String() string {
	if t.d == nil {
		return "<invalid tag>"
	}
	return t.d.name
}

// IsValid reports whether t was produced by [NewTag] or [TagOf].
func (t Tag) IsValid() bool { return t.d != nil }

// Type returns the Go type a fallback tag stands for.
// Family tags return nil.
func (t Tag) Type() reflect.Type {
	if t.d == nil {
		return nil
	}
	return t.d.typ
}

// Tagged is implemented by values that declare their own family.
type Tagged interface {
	Tag() Tag
}

// Built-in family tags.
var (
	NilTag    = NewTag("nil")
	TupleTag  = NewTag("tuple")
	MaybeTag  = NewTag("maybe")
	EitherTag = NewTag("either")
	PairTag   = NewTag("pair")
	LazyTag   = NewTag("lazy")
	SetTag    = NewTag("set")
	MapTag    = NewTag("map")
	RangeTag  = NewTag("range")
	TypeTag   = NewTag("type")
)

var (
	adopted   sync.Map // reflect.Type → Tag
	fallbacks sync.Map // reflect.Type → Tag
)

// TagOf resolves the family tag of x.
//
// Resolution order:
//   - nil resolves to [NilTag]
//   - values implementing [Tagged] with a valid tag use it
//   - Go types registered through [Adopt] or [AdoptType] use the adopted tag
//   - any other value is its own family: one canonical tag per dynamic Go type
//
// TagOf never fails and never recurses.
func TagOf(x any) Tag {
	if x == nil {
		return NilTag
	}
	if v, ok := x.(Tagged); ok {
		if t := v.Tag(); t.IsValid() {
			return t
		}
	}
	typ := reflect.TypeOf(x)
	if t, ok := adopted.Load(typ); ok {
		return t.(Tag)
	}
	return fallbackTag(typ)
}

// TagFor returns the tag values of Go type T resolve to.
// For types implementing [Tagged], the tag declared by a zero value is
// returned; pointer types are probed with a pointer to a zero value.
func TagFor[T any]() Tag {
	typ := reflect.TypeFor[T]()
	var probe any
	switch typ.Kind() {
	case reflect.Interface:
	case reflect.Pointer:
		probe = reflect.New(typ.Elem()).Interface()
	default:
		var zero T
		probe = zero
	}
	if v, ok := probe.(Tagged); ok {
		if t := v.Tag(); t.IsValid() {
			return t
		}
	}
	if t, ok := adopted.Load(typ); ok {
		return t.(Tag)
	}
	return fallbackTag(typ)
}

func fallbackTag(typ reflect.Type) Tag {
	if t, ok := fallbacks.Load(typ); ok {
		return t.(Tag)
	}
	t, _ := fallbacks.LoadOrStore(typ, Tag{d: &tagDescriptor{name: typ.String(), typ: typ}})
	return t.(Tag)
}

// Adopt makes every value of Go type T resolve to tag.
// This is the plugin surface for foreign types that cannot implement [Tagged]:
// adopt the type, then register implementations for tag with [Implement].
func Adopt[T any](tag Tag) {
	AdoptType(reflect.TypeFor[T](), tag)
}

// AdoptType is the reflect-based variant of [Adopt].
func AdoptType(typ reflect.Type, tag Tag) {
	if typ == nil {
		panic("hetero: AdoptType with nil type")
	}
	if !tag.IsValid() {
		panic("hetero: AdoptType with invalid tag")
	}
	if prev, loaded := adopted.Swap(typ, tag); loaded && prev.(Tag) != tag {
		currentLogger().Warn("type re-adopted",
			zap.Stringer("type", typ),
			zap.Stringer("previous", prev.(Tag)),
			zap.Stringer("tag", tag))
	}
	registry.invalidate()
	currentLogger().Debug("type adopted", zap.Stringer("type", typ), zap.Stringer("tag", tag))
}
