// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero

import (
	"sync"

	"go.uber.org/zap"
)

// Method identifies an operation whose implementation is selected by the tags
// of its operands. F is the Go function type of every implementation, so
// registration and lookup are checked by the compiler.
//
// Unary methods dispatch on one tag, binary methods on two (equality,
// ordering and conversion across families).
type Method[F any] struct {
	d *methodDescriptor
}

type methodDescriptor struct {
	name       string
	capability string
	arity      int
}

// NewMethod declares a method. capability names the capability reported in
// [CapabilityError] when the method does not resolve. arity must be 1 or 2.
func NewMethod[F any](name, capability string, arity int) Method[F] {
	if arity != 1 && arity != 2 {
		panic("hetero: method arity must be 1 or 2")
	}
	return Method[F]{d: &methodDescriptor{name: name, capability: capability, arity: arity}}
}

// String returns the method name.
func (m Method[F]) String() string { return m.d.name }

// Arity returns the number of tags the method dispatches on.
func (m Method[F]) Arity() int { return m.d.arity }

// Capability returns the name of the capability the method belongs to.
func (m Method[F]) Capability() string { return m.d.capability }

func (m Method[F]) descriptor() *methodDescriptor { return m.d }

// MethodID is the type-erased view of a [Method], used to list the
// required methods of a [Capability].
type MethodID interface {
	String() string
	descriptor() *methodDescriptor
}

// registryKey supports at most two dispatch tags.
type registryKey struct {
	m      *methodDescriptor
	t0, t1 Tag
}

func keyOf(m *methodDescriptor, tags []Tag) registryKey {
	k := registryKey{m: m, t0: tags[0]}
	if len(tags) > 1 {
		k.t1 = tags[1]
	}
	return k
}

type conditional struct {
	cond Condition
	impl any
}

type resolution struct {
	impl any
	ok   bool
}

// methodTable maps (method, tags) to implementations.
// Writes are expected during package initialization; reads are lock-free
// once a key has been resolved.
type methodTable struct {
	mu     sync.RWMutex
	exact  map[registryKey]any
	when   map[*methodDescriptor][]conditional
	cache  sync.Map // registryKey → resolution
	models sync.Map // modelsKey → bool
}

var registry = &methodTable{
	exact: make(map[registryKey]any),
	when:  make(map[*methodDescriptor][]conditional),
}

func (r *methodTable) invalidate() {
	r.cache.Clear()
	r.models.Clear()
}

// resolver carries the set of keys being resolved on the current call path.
// A key that is re-entered through a condition does not resolve, so
// mutually dependent conditions terminate.
type resolver struct {
	visiting map[registryKey]struct{}
}

func (r *methodTable) lookup(res *resolver, m *methodDescriptor, tags []Tag) (any, bool) {
	key := keyOf(m, tags)
	r.mu.RLock()
	impl, ok := r.exact[key]
	conds := r.when[m]
	r.mu.RUnlock()
	if ok {
		return impl, true
	}
	if len(conds) == 0 {
		return nil, false
	}
	if _, active := res.visiting[key]; active {
		return nil, false
	}
	if res.visiting == nil {
		res.visiting = make(map[registryKey]struct{})
	}
	res.visiting[key] = struct{}{}
	defer delete(res.visiting, key)
	for _, c := range conds {
		if c.cond.holds(res, tags) {
			return c.impl, true
		}
	}
	return nil, false
}

// resolve is the cached top-level lookup.
func (r *methodTable) resolve(m *methodDescriptor, tags []Tag) (any, bool) {
	key := keyOf(m, tags)
	if v, ok := r.cache.Load(key); ok {
		res := v.(resolution)
		return res.impl, res.ok
	}
	impl, ok := r.lookup(&resolver{}, m, tags)
	r.cache.Store(key, resolution{impl: impl, ok: ok})
	return impl, ok
}

func checkArity(m *methodDescriptor, tags []Tag) {
	if len(tags) != m.arity {
		panic("hetero: method " + m.name + " dispatched with wrong number of tags")
	}
	for _, t := range tags {
		if !t.IsValid() {
			panic("hetero: method " + m.name + " dispatched on invalid tag")
		}
	}
}

// Implement registers impl as the exact implementation of m for tags.
// A later registration for the same tags replaces the earlier one.
func Implement[F any](m Method[F], impl F, tags ...Tag) {
	checkArity(m.d, tags)
	key := keyOf(m.d, tags)
	registry.mu.Lock()
	_, replaced := registry.exact[key]
	registry.exact[key] = impl
	registry.mu.Unlock()
	registry.invalidate()

	l := currentLogger()
	if replaced {
		l.Warn("implementation replaced", zap.String("method", m.d.name), zap.Stringers("tags", tags))
		return
	}
	l.Debug("implementation registered", zap.String("method", m.d.name), zap.Stringers("tags", tags))
}

// ImplementWhen registers impl as a conditional implementation of m.
// Conditional implementations are tried in registration order after the
// exact lookup misses.
func ImplementWhen[F any](m Method[F], cond Condition, impl F) {
	if cond == nil {
		panic("hetero: ImplementWhen with nil condition")
	}
	registry.mu.Lock()
	registry.when[m.d] = append(registry.when[m.d], conditional{cond: cond, impl: impl})
	registry.mu.Unlock()
	registry.invalidate()
	currentLogger().Debug("conditional implementation registered", zap.String("method", m.d.name))
}

// Lookup returns the implementation of m selected for tags.
// Resolution order: exact match, then the first conditional implementation
// whose condition holds. ok is false when nothing matches.
func Lookup[F any](m Method[F], tags ...Tag) (impl F, ok bool) {
	checkArity(m.d, tags)
	v, ok := registry.resolve(m.d, tags)
	if !ok {
		return impl, false
	}
	return v.(F), true
}

// Resolves reports whether m has an implementation for tags.
func Resolves[F any](m Method[F], tags ...Tag) bool {
	_, ok := Lookup(m, tags...)
	return ok
}

// dispatch returns the implementation of m for tags or panics with a
// [CapabilityError] naming the method, the tags and the missing capability.
func dispatch[F any](m Method[F], tags ...Tag) F {
	impl, ok := Lookup(m, tags...)
	if !ok {
		unimplemented(m.d, tags)
	}
	return impl
}

// unimplemented reports a dispatch miss.
// Extracted as a noinline function so that dispatch remains inlineable.
//
//go:noinline
func unimplemented(m *methodDescriptor, tags []Tag) {
	err := &CapabilityError{
		Method:     m.name,
		Tags:       append([]Tag(nil), tags...),
		Capability: m.capability,
	}
	currentLogger().Debug("dispatch miss", zap.String("method", m.name), zap.Stringers("tags", tags))
	panic(err)
}
