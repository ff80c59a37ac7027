// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero

import (
	"fmt"
	"slices"
	"strings"
)

// Map associates distinct Hashable keys with values of any type.
// Entries keep insertion order for folding; equality ignores it.
// Map is immutable: Insert and Erase return new maps.
//
// As a Searchable structure a Map is searched by key and yields values:
// Find(m, k) returns the value stored under k.
type Map struct {
	entries []Pair
	index   hashIndex
}

// MakeMap creates a map from key/value pairs. When a key repeats, the
// first entry wins.
func MakeMap(entries ...Pair) Map {
	m := Map{index: make(hashIndex, len(entries))}
	for _, e := range entries {
		m.add(e)
	}
	return m
}

func (m *Map) add(e Pair) bool {
	h := Hash(e.Fst)
	if m.index.find(e.Fst, h, m.key) >= 0 {
		return false
	}
	m.index[h] = append(m.index[h], len(m.entries))
	m.entries = append(m.entries, e)
	return true
}

func (m Map) key(i int) any { return m.entries[i].Fst }

func (m Map) position(k any) int {
	return m.index.find(k, Hash(k), m.key)
}

// Tag implements [Tagged].
func (Map) Tag() Tag { return MapTag }

// Len returns the number of entries.
func (m Map) Len() int { return len(m.entries) }

// Lookup returns the value stored under k.
func (m Map) Lookup(k any) Maybe {
	if i := m.position(k); i >= 0 {
		return Just(m.entries[i].Snd)
	}
	return Nothing()
}

// Contains reports whether k is a key of m.
func (m Map) Contains(k any) bool { return m.position(k) >= 0 }

// Insert returns m with v stored under k. An existing entry for k is kept
// and m is returned unchanged.
func (m Map) Insert(k, v any) Map {
	if m.Contains(k) {
		return m
	}
	out := Map{entries: slices.Clone(m.entries), index: m.index.clone()}
	out.add(Pair{Fst: k, Snd: v})
	return out
}

// Erase returns m without the entry for k.
func (m Map) Erase(k any) Map {
	i := m.position(k)
	if i < 0 {
		return m
	}
	return MakeMap(slices.Delete(slices.Clone(m.entries), i, i+1)...)
}

// Keys returns the keys in insertion order.
func (m Map) Keys() Tuple {
	out := make([]any, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Fst
	}
	return tupleOf(out)
}

// Values returns the values in insertion order.
func (m Map) Values() Tuple {
	out := make([]any, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Snd
	}
	return tupleOf(out)
}

// Entries returns the key/value pairs in insertion order.
func (m Map) Entries() []Pair { return slices.Clone(m.entries) }

func (m Map) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v: %v", e.Fst, e.Snd)
	}
	b.WriteByte('}')
	return b.String()
}

func mapEqual(a, b any) bool {
	ma, mb := a.(Map), b.(Map)
	if ma.Len() != mb.Len() {
		return false
	}
	for _, e := range ma.entries {
		v, ok := mb.Lookup(e.Fst).Get()
		if !ok || !Equal(e.Snd, v) {
			return false
		}
	}
	return true
}

func mapHash(x any) uint64 {
	entries := x.(Map).entries
	elems := make([]any, len(entries))
	for i, e := range entries {
		elems[i] = e
	}
	return hashUnordered("map", elems...)
}

func mapFoldLeft(xs, state any, f func(acc, x any) any) any {
	for _, e := range xs.(Map).entries {
		state = f(state, e)
	}
	return state
}

func mapFindIf(xs any, pred func(any) bool) Maybe {
	for _, e := range xs.(Map).entries {
		if pred(e.Fst) {
			return Just(e.Snd)
		}
	}
	return Nothing()
}

func mapMake(xs ...any) any {
	entries := make([]Pair, len(xs))
	for i, x := range xs {
		entries[i] = asPair("make", x)
	}
	return MakeMap(entries...)
}

func init() {
	Implement(EqualMethod, mapEqual, MapTag, MapTag)
	Implement(HashMethod, mapHash, MapTag)
	Implement(FoldLeftMethod, mapFoldLeft, MapTag)
	Implement(LengthMethod, func(xs any) int { return xs.(Map).Len() }, MapTag)
	Implement(FindIfMethod, mapFindIf, MapTag)
	Implement(AnyOfMethod, func(xs any, pred func(any) bool) bool {
		return slices.ContainsFunc(xs.(Map).entries, func(e Pair) bool { return pred(e.Fst) })
	}, MapTag)
	Implement(MakeMethod, mapMake, MapTag)
}
