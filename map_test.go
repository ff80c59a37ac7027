// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/hetero"
	"code.hybscloud.com/hetero/laws"
)

func sampleMap() hetero.Map {
	return hetero.MakeMap(
		hetero.MakePair("name", "hana"),
		hetero.MakePair(1, tuple(1, 2)),
		hetero.MakePair(hetero.TypeFor[int](), "int"),
	)
}

func TestMapLookup(t *testing.T) {
	m := sampleMap()
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, hetero.Just("hana"), m.Lookup("name"))
	assert.Equal(t, hetero.Just(tuple(1, 2)), m.Lookup(1.0))
	assert.Equal(t, hetero.Just("int"), m.Lookup(hetero.TypeOfValue(0)))
	assert.True(t, m.Lookup("missing").IsNothing())
	assert.True(t, m.Contains(1))
	assert.False(t, m.Contains(2))
}

func TestMapSearchable(t *testing.T) {
	m := sampleMap()
	assert.Equal(t, hetero.Just("hana"), hetero.Find(m, "name"))
	assert.True(t, hetero.Find(m, "hana").IsNothing())
	assert.True(t, hetero.Contains(m, "name"))
	assert.False(t, hetero.Contains(m, "hana"))
	assert.True(t, hetero.IsSubset(tuple("name", 1), m))
}

func TestMapFirstEntryWins(t *testing.T) {
	m := hetero.MakeMap(hetero.MakePair("k", 1), hetero.MakePair("k", 2))
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, hetero.Just(1), m.Lookup("k"))

	assert.Equal(t, m, m.Insert("k", 3))
	m2 := m.Insert("j", 3)
	assert.Equal(t, 2, m2.Len())
	assert.Equal(t, 1, m.Len())
}

func TestMapErase(t *testing.T) {
	m := sampleMap().Erase(1)
	assert.Equal(t, 2, m.Len())
	assert.False(t, m.Contains(1))
	assert.Equal(t, m, m.Erase(1))

	var zero hetero.Map
	assert.Equal(t, 1, zero.Insert("k", "v").Len())
}

func TestMapKeysValues(t *testing.T) {
	m := sampleMap()
	requireEqual(t, tuple("name", 1, hetero.TypeFor[int]()), m.Keys())
	requireEqual(t, tuple("hana", tuple(1, 2), "int"), m.Values())
	assert.Len(t, m.Entries(), 3)
	assert.Equal(t, "{a: 1}", hetero.MakeMap(hetero.MakePair("a", 1)).String())
}

func TestMapEquality(t *testing.T) {
	a := hetero.MakeMap(hetero.MakePair("x", 1), hetero.MakePair("y", 2))
	b := hetero.MakeMap(hetero.MakePair("y", 2.0), hetero.MakePair("x", 1))
	requireEqual(t, a, b)
	assert.Equal(t, hetero.Hash(a), hetero.Hash(b))
	assert.False(t, hetero.Equal(a, hetero.MakeMap(hetero.MakePair("x", 1), hetero.MakePair("y", 3))))
	assert.False(t, hetero.Equal(a, hetero.MakeMap(hetero.MakePair("x", 1))))
}

func TestMapFoldsPairs(t *testing.T) {
	m := hetero.MakeMap(hetero.MakePair("a", 1), hetero.MakePair("b", 2))
	sum := hetero.FoldLeft(m, 0, func(acc, e any) any { return acc.(int) + hetero.Second(e).(int) })
	assert.Equal(t, 3, sum)
	requireEqual(t, tuple(hetero.MakePair("a", 1), hetero.MakePair("b", 2)), hetero.To(hetero.TupleTag, m))
}

func TestMapFromPairs(t *testing.T) {
	m := hetero.To(hetero.MapTag, tuple(hetero.MakePair(1, "one"), hetero.MakePair(2, "two")))
	requireEqual(t, hetero.MakeMap(hetero.MakePair(2, "two"), hetero.MakePair(1, "one")), m)

	var shapeErr *hetero.ShapeError
	require.ErrorAs(t, panicError(t, func() { hetero.To(hetero.MapTag, tuple(1, 2)) }), &shapeErr)
}

func TestMapLaws(t *testing.T) {
	maps := []any{
		hetero.MakeMap(),
		hetero.MakeMap(hetero.MakePair(1, "a")),
		hetero.MakeMap(hetero.MakePair(1.0, "a")),
		hetero.MakeMap(hetero.MakePair(1, "b")),
	}
	require.NoError(t, laws.Comparable(maps))
	require.NoError(t, laws.Foldable(maps))
}
