// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/hetero"
)

type describe = func(x any) string

func TestDispatchResolutionOrder(t *testing.T) {
	m := hetero.NewMethod[describe]("describe", "Describable", 1)
	exactTag, otherTag := hetero.NewTag("exact"), hetero.NewTag("other")

	always := hetero.WhenTags(func(...hetero.Tag) bool { return true })
	hetero.ImplementWhen(m, always, func(any) string { return "first conditional" })
	hetero.ImplementWhen(m, always, func(any) string { return "second conditional" })
	hetero.Implement(m, func(any) string { return "exact" }, exactTag)

	impl, ok := hetero.Lookup(m, exactTag)
	require.True(t, ok)
	assert.Equal(t, "exact", impl(nil))

	impl, ok = hetero.Lookup(m, otherTag)
	require.True(t, ok)
	assert.Equal(t, "first conditional", impl(nil))
}

func TestDispatchMissing(t *testing.T) {
	m := hetero.NewMethod[describe]("describe", "Describable", 1)
	tag := hetero.NewTag("bare")

	_, ok := hetero.Lookup(m, tag)
	assert.False(t, ok)
	assert.False(t, hetero.Resolves(m, tag))
}

func TestDispatchConditionOnTag(t *testing.T) {
	m := hetero.NewMethod[describe]("describe", "Describable", 1)
	wanted := hetero.NewTag("wanted")
	hetero.ImplementWhen(m, hetero.WhenTagIs(0, wanted), func(any) string { return "wanted" })

	assert.True(t, hetero.Resolves(m, wanted))
	assert.False(t, hetero.Resolves(m, hetero.NewTag("unwanted")))
}

func TestDispatchBinary(t *testing.T) {
	m := hetero.NewMethod[func(a, b any) string]("combine", "Combinable", 2)
	a, b := hetero.NewTag("a"), hetero.NewTag("b")
	hetero.Implement(m, func(any, any) string { return "ab" }, a, b)
	hetero.ImplementWhen(m, hetero.WhenSameTag(), func(any, any) string { return "same" })

	impl, ok := hetero.Lookup(m, a, b)
	require.True(t, ok)
	assert.Equal(t, "ab", impl(nil, nil))

	impl, ok = hetero.Lookup(m, b, b)
	require.True(t, ok)
	assert.Equal(t, "same", impl(nil, nil))

	assert.False(t, hetero.Resolves(m, b, a))
	assert.Panics(t, func() { hetero.Lookup(m, a) })
}

func TestDispatchMutualConditionsTerminate(t *testing.T) {
	ping := hetero.NewMethod[describe]("ping", "Pingable", 1)
	pong := hetero.NewMethod[describe]("pong", "Pongable", 1)
	pingable := hetero.NewCapability("Pingable", nil, ping)
	pongable := hetero.NewCapability("Pongable", nil, pong)

	hetero.ImplementWhen(ping, hetero.WhenModels(pongable), func(any) string { return "ping" })
	hetero.ImplementWhen(pong, hetero.WhenModels(pingable), func(any) string { return "pong" })

	tag := hetero.NewTag("loop")
	assert.False(t, hetero.Resolves(ping, tag))
	assert.False(t, hetero.Models(pingable, tag))

	// Breaking the cycle with an exact implementation resolves both.
	hetero.Implement(pong, func(any) string { return "exact pong" }, tag)
	assert.True(t, hetero.Resolves(ping, tag))
	assert.True(t, hetero.Models(pingable, tag))
}

func TestNewMethodArity(t *testing.T) {
	assert.Panics(t, func() { hetero.NewMethod[describe]("bad", "Bad", 0) })
	assert.Panics(t, func() { hetero.NewMethod[describe]("bad", "Bad", 3) })

	m := hetero.NewMethod[describe]("good", "Good", 1)
	assert.Equal(t, "good", m.String())
	assert.Equal(t, 1, m.Arity())
	assert.Equal(t, "Good", m.Capability())
}

func TestImplementWhenNilCondition(t *testing.T) {
	m := hetero.NewMethod[describe]("describe", "Describable", 1)
	assert.Panics(t, func() { hetero.ImplementWhen(m, nil, func(any) string { return "" }) })
}

func TestCapabilityError(t *testing.T) {
	err := panicError(t, func() {
		hetero.Transform(hetero.MakePair(1, 2), func(x any) any { return x })
	})
	var capErr *hetero.CapabilityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, "transform", capErr.Method)
	assert.Equal(t, []hetero.Tag{hetero.PairTag}, capErr.Tags)
	assert.Equal(t, "Functor", capErr.Capability)
	assert.Equal(t, "hetero: transform is not implemented for (pair): Functor required", err.Error())
}

func TestCapabilityErrorBeforeElements(t *testing.T) {
	calls := 0
	err := panicError(t, func() {
		hetero.Chain(hetero.MakePair(1, 2), func(x any) any {
			calls++
			return x
		})
	})
	var capErr *hetero.CapabilityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, "chain", capErr.Method)
	assert.Equal(t, "Monad", capErr.Capability)
	assert.Zero(t, calls)
}

func TestModels(t *testing.T) {
	cases := []struct {
		name string
		c    *hetero.Capability
		tag  hetero.Tag
		want bool
	}{
		{"tuple sequence", hetero.Sequence, hetero.TupleTag, true},
		{"tuple monad plus", hetero.MonadPlus, hetero.TupleTag, true},
		{"maybe monad plus", hetero.MonadPlus, hetero.MaybeTag, true},
		{"maybe sequence", hetero.Sequence, hetero.MaybeTag, false},
		{"either monad", hetero.Monad, hetero.EitherTag, true},
		{"either monad plus", hetero.MonadPlus, hetero.EitherTag, false},
		{"lazy monad", hetero.Monad, hetero.LazyTag, true},
		{"lazy comparable", hetero.Comparable, hetero.LazyTag, false},
		{"pair product", hetero.Product, hetero.PairTag, true},
		{"pair functor", hetero.Functor, hetero.PairTag, false},
		{"range searchable", hetero.Searchable, hetero.RangeTag, true},
		{"range foldable", hetero.Foldable, hetero.RangeTag, true},
		{"set iterable", hetero.Iterable, hetero.SetTag, false},
		{"map searchable", hetero.Searchable, hetero.MapTag, true},
		{"int comparable", hetero.Comparable, hetero.TagOf(1), true},
		{"int orderable", hetero.Orderable, hetero.TagOf(1), true},
		{"int hashable", hetero.Hashable, hetero.TagOf(1), true},
		{"string orderable", hetero.Orderable, hetero.TagOf(""), true},
		{"bool orderable", hetero.Orderable, hetero.TagOf(true), false},
		{"func comparable", hetero.Comparable, hetero.TagOf(func() {}), false},
		{"int foldable", hetero.Foldable, hetero.TagOf(1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, hetero.Models(tc.c, tc.tag))
		})
	}
	assert.True(t, hetero.ValueModels(hetero.Foldable, hetero.Just(1)))
}

func TestDispatchLogging(t *testing.T) {
	logs := observeLogs(t)
	m := hetero.NewMethod[describe]("logged", "Loggable", 1)
	tag := hetero.NewTag("logged")

	hetero.Implement(m, func(any) string { return "one" }, tag)
	hetero.Implement(m, func(any) string { return "two" }, tag)
	hetero.ImplementWhen(m, hetero.WhenSameTag(), func(any) string { return "three" })

	assert.Equal(t, 1, logs.FilterMessage("implementation registered").Len())
	assert.Equal(t, 1, logs.FilterMessage("implementation replaced").Len())
	assert.Equal(t, 1, logs.FilterMessage("conditional implementation registered").Len())

	entry := logs.FilterMessage("implementation replaced").All()[0]
	assert.Equal(t, "logged", entry.ContextMap()["method"])

	impl, ok := hetero.Lookup(m, tag)
	require.True(t, ok)
	assert.Equal(t, "two", impl(nil))

	_ = panicError(t, func() { hetero.Length(42) })
	assert.Equal(t, 1, logs.FilterMessage("dispatch miss").Len())
}
