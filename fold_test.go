// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/hetero"
)

func show(acc, x any) any { return fmt.Sprintf("f(%v, %v)", acc, x) }

func showRight(x, acc any) any { return fmt.Sprintf("f(%v, %v)", x, acc) }

func TestFoldLeftOrder(t *testing.T) {
	got := hetero.FoldLeft(tuple(1, "a", 2.5), "s", show)
	assert.Equal(t, "f(f(f(s, 1), a), 2.5)", got)
	assert.Equal(t, "s", hetero.FoldLeft(hetero.Tuple{}, "s", show))
}

func TestFoldRightOrder(t *testing.T) {
	got := hetero.FoldRight(tuple(1, "a", 2.5), "s", showRight)
	assert.Equal(t, "f(1, f(a, f(2.5, s)))", got)
}

func TestFoldRightDerivedFromFoldLeft(t *testing.T) {
	// Range registers fold_left only.
	got := hetero.FoldRight(hetero.MakeRange(0, 3), "s", showRight)
	assert.Equal(t, "f(0, f(1, f(2, s)))", got)
}

func TestFoldOne(t *testing.T) {
	xs := tuple(1, 2, 3)
	assert.Equal(t, "f(f(1, 2), 3)", hetero.FoldLeft1(xs, show))
	assert.Equal(t, "f(1, f(2, 3))", hetero.FoldRight1(xs, showRight))
	assert.Equal(t, 7, hetero.FoldLeft1(tuple(7), show))

	var shapeErr *hetero.ShapeError
	require.ErrorAs(t, panicError(t, func() { hetero.FoldLeft1(hetero.Tuple{}, show) }), &shapeErr)
	require.ErrorAs(t, panicError(t, func() { hetero.FoldRight1(hetero.Nothing(), showRight) }), &shapeErr)
}

func TestFoldMaybe(t *testing.T) {
	assert.Equal(t, "f(s, 1)", hetero.FoldLeft(hetero.Just(1), "s", show))
	assert.Equal(t, "s", hetero.FoldLeft(hetero.Nothing(), "s", show))
	assert.Equal(t, 1, hetero.Length(hetero.Just(1)))
	assert.Equal(t, 0, hetero.Length(hetero.Nothing()))
}

func TestLength(t *testing.T) {
	assert.Equal(t, 0, hetero.Length(hetero.Tuple{}))
	assert.Equal(t, 3, hetero.Length(tuple(1, "a", nil)))
	assert.Equal(t, 2, hetero.Length(hetero.MakePair(1, 2)))
	assert.Equal(t, 5, hetero.Length(hetero.MakeRange(5, 10)))

	var capErr *hetero.CapabilityError
	require.ErrorAs(t, panicError(t, func() { hetero.Length(hetero.Right(1)) }), &capErr)
	assert.Equal(t, "length", capErr.Method)
	assert.Equal(t, "Foldable", capErr.Capability)
}

func TestUnpack(t *testing.T) {
	got := hetero.Unpack(tuple(1, 2, 3), func(xs ...any) any {
		return xs[0].(int) + xs[1].(int) + xs[2].(int)
	})
	assert.Equal(t, 6, got)

	got = hetero.Unpack(hetero.MakePair("a", "b"), func(xs ...any) any { return len(xs) })
	assert.Equal(t, 2, got)
}

func TestForEach(t *testing.T) {
	var seen []any
	hetero.ForEach(tuple(1, "a"), func(x any) { seen = append(seen, x) })
	assert.Equal(t, []any{1, "a"}, seen)
}

func TestCount(t *testing.T) {
	xs := tuple(1, 2, 1.0, "1", uint8(1))
	assert.Equal(t, 3, hetero.Count(xs, 1))
	assert.Equal(t, 1, hetero.Count(xs, "1"))
	assert.Equal(t, 3, hetero.CountIf(ints(6), isEven))
}

func TestMaximumMinimum(t *testing.T) {
	xs := tuple(3, 1.5, uint(7), -2, 7.0)
	assert.Equal(t, uint(7), hetero.Maximum(xs))
	assert.Equal(t, -2, hetero.Minimum(xs))
	assert.Equal(t, "b", hetero.Maximum(tuple("a", "b")))

	byLen := func(a, b any) bool { return len(a.(string)) < len(b.(string)) }
	assert.Equal(t, "ccc", hetero.MaximumBy(tuple("a", "ccc", "bb", "ddd"), byLen))
	assert.Equal(t, "a", hetero.MinimumBy(tuple("a", "ccc", "e"), byLen))

	var shapeErr *hetero.ShapeError
	require.ErrorAs(t, panicError(t, func() { hetero.Maximum(hetero.Tuple{}) }), &shapeErr)

	var capErr *hetero.CapabilityError
	require.ErrorAs(t, panicError(t, func() { hetero.Maximum(tuple(1, "a")) }), &capErr)
}
