// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/hetero"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randElem returns a random int, float64 or string.
func randElem(rng *rand.Rand) any {
	switch rng.IntN(3) {
	case 0:
		return randInt(rng)
	case 1:
		return float64(randInt(rng)) / 4
	default:
		b := make([]byte, rng.IntN(5))
		for i := range b {
			b[i] = byte(rng.IntN(26) + 'a')
		}
		return string(b)
	}
}

// randInts returns a tuple of [0, 16) random ints.
func randInts(rng *rand.Rand) hetero.Tuple {
	xs := make([]any, rng.IntN(16))
	for i := range xs {
		xs[i] = randInt(rng)
	}
	return hetero.MakeTuple(xs...)
}

// randTuple returns a tuple of [0, 8) random heterogeneous elements.
func randTuple(rng *rand.Rand) hetero.Tuple {
	xs := make([]any, rng.IntN(8))
	for i := range xs {
		xs[i] = randElem(rng)
	}
	return hetero.MakeTuple(xs...)
}

// --- Group 1: Sequence Algorithms ---

// TestPropertyReverseInvolution: Reverse(Reverse(xs)) ≡ xs
func TestPropertyReverseInvolution(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		xs := randTuple(rng)
		got := hetero.Reverse(hetero.Reverse(xs))
		if !hetero.Equal(got, xs) {
			t.Fatalf("reverse involution: %v != %v", got, xs)
		}
	}
}

// TestPropertySortOrdered: Sort(xs) is ordered and a permutation of xs.
func TestPropertySortOrdered(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		xs := randInts(rng)
		sorted := hetero.Sort(xs)
		if sorted.Len() != xs.Len() {
			t.Fatalf("sort length: %d != %d", sorted.Len(), xs.Len())
		}
		for i := 1; i < sorted.Len(); i++ {
			if hetero.Less(sorted.At(i), sorted.At(i-1)) {
				t.Fatalf("sort order: %v at %d", sorted, i)
			}
		}
		for _, x := range xs.Elems() {
			if hetero.Count(xs, x) != hetero.Count(sorted, x) {
				t.Fatalf("sort permutation: %v is not a permutation of %v", sorted, xs)
			}
		}
	}
}

// TestPropertySortByStable: SortBy keeps equivalent elements in input order.
func TestPropertySortByStable(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	byKey := func(a, b any) bool { return hetero.First(a).(int) < hetero.First(b).(int) }
	for range propertyN {
		xs := make([]any, rng.IntN(16))
		for i := range xs {
			xs[i] = hetero.MakePair(rng.IntN(4), i)
		}
		sorted := hetero.SortBy(hetero.MakeTuple(xs...), byKey)
		for i := 1; i < sorted.Len(); i++ {
			prev, cur := sorted.At(i-1), sorted.At(i)
			if hetero.First(prev) == hetero.First(cur) && hetero.Second(prev).(int) > hetero.Second(cur).(int) {
				t.Fatalf("sort_by stability: %v", sorted)
			}
		}
	}
}

// TestPropertyPartitionPreservesElements: Partition splits xs without loss.
func TestPropertyPartitionPreservesElements(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		xs := randInts(rng)
		p := hetero.Partition(xs, isEven)
		yes, no := p.Fst.(hetero.Tuple), p.Snd.(hetero.Tuple)
		if yes.Len()+no.Len() != xs.Len() {
			t.Fatalf("partition lengths: %d + %d != %d", yes.Len(), no.Len(), xs.Len())
		}
		if !hetero.AllOf(yes, isEven) || hetero.AnyOf(no, isEven) {
			t.Fatalf("partition predicate: %v", p)
		}
		if !hetero.Equal(yes, hetero.Filter(xs, isEven)) {
			t.Fatalf("partition vs filter: %v != %v", yes, hetero.Filter(xs, isEven))
		}
	}
}

// TestPropertyConcatLength: Length(Concat(a, b)) ≡ Length(a) + Length(b)
func TestPropertyConcatLength(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a, b := randTuple(rng), randTuple(rng)
		ab := hetero.Concat(a, b)
		if hetero.Length(ab) != a.Len()+b.Len() {
			t.Fatalf("concat length: %v ++ %v = %v", a, b, ab)
		}
		if a.Len() > 0 && !hetero.Equal(hetero.Front(ab), a.At(0)) {
			t.Fatalf("concat front: %v ++ %v = %v", a, b, ab)
		}
	}
}

// TestPropertyTakeDropSplit: Concat(Take(xs, n), DropFront(xs, n)) ≡ xs
func TestPropertyTakeDropSplit(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		xs := randTuple(rng)
		n := rng.IntN(10)
		got := hetero.Concat(hetero.Take(xs, n), hetero.DropFront(xs, n).(hetero.Tuple))
		if !hetero.Equal(got, xs) {
			t.Fatalf("take/drop split at %d: %v != %v", n, got, xs)
		}
	}
}

// --- Group 2: Folds ---

// TestPropertyFoldLeftVisitsInOrder: FoldLeft collects the elements in order.
func TestPropertyFoldLeftVisitsInOrder(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		xs := randTuple(rng)
		got := hetero.FoldLeft(xs, hetero.MakeTuple(), func(acc, x any) any {
			return hetero.Append(acc.(hetero.Tuple), x)
		})
		if !hetero.Equal(got, xs) {
			t.Fatalf("fold_left order: %v != %v", got, xs)
		}
	}
}

// TestPropertyFoldRightReversed: FoldRight(xs) ≡ FoldLeft(Reverse(xs)) with flipped arguments.
func TestPropertyFoldRightReversed(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		xs := randInts(rng)
		right := hetero.FoldRight(xs, 0, func(x, acc any) any { return acc.(int)*3 + x.(int) })
		left := hetero.FoldLeft(hetero.Reverse(xs), 0, func(acc, x any) any { return acc.(int)*3 + x.(int) })
		if right != left {
			t.Fatalf("fold_right: %v != %v for %v", right, left, xs)
		}
	}
}

// --- Group 3: Equality and Hashing ---

// TestPropertyHashConsistency: Equal(a, b) implies Hash(a) == Hash(b).
func TestPropertyHashConsistency(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		n := randInt(rng)
		a := hetero.MakeTuple(n, hetero.Just(n), hetero.MakePair(n, "x"))
		b := hetero.MakeTuple(float64(n), hetero.Just(int64(n)), hetero.MakePair(float32(n), "x"))
		if !hetero.Equal(a, b) {
			t.Fatalf("equal: %v != %v", a, b)
		}
		if hetero.Hash(a) != hetero.Hash(b) {
			t.Fatalf("hash consistency: %v and %v", a, b)
		}
	}
}

// TestPropertySetIgnoresOrder: a set equals the set of its reversed input.
func TestPropertySetIgnoresOrder(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		xs := randTuple(rng)
		a := hetero.MakeSet(xs.Elems()...)
		b := hetero.MakeSet(hetero.Reverse(xs).Elems()...)
		if !hetero.Equal(a, b) || hetero.Hash(a) != hetero.Hash(b) {
			t.Fatalf("set order: %v vs %v", a, b)
		}
	}
}

// --- Group 4: Monad Laws ---

// TestPropertyTupleLeftIdentity: Chain(Lift(a), f) ≡ f(a)
func TestPropertyTupleLeftIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x any) any { return hetero.MakeTuple(x, x.(int)*2) }
	for range propertyN {
		a := randInt(rng)
		left := hetero.Chain(hetero.Lift(hetero.TupleTag, a).(hetero.Tuple), f)
		if !hetero.Equal(left, f(a)) {
			t.Fatalf("left identity: %v != %v (a=%d)", left, f(a), a)
		}
	}
}

// TestPropertyTupleAssociativity: Chain(Chain(m, f), g) ≡ Chain(m, x => Chain(f(x), g))
func TestPropertyTupleAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x any) any { return hetero.MakeTuple(x, x.(int)+1) }
	g := func(x any) any {
		n := x.(int) % 3
		if n < 0 {
			n = -n
		}
		return hetero.Replicate(hetero.TupleTag, x, n)
	}
	for range propertyN {
		m := randInts(rng)
		left := hetero.Chain(hetero.Chain(m, f), g)
		right := hetero.Chain(m, func(x any) any { return hetero.Chain(f(x).(hetero.Tuple), g) })
		if !hetero.Equal(left, right) {
			t.Fatalf("associativity: %v != %v (m=%v)", left, right, m)
		}
	}
}

// TestPropertyTupleFunctorComposition: Transform(Transform(xs, f), g) ≡ Transform(xs, g ∘ f)
func TestPropertyTupleFunctorComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x any) any { return x.(int) * 2 }
	g := func(x any) any { return x.(int) - 7 }
	for range propertyN {
		xs := randInts(rng)
		left := hetero.Transform(hetero.Transform(xs, f), g)
		right := hetero.Transform(xs, func(x any) any { return g(f(x)) })
		if !hetero.Equal(left, right) {
			t.Fatalf("functor composition: %v != %v", left, right)
		}
	}
}
