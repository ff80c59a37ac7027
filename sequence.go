// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero

import "slices"

// Sequence algorithms.
//
// Every algorithm below takes and returns structures of one Sequence family
// and rebuilds its result through that family's make method. Preconditions
// on lengths, indices and element capabilities are checked before any
// user function is called.

// Make builds a structure of family tag holding xs.
func Make(tag Tag, xs ...any) any {
	return dispatch(MakeMethod, tag)(xs...)
}

// Reverse returns the elements of xs in reverse order.
func Reverse[S any](xs S) S {
	tag, elems := sequenceOf("reverse", xs)
	out := make([]any, len(elems))
	for i, e := range elems {
		out[len(elems)-1-i] = e
	}
	return rebuild[S]("reverse", tag, out)
}

// Take returns the first n elements of xs, or all of them when xs is shorter.
func Take[S any](xs S, n int) S {
	if n < 0 {
		shapeViolation("take", "negative count %d", n)
	}
	tag, elems := sequenceOf("take", xs)
	return rebuild[S]("take", tag, elems[:min(n, len(elems))])
}

// TakeWhile returns the longest prefix of xs whose elements satisfy pred.
func TakeWhile[S any](xs S, pred func(any) bool) S {
	tag, elems := sequenceOf("take_while", xs)
	n := 0
	for n < len(elems) && pred(elems[n]) {
		n++
	}
	return rebuild[S]("take_while", tag, elems[:n])
}

// DropBack returns xs without its last n elements.
func DropBack[S any](xs S, n int) S {
	if n < 0 {
		shapeViolation("drop_back", "negative count %d", n)
	}
	tag, elems := sequenceOf("drop_back", xs)
	return rebuild[S]("drop_back", tag, elems[:max(len(elems)-n, 0)])
}

// Slice returns the elements of xs in the half-open index range [from, to).
func Slice[S any](xs S, from, to int) S {
	tag, elems := sequenceOf("slice", xs)
	if from < 0 || from > to || to > len(elems) {
		shapeViolation("slice", "range [%d, %d) out of bounds for length %d", from, to, len(elems))
	}
	return rebuild[S]("slice", tag, elems[from:to])
}

// Insert returns xs with v inserted before index i. i may equal the length.
func Insert[S any](xs S, i int, v any) S {
	tag, elems := sequenceOf("insert", xs)
	if i < 0 || i > len(elems) {
		shapeViolation("insert", "index %d out of range [0, %d]", i, len(elems))
	}
	return rebuild[S]("insert", tag, slices.Insert(slices.Clone(elems), i, v))
}

// RemoveAt returns xs without the element at index i.
func RemoveAt[S any](xs S, i int) S {
	tag, elems := sequenceOf("remove_at", xs)
	checkIndex("remove_at", i, len(elems))
	return rebuild[S]("remove_at", tag, slices.Delete(slices.Clone(elems), i, i+1))
}

// Append returns xs with v added at the end.
func Append[S any](xs S, v any) S {
	tag, elems := sequenceOf("append", xs)
	return rebuild[S]("append", tag, append(slices.Clip(elems), v))
}

// Prepend returns xs with v added at the front.
func Prepend[S any](xs S, v any) S {
	tag, elems := sequenceOf("prepend", xs)
	return rebuild[S]("prepend", tag, slices.Insert(slices.Clone(elems), 0, v))
}

// Intersperse places sep between every two adjacent elements of xs.
func Intersperse[S any](xs S, sep any) S {
	tag, elems := sequenceOf("intersperse", xs)
	out := make([]any, 0, max(2*len(elems)-1, 0))
	for i, e := range elems {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, e)
	}
	return rebuild[S]("intersperse", tag, out)
}

// Cycle concatenates n copies of xs.
func Cycle[S any](xs S, n int) S {
	if n < 0 {
		shapeViolation("cycle", "negative count %d", n)
	}
	tag, elems := sequenceOf("cycle", xs)
	out := make([]any, 0, n*len(elems))
	for range n {
		out = append(out, elems...)
	}
	return rebuild[S]("cycle", tag, out)
}

// Replicate builds a structure of family tag holding n copies of x.
func Replicate(tag Tag, x any, n int) any {
	if n < 0 {
		shapeViolation("replicate", "negative count %d", n)
	}
	out := make([]any, n)
	for i := range out {
		out[i] = x
	}
	return Make(tag, out...)
}

// Sort sorts xs by [Less]. The sort is stable: equivalent elements keep
// their relative order.
//
// Panics with [CapabilityError] before comparing anything when some pair of
// top-level element families has no ordering. Orderings nested inside the
// elements, such as those of tuple elements, are only resolved while
// sorting.
func Sort[S any](xs S) S {
	tag, elems := sequenceOf("sort", xs)
	checkOrderable(elems)
	return sortElems[S]("sort", tag, elems, Less)
}

// SortBy sorts xs stably with a caller-provided strict ordering.
func SortBy[S any](xs S, less func(a, b any) bool) S {
	tag, elems := sequenceOf("sort", xs)
	return sortElems[S]("sort", tag, elems, less)
}

func sortElems[S any](op string, tag Tag, elems []any, less func(a, b any) bool) S {
	out := slices.Clone(elems)
	slices.SortStableFunc(out, func(a, b any) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		}
		return 0
	})
	return rebuild[S](op, tag, out)
}

// checkOrderable verifies that an ordering resolves between every pair of
// element families present in elems. It does not look inside the elements.
func checkOrderable(elems []any) {
	var tags []Tag
	for _, e := range elems {
		if t := TagOf(e); !slices.Contains(tags, t) {
			tags = append(tags, t)
		}
	}
	for _, a := range tags {
		for _, b := range tags {
			if !Resolves(LessMethod, a, b) {
				unimplemented(LessMethod.d, []Tag{a, b})
			}
		}
	}
}

// Partition splits xs into the elements satisfying pred and the others,
// both in their original order. The result is a [Pair] of two S.
func Partition[S any](xs S, pred func(any) bool) Pair {
	tag, elems := sequenceOf("partition", xs)
	var yes, no []any
	for _, e := range elems {
		if pred(e) {
			yes = append(yes, e)
		} else {
			no = append(no, e)
		}
	}
	return Pair{Fst: rebuild[S]("partition", tag, yes), Snd: rebuild[S]("partition", tag, no)}
}

// Span splits xs into its longest prefix satisfying pred and the rest.
func Span[S any](xs S, pred func(any) bool) Pair {
	tag, elems := sequenceOf("span", xs)
	n := 0
	for n < len(elems) && pred(elems[n]) {
		n++
	}
	return Pair{Fst: rebuild[S]("span", tag, elems[:n]), Snd: rebuild[S]("span", tag, elems[n:])}
}

// Group collects adjacent equal elements into sub-sequences of the same family.
func Group[S any](xs S) S {
	return GroupBy(xs, Equal)
}

// GroupBy is [Group] with a caller-provided equivalence.
func GroupBy[S any](xs S, eq func(a, b any) bool) S {
	tag, elems := sequenceOf("group", xs)
	var groups []any
	for start := 0; start < len(elems); {
		end := start + 1
		for end < len(elems) && eq(elems[start], elems[end]) {
			end++
		}
		groups = append(groups, Make(tag, elems[start:end]...))
		start = end
	}
	return rebuild[S]("group", tag, groups)
}

// Unique collapses every run of adjacent equal elements to its first element.
func Unique[S any](xs S) S {
	return UniqueBy(xs, Equal)
}

// UniqueBy is [Unique] with a caller-provided equivalence.
func UniqueBy[S any](xs S, eq func(a, b any) bool) S {
	tag, elems := sequenceOf("unique", xs)
	var out []any
	for i, e := range elems {
		if i == 0 || !eq(out[len(out)-1], e) {
			out = append(out, e)
		}
	}
	return rebuild[S]("unique", tag, out)
}

// ZipWith combines the i-th elements of every sequence of xss with f.
// Panics with [ShapeError] before calling f when the lengths differ.
func ZipWith[S any](f func(xs ...any) any, xss ...S) S {
	tag, lists := zipOperands("zip", xss)
	n := len(lists[0])
	for _, l := range lists[1:] {
		if len(l) != n {
			shapeViolation("zip", "length mismatch: %d and %d", n, len(l))
		}
	}
	return zipN[S]("zip", tag, lists, n, f)
}

// Zip groups the i-th elements of every sequence of xss into a sequence.
func Zip[S any](xss ...S) S {
	if len(xss) == 0 {
		shapeViolation("zip", "no sequences")
	}
	tag := TagOf(xss[0])
	return ZipWith(func(xs ...any) any { return Make(tag, xs...) }, xss...)
}

// ZipShortestWith is [ZipWith] truncated to the shortest sequence.
func ZipShortestWith[S any](f func(xs ...any) any, xss ...S) S {
	tag, lists := zipOperands("zip_shortest", xss)
	n := len(lists[0])
	for _, l := range lists[1:] {
		n = min(n, len(l))
	}
	return zipN[S]("zip_shortest", tag, lists, n, f)
}

// ZipShortest is [Zip] truncated to the shortest sequence.
func ZipShortest[S any](xss ...S) S {
	if len(xss) == 0 {
		shapeViolation("zip_shortest", "no sequences")
	}
	tag := TagOf(xss[0])
	return ZipShortestWith(func(xs ...any) any { return Make(tag, xs...) }, xss...)
}

func zipOperands[S any](op string, xss []S) (Tag, [][]any) {
	if len(xss) == 0 {
		shapeViolation(op, "no sequences")
	}
	tag := TagOf(xss[0])
	lists := make([][]any, len(xss))
	for i, xs := range xss {
		t, elems := sequenceOf(op, xs)
		if t != tag {
			shapeViolation(op, "mixed families %s and %s", tag, t)
		}
		lists[i] = elems
	}
	return tag, lists
}

func zipN[S any](op string, tag Tag, lists [][]any, n int, f func(xs ...any) any) S {
	out := make([]any, n)
	for i := range n {
		args := make([]any, len(lists))
		for j, l := range lists {
			args[j] = l[i]
		}
		out[i] = f(args...)
	}
	return rebuild[S](op, tag, out)
}

// CartesianProduct returns every combination taking one element from each
// sequence of xss, the last sequence varying fastest. The product of no
// sequences is a single empty combination; a product with an empty factor
// is empty.
func CartesianProduct[S any](xss S) S {
	tag, factors := sequenceOf("cartesian_product", xss)
	lists := make([][]any, len(factors))
	total := 1
	for i, f := range factors {
		lists[i] = elementsOf("cartesian_product", f)
		total *= len(lists[i])
	}
	out := make([]any, 0, total)
	if total == 0 {
		return rebuild[S]("cartesian_product", tag, out)
	}
	idx := make([]int, len(lists))
	for {
		combo := make([]any, len(lists))
		for i, l := range lists {
			combo[i] = l[idx[i]]
		}
		out = append(out, Make(tag, combo...))
		k := len(idx) - 1
		for ; k >= 0; k-- {
			idx[k]++
			if idx[k] < len(lists[k]) {
				break
			}
			idx[k] = 0
		}
		if k < 0 {
			return rebuild[S]("cartesian_product", tag, out)
		}
	}
}

// ScanLeft returns the successive states of a left fold, starting with state.
// The result has one more element than xs.
func ScanLeft[S any](xs S, state any, f func(acc, x any) any) S {
	tag, elems := sequenceOf("scan_left", xs)
	out := make([]any, 0, len(elems)+1)
	out = append(out, state)
	for _, e := range elems {
		state = f(state, e)
		out = append(out, state)
	}
	return rebuild[S]("scan_left", tag, out)
}

// ScanRight returns the successive states of a right fold, ending with state.
// The result has one more element than xs.
func ScanRight[S any](xs S, state any, f func(x, acc any) any) S {
	tag, elems := sequenceOf("scan_right", xs)
	out := make([]any, len(elems)+1)
	out[len(elems)] = state
	for i := len(elems) - 1; i >= 0; i-- {
		out[i] = f(elems[i], out[i+1])
	}
	return rebuild[S]("scan_right", tag, out)
}

// UnfoldLeft builds a sequence of family tag from init. f returns Nothing
// to stop or Just(Pair{next state, element}); each element is placed before
// the elements produced after it, so the first element produced ends up last.
func UnfoldLeft(tag Tag, init any, f func(state any) Maybe) any {
	var out []any
	for state := init; ; {
		m := f(state)
		if m.IsNothing() {
			break
		}
		p := asPair("unfold_left", m.value)
		out = append(out, p.Snd)
		state = p.Fst
	}
	slices.Reverse(out)
	return Make(tag, out...)
}

// UnfoldRight builds a sequence of family tag from init. f returns Nothing
// to stop or Just(Pair{element, next state}); elements appear in the order
// they are produced.
func UnfoldRight(tag Tag, init any, f func(state any) Maybe) any {
	var out []any
	for state := init; ; {
		m := f(state)
		if m.IsNothing() {
			break
		}
		p := asPair("unfold_right", m.value)
		out = append(out, p.Fst)
		state = p.Snd
	}
	return Make(tag, out...)
}

// sequenceOf checks that xs is a Sequence and lists its elements.
// The result may alias the storage of xs and must not be modified.
func sequenceOf(op string, xs any) (Tag, []any) {
	tag := TagOf(xs)
	mustModel(Sequence, op, tag)
	return tag, elementsOf(op, xs)
}

func rebuild[S any](op string, tag Tag, elems []any) S {
	return cast[S](op, dispatch(MakeMethod, tag)(elems...))
}
