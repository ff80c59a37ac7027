// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero

// To converts v to the family target.
//
// A value already in the target family is returned as is. Otherwise the
// conversion registered for (target, TagOf(v)) applies. Built-in
// conversions turn any Foldable structure into a Tuple or a Set, and a
// Foldable structure of Pairs into a Map.
//
// Panics with [ConversionError] when no conversion is registered.
func To(target Tag, v any) any {
	source := TagOf(v)
	if source == target {
		return v
	}
	convert, ok := Lookup(ConvertMethod, target, source)
	if !ok {
		noConversion(source, target)
	}
	return convert(v)
}

// RegisterConversion registers f as the conversion from family from to
// family to.
func RegisterConversion(from, to Tag, f func(v any) any) {
	Implement(ConvertMethod, f, to, from)
}

//go:noinline
func noConversion(from, to Tag) {
	panic(&ConversionError{From: from, To: to})
}

func fromFoldable(target Tag) func(v any) any {
	return func(v any) any {
		return Make(target, elementsOf("to", v)...)
	}
}

func init() {
	for _, target := range []Tag{TupleTag, SetTag, MapTag} {
		ImplementWhen(ConvertMethod,
			WhenAll(WhenTagIs(0, target), WhenModels(Foldable, 1)),
			fromFoldable(target))
	}
}
