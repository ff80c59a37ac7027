// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero

import (
	"reflect"
	"strings"
)

// Type represents a Go type as an ordinary value, so that algorithms can
// operate over types and values alike: a Tuple of Types can be searched,
// filtered and compared like any other Tuple.
type Type struct {
	t reflect.Type
}

// TypeFor returns the Type value of T.
func TypeFor[T any]() Type {
	return Type{t: reflect.TypeFor[T]()}
}

// TypeOfValue returns the Type of the dynamic type of v.
// The Type of nil holds a nil reflect.Type.
func TypeOfValue(v any) Type {
	return Type{t: reflect.TypeOf(v)}
}

// Tag implements [Tagged].
func (Type) Tag() Tag { return TypeTag }

// Reflect returns the underlying reflect.Type.
func (t Type) Reflect() reflect.Type { return t.t }

func (t Type) name() string {
	if t.t == nil {
		return "nil"
	}
	return t.t.String()
}

func (t Type) String() string { return "type<" + t.name() + ">" }

// typeLess orders types by name, then by package path.
func typeLess(a, b any) bool {
	ta, tb := a.(Type), b.(Type)
	if c := strings.Compare(ta.name(), tb.name()); c != 0 {
		return c < 0
	}
	return pkgPath(ta.t) < pkgPath(tb.t)
}

func pkgPath(t reflect.Type) string {
	if t == nil {
		return ""
	}
	return t.PkgPath()
}

func typeHash(x any) uint64 {
	t := x.(Type)
	return hashOrdered("type", t.name(), pkgPath(t.t))
}

// Traits. Each accepts a Type or an ordinary value, whose dynamic type is
// inspected.

// IsIntegral reports whether the type is a signed or unsigned integer type.
// rune and byte are integral.
func IsIntegral(x any) bool {
	switch kindFor(x) {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

// IsFloating reports whether the type is a floating-point type.
func IsFloating(x any) bool {
	k := kindFor(x)
	return k == reflect.Float32 || k == reflect.Float64
}

// IsArithmetic reports whether the type is integral or floating-point.
func IsArithmetic(x any) bool {
	return IsIntegral(x) || IsFloating(x)
}

// IsSigned reports whether the type is a signed integer or floating-point type.
func IsSigned(x any) bool {
	switch kindFor(x) {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// IsUnsigned reports whether the type is an unsigned integer type.
func IsUnsigned(x any) bool {
	return IsIntegral(x) && !IsSigned(x)
}

func kindFor(x any) reflect.Kind {
	var t reflect.Type
	if tv, ok := x.(Type); ok {
		t = tv.t
	} else {
		t = reflect.TypeOf(x)
	}
	if t == nil {
		return reflect.Invalid
	}
	return t.Kind()
}

func init() {
	Implement(EqualMethod, func(a, b any) bool { return a.(Type).t == b.(Type).t }, TypeTag, TypeTag)
	Implement(LessMethod, typeLess, TypeTag, TypeTag)
	Implement(HashMethod, typeHash, TypeTag)
}
