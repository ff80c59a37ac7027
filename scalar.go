// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero

import (
	"encoding/binary"
	"math"
	"reflect"
	"runtime"

	"github.com/cespare/xxhash/v2"
)

// Instances for raw Go values that carry no declared family.
// Each such value is its own fallback family; the instances below apply to
// every fallback tag whose Go type has the right kind.

type numKind uint8

const (
	notNumeric numKind = iota
	signedKind
	unsignedKind
	floatKind
)

type number struct {
	kind numKind
	i    int64
	u    uint64
	f    float64
}

func kindOf(t reflect.Type) numKind {
	if t == nil {
		return notNumeric
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signedKind
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsignedKind
	case reflect.Float32, reflect.Float64:
		return floatKind
	default:
		return notNumeric
	}
}

func toNumber(x any) number {
	v := reflect.ValueOf(x)
	switch k := kindOf(v.Type()); k {
	case signedKind:
		return number{kind: k, i: v.Int()}
	case unsignedKind:
		return number{kind: k, u: v.Uint()}
	default:
		return number{kind: floatKind, f: v.Float()}
	}
}

const (
	twoTo63 = 9.223372036854775808e18
	twoTo64 = 1.8446744073709551616e19
)

func sign(d float64) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	return 0
}

func cmpFloatInt(f float64, i int64) int {
	if f < -twoTo63 {
		return -1
	}
	if f >= twoTo63 {
		return 1
	}
	fi := int64(f)
	switch {
	case fi < i:
		return -1
	case fi > i:
		return 1
	}
	return sign(f - float64(fi))
}

func cmpFloatUint(f float64, u uint64) int {
	if f < 0 {
		return -1
	}
	if f >= twoTo64 {
		return 1
	}
	fu := uint64(f)
	switch {
	case fu < u:
		return -1
	case fu > u:
		return 1
	}
	return sign(f - float64(fu))
}

func cmpIntUint(i int64, u uint64) int {
	if i < 0 {
		return -1
	}
	switch ui := uint64(i); {
	case ui < u:
		return -1
	case ui > u:
		return 1
	}
	return 0
}

// compareNumbers compares exactly across kinds.
// ok is false when either side is NaN.
func compareNumbers(a, b number) (c int, ok bool) {
	if (a.kind == floatKind && math.IsNaN(a.f)) || (b.kind == floatKind && math.IsNaN(b.f)) {
		return 0, false
	}
	switch a.kind {
	case signedKind:
		switch b.kind {
		case signedKind:
			return cmpOrdered(a.i, b.i), true
		case unsignedKind:
			return cmpIntUint(a.i, b.u), true
		default:
			return -cmpFloatInt(b.f, a.i), true
		}
	case unsignedKind:
		switch b.kind {
		case signedKind:
			return -cmpIntUint(b.i, a.u), true
		case unsignedKind:
			return cmpOrdered(a.u, b.u), true
		default:
			return -cmpFloatUint(b.f, a.u), true
		}
	default:
		switch b.kind {
		case signedKind:
			return cmpFloatInt(a.f, b.i), true
		case unsignedKind:
			return cmpFloatUint(a.f, b.u), true
		default:
			return cmpOrdered(a.f, b.f), true
		}
	}
}

func cmpOrdered[T int64 | uint64 | float64 | string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func isNumericTag(t Tag) bool { return kindOf(t.Type()) != notNumeric }

func isStringTag(t Tag) bool {
	typ := t.Type()
	return typ != nil && typ.Kind() == reflect.String
}

func isComparableTag(t Tag) bool {
	typ := t.Type()
	return typ != nil && typ.Comparable()
}

func numericEqual(a, b any) bool {
	c, ok := compareNumbers(toNumber(a), toNumber(b))
	return ok && c == 0
}

func numericLess(a, b any) bool {
	c, ok := compareNumbers(toNumber(a), toNumber(b))
	return ok && c < 0
}

func stringLess(a, b any) bool {
	return reflect.ValueOf(a).String() < reflect.ValueOf(b).String()
}

// builtinEqual compares with ==. A comparable type may still hold an
// uncomparable dynamic value in an interface field; that comparison is
// reported as a missing Equal instance for the operand family.
func builtinEqual(a, b any) (eq bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); ok {
				unimplemented(EqualMethod.d, []Tag{TagOf(a), TagOf(b)})
			}
			panic(r)
		}
	}()
	return a == b
}

// hashNumber hashes by value so that numerically equal values of different
// kinds hash alike: integral values hash as int64 or uint64, the rest as
// float64 bits.
func hashNumber(x any) uint64 {
	n := toNumber(x)
	var buf [9]byte
	switch {
	case n.kind == signedKind:
		buf[0] = 'i'
		binary.LittleEndian.PutUint64(buf[1:], uint64(n.i))
	case n.kind == unsignedKind && n.u <= math.MaxInt64:
		buf[0] = 'i'
		binary.LittleEndian.PutUint64(buf[1:], n.u)
	case n.kind == unsignedKind:
		buf[0] = 'u'
		binary.LittleEndian.PutUint64(buf[1:], n.u)
	case n.f == math.Trunc(n.f) && n.f >= -twoTo63 && n.f < twoTo63:
		buf[0] = 'i'
		binary.LittleEndian.PutUint64(buf[1:], uint64(int64(n.f)))
	case n.f == math.Trunc(n.f) && n.f >= 0 && n.f < twoTo64:
		buf[0] = 'u'
		binary.LittleEndian.PutUint64(buf[1:], uint64(n.f))
	default:
		buf[0] = 'f'
		binary.LittleEndian.PutUint64(buf[1:], math.Float64bits(n.f))
	}
	return xxhash.Sum64(buf[:])
}

func hashString(x any) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString("s")
	_, _ = d.WriteString(reflect.ValueOf(x).String())
	return d.Sum64()
}

func hashBool(x any) uint64 {
	if reflect.ValueOf(x).Bool() {
		return xxhash.Sum64String("b1")
	}
	return xxhash.Sum64String("b0")
}

func isBoolTag(t Tag) bool {
	typ := t.Type()
	return typ != nil && typ.Kind() == reflect.Bool
}

func init() {
	numeric := WhenTags(func(tags ...Tag) bool {
		for _, t := range tags {
			if !isNumericTag(t) {
				return false
			}
		}
		return true
	})
	sameString := WhenAll(WhenSameTag(), WhenTags(func(tags ...Tag) bool { return isStringTag(tags[0]) }))
	sameComparable := WhenAll(WhenSameTag(), WhenTags(func(tags ...Tag) bool { return isComparableTag(tags[0]) }))

	ImplementWhen(EqualMethod, numeric, numericEqual)
	ImplementWhen(EqualMethod, sameComparable, builtinEqual)
	ImplementWhen(LessMethod, numeric, numericLess)
	ImplementWhen(LessMethod, sameString, stringLess)

	ImplementWhen(HashMethod, numeric, hashNumber)
	ImplementWhen(HashMethod, WhenTags(func(tags ...Tag) bool { return isStringTag(tags[0]) }), hashString)
	ImplementWhen(HashMethod, WhenTags(func(tags ...Tag) bool { return isBoolTag(tags[0]) }), hashBool)

	Implement(EqualMethod, func(_, _ any) bool { return true }, NilTag, NilTag)
	Implement(HashMethod, func(any) uint64 { return xxhash.Sum64String("nil") }, NilTag)
}
