// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero

// Lazy is a deferred computation. Nothing runs until [Eval]; each Eval
// runs the computation again. Transform, Ap and Chain extend the frame
// chain without evaluating it.
//
// The zero Lazy evaluates to nil.
type Lazy struct {
	value any
	k     frame
}

// LazyValue creates a completed computation holding x.
func LazyValue(x any) Lazy {
	return Lazy{value: x, k: returnFrame{}}
}

// MakeLazy defers the call of thunk until evaluation.
func MakeLazy(thunk func() any) Lazy {
	return Lazy{k: &delayFrame{thunk: thunk}}
}

// LazyCall defers the application of f to args until evaluation.
func LazyCall(f func(args ...any) any, args ...any) Lazy {
	return MakeLazy(func() any { return f(args...) })
}

// Tag implements [Tagged].
func (Lazy) Tag() Tag { return LazyTag }

func (l Lazy) frames() frame {
	if l.k == nil {
		return returnFrame{}
	}
	return l.k
}

// Eval runs l to completion and returns its value.
// Evaluation is iterative and does not grow the stack with the depth of
// the bind and map chain.
func Eval(l Lazy) any {
	return evalFrames(l.value, l.frames())
}

// LazyBind sequences l with the computation f returns for its value.
func LazyBind(l Lazy, f func(any) Lazy) Lazy {
	return Lazy{value: l.value, k: chainFrames(l.frames(), &bindFrame{f: f})}
}

// LazyMap transforms the value of l with f.
func LazyMap(l Lazy, f func(any) any) Lazy {
	return Lazy{value: l.value, k: chainFrames(l.frames(), &mapFrame{f: f})}
}

func asLazy(op string, x any) Lazy {
	l, ok := x.(Lazy)
	if !ok {
		shapeViolation(op, "expected a lazy computation, got %T", x)
	}
	return l
}

func lazyAp(fs, xs any) any {
	lx := asLazy("ap", xs)
	return LazyBind(fs.(Lazy), func(f any) Lazy {
		fn := asFunc("ap", f)
		return LazyMap(lx, fn)
	})
}

func lazyFlatten(xss any) any {
	return LazyBind(xss.(Lazy), func(inner any) Lazy { return asLazy("flatten", inner) })
}

func init() {
	Implement(TransformMethod, func(xs any, f func(any) any) any { return LazyMap(xs.(Lazy), f) }, LazyTag)
	Implement(LiftMethod, func(x any) any { return LazyValue(x) }, LazyTag)
	Implement(ApMethod, lazyAp, LazyTag)
	Implement(FlattenMethod, lazyFlatten, LazyTag)
}
