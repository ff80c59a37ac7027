// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero

// evalFrames is the iterative evaluator for Lazy frame chains.
// Nested chains are re-associated to the right as they are met, so bind and
// map chains of any depth and nesting run in constant stack space.
func evalFrames(current any, f frame) any {
	for {
		if cf, ok := f.(*chainedFrame); ok {
			if nested, ok := cf.first.(*chainedFrame); ok {
				f = &chainedFrame{
					first: nested.first,
					rest:  chainFrames(nested.rest, cf.rest),
				}
				continue
			}
			current, f = step(current, cf.first, cf.rest)
			continue
		}
		if _, ok := f.(returnFrame); ok {
			return current
		}
		current, f = step(current, f, returnFrame{})
	}
}

// step runs a single non-chained frame and returns the new current value
// with the frames left to run.
func step(current any, f, rest frame) (any, frame) {
	switch f := f.(type) {
	case returnFrame:
		return current, rest
	case *delayFrame:
		return f.thunk(), rest
	case *mapFrame:
		return f.f(current), rest
	case *bindFrame:
		next := f.f(current)
		return next.value, chainFrames(next.frames(), rest)
	}
	panic("hetero: unknown lazy frame type")
}
