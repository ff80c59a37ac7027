// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero

// frame is a defunctionalized continuation frame of a [Lazy] computation.
// Frames carry the data needed to continue evaluation; the evaluator
// dispatches on them with a type switch.
type frame interface {
	frame() // unexported marker method
}

// returnFrame signals completion: the current value is the result.
type returnFrame struct{}

func (returnFrame) frame() {}

// delayFrame replaces the current value with the result of thunk.
type delayFrame struct {
	thunk func() any
}

func (*delayFrame) frame() {}

// bindFrame continues with the computation f returns for the current value.
type bindFrame struct {
	f func(any) Lazy
}

func (*bindFrame) frame() {}

// mapFrame replaces the current value with f applied to it.
type mapFrame struct {
	f func(any) any
}

func (*mapFrame) frame() {}

// chainedFrame represents a frame followed by more frames.
// This enables composing frame chains without mutation.
type chainedFrame struct {
	first frame
	rest  frame
}

func (*chainedFrame) frame() {}

// chainFrames links two frame chains together.
// Returns the other operand when either side is returnFrame, the identity
// element for frame composition. Construction is O(1).
func chainFrames(first, second frame) frame {
	if _, ok := first.(returnFrame); ok {
		return second
	}
	if _, ok := second.(returnFrame); ok {
		return first
	}
	return &chainedFrame{first: first, rest: second}
}
