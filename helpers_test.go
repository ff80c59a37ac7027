// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"code.hybscloud.com/hetero"
)

// panicError runs f and returns the error it panicked with.
func panicError(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		e, ok := r.(error)
		require.Truef(t, ok, "panic value %v (%T) is not an error", r, r)
		err = e
	}()
	f()
	return nil
}

// observeLogs installs an observing logger for the duration of the test.
func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	hetero.SetLogger(zap.New(core))
	t.Cleanup(func() { hetero.SetLogger(nil) })
	return logs
}

func tuple(xs ...any) hetero.Tuple { return hetero.MakeTuple(xs...) }

func ints(n int) hetero.Tuple {
	xs := make([]any, n)
	for i := range xs {
		xs[i] = i + 1
	}
	return hetero.MakeTuple(xs...)
}

// requireEqual asserts hetero equality and prints both sides on failure.
func requireEqual(t *testing.T, want, got any) {
	t.Helper()
	require.Truef(t, hetero.Equal(want, got), "want %v, got %v", want, got)
}

func isOdd(x any) bool  { return x.(int)%2 != 0 }
func isEven(x any) bool { return x.(int)%2 == 0 }
