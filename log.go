// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	logger    atomic.Pointer[zap.Logger]
	nopLogger = zap.NewNop()
)

// SetLogger installs the logger used for registration and dispatch diagnostics.
// A nil logger restores the default no-op logger.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}

func currentLogger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nopLogger
}
