// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package laws

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"code.hybscloud.com/hetero"
)

const (
	defaultSeed    = 42
	defaultSamples = 256
)

type config struct {
	seed    uint64
	samples int
	logger  *zap.Logger
	equal   func(a, b any) bool
	total   bool
}

// Option configures a law check.
type Option func(c *config)

// WithSeed sets the seed of the generator that samples operand tuples.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.seed = seed }
}

// WithSamples sets how many operand tuples are sampled for laws over
// two or three operands. Non-positive values keep the default.
func WithSamples(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.samples = n
		}
	}
}

// WithLogger logs every violation at Debug level.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithEquality replaces [hetero.Equal] as the equivalence used to compare
// the two sides of a law, for families that are not Comparable themselves.
func WithEquality(eq func(a, b any) bool) Option {
	return func(c *config) {
		if eq != nil {
			c.equal = eq
		}
	}
}

// WithTotalOrder makes [Orderable] also require that values which are
// neither less nor greater than each other are equal.
func WithTotalOrder() Option {
	return func(c *config) { c.total = true }
}

func newConfig(opts []Option) *config {
	c := &config{
		seed:    defaultSeed,
		samples: defaultSamples,
		logger:  zap.NewNop(),
		equal:   hetero.Equal,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *config) rand() *rand.Rand {
	return rand.New(rand.NewPCG(c.seed, 0))
}
