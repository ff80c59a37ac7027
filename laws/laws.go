// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package laws checks the algebraic laws that instances registered with
// package hetero are expected to satisfy.
//
// Each checker evaluates its laws over caller-provided sample values and
// returns nil or every violation found, combined with go.uber.org/multierr.
// Laws over two or three operands are checked exhaustively when the sample
// space is small and on a seeded random selection otherwise.
package laws

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"code.hybscloud.com/hetero"
)

// Violation reports a law that does not hold for the given operands.
type Violation struct {
	Law      string
	Operands []any
}

func (v *Violation) Error() string {
	ops := make([]string, len(v.Operands))
	for i, o := range v.Operands {
		ops[i] = fmt.Sprintf("%v", o)
	}
	return "laws: " + v.Law + " violated for (" + strings.Join(ops, ", ") + ")"
}

type checker struct {
	cfg *config
	rng *rand.Rand
	err error
}

func newChecker(opts []Option) *checker {
	cfg := newConfig(opts)
	return &checker{cfg: cfg, rng: cfg.rand()}
}

func (c *checker) check(ok bool, law string, operands ...any) {
	if ok {
		return
	}
	v := &Violation{Law: law, Operands: operands}
	c.cfg.logger.Debug("law violated", zap.String("law", law), zap.String("operands", fmt.Sprint(operands...)))
	c.err = multierr.Append(c.err, v)
}

// tuples calls f with index tuples of the given arity over n elements,
// every tuple when there are at most cfg.samples of them, otherwise
// cfg.samples random ones.
func (c *checker) tuples(n, arity int, f func(idx []int)) {
	if n == 0 {
		return
	}
	total := 1
	for range arity {
		total *= n
		if total > c.cfg.samples {
			break
		}
	}
	idx := make([]int, arity)
	if total <= c.cfg.samples {
		for k := range total {
			for i, rem := arity-1, k; i >= 0; i-- {
				idx[i] = rem % n
				rem /= n
			}
			f(idx)
		}
		return
	}
	for range c.cfg.samples {
		for i := range idx {
			idx[i] = c.rng.IntN(n)
		}
		f(idx)
	}
}

// Comparable checks that [hetero.Equal] is an equivalence relation over
// values, and that equal values of Hashable families hash alike.
func Comparable(values []any, opts ...Option) error {
	c := newChecker(opts)
	for _, x := range values {
		c.check(hetero.Equal(x, x), "equal reflexivity", x)
	}
	c.tuples(len(values), 2, func(idx []int) {
		a, b := values[idx[0]], values[idx[1]]
		eq := hetero.Equal(a, b)
		c.check(eq == hetero.Equal(b, a), "equal symmetry", a, b)
		if eq && hetero.ValueModels(hetero.Hashable, a) && hetero.ValueModels(hetero.Hashable, b) {
			c.check(hetero.Hash(a) == hetero.Hash(b), "hash consistency", a, b)
		}
	})
	c.tuples(len(values), 3, func(idx []int) {
		a, b, x := values[idx[0]], values[idx[1]], values[idx[2]]
		if hetero.Equal(a, b) && hetero.Equal(b, x) {
			c.check(hetero.Equal(a, x), "equal transitivity", a, b, x)
		}
	})
	return c.err
}

// Orderable checks that [hetero.Less] is a strict weak order over values:
// irreflexive, asymmetric and transitive, with a transitive incomparability
// relation. Equal values must be incomparable. [WithTotalOrder] additionally
// requires incomparable values to be equal.
func Orderable(values []any, opts ...Option) error {
	c := newChecker(opts)
	for _, x := range values {
		c.check(!hetero.Less(x, x), "less irreflexivity", x)
	}
	c.tuples(len(values), 2, func(idx []int) {
		a, b := values[idx[0]], values[idx[1]]
		ab, ba := hetero.Less(a, b), hetero.Less(b, a)
		c.check(!(ab && ba), "less asymmetry", a, b)
		c.check(!(ab || ba) || !c.cfg.equal(a, b), "less consistent with equal", a, b)
		if c.cfg.total {
			c.check(ab || ba || c.cfg.equal(a, b), "less totality", a, b)
		}
	})
	incomparable := func(a, b any) bool { return !hetero.Less(a, b) && !hetero.Less(b, a) }
	c.tuples(len(values), 3, func(idx []int) {
		a, b, x := values[idx[0]], values[idx[1]], values[idx[2]]
		if hetero.Less(a, b) && hetero.Less(b, x) {
			c.check(hetero.Less(a, x), "less transitivity", a, b, x)
		}
		if incomparable(a, b) && incomparable(b, x) {
			c.check(incomparable(a, x), "incomparability transitivity", a, b, x)
		}
	})
	return c.err
}

// Functor checks the identity and composition laws of [hetero.Transform]
// over structures xs and element functions fs.
func Functor(xs []any, fs []func(any) any, opts ...Option) error {
	c := newChecker(opts)
	id := func(x any) any { return x }
	for _, x := range xs {
		c.check(c.cfg.equal(hetero.Transform(x, id), x), "functor identity", x)
	}
	if len(fs) == 0 {
		return c.err
	}
	c.tuples(len(xs)*len(fs)*len(fs), 1, func(idx []int) {
		k := idx[0]
		x, f, g := xs[k/(len(fs)*len(fs))], fs[k/len(fs)%len(fs)], fs[k%len(fs)]
		composed := hetero.Transform(x, func(v any) any { return g(f(v)) })
		stepwise := hetero.Transform(hetero.Transform(x, f), g)
		c.check(c.cfg.equal(composed, stepwise), "functor composition", x)
	})
	return c.err
}

// MonadSample is the input of [Monad].
type MonadSample struct {
	// Tag is the family under test.
	Tag hetero.Tag
	// Values are plain values to lift.
	Values []any
	// Monadic are structures of family Tag.
	Monadic []any
	// Binds map a plain value to a structure of family Tag.
	Binds []func(any) any
	// Maps map a plain value to a plain value.
	Maps []func(any) any
}

// Monad checks left identity, right identity and associativity of
// [hetero.Chain], and that [hetero.Transform] agrees with Chain followed
// by [hetero.Lift].
func Monad(s MonadSample, opts ...Option) error {
	c := newChecker(opts)
	lift := func(x any) any { return hetero.Lift(s.Tag, x) }
	for _, m := range s.Monadic {
		c.check(c.cfg.equal(hetero.Chain(m, lift), m), "monad right identity", m)
	}
	c.tuples(len(s.Values)*len(s.Binds), 1, func(idx []int) {
		a, f := s.Values[idx[0]/len(s.Binds)], s.Binds[idx[0]%len(s.Binds)]
		c.check(c.cfg.equal(hetero.Chain(lift(a), f), f(a)), "monad left identity", a)
	})
	nb := len(s.Binds)
	c.tuples(len(s.Monadic)*nb*nb, 1, func(idx []int) {
		k := idx[0]
		m, f, g := s.Monadic[k/(nb*nb)], s.Binds[k/nb%nb], s.Binds[k%nb]
		left := hetero.Chain(hetero.Chain(m, f), g)
		right := hetero.Chain(m, func(x any) any { return hetero.Chain(f(x), g) })
		c.check(c.cfg.equal(left, right), "monad associativity", m)
	})
	c.tuples(len(s.Monadic)*len(s.Maps), 1, func(idx []int) {
		m, h := s.Monadic[idx[0]/len(s.Maps)], s.Maps[idx[0]%len(s.Maps)]
		viaChain := hetero.Chain(m, func(x any) any { return lift(h(x)) })
		c.check(c.cfg.equal(hetero.Transform(m, h), viaChain), "transform consistent with chain", m)
	})
	return c.err
}

// Foldable checks that [hetero.FoldRight] visits the elements of every
// structure in the reverse order of [hetero.FoldLeft], and that
// [hetero.Length] counts them.
func Foldable(xs []any, opts ...Option) error {
	c := newChecker(opts)
	for _, x := range xs {
		var left, right []any
		hetero.FoldLeft(x, nil, func(_, e any) any {
			left = append(left, e)
			return nil
		})
		hetero.FoldRight(x, nil, func(e, _ any) any {
			right = append(right, e)
			return nil
		})
		c.check(hetero.Length(x) == len(left), "length counts elements", x)
		ok := len(left) == len(right)
		for i := 0; ok && i < len(left); i++ {
			ok = hetero.Equal(left[i], right[len(right)-1-i])
		}
		c.check(ok, "fold_right mirrors fold_left", x)
	}
	return c.err
}
