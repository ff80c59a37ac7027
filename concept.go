// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero

// Capability is a named set of required methods, optionally refining other
// capabilities. A tag models a capability when every required method,
// and every method of every refined capability, resolves for it.
type Capability struct {
	name     string
	refines  []*Capability
	required []*methodDescriptor
}

// NewCapability declares a capability.
func NewCapability(name string, refines []*Capability, required ...MethodID) *Capability {
	c := &Capability{name: name, refines: refines}
	for _, m := range required {
		c.required = append(c.required, m.descriptor())
	}
	return c
}

// String returns the capability name.
func (c *Capability) String() string { return c.name }

type modelsKey struct {
	c   *Capability
	tag Tag
}

func (c *Capability) models(res *resolver, tag Tag) bool {
	for _, r := range c.refines {
		if !r.models(res, tag) {
			return false
		}
	}
	one := []Tag{tag}
	two := []Tag{tag, tag}
	for _, m := range c.required {
		tags := one
		if m.arity == 2 {
			tags = two
		}
		if _, ok := registry.lookup(res, m, tags); !ok {
			return false
		}
	}
	return true
}

// Models reports whether tag models capability c.
// The answer is consistent with dispatch: when Models is false, at least one
// method of c panics with [CapabilityError] for tag.
func Models(c *Capability, tag Tag) bool {
	key := modelsKey{c: c, tag: tag}
	if v, ok := registry.models.Load(key); ok {
		return v.(bool)
	}
	ok := c.models(&resolver{}, tag)
	registry.models.Store(key, ok)
	return ok
}

// ValueModels reports whether the tag of x models c.
func ValueModels(c *Capability, x any) bool {
	return Models(c, TagOf(x))
}

// mustModel panics with a [CapabilityError] naming the operation op
// when tag does not model c.
func mustModel(c *Capability, op string, tag Tag) {
	if Models(c, tag) {
		return
	}
	notModeled(c, op, tag)
}

//go:noinline
func notModeled(c *Capability, op string, tag Tag) {
	panic(&CapabilityError{Method: op, Tags: []Tag{tag}, Capability: c.name})
}

// Condition guards a conditional implementation registered with [ImplementWhen].
type Condition interface {
	holds(res *resolver, tags []Tag) bool
}

type modelsCondition struct {
	c         *Capability
	positions []int
}

func (m modelsCondition) holds(res *resolver, tags []Tag) bool {
	if len(m.positions) == 0 {
		for _, t := range tags {
			if !m.c.models(res, t) {
				return false
			}
		}
		return true
	}
	for _, p := range m.positions {
		if p >= len(tags) || !m.c.models(res, tags[p]) {
			return false
		}
	}
	return true
}

// WhenModels holds when the operand tags at positions model c.
// Without positions, every operand tag must model c.
func WhenModels(c *Capability, positions ...int) Condition {
	return modelsCondition{c: c, positions: positions}
}

type tagsCondition func(tags ...Tag) bool

func (f tagsCondition) holds(_ *resolver, tags []Tag) bool { return f(tags...) }

// WhenTags holds when pred returns true for the operand tags.
// pred must not call back into dispatch.
func WhenTags(pred func(tags ...Tag) bool) Condition {
	return tagsCondition(pred)
}

type allCondition []Condition

func (a allCondition) holds(res *resolver, tags []Tag) bool {
	for _, c := range a {
		if !c.holds(res, tags) {
			return false
		}
	}
	return true
}

// WhenAll holds when every condition holds.
func WhenAll(conds ...Condition) Condition {
	return allCondition(conds)
}

// WhenSameTag holds when all operand tags are identical.
func WhenSameTag() Condition {
	return tagsCondition(func(tags ...Tag) bool {
		for _, t := range tags[1:] {
			if t != tags[0] {
				return false
			}
		}
		return true
	})
}

// WhenTagIs holds when the operand tag at position is tag.
func WhenTagIs(position int, tag Tag) Condition {
	return tagsCondition(func(tags ...Tag) bool {
		return position < len(tags) && tags[position] == tag
	})
}
