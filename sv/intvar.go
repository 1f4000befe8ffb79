// Copyright 2019 The Bnet Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sv

import (
	"fmt"

	"github.com/go-cs/bnet/rev"
)

// IntVar is an integer decision variable with a trail-scoped interval
// domain.  Domains only ever tighten within a branch; rewinding the trail
// widens them back.
type IntVar struct {
	s      *Solver
	name   string
	min    rev.Int
	max    rev.Int
	demons []func() error
}

func (v *IntVar) Name() string { return v.name }

func (v *IntVar) Min() int { return v.min.Value() }

func (v *IntVar) Max() int { return v.max.Value() }

// Bound tests whether the domain is a singleton.
func (v *IntVar) Bound() bool {
	return v.min.Value() == v.max.Value()
}

// Value returns the variable's value.  It panics if v is not bound.
func (v *IntVar) Value() int {
	if !v.Bound() {
		panic(fmt.Sprintf("sv: %s not bound", v.name))
	}
	return v.min.Value()
}

// WhenBound registers d to run the moment v's domain collapses to a
// singleton.  Demons run synchronously, in registration order, exactly once
// per branch.
func (v *IntVar) WhenBound(d func() error) {
	v.demons = append(v.demons, d)
}

// SetMin tightens the lower bound.
func (v *IntVar) SetMin(lo int) error {
	if lo <= v.min.Value() {
		return nil
	}
	if lo > v.max.Value() {
		return v.s.Fail()
	}
	v.min.Set(v.s.trail, lo)
	if v.Bound() {
		return v.onBound()
	}
	return nil
}

// SetMax tightens the upper bound.
func (v *IntVar) SetMax(hi int) error {
	if hi >= v.max.Value() {
		return nil
	}
	if hi < v.min.Value() {
		return v.s.Fail()
	}
	v.max.Set(v.s.trail, hi)
	if v.Bound() {
		return v.onBound()
	}
	return nil
}

// SetValue binds v to x.
func (v *IntVar) SetValue(x int) error {
	if x < v.min.Value() || x > v.max.Value() {
		return v.s.Fail()
	}
	if v.Bound() {
		return nil
	}
	v.min.Set(v.s.trail, x)
	v.max.Set(v.s.trail, x)
	return v.onBound()
}

func (v *IntVar) onBound() error {
	for _, d := range v.demons {
		if err := d(); err != nil {
			return err
		}
	}
	return nil
}

func (v *IntVar) String() string {
	if v.Bound() {
		return fmt.Sprintf("%s=%d", v.name, v.min.Value())
	}
	return fmt.Sprintf("%s=[%d..%d]", v.name, v.min.Value(), v.max.Value())
}
