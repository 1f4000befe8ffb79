// Copyright 2019 The Bnet Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sv

import (
	"github.com/pkg/errors"

	"github.com/go-cs/bnet/rev"
)

// ErrFailed signals that the current search branch is contradictory.  It
// carries no payload; the search interprets it by rewinding the trail.
var ErrFailed = errors.New("sv: branch failed")

// Solver owns the trail and the variables of one solving session.
type Solver struct {
	trail *rev.Trail
}

func NewSolver() *Solver {
	return &Solver{trail: rev.New()}
}

// Trail returns the solver's trail.  All reversible state in constraints
// posted against this solver must be scoped to it.
func (s *Solver) Trail() *rev.Trail {
	return s.trail
}

// Fail fails the current branch.
func (s *Solver) Fail() error {
	return ErrFailed
}

// IntVar creates a decision variable with domain [lo, hi].
func (s *Solver) IntVar(lo, hi int, name string) *IntVar {
	if lo > hi {
		panic("sv: empty initial domain")
	}
	return &IntVar{
		s:    s,
		name: name,
		min:  rev.NewInt(lo),
		max:  rev.NewInt(hi),
	}
}

// BoolVar creates a variable with domain {0, 1}.
func (s *Solver) BoolVar(name string) *IntVar {
	return s.IntVar(0, 1, name)
}
