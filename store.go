// Copyright 2019 The Bnet Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bnet

import (
	"github.com/sirupsen/logrus"

	"github.com/go-cs/bnet/at"
	"github.com/go-cs/bnet/sv"
)

// Store owns the atoms of one solving session and is the single propagation
// entry point.  Atom pairs are allocated lazily, in first-seen order, the
// first time a variable is referenced; atoms are never destroyed
// individually.
type Store struct {
	s      *sv.Solver
	index  map[*sv.IntVar]at.Var
	vars   []*sv.IntVar
	tAtoms []*node
	fAtoms []*node

	// lifetime registries; play no part in propagation
	guards   []*SumAtMost
	triggers []*SumTrigger

	log logrus.FieldLogger
}

func NewStore(s *sv.Solver) *Store {
	return &Store{
		s:     s,
		index: make(map[*sv.IntVar]at.Var),
	}
}

// SetLogger installs a debug tracer for propagation events.  A nil logger
// (the default) disables tracing.
func (st *Store) SetLogger(log logrus.FieldLogger) {
	st.log = log
}

// Solver returns the host solver the store was created against.
func (st *Store) Solver() *sv.Solver {
	return st.s
}

// TrueAtom returns the atom which holds when v is 1, allocating the
// variable's atom pair on first use.
func (st *Store) TrueAtom(v *sv.IntVar) at.Atom {
	return st.ord(v).Pos()
}

// FalseAtom returns the atom which holds when v is 0.
func (st *Store) FalseAtom(v *sv.IntVar) at.Atom {
	return st.ord(v).Neg()
}

// AtomOf returns v's atom for the requested polarity.
func (st *Store) AtomOf(v *sv.IntVar, negated bool) at.Atom {
	if negated {
		return st.FalseAtom(v)
	}
	return st.TrueAtom(v)
}

func (st *Store) ord(v *sv.IntVar) at.Var {
	if u, ok := st.index[v]; ok {
		return u
	}
	u := at.Var(len(st.vars))
	st.index[v] = u
	st.vars = append(st.vars, v)
	st.tAtoms = append(st.tAtoms, newNode(u.Pos()))
	st.fAtoms = append(st.fAtoms, newNode(u.Neg()))
	return u
}

func (st *Store) find(a at.Atom) *node {
	if a.IsNull() {
		panic("bnet: null atom")
	}
	if a.IsPos() {
		return st.tAtoms[a.Var()]
	}
	return st.fAtoms[a.Var()]
}

// AddImplication installs the directed edge src -> dst: whenever src flips,
// dst is flipped through the store.  Both atoms must have been obtained from
// this store.  Edges are installed at posting time only.
func (st *Store) AddImplication(src, dst at.Atom) {
	st.find(src).addImplication(dst)
}

// Flip makes a hold.  Flipping the null atom, or an atom whose complement
// already holds, fails the branch.  Flipping an atom which already holds is
// a no-op.  An admissible flip cascades synchronously; the call returns only
// once every consequence has been propagated.
func (st *Store) Flip(a at.Atom) error {
	if a.IsNull() || st.IsFlipped(a.Not()) {
		if st.log != nil {
			st.log.WithField("atom", a).Debug("flip contradicts")
		}
		return st.s.Fail()
	}
	if st.IsFlipped(a) {
		return nil
	}
	if st.log != nil {
		st.log.WithField("atom", a).Debug("flip")
	}
	return st.find(a).flip(st)
}

// IsFlipped reports whether a holds.  The null atom never holds.
func (st *Store) IsFlipped(a at.Atom) bool {
	if a.IsNull() {
		return false
	}
	return st.find(a).flipped.On()
}

// Post hooks the store to its variables' bound events and replays variables
// already bound, so the network starts consistent even when a variable was
// bound before posting.  Call once, after the network has been built.
func (st *Store) Post() error {
	for i := range st.vars {
		u := at.Var(i)
		st.vars[i].WhenBound(func() error {
			return st.onBound(u)
		})
	}
	for i, v := range st.vars {
		if v.Bound() {
			if err := st.onBound(at.Var(i)); err != nil {
				return err
			}
		}
	}
	return nil
}

// onBound is the sole bridge from variable domain events into the network:
// the variable's domain is now a singleton and the realized polarity flips.
func (st *Store) onBound(u at.Var) error {
	if st.vars[u].Min() == 0 {
		return st.Flip(u.Neg())
	}
	return st.Flip(u.Pos())
}

func (st *Store) register(g *SumAtMost) {
	st.guards = append(st.guards, g)
}

func (st *Store) registerTrigger(c *SumTrigger) {
	st.triggers = append(st.triggers, c)
}
