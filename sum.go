// Copyright 2019 The Bnet Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bnet

import (
	"github.com/pkg/errors"

	"github.com/go-cs/bnet/at"
	"github.com/go-cs/bnet/rev"
)

// SumAtMost watches a fixed set of atoms and keeps at most k of them
// flipped.  When the count reaches k it forces every remaining watched atom
// false; when it would exceed k it fails the branch.  Guards listen for
// their whole lifetime.
type SumAtMost struct {
	atoms []at.Atom
	k     int
	count rev.Int
}

// NewSumAtMost builds a guard over atoms with threshold k.  The watch list
// must be non-empty and duplicate-free and k non-negative.
func NewSumAtMost(atoms []at.Atom, k int) (*SumAtMost, error) {
	if k < 0 {
		return nil, errors.Errorf("bnet: sum at most: negative threshold %d", k)
	}
	if err := checkWatches(atoms); err != nil {
		return nil, errors.Wrap(err, "bnet: sum at most")
	}
	return &SumAtMost{
		atoms: append([]at.Atom(nil), atoms...),
		k:     k,
	}, nil
}

// Post subscribes the guard to every watched atom.
func (c *SumAtMost) Post(st *Store) {
	st.register(c)
	for _, a := range c.atoms {
		st.find(a).listen(c)
	}
}

func (c *SumAtMost) onFlip(st *Store) error {
	c.count.Incr(st.s.Trail())
	n := c.count.Value()
	if n > c.k {
		return st.s.Fail()
	}
	if n == c.k {
		return c.forcePending(st)
	}
	return nil
}

// forcePending flips the complement of every watched atom not yet flipped,
// in watch-list declaration order.  A forced flip colliding with an
// already-opposite atom fails through the store as usual.
func (c *SumAtMost) forcePending(st *Store) error {
	for _, a := range c.atoms {
		if st.IsFlipped(a) {
			continue
		}
		if err := st.Flip(a.Not()); err != nil {
			return err
		}
	}
	return nil
}

// SumTrigger watches a fixed set of atoms and, the moment at least k of them
// are flipped, stops listening to all of them and flips every action atom.
// Unsubscription is a size-only rollback on the atoms' reversible sets, so
// after backtracking past the triggering flip the constraint is found
// listening again.
type SumTrigger struct {
	atoms   []at.Atom
	k       int
	actions []at.Atom
	count   rev.Int
}

// NewSumTrigger builds a trigger firing the action atoms once k of the
// watched atoms are flipped.  The watch list must be non-empty and
// duplicate-free, k at least 1, and every action atom real.
func NewSumTrigger(atoms []at.Atom, k int, actions []at.Atom) (*SumTrigger, error) {
	if k < 1 {
		return nil, errors.Errorf("bnet: sum trigger: threshold %d < 1", k)
	}
	if err := checkWatches(atoms); err != nil {
		return nil, errors.Wrap(err, "bnet: sum trigger")
	}
	for _, a := range actions {
		if a.IsNull() {
			return nil, errors.New("bnet: sum trigger: null action atom")
		}
	}
	return &SumTrigger{
		atoms:   append([]at.Atom(nil), atoms...),
		k:       k,
		actions: append([]at.Atom(nil), actions...),
	}, nil
}

// Post subscribes the trigger to every watched atom.
func (c *SumTrigger) Post(st *Store) {
	st.registerTrigger(c)
	t := st.s.Trail()
	for _, a := range c.atoms {
		st.find(a).listenTrigger(t, c)
	}
}

func (c *SumTrigger) onFlip(st *Store) error {
	c.count.Incr(st.s.Trail())
	if c.count.Value() >= c.k {
		c.stopListening(st)
		return c.fire(st)
	}
	return nil
}

func (c *SumTrigger) stopListening(st *Store) {
	t := st.s.Trail()
	for _, a := range c.atoms {
		st.find(a).stopListening(t, c)
	}
}

func (c *SumTrigger) fire(st *Store) error {
	if st.log != nil {
		st.log.WithField("actions", len(c.actions)).Debug("trigger fires")
	}
	for _, a := range c.actions {
		if err := st.Flip(a); err != nil {
			return err
		}
	}
	return nil
}

func checkWatches(atoms []at.Atom) error {
	if len(atoms) == 0 {
		return errors.New("empty watch list")
	}
	seen := make(map[at.Atom]bool, len(atoms))
	for _, a := range atoms {
		if a.IsNull() {
			return errors.New("null atom in watch list")
		}
		if seen[a] {
			return errors.Errorf("duplicate watch %s", a)
		}
		seen[a] = true
	}
	return nil
}
