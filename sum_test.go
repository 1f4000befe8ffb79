// Copyright 2019 The Bnet Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-cs/bnet/at"
	"github.com/go-cs/bnet/sv"
)

func boolAtoms(st *Store, n int) []at.Atom {
	as := make([]at.Atom, n)
	for i := range as {
		as[i] = st.TrueAtom(st.Solver().BoolVar("x"))
	}
	return as
}

func TestSumAtMostForcesRemainder(t *testing.T) {
	s := sv.NewSolver()
	st := NewStore(s)
	as := boolAtoms(st, 4)

	g, err := NewSumAtMost(as, 2)
	require.NoError(t, err)
	g.Post(st)

	require.NoError(t, st.Flip(as[0]))
	assert.False(t, st.IsFlipped(as[2].Not()))

	require.NoError(t, st.Flip(as[1]))
	// threshold reached: the remaining watched atoms are deduced false
	assert.True(t, st.IsFlipped(as[2].Not()))
	assert.True(t, st.IsFlipped(as[3].Not()))
	assert.False(t, st.IsFlipped(as[2]))
	assert.False(t, st.IsFlipped(as[3]))

	// one more true watched atom contradicts
	assert.ErrorIs(t, st.Flip(as[2]), sv.ErrFailed)
}

func TestSumAtMostOverflowFails(t *testing.T) {
	s := sv.NewSolver()
	st := NewStore(s)
	as := boolAtoms(st, 3)

	g, err := NewSumAtMost(as, 0)
	require.NoError(t, err)
	g.Post(st)

	// k=0: the first watched flip already exceeds the threshold
	assert.ErrorIs(t, st.Flip(as[0]), sv.ErrFailed)
}

func TestSumAtMostBacktrack(t *testing.T) {
	s := sv.NewSolver()
	st := NewStore(s)
	as := boolAtoms(st, 3)

	g, err := NewSumAtMost(as, 2)
	require.NoError(t, err)
	g.Post(st)

	m := s.Trail().Mark()
	require.NoError(t, st.Flip(as[0]))
	require.NoError(t, st.Flip(as[1]))
	assert.True(t, st.IsFlipped(as[2].Not()))

	s.Trail().BackTo(m)
	assert.Equal(t, 0, g.count.Value())
	assert.False(t, st.IsFlipped(as[2].Not()))

	// the guard counts correctly again in the new branch
	require.NoError(t, st.Flip(as[2]))
	require.NoError(t, st.Flip(as[0]))
	assert.True(t, st.IsFlipped(as[1].Not()))
}

func TestSumAtMostRejectsBadInput(t *testing.T) {
	s := sv.NewSolver()
	st := NewStore(s)
	as := boolAtoms(st, 2)

	_, err := NewSumAtMost(nil, 1)
	assert.Error(t, err)
	_, err = NewSumAtMost(as, -1)
	assert.Error(t, err)
	_, err = NewSumAtMost([]at.Atom{as[0], as[1], as[0]}, 1)
	assert.Error(t, err)
	_, err = NewSumAtMost([]at.Atom{as[0], at.Null}, 1)
	assert.Error(t, err)
}

func TestSumTriggerFires(t *testing.T) {
	s := sv.NewSolver()
	st := NewStore(s)
	as := boolAtoms(st, 3)
	acts := boolAtoms(st, 2)

	c, err := NewSumTrigger(as, 2, acts)
	require.NoError(t, err)
	c.Post(st)

	require.NoError(t, st.Flip(as[0]))
	assert.False(t, st.IsFlipped(acts[0]))

	require.NoError(t, st.Flip(as[1]))
	assert.True(t, st.IsFlipped(acts[0]))
	assert.True(t, st.IsFlipped(acts[1]))

	// fired means unsubscribed from every watched atom for this branch
	for _, a := range as {
		assert.Equal(t, 0, st.find(a).trigs.Len(), "atom %s", a)
	}

	// a further watched flip produces no notification
	require.NoError(t, st.Flip(as[2]))
	assert.Equal(t, 2, c.count.Value())
}

func TestSumTriggerBacktrackResubscribes(t *testing.T) {
	s := sv.NewSolver()
	st := NewStore(s)
	as := boolAtoms(st, 2)
	acts := boolAtoms(st, 1)

	c, err := NewSumTrigger(as, 2, acts)
	require.NoError(t, err)
	c.Post(st)

	require.NoError(t, st.Flip(as[0]))
	m := s.Trail().Mark()
	require.NoError(t, st.Flip(as[1]))
	assert.True(t, st.IsFlipped(acts[0]))

	s.Trail().BackTo(m)
	assert.False(t, st.IsFlipped(acts[0]))
	assert.Equal(t, 1, c.count.Value())
	for _, a := range as {
		assert.Equal(t, 1, st.find(a).trigs.Len(), "atom %s", a)
	}

	// the trigger is listening again and fires in the new branch
	require.NoError(t, st.Flip(as[1]))
	assert.True(t, st.IsFlipped(acts[0]))
}

func TestSumTriggerActionContradiction(t *testing.T) {
	s := sv.NewSolver()
	st := NewStore(s)
	as := boolAtoms(st, 1)
	acts := boolAtoms(st, 1)

	c, err := NewSumTrigger(as, 1, acts)
	require.NoError(t, err)
	c.Post(st)

	require.NoError(t, st.Flip(acts[0].Not()))
	assert.ErrorIs(t, st.Flip(as[0]), sv.ErrFailed)
}

func TestSumTriggerRejectsBadInput(t *testing.T) {
	s := sv.NewSolver()
	st := NewStore(s)
	as := boolAtoms(st, 2)

	_, err := NewSumTrigger(as, 0, as)
	assert.Error(t, err)
	_, err = NewSumTrigger(nil, 1, as)
	assert.Error(t, err)
	_, err = NewSumTrigger([]at.Atom{as[0], as[0]}, 1, as)
	assert.Error(t, err)
	_, err = NewSumTrigger(as, 1, []at.Atom{at.Null})
	assert.Error(t, err)
}

func TestGuardForcingFeedsTrigger(t *testing.T) {
	// a guard's forced flips notify other constraints like any flip
	s := sv.NewSolver()
	st := NewStore(s)
	as := boolAtoms(st, 3)
	acts := boolAtoms(st, 1)

	g, err := NewSumAtMost(as, 1)
	require.NoError(t, err)
	g.Post(st)

	c, err := NewSumTrigger([]at.Atom{as[1].Not(), as[2].Not()}, 2, acts)
	require.NoError(t, err)
	c.Post(st)

	require.NoError(t, st.Flip(as[0]))
	assert.True(t, st.IsFlipped(as[1].Not()))
	assert.True(t, st.IsFlipped(as[2].Not()))
	assert.True(t, st.IsFlipped(acts[0]))
}
