// Copyright 2019 The Bnet Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package rev

// Marker names a point on a trail to rewind to.
type Marker int

type entry struct {
	i   *Int    // set for Int records
	sw  *Switch // set for Switch records
	old int
}

// Trail is an undo log for reversible values.  A single Trail serializes all
// mutation in one search; it is not safe for concurrent use.
type Trail struct {
	log []entry
	era uint64
}

func New() *Trail {
	return &Trail{log: make([]entry, 0, 128), era: 1}
}

// Mark opens a new era and returns a marker for the current state.
func (t *Trail) Mark() Marker {
	t.era++
	return Marker(len(t.log))
}

// BackTo pops and applies undo records down to m, restoring every value
// mutated since the corresponding Mark.
func (t *Trail) BackTo(m Marker) {
	for i := len(t.log) - 1; i >= int(m); i-- {
		e := &t.log[i]
		if e.i != nil {
			e.i.v = e.old
		} else {
			e.sw.on = false
		}
	}
	t.log = t.log[:int(m)]
	t.era++
}

// Len reports the number of undo records held.
func (t *Trail) Len() int {
	return len(t.log)
}

func (t *Trail) saveInt(r *Int) {
	if r.era == t.era {
		return
	}
	t.log = append(t.log, entry{i: r, old: r.v})
	r.era = t.era
}
