// Copyright 2019 The Bnet Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sv

import "github.com/pkg/errors"

// Label searches for an assignment of every variable in vars by depth-first
// labeling, smallest value first.  It reports whether a full assignment was
// found; on success the variables are left bound, on exhaustion the trail is
// rewound to its state at the call.
//
// Propagation runs through the variables' bound demons; a demon returning
// ErrFailed prunes the branch, any other error aborts the search.
func (s *Solver) Label(vars []*IntVar) (bool, error) {
	return s.label(vars, 0)
}

func (s *Solver) label(vars []*IntVar, i int) (bool, error) {
	for i < len(vars) && vars[i].Bound() {
		i++
	}
	if i == len(vars) {
		return true, nil
	}
	v := vars[i]
	lo, hi := v.Min(), v.Max()
	for x := lo; x <= hi; x++ {
		m := s.trail.Mark()
		err := v.SetValue(x)
		if err == nil {
			ok, rerr := s.label(vars, i+1)
			if rerr != nil && !errors.Is(rerr, ErrFailed) {
				return false, rerr
			}
			if ok {
				return true, nil
			}
			err = rerr
		}
		if err != nil && !errors.Is(err, ErrFailed) {
			return false, err
		}
		s.trail.BackTo(m)
	}
	return false, nil
}
