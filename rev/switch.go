// Copyright 2019 The Bnet Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package rev

// Switch is a trail-scoped one-way flag.  It transitions off to on at most
// once per branch; rewinding the trail past the transition turns it off
// again.  Setting a switch which is already on is a logic error in the
// caller, not a recoverable failure.
type Switch struct {
	on bool
}

func (s *Switch) On() bool {
	return s.on
}

func (s *Switch) Set(t *Trail) {
	if s.on {
		panic("rev: switch already on")
	}
	t.log = append(t.log, entry{sw: s})
	s.on = true
}
