// Copyright 2019 The Bnet Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package rev

import "testing"

func TestIntBackTo(t *testing.T) {
	tr := New()
	var n Int
	n.Set(tr, 3)
	m := tr.Mark()
	n.Incr(tr)
	n.Incr(tr)
	if n.Value() != 5 {
		t.Errorf("value %d != 5", n.Value())
	}
	tr.BackTo(m)
	if n.Value() != 3 {
		t.Errorf("value %d != 3 after rewind", n.Value())
	}
}

func TestIntSavesOncePerEra(t *testing.T) {
	tr := New()
	var n Int
	m := tr.Mark()
	for i := 0; i < 100; i++ {
		n.Incr(tr)
	}
	if tr.Len() != 1 {
		t.Errorf("log length %d != 1", tr.Len())
	}
	tr.BackTo(m)
	if n.Value() != 0 {
		t.Errorf("value %d != 0 after rewind", n.Value())
	}
	// after a rewind the next mutation must be saved again
	n.Incr(tr)
	if tr.Len() != 1 {
		t.Errorf("log length %d != 1 after rewind", tr.Len())
	}
}

func TestIntNestedMarks(t *testing.T) {
	tr := New()
	n := NewInt(1)
	m0 := tr.Mark()
	n.Set(tr, 2)
	m1 := tr.Mark()
	n.Set(tr, 3)
	m2 := tr.Mark()
	n.Set(tr, 4)
	tr.BackTo(m2)
	if n.Value() != 3 {
		t.Errorf("value %d != 3", n.Value())
	}
	tr.BackTo(m1)
	if n.Value() != 2 {
		t.Errorf("value %d != 2", n.Value())
	}
	tr.BackTo(m0)
	if n.Value() != 1 {
		t.Errorf("value %d != 1", n.Value())
	}
}

func TestSwitch(t *testing.T) {
	tr := New()
	var s Switch
	if s.On() {
		t.Errorf("zero switch on")
	}
	m := tr.Mark()
	s.Set(tr)
	if !s.On() {
		t.Errorf("switch not on")
	}
	tr.BackTo(m)
	if s.On() {
		t.Errorf("switch on after rewind")
	}
	s.Set(tr)
	if !s.On() {
		t.Errorf("switch not on after reset and set")
	}
}

func TestSwitchDoubleSetPanics(t *testing.T) {
	tr := New()
	var s Switch
	s.Set(tr)
	defer func() {
		if recover() == nil {
			t.Errorf("no panic on double set")
		}
	}()
	s.Set(tr)
}

func TestSetRemoveRestore(t *testing.T) {
	tr := New()
	var s Set[int]
	for i := 0; i < 5; i++ {
		s.Insert(tr, i)
	}
	m := tr.Mark()
	s.RemoveValue(tr, 1)
	s.RemoveValue(tr, 3)
	if s.Len() != 3 {
		t.Errorf("len %d != 3", s.Len())
	}
	for i := 0; i < s.Len(); i++ {
		if x := s.At(i); x == 1 || x == 3 {
			t.Errorf("removed element %d still present", x)
		}
	}
	tr.BackTo(m)
	if s.Len() != 5 {
		t.Errorf("len %d != 5 after rewind", s.Len())
	}
	seen := make(map[int]bool)
	for i := 0; i < s.Len(); i++ {
		seen[s.At(i)] = true
	}
	for i := 0; i < 5; i++ {
		if !seen[i] {
			t.Errorf("element %d not restored", i)
		}
	}
}

func TestSetRemoveMissing(t *testing.T) {
	tr := New()
	var s Set[int]
	s.Insert(tr, 7)
	s.RemoveValue(tr, 8)
	if s.Len() != 1 {
		t.Errorf("len %d != 1", s.Len())
	}
}

func TestSetRemoveLast(t *testing.T) {
	tr := New()
	var s Set[int]
	s.Insert(tr, 1)
	s.Insert(tr, 2)
	s.RemoveAt(tr, 1)
	if s.Len() != 1 || s.At(0) != 1 {
		t.Errorf("remove at end: len %d", s.Len())
	}
}
