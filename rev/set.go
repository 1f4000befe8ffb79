// Copyright 2019 The Bnet Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package rev

// Set is an order-agnostic collection whose size, and only its size, is
// trail-scoped.  Removal swaps the victim with the logical last element and
// shrinks the reversible size, so the removed element stays physically
// present past the boundary; rewinding the trail restores the size and with
// it every element removed since, in reverse order, without recording the
// removed values themselves.
//
// The backing storage never shrinks and elements are never reordered beyond
// the single swap per removal.  Inserts must precede removals within a
// branch: inserting while removed elements are parked past the size boundary
// would resurrect the wrong element.
type Set[T comparable] struct {
	d []T
	n Int
}

func (s *Set[T]) Len() int {
	return s.n.Value()
}

func (s *Set[T]) At(i int) T {
	return s.d[i]
}

func (s *Set[T]) Insert(t *Trail, x T) {
	s.d = append(s.d, x)
	s.n.Incr(t)
}

// RemoveAt removes the element at logical position i in O(1).
func (s *Set[T]) RemoveAt(t *Trail, i int) {
	s.n.Decr(t)
	j := s.n.Value()
	if i != j {
		s.d[i], s.d[j] = s.d[j], s.d[i]
	}
}

// RemoveValue removes the first element equal to x, if present.
func (s *Set[T]) RemoveValue(t *Trail, x T) {
	for i := 0; i < s.n.Value(); i++ {
		if s.d[i] == x {
			s.RemoveAt(t, i)
			return
		}
	}
}
