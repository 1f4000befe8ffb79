// Copyright 2019 The Bnet Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package rev

// Int is a trail-scoped integer.  The zero value is usable and holds 0.
type Int struct {
	v   int
	era uint64
}

// NewInt returns an Int holding v.  The initial value is not recorded on any
// trail; rewinding past all mutations restores it.
func NewInt(v int) Int {
	return Int{v: v}
}

func (r *Int) Value() int {
	return r.v
}

func (r *Int) Set(t *Trail, v int) {
	t.saveInt(r)
	r.v = v
}

func (r *Int) Incr(t *Trail) {
	r.Set(t, r.v+1)
}

func (r *Int) Decr(t *Trail) {
	r.Set(t, r.v-1)
}
