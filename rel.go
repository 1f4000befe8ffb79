// Copyright 2019 The Bnet Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bnet

import (
	"github.com/go-cs/bnet/at"
	"github.com/go-cs/bnet/sv"
)

// The relation builders translate a boolean relation between two expressions
// into implication edges on the store.  Each reports false, leaving the
// network untouched, when either expression does not resolve to a boolean
// variable.  Builders only build; they never flip anything.

// AddBoolEq encodes l == r.
func AddBoolEq(st *Store, l, r sv.IntExpr) bool {
	la, ra, ok := resolve(st, l, r)
	if !ok {
		return false
	}
	st.AddImplication(la, ra)
	st.AddImplication(ra, la)
	st.AddImplication(la.Not(), ra.Not())
	st.AddImplication(ra.Not(), la.Not())
	return true
}

// AddBoolLe encodes l <= r over 0/1 values, that is, l implies r.
func AddBoolLe(st *Store, l, r sv.IntExpr) bool {
	la, ra, ok := resolve(st, l, r)
	if !ok {
		return false
	}
	st.AddImplication(la, ra)
	st.AddImplication(ra.Not(), la.Not())
	return true
}

// AddBoolNot encodes l == not r.
func AddBoolNot(st *Store, l, r sv.IntExpr) bool {
	la, ra, ok := resolve(st, l, r)
	if !ok {
		return false
	}
	st.AddImplication(la, ra.Not())
	st.AddImplication(ra, la.Not())
	st.AddImplication(la.Not(), ra)
	st.AddImplication(ra.Not(), la)
	return true
}

func resolve(st *Store, l, r sv.IntExpr) (la, ra at.Atom, ok bool) {
	lv, ln, ok := sv.BoolOf(l)
	if !ok {
		return at.Null, at.Null, false
	}
	rv, rn, ok := sv.BoolOf(r)
	if !ok {
		return at.Null, at.Null, false
	}
	return st.AtomOf(lv, ln), st.AtomOf(rv, rn), true
}
