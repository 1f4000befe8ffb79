// Copyright 2019 The Bnet Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sv

// IntExpr is anything that may denote a boolean variable: a variable itself
// or a negation view of one.
type IntExpr interface {
	boolOf() (*IntVar, bool, bool)
}

func (v *IntVar) boolOf() (*IntVar, bool, bool) {
	if v.min.Value() < 0 || v.max.Value() > 1 {
		return nil, false, false
	}
	return v, false, true
}

type notView struct {
	e IntExpr
}

func (n notView) boolOf() (*IntVar, bool, bool) {
	v, neg, ok := n.e.boolOf()
	return v, !neg, ok
}

// Not returns a view denoting the logical negation of e.  Views nest; two
// negations cancel.
func Not(e IntExpr) IntExpr {
	return notView{e: e}
}

// BoolOf resolves e to its underlying variable and polarity.  It reports
// ok=false when the expression does not denote a boolean variable, that is,
// when the underlying domain is not within {0, 1}.
func BoolOf(e IntExpr) (v *IntVar, negated bool, ok bool) {
	return e.boolOf()
}
