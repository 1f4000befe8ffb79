// Copyright 2019 The Bnet Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package at

import "fmt"

// Type Atom is a signed atom index.
type Atom int32

// Null is the reserved non-atom.  It never names a real atom and asking a
// store to flip it fails the current branch.
const Null Atom = 0

// IsNull tests whether a is the reserved non-atom.
func (a Atom) IsNull() bool {
	return a == Null
}

// Not returns the complementary atom of the same variable.
func (a Atom) Not() Atom {
	return -a
}

// IsPos tests whether a is a true-polarity atom.  a must not be Null.
func (a Atom) IsPos() bool {
	return a > 0
}

// Var returns the ordinal of a's variable.  a must not be Null.
func (a Atom) Var() Var {
	if a < 0 {
		return Var(-a - 1)
	}
	return Var(a - 1)
}

func (a Atom) String() string {
	if a.IsNull() {
		return "a0"
	}
	if a < 0 {
		return fmt.Sprintf("~a%d", -a)
	}
	return fmt.Sprintf("a%d", int32(a))
}
