// Copyright 2019 The Bnet Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package at

import "fmt"

// Type Var is a store ordinal of a boolean variable.
type Var uint32

func (v Var) String() string {
	return fmt.Sprintf("v%d", v)
}

// Pos returns the atom which holds when v is true.
func (v Var) Pos() Atom {
	return Atom(int32(v) + 1)
}

// Neg returns the atom which holds when v is false.
func (v Var) Neg() Atom {
	return Atom(-(int32(v) + 1))
}
