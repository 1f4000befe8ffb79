// Copyright 2019 The Bnet Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package at provides the index types naming boolean atoms.
//
// A variable is a 0-based store ordinal.  Each variable has two atoms, one
// per polarity: the variable with ordinal k has true-atom k+1 and false-atom
// -(k+1), so negating an atom index always yields the complementary atom of
// the same variable.  The value 0 never names an atom; flipping it fails the
// current search branch.
//
// As is common in SAT solvers, this representation is convenient for data
// structures indexed by variable or atom.
package at
