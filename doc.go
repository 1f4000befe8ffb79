// Copyright 2019 The Bnet Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package bnet implements a boolean atom propagation network for a
// trail-based constraint solver.
//
// Every boolean variable of the host solver owns a pair of atoms, one per
// polarity, named by signed indices (package at).  Atoms carry directed
// implication edges and subscriptions from two kinds of aggregate
// constraints over fixed watch lists: SumAtMost, which fails once more than
// k watched atoms hold and forces the rest false when exactly k hold, and
// SumTrigger, which flips a fixed set of action atoms once at least k
// watched atoms hold and then stops listening for the rest of the branch.
//
// The Store owns all atoms and is the single propagation entry point.
// Flipping an atom whose complement already holds fails the branch; an
// admissible flip cascades synchronously through implication edges and
// constraint notifications, depth first, before the triggering call returns.
// All state touched during propagation is trail-scoped (package rev), so
// rewinding the host's trail restores the whole network exactly.
//
// The network is populated at posting time only, through Store methods and
// the relation builders AddBoolEq, AddBoolLe and AddBoolNot; propagation
// never grows the graph.
package bnet
