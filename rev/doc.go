// Copyright 2019 The Bnet Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package rev provides trail-scoped reversible values for backtracking
// search.
//
// Every mutation of a reversible value pushes an undo record (the value's
// identity and its prior state) onto a Trail.  Rewinding the trail to a
// marker restores, in reverse order, everything mutated since the marker was
// taken.  A value is saved at most once per era, where an era is the span
// between two trail events (Mark or BackTo); repeated mutations within an
// era cost one record.
//
// All state that changes during propagation must live in these types, or it
// will be corrupted by backtracking.
package rev
