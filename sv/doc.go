// Copyright 2019 The Bnet Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package sv provides the minimal solving host the propagation network
// plugs into: a Solver owning one trail and the branch-failure signal,
// integer decision variables with bound-event demons, negation views over
// boolean variables, and a depth-first labeling search.
//
// Everything is single-threaded and synchronous: tightening a domain runs
// any resulting demons, and through them arbitrary propagation, before the
// call returns.  A branch failure is the sentinel ErrFailed; callers rewind
// the trail and try something else.
package sv
