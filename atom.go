// Copyright 2019 The Bnet Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bnet

import (
	"fmt"

	"github.com/go-cs/bnet/at"
	"github.com/go-cs/bnet/rev"
)

// node is one atom of the network: its outgoing implication edges, its
// constraint subscriptions and its trail-scoped flipped flag.  Guards listen
// for the node's whole lifetime, so their list is append-only; triggers
// unsubscribe mid-branch, so they live in a reversible set.
type node struct {
	a       at.Atom
	imps    []at.Atom
	guards  []*SumAtMost
	trigs   rev.Set[*SumTrigger]
	flipped rev.Switch
}

func newNode(a at.Atom) *node {
	return &node{a: a}
}

func (n *node) listen(g *SumAtMost) {
	n.guards = append(n.guards, g)
}

func (n *node) listenTrigger(t *rev.Trail, c *SumTrigger) {
	n.trigs.Insert(t, c)
}

func (n *node) stopListening(t *rev.Trail, c *SumTrigger) {
	n.trigs.RemoveValue(t, c)
}

func (n *node) addImplication(dst at.Atom) {
	n.imps = append(n.imps, dst)
}

// flip marks the node and runs the cascade: implication targets in edge
// declaration order, then guards in subscription order, then triggers in
// subscription order.  Nested flips run to completion before the next
// sibling notification.  The caller (the Store) must have established that
// neither this node nor its complement is flipped; flipping a flipped node
// is a logic error and panics via the switch.
func (n *node) flip(st *Store) error {
	if n.flipped.On() {
		panic(fmt.Sprintf("bnet: %s flipped twice without a rewind", n.a))
	}
	n.flipped.Set(st.s.Trail())
	for _, d := range n.imps {
		if err := st.Flip(d); err != nil {
			return err
		}
	}
	for _, g := range n.guards {
		if err := g.onFlip(st); err != nil {
			return err
		}
	}
	// Len shrinks live when a notified trigger fires and unsubscribes
	// itself; the indexed loop matches subscription order for survivors.
	for i := 0; i < n.trigs.Len(); i++ {
		if err := n.trigs.At(i).onFlip(st); err != nil {
			return err
		}
	}
	return nil
}
