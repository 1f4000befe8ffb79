// Copyright 2019 The Bnet Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command bnet demonstrates the propagation network on small built-in
// problems.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-cs/bnet"
	"github.com/go-cs/bnet/at"
	"github.com/go-cs/bnet/sv"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var trace bool
	cmd := &cobra.Command{
		Use:          "bnet",
		Short:        "boolean atom propagation demos",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVar(&trace, "trace", false, "log propagation events")
	cmd.AddCommand(pigeonCmd(&trace))
	return cmd
}

func pigeonCmd(trace *bool) *cobra.Command {
	var pigeons, holes int
	cmd := &cobra.Command{
		Use:   "pigeon",
		Short: "solve a pigeonhole instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPigeon(pigeons, holes, *trace)
		},
	}
	cmd.Flags().IntVarP(&pigeons, "pigeons", "p", 5, "number of pigeons")
	cmd.Flags().IntVarP(&holes, "holes", "n", 4, "number of holes")
	return cmd
}

func runPigeon(p, h int, trace bool) error {
	if p < 1 || h < 1 {
		return errors.Errorf("need at least one pigeon and one hole, got %d/%d", p, h)
	}

	s := sv.NewSolver()
	st := bnet.NewStore(s)
	if trace {
		log := logrus.New()
		log.SetLevel(logrus.DebugLevel)
		st.SetLogger(log)
	}

	x := make([][]*sv.IntVar, p)
	var vars []*sv.IntVar
	for i := range x {
		x[i] = make([]*sv.IntVar, h)
		for j := range x[i] {
			x[i][j] = s.BoolVar(fmt.Sprintf("x%d.%d", i, j))
			vars = append(vars, x[i][j])
		}
	}

	for j := 0; j < h; j++ {
		ws := make([]at.Atom, p)
		for i := 0; i < p; i++ {
			ws[i] = st.TrueAtom(x[i][j])
		}
		g, err := bnet.NewSumAtMost(ws, 1)
		if err != nil {
			return errors.Wrap(err, "hole capacity")
		}
		g.Post(st)
	}
	for i := 0; i < p; i++ {
		ws := make([]at.Atom, h)
		for j := 0; j < h; j++ {
			ws[j] = st.FalseAtom(x[i][j])
		}
		g, err := bnet.NewSumAtMost(ws, h-1)
		if err != nil {
			return errors.Wrap(err, "pigeon placement")
		}
		g.Post(st)
	}
	if err := st.Post(); err != nil {
		return errors.Wrap(err, "post")
	}

	ok, err := s.Label(vars)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Printf("UNSAT: %d pigeons do not fit %d holes\n", p, h)
		return nil
	}
	fmt.Printf("SAT\n")
	for i := 0; i < p; i++ {
		for j := 0; j < h; j++ {
			if x[i][j].Value() == 1 {
				fmt.Printf("pigeon %d -> hole %d\n", i, j)
			}
		}
	}
	return nil
}
