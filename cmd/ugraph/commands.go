// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// options holds the flags shared by every subcommand.
type options struct {
	vertices  []string
	edges     []string
	symmetric bool
	verbose   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "ugraph",
		Short:         "Build an undirected graph from flags and print it",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			log.SetOutput(cmd.ErrOrStderr())
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
		},
	}

	f := root.PersistentFlags()
	f.StringSliceVar(&opts.vertices, "vertex", nil, "vertex value; repeat or comma-separate, order defines indices")
	f.StringSliceVar(&opts.edges, "edge", nil, "edge as FROM:TO between vertex values")
	f.BoolVar(&opts.symmetric, "symmetric", false, "also set TO:FROM for every edge")
	f.BoolVar(&opts.verbose, "verbose", false, "log each applied edge")

	root.AddCommand(newRenderCmd(opts), newPairsCmd(opts))

	return root
}

func newRenderCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Print the tab-separated incidence table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := buildGraph(opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), g.String())
			return err
		},
	}
}

func newPairsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "pairs",
		Short: "Print one connected ordered pair per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := buildGraph(opts)
			if err != nil {
				return err
			}
			n := 0
			for a, b := range g.Pairs() {
				if _, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", a, b); err != nil {
					return err
				}
				n++
			}
			log.WithField("pairs", n).Debug("pairs listed")
			return nil
		},
	}
}
