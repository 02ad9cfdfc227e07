// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/ugraph/undirected"
)

var errBadEdge = errors.New("malformed edge, want FROM:TO")

// buildGraph creates the graph over opts.vertices and applies opts.edges by value.
func buildGraph(opts *options) (*undirected.Graph[string], error) {
	g := undirected.New(opts.vertices...)
	log.WithField("vertices", g.Count()).Debug("graph created")

	for _, arg := range opts.edges {
		from, to, ok := strings.Cut(arg, ":")
		if !ok {
			return nil, fmt.Errorf("edge %q: %w", arg, errBadEdge)
		}
		if err := g.SetEdgeBetween(from, to, true); err != nil {
			return nil, fmt.Errorf("edge %q: %w", arg, err)
		}
		if opts.symmetric && from != to {
			if err := g.SetEdgeBetween(to, from, true); err != nil {
				return nil, fmt.Errorf("edge %q: %w", arg, err)
			}
		}
		log.WithFields(log.Fields{
			"from":      from,
			"to":        to,
			"symmetric": opts.symmetric,
		}).Debug("edge applied")
	}

	return g, nil
}
