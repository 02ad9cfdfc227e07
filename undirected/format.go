// SPDX-License-Identifier: MIT

package undirected

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------

const (
	_fmtEmpty  = "Empty graph"
	_fmtCorner = "V"
	_fmtSep    = "\t"
	_fmtRow    = "\r\n"
	_fmtTrue   = "1"
	_fmtFalse  = "0"
)

var _ fmt.Stringer = (*Graph[int])(nil)

// String renders the graph as a tab-separated table.
//
// The header row is "V" followed by every vertex; each following row is a
// vertex followed by its matrix row as 0/1 cells. Rows are joined with CRLF
// and there is no trailing CRLF. Vertices are formatted with fmt.Sprint.
// An empty graph renders as "Empty graph".
//
// Example for vertices [1 2 3] with edges (0,1), (1,0), (2,2):
//
//	"V\t1\t2\t3\r\n1\t0\t1\t0\r\n2\t1\t0\t0\r\n3\t0\t0\t1"
//
// The output is diagnostic only; there is no parser for it.
func (g *Graph[T]) String() string {
	if len(g.vertices) == 0 || g.incidence == nil {
		return _fmtEmpty
	}

	var b strings.Builder
	b.WriteString(_fmtCorner)
	for _, v := range g.vertices {
		b.WriteString(_fmtSep)
		b.WriteString(fmt.Sprint(v))
	}

	rows, cols := g.incidence.Shape()
	var i, j int
	var cell bool
	for i = 0; i < rows; i++ {
		b.WriteString(_fmtRow)
		if i < len(g.vertices) {
			b.WriteString(fmt.Sprint(g.vertices[i]))
		}
		for j = 0; j < cols; j++ {
			cell, _ = g.incidence.At(i, j) // in range by construction of the loop
			b.WriteString(_fmtSep)
			if cell {
				b.WriteString(_fmtTrue)
			} else {
				b.WriteString(_fmtFalse)
			}
		}
	}

	return b.String()
}
