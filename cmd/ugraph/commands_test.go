// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ugraph/undirected"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRender(t *testing.T) {
	out, _, err := run(t, "render", "--vertex", "1,2,3", "--edge", "1:2", "--symmetric", "--edge", "3:3")
	require.NoError(t, err)
	assert.Equal(t, "V\t1\t2\t3\r\n1\t0\t1\t0\r\n2\t1\t0\t0\r\n3\t0\t0\t1\n", out)
}

func TestRender_Empty(t *testing.T) {
	out, _, err := run(t, "render")
	require.NoError(t, err)
	assert.Equal(t, "Empty graph\n", out)
}

func TestPairs(t *testing.T) {
	out, _, err := run(t, "pairs", "--vertex", "a", "--vertex", "b", "--edge", "a:b", "--edge", "b:b")
	require.NoError(t, err)
	assert.Equal(t, "a b\nb b\n", out)
}

func TestVerboseLogsEdges(t *testing.T) {
	_, logs, err := run(t, "render", "--verbose", "--vertex", "a,b", "--edge", "a:b")
	require.NoError(t, err)
	assert.Contains(t, logs, "edge applied")
}

func TestBuildGraphErrors(t *testing.T) {
	_, _, err := run(t, "render", "--vertex", "a", "--edge", "a:z")
	require.ErrorIs(t, err, undirected.ErrVertexNotFound)

	_, _, err = run(t, "render", "--vertex", "a", "--edge", "a-a")
	require.ErrorIs(t, err, errBadEdge)

	_, _, err = run(t, "render", "--edge", "a:a")
	require.ErrorIs(t, err, undirected.ErrEmptyGraph)
}
