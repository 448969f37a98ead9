package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const diamondCSV = "id_1,id_2\n1,2\n2,3\n1,4\n2,4\n3,4\n"

func TestRun_Diamond(t *testing.T) {
	dir := t.TempDir()
	edges := filepath.Join(dir, "edges.csv")
	require.NoError(t, os.WriteFile(edges, []byte(diamondCSV), 0o644))

	var out bytes.Buffer
	err := run([]string{"-edges", edges, "-sample", "4", "-seed", "3", "-out", dir, "-list"}, &out)
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, "Number of edges: 5")
	assert.Contains(t, s, "Number of vertices: 4")
	assert.Contains(t, s, "--> Breadth First Search Algorithm")
	assert.Contains(t, s, "--> Dijkstras Algorithm")
	assert.Contains(t, s, "Total pairs: 6")
	assert.Contains(t, s, "Mean Distance: 1.17")

	for _, name := range []string{"BFS.txt", "Dijkstras.txt"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "Number of distances computed: 6")
	}
}

func TestRun_OversizedSampleFails(t *testing.T) {
	dir := t.TempDir()
	edges := filepath.Join(dir, "edges.csv")
	require.NoError(t, os.WriteFile(edges, []byte(diamondCSV), 0o644))

	var out bytes.Buffer
	err := run([]string{"-edges", edges, "-sample", "5", "-out", dir}, &out)
	assert.Error(t, err)
}

func TestRun_SyntheticWithTiming(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "degrees.toml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
[sampling]
size = 8
seed = 5
workers = 2
algorithms = ["bfs"]

[timing]
sizes = [3]
iterations = 2
`), 0o644))

	var out bytes.Buffer
	err := run([]string{"-config", cfg, "-synthetic", "60", "-p", "0.1", "-timing", "-out", dir}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Total pairs: 28")
	assert.Contains(t, out.String(), "Breadth First Search Algorithm Timings")
	assert.NoFileExists(t, filepath.Join(dir, "Dijkstras.txt"))
	assert.FileExists(t, filepath.Join(dir, "BFS.txt"))
}
