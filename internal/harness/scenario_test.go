package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario_YAML(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/kanban_board.yaml")
	require.NoError(t, err)

	assert.Equal(t, "kanban_board", s.Name)
	require.Len(t, s.Steps, 11)
	assert.Equal(t, OpCreateList, s.Steps[0].Op)
	assert.Equal(t, "board", s.Steps[1].Parent)
	require.NotNil(t, s.Steps[5].Index)
	assert.Equal(t, 0, *s.Steps[5].Index)
	assert.Equal(t, []string{"write spec", "build engine", "test engine", "ship"}, s.Steps[4].Titles)
	require.Len(t, s.Assertions, 5)
	assert.Equal(t, AssertMaxKeyLength, s.Assertions[4].Type)
	assert.Equal(t, 4, s.Assertions[4].Max)
}

func TestLoadScenario_CUE(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/hotspot_rebalance.cue")
	require.NoError(t, err)

	assert.Equal(t, "hotspot_rebalance", s.Name)
	require.Len(t, s.Steps, 11)
	assert.Equal(t, OpInsert, s.Steps[2].Op)
	require.NotNil(t, s.Steps[2].Index)
	assert.Equal(t, 1, *s.Steps[2].Index)
	assert.Equal(t, []string{"n0"}, s.Steps[2].Titles)
	assert.Equal(t, OpRebalance, s.Steps[10].Op)
}

func TestLoadScenario_Errors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
		return path
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "missing file",
			path: filepath.Join(dir, "absent.yaml"),
			want: "failed to read scenario file",
		},
		{
			name: "unknown field",
			path: write("typo.yaml", "name: x\ndescription: y\nstep: []\n"),
			want: "failed to parse YAML",
		},
		{
			name: "no steps",
			path: write("empty.yaml", "name: x\ndescription: y\nsteps: []\n"),
			want: "steps list is required",
		},
		{
			name: "no description",
			path: write("nodesc.yaml", "name: x\nsteps: [{op: create_list, list: a}]\n"),
			want: "description is required",
		},
		{
			name: "unknown op",
			path: write("op.yaml", "name: x\ndescription: y\nsteps: [{op: shuffle, list: a}]\n"),
			want: `unknown op "shuffle"`,
		},
		{
			name: "insert without index",
			path: write("idx.yaml", "name: x\ndescription: y\nsteps: [{op: insert, list: a, titles: [b]}]\n"),
			want: "index is required",
		},
		{
			name: "unknown assertion",
			path: write("assert.yaml", "name: x\ndescription: y\nsteps: [{op: create_list, list: a}]\nassertions: [{type: sorted, list: a}]\n"),
			want: `unknown type "sorted"`,
		},
		{
			name: "bad max",
			path: write("max.yaml", "name: x\ndescription: y\nsteps: [{op: create_list, list: a}]\nassertions: [{type: max_key_length, list: a}]\n"),
			want: "max must be positive",
		},
		{
			name: "duplicate title",
			path: write("dup.yaml", "name: x\ndescription: y\nsteps:\n  - {op: create_list, list: a}\n  - {op: add, list: a, titles: [p, q]}\n  - {op: insert, list: a, index: 0, titles: [q]}\n"),
			want: `step 2 (insert): title "q" already added by step 1`,
		},
		{
			name: "duplicate title in one step",
			path: write("dup1.yaml", "name: x\ndescription: y\nsteps:\n  - {op: create_list, list: a}\n  - {op: add, list: a, titles: [p, p]}\n"),
			want: `title "p" already added by step 1`,
		},
		{
			name: "cue syntax",
			path: write("syntax.cue", "name: {\n"),
			want: "failed to compile CUE",
		},
		{
			name: "cue incomplete",
			path: write("open.cue", "name: string\ndescription: \"d\"\nsteps: []\n"),
			want: "not concrete",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
