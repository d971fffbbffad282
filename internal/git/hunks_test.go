package git

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedLines(prefix string, n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}
	return lines
}

func TestAssembleSingleModification(t *testing.T) {
	runs := []lineRun{
		{kind: runEqual, lines: numberedLines("l", 5)},
		{kind: runDelete, lines: []string{"old"}},
		{kind: runInsert, lines: []string{"new"}},
		{kind: runEqual, lines: numberedLines("t", 5)},
	}

	hunks := assembleHunks(runs)
	require.Len(t, hunks, 1)
	h := hunks[0]
	assert.Equal(t, "@@ -3,7 +3,7 @@", h.Header)
	require.Len(t, h.Lines, 8)

	assert.Equal(t, Line{Kind: LineContext, Content: "l3", OldNo: 3, NewNo: 3}, h.Lines[0])
	assert.Equal(t, Line{Kind: LineDeletion, Content: "old", OldNo: 6}, h.Lines[3])
	assert.Equal(t, Line{Kind: LineAddition, Content: "new", NewNo: 6}, h.Lines[4])
	assert.Equal(t, Line{Kind: LineContext, Content: "t3", OldNo: 9, NewNo: 9}, h.Lines[7])
}

func TestAssembleSplitsDistantChanges(t *testing.T) {
	runs := []lineRun{
		{kind: runEqual, lines: numberedLines("a", 10)},
		{kind: runDelete, lines: []string{"gone"}},
		{kind: runEqual, lines: numberedLines("b", 20)},
		{kind: runInsert, lines: []string{"added"}},
		{kind: runEqual, lines: numberedLines("c", 10)},
	}

	hunks := assembleHunks(runs)
	require.Len(t, hunks, 2)

	assert.Equal(t, "@@ -8,7 +8,6 @@", hunks[0].Header)
	require.Len(t, hunks[0].Lines, 7)
	assert.Equal(t, Line{Kind: LineDeletion, Content: "gone", OldNo: 11}, hunks[0].Lines[3])

	assert.Equal(t, "@@ -29,6 +28,7 @@", hunks[1].Header)
	require.Len(t, hunks[1].Lines, 7)
	assert.Equal(t, Line{Kind: LineAddition, Content: "added", NewNo: 31}, hunks[1].Lines[3])
}

func TestAssembleKeepsShortGapInOneHunk(t *testing.T) {
	runs := []lineRun{
		{kind: runDelete, lines: []string{"first"}},
		{kind: runEqual, lines: numberedLines("g", 4)},
		{kind: runInsert, lines: []string{"last"}},
	}

	hunks := assembleHunks(runs)
	require.Len(t, hunks, 1)
	assert.Equal(t, "@@ -1,5 +1,5 @@", hunks[0].Header)
	require.Len(t, hunks[0].Lines, 6)
}

func TestAssemblePureAddition(t *testing.T) {
	hunks := assembleHunks([]lineRun{{kind: runInsert, lines: numberedLines("n", 4)}})
	require.Len(t, hunks, 1)
	assert.Equal(t, "@@ -0,0 +1,4 @@", hunks[0].Header)
	for i, l := range hunks[0].Lines {
		assert.Equal(t, LineAddition, l.Kind)
		assert.Equal(t, 0, l.OldNo)
		assert.Equal(t, i+1, l.NewNo)
	}
}

func TestAssemblePureDeletion(t *testing.T) {
	hunks := assembleHunks([]lineRun{{kind: runDelete, lines: numberedLines("d", 3)}})
	require.Len(t, hunks, 1)
	assert.Equal(t, "@@ -1,3 +0,0 @@", hunks[0].Header)
}

func TestAssembleClipsTrailingContext(t *testing.T) {
	runs := []lineRun{
		{kind: runEqual, lines: numberedLines("a", 2)},
		{kind: runInsert, lines: []string{"mid"}},
		{kind: runEqual, lines: numberedLines("b", 10)},
	}

	hunks := assembleHunks(runs)
	require.Len(t, hunks, 1)
	assert.Equal(t, "@@ -1,5 +1,6 @@", hunks[0].Header)
	require.Len(t, hunks[0].Lines, 6)
	last := hunks[0].Lines[5]
	assert.Equal(t, "b3", last.Content)
}

func TestAssembleNoChanges(t *testing.T) {
	hunks := assembleHunks([]lineRun{{kind: runEqual, lines: numberedLines("x", 8)}})
	assert.Empty(t, hunks)
}

func TestRunsFromMatcher(t *testing.T) {
	from := []string{"a", "b", "c", "d"}
	to := []string{"a", "x", "c", "d", "e"}

	runs := runsFromMatcher(from, to)
	require.Len(t, runs, 5)
	assert.Equal(t, lineRun{kind: runEqual, lines: []string{"a"}}, runs[0])
	assert.Equal(t, lineRun{kind: runDelete, lines: []string{"b"}}, runs[1])
	assert.Equal(t, lineRun{kind: runInsert, lines: []string{"x"}}, runs[2])
	assert.Equal(t, lineRun{kind: runEqual, lines: []string{"c", "d"}}, runs[3])
	assert.Equal(t, lineRun{kind: runInsert, lines: []string{"e"}}, runs[4])
}

func TestCountChanges(t *testing.T) {
	additions, deletions := countChanges([]lineRun{
		{kind: runEqual, lines: numberedLines("e", 5)},
		{kind: runInsert, lines: numberedLines("i", 3)},
		{kind: runDelete, lines: numberedLines("d", 2)},
		{kind: runInsert, lines: numberedLines("j", 1)},
	})
	assert.Equal(t, 4, additions)
	assert.Equal(t, 2, deletions)
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, splitLines(""))
	assert.Equal(t, []string{"a"}, splitLines("a\n"))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb"))
	assert.Equal(t, []string{"a", ""}, splitLines("a\n\n"))
}
