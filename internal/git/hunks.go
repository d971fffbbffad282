package git

import (
	"fmt"

	fdiff "github.com/go-git/go-git/v5/plumbing/format/diff"
	"github.com/pmezard/go-difflib/difflib"
)

// contextLines is the shared context around changes, matching git's default.
const contextLines = 3

type runKind int

const (
	runEqual runKind = iota
	runInsert
	runDelete
)

// lineRun is a maximal run of lines sharing one diff operation. Both diff
// sources, tree patches and the line matcher, normalise to runs before hunk
// assembly so the rendering path is identical.
type lineRun struct {
	kind  runKind
	lines []string
}

// runsFromChunks converts go-git patch chunks into line runs.
func runsFromChunks(chunks []fdiff.Chunk) []lineRun {
	var runs []lineRun
	for _, ch := range chunks {
		lines := splitLines(ch.Content())
		if len(lines) == 0 {
			continue
		}
		kind := runEqual
		switch ch.Type() {
		case fdiff.Add:
			kind = runInsert
		case fdiff.Delete:
			kind = runDelete
		}
		runs = append(runs, lineRun{kind: kind, lines: lines})
	}
	return runs
}

// runsFromMatcher diffs two line slices with difflib and converts the
// opcodes into line runs. A replace opcode becomes a delete run followed by
// an insert run.
func runsFromMatcher(from, to []string) []lineRun {
	matcher := difflib.NewMatcher(from, to)
	var runs []lineRun
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'e':
			runs = append(runs, lineRun{kind: runEqual, lines: from[op.I1:op.I2]})
		case 'd':
			runs = append(runs, lineRun{kind: runDelete, lines: from[op.I1:op.I2]})
		case 'i':
			runs = append(runs, lineRun{kind: runInsert, lines: to[op.J1:op.J2]})
		case 'r':
			runs = append(runs, lineRun{kind: runDelete, lines: from[op.I1:op.I2]})
			runs = append(runs, lineRun{kind: runInsert, lines: to[op.J1:op.J2]})
		}
	}
	return runs
}

func countChanges(runs []lineRun) (additions, deletions int) {
	for _, run := range runs {
		switch run.kind {
		case runInsert:
			additions += len(run.lines)
		case runDelete:
			deletions += len(run.lines)
		}
	}
	return additions, deletions
}

// assembleHunks turns line runs into unified hunks: changes plus up to
// contextLines of surrounding equal lines, with 1-based line numbers on
// both sides and a standard @@ header.
func assembleHunks(runs []lineRun) []Hunk {
	var hunks []Hunk
	var cur *Hunk
	// lead holds the most recent equal lines while no hunk is open; they
	// become leading context when the next change arrives.
	var lead []Line
	oldNo, newNo := 1, 1

	flush := func() {
		if cur == nil {
			return
		}
		cur.Header = hunkHeader(cur.Lines)
		hunks = append(hunks, *cur)
		cur = nil
	}
	open := func() {
		if cur != nil {
			return
		}
		cur = &Hunk{Lines: append([]Line(nil), lead...)}
		lead = nil
	}

	for i, run := range runs {
		switch run.kind {
		case runEqual:
			lines := run.lines
			if cur != nil {
				if i < len(runs)-1 && len(lines) <= 2*contextLines {
					// Short gap between changes: keep it inside
					// the hunk.
					for _, l := range lines {
						cur.Lines = append(cur.Lines, Line{Kind: LineContext, Content: l, OldNo: oldNo, NewNo: newNo})
						oldNo++
						newNo++
					}
					continue
				}
				n := contextLines
				if n > len(lines) {
					n = len(lines)
				}
				for _, l := range lines[:n] {
					cur.Lines = append(cur.Lines, Line{Kind: LineContext, Content: l, OldNo: oldNo, NewNo: newNo})
					oldNo++
					newNo++
				}
				lines = lines[n:]
				flush()
			}
			for _, l := range lines {
				lead = append(lead, Line{Kind: LineContext, Content: l, OldNo: oldNo, NewNo: newNo})
				oldNo++
				newNo++
				if len(lead) > contextLines {
					lead = lead[1:]
				}
			}
		case runDelete:
			open()
			for _, l := range run.lines {
				cur.Lines = append(cur.Lines, Line{Kind: LineDeletion, Content: l, OldNo: oldNo})
				oldNo++
			}
		case runInsert:
			open()
			for _, l := range run.lines {
				cur.Lines = append(cur.Lines, Line{Kind: LineAddition, Content: l, NewNo: newNo})
				newNo++
			}
		}
	}
	flush()
	return hunks
}

// hunkHeader renders the @@ header from the assembled lines. A side with no
// lines at all reports start 0, matching git's convention for file creation
// and deletion.
func hunkHeader(lines []Line) string {
	oldStart, newStart := 0, 0
	oldCount, newCount := 0, 0
	for _, l := range lines {
		if l.OldNo > 0 {
			if oldStart == 0 {
				oldStart = l.OldNo
			}
			oldCount++
		}
		if l.NewNo > 0 {
			if newStart == 0 {
				newStart = l.NewNo
			}
			newCount++
		}
	}
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", oldStart, oldCount, newStart, newCount)
}
