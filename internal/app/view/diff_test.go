package view

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/hughdbrown/lazytig/internal/async"
	"github.com/hughdbrown/lazytig/internal/git"
	"github.com/hughdbrown/lazytig/internal/theme"
)

func sampleDiff() git.Diff {
	return git.Diff{
		Files: []git.FileDiff{{
			OldPath: "main.go",
			NewPath: "main.go",
			Status:  git.FileModified,
			Hunks: []git.Hunk{{
				Header: "@@ -1,3 +1,3 @@",
				Lines: []git.Line{
					{Kind: git.LineContext, Content: "package main", OldNo: 1, NewNo: 1},
					{Kind: git.LineDeletion, Content: "old line", OldNo: 2},
					{Kind: git.LineAddition, Content: "new line", NewNo: 2},
					{Kind: git.LineContext, Content: "func main() {}", OldNo: 3, NewNo: 3},
				},
			}},
			Additions: 1,
			Deletions: 1,
		}},
		Additions: 1,
		Deletions: 1,
	}
}

func newTestDiff(backend *fakeBackend, req OpenRequest) *Diff {
	d := NewDiff(backend, async.NewPool(2), testConfig(), theme.Default(), nil, req)
	d.SetSize(100, 30)
	return d
}

func TestDiffCommitView(t *testing.T) {
	backend := &fakeBackend{diff: sampleDiff()}
	hash := strings.Repeat("a", 40)
	d := newTestDiff(backend, OpenRequest{Kind: OpenCommitDiff, Commit: hash, Summary: "tighten parser"})

	d.Activate()
	refreshUntil(t, d, func() bool { return d.state == stateLoaded })

	out := d.Render()
	for _, want := range []string{
		"commit " + hash,
		"tighten parser",
		"1 file changed, 1 insertions(+), 1 deletions(-)",
		"modified main.go",
		"@@ -1,3 +1,3 @@",
		"-old line",
		"+new line",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected render to contain %q", want)
		}
	}
	if d.Title() != "commit aaaaaaa" {
		t.Errorf("unexpected title %q", d.Title())
	}
}

func TestDiffCommitMessageBodyWraps(t *testing.T) {
	diff := sampleDiff()
	diff.Message = "tighten parser\n\nReject trailing garbage after the closing brace instead of silently dropping it.\n"
	backend := &fakeBackend{diff: diff}
	d := newTestDiff(backend, OpenRequest{Kind: OpenCommitDiff, Commit: strings.Repeat("a", 40), Summary: "tighten parser"})
	d.SetSize(40, 30)

	d.Activate()
	refreshUntil(t, d, func() bool { return d.state == stateLoaded })

	out := d.Render()
	if !strings.Contains(out, "Reject trailing garbage") {
		t.Fatalf("render missing the message body:\n%s", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if lipgloss.Width(line) > 40 {
			t.Errorf("line exceeds the view width: %q", line)
		}
	}
}

func TestDiffFileTitles(t *testing.T) {
	backend := &fakeBackend{diff: sampleDiff()}

	staged := newTestDiff(backend, OpenRequest{Kind: OpenStagedDiff, Path: "main.go"})
	if staged.Title() != "staged: main.go" {
		t.Errorf("unexpected staged title %q", staged.Title())
	}

	unstaged := newTestDiff(backend, OpenRequest{Kind: OpenUnstagedDiff, Path: "main.go"})
	if unstaged.Title() != "unstaged: main.go" {
		t.Errorf("unexpected unstaged title %q", unstaged.Title())
	}
}

func TestDiffFileViewSkipsCommitHeader(t *testing.T) {
	backend := &fakeBackend{diff: sampleDiff()}
	d := newTestDiff(backend, OpenRequest{Kind: OpenUnstagedDiff, Path: "main.go"})

	d.Activate()
	refreshUntil(t, d, func() bool { return d.state == stateLoaded })

	out := d.Render()
	if strings.Contains(out, "commit ") {
		t.Error("expected no commit header in a file diff")
	}
	if !strings.Contains(out, "modified main.go") {
		t.Error("expected the file header")
	}
}

func TestDiffBinaryFile(t *testing.T) {
	backend := &fakeBackend{diff: git.Diff{
		Files: []git.FileDiff{{NewPath: "logo.png", Status: git.FileAdded, Binary: true}},
	}}
	d := newTestDiff(backend, OpenRequest{Kind: OpenUnstagedDiff, Path: "logo.png"})

	d.Activate()
	refreshUntil(t, d, func() bool { return d.state == stateLoaded })

	if out := d.Render(); !strings.Contains(out, "binary file differs") {
		t.Error("expected the binary notice")
	}
}

func TestDiffEmpty(t *testing.T) {
	backend := &fakeBackend{}
	d := newTestDiff(backend, OpenRequest{Kind: OpenUnstagedDiff, Path: "same.go"})

	d.Activate()
	refreshUntil(t, d, func() bool { return d.state == stateLoaded })

	if out := d.Render(); !strings.Contains(out, "no changes") {
		t.Errorf("expected the empty notice, got %q", out)
	}
}

func TestDiffErrorSurfaces(t *testing.T) {
	backend := &fakeBackend{diffErr: errors.New("bad object")}
	d := newTestDiff(backend, OpenRequest{Kind: OpenCommitDiff, Commit: strings.Repeat("b", 40)})

	d.Activate()
	err := refreshUntilErr(t, d)

	if !strings.Contains(err.Error(), "bad object") {
		t.Errorf("expected the backend error, got %v", err)
	}
	if out := d.Render(); !strings.Contains(out, "error:") {
		t.Error("expected the error to be rendered")
	}
}

func TestDiffScrollAndPop(t *testing.T) {
	many := sampleDiff()
	lines := make([]git.Line, 200)
	for i := range lines {
		lines[i] = git.Line{Kind: git.LineContext, Content: "x", OldNo: i + 1, NewNo: i + 1}
	}
	many.Files[0].Hunks[0].Lines = lines
	backend := &fakeBackend{diff: many}
	d := newTestDiff(backend, OpenRequest{Kind: OpenUnstagedDiff, Path: "main.go"})

	d.Activate()
	refreshUntil(t, d, func() bool { return d.state == stateLoaded })

	d.HandleKey(keyMsg("G"))
	if !d.vp.AtBottom() {
		t.Error("expected G to scroll to the bottom")
	}
	d.HandleKey(keyMsg("g"))
	if !d.vp.AtTop() {
		t.Error("expected g to scroll back to the top")
	}

	if act := d.HandleKey(keyMsg("q")); act.Kind != ActionPop {
		t.Errorf("expected q to pop, got %v", act.Kind)
	}
	if act := d.HandleKey(keyMsg("esc")); act.Kind != ActionPop {
		t.Errorf("expected esc to pop, got %v", act.Kind)
	}
}

func TestDiffLineNumbersToggle(t *testing.T) {
	backend := &fakeBackend{diff: sampleDiff()}
	d := newTestDiff(backend, OpenRequest{Kind: OpenUnstagedDiff, Path: "main.go"})
	d.cfg.ShowLineNumbers = false

	d.Activate()
	refreshUntil(t, d, func() bool { return d.state == stateLoaded })

	out := d.Render()
	if !strings.Contains(out, "+new line") {
		t.Error("expected the addition line")
	}
	if strings.Contains(out, "   2    ") {
		t.Error("expected no line number gutter")
	}
}
