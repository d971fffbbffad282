package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"

	"github.com/hughdbrown/lazytig/internal/theme"
)

// TestProgramQuits runs the full program against a real repository and
// quits from the root view.
func TestProgramQuits(t *testing.T) {
	m := NewModel(testConfig(), theme.Default(), fixtureRepo(t, "initial commit"))
	tm := teatest.NewTestModel(
		t,
		m,
		teatest.WithInitialTermSize(120, 40),
	)

	// Let a few ticks deliver the history walk.
	time.Sleep(300 * time.Millisecond)

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	fm, ok := tm.FinalModel(t).(*Model)
	if !ok {
		t.Fatal("final model is not *Model")
	}
	if !fm.quitting {
		t.Error("model is not marked quitting after q")
	}
	fm.Close()
}

// TestProgramViewRoundTrip walks history -> status -> help and back,
// then quits from the root.
func TestProgramViewRoundTrip(t *testing.T) {
	m := NewModel(testConfig(), theme.Default(), fixtureRepo(t, "first", "second"))
	tm := teatest.NewTestModel(
		t,
		m,
		teatest.WithInitialTermSize(120, 40),
	)

	time.Sleep(300 * time.Millisecond)

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	time.Sleep(150 * time.Millisecond)

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	time.Sleep(50 * time.Millisecond)

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	time.Sleep(50 * time.Millisecond)

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	time.Sleep(50 * time.Millisecond)

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	fm, ok := tm.FinalModel(t).(*Model)
	if !ok {
		t.Fatal("final model is not *Model")
	}
	if !fm.quitting {
		t.Error("model is not marked quitting after q")
	}
	if depth := fm.views.Depth(); depth != 1 {
		t.Errorf("view stack depth = %d, want 1", depth)
	}
	fm.Close()
}
