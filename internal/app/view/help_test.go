package view

import (
	"strings"
	"testing"

	"github.com/hughdbrown/lazytig/internal/theme"
)

func TestHelpListsBindings(t *testing.T) {
	h := NewHelp(testConfig(), theme.Default())
	h.SetSize(80, 30)

	out := h.Render()
	for _, want := range []string{"Navigation", "Views", "Working tree", "j, down", "move down one row", "stage the file under the cursor"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected help to contain %q", want)
		}
	}
}

func TestHelpClosesOnHelpKeys(t *testing.T) {
	h := NewHelp(testConfig(), theme.Default())
	h.SetSize(80, 30)

	for _, key := range []string{"q", "esc", "?"} {
		if act := h.HandleKey(keyMsg(key)); act.Kind != ActionPop {
			t.Errorf("expected %q to pop, got %v", key, act.Kind)
		}
	}
}

func TestHelpScrolls(t *testing.T) {
	h := NewHelp(testConfig(), theme.Default())
	h.SetSize(80, 5)

	h.HandleKey(keyMsg("G"))
	if !h.vp.AtBottom() {
		t.Error("expected G to scroll to the bottom")
	}
	h.HandleKey(keyMsg("g"))
	if !h.vp.AtTop() {
		t.Error("expected g to scroll back to the top")
	}
}
