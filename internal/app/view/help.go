package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hughdbrown/lazytig/internal/config"
	"github.com/hughdbrown/lazytig/internal/theme"
)

var helpSections = []struct {
	title   string
	actions []string
}{
	{"Navigation", []string{
		config.ActionDown, config.ActionUp, config.ActionTop, config.ActionBottom,
		config.ActionPageDown, config.ActionPageUp,
	}},
	{"Views", []string{
		config.ActionSelect, config.ActionStatus, config.ActionHelp,
		config.ActionBack, config.ActionQuit,
	}},
	{"Working tree", []string{config.ActionStage, config.ActionUnstage}},
	{"Other", []string{config.ActionSearch, config.ActionRefresh, config.ActionYank}},
}

var actionHelp = map[string]string{
	config.ActionDown:     "move down one row",
	config.ActionUp:       "move up one row",
	config.ActionTop:      "jump to the first row",
	config.ActionBottom:   "jump to the last row",
	config.ActionPageDown: "scroll down",
	config.ActionPageUp:   "scroll up",
	config.ActionSelect:   "open the commit or file under the cursor",
	config.ActionStatus:   "open the working tree status",
	config.ActionHelp:     "show this help",
	config.ActionBack:     "go back to the previous view",
	config.ActionQuit:     "close the view, quit from the history",
	config.ActionStage:    "stage the file under the cursor",
	config.ActionUnstage:  "unstage the file under the cursor",
	config.ActionSearch:   "search the commit log",
	config.ActionRefresh:  "reload the current view",
	config.ActionYank:     "copy the commit hash or file path",
}

// Help lists the active key bindings grouped by what they do.
type Help struct {
	cfg *config.AppConfig
	thm *theme.Theme

	width  int
	height int
	vp     viewport.Model
}

// NewHelp creates the key binding reference view.
func NewHelp(cfg *config.AppConfig, thm *theme.Theme) *Help {
	return &Help{cfg: cfg, thm: thm, vp: viewport.New(0, 0)}
}

// Type returns the view type.
func (v *Help) Type() Type { return TypeHelp }

// Title returns the status bar label.
func (v *Help) Title() string { return "help" }

// SetSize updates the render area.
func (v *Help) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.vp.Width = maxInt(0, width)
	v.vp.Height = maxInt(1, height)
	v.vp.SetContent(v.content())
}

// Activate is a no-op; the content is static per configuration.
func (v *Help) Activate() {}

// Deactivate is a no-op.
func (v *Help) Deactivate() {}

// Refresh is a no-op; help has no background work.
func (v *Help) Refresh() error { return nil }

// HandleKey scrolls the listing or closes the view.
func (v *Help) HandleKey(msg tea.KeyMsg) Action {
	keys := v.cfg.Keys
	key := msg.String()
	switch {
	case keys.Matches(config.ActionQuit, key),
		keys.Matches(config.ActionBack, key),
		keys.Matches(config.ActionHelp, key):
		return popAction()
	case keys.Matches(config.ActionDown, key):
		v.vp.LineDown(1)
	case keys.Matches(config.ActionUp, key):
		v.vp.LineUp(1)
	case keys.Matches(config.ActionTop, key):
		v.vp.GotoTop()
	case keys.Matches(config.ActionBottom, key):
		v.vp.GotoBottom()
	case keys.Matches(config.ActionPageDown, key):
		v.vp.HalfViewDown()
	case keys.Matches(config.ActionPageUp, key):
		v.vp.HalfViewUp()
	}
	return Action{}
}

// Render draws the pager.
func (v *Help) Render() string {
	if v.width <= 0 || v.height <= 0 {
		return ""
	}
	return v.vp.View()
}

func (v *Help) content() string {
	titleStyle := lipgloss.NewStyle().Foreground(v.thm.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(v.thm.FileFg)
	descStyle := lipgloss.NewStyle().Foreground(v.thm.TextFg)

	var b strings.Builder
	for si, section := range helpSections {
		if si > 0 {
			b.WriteString("\n")
		}
		b.WriteString(titleStyle.Render(section.title) + "\n")
		for _, action := range section.actions {
			keys := strings.Join(v.cfg.Keys.Keys(action), ", ")
			b.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(padCell(keys, 16)), descStyle.Render(actionHelp[action])))
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}
