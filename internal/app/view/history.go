package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/hughdbrown/lazytig/internal/async"
	"github.com/hughdbrown/lazytig/internal/config"
	"github.com/hughdbrown/lazytig/internal/git"
	"github.com/hughdbrown/lazytig/internal/theme"
)

// relativeDateWidth fits the widest relative stamp, "59 minutes ago".
const relativeDateWidth = 14

// History is the root view: the commit log of the current head, loaded in
// chunks so large repositories start rendering long before the walk ends.
type History struct {
	backend Backend
	pool    *async.Pool
	cfg     *config.AppConfig
	thm     *theme.Theme
	notify  NotifyFn

	width  int
	height int

	stream    *async.Stream[git.Commit]
	replacing bool
	state     loadState
	loadErr   error

	commits []git.Commit
	visible []int // indices into commits that match the search query
	cursor  int   // position within visible
	offset  int   // first visible row on screen

	searching bool
	search    textinput.Model
}

// NewHistory creates the commit log view.
func NewHistory(backend Backend, pool *async.Pool, cfg *config.AppConfig, thm *theme.Theme, notify NotifyFn) *History {
	search := textinput.New()
	search.Placeholder = "author, hash or message"
	search.Prompt = "/"
	return &History{
		backend: backend,
		pool:    pool,
		cfg:     cfg,
		thm:     thm,
		notify:  notify,
		search:  search,
	}
}

// Type returns the view type.
func (v *History) Type() Type { return TypeHistory }

// Title returns the status bar label.
func (v *History) Title() string { return "history" }

// SetSize updates the render area.
func (v *History) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.search.Width = maxInt(8, width-4)
	v.scrollToCursor()
}

// Activate starts a fresh log walk. The list on screen stays as it is
// until the replacement data arrives.
func (v *History) Activate() { v.load() }

// Deactivate is a no-op; an in-flight walk keeps filling the list.
func (v *History) Deactivate() {}

func (v *History) load() {
	v.state = stateLoading
	v.loadErr = nil
	v.replacing = true
	// The previous stream handle is dropped here. Its remaining chunks are
	// never received, so a superseded walk cannot touch the list.
	v.stream = async.RunChunked(v.pool, v.cfg.ChunkSize, v.backend.Commits)
}

// Refresh drains every chunk the log walk has produced since the last tick.
func (v *History) Refresh() error {
	if v.stream == nil {
		return nil
	}
	for {
		chunk, ok := v.stream.TryRecv()
		if !ok {
			return nil
		}
		if chunk.Err != nil {
			v.stream = nil
			v.state = stateFailed
			v.loadErr = chunk.Err
			return fmt.Errorf("load commits: %w", chunk.Err)
		}
		if v.replacing {
			v.replacing = false
			v.commits = v.commits[:0]
			v.visible = v.visible[:0]
		}
		start := len(v.commits)
		v.commits = append(v.commits, chunk.Items...)
		v.extendVisible(start)
		v.clampCursor()
		v.scrollToCursor()
		if chunk.Done {
			v.stream = nil
			v.state = stateLoaded
			return nil
		}
		v.state = statePartial
	}
}

// HandleKey processes a key press. While the search input is focused all
// keys go to it except enter and esc.
func (v *History) HandleKey(msg tea.KeyMsg) Action {
	if v.searching {
		return v.handleSearchKey(msg)
	}

	keys := v.cfg.Keys
	key := msg.String()
	switch {
	case keys.Matches(config.ActionQuit, key):
		return popAction()
	case keys.Matches(config.ActionBack, key):
		if v.search.Value() != "" {
			v.clearSearch()
			return Action{}
		}
		return popAction()
	case keys.Matches(config.ActionDown, key):
		v.move(1)
	case keys.Matches(config.ActionUp, key):
		v.move(-1)
	case keys.Matches(config.ActionTop, key):
		v.cursor = 0
		v.scrollToCursor()
	case keys.Matches(config.ActionBottom, key):
		v.cursor = maxInt(0, len(v.visible)-1)
		v.scrollToCursor()
	case keys.Matches(config.ActionPageDown, key):
		v.move(v.pageSize())
	case keys.Matches(config.ActionPageUp, key):
		v.move(-v.pageSize())
	case keys.Matches(config.ActionSelect, key):
		if c, ok := v.selected(); ok {
			return openAction(OpenRequest{Kind: OpenCommitDiff, Commit: c.Hash, Summary: c.Summary})
		}
	case keys.Matches(config.ActionSearch, key):
		v.searching = true
		v.search.Focus()
	case keys.Matches(config.ActionStatus, key):
		return pushAction(TypeStatus)
	case keys.Matches(config.ActionHelp, key):
		return pushAction(TypeHelp)
	case keys.Matches(config.ActionRefresh, key):
		v.load()
	case keys.Matches(config.ActionYank, key):
		v.yank()
	}
	return Action{}
}

func (v *History) handleSearchKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "enter":
		v.searching = false
		v.search.Blur()
	case "esc":
		v.clearSearch()
	default:
		before := v.search.Value()
		v.search, _ = v.search.Update(msg)
		if v.search.Value() != before {
			v.refilter()
		}
	}
	return Action{}
}

func (v *History) clearSearch() {
	v.searching = false
	v.search.Blur()
	v.search.SetValue("")
	v.refilter()
}

// extendVisible applies the search query to commits[start:], appending the
// indices that match. An empty query matches everything.
func (v *History) extendVisible(start int) {
	query := strings.ToLower(strings.TrimSpace(v.search.Value()))
	for i := start; i < len(v.commits); i++ {
		if query == "" || commitMatches(&v.commits[i], query) {
			v.visible = append(v.visible, i)
		}
	}
}

func (v *History) refilter() {
	v.visible = v.visible[:0]
	v.extendVisible(0)
	v.clampCursor()
	v.scrollToCursor()
}

func commitMatches(c *git.Commit, query string) bool {
	if strings.Contains(strings.ToLower(c.Summary), query) {
		return true
	}
	if strings.Contains(strings.ToLower(c.Author), query) {
		return true
	}
	return strings.HasPrefix(c.Hash, query)
}

func (v *History) selected() (git.Commit, bool) {
	if v.cursor < 0 || v.cursor >= len(v.visible) {
		return git.Commit{}, false
	}
	return v.commits[v.visible[v.cursor]], true
}

func (v *History) move(delta int) {
	v.cursor = clampInt(v.cursor+delta, 0, maxInt(0, len(v.visible)-1))
	v.scrollToCursor()
}

func (v *History) clampCursor() {
	v.cursor = clampInt(v.cursor, 0, maxInt(0, len(v.visible)-1))
}

func (v *History) scrollToCursor() {
	v.offset = scrollOffset(v.offset, v.cursor, v.rowArea(), len(v.visible))
}

func (v *History) pageSize() int {
	return maxInt(1, v.rowArea()/2)
}

// rowArea is the number of list rows available above the search line.
func (v *History) rowArea() int {
	rows := v.height
	if v.searchLineVisible() {
		rows--
	}
	return maxInt(1, rows)
}

func (v *History) searchLineVisible() bool {
	return v.searching || v.search.Value() != ""
}

func (v *History) yank() {
	c, ok := v.selected()
	if !ok {
		return
	}
	if err := clipboard.WriteAll(c.Hash); err != nil {
		v.post("clipboard: " + err.Error())
		return
	}
	v.post("copied " + c.ShortHash)
}

func (v *History) post(msg string) {
	if v.notify != nil {
		v.notify(msg)
	}
}

// Render draws the commit list with the cursor row highlighted.
func (v *History) Render() string {
	if v.width <= 0 || v.height <= 0 {
		return ""
	}

	var b strings.Builder
	switch {
	case len(v.visible) > 0:
		v.renderRows(&b)
	case v.state == stateFailed:
		b.WriteString(lipgloss.NewStyle().Foreground(v.thm.ErrorFg).Render("error: " + v.loadErr.Error()))
		b.WriteString("\n")
	default:
		b.WriteString(lipgloss.NewStyle().Foreground(v.thm.MutedFg).Render(v.emptyMessage()))
		b.WriteString("\n")
	}

	if v.searching {
		b.WriteString(v.search.View())
	} else if v.search.Value() != "" {
		line := fmt.Sprintf("/%s (%d/%d, esc clears)", v.search.Value(), len(v.visible), len(v.commits))
		b.WriteString(lipgloss.NewStyle().Foreground(v.thm.MutedFg).Render(ansi.Truncate(line, v.width, "…")))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (v *History) emptyMessage() string {
	switch {
	case v.search.Value() != "":
		return fmt.Sprintf("no commits match %q", v.search.Value())
	case v.state == stateLoading || v.state == statePartial:
		return "loading commits..."
	default:
		return "no commits"
	}
}

func (v *History) renderRows(b *strings.Builder) {
	dateStyle := lipgloss.NewStyle().Foreground(v.thm.MutedFg)
	hashStyle := lipgloss.NewStyle().Foreground(v.thm.Accent)
	authorStyle := lipgloss.NewStyle().Foreground(v.thm.AuthorFg)
	refStyle := lipgloss.NewStyle().Foreground(v.thm.RefFg)
	textStyle := lipgloss.NewStyle().Foreground(v.thm.TextFg)
	selStyle := lipgloss.NewStyle().Background(v.thm.SelectionBg).Foreground(v.thm.SelectionFg).Bold(true)

	dateWidth := v.dateWidth()
	authorWidth := clampInt(v.width/5, 10, 20)

	end := minInt(v.offset+v.rowArea(), len(v.visible))
	for i := v.offset; i < end; i++ {
		c := v.commits[v.visible[i]]
		refs := ""
		if len(c.Refs) > 0 {
			refs = "(" + strings.Join(c.Refs, ", ") + ") "
		}

		if i == v.cursor {
			row := fmt.Sprintf("%s %s %s %s%s",
				padCell(v.formatDate(c), dateWidth), c.ShortHash,
				padCell(c.Author, authorWidth), refs, c.Summary)
			b.WriteString(selStyle.Render(padCell(row, v.width)))
		} else {
			row := fmt.Sprintf("%s %s %s %s%s",
				dateStyle.Render(padCell(v.formatDate(c), dateWidth)),
				hashStyle.Render(c.ShortHash),
				authorStyle.Render(padCell(c.Author, authorWidth)),
				refStyle.Render(refs),
				textStyle.Render(c.Summary))
			b.WriteString(ansi.Truncate(row, v.width, "…"))
		}
		b.WriteString("\n")
	}
}

func (v *History) formatDate(c git.Commit) string {
	if v.cfg.DateFormat == config.DateRelative {
		return c.RelativeWhen(time.Now())
	}
	return c.When.Format(v.cfg.DateFormat)
}

func (v *History) dateWidth() int {
	if v.cfg.DateFormat == config.DateRelative {
		return relativeDateWidth
	}
	return maxInt(8, len(v.cfg.DateFormat))
}
