package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/hughdbrown/lazytig/internal/async"
	"github.com/hughdbrown/lazytig/internal/config"
	"github.com/hughdbrown/lazytig/internal/git"
	"github.com/hughdbrown/lazytig/internal/theme"
)

// sectionKind identifies which part of the working tree a status row
// belongs to.
type sectionKind int

const (
	sectionConflicted sectionKind = iota
	sectionStaged
	sectionUnstaged
	sectionUntracked
)

// statusItem is one rendered row: a section header or a path entry.
type statusItem struct {
	header bool
	title  string
	kind   sectionKind
	entry  git.StatusEntry
}

// Status shows the working tree: conflicted, staged, unstaged and
// untracked paths, with stage and unstage bound to keys.
type Status struct {
	backend Backend
	pool    *async.Pool
	cfg     *config.AppConfig
	thm     *theme.Theme
	notify  NotifyFn

	width  int
	height int

	query    *async.Query[git.Status]
	mutation *async.Query[string]
	state    loadState
	loadErr  error

	items  []statusItem
	cursor int
	offset int
}

// NewStatus creates the working tree view.
func NewStatus(backend Backend, pool *async.Pool, cfg *config.AppConfig, thm *theme.Theme, notify NotifyFn) *Status {
	return &Status{
		backend: backend,
		pool:    pool,
		cfg:     cfg,
		thm:     thm,
		notify:  notify,
	}
}

// Type returns the view type.
func (v *Status) Type() Type { return TypeStatus }

// Title returns the status bar label.
func (v *Status) Title() string { return "status" }

// SetSize updates the render area.
func (v *Status) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.scrollToCursor()
}

// Activate queries the working tree again, so coming back to this view
// always shows the current state.
func (v *Status) Activate() { v.load() }

// Deactivate is a no-op.
func (v *Status) Deactivate() {}

func (v *Status) load() {
	v.state = stateLoading
	v.loadErr = nil
	v.query = async.Run(v.pool, v.backend.Status)
}

// Refresh applies finished stage/unstage mutations and status queries.
// A failed mutation leaves the current sections untouched.
func (v *Status) Refresh() error {
	if v.mutation != nil {
		if res, ok := v.mutation.TryTake(); ok {
			v.mutation = nil
			if res.Err != nil {
				v.state = stateFailed
				v.loadErr = res.Err
				return res.Err
			}
			v.post(res.Value)
			v.load()
		}
	}
	if v.query != nil {
		if res, ok := v.query.TryTake(); ok {
			v.query = nil
			if res.Err != nil {
				v.state = stateFailed
				v.loadErr = res.Err
				return fmt.Errorf("read status: %w", res.Err)
			}
			v.rebuild(res.Value)
		}
	}
	return nil
}

func (v *Status) rebuild(st git.Status) {
	v.items = v.items[:0]
	v.appendSection("Unmerged paths", sectionConflicted, st.Conflicted)
	v.appendSection("Staged changes", sectionStaged, st.Staged)
	v.appendSection("Unstaged changes", sectionUnstaged, st.Unstaged)
	v.appendSection("Untracked files", sectionUntracked, st.Untracked)
	v.state = stateLoaded
	v.clampCursor()
	v.scrollToCursor()
}

func (v *Status) appendSection(title string, kind sectionKind, entries []git.StatusEntry) {
	if len(entries) == 0 {
		return
	}
	v.items = append(v.items, statusItem{header: true, title: fmt.Sprintf("%s (%d)", title, len(entries)), kind: kind})
	for _, e := range entries {
		v.items = append(v.items, statusItem{kind: kind, entry: e})
	}
}

// HandleKey processes a key press.
func (v *Status) HandleKey(msg tea.KeyMsg) Action {
	keys := v.cfg.Keys
	key := msg.String()
	switch {
	case keys.Matches(config.ActionQuit, key), keys.Matches(config.ActionBack, key):
		return popAction()
	case keys.Matches(config.ActionDown, key):
		v.move(1)
	case keys.Matches(config.ActionUp, key):
		v.move(-1)
	case keys.Matches(config.ActionTop, key):
		v.cursor = 0
		v.clampCursor()
		v.scrollToCursor()
	case keys.Matches(config.ActionBottom, key):
		v.cursor = maxInt(0, len(v.items)-1)
		v.clampCursor()
		v.scrollToCursor()
	case keys.Matches(config.ActionPageDown, key):
		v.move(v.pageSize())
	case keys.Matches(config.ActionPageUp, key):
		v.move(-v.pageSize())
	case keys.Matches(config.ActionSelect, key):
		if item, ok := v.selected(); ok {
			return openAction(v.openRequest(item))
		}
	case keys.Matches(config.ActionStage, key):
		v.stageSelected()
	case keys.Matches(config.ActionUnstage, key):
		v.unstageSelected()
	case keys.Matches(config.ActionRefresh, key):
		v.load()
	case keys.Matches(config.ActionHelp, key):
		return pushAction(TypeHelp)
	}
	return Action{}
}

func (v *Status) openRequest(item statusItem) OpenRequest {
	if item.kind == sectionStaged {
		return OpenRequest{Kind: OpenStagedDiff, Path: item.entry.Path}
	}
	return OpenRequest{Kind: OpenUnstagedDiff, Path: item.entry.Path}
}

func (v *Status) stageSelected() {
	item, ok := v.selected()
	if !ok || item.kind == sectionStaged {
		return
	}
	v.mutate(v.backend.Stage, "staged", item.entry.Path)
}

func (v *Status) unstageSelected() {
	item, ok := v.selected()
	if !ok || item.kind != sectionStaged {
		return
	}
	v.mutate(v.backend.Unstage, "unstaged", item.entry.Path)
}

// mutate runs one stage or unstage operation in the background. Only one
// mutation may be in flight; further requests are dropped until it lands.
func (v *Status) mutate(op func(string) error, verb, path string) {
	if v.mutation != nil {
		return
	}
	v.mutation = async.Run(v.pool, func() (string, error) {
		if err := op(path); err != nil {
			return "", err
		}
		return verb + " " + path, nil
	})
}

func (v *Status) selected() (statusItem, bool) {
	if v.cursor < 0 || v.cursor >= len(v.items) || v.items[v.cursor].header {
		return statusItem{}, false
	}
	return v.items[v.cursor], true
}

func (v *Status) move(delta int) {
	if len(v.items) == 0 {
		return
	}
	dir := 1
	if delta < 0 {
		dir = -1
		delta = -delta
	}
	for ; delta > 0; delta-- {
		if !v.seek(dir) {
			break
		}
	}
	v.scrollToCursor()
}

// seek moves the cursor to the next non-header row in the given direction
// and reports whether one was found.
func (v *Status) seek(dir int) bool {
	for i := v.cursor + dir; i >= 0 && i < len(v.items); i += dir {
		if !v.items[i].header {
			v.cursor = i
			return true
		}
	}
	return false
}

// clampCursor keeps the cursor in range and off header rows.
func (v *Status) clampCursor() {
	if len(v.items) == 0 {
		v.cursor = 0
		return
	}
	v.cursor = clampInt(v.cursor, 0, len(v.items)-1)
	if v.items[v.cursor].header {
		if !v.seek(1) {
			v.seek(-1)
		}
	}
}

func (v *Status) scrollToCursor() {
	v.offset = scrollOffset(v.offset, v.cursor, v.rowArea(), len(v.items))
}

func (v *Status) pageSize() int {
	return maxInt(1, v.rowArea()/2)
}

func (v *Status) rowArea() int {
	return maxInt(1, v.height)
}

func (v *Status) post(msg string) {
	if v.notify != nil {
		v.notify(msg)
	}
}

// Render draws the section list with the cursor row highlighted.
func (v *Status) Render() string {
	if v.width <= 0 || v.height <= 0 {
		return ""
	}
	if len(v.items) == 0 {
		msg := "working tree clean"
		switch v.state {
		case stateEmpty, stateLoading:
			msg = "reading status..."
		case stateFailed:
			msg = "error: " + v.loadErr.Error()
		}
		return lipgloss.NewStyle().Foreground(v.thm.MutedFg).Render(msg)
	}

	headerStyle := lipgloss.NewStyle().Foreground(v.thm.Accent).Bold(true)
	selStyle := lipgloss.NewStyle().Background(v.thm.SelectionBg).Foreground(v.thm.SelectionFg).Bold(true)

	var b strings.Builder
	end := minInt(v.offset+v.rowArea(), len(v.items))
	for i := v.offset; i < end; i++ {
		item := v.items[i]
		switch {
		case item.header:
			b.WriteString(headerStyle.Render(ansi.Truncate(item.title, v.width, "…")))
		case i == v.cursor:
			b.WriteString(selStyle.Render(padCell(v.entryText(item), v.width)))
		default:
			code := lipgloss.NewStyle().Foreground(v.codeColor(item.kind)).Render(item.entry.Code)
			rest := ansi.Truncate(v.entryTail(item), maxInt(1, v.width-5), "…")
			b.WriteString("  " + code + " " + rest)
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (v *Status) entryText(item statusItem) string {
	return "  " + item.entry.Code + " " + v.entryTail(item)
}

func (v *Status) entryTail(item statusItem) string {
	icon := ""
	if v.cfg.ShowIcons {
		icon = iconWithSpace(deviconForPath(item.entry.Path))
	}
	return icon + item.entry.Path
}

func (v *Status) codeColor(kind sectionKind) lipgloss.Color {
	switch kind {
	case sectionStaged:
		return v.thm.AdditionFg
	case sectionConflicted:
		return v.thm.ErrorFg
	case sectionUntracked:
		return v.thm.WarnFg
	default:
		return v.thm.DeletionFg
	}
}
