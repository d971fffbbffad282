package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wrap"

	"github.com/hughdbrown/lazytig/internal/async"
	"github.com/hughdbrown/lazytig/internal/config"
	"github.com/hughdbrown/lazytig/internal/git"
	"github.com/hughdbrown/lazytig/internal/theme"
)

// Diff is a read-only pager over a commit diff or over a single file's
// staged or unstaged changes.
type Diff struct {
	backend Backend
	pool    *async.Pool
	cfg     *config.AppConfig
	thm     *theme.Theme
	notify  NotifyFn

	req    OpenRequest
	width  int
	height int
	vp     viewport.Model

	query   *async.Query[git.Diff]
	state   loadState
	loadErr error
	diff    git.Diff
}

// NewDiff creates a diff view for the given request.
func NewDiff(backend Backend, pool *async.Pool, cfg *config.AppConfig, thm *theme.Theme, notify NotifyFn, req OpenRequest) *Diff {
	return &Diff{
		backend: backend,
		pool:    pool,
		cfg:     cfg,
		thm:     thm,
		notify:  notify,
		req:     req,
		vp:      viewport.New(0, 0),
	}
}

// Type returns the view type.
func (v *Diff) Type() Type { return TypeDiff }

// Title returns the status bar label.
func (v *Diff) Title() string {
	switch v.req.Kind {
	case OpenStagedDiff:
		return "staged: " + v.req.Path
	case OpenUnstagedDiff:
		return "unstaged: " + v.req.Path
	default:
		hash := v.req.Commit
		if len(hash) > 7 {
			hash = hash[:7]
		}
		return "commit " + hash
	}
}

// SetSize updates the render area and reflows the content.
func (v *Diff) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.vp.Width = maxInt(0, width)
	v.vp.Height = maxInt(1, height)
	if v.state == stateLoaded {
		v.vp.SetContent(v.renderDiff())
	}
}

// Activate issues the diff query. Re-activation queries again, so a diff
// revisited after staging changes shows the new state.
func (v *Diff) Activate() { v.load() }

// Deactivate is a no-op.
func (v *Diff) Deactivate() {}

func (v *Diff) load() {
	v.state = stateLoading
	v.loadErr = nil
	backend, req := v.backend, v.req
	switch req.Kind {
	case OpenStagedDiff:
		v.query = async.Run(v.pool, func() (git.Diff, error) { return backend.FileDiff(req.Path, true) })
	case OpenUnstagedDiff:
		v.query = async.Run(v.pool, func() (git.Diff, error) { return backend.FileDiff(req.Path, false) })
	default:
		v.query = async.Run(v.pool, func() (git.Diff, error) { return backend.CommitDiff(req.Commit) })
	}
}

// Refresh folds a finished diff query into the pager.
func (v *Diff) Refresh() error {
	if v.query == nil {
		return nil
	}
	res, ok := v.query.TryTake()
	if !ok {
		return nil
	}
	v.query = nil
	if res.Err != nil {
		v.state = stateFailed
		v.loadErr = res.Err
		v.vp.SetContent(lipgloss.NewStyle().Foreground(v.thm.ErrorFg).Render("error: " + res.Err.Error()))
		return fmt.Errorf("load diff: %w", res.Err)
	}
	v.diff = res.Value
	v.state = stateLoaded
	v.vp.SetContent(v.renderDiff())
	return nil
}

// HandleKey processes a key press. Navigation scrolls the pager.
func (v *Diff) HandleKey(msg tea.KeyMsg) Action {
	keys := v.cfg.Keys
	key := msg.String()
	switch {
	case keys.Matches(config.ActionQuit, key), keys.Matches(config.ActionBack, key):
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
	case keys.Matches(config.ActionRefresh, key):
		v.load()
	case keys.Matches(config.ActionYank, key):
		v.yank()
	case keys.Matches(config.ActionHelp, key):
		return pushAction(TypeHelp)
	}
	return Action{}
}

func (v *Diff) yank() {
	text := v.req.Commit
	if v.req.Kind != OpenCommitDiff {
		text = v.req.Path
	}
	if err := clipboard.WriteAll(text); err != nil {
		v.post("clipboard: " + err.Error())
		return
	}
	v.post("copied " + text)
}

func (v *Diff) post(msg string) {
	if v.notify != nil {
		v.notify(msg)
	}
}

// Render draws the pager.
func (v *Diff) Render() string {
	if v.width <= 0 || v.height <= 0 {
		return ""
	}
	if v.state != stateLoaded && v.state != stateFailed && v.diff.Empty() {
		return lipgloss.NewStyle().Foreground(v.thm.MutedFg).Render("loading diff...")
	}
	return v.vp.View()
}

// renderDiff lays the whole diff out as styled lines. Lines are truncated
// to the view width; the viewport handles vertical scrolling only.
func (v *Diff) renderDiff() string {
	if v.diff.Empty() {
		return lipgloss.NewStyle().Foreground(v.thm.MutedFg).Render("no changes")
	}

	fileStyle := lipgloss.NewStyle().Foreground(v.thm.FileFg).Bold(true)
	hunkStyle := lipgloss.NewStyle().Foreground(v.thm.HunkFg)
	addStyle := lipgloss.NewStyle().Foreground(v.thm.AdditionFg)
	delStyle := lipgloss.NewStyle().Foreground(v.thm.DeletionFg)
	textStyle := lipgloss.NewStyle().Foreground(v.thm.TextFg)
	mutedStyle := lipgloss.NewStyle().Foreground(v.thm.MutedFg)

	var b strings.Builder
	if v.req.Kind == OpenCommitDiff {
		b.WriteString(fileStyle.Render(ansi.Truncate("commit "+v.req.Commit, v.width, "…")) + "\n")
		v.renderMessage(&b, textStyle)
		b.WriteString(mutedStyle.Render(ansi.Truncate(v.statLine(), v.width, "…")) + "\n")
	}

	for fi := range v.diff.Files {
		f := &v.diff.Files[fi]
		if fi > 0 || v.req.Kind == OpenCommitDiff {
			b.WriteString("\n")
		}
		v.renderFile(&b, f, fileStyle, hunkStyle, addStyle, delStyle, textStyle, mutedStyle)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// renderMessage writes the full commit message wrapped to the view width.
// A diff loaded without a message falls back to the summary line the
// opener supplied.
func (v *Diff) renderMessage(b *strings.Builder, style lipgloss.Style) {
	msg := strings.TrimRight(v.diff.Message, "\n")
	if msg == "" {
		msg = v.req.Summary
	}
	if msg == "" {
		return
	}
	for _, line := range strings.Split(wrap.String(msg, v.width), "\n") {
		b.WriteString(style.Render(line) + "\n")
	}
}

func (v *Diff) renderFile(b *strings.Builder, f *git.FileDiff, fileStyle, hunkStyle, addStyle, delStyle, textStyle, mutedStyle lipgloss.Style) {
	icon := ""
	if v.cfg.ShowIcons {
		icon = iconWithSpace(deviconForPath(f.Path()))
	}
	header := fmt.Sprintf("%s %s%s", f.Status, icon, f.Path())
	stats := fmt.Sprintf(" +%d -%d", f.Additions, f.Deletions)
	b.WriteString(fileStyle.Render(ansi.Truncate(header, maxInt(1, v.width-len(stats)), "…")))
	b.WriteString(mutedStyle.Render(stats))
	b.WriteString("\n")

	if f.Binary {
		b.WriteString(mutedStyle.Render("  binary file differs") + "\n")
		return
	}
	for _, h := range f.Hunks {
		b.WriteString(hunkStyle.Render(ansi.Truncate(h.Header, v.width, "…")) + "\n")
		for _, line := range h.Lines {
			b.WriteString(v.renderLine(line, addStyle, delStyle, textStyle, mutedStyle) + "\n")
		}
	}
}

func (v *Diff) renderLine(line git.Line, addStyle, delStyle, textStyle, mutedStyle lipgloss.Style) string {
	var marker string
	var style lipgloss.Style
	switch line.Kind {
	case git.LineAddition:
		marker, style = "+", addStyle
	case git.LineDeletion:
		marker, style = "-", delStyle
	default:
		marker, style = " ", textStyle
	}

	text := marker + expandTabs(line.Content, v.cfg.TabWidth)
	if !v.cfg.ShowLineNumbers {
		return style.Render(ansi.Truncate(text, v.width, ""))
	}
	numbers := mutedStyle.Render(lineNumbers(line))
	return numbers + " " + style.Render(ansi.Truncate(text, maxInt(1, v.width-10), ""))
}

// lineNumbers renders the old and new line number columns. A side with no
// number (the old side of an addition, the new side of a deletion) is left
// blank.
func lineNumbers(line git.Line) string {
	old, now := "", ""
	if line.OldNo > 0 {
		old = strconv.Itoa(line.OldNo)
	}
	if line.NewNo > 0 {
		now = strconv.Itoa(line.NewNo)
	}
	return fmt.Sprintf("%4s %4s", old, now)
}

func (v *Diff) statLine() string {
	noun := "files"
	if len(v.diff.Files) == 1 {
		noun = "file"
	}
	return fmt.Sprintf("%d %s changed, %d insertions(+), %d deletions(-)",
		len(v.diff.Files), noun, v.diff.Additions, v.diff.Deletions)
}
