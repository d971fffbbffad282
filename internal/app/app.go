// Package app wires the view stack, the shared worker pool and the
// repository watcher into one Bubble Tea model.
package app

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/hughdbrown/lazytig/internal/app/view"
	"github.com/hughdbrown/lazytig/internal/async"
	"github.com/hughdbrown/lazytig/internal/config"
	"github.com/hughdbrown/lazytig/internal/git"
	"github.com/hughdbrown/lazytig/internal/log"
	"github.com/hughdbrown/lazytig/internal/theme"
)

// tickInterval paces the refresh loop. Every tick polls the active view's
// background work; input is handled as it arrives, independent of ticks.
const tickInterval = 100 * time.Millisecond

// noticeTTL is how long a transient status bar message stays up.
const noticeTTL = 3 * time.Second

const statusBarHeight = 1

// Model is the root Bubble Tea model: a stack of views over one repository.
type Model struct {
	cfg  *config.AppConfig
	thm  *theme.Theme
	repo git.Repo
	pool *async.Pool

	views   *view.Manager
	watcher *repoWatcher

	branch      string
	branchQuery *async.Query[string]

	width  int
	height int

	notice   string
	noticeAt time.Time
	lastErr  error

	quitting bool
}

// NewModel creates the application model rooted at the history view.
func NewModel(cfg *config.AppConfig, thm *theme.Theme, repo git.Repo) *Model {
	m := &Model{
		cfg:  cfg,
		thm:  thm,
		repo: repo,
		pool: async.NewPool(0),
	}
	m.views = view.NewManager(view.NewHistory(repo, m.pool, cfg, thm, m.setNotice))
	if cfg.AutoRefresh {
		m.watcher = newRepoWatcher(repo, log.Printf)
	}
	m.refreshBranch()
	return m
}

// Init starts the tick loop and, when enabled, the repository watcher.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd()}
	if m.watcher != nil {
		if err := m.watcher.Start(); err != nil {
			log.Printf("repo watcher failed to start: %v", err)
			m.watcher = nil
		} else {
			cmds = append(cmds, m.waitForRepoChange())
		}
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tickMsg:
		return m.handleTick()
	case repoChangedMsg:
		return m.handleRepoChanged()
	}
	return m, nil
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	m.views.SetSize(width, m.contentHeight())
}

func (m *Model) contentHeight() int {
	if m.height <= statusBarHeight {
		return 1
	}
	return m.height - statusBarHeight
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	m.lastErr = nil
	return m.apply(m.views.Current().HandleKey(msg))
}

// apply routes an action returned by the active view.
func (m *Model) apply(act view.Action) (tea.Model, tea.Cmd) {
	switch act.Kind {
	case view.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case view.ActionPop:
		if m.views.Pop() {
			m.quitting = true
			return m, tea.Quit
		}
	case view.ActionPush:
		m.pushType(act.Push)
	case view.ActionOpen:
		m.pushOpen(act.Open)
	}
	return m, nil
}

// pushType opens one of the parameterless views. Size is set before the
// push so the view activates with real dimensions.
func (m *Model) pushType(t view.Type) {
	var v view.View
	switch t {
	case view.TypeStatus:
		v = view.NewStatus(m.repo, m.pool, m.cfg, m.thm, m.setNotice)
	case view.TypeHelp:
		v = view.NewHelp(m.cfg, m.thm)
	default:
		return
	}
	v.SetSize(m.width, m.contentHeight())
	m.views.Push(v)
}

func (m *Model) pushOpen(req view.OpenRequest) {
	v := view.NewDiff(m.repo, m.pool, m.cfg, m.thm, m.setNotice, req)
	v.SetSize(m.width, m.contentHeight())
	m.views.Push(v)
}

// handleTick folds background work into the active view and re-arms the
// tick. Refresh errors go to the status bar until the next key press.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	if err := m.views.Current().Refresh(); err != nil {
		m.lastErr = err
		log.Printf("refresh: %v", err)
	}
	if m.branchQuery != nil {
		if res, ok := m.branchQuery.TryTake(); ok {
			m.branchQuery = nil
			if res.Err != nil {
				log.Printf("resolve branch: %v", res.Err)
			} else {
				m.branch = res.Value
			}
		}
	}
	if m.notice != "" && time.Since(m.noticeAt) > noticeTTL {
		m.notice = ""
	}
	return m, tickCmd()
}

// handleRepoChanged reacts to filesystem activity under the git dir by
// re-activating the current view, which re-queries its data.
func (m *Model) handleRepoChanged() (tea.Model, tea.Cmd) {
	if m.watcher == nil {
		return m, nil
	}
	m.watcher.ResetWaiting()
	if m.watcher.ShouldRefresh(time.Now()) {
		log.Printf("repo changed, refreshing %s view", m.views.Current().Type())
		m.views.Current().Activate()
		m.refreshBranch()
	}
	return m, m.waitForRepoChange()
}

// handleMouse maps wheel scrolling onto the cursor keys.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.cfg.MouseSupport || msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return m.apply(m.views.Current().HandleKey(tea.KeyMsg{Type: tea.KeyUp}))
	case tea.MouseButtonWheelDown:
		return m.apply(m.views.Current().HandleKey(tea.KeyMsg{Type: tea.KeyDown}))
	}
	return m, nil
}

func (m *Model) refreshBranch() {
	repo := m.repo
	m.branchQuery = async.Run(m.pool, func() (string, error) { return repo.Branch() })
}

// waitForRepoChange blocks on the watcher's event channel as a command.
func (m *Model) waitForRepoChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	events := m.watcher.NextEvent()
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return nil
		}
		return repoChangedMsg{}
	}
}

func (m *Model) setNotice(msg string) {
	m.notice = msg
	m.noticeAt = time.Now()
}

// View renders the active view above the status bar.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	content := fillHeight(m.views.Current().Render(), m.contentHeight())
	return content + "\n" + m.statusBar()
}

func (m *Model) statusBar() string {
	barStyle := lipgloss.NewStyle().Background(m.thm.StatusBarBg).Foreground(m.thm.StatusBarFg)
	hintStyle := barStyle
	switch {
	case m.lastErr != nil:
		hintStyle = hintStyle.Foreground(m.thm.ErrorFg)
	case m.notice != "":
		hintStyle = hintStyle.Foreground(m.thm.SuccessFg)
	}

	left := fmt.Sprintf(" %s @ %s · %s", m.repo.Name(), m.branchLabel(), m.views.Current().Title())
	right := m.statusHint() + " "

	if lipgloss.Width(right) > m.width {
		right = ansi.Truncate(right, m.width, "…")
	}
	left = ansi.Truncate(left, maxInt(0, m.width-lipgloss.Width(right)), "…")
	gap := strings.Repeat(" ", maxInt(0, m.width-lipgloss.Width(left)-lipgloss.Width(right)))

	return barStyle.Render(left+gap) + hintStyle.Render(right)
}

func (m *Model) statusHint() string {
	switch {
	case m.lastErr != nil:
		return "error: " + m.lastErr.Error()
	case m.notice != "":
		return m.notice
	default:
		keys := m.cfg.Keys
		return fmt.Sprintf("%s help · %s quit", keys.Primary(config.ActionHelp), keys.Primary(config.ActionQuit))
	}
}

func (m *Model) branchLabel() string {
	if m.branch == "" {
		return "no branch"
	}
	return m.branch
}

// Close releases background resources. Call it after the program exits.
func (m *Model) Close() {
	if m.watcher != nil {
		m.watcher.Stop()
	}
}

// fillHeight pads or trims s to exactly lines rows.
func fillHeight(s string, lines int) string {
	rows := strings.Split(s, "\n")
	if len(rows) > lines {
		rows = rows[:lines]
	}
	for len(rows) < lines {
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
