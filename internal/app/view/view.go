// Package view implements the stacked views that make up the lazytig UI:
// commit history, working tree status, diffs, and help.
//
// Views never run the terminal themselves. The application model forwards
// key presses to the active view, calls Refresh on every tick so finished
// background work gets folded in, and draws whatever Render returns. All
// repository access goes through Backend and runs on the shared worker
// pool, so a slow query can never stall the render loop.
package view

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hughdbrown/lazytig/internal/git"
)

// Type identifies the kind of view on the stack.
type Type int

// View type constants.
const (
	TypeHistory Type = iota
	TypeStatus
	TypeDiff
	TypeHelp
)

// String returns a human-readable name for the view type.
func (t Type) String() string {
	switch t {
	case TypeHistory:
		return "history"
	case TypeStatus:
		return "status"
	case TypeDiff:
		return "diff"
	case TypeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ActionKind tells the application what a view wants done after a key press.
type ActionKind int

// Action kind constants.
const (
	// ActionNone means the key was handled (or ignored) in place.
	ActionNone ActionKind = iota
	// ActionQuit exits the program.
	ActionQuit
	// ActionPush opens the view named in Action.Push on top of this one.
	ActionPush
	// ActionPop closes this view. Popping the root view quits instead.
	ActionPop
	// ActionOpen opens the diff described by Action.Open.
	ActionOpen
)

// OpenKind selects which diff an OpenRequest refers to.
type OpenKind int

// Open kind constants.
const (
	OpenCommitDiff OpenKind = iota
	OpenStagedDiff
	OpenUnstagedDiff
)

// OpenRequest asks the application to push a diff view.
type OpenRequest struct {
	Kind    OpenKind
	Commit  string // full hash, commit diffs only
	Summary string // commit subject, commit diffs only
	Path    string // file diffs only
}

// Action is what HandleKey returns. The zero value means nothing further
// needs to happen.
type Action struct {
	Kind ActionKind
	Push Type        // set when Kind is ActionPush
	Open OpenRequest // set when Kind is ActionOpen
}

func pushAction(t Type) Action          { return Action{Kind: ActionPush, Push: t} }
func popAction() Action                 { return Action{Kind: ActionPop} }
func openAction(req OpenRequest) Action { return Action{Kind: ActionOpen, Open: req} }

// View is one screen on the stack.
type View interface {
	// Type returns the view's type identifier.
	Type() Type

	// Title returns a short label for the status bar.
	Title() string

	// SetSize tells the view how much room it has to render into.
	SetSize(width, height int)

	// HandleKey processes a key press and returns the resulting action.
	HandleKey(msg tea.KeyMsg) Action

	// Refresh folds completed background work into the view's state. It is
	// called on every tick, whether or not anything is pending, and must
	// never block.
	Refresh() error

	// Render draws the view. It must not mutate the view; all state
	// changes happen in HandleKey and Refresh.
	Render() string

	// Activate is called when the view becomes the active view, both when
	// first pushed and again each time a view above it is popped.
	Activate()

	// Deactivate is called when the view stops being the active view.
	Deactivate()
}

// Backend is the repository surface the views query. git.Repo implements
// it; tests substitute fakes.
type Backend interface {
	Commits(emit func(git.Commit)) error
	Status() (git.Status, error)
	CommitDiff(hash string) (git.Diff, error)
	FileDiff(path string, staged bool) (git.Diff, error)
	Stage(path string) error
	Unstage(path string) error
}

// NotifyFn posts a transient message to the status bar.
type NotifyFn func(message string)

// loadState tracks where a view's data is in its load cycle.
type loadState int

const (
	stateEmpty loadState = iota
	stateLoading
	statePartial
	stateLoaded
	stateFailed
)
