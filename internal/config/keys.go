package config

import (
	"sort"
	"strings"
)

// Action names used in the keybindings config section. Each maps to a list
// of key names as bubbletea spells them ("q", "enter", "pgup", "ctrl+d").
const (
	ActionQuit     = "quit"
	ActionDown     = "down"
	ActionUp       = "up"
	ActionTop      = "top"
	ActionBottom   = "bottom"
	ActionPageDown = "page_down"
	ActionPageUp   = "page_up"
	ActionSelect   = "select"
	ActionSearch   = "search"
	ActionStatus   = "status"
	ActionStage    = "stage"
	ActionUnstage  = "unstage"
	ActionRefresh  = "refresh"
	ActionHelp     = "help"
	ActionBack     = "back"
	ActionYank     = "yank"
)

// Keybindings maps actions to the keys that trigger them. Lookups go
// key-to-action, so one key may serve different actions in different views.
type Keybindings struct {
	bindings map[string][]string
}

// DefaultKeybindings returns the stock key map.
func DefaultKeybindings() *Keybindings {
	return &Keybindings{bindings: map[string][]string{
		ActionQuit:     {"q"},
		ActionDown:     {"j", "down"},
		ActionUp:       {"k", "up"},
		ActionTop:      {"g", "home"},
		ActionBottom:   {"G", "end"},
		ActionPageDown: {"pgdown", "ctrl+d"},
		ActionPageUp:   {"pgup", "ctrl+u"},
		ActionSelect:   {"enter"},
		ActionSearch:   {"/"},
		ActionStatus:   {"s"},
		ActionStage:    {"s"},
		ActionUnstage:  {"u"},
		ActionRefresh:  {"r"},
		ActionHelp:     {"?"},
		ActionBack:     {"esc"},
		ActionYank:     {"y"},
	}}
}

// parseKeybindings overlays user bindings onto the defaults. Values may be
// a single key name or a list; unknown action names are ignored.
func parseKeybindings(data map[string]any) *Keybindings {
	kb := DefaultKeybindings()
	for action, value := range data {
		action = strings.ToLower(strings.TrimSpace(action))
		if _, known := kb.bindings[action]; !known {
			continue
		}
		keys := normalizeKeyList(value)
		if len(keys) > 0 {
			kb.bindings[action] = keys
		}
	}
	return kb
}

func normalizeKeyList(value any) []string {
	switch v := value.(type) {
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return []string{s}
		}
	case []any:
		var keys []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					keys = append(keys, s)
				}
			}
		}
		return keys
	}
	return nil
}

// Matches reports whether key triggers action.
func (k *Keybindings) Matches(action, key string) bool {
	for _, bound := range k.bindings[action] {
		if bound == key {
			return true
		}
	}
	return false
}

// Keys returns the keys bound to action, primary first.
func (k *Keybindings) Keys(action string) []string {
	return append([]string(nil), k.bindings[action]...)
}

// Primary returns the first key bound to action, for hint lines.
func (k *Keybindings) Primary(action string) string {
	if keys := k.bindings[action]; len(keys) > 0 {
		return keys[0]
	}
	return ""
}

// Actions lists every bound action name, sorted.
func (k *Keybindings) Actions() []string {
	actions := make([]string, 0, len(k.bindings))
	for action := range k.bindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	return actions
}
