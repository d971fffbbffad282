// Package config loads application configuration from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hughdbrown/lazytig/internal/theme"
	"gopkg.in/yaml.v3"
)

// DateRelative selects relative commit dates ("3 hours ago") in the
// history view. Any other DateFormat value is used as a Go time layout.
const DateRelative = "relative"

// AppConfig defines the global lazytig configuration options.
type AppConfig struct {
	Theme           string // Theme name: see AvailableThemes in internal/theme
	DebugLog        string // Debug log file path; empty disables debug logging
	ChunkSize       int    // Commits delivered per background chunk
	DateFormat      string // "relative" or a Go time layout string
	ShowLineNumbers bool   // Render line numbers in diffs (default: true)
	TabWidth        int    // Spaces per tab when rendering diff lines
	MouseSupport    bool   // Wheel scrolling (default: true)
	ShowIcons       bool   // Render Nerd Font file icons (default: true)
	AutoRefresh     bool   // Watch the git dir and re-query on changes
	Colors          map[string]string
	Keys            *Keybindings
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Theme:           "",
		ChunkSize:       50,
		DateFormat:      DateRelative,
		ShowLineNumbers: true,
		TabWidth:        4,
		MouseSupport:    true,
		ShowIcons:       true,
		AutoRefresh:     true,
		Colors:          map[string]string{},
		Keys:            DefaultKeybindings(),
	}
}

func coerceBool(value any, defaultVal bool) bool {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case string:
		text := strings.ToLower(strings.TrimSpace(v))
		switch text {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return defaultVal
}

func coerceInt(value any, defaultVal int) int {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return defaultVal
	case int:
		return v
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return defaultVal
		}
		if i, err := strconv.Atoi(text); err == nil {
			return i
		}
	}
	return defaultVal
}

func coerceString(value any, defaultVal string) string {
	if s, ok := value.(string); ok {
		s = strings.TrimSpace(s)
		if s != "" {
			return s
		}
	}
	return defaultVal
}

func parseConfig(data map[string]any) *AppConfig {
	cfg := DefaultConfig()

	cfg.Theme = coerceString(data["theme"], cfg.Theme)
	cfg.DebugLog = coerceString(data["debug_log"], cfg.DebugLog)
	cfg.DateFormat = coerceString(data["date_format"], cfg.DateFormat)

	cfg.ChunkSize = coerceInt(data["commit_chunk_size"], cfg.ChunkSize)
	if cfg.ChunkSize < 1 {
		cfg.ChunkSize = 1
	}
	cfg.TabWidth = coerceInt(data["tab_width"], cfg.TabWidth)
	if cfg.TabWidth < 1 {
		cfg.TabWidth = 1
	}
	if cfg.TabWidth > 16 {
		cfg.TabWidth = 16
	}

	cfg.ShowLineNumbers = coerceBool(data["show_line_numbers"], cfg.ShowLineNumbers)
	cfg.MouseSupport = coerceBool(data["mouse_support"], cfg.MouseSupport)
	cfg.ShowIcons = coerceBool(data["show_icons"], cfg.ShowIcons)
	cfg.AutoRefresh = coerceBool(data["auto_refresh"], cfg.AutoRefresh)

	if colors, ok := data["colors"].(map[string]any); ok {
		for role, value := range colors {
			if s := coerceString(value, ""); s != "" {
				cfg.Colors[strings.ToLower(strings.TrimSpace(role))] = s
			}
		}
	}

	if bindings, ok := data["keybindings"].(map[string]any); ok {
		cfg.Keys = parseKeybindings(bindings)
	}

	return cfg
}

func getConfigDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// LoadConfig reads the configuration from configPath when given, otherwise
// from $XDG_CONFIG_HOME/lazytig/config.yaml (or .yml). A missing default
// file yields the defaults; an unreadable or unparseable file yields the
// defaults plus an error the caller can report.
func LoadConfig(configPath string) (*AppConfig, error) {
	var paths []string

	if configPath != "" {
		expanded, err := ExpandPath(configPath)
		if err != nil {
			return DefaultConfig(), err
		}
		absPath, err := filepath.Abs(expanded)
		if err != nil {
			return DefaultConfig(), err
		}
		if _, err := os.Stat(absPath); err != nil {
			return DefaultConfig(), fmt.Errorf("config file %s: %w", configPath, err)
		}
		paths = []string{absPath}
	} else {
		configBase := filepath.Clean(filepath.Join(getConfigDir(), "lazytig"))
		paths = []string{
			filepath.Join(configBase, "config.yaml"),
			filepath.Join(configBase, "config.yml"),
		}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		// #nosec G304 -- the path comes from the user's own flag or config dir
		data, err := os.ReadFile(path)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("read config %s: %w", path, err)
		}

		var yamlData map[string]any
		if err := yaml.Unmarshal(data, &yamlData); err != nil {
			return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
		}
		return parseConfig(yamlData), nil
	}

	return DefaultConfig(), nil
}

// ThemeOrDefault resolves the configured theme name, falling back to the
// default palette when unset.
func (c *AppConfig) ThemeOrDefault() string {
	if c.Theme != "" {
		return c.Theme
	}
	return theme.DefaultName
}

// ExpandPath expands a leading ~ and environment variables in path.
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return os.ExpandEnv(path), nil
}
