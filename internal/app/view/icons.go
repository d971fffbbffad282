package view

import (
	"os"
	"path/filepath"
	"time"

	devicons "github.com/epilande/go-devicons"
)

type iconFileInfo struct {
	name string
}

func (i iconFileInfo) Name() string { return i.name }

func (i iconFileInfo) Size() int64 { return 0 }

func (i iconFileInfo) Mode() os.FileMode { return 0 }

func (i iconFileInfo) ModTime() time.Time { return time.Time{} }

func (i iconFileInfo) IsDir() bool { return false }

func (i iconFileInfo) Sys() any { return nil }

// deviconForPath returns the Nerd Font glyph for a file path, or "" when
// none applies.
func deviconForPath(path string) string {
	if path == "" {
		return ""
	}
	style := devicons.IconForInfo(iconFileInfo{name: filepath.Base(path)})
	return style.Icon
}

func iconWithSpace(icon string) string {
	if icon == "" {
		return ""
	}
	return icon + " "
}
