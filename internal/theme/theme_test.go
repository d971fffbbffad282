package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	for _, name := range AvailableThemes() {
		thm, err := ByName(name)
		require.NoError(t, err, name)
		require.NotNil(t, thm, name)
		assert.NotEmpty(t, thm.TextFg, name)
		assert.NotEmpty(t, thm.AdditionFg, name)
	}

	thm, err := ByName("")
	require.NoError(t, err)
	assert.Equal(t, Default(), thm)

	thm, err = ByName("  Dracula ")
	require.NoError(t, err)
	assert.Equal(t, Dracula(), thm)

	_, err = ByName("neon-kitten")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dracula")
}

func TestParseColor(t *testing.T) {
	c, err := parseColor("#50FA7B")
	require.NoError(t, err)
	assert.Equal(t, lipgloss.Color("#50FA7B"), c)

	c, err = parseColor("red")
	require.NoError(t, err)
	assert.Equal(t, lipgloss.Color("1"), c)

	c, err = parseColor("bright-cyan")
	require.NoError(t, err)
	assert.Equal(t, lipgloss.Color("14"), c)

	c, err = parseColor("240")
	require.NoError(t, err)
	assert.Equal(t, lipgloss.Color("240"), c)

	c, err = parseColor("default")
	require.NoError(t, err)
	assert.Equal(t, lipgloss.Color(""), c)

	_, err = parseColor("#12345")
	require.Error(t, err)

	_, err = parseColor("turquoiseish")
	require.Error(t, err)
}

func TestParseStyle(t *testing.T) {
	fg, bg, err := ParseStyle("white on blue")
	require.NoError(t, err)
	assert.Equal(t, lipgloss.Color("7"), fg)
	assert.Equal(t, lipgloss.Color("4"), bg)

	fg, bg, err = ParseStyle("#FF5555")
	require.NoError(t, err)
	assert.Equal(t, lipgloss.Color("#FF5555"), fg)
	assert.Equal(t, lipgloss.Color(""), bg)

	_, _, err = ParseStyle("nope on blue")
	require.Error(t, err)
}

func TestApplyColors(t *testing.T) {
	thm := Default()
	err := thm.ApplyColors(map[string]string{
		"addition":  "#00FF00",
		"selection": "white on magenta",
		"statusbar": "black on cyan",
	})
	require.NoError(t, err)

	assert.Equal(t, lipgloss.Color("#00FF00"), thm.AdditionFg)
	assert.Equal(t, lipgloss.Color("7"), thm.SelectionFg)
	assert.Equal(t, lipgloss.Color("5"), thm.SelectionBg)
	assert.Equal(t, lipgloss.Color("0"), thm.StatusBarFg)
	assert.Equal(t, lipgloss.Color("6"), thm.StatusBarBg)
}

func TestApplyColorsUnknownRole(t *testing.T) {
	thm := Default()
	err := thm.ApplyColors(map[string]string{"sparkles": "red"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sparkles")
}

func TestApplyColorsBadSpec(t *testing.T) {
	thm := Default()
	err := thm.ApplyColors(map[string]string{"addition": "glitter on blue"})
	require.Error(t, err)
}
