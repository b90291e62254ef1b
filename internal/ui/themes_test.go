package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetThemeByName(t *testing.T) {
	t.Cleanup(func() { SetThemeByName("default") })

	for _, name := range []string{"default", "high-contrast", "minimal"} {
		assert.True(t, SetThemeByName(name), name)
		assert.Equal(t, name, GetTheme().Name)
	}

	assert.False(t, SetThemeByName("neon"))
	assert.Equal(t, "minimal", GetTheme().Name, "unknown theme keeps the current one")
}

func TestStylesFollowTheme(t *testing.T) {
	t.Cleanup(func() { SetThemeByName("default") })
	SetThemeByName("high-contrast")

	styles := GetStyles()
	assert.Equal(t, HighContrastTheme, styles.Theme)
	assert.Equal(t, HighContrastTheme.Border, styles.Panel.GetBorderTopForeground())
	assert.Equal(t, HighContrastTheme.Primary, styles.ActivePanel.GetBorderTopForeground())
}
