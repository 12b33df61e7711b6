package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"Quit", km.Quit, []string{"q", "ctrl+c"}},
		{"Back", km.Back, []string{"esc"}},
		{"Up", km.Up, []string{"up", "k"}},
		{"Down", km.Down, []string{"down", "j"}},
		{"Select", km.Select, []string{"enter"}},
		{"Filter", km.Filter, []string{"/"}},
		{"CycleStatus", km.CycleStatus, []string{"s"}},
		{"Delete", km.Delete, []string{"d", "delete"}},
		{"Generate", km.Generate, []string{"g"}},
		{"Mock", km.Mock, []string{"m"}},
		{"Refresh", km.Refresh, []string{"r"}},
		{"Confirm", km.Confirm, []string{"y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range tt.keys {
				assert.Contains(t, tt.binding.Keys(), k)
			}
			assert.NotEmpty(t, tt.binding.Help().Key, "binding should have help key")
		})
	}
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ShortHelp()

	assert.Len(t, bindings, 2)
	assert.Equal(t, km.Back, bindings[0])
	assert.Equal(t, km.Quit, bindings[1])
}

func TestListHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ListHelp()

	assert.Len(t, bindings, 5)
	assert.Equal(t, km.Filter, bindings[2])
}

func TestFullHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.FullHelp()

	assert.Len(t, bindings, 4)
	assert.Len(t, bindings[0], 3) // Up, Down, Select
	assert.Len(t, bindings[3], 2) // Back, Quit
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("k", km.Up))
	assert.True(t, Matches("/", km.Filter))

	assert.False(t, Matches("x", km.Quit))
	assert.False(t, Matches("down", km.Up))
	assert.False(t, Matches("n", km.Confirm))
}
