package keymap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seamusw/termcube"
	"github.com/seamusw/termcube/internal/keymap"
)

func TestDefaultBindings(t *testing.T) {
	m := keymap.Default()

	// 12 face turns, 12 wide turns, 6 slices, 6 rotations.
	assert.Len(t, m, 36)

	tests := []struct {
		key  string
		want termcube.Move
	}{
		{"r", termcube.R},
		{"R", termcube.RPrime},
		{"u", termcube.U},
		{"alt+r", termcube.Rw},
		{"alt+F", termcube.FwPrime},
		{"m", termcube.M},
		{"E", termcube.EPrime},
		{"x", termcube.X},
		{"Z", termcube.ZPrime},
	}

	for _, tt := range tests {
		move, ok := m.Resolve(tt.key)
		require.True(t, ok, "key %q should be bound", tt.key)
		assert.Equal(t, tt.want, move, "key %q", tt.key)
	}
}

func TestDefaultLeavesControlKeysFree(t *testing.T) {
	m := keymap.Default()
	for _, key := range []string{"q", "esc", "ctrl+c", "ctrl+r", "ctrl+z"} {
		_, ok := m.Resolve(key)
		assert.False(t, ok, "key %q must stay free for the TUI", key)
	}
}

func TestMergeRebind(t *testing.T) {
	m := keymap.Default()
	err := m.Merge(map[string]string{
		"j": "U",
		"k": "U'",
		"r": "r", // rebind the r key to the wide turn
	})
	require.NoError(t, err)

	move, ok := m.Resolve("j")
	require.True(t, ok)
	assert.Equal(t, termcube.U, move)

	move, ok = m.Resolve("k")
	require.True(t, ok)
	assert.Equal(t, termcube.UPrime, move)

	move, ok = m.Resolve("r")
	require.True(t, ok)
	assert.Equal(t, termcube.Rw, move)
}

func TestMergeUnbind(t *testing.T) {
	m := keymap.Default()
	require.NoError(t, m.Merge(map[string]string{"m": ""}))

	_, ok := m.Resolve("m")
	assert.False(t, ok)
}

func TestMergeRejectsInvalidNotation(t *testing.T) {
	m := keymap.Default()
	err := m.Merge(map[string]string{"j": "Q"})
	require.Error(t, err)
	assert.ErrorIs(t, err, termcube.ErrInvalidNotation)
	assert.Contains(t, err.Error(), `"j"`)
}

func TestKeysFor(t *testing.T) {
	m := keymap.Default()
	require.NoError(t, m.Merge(map[string]string{"j": "U"}))

	keys := m.KeysFor(termcube.U)
	assert.Equal(t, []string{"j", "u"}, keys)

	assert.Empty(t, m.KeysFor(termcube.Move(999)))
}
