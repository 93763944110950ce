package theme_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivofrolov/muspace/theme"
)

// TestDefault ensures the built-in palette is usable without any file.
func TestDefault(t *testing.T) {
	p := theme.Default()
	require.NotEmpty(t, p.Colors)
	assert.Equal(t, p.Colors[0], p.Lookup(0))
	assert.Equal(t, p.Colors[len(p.Colors)-1], p.Lookup(1))
}

// TestLookup_Clamps checks out-of-range values clamp to the ends.
func TestLookup_Clamps(t *testing.T) {
	p := &theme.Palette{Colors: []theme.RGB{{0, 0, 0}, {200, 100, 50}}}
	assert.Equal(t, theme.RGB{0, 0, 0}, p.Lookup(-1))
	assert.Equal(t, theme.RGB{200, 100, 50}, p.Lookup(2))
	assert.Equal(t, theme.RGB{100, 50, 25}, p.Lookup(0.5), "midpoint interpolates")
}

// TestLoadGPL parses a minimal GIMP palette, skipping headers and
// malformed lines.
func TestLoadGPL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.gpl")
	content := "GIMP Palette\nName: test\nColumns: 2\n# comment\n10 20 30 first\nnot a color\n40 50 60 second\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	p, err := theme.LoadGPL(path)
	require.NoError(t, err)
	assert.Equal(t, "test", p.Name)
	assert.Equal(t, []theme.RGB{{10, 20, 30}, {40, 50, 60}}, p.Colors)
}

// TestLoadGPL_Empty errors when no colors parse.
func TestLoadGPL_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.gpl")
	require.NoError(t, os.WriteFile(path, []byte("GIMP Palette\n"), 0644))

	_, err := theme.LoadGPL(path)
	assert.Error(t, err)
}
