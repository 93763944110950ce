package keyboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivofrolov/muspace/keyboard"
	"github.com/ivofrolov/muspace/lattice"
)

// newBoard returns a controller fitted to the given number of columns
// and rows using the default 26/1 geometry.
func newBoard(t *testing.T, cols, rows int) *keyboard.Controller {
	t.Helper()
	c := keyboard.New(keyboard.DefaultOptions())
	c.Resize(cols*27-1, rows*27-1)
	g := c.Grid()
	require.Equal(t, cols, g.Columns)
	require.Equal(t, rows, g.Rows)
	return c
}

// TestController_ResizeKeepsSelections verifies that refitting the
// grid leaves both selections alone.
func TestController_ResizeKeepsSelections(t *testing.T) {
	c := newBoard(t, 3, 3)
	c.Tap(lattice.Vector{I: 0, J: 0}) // pick a degree
	c.SetMode(keyboard.ModePlace)
	c.Tap(lattice.Vector{I: 1, J: 1}) // stamp a chord

	picked, placed := c.Picked(), c.Placed()
	c.Resize(800, 600)
	assert.Equal(t, 29, c.Grid().Columns)
	assert.Equal(t, 22, c.Grid().Rows)
	assert.True(t, c.Picked().Equal(picked), "picked shape must survive a resize")
	assert.True(t, c.Placed().Equal(placed), "placed chords must survive a resize")
}

// TestController_PickTogglesDegrees checks that pick-mode taps store
// root-relative degrees and that re-tapping removes them.
func TestController_PickTogglesDegrees(t *testing.T) {
	c := newBoard(t, 3, 3) // center (1,1) is the root

	c.Tap(lattice.Vector{I: 2, J: 1}) // one right of the root
	assert.True(t, c.Picked().Member(lattice.Vector{I: 1, J: 0}), "fifth degree picked")

	c.Tap(lattice.Vector{I: 1, J: 0}) // one above the root
	assert.True(t, c.Picked().Member(lattice.Vector{I: 0, J: 1}), "third degree picked")

	c.Tap(lattice.Vector{I: 2, J: 1})
	assert.False(t, c.Picked().Member(lattice.Vector{I: 1, J: 0}), "re-tap deselects the degree")
}

// TestController_PlaceStampScenario runs the end-to-end stamp and
// un-stamp of a major triad on a 3x3 grid.
func TestController_PlaceStampScenario(t *testing.T) {
	c := newBoard(t, 3, 3)
	c.ToggleNote(lattice.Vector{I: 1, J: 0})
	c.ToggleNote(lattice.Vector{I: 0, J: 1})
	c.SetMode(keyboard.ModePlace)

	c.Tap(lattice.Vector{I: 1, J: 1})
	want := lattice.NewScale(
		lattice.Vector{I: 1, J: 1}, // root
		lattice.Vector{I: 2, J: 1}, // fifth: (1,0) flips to (1,0)
		lattice.Vector{I: 1, J: 0}, // third: (0,1) flips to (0,-1)
	)
	assert.True(t, c.Placed().Equal(want), "stamped chord = %v", c.Placed().Vectors())

	// Same tap again cancels the whole chord by symmetric difference.
	c.Tap(lattice.Vector{I: 1, J: 1})
	assert.Equal(t, 0, len(c.Placed()), "re-stamp at the same anchor must cancel")
}

// TestController_OverlappingStamps checks that two chords sharing a
// cell cancel only on the shared cell.
func TestController_OverlappingStamps(t *testing.T) {
	c := newBoard(t, 4, 4)
	c.ToggleNote(lattice.Vector{I: 1, J: 0})
	c.SetMode(keyboard.ModePlace)

	c.Tap(lattice.Vector{I: 0, J: 1}) // {(0,1),(1,1)}
	c.Tap(lattice.Vector{I: 1, J: 1}) // {(1,1),(2,1)} - shares (1,1)

	assert.True(t, c.Placed().Member(lattice.Vector{I: 0, J: 1}))
	assert.True(t, c.Placed().Member(lattice.Vector{I: 2, J: 1}))
	assert.False(t, c.Placed().Member(lattice.Vector{I: 1, J: 1}), "shared cell toggles back off")
}

// TestController_ModeSwitchClearsNothing asserts that switching modes
// keeps both selections intact.
func TestController_ModeSwitchClearsNothing(t *testing.T) {
	c := newBoard(t, 3, 3)
	c.ToggleNote(lattice.Vector{I: 1, J: 0})
	c.SetMode(keyboard.ModePlace)
	c.Tap(lattice.Vector{I: 0, J: 0})
	c.SetMode(keyboard.ModePick)
	c.SetMode(keyboard.ModePlace)

	assert.Equal(t, 1, len(c.Picked()))
	assert.NotEqual(t, 0, len(c.Placed()))
}

// TestController_RootPolicies compares the center anchor with the
// hover-following anchor.
func TestController_RootPolicies(t *testing.T) {
	center := keyboard.New(keyboard.DefaultOptions())
	center.Resize(800, 600)
	center.SetHover(lattice.Vector{I: 3, J: 3})
	assert.Equal(t, center.Grid().Center(), center.Root(), "center policy ignores hover")

	opts := keyboard.DefaultOptions()
	opts.RootPolicy = keyboard.RootHover
	hover := keyboard.New(opts)
	hover.Resize(800, 600)
	assert.Equal(t, hover.Grid().Center(), hover.Root(), "no hover yet: fall back to center")

	hover.SetHover(lattice.Vector{I: 3, J: 3})
	assert.Equal(t, lattice.Vector{I: 3, J: 3}, hover.Root())

	hover.ClearHover()
	assert.Equal(t, hover.Grid().Center(), hover.Root(), "cleared hover falls back to center")
}

// TestController_CellsProjection checks the row-major enumeration,
// labels and per-mode highlight sets.
func TestController_CellsProjection(t *testing.T) {
	c := newBoard(t, 3, 2)
	cells := c.Cells()
	require.Len(t, cells, 6)

	// Row-major: outer row index, inner column index.
	assert.Equal(t, lattice.Vector{I: 0, J: 0}, cells[0].Position)
	assert.Equal(t, lattice.Vector{I: 2, J: 0}, cells[2].Position)
	assert.Equal(t, lattice.Vector{I: 0, J: 1}, cells[3].Position)

	for _, cell := range cells {
		assert.Equal(t, lattice.NoteAt(cell.Position), cell.Label)
	}

	// Pick mode lights the picked shape projected at the root (1,1).
	c.Tap(lattice.Vector{I: 2, J: 1})
	lit := 0
	for _, cell := range c.Cells() {
		if cell.Highlighted {
			lit++
			assert.Contains(t, []lattice.Vector{{I: 1, J: 1}, {I: 2, J: 1}}, cell.Position)
		}
	}
	assert.Equal(t, 2, lit, "root plus one degree")

	// Place mode lights only the stamped set, independent of picked.
	c.SetMode(keyboard.ModePlace)
	for _, cell := range c.Cells() {
		assert.False(t, cell.Highlighted, "nothing stamped yet")
	}
}

// TestController_EmptyGrid makes sure a degenerate viewport renders an
// empty cell list without errors.
func TestController_EmptyGrid(t *testing.T) {
	c := keyboard.New(keyboard.DefaultOptions())
	c.Resize(10, 10)
	assert.Empty(t, c.Cells())
}

// TestController_Clear only empties the selection of the active mode.
func TestController_Clear(t *testing.T) {
	c := newBoard(t, 3, 3)
	c.ToggleNote(lattice.Vector{I: 1, J: 0})
	c.SetMode(keyboard.ModePlace)
	c.Tap(lattice.Vector{I: 0, J: 0})

	c.Clear()
	assert.Equal(t, 0, len(c.Placed()), "place mode clears placed")
	assert.Equal(t, 1, len(c.Picked()), "picked untouched")

	c.SetMode(keyboard.ModePick)
	c.Clear()
	assert.Equal(t, 0, len(c.Picked()))
}
