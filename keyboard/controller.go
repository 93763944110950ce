// Package keyboard holds the interaction state machine of the visual
// keyboard: one controller owns the grid, the mode and the selections,
// and every external event maps to exactly one transition followed by
// a full re-derivation of the renderable cell list.
package keyboard

import (
	"github.com/ivofrolov/muspace/lattice"
)

// Mode selects what a tap does.
type Mode int

const (
	// ModePick edits the chord shape: taps toggle interval degrees
	// relative to the current root.
	ModePick Mode = iota
	// ModePlace stamps the picked shape: taps toggle a whole chord
	// instance anchored at the tapped cell.
	ModePlace
)

func (m Mode) String() string {
	if m == ModePlace {
		return "place"
	}
	return "pick"
}

// RootPolicy decides which cell anchors degree math in pick mode.
type RootPolicy int

const (
	// RootCenter anchors at the grid center.
	RootCenter RootPolicy = iota
	// RootHover anchors at the hovered cell, falling back to the grid
	// center while no cell is hovered.
	RootHover
)

// Options fixes the conventions that varied between iterations of the
// app: cell geometry and the root anchor policy.
type Options struct {
	CellSize   int
	Gap        int
	RootPolicy RootPolicy
}

// DefaultOptions matches the observed configuration: 26px cells, 1px
// gaps, root at the grid center.
func DefaultOptions() Options {
	return Options{
		CellSize:   lattice.DefaultCellSize,
		Gap:        lattice.DefaultGap,
		RootPolicy: RootCenter,
	}
}

// Cell is one renderable grid box. The full list is regenerated on
// every state change; cells are never mutated in place.
type Cell struct {
	Position    lattice.Vector
	Label       string
	Highlighted bool
}

// Controller owns the keyboard state and is its only writer. All
// transitions are total functions; the view layer normalizes malformed
// coordinates before they get here.
type Controller struct {
	opts Options

	grid     lattice.Grid
	mode     Mode
	hover    lattice.Vector
	hovering bool
	picked   lattice.Scale // interval degrees relative to the root
	placed   lattice.Scale // absolute positions of stamped chords
}

func New(opts Options) *Controller {
	return &Controller{
		opts:   opts,
		picked: lattice.NewScale(),
		placed: lattice.NewScale(),
	}
}

// Resize refits the grid to a new viewport. Selections survive; the
// grid is recomputed from scratch, never adjusted incrementally.
func (c *Controller) Resize(width, height int) {
	c.grid = lattice.Fit(width, height, c.opts.CellSize, c.opts.Gap)
}

func (c *Controller) Grid() lattice.Grid {
	return c.grid
}

func (c *Controller) Mode() Mode {
	return c.mode
}

// SetMode switches between pick and place. Neither selection is
// cleared: the shape picked in one mode is what place stamps.
func (c *Controller) SetMode(m Mode) {
	c.mode = m
}

// SetHover tracks the pointer cell for hover-following highlight.
func (c *Controller) SetHover(pos lattice.Vector) {
	c.hover, c.hovering = pos, true
}

func (c *Controller) ClearHover() {
	c.hovering = false
}

func (c *Controller) Hover() (lattice.Vector, bool) {
	return c.hover, c.hovering
}

// Root is the anchor for degree math under the configured policy.
func (c *Controller) Root() lattice.Vector {
	if c.opts.RootPolicy == RootHover && c.hovering {
		return c.hover
	}
	return c.grid.Center()
}

// ToggleNote flips a single vector in the picked set directly, without
// any root-relative conversion. This is the single-selection behavior;
// the caller decides whether the vector is a degree or a position.
func (c *Controller) ToggleNote(v lattice.Vector) {
	c.picked = c.picked.Toggle(v)
}

// Tap dispatches a click by mode. In pick mode the tapped cell is
// converted to a degree relative to the root and toggled in the shape;
// in place mode the whole shape anchored at the tapped cell is toggled
// in the placed set, so re-tapping the same cell un-stamps it.
func (c *Controller) Tap(pos lattice.Vector) {
	switch c.mode {
	case ModePick:
		c.picked = c.picked.Toggle(lattice.DegreeOf(c.Root(), pos))
	case ModePlace:
		c.placed = c.placed.SymDiff(lattice.Chord(pos, c.picked))
	}
}

// Clear empties the selection the current mode edits.
func (c *Controller) Clear() {
	switch c.mode {
	case ModePick:
		c.picked = lattice.NewScale()
	case ModePlace:
		c.placed = lattice.NewScale()
	}
}

func (c *Controller) Picked() lattice.Scale {
	return c.picked
}

func (c *Controller) Placed() lattice.Scale {
	return c.placed
}

// highlight is the set of absolute positions lit in the current mode:
// the picked shape projected at the root, or the stamped chords.
func (c *Controller) highlight() lattice.Scale {
	if c.mode == ModePlace {
		return c.placed
	}
	return lattice.Chord(c.Root(), c.picked)
}

// Cells regenerates the full render list in row-major order. Cheap at
// tens to low hundreds of cells, so no incremental patching.
func (c *Controller) Cells() []Cell {
	lit := c.highlight()
	cells := make([]Cell, 0, c.grid.Columns*c.grid.Rows)
	for y := 0; y < c.grid.Rows; y++ {
		for x := 0; x < c.grid.Columns; x++ {
			pos := lattice.Vector{I: x, J: y}
			cells = append(cells, Cell{
				Position:    pos,
				Label:       lattice.NoteAt(pos),
				Highlighted: lit.Member(pos),
			})
		}
	}
	return cells
}
