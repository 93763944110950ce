// latticemap prints the note lattice fitted to a viewport, for
// eyeballing the coordinate-to-pitch mapping without the TUI.
package main

import (
	"flag"
	"fmt"

	"github.com/ivofrolov/muspace/lattice"
)

func main() {
	width := flag.Int("width", 800, "viewport width in pixels")
	height := flag.Int("height", 600, "viewport height in pixels")
	cell := flag.Int("cell", lattice.DefaultCellSize, "cell size in pixels")
	gap := flag.Int("gap", lattice.DefaultGap, "gap between cells in pixels")
	flag.Parse()

	g := lattice.Fit(*width, *height, *cell, *gap)
	fmt.Printf("%dx%d cells (cell %dpx, gap %dpx)\n\n", g.Columns, g.Rows, g.CellSize, g.Gap)

	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Columns; x++ {
			fmt.Printf("%-3s", lattice.NoteAt(lattice.Vector{I: x, J: y}))
		}
		fmt.Println()
	}
}
