package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderCell renders one note cell as a fixed-width box so the grid
// stays column-aligned whatever the label length ("c" vs "c#").
func RenderCell(label string, width int, style lipgloss.Style) string {
	if len(label) > width {
		label = label[:width]
	}
	return style.Render(fmt.Sprintf("%-*s", width, label))
}

// RenderLegendItem renders a single legend item: "■ Name - description"
func RenderLegendItem(color lipgloss.Color, name, desc string) string {
	mark := lipgloss.NewStyle().Foreground(color).Render("■")
	return fmt.Sprintf("  %s %s - %s", mark, name, desc)
}

// RenderKeyHelp formats key bindings in a friendly way
func RenderKeyHelp(sections []KeySection) string {
	var lines []string
	for _, sec := range sections {
		if sec.Title != "" {
			lines = append(lines, sec.Title)
		}
		for _, k := range sec.Keys {
			lines = append(lines, fmt.Sprintf("  %-12s %s", k.Key, k.Desc))
		}
	}
	return strings.Join(lines, "\n")
}

// KeySection groups related key bindings
type KeySection struct {
	Title string
	Keys  []KeyBinding
}

// KeyBinding is a single key and its description
type KeyBinding struct {
	Key  string
	Desc string
}
