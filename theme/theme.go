package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Palette *Palette
}

func New(palette *Palette) *Theme {
	return &Theme{Palette: palette}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleBG        = 0.0 // grid background
	RoleMuted     = 0.2 // unselected note labels, help text
	RoleFG        = 0.5 // readable foreground
	RoleHover     = 0.6 // cell under the pointer
	RoleHighlight = 0.8 // selected/stamped cells
	RoleRoot      = 1.0 // the root anchor cell
)

// Style helpers

func (t *Theme) BG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleBG))
}

func (t *Theme) FG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleFG))
}

func (t *Theme) Muted() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleMuted))
}

func (t *Theme) Hover() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleHover))
}

func (t *Theme) Highlight() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleHighlight))
}

func (t *Theme) Root() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleRoot))
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
