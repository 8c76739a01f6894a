package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/navyranks/internal/ui/theme"
)

const bannerArt = `
 ███╗   ██╗ █████╗ ██╗   ██╗██╗   ██╗
 ████╗  ██║██╔══██╗██║   ██║╚██╗ ██╔╝
 ██╔██╗ ██║███████║██║   ██║ ╚████╔╝
 ██║╚██╗██║██╔══██║╚██╗ ██╔╝  ╚██╔╝
 ██║ ╚████║██║  ██║ ╚████╔╝    ██║
 ╚═╝  ╚═══╝╚═╝  ╚═╝  ╚═══╝     ╚═╝
         R   A   N   K   S`

const bannerCompact = "N A V Y   R A N K S"

// RenderBanner returns the NAVY RANKS banner in braid gold.
// Uses a compact fallback for terminals narrower than 42 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Gold).
		Bold(true)

	if width < 42 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
