package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sparklearn/internal/ui/theme"
)

const bannerArt = `
 ╔═╗╔═╗╔═╗╦═╗╦╔═  ╦  ╔═╗╔═╗╦═╗╔╗╔
 ╚═╗╠═╝╠═╣╠╦╝╠╩╗  ║  ║╣ ╠═╣╠╦╝║║║
 ╚═╝╩  ╩ ╩╩╚═╩ ╩  ╩═╝╚═╝╩ ╩╩╚═╝╚╝`

const bannerCompact = "S P A R K L E A R N"

// RenderBanner returns the banner, falling back to spaced letters on
// terminals narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < lipgloss.Width(bannerArt)+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
