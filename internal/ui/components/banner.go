package components

import (
	"charm.land/lipgloss/v2"
)

const bannerArt = ` ██████╗██╗  ██╗███████╗███╗   ███╗██╗███████╗
██╔════╝██║  ██║██╔════╝████╗ ████║██║╚══███╔╝
██║     ███████║█████╗  ██╔████╔██║██║  ███╔╝
██║     ██╔══██║██╔══╝  ██║╚██╔╝██║██║ ███╔╝
╚██████╗██║  ██║███████╗██║ ╚═╝ ██║██║███████╗
 ╚═════╝╚═╝  ╚═╝╚══════╝╚═╝     ╚═╝╚═╝╚══════╝`

const bannerCompact = "C · H · E · M · I · Z"

// BannerWidth is the width of the full block-letter banner.
const BannerWidth = 47

// Banner returns the CHEMIZ block-letter title rendered with style, or a
// one-line fallback when compact is set or width cannot fit the art.
func Banner(width int, compact bool, style lipgloss.Style) string {
	if compact || width < BannerWidth+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
