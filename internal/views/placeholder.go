package views

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
)

// PlaceholderSVG draws a grey box labelled with its size
func PlaceholderSVG(width, height int) g.Node {
	fontSize := min(max(min(width, height)/8, 8), 96)
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("width", strconv.Itoa(width)),
		g.Attr("height", strconv.Itoa(height)),
		g.Attr("viewBox", fmt.Sprintf("0 0 %d %d", width, height)),
		g.El("rect",
			g.Attr("width", "100%"),
			g.Attr("height", "100%"),
			g.Attr("fill", "#e5e7eb"),
		),
		g.El("text",
			g.Attr("x", "50%"),
			g.Attr("y", "50%"),
			g.Attr("dominant-baseline", "middle"),
			g.Attr("text-anchor", "middle"),
			g.Attr("font-family", "sans-serif"),
			g.Attr("font-size", strconv.Itoa(fontSize)),
			g.Attr("fill", "#6b7280"),
			g.Textf("%d×%d", width, height),
		),
	)
}
