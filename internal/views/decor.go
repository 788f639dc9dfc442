package views

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"dconn.dev/portfolio/internal/motion"
)

// Shape is one floating background element. Index starts at 1
type Shape struct {
	Index int
	Color string
	Top   float64 // percent of viewport height
	Left  float64 // percent of viewport width
	Delay float64 // seconds before the loop starts
}

var shapeColors = []string{"bg-pink-400", "bg-blue-400", "bg-green-400"}

// DecorShapes lays out the floating shapes
func DecorShapes() []Shape {
	shapes := make([]Shape, len(shapeColors))
	for i, color := range shapeColors {
		n := float64(i + 1)
		shapes[i] = Shape{
			Index: i + 1,
			Color: color,
			Top:   20 + n*30,
			Left:  10 + n*20,
			Delay: n * 0.5,
		}
	}
	return shapes
}

// Decor renders the floating shapes. It reads no state
func Decor() g.Node {
	return h.Div(
		h.Class("decor"),
		h.Aria("hidden", "true"),
		g.Map(DecorShapes(), shapeNode),
	)
}

func shapeNode(s Shape) g.Node {
	return h.Div(
		h.Class("fixed w-16 h-16 rounded-full pointer-events-none "+s.Color+" "+classFloat),
		h.Data("shape", strconv.Itoa(s.Index)),
		h.Style(fmt.Sprintf("top: %s%%; left: %s%%; %s",
			strconv.FormatFloat(s.Top, 'f', -1, 64),
			strconv.FormatFloat(s.Left, 'f', -1, 64),
			motion.DelayStyle(s.Delay))),
	)
}
