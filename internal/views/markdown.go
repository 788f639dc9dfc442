package views

import (
	"bytes"

	"github.com/yuin/goldmark"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Raw HTML in descriptions stays escaped: the renderer is not WithUnsafe
var markdown = goldmark.New()

func description(text string) g.Node {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(text), &buf); err != nil {
		return h.P(g.Text(text))
	}
	return g.Raw(buf.String())
}
