package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"dconn.dev/portfolio/internal/models"
)

// PageData is everything the full page needs
type PageData struct {
	Title          string
	Active         models.Section
	Projects       []models.Project
	Static         bool
	StylesheetHref string
	TailwindURL    string
	HTMXURL        string
}

// App is the navigation bar plus the content area. Only the content
// area is swapped on navigation
func App(active models.Section, projects []models.Project, static bool) g.Node {
	return g.Group([]g.Node{
		NavBar(active, static),
		h.Div(h.ID(ContentID), Stage(active, projects)),
	})
}

// SectionSwap is the response to a section change: the new stage for the
// content area and the navigation bar with the new highlight
func SectionSwap(active models.Section, projects []models.Project) g.Node {
	return g.Group([]g.Node{
		Stage(active, projects),
		NavUpdate(active),
	})
}

// Page renders the whole document. The decorative layer sits outside the
// swap target so section changes never restart it
func Page(d PageData) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(d.Title)),
				g.If(d.TailwindURL != "", h.Script(h.Src(d.TailwindURL))),
				h.Link(h.Rel("stylesheet"), h.Href(d.StylesheetHref)),
			),
			h.Body(
				h.Class("min-h-screen bg-gray-100"),
				h.Div(h.ID(AppID), App(d.Active, d.Projects, d.Static)),
				Decor(),
				g.If(!d.Static && d.HTMXURL != "", h.Script(h.Src(d.HTMXURL))),
			),
		),
	)
}
