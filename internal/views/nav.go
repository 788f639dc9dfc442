package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"dconn.dev/portfolio/internal/models"
)

// SectionPath is where navigation posts the chosen section
const SectionPath = "/section"

// SectionField is the form field carrying the chosen section
const SectionField = "section"

const (
	navActive   = "text-purple-600 font-bold"
	navInactive = "text-gray-600"
)

// NavID is the id of the navigation bar
const NavID = "nav"

const navBase = "bg-white shadow-md p-4"

// NavBar renders one control per known section and highlights active
// Static controls are plain links to exported pages, otherwise they are
// submit buttons that post to SectionPath and swap the content area
func NavBar(active models.Section, static bool) g.Node {
	return navBar(active, static, h.Class(navBase+" "+classNav))
}

// NavUpdate re-renders the navigation bar as an out-of-band swap. It has
// no entrance animation so the bar stays put while the highlight moves
func NavUpdate(active models.Section) g.Node {
	return navBar(active, false, h.Class(navBase), hx.SwapOOB("true"))
}

func navBar(active models.Section, static bool, attrs ...g.Node) g.Node {
	controls := make([]g.Node, 0, 3)
	for _, s := range models.KnownSections() {
		controls = append(controls, navControl(s, s == active, static))
	}

	list := "container mx-auto flex justify-center space-x-6"
	if static {
		return h.Nav(
			h.ID(NavID),
			g.Group(attrs),
			h.Div(h.Class(list), g.Group(controls)),
		)
	}

	return h.Nav(
		h.ID(NavID),
		g.Group(attrs),
		h.Form(
			h.Class(list),
			h.Method("post"),
			h.Action(SectionPath),
			hx.Post(SectionPath),
			hx.Target("#"+ContentID),
			hx.Swap(StagePresence.SwapValue("innerHTML")),
			g.Group(controls),
		),
	)
}

func navControl(s models.Section, active, static bool) g.Node {
	class := navInactive
	if active {
		class = navActive
	}

	attrs := []g.Node{
		h.Class(class + " " + classNavButton),
		h.Data("section", string(s)),
		h.Data("active", strconv.FormatBool(active)),
	}

	if static {
		return h.A(h.Href(StaticPath(s)), g.Group(attrs), g.Text(s.Label()))
	}
	return h.Button(
		h.Type("submit"),
		h.Name(SectionField),
		h.Value(string(s)),
		g.Group(attrs),
		g.Text(s.Label()),
	)
}

// StaticPath is the file name of an exported section page
func StaticPath(s models.Section) string {
	if s == models.SectionHome {
		return "index.html"
	}
	return string(s) + ".html"
}
