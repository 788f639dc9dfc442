package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"dconn.dev/portfolio/internal/models"
	"dconn.dev/portfolio/internal/motion"
)

// Copy shown by the section layouts
const (
	HeroTitle       = "Creative Portfolio"
	HeroSubtitle    = "Innovative Design & Development Solutions"
	HeroAction      = "Explore Work"
	ContactHeading  = "Contact Me"
	ContactSubmit   = "Send Message"
	StageID         = "stage"
	ContentID       = "content"
	AppID           = "app"
	sectionViewAttr = "section-view"
)

// Section renders the layout for active, or nil when active is not a
// known section
func Section(active models.Section, projects []models.Project) g.Node {
	switch active {
	case models.SectionHome:
		return homeSection()
	case models.SectionProjects:
		return projectsSection(projects)
	case models.SectionContact:
		return contactSection()
	default:
		return nil
	}
}

// Stage is the keyed content wrapper that fades between sections
func Stage(active models.Section, projects []models.Project) g.Node {
	return h.Div(
		h.ID(StageID),
		h.Class(classStage),
		h.Data("key", string(active)),
		Section(active, projects),
	)
}

func homeSection() g.Node {
	return h.Div(
		h.Class("text-center p-10 bg-gradient-to-r from-purple-500 to-pink-500 text-white "+classHero),
		h.Data(sectionViewAttr, string(models.SectionHome)),
		h.H1(h.Class("text-5xl font-bold mb-4 "+classHeroTitle), g.Text(HeroTitle)),
		h.P(h.Class("text-xl mb-6"), g.Text(HeroSubtitle)),
		h.Button(
			h.Type("button"),
			h.Class("bg-white text-purple-600 px-6 py-3 rounded-full "+classHeroButton),
			g.Text(HeroAction),
		),
	)
}

func projectsSection(projects []models.Project) g.Node {
	cards := make([]g.Node, 0, len(projects))
	for i, p := range projects {
		cards = append(cards, projectCard(i, p))
	}

	return h.Div(
		h.Class("grid md:grid-cols-3 gap-6 p-6 "+classGrid),
		h.Data(sectionViewAttr, string(models.SectionProjects)),
		g.Group(cards),
	)
}

func projectCard(i int, p models.Project) g.Node {
	return h.Div(
		h.Class("bg-white shadow-lg rounded-lg overflow-hidden "+classCard),
		h.Data("project-id", strconv.Itoa(p.ID)),
		h.Style(motion.DelayStyle(gridVariants.ChildDelay(i))),
		h.Img(h.Src(p.Image), h.Alt(p.Title), h.Class("w-full h-48 object-cover")),
		h.Div(
			h.Class("p-4"),
			h.H3(h.Class("text-xl font-bold mb-2"), g.Text(p.Title)),
			h.Div(h.Class("project-description"), description(p.Description)),
		),
	)
}

// The form has no action and its fields have no names: submitting it
// reloads the page and sends nothing
func contactSection() g.Node {
	field := "w-full p-3 mb-4 border rounded " + classField

	return h.Div(
		h.Class("max-w-md mx-auto p-6 bg-white shadow-lg rounded-lg "+classContact),
		h.Data(sectionViewAttr, string(models.SectionContact)),
		h.H2(h.Class("text-3xl mb-6 text-center"), g.Text(ContactHeading)),
		h.Form(
			h.Input(h.Placeholder("Name"), h.Class(field)),
			h.Input(h.Placeholder("Email"), h.Class(field)),
			h.Textarea(h.Placeholder("Message"), h.Class(field+" h-32")),
			h.Button(
				h.Type("submit"),
				h.Class("w-full bg-purple-600 text-white p-3 rounded "+classSubmit),
				g.Text(ContactSubmit),
			),
		),
	)
}
