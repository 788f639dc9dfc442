package views

import (
	"sync"

	"dconn.dev/portfolio/internal/motion"
)

// SwapScope is the class htmx puts on a swap target while the outgoing
// content is leaving
const SwapScope = "htmx-swapping"

var (
	pressable = motion.Motion{
		Hover: motion.To().Scale(1.1),
		Tap:   motion.To().Scale(0.9),
	}

	navMotion = motion.Motion{
		Initial: motion.To().Opacity(0),
		Animate: motion.To().Opacity(1),
	}

	stageMotion = motion.Motion{
		Initial:    motion.To().Opacity(0),
		Animate:    motion.To().Opacity(1),
		Exit:       motion.To().Opacity(0),
		Transition: motion.Transition{Duration: 0.3},
	}

	// StagePresence swaps sections one at a time: the old one fades out
	// completely before the new one is inserted
	StagePresence = motion.Presence{
		Mode: motion.Wait,
		Exit: stageMotion.Transition,
	}

	heroMotion = motion.Motion{
		Initial:    motion.To().Opacity(0).Y(50),
		Animate:    motion.To().Opacity(1).Y(0),
		Transition: motion.Transition{Duration: 0.5},
	}

	heroTitleMotion = motion.Motion{
		Hover: motion.To().Scale(1.1),
	}

	gridVariants = motion.Variants{
		Hidden:  motion.To().Opacity(0),
		Visible: motion.To().Opacity(1),
		Transition: motion.Transition{
			DelayChildren:   0.3,
			StaggerChildren: 0.2,
		},
	}

	cardVariants = motion.Variants{
		Hidden:  motion.To().Y(20).Opacity(0),
		Visible: motion.To().Y(0).Opacity(1),
	}

	contactMotion = motion.Motion{
		Initial:    motion.To().Opacity(0).Scale(0.9),
		Animate:    motion.To().Opacity(1).Scale(1),
		Transition: motion.Transition{Duration: 0.5},
	}

	fieldMotion = motion.Motion{
		Focus: motion.To().Scale(1.02),
	}

	floatMotion = motion.Motion{
		Keyframes: []motion.Target{
			motion.To().X(0).Opacity(0),
			motion.To().X(20).Opacity(1),
			motion.To().X(-20).Opacity(1),
			motion.To().X(0).Opacity(0),
		},
		Transition: motion.Transition{Duration: 5, Repeat: motion.Infinite},
	}
)

var sheet = motion.NewSheet(SwapScope)

var (
	classNav        = sheet.Class("nav", navMotion)
	classNavButton  = sheet.Class("nav-button", pressable)
	classStage      = sheet.Class("stage", stageMotion)
	classHero       = sheet.Class("hero", heroMotion)
	classHeroTitle  = sheet.Class("hero-title", heroTitleMotion)
	classHeroButton = sheet.Class("hero-button", pressable)
	classGrid       = sheet.Class("project-grid", gridVariants.Motion())
	classCard       = sheet.Class("project-card", cardMotion())
	classContact    = sheet.Class("contact", contactMotion)
	classField      = sheet.Class("field", fieldMotion)
	classSubmit     = sheet.Class("submit", pressable)
	classFloat      = sheet.Class("float", floatMotion)
)

// cardMotion is the card entrance without stagger; each card adds its
// own delay inline
func cardMotion() motion.Motion {
	m := cardVariants.Motion()
	m.Hover = motion.To().Scale(1.05)
	return m
}

var (
	stylesheetOnce sync.Once
	stylesheet     string
)

// Stylesheet returns the compiled motion CSS for every component
func Stylesheet() string {
	stylesheetOnce.Do(func() {
		stylesheet = sheet.CSS()
	})
	return stylesheet
}
