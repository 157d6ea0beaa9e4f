package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Hari-prashath-123/art-finity/internal/animate"
	"github.com/Hari-prashath-123/art-finity/internal/registrations"
)

// LandingPageConfig configures one landing page build.
type LandingPageConfig struct {
	PageConfig

	// Registrations is the widget snapshot; nil leaves the widget out.
	Registrations *registrations.Snapshot
}

// LandingPage builds the page tree, registering every animated element in
// reg. Directions must be assigned on reg before the tree is rendered.
func LandingPage(reg *animate.Registry, config LandingPageConfig) g.Node {
	return Layout(config.PageConfig, reg,
		LogosBar(),
		Main(
			Class("min-h-screen bg-black text-white overflow-x-hidden"),
			Hero(reg),
			About(reg, config.Registrations),
			Events(reg),
			Themes(reg),
			Sponsors(reg),
			Rules(reg),
			Timeline(reg),
			Closing(reg),
			PageFooter(),
		),
	)
}

// BuildLandingPage builds the page into a fresh registry and assigns the
// alternating directions, returning both ready to render. It panics when a
// pinned element sits in an ordered section, a markup bug like a duplicate id.
func BuildLandingPage(config LandingPageConfig) (g.Node, *animate.Registry, []animate.Assignment) {
	reg := animate.NewRegistry()
	page := LandingPage(reg, config)
	if err := animate.CheckPinned(reg, animate.DefaultSectionOrder); err != nil {
		panic(err)
	}
	assignments := animate.AssignDirections(reg, animate.DefaultSectionOrder)
	return page, reg, assignments
}
