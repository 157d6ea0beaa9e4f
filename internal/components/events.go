package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Hari-prashath-123/art-finity/internal/animate"
)

type Round struct {
	Label     string
	Title     string
	Accent    string
	CardClass string
	Icon      func() g.Node
	Points    []string
}

var rounds = []Round{
	{
		Label:     "Round 1",
		Title:     "Image Generation",
		Accent:    "purple",
		CardClass: "card-hover-effect",
		Icon:      ImageIcon,
		Points: []string{
			"Character design event (Anything Matches t)",
			"Create 1 image explaining the character's concept",
			"Include emotion and visual details",
			"200-word description required",
		},
	},
	{
		Label:     "Round 2",
		Title:     "Video Generation",
		Accent:    "blue",
		CardClass: "card-hover-blue-glow delay-200",
		Icon:      VideoIcon,
		Points: []string{
			"Motion video created using the designed character",
			"Must include storytelling + audio",
			"Small edits allowed (cut/trim/merge)",
			"Suggested length: 60–90 seconds",
		},
	},
}

func Events(reg *animate.Registry) g.Node {
	const section = "events"

	return Section(
		ID(section),
		Class("py-24 px-4 bg-white/5"),
		Div(
			Class("max-w-6xl mx-auto"),
			H2(
				Class("text-4xl font-bold mb-16 text-center"),
				Animated(reg, section, animate.SlideRight),
				g.Text("Events"),
			),
			Div(
				Class("grid md:grid-cols-2 gap-12"),
				g.Group(g.Map(rounds, func(r Round) g.Node {
					return roundCard(reg, section, r)
				})),
			),
		),
	)
}

func roundCard(reg *animate.Registry, section string, r Round) g.Node {
	return Div(
		H3(
			Class("text-xl font-bold mb-4 text-"+r.Accent+"-400"),
			Animated(reg, section, animate.SlideRight),
			g.Text(r.Label),
		),
		Div(
			Class("bg-black border border-white/10 p-8 rounded-lg opacity-0 "+r.CardClass),
			Animated(reg, section, animate.SlideRight),
			Div(
				Class("w-16 h-16 bg-"+r.Accent+"-900/30 rounded-full flex items-center justify-center mb-6 text-"+r.Accent+"-400"),
				r.Icon(),
			),
			H3(Class("text-2xl font-bold mb-4"), g.Text(r.Title)),
			Ul(
				Class("space-y-3 text-gray-300 mb-6"),
				g.Group(g.Map(r.Points, func(p string) g.Node {
					return bullet("text-"+r.Accent+"-500", p)
				})),
			),
		),
	)
}
