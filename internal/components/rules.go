package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Hari-prashath-123/art-finity/internal/animate"
)

func Rules(reg *animate.Registry) g.Node {
	const section = "rules"

	rule := func(children ...g.Node) g.Node {
		return Div(
			Class("flex items-center gap-3"),
			Div(Class("w-2 h-2 bg-white rounded-full")),
			P(children...),
		)
	}

	return Section(
		ID(section),
		Class("py-24 px-4 max-w-4xl mx-auto"),
		Div(
			Class("opacity-0"),
			Animated(reg, section, animate.SlideLeft),
			H2(Class("text-4xl font-bold mb-12 border-b border-white/20 pb-4 inline-block"), g.Text("Rules")),
			Div(
				Class("space-y-6 text-lg text-gray-300"),
				rule(g.Text("No pre-generated AI images allowed.")),
				rule(g.Text("No discussion or collaboration between participants during the rounds.")),
				rule(g.Text("Use of external AI tools is "), Strong(g.Text("not permitted")), g.Text(".")),
				rule(g.Text("Small edits are allowed only (merge, trim).")),
			),
		),
	)
}
