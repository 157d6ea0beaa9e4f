package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Hari-prashath-123/art-finity/internal/animate"
)

// CommunityChatURL is the WhatsApp group invite.
const CommunityChatURL = "https://chat.whatsapp.com/BughR6bYEkeIBjZcjlB4Wq"

// Closing is the organisers' block, followed by the standalone WhatsApp
// call-to-action. The call-to-action is its own section outside the
// alternating order, so it keeps the reveal animation.
func Closing(reg *animate.Registry) g.Node {
	const section = "closing"

	block := Section(
		ID(section),
		Class("pt-32 pb-8 px-4"),
		Div(
			Class("max-w-5xl mx-auto text-center opacity-0"),
			Animated(reg, section, animate.SlideLeft),
			H2(Class("text-5xl md:text-6xl font-bold mb-6 tracking-tight"), g.Text("Agen Club x Art Nexus Club")),
			P(
				Class("text-xl text-gray-300 mb-6 max-w-3xl mx-auto"),
				g.Text("A student-run creative & tech collective, where art, AI and storytelling collide."),
			),
			Div(
				Class("flex flex-wrap justify-center gap-4 mb-12 text-sm text-gray-400 uppercase tracking-widest"),
				Span(g.Text("Workshops & Mentorship")),
				Span(g.Text("Hands-on Challenges")),
				Span(g.Text("Showcase & Prizes")),
			),
			P(
				Class("text-lg text-gray-300 leading-relaxed max-w-3xl mx-auto"),
				g.Text("Agen Club and Art Nexus Club organise Art Finity to bring creators and technologists together: build character-driven images, transform them into motion stories, and share your creative vision."),
			),
		),
	)

	return g.Group{block, CallToAction(reg)}
}

// CallToAction is the WhatsApp invite under the closing section.
func CallToAction(reg *animate.Registry) g.Node {
	const section = "cta"

	return Section(
		ID(section),
		Class("pb-32 px-4"),
		Div(
			Class("text-center opacity-0"),
			ID("community-cta"),
			Animated(reg, section, animate.Reveal, animate.Pinned(), animate.WithID("closing-cta")),
			ExternalLink(CommunityChatURL, "inline-flex items-center gap-3 px-6 py-3 bg-green-500 hover:bg-green-600 text-black font-medium rounded-md transition",
				g.Attr("aria-label", "Join the Art Finity WhatsApp group"),
				g.Text("Join WhatsApp Group"),
			),
		),
	)
}
