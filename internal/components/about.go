package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Hari-prashath-123/art-finity/internal/animate"
	"github.com/Hari-prashath-123/art-finity/internal/registrations"
)

type fact struct {
	Label string
	Value string
}

var eventFacts = []fact{
	{"Team Size", "Maximum 2 members (Individual participation is also permitted)"},
	{"Registration Fee", "₹100 per participant"},
	{"Participation Certificates", "Provided to all registered participants"},
	{"Awards", "Cash prizes for the top 3 winning teams"},
	{"Registration", "Limited number of teams – Register early"},
	{"Venue", "K. Ramakrishnan College of Technology, Circuit Block 2nd Floor, Lab"},
}

// About renders the event description. A nil snapshot hides the
// registration count widget.
func About(reg *animate.Registry, snap *registrations.Snapshot) g.Node {
	const section = "about"

	var widget g.Node
	if snap != nil {
		widget = Div(
			Class("mt-6 opacity-0"),
			Animated(reg, section, animate.FadeIn),
			RegistrationCount(*snap),
		)
	}

	return Section(
		ID(section),
		Class("py-24 px-4 max-w-4xl mx-auto text-center"),
		Div(
			Class("opacity-0"),
			Animated(reg, section, animate.SlideLeft),

			H2(Class("text-3xl font-bold mb-8"), g.Text("About The Event")),
			Div(
				Class("about-top-brand"),
				Img(
					Src("/static/images/college-logo.jpg"),
					Alt("K. Ramakrishnan College of Technology logo"),
					Loading("lazy"),
					Class("college-logo"),
				),
			),

			P(
				Class("text-xl text-gray-300 leading-relaxed mb-6"),
				g.Text("ART-FINITY 2026 is an AI-focused creative innovation competition aimed at exploring the intersection of Artificial Intelligence and digital creativity. The event provides a platform for students to demonstrate their skills in AI-powered image and video generation, prompt engineering, and creative problem-solving, while promoting the ethical and responsible use of AI technologies."),
			),
			P(
				Class("text-xl text-gray-300 leading-relaxed mb-6"),
				g.Text("Participants will engage in hands-on challenges that emphasize innovation, originality, and real-world applicability of AI in creative domains, contributing to the development of an AI-ready workforce."),
			),

			Div(
				Class("space-y-4 text-lg text-gray-300 mb-12"),
				g.Group(g.Map(eventFacts, func(f fact) g.Node {
					return P(Strong(g.Text(f.Label+":")), g.Text(" "+f.Value))
				})),
			),

			Div(
				Class("mt-8 opacity-0"),
				Animated(reg, section, animate.FadeIn),
				Img(
					Src("/static/images/art-finity-poster.png"),
					Alt("Art Finity poster"),
					Loading("lazy"),
					Class("mx-auto w-full max-w-3xl rounded-lg shadow-lg"),
				),
			),

			widget,
		),
	)
}

// RegistrationCount shows the number of registered teams, "..." while the
// poller is loading, and a dash with a generic message on failure.
func RegistrationCount(snap registrations.Snapshot) g.Node {
	return Div(
		Class("mt-6"),
		ID("registration-count"),
		g.Attr("data-state", string(snap.State)),
		Div(
			Class("inline-flex items-center gap-4 bg-white/5 px-4 py-3 rounded-md border border-white/10"),
			Div(Class("text-2xl font-bold"), g.Text(snap.Display())),
			Div(Class("text-sm text-gray-300"), g.Text("Teams Registered")),
		),
		g.If(snap.State == registrations.StateError,
			P(Class("text-sm text-red-400 mt-2"), g.Text(registrations.GenericErrorMessage)),
		),
	)
}
