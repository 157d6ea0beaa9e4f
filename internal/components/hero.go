package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Hari-prashath-123/art-finity/internal/animate"
)

// RegistrationFormURL is the external sign-up form.
const RegistrationFormURL = "https://forms.gle/DfFXMDzGjbaDMvN2A"

// Hero is not part of the alternating section order; its elements keep the
// variants given here.
func Hero(reg *animate.Registry) g.Node {
	const section = "hero"

	return Section(
		ID(section),
		Class("h-screen flex flex-col justify-center items-center text-center px-4 relative"),

		Div(Class("absolute inset-0 bg-[radial-gradient(circle_at_center,_var(--tw-gradient-stops))] from-purple-900/20 via-black to-black -z-10")),

		H1(
			Class("text-6xl md:text-8xl font-bold mb-6 tracking-tighter opacity-0"),
			Animated(reg, section, animate.Reveal, animate.Pinned(), animate.WithID("hero-title")),
			g.Text("ART FINITY"),
		),
		P(
			Class("text-lg text-gray-400 mb-12 opacity-0 delay-300"),
			Animated(reg, section, animate.FadeIn),
			g.Text("AI ART HACKATHON - 2026"),
		),
		P(
			Class("text-xl md:text-2xl text-gray-300 mb-2 opacity-0 delay-200"),
			Animated(reg, section, animate.FadeIn),
			g.Text("Coming 29th • 9:00 AM – 4:00 PM"),
		),
		P(
			Class("text-lg text-gray-400 mb-12 opacity-0 delay-300"),
			Animated(reg, section, animate.FadeIn),
			g.Text("AI × Creativity × Innovation"),
		),

		Div(
			Class("flex gap-6 opacity-0 delay-500"),
			Animated(reg, section, animate.SlideUp),
			ScrollButton("rules", "px-8 py-3 border border-white hover:bg-white hover:text-black transition-all duration-300 text-lg font-medium tracking-wide",
				g.Text("View Rules"),
			),
			ExternalLink(RegistrationFormURL, "px-8 py-3 bg-white text-black hover:bg-gray-200 transition-all duration-300 text-lg font-medium tracking-wide inline-block",
				g.Text("Register Now"),
			),
		),

		Div(
			Class("absolute left-1/2 -translate-x-1/2 bottom-8 opacity-0"),
			Animated(reg, section, animate.FadeIn),
			ScrollButton("about", "w-14 h-14 rounded-full flex items-center justify-center bg-white/5 border border-white/10 hover:bg-white/10 transition-shadow shadow-md",
				g.Attr("aria-label", "Scroll to About section"),
				strokeIcon("24", "down-arrow", "M12 5v14", "M19 12l-7 7-7-7"),
			),
		),
	)
}
