package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Hari-prashath-123/art-finity/internal/animate"
)

const sponsorLinkedInURL = "https://www.linkedin.com/in/isysway-technologies-b54603222?utm_source=share&utm_campaign=share_via&utm_content=profile&utm_medium=android_app"

func Sponsors(reg *animate.Registry) g.Node {
	const section = "sponsors"

	return Section(
		ID(section),
		Class("py-24 px-4 sponsors-section"),
		Div(
			Class("max-w-6xl mx-auto text-center"),
			H2(
				Class("text-4xl font-bold mb-4 opacity-0"),
				Animated(reg, section, animate.SlideLeft),
				g.Text("Sponsored by"),
			),
			Figure(
				Class("single-sponsor-card opacity-0 delay-200"),
				Animated(reg, section, animate.SlideLeft),
				Img(
					Src("/static/images/isysway-logo.jpg"),
					Alt("ISysWay Technologies"),
					Loading("lazy"),
					Class("sponsor-logo-single"),
				),
			),
			ExternalLink(sponsorLinkedInURL, "linkedin-link inline-block opacity-0 delay-300",
				Animated(reg, section, animate.SlideLeft),
				g.Attr("aria-label", "Visit ISysWay Technologies on LinkedIn"),
				svgIcon("42", "0 0 24 24", []g.Node{g.Attr("fill", "#0A66C2"), Class("linkedin-icon")},
					"M19 0h-14c-2.761 0-5 2.239-5 5v14c0 2.761 2.238 5 5 5h14c2.762 0 5-2.239 5-5v-14c0-2.761-2.238-5-5-5zm-11 19h-3v-11h3v11zm-1.5-12.268c-.966 0-1.75-.79-1.75-1.764s.784-1.764 1.75-1.764 1.75.79 1.75 1.764-.783 1.764-1.75 1.764zm13.5 12.268h-3v-5.604c0-3.368-4-3.113-4 0v5.604h-3v-11h3v1.765c1.396-2.586 7-2.777 7 2.476v6.759z",
				),
			),
		),
	)
}
