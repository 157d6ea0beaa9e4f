package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type Contact struct {
	Email string
	Phone string
}

var contacts = []Contact{
	{"hariprasath.ad23@krct.ac.in", "+91 99442 27061"},
	{"Omprakash.ad23@krct.ac.in", "+91 877 869 9252"},
}

type SocialLink struct {
	Handle string
	URL    string
}

var socials = []SocialLink{
	{"@_agen_club", "https://instagram.com/_agen_club"},
	{"@art_nexus_club", "https://www.instagram.com/art_nexus_club?utm_source=ig_web_button_share_sheet&igsh=ZDNlZDc0MzIxNw=="},
}

func PageFooter() g.Node {
	return Footer(
		ID("contact"),
		Class("py-12 border-t border-white/10 bg-black"),
		Div(
			Class("container mx-auto px-4"),
			Div(
				Class("grid md:grid-cols-2 gap-8 mb-12"),

				Div(
					H3(Class("text-2xl font-bold mb-4"), g.Text("Contact Us")),
					Div(
						Class("space-y-2 text-gray-400"),
						g.Group(g.Map(contacts, func(c Contact) g.Node {
							return g.Group{
								P(g.Text("Email: "), A(Href("mailto:"+c.Email), g.Text(c.Email))),
								P(g.Text("Phone: "+c.Phone)),
							}
						})),
					),
				),

				Div(
					Class("flex flex-col md:items-end"),
					H3(Class("text-2xl font-bold mb-4"), g.Text("Follow Us")),
					g.Group(g.Map(socials, func(s SocialLink) g.Node {
						return ExternalLink(s.URL, "flex items-center text-xl hover:text-purple-400 transition-colors mb-4 leading-4 gap-2 text-center underline",
							InstagramIcon(),
							Span(g.Text(s.Handle)),
						)
					})),
				),
			),
			Div(
				Class("text-center text-gray-500 text-sm pt-8 border-t border-white/5"),
				P(g.Text("© Art Finity. All Rights Reserved.")),
			),
		),
	)
}
