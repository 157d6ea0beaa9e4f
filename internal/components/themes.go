package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Hari-prashath-123/art-finity/internal/animate"
)

type Theme struct {
	Title string
	Body  string
}

var themes = []Theme{
	{"Safe and Trusted AI", "Exploring the ethical, responsible, and transparent use of Artificial Intelligence in creative applications. This theme emphasizes bias awareness, content authenticity, and responsible deployment of AI-generated media."},
	{"Human Capital for an AI-Ready Workforce", "Empowering students with practical exposure to AI-driven creative tools such as generative models, prompt engineering, and AI-assisted design, thereby preparing them for emerging careers in AI and digital innovation."},
	{"Science and AI-Enabled Research & Development", "Encouraging experimental and research-oriented approaches in AI-based art and media generation, fostering innovation through the application of machine learning models in creative problem-solving."},
	{"Resilience, Innovation & Efficiency", "Highlighting how AI enhances creative workflows by improving efficiency, adaptability, and innovation in digital content creation and design processes."},
	{"Inclusion and Social Empowerment", "Demonstrating the role of AI in promoting inclusive creativity, accessibility, and social awareness through digital art, storytelling, and media that address societal challenges."},
	{"Democratizing AI Resources", "Promoting awareness and usage of open-source, low-code, and no-code AI platforms, making AI tools accessible to students from diverse academic and socio-economic backgrounds."},
	{"Economic Growth and Social Good", "Showcasing AI-driven creative solutions that support entrepreneurship, digital economy growth, and socially impactful innovation."},
	{"Creative AI in Gaming, Fantasy & Original Storytelling", "Focusing on the application of Artificial Intelligence in game design, fantasy world-building, character creation, and original storytelling. This theme encourages participants to leverage AI for interactive narratives, virtual environments, concept art, and imaginative content, fostering originality, innovation, and next-generation creative experiences."},
}

// Themes sits outside the alternating order, so its heading keeps
// slide-left and each theme fades in.
func Themes(reg *animate.Registry) g.Node {
	const section = "themes"

	items := make([]g.Node, 0, len(themes))
	for i, t := range themes {
		items = append(items, Div(
			Class("opacity-0"),
			Animated(reg, section, animate.FadeIn),
			H3(Class("text-xl font-semibold mb-2"), g.Text(fmt.Sprintf("%d. %s", i+1, t.Title))),
			P(g.Text(t.Body)),
		))
	}

	return Section(
		ID(section),
		Class("py-24 px-4 bg-black/5"),
		Div(
			Class("max-w-6xl mx-auto"),
			H2(
				Class("text-4xl font-bold mb-8 text-center opacity-0"),
				Animated(reg, section, animate.SlideLeft),
				g.Text("Themes of ART-FINITY 2026 – AI × Creativity × Innovation"),
			),
			Div(
				Class("space-y-8 text-lg text-gray-300 mt-8"),
				g.Group(items),
			),
		),
	)
}
