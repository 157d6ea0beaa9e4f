package components

import (
	"io"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Hari-prashath-123/art-finity/internal/animate"
)

// Animated registers an element owned by section and returns the attributes
// that mark it. data-animate is written when the page renders, so it carries
// whatever variant the direction assigner stamped after construction.
func Animated(reg *animate.Registry, section string, v animate.Variant, opts ...animate.Option) g.Node {
	el := reg.Register(section, v, opts...)
	return g.Group{
		g.Attr("data-animate-id", string(el.ID)),
		variantAttr{el: el},
	}
}

type variantAttr struct {
	el *animate.Element
}

func (a variantAttr) Render(w io.Writer) error {
	// Variants are a closed set of class names; nothing to escape.
	_, err := io.WriteString(w, ` data-animate="`+a.el.Variant.String()+`"`)
	return err
}

func (a variantAttr) Type() g.NodeType {
	return g.AttributeType
}

// ScrollButton scrolls smoothly to the section with the given id.
func ScrollButton(target, class string, children ...g.Node) g.Node {
	return Button(
		Type("button"),
		Class(class),
		g.Attr("data-scroll-to", target),
		g.Group(children),
	)
}

// ExternalLink opens href in a new tab.
func ExternalLink(href, class string, children ...g.Node) g.Node {
	return A(
		Href(href),
		Target("_blank"),
		Rel("noopener noreferrer"),
		Class(class),
		g.Group(children),
	)
}

// LogosBar is the fixed club logo pair in the top right corner.
func LogosBar() g.Node {
	logo := func(src, alt string) g.Node {
		return Img(
			Src(src),
			Alt(alt),
			Class("w-16 h-16 md:w-20 md:h-20 rounded-full object-cover border border-white/10 shadow-lg"),
		)
	}

	return Div(
		Class("fixed top-4 right-4 z-50 flex items-center gap-3"),
		logo("/static/images/agen-club-logo.jpg", "Agen Club logo"),
		Span(
			Class("text-white/80 text-lg md:text-2xl font-semibold select-none"),
			g.Attr("aria-hidden", "true"),
			g.Text("×"),
		),
		logo("/static/images/art-nexus-logo.jpg", "Art Nexus logo"),
	)
}

func bullet(color, text string) g.Node {
	return Li(
		Class("flex items-start gap-2"),
		Span(Class(color+" mt-1"), g.Text("•")),
		Span(g.Text(text)),
	)
}

func svgIcon(size, viewBox string, attrs []g.Node, paths ...string) g.Node {
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("width", size),
		g.Attr("height", size),
		g.Attr("viewBox", viewBox),
		g.Group(attrs),
		g.Group(g.Map(paths, func(d string) g.Node {
			return g.El("path", g.Attr("d", d))
		})),
	)
}

func strokeIcon(size string, class string, paths ...string) g.Node {
	return svgIcon(size, "0 0 24 24", []g.Node{
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		Class(class),
		g.Attr("aria-hidden", "true"),
	}, paths...)
}

// ImageIcon and VideoIcon follow the lucide outlines.
func ImageIcon() g.Node {
	return strokeIcon("32", "",
		"M5 3h14a2 2 0 0 1 2 2v14a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V5a2 2 0 0 1 2-2z",
		"M9 11a2 2 0 1 0 0-4 2 2 0 0 0 0 4z",
		"m21 15-3.086-3.086a2 2 0 0 0-2.828 0L6 21",
	)
}

func VideoIcon() g.Node {
	return strokeIcon("32", "",
		"m16 13 5.223 3.482a.5.5 0 0 0 .777-.416V7.87a.5.5 0 0 0-.752-.432L16 10.5",
		"M4 6h10a2 2 0 0 1 2 2v8a2 2 0 0 1-2 2H4a2 2 0 0 1-2-2V8a2 2 0 0 1 2-2z",
	)
}

func InstagramIcon() g.Node {
	return strokeIcon("24", "w-6 h-6",
		"M7 2h10a5 5 0 0 1 5 5v10a5 5 0 0 1-5 5H7a5 5 0 0 1-5-5V7a5 5 0 0 1 5-5z",
		"M16 11.37A4 4 0 1 1 12.63 8 4 4 0 0 1 16 11.37z",
		"M17.5 6.5h.01",
	)
}
