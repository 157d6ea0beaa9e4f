package components

import (
	"io"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Hari-prashath-123/art-finity/internal/animate"
)

// ManifestElementID is the id of the script element holding the animation
// manifest. static/js/animate.js reads it by this id.
const ManifestElementID = "animation-manifest"

type PageConfig struct {
	Title       string
	Description string
	Animation   animate.WatcherConfig
}

func Layout(config PageConfig, reg *animate.Registry, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Art Finity"
	}

	if config.Description == "" {
		config.Description = "Art Finity Event - Image & Video Generation"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Class("scroll-smooth"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Link(Rel("icon"), Href("/static/images/art-finity-logo.png")),
				Link(Rel("apple-touch-icon"), Href("/static/images/art-finity-logo.png")),

				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				Class("bg-black text-white antialiased"),
				g.Group(content),

				AnimationManifest(reg, config.Animation),
				Script(Type("module"), Src("/static/js/animate.js")),
				Script(Type("module"), Src("/static/js/scroll.js")),
			),
		),
	})
}

// AnimationManifest embeds the registry as JSON for the browser adapter. It
// is encoded at render time, after directions have been assigned.
func AnimationManifest(reg *animate.Registry, cfg animate.WatcherConfig) g.Node {
	return Script(
		Type("application/json"),
		ID(ManifestElementID),
		g.NodeFunc(func(w io.Writer) error {
			b, err := reg.Manifest(cfg).JSON()
			if err != nil {
				return err
			}
			_, err = w.Write(b)
			return err
		}),
	)
}
