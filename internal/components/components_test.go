package components

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	g "maragu.dev/gomponents"

	"github.com/Hari-prashath-123/art-finity/internal/animate"
	"github.com/Hari-prashath-123/art-finity/internal/registrations"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func parse(t *testing.T, n g.Node) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(render(t, n)))
	require.NoError(t, err)
	return doc
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// findAll returns every element under root for which match is true.
func findAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

func byID(root *html.Node, id string) *html.Node {
	nodes := findAll(root, func(n *html.Node) bool {
		v, ok := attr(n, "id")
		return ok && v == id
	})
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

func animatedUnder(root *html.Node) []*html.Node {
	return findAll(root, func(n *html.Node) bool {
		_, ok := attr(n, "data-animate")
		return ok
	})
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func TestAnimated_WritesVariantAtRenderTime(t *testing.T) {
	reg := animate.NewRegistry()
	node := g.El("div", Animated(reg, "events", animate.FadeIn))

	animate.AssignDirections(reg, animate.DefaultSectionOrder)

	assert.Equal(t, `<div data-animate-id="events-1" data-animate="animate-slide-right"></div>`, render(t, node))
}

func TestLandingPage_SectionDirections(t *testing.T) {
	page, _, assignments := BuildLandingPage(LandingPageConfig{})
	doc := parse(t, page)

	require.Len(t, assignments, len(animate.DefaultSectionOrder), "every ordered section is present")

	want := map[string]string{
		"about":    "animate-slide-left",
		"events":   "animate-slide-right",
		"sponsors": "animate-slide-left",
		"rules":    "animate-slide-right",
		"timeline": "animate-slide-left",
		"closing":  "animate-slide-right",
	}
	for section, variant := range want {
		t.Run(section, func(t *testing.T) {
			root := byID(doc, section)
			require.NotNil(t, root, "section %s rendered", section)

			nodes := animatedUnder(root)
			require.NotEmpty(t, nodes)
			for _, n := range nodes {
				id, _ := attr(n, "data-animate-id")
				got, _ := attr(n, "data-animate")
				assert.Equal(t, variant, got, "element %s", id)
			}
		})
	}
}

func TestLandingPage_UnorderedSectionsKeepMarkupVariants(t *testing.T) {
	page, _, _ := BuildLandingPage(LandingPageConfig{})
	doc := parse(t, page)

	heroSection := byID(doc, "hero")
	require.NotNil(t, heroSection)
	hero := animatedUnder(heroSection)
	require.Len(t, hero, 6)

	got := make([]string, 0, len(hero))
	for _, n := range hero {
		v, _ := attr(n, "data-animate")
		got = append(got, v)
	}
	assert.Equal(t, []string{
		"animate-reveal",
		"animate-fade-in",
		"animate-fade-in",
		"animate-fade-in",
		"animate-slide-up",
		"animate-fade-in",
	}, got)

	themes := animatedUnder(byID(doc, "themes"))
	require.Len(t, themes, 9)
	heading, _ := attr(themes[0], "data-animate")
	assert.Equal(t, "animate-slide-left", heading)
	for _, n := range themes[1:] {
		v, _ := attr(n, "data-animate")
		assert.Equal(t, "animate-fade-in", v)
	}
}

func TestLandingPage_CallToActionOutsideClosing(t *testing.T) {
	page, reg, assignments := BuildLandingPage(LandingPageConfig{})
	doc := parse(t, page)

	for _, a := range assignments {
		assert.NotEqual(t, "cta", a.Section)
	}
	require.NoError(t, animate.CheckPinned(reg, animate.DefaultSectionOrder))

	closing := byID(doc, "closing")
	require.NotNil(t, closing)
	for _, n := range animatedUnder(closing) {
		id, _ := attr(n, "data-animate-id")
		assert.NotEqual(t, "closing-cta", id, "call-to-action is not inside #closing")
	}

	cta := byID(doc, "cta")
	require.NotNil(t, cta)
	nodes := animatedUnder(cta)
	require.Len(t, nodes, 1)
	id, _ := attr(nodes[0], "data-animate-id")
	v, _ := attr(nodes[0], "data-animate")
	assert.Equal(t, "closing-cta", id)
	assert.Equal(t, "animate-reveal", v)

	links := findAll(nodes[0], func(n *html.Node) bool { return n.Data == "a" })
	require.Len(t, links, 1)
	href, _ := attr(links[0], "href")
	assert.Equal(t, CommunityChatURL, href)
}

func TestLandingPage_ManifestMatchesMarkup(t *testing.T) {
	page, reg, _ := BuildLandingPage(LandingPageConfig{
		PageConfig: PageConfig{Animation: animate.WatcherConfig{Threshold: 0.25, FadeClass: "animate-fade-in"}},
	})
	doc := parse(t, page)

	script := byID(doc, ManifestElementID)
	require.NotNil(t, script)
	typ, _ := attr(script, "type")
	assert.Equal(t, "application/json", typ)

	var m animate.Manifest
	require.NoError(t, json.Unmarshal([]byte(text(script)), &m))
	assert.Equal(t, 0.25, m.Threshold)
	assert.Equal(t, "animate-fade-in", m.FadeClass)
	require.Len(t, m.Elements, reg.Len())

	markup := map[string]string{}
	for _, n := range animatedUnder(doc) {
		id, _ := attr(n, "data-animate-id")
		v, _ := attr(n, "data-animate")
		markup[id] = v
	}
	assert.Len(t, markup, reg.Len(), "every registered element is in the markup once")
	for _, e := range m.Elements {
		assert.Equal(t, string(e.Variant), markup[string(e.ID)], "element %s", e.ID)
	}
}

func TestLandingPage_StaticContent(t *testing.T) {
	page, _, _ := BuildLandingPage(LandingPageConfig{PageConfig: PageConfig{Title: "Art Finity 2026"}})
	out := render(t, page)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Art Finity 2026</title>")
	assert.Contains(t, out, `href="`+RegistrationFormURL+`"`)
	assert.Contains(t, out, `href="`+CommunityChatURL+`"`)
	assert.Contains(t, out, `href="https://instagram.com/_agen_club"`)
	assert.Contains(t, out, `data-scroll-to="rules"`)
	assert.Contains(t, out, `src="/static/js/animate.js"`)
	assert.Contains(t, out, "Themes of ART-FINITY 2026")
	assert.NotContains(t, out, "Teams Registered", "widget hidden without a snapshot")
}

func TestLandingPage_RegistrationWidget(t *testing.T) {
	count := 12
	snap := registrations.Snapshot{State: registrations.StateLoaded, Count: &count}

	page, reg, _ := BuildLandingPage(LandingPageConfig{Registrations: &snap})
	doc := parse(t, page)

	widget := byID(doc, "registration-count")
	require.NotNil(t, widget)
	assert.Contains(t, text(widget), "12")
	assert.Contains(t, text(widget), "Teams Registered")

	// The widget wrapper belongs to about and is stamped with it.
	for _, el := range reg.Section("about") {
		assert.Equal(t, animate.SlideLeft, el.Variant)
	}
}

func TestRegistrationCount(t *testing.T) {
	three := 3
	tests := []struct {
		name      string
		snap      registrations.Snapshot
		wantCount string
		wantError bool
	}{
		{"loading", registrations.Snapshot{State: registrations.StateLoading}, "...", false},
		{"loaded", registrations.Snapshot{State: registrations.StateLoaded, Count: &three}, "3", false},
		{"error", registrations.Snapshot{State: registrations.StateError, Error: registrations.GenericErrorMessage}, "—", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parse(t, RegistrationCount(tt.snap))
			widget := byID(doc, "registration-count")
			require.NotNil(t, widget)

			state, _ := attr(widget, "data-state")
			assert.Equal(t, string(tt.snap.State), state)

			counts := findAll(widget, func(n *html.Node) bool {
				c, _ := attr(n, "class")
				return c == "text-2xl font-bold"
			})
			require.Len(t, counts, 1)
			assert.Equal(t, tt.wantCount, text(counts[0]))

			if tt.wantError {
				assert.Contains(t, text(widget), registrations.GenericErrorMessage)
			} else {
				assert.NotContains(t, text(widget), registrations.GenericErrorMessage)
			}
		})
	}
}
