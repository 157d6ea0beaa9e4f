package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Hari-prashath-123/art-finity/internal/animate"
)

type TimeSlot struct {
	Icon  string
	Time  string
	Title g.Node
	Notes []g.Node
}

var schedule = []TimeSlot{
	{Icon: "🕘", Time: "9:00 AM", Title: g.Text("Event begins")},
	{
		Icon:  "📝",
		Time:  "9:00 – 10:00 AM",
		Title: g.Text("Registration & Introduction"),
		Notes: []g.Node{g.Text("• Please arrive on time for check-in.")},
	},
	{
		Icon:  "🧪",
		Time:  "10:00 AM – 12:00 PM",
		Title: Strong(g.Text("1st Round")),
		Notes: []g.Node{
			g.Text("• Venue: 2nd Floor, Lab, Circuit Block"),
			g.Group{g.Text("• "), Strong(g.Text("10:45 – 11:00 AM")), g.Text(" - Short break (refreshments provided)")},
		},
	},
	{
		Icon:  "🍽️",
		Time:  "12:00 – 1:00 PM",
		Title: g.Text("Lunch break"),
		Notes: []g.Node{g.Group{g.Text("• Note: Lunch will "), Strong(g.Text("not")), g.Text(" be provided")}},
	},
	{Icon: "🎬", Time: "1:00 – 3:00 PM", Title: g.Text("Video Generation Round")},
	{Icon: "🗣️", Time: "3:00 – 4:00 PM", Title: g.Text("Explanation Round")},
	{Icon: "🏆", Time: "After 4:00 PM", Title: g.Text("Prize distribution")},
}

func Timeline(reg *animate.Registry) g.Node {
	const section = "timeline"

	return Section(
		ID(section),
		Class("py-24 px-4 bg-white/5"),
		Div(
			Class("max-w-4xl mx-auto opacity-0"),
			Animated(reg, section, animate.SlideRight),
			H2(Class("text-4xl font-bold mb-12 text-center"), g.Text("Event Timeline")),
			Ol(
				Class("timeline-list space-y-6"),
				g.Group(g.Map(schedule, timelineSlot)),
			),
		),
	)
}

func timelineSlot(s TimeSlot) g.Node {
	titleClass := "text-gray-300"
	if len(s.Notes) > 0 {
		titleClass = "text-gray-300 font-semibold mb-2"
	}

	return Li(
		Class("flex gap-4"),
		Div(Class("text-2xl min-w-fit"), g.Attr("aria-hidden", "true"), g.Text(s.Icon)),
		Div(
			Class("pb-6"),
			P(Class("text-xl font-bold"), g.Text(s.Time)),
			P(Class(titleClass), s.Title),
			g.Group(g.Map(s.Notes, func(n g.Node) g.Node {
				return P(Class("text-gray-400 text-sm"), n)
			})),
		),
	)
}
