package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Icon renders an iconify glyph such as "lucide:award".
func Icon(name, class, ariaLabel string) g.Node {
	if ariaLabel != "" {
		return Span(
			Class("iconify "+class),
			g.Attr("data-icon", name),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class("iconify "+class),
		g.Attr("data-icon", name),
		g.Attr("aria-hidden", "true"),
	)
}

func backHome() g.Node {
	return A(
		Href("/"),
		Class("btn btn-ghost back-link"),
		Icon("lucide:arrow-left", "icon-sm", ""),
		g.Text("Back to Home"),
	)
}

func card(class string, children ...g.Node) g.Node {
	return Div(
		Class("card "+class),
		g.Group(children),
	)
}
