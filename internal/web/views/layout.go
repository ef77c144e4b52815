package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
}

func PageLayout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Student Performance Predictor"
	}

	if config.Description == "" {
		config.Description = "Predict final student grades from academic and demographic attributes."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Link(Rel("stylesheet"), Href("/static/styles.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("page"),
				Div(
					Class("container"),
					g.Group(content),
				),

				Script(Src("/static/js/app.js")),
			),
		),
	})
}
