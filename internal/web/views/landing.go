package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type feature struct {
	Icon  string
	Tone  string
	Title string
	Body  string
}

func LandingPage() g.Node {
	features := []feature{
		{"lucide:trending-up", "tone-primary", "Accurate Predictions", "Machine learning models trained on comprehensive student data for reliable forecasts"},
		{"lucide:bar-chart-3", "tone-secondary", "Detailed Analytics", "Comprehensive breakdown of factors influencing academic performance"},
		{"lucide:graduation-cap", "tone-accent", "Actionable Insights", "Personalized recommendations to help students reach their full potential"},
	}

	return PageLayout(
		PageConfig{Title: "Student Performance Predictor"},
		Div(
			Class("hero fade-in"),
			ID("landing"),
			Div(
				Class("hero-badge grad-primary-secondary"),
				Icon("lucide:graduation-cap", "icon-lg", "Graduation cap"),
			),
			H1(Class("hero-title gradient-text"), g.Text("Student Performance Predictor")),
			P(
				Class("hero-lead muted"),
				g.Text("Advanced AI-powered analytics to predict and improve student academic outcomes"),
			),
		),

		Div(
			Class("feature-grid fade-in"),
			g.Group(g.Map(features, func(f feature) g.Node {
				return card("feature-card",
					Div(Class("feature-icon "+f.Tone), Icon(f.Icon, "icon-md", "")),
					H3(g.Text(f.Title)),
					P(Class("muted small"), g.Text(f.Body)),
				)
			})),
		),

		card("cta-card fade-in",
			H2(g.Text("Ready to Predict Performance?")),
			P(
				Class("muted"),
				g.Text("Enter student information to receive an AI-powered performance prediction with detailed insights"),
			),
			A(
				Href("/predict"),
				Class("btn btn-primary btn-lg"),
				ID("start-prediction"),
				g.Text("Start Prediction"),
			),
		),
	)
}
