package views

import (
	"github.com/GoSim-25-26J-441/student-performance-web/internal/prediction/domain"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func ResultsPage(result *domain.PredictionResult) g.Node {
	theme := ThemeFor(result.Category)

	return PageLayout(
		PageConfig{Title: "Prediction Results - Student Performance Predictor"},
		Div(
			Class("narrow"),
			backHome(),
			Div(
				Class("stack fade-in"),

				Div(
					Class("card category-card "+theme.Gradient),
					g.Attr("data-theme", theme.Name),
					Div(Class("category-icon"), Icon(theme.Icon, "icon-xl", result.Category)),
					H2(Class("eyebrow"), g.Text("Performance Category")),
					H1(ID("result-category"), Class("category-name"), g.Text(result.Category)),
					P(Class("subtle"), g.Text("Based on comprehensive analysis")),
				),

				card("score-card",
					H3(Class("eyebrow muted"), g.Text("Predicted Final Score")),
					Div(ID("result-score"), Class("score gradient-text"), g.Text(FormatScore(result.PredictedScore))),
					Div(
						Class("bar"),
						Div(
							ID("result-bar"),
							Class("bar-fill grad-primary-secondary"),
							g.Attr("style", "width: "+FillWidth(result.PredictedScore)),
						),
					),
				),

				card("detail-card",
					H3(g.Text("Detailed Analysis")),
					Div(ID("result-detail"), Class("detail muted"), g.Text(result.Detail)),
				),

				Div(
					Class("actions"),
					A(Href("/predict"), ID("new-prediction"), Class("btn btn-primary"), g.Text("New Prediction")),
					A(Href("/"), ID("return-home"), Class("btn btn-outline"), g.Text("Return Home")),
				),
			),
		),
	)
}
