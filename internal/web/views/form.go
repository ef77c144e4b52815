package views

import (
	"strconv"

	"github.com/GoSim-25-26J-441/student-performance-web/internal/prediction/domain"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Form field names. They match the JSON names sent to the model service.
const (
	FieldGradePeriod1    = "grade_period1"
	FieldGradePeriod2    = "grade_period2"
	FieldStudyTime       = "study_time"
	FieldAbsences        = "absences"
	FieldAge             = "age"
	FieldMotherEducation = "mother_education"
	FieldFatherEducation = "father_education"
	FieldInternet        = "internet"
	FieldHigher          = "higher"
	FieldPaid            = "paid"
)

// Notice is a transient notification shown as a toast.
type Notice struct {
	Message string
}

// FormState is everything the input page needs to render.
type FormState struct {
	Values      domain.Features
	Notice      *Notice
	FieldErrors map[string]string
}

func PredictionFormPage(state FormState) g.Node {
	v := state.Values

	return PageLayout(
		PageConfig{Title: "Student Information - Student Performance Predictor"},
		toast(state.Notice),
		Div(
			Class("narrow"),
			backHome(),
			card("form-card",
				Div(
					Class("form-head"),
					H1(g.Text("Student Information")),
					P(Class("muted"), g.Text("Please provide the following information to generate a performance prediction")),
				),

				g.El("form",
					ID("prediction-form"),
					Method("post"),
					Action("/predict"),
					Class("stack"),
					g.Attr("data-busy-label", "Predicting..."),

					numberField(state, FieldGradePeriod1, "Previous Grade (G1)", v.GradePeriod1,
						domain.GradeMin, domain.GradeMax, true, "Grade from previous period (0-20)"),
					numberField(state, FieldGradePeriod2, "Current Grade (G2)", v.GradePeriod2,
						domain.GradeMin, domain.GradeMax, true, "Current period grade (0-20)"),
					sliderField(state, FieldStudyTime, "Weekly Study Hours", v.StudyTime,
						domain.StudyTimeMin, domain.StudyTimeMax, "1: <2 hours, 2: 2-5 hours, 3: 5-10 hours, 4: >10 hours"),
					numberField(state, FieldAbsences, "Total Absences", v.Absences,
						domain.AbsencesMin, 0, false, "Number of school absences"),
					numberField(state, FieldAge, "Age", v.Age,
						domain.AgeMin, domain.AgeMax, true, "Student's age (15-22)"),
					sliderField(state, FieldMotherEducation, "Mother's Education Level", v.MotherEducation,
						domain.EducationMin, domain.EducationMax, "0: None, 1: Primary, 2: Middle, 3: Secondary, 4: Higher"),
					sliderField(state, FieldFatherEducation, "Father's Education Level", v.FatherEducation,
						domain.EducationMin, domain.EducationMax, "0: None, 1: Primary, 2: Middle, 3: Secondary, 4: Higher"),

					Div(
						Class("checkbox-group"),
						checkboxField(FieldInternet, "Has Internet Access at Home", v.Internet),
						checkboxField(FieldHigher, "Wants to Pursue Higher Education", v.Higher),
						checkboxField(FieldPaid, "Takes Paid Extra Classes", v.Paid),
					),

					Button(
						Type("submit"),
						ID("submit-prediction"),
						Class("btn btn-primary btn-block"),
						Span(Class("btn-label"), g.Text("Generate Prediction")),
					),
				),
			),
		),
	)
}

func inputID(name string) string {
	return name + "_input"
}

// numberField renders a bounded integer input. hasMax=false leaves the
// upper bound open.
func numberField(state FormState, name, label string, value, lo, hi int, hasMax bool, hint string) g.Node {
	return Div(
		Class("field"),
		g.El("label", g.Attr("for", inputID(name)), g.Text(label)),
		Input(
			ID(inputID(name)),
			Name(name),
			Type("number"),
			g.Attr("min", strconv.Itoa(lo)),
			g.If(hasMax, g.Attr("max", strconv.Itoa(hi))),
			g.Attr("step", "1"),
			Value(strconv.Itoa(value)),
			Required(),
		),
		P(Class("hint"), g.Text(hint)),
		fieldError(state, name),
	)
}

func sliderField(state FormState, name, label string, value, lo, hi int, hint string) g.Node {
	return Div(
		Class("field"),
		g.El("label",
			g.Attr("for", inputID(name)),
			g.Text(label+": "),
			Span(Class("slider-value"), g.Attr("data-value-for", inputID(name)), g.Text(strconv.Itoa(value))),
		),
		Input(
			ID(inputID(name)),
			Name(name),
			Type("range"),
			g.Attr("min", strconv.Itoa(lo)),
			g.Attr("max", strconv.Itoa(hi)),
			g.Attr("step", "1"),
			Value(strconv.Itoa(value)),
		),
		P(Class("hint"), g.Text(hint)),
		fieldError(state, name),
	)
}

func checkboxField(name, label string, checked bool) g.Node {
	return Div(
		Class("checkbox"),
		Input(
			ID(inputID(name)),
			Name(name),
			Type("checkbox"),
			Value("1"),
			g.If(checked, Checked()),
		),
		g.El("label", g.Attr("for", inputID(name)), g.Text(label)),
	)
}

func fieldError(state FormState, name string) g.Node {
	msg, ok := state.FieldErrors[name]
	if !ok {
		return nil
	}
	return P(Class("field-error"), g.Text(msg))
}

func toast(n *Notice) g.Node {
	if n == nil {
		return nil
	}
	return Div(
		Class("toast toast-error"),
		ID("toast"),
		g.Attr("role", "alert"),
		g.Attr("data-dismiss-after", "5000"),
		Icon(warningIcon, "icon-sm", ""),
		Span(g.Text(n.Message)),
	)
}
