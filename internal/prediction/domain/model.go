package domain

import "time"

// Inclusive bounds for the live form fields.
const (
	GradeMin          = 0
	GradeMax          = 20
	StudyTimeMin      = 1
	StudyTimeMax      = 4
	AgeMin            = 15
	AgeMax            = 22
	EducationMin      = 0
	EducationMax      = 4
	AbsencesMin       = 0
	MaxPredictedScore = 20.0
)

// Features holds the ten values the user controls on the input form.
type Features struct {
	GradePeriod1    int  `json:"grade_period1"`
	GradePeriod2    int  `json:"grade_period2"`
	StudyTime       int  `json:"study_time"`
	Absences        int  `json:"absences"`
	Age             int  `json:"age"`
	MotherEducation int  `json:"mother_education"`
	FatherEducation int  `json:"father_education"`
	Internet        bool `json:"internet"`
	Higher          bool `json:"higher"`
	Paid            bool `json:"paid"`
}

// DefaultFeatures returns the values the form starts with.
func DefaultFeatures() Features {
	return Features{
		GradePeriod1:    10,
		GradePeriod2:    10,
		StudyTime:       2,
		Absences:        0,
		Age:             17,
		MotherEducation: 2,
		FatherEducation: 2,
		Internet:        true,
		Higher:          true,
		Paid:            false,
	}
}

// Validate checks every field against its inclusive range.
func (f Features) Validate() error {
	verr := &ValidationError{}

	checkRange(verr, "grade_period1", f.GradePeriod1, GradeMin, GradeMax)
	checkRange(verr, "grade_period2", f.GradePeriod2, GradeMin, GradeMax)
	checkRange(verr, "study_time", f.StudyTime, StudyTimeMin, StudyTimeMax)
	if f.Absences < AbsencesMin {
		verr.add("absences", "must be at least %d", AbsencesMin)
	}
	checkRange(verr, "age", f.Age, AgeMin, AgeMax)
	checkRange(verr, "mother_education", f.MotherEducation, EducationMin, EducationMax)
	checkRange(verr, "father_education", f.FatherEducation, EducationMin, EducationMax)

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

func checkRange(verr *ValidationError, field string, v, lo, hi int) {
	if v < lo || v > hi {
		verr.add(field, "must be between %d and %d", lo, hi)
	}
}

// LoggedPrediction is one row of the prediction log.
type LoggedPrediction struct {
	ID              int64     `json:"id"`
	GradePeriod1    float64   `json:"grade_period1"`
	GradePeriod2    float64   `json:"grade_period2"`
	StudyTime       float64   `json:"study_time"`
	Absences        float64   `json:"absences"`
	PredictionScore float64   `json:"prediction_score"`
	Category        string    `json:"category"`
	Timestamp       time.Time `json:"timestamp"`
}
