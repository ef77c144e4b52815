package http

import (
	"strconv"
	"strings"

	"github.com/GoSim-25-26J-441/student-performance-web/internal/prediction/domain"
	"github.com/GoSim-25-26J-441/student-performance-web/internal/web/views"
	"github.com/gin-gonic/gin"
)

// parseFeatures reads the posted form. Unparseable numbers keep their
// default and are reported per field.
func parseFeatures(c *gin.Context) (domain.Features, map[string]string) {
	f := domain.DefaultFeatures()
	fieldErrors := map[string]string{}

	intField := func(name string, dst *int) {
		raw := strings.TrimSpace(c.PostForm(name))
		if raw == "" {
			fieldErrors[name] = "is required"
			return
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			fieldErrors[name] = "must be a whole number"
			return
		}
		*dst = v
	}

	intField(views.FieldGradePeriod1, &f.GradePeriod1)
	intField(views.FieldGradePeriod2, &f.GradePeriod2)
	intField(views.FieldStudyTime, &f.StudyTime)
	intField(views.FieldAbsences, &f.Absences)
	intField(views.FieldAge, &f.Age)
	intField(views.FieldMotherEducation, &f.MotherEducation)
	intField(views.FieldFatherEducation, &f.FatherEducation)

	// Unchecked boxes are not posted at all.
	f.Internet = checked(c, views.FieldInternet)
	f.Higher = checked(c, views.FieldHigher)
	f.Paid = checked(c, views.FieldPaid)

	return f, fieldErrors
}

func checked(c *gin.Context, name string) bool {
	switch strings.ToLower(strings.TrimSpace(c.PostForm(name))) {
	case "1", "on", "true", "yes":
		return true
	default:
		return false
	}
}
