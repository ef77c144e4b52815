package domain

// PredictionRequest is the 41-field feature vector the external model
// expects. Field order follows the model's training columns.
type PredictionRequest struct {
	Gender                 int `json:"gender"`
	Age                    int `json:"age"`
	HomeLocation           int `json:"home_location"`
	FamilySize             int `json:"family_size"`
	ParentStatus           int `json:"parent_status"`
	MotherEducation        int `json:"mother_education"`
	FatherEducation        int `json:"father_education"`
	TravelTime             int `json:"travel_time"`
	StudyTime              int `json:"study_time"`
	PastFailures           int `json:"past_failures"`
	SchoolSupport          int `json:"schoolsup"`
	FamilySupport          int `json:"famsup"`
	Paid                   int `json:"paid"`
	Activities             int `json:"activities"`
	Nursery                int `json:"nursery"`
	Higher                 int `json:"higher"`
	Internet               int `json:"internet"`
	Romantic               int `json:"romantic"`
	FamilyRelationship     int `json:"family_relationship"`
	FreeTime               int `json:"free_time"`
	SocialOuting           int `json:"social_outing"`
	WeekdayAlcohol         int `json:"weekday_alcohol"`
	WeekendAlcohol         int `json:"weekend_alcohol"`
	HealthStatus           int `json:"health_status"`
	Absences               int `json:"absences"`
	GradePeriod1           int `json:"grade_period1"`
	GradePeriod2           int `json:"grade_period2"`
	SchoolNameMS           int `json:"school_name_MS"`
	MotherJobHealth        int `json:"mother_job_health"`
	MotherJobOther         int `json:"mother_job_other"`
	MotherJobServices      int `json:"mother_job_services"`
	MotherJobTeacher       int `json:"mother_job_teacher"`
	FatherJobHealth        int `json:"father_job_health"`
	FatherJobOther         int `json:"father_job_other"`
	FatherJobServices      int `json:"father_job_services"`
	FatherJobTeacher       int `json:"father_job_teacher"`
	SchoolReasonHome       int `json:"school_reason_home"`
	SchoolReasonOther      int `json:"school_reason_other"`
	SchoolReasonReputation int `json:"school_reason_reputation"`
	PrimaryGuardianMother  int `json:"primary_guardian_mother"`
	PrimaryGuardianOther   int `json:"primary_guardian_other"`
}

// FieldCount is the number of positions in the model's input vector.
const FieldCount = 41

var fixedFieldNames = []string{
	"gender",
	"home_location",
	"family_size",
	"parent_status",
	"travel_time",
	"past_failures",
	"schoolsup",
	"famsup",
	"activities",
	"nursery",
	"romantic",
	"family_relationship",
	"free_time",
	"social_outing",
	"weekday_alcohol",
	"weekend_alcohol",
	"health_status",
	"school_name_MS",
	"mother_job_health",
	"mother_job_other",
	"mother_job_services",
	"mother_job_teacher",
	"father_job_health",
	"father_job_other",
	"father_job_services",
	"father_job_teacher",
	"school_reason_home",
	"school_reason_other",
	"school_reason_reputation",
	"primary_guardian_mother",
	"primary_guardian_other",
}

// FixedFieldNames lists the request fields that have no form control and
// are always sent as zero.
func FixedFieldNames() []string {
	out := make([]string, len(fixedFieldNames))
	copy(out, fixedFieldNames)
	return out
}

// BuildRequest merges the live form values into a zeroed request.
func BuildRequest(f Features) PredictionRequest {
	return PredictionRequest{
		GradePeriod1:    f.GradePeriod1,
		GradePeriod2:    f.GradePeriod2,
		StudyTime:       f.StudyTime,
		Absences:        f.Absences,
		Age:             f.Age,
		MotherEducation: f.MotherEducation,
		FatherEducation: f.FatherEducation,
		Internet:        boolToInt(f.Internet),
		Higher:          boolToInt(f.Higher),
		Paid:            boolToInt(f.Paid),
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
