package views

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/GoSim-25-26J-441/student-performance-web/internal/prediction/domain"
)

// Theme is the look of the category card on the results page.
type Theme struct {
	Name     string
	Gradient string
	Icon     string
}

var (
	themeExcellent    = Theme{Name: "excellent", Gradient: "grad-secondary-accent", Icon: "lucide:award"}
	themeGood         = Theme{Name: "good", Gradient: "grad-primary-secondary", Icon: "lucide:trending-up"}
	themeSatisfactory = Theme{Name: "satisfactory", Gradient: "grad-accent-primary", Icon: warningIcon}
	themeFallback     = Theme{Name: "neutral", Gradient: "grad-muted", Icon: warningIcon}
)

const warningIcon = "lucide:alert-circle"

// ThemeFor maps a category to its theme. Matching ignores case only, so
// padded or unrecognised categories get the neutral theme.
func ThemeFor(category string) Theme {
	switch strings.ToLower(category) {
	case "excellent":
		return themeExcellent
	case "good":
		return themeGood
	case "satisfactory":
		return themeSatisfactory
	default:
		return themeFallback
	}
}

// FormatScore renders a score out of the model's maximum, e.g. "15.50/20".
func FormatScore(score float64) string {
	return fmt.Sprintf("%.2f/%s", score, strconv.FormatFloat(domain.MaxPredictedScore, 'f', -1, 64))
}

// FillPercent is the share of the maximum score, clamped to 0..100.
func FillPercent(score float64) float64 {
	p := score * 100 / domain.MaxPredictedScore
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// FillWidth renders FillPercent as a CSS width, rounded to two decimals.
func FillWidth(score float64) string {
	p := math.Round(FillPercent(score)*100) / 100
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}
