package roadmap

import "strings"

// BurnoutRisk is a coarse category of schedule pressure.
type BurnoutRisk string

const (
	RiskLow    BurnoutRisk = "Low"
	RiskMedium BurnoutRisk = "Medium"
	RiskHigh   BurnoutRisk = "High"
)

const (
	// heavyDayTasks is the task count above which a single day is too heavy.
	heavyDayTasks = 3
	// maxComfortableDensity and moderateDensity bound topics per effective day.
	maxComfortableDensity = 3.0
	moderateDensity       = 2.0
)

// AssessBurnoutRisk rates a plan by topic density and revision coverage.
func AssessBurnoutRisk(totalDays, totalTopics int, plan []StudyDay) BurnoutRisk {
	effectiveDays := max(totalDays-revisionDays, 1)
	density := float64(totalTopics) / float64(effectiveDays)

	heavyDay := false
	revisionExists := false
	for _, d := range plan {
		if len(d.Tasks) > heavyDayTasks {
			heavyDay = true
		}
		for _, t := range d.Tasks {
			if strings.Contains(t, "Revision") || strings.Contains(t, "Mock") {
				revisionExists = true
			}
		}
	}

	switch {
	case density > maxComfortableDensity || heavyDay:
		return RiskHigh
	case !revisionExists:
		return RiskMedium
	case density >= moderateDensity && density <= maxComfortableDensity:
		return RiskMedium
	default:
		return RiskLow
	}
}
