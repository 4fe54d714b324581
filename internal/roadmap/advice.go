package roadmap

import (
	"fmt"
	"strings"
)

type pacingBand int

const (
	pacingIntensive pacingBand = iota
	pacingSteady
	pacingSpaced
)

type hoursBand int

const (
	hoursModerate hoursBand = iota
	hoursExtended
	hoursLimited
)

const insightHeadline = "You have %d effective study days to cover %d topics."

var pacingAdvice = map[pacingBand]string{
	pacingIntensive: "With limited time, adopt an intensive multi-topic approach: " +
		"cover 2-3 related topics per session and prioritise high-weight areas.",
	pacingSpaced: "You have ample runway, so leverage spaced repetition with alternating " +
		"study and practice cycles to maximise long-term retention.",
	pacingSteady: "Your schedule is well-balanced. Maintain a steady one-topic-per-day pace " +
		"and use buffer days for catch-up or deeper practice.",
}

var hoursAdvice = map[hoursBand]string{
	hoursExtended: "With extended daily hours, structure sessions into 90-minute deep-work blocks " +
		"separated by short breaks to sustain focus and avoid burnout.",
	hoursLimited: "Given limited daily hours, use focused priority scheduling and tackle your " +
		"weakest topics first when energy is highest.",
}

var mentorAdvice = map[BurnoutRisk]string{
	RiskHigh: "Your schedule is highly compressed and may lead to fatigue. " +
		"Consider increasing daily study hours or extending your timeline " +
		"to maintain retention and avoid burnout.",
	RiskMedium: "Your plan is achievable but moderately intensive. Stay consistent, " +
		"protect revision time, and monitor your energy levels.",
	RiskLow: "Your plan is well balanced with healthy spacing and revision blocks. " +
		"Maintain consistency and focus on reinforcing weak topics.",
}

func pacingFor(totalDays, totalTopics int) pacingBand {
	switch {
	case totalDays < totalTopics:
		return pacingIntensive
	case totalDays > 2*totalTopics:
		return pacingSpaced
	default:
		return pacingSteady
	}
}

func hoursFor(hoursPerDay int) hoursBand {
	switch {
	case hoursPerDay >= 5:
		return hoursExtended
	case hoursPerDay <= 2:
		return hoursLimited
	default:
		return hoursModerate
	}
}

// StrategyInsight summarizes the pacing a plan calls for.
func StrategyInsight(totalDays, totalTopics, hoursPerDay int) string {
	parts := []string{
		fmt.Sprintf(insightHeadline, max(totalDays-revisionDays, 1), totalTopics),
		pacingAdvice[pacingFor(totalDays, totalTopics)],
	}
	if clause, ok := hoursAdvice[hoursFor(hoursPerDay)]; ok {
		parts = append(parts, clause)
	}
	return strings.Join(parts, " ")
}

// MentorAdvice returns guidance for a burnout risk level. Unknown levels get
// the Medium guidance.
func MentorAdvice(risk BurnoutRisk) string {
	if advice, ok := mentorAdvice[risk]; ok {
		return advice
	}
	return mentorAdvice[RiskMedium]
}
