// Package roadmap builds day-by-day study plans from syllabus text and an
// exam date, and rates each plan's burnout risk.
package roadmap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/p-n-ai/edupilot/internal/platform/apperr"
)

// Request is the input for a single plan.
type Request struct {
	SyllabusText string `json:"syllabus_text"`
	ExamDate     string `json:"exam_date"`
	HoursPerDay  int    `json:"hours_per_day"`
}

// StudyPlan is a generated schedule with its assessment.
type StudyPlan struct {
	TotalDays       int           `json:"total_days"`
	TotalTopics     int           `json:"total_topics"`
	StudyPlan       []StudyDay    `json:"study_plan"`
	StrategyInsight string        `json:"strategy_insight"`
	BurnoutRisk     BurnoutRisk   `json:"burnout_risk"`
	MentorAdvice    string        `json:"mentor_advice"`
	TopicWeights    []TopicWeight `json:"topic_weights,omitempty"`
}

// GeneratorConfig holds dependencies for the plan generator.
type GeneratorConfig struct {
	Clock        Clock    // nil uses SystemClock
	HardKeywords []string // empty uses DefaultHardKeywords
}

// Generator produces study plans. It holds no mutable state and is safe for
// concurrent use.
type Generator struct {
	clock   Clock
	weigher *Weigher
}

// NewGenerator creates a plan generator.
func NewGenerator(cfg GeneratorConfig) *Generator {
	clock := cfg.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	return &Generator{
		clock:   clock,
		weigher: NewWeigher(cfg.HardKeywords),
	}
}

// Generate parses the syllabus, allocates topics up to the exam date and
// attaches strategy, risk and advice. It returns either a complete plan or
// an error, never both.
func (g *Generator) Generate(ctx context.Context, req Request) (plan *StudyPlan, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.HoursPerDay < 1 {
		return nil, apperr.Validation("hours_per_day", "must be at least 1, got %d", req.HoursPerDay)
	}

	defer func() {
		if r := recover(); r != nil {
			plan = nil
			err = &apperr.InternalError{Op: "generate study plan", Err: fmt.Errorf("%v", r)}
		}
	}()

	totalDays, err := DaysUntilExam(g.clock, req.ExamDate)
	if err != nil {
		return nil, err
	}

	topics := ParseSyllabus(req.SyllabusText)
	plan = Build(topics, totalDays, req.HoursPerDay)
	plan.TopicWeights = g.weigher.Weights(topics)

	slog.Debug("roadmap generated",
		"total_days", plan.TotalDays,
		"total_topics", plan.TotalTopics,
		"burnout_risk", plan.BurnoutRisk,
	)
	return plan, nil
}

// Build assembles a plan for already-parsed topics.
func Build(topics []string, totalDays, hoursPerDay int) *StudyPlan {
	days := Allocate(topics, totalDays)
	risk := AssessBurnoutRisk(totalDays, len(topics), days)

	return &StudyPlan{
		TotalDays:       totalDays,
		TotalTopics:     len(topics),
		StudyPlan:       days,
		StrategyInsight: StrategyInsight(totalDays, len(topics), hoursPerDay),
		BurnoutRisk:     risk,
		MentorAdvice:    MentorAdvice(risk),
	}
}
