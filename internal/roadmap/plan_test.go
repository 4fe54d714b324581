package roadmap_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/p-n-ai/edupilot/internal/platform/apperr"
	"github.com/p-n-ai/edupilot/internal/roadmap"
)

var testToday = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

func newTestGenerator() *roadmap.Generator {
	return roadmap.NewGenerator(roadmap.GeneratorConfig{
		Clock: roadmap.FixedClock(testToday),
	})
}

func TestGenerator_Generate(t *testing.T) {
	g := newTestGenerator()

	plan, err := g.Generate(context.Background(), roadmap.Request{
		SyllabusText: "Unit 1: Arrays, Linked Lists, Stacks Unit 2: Trees, Graphs",
		ExamDate:     "2026-10-28",
		HoursPerDay:  4,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if plan.TotalDays != 10 {
		t.Errorf("TotalDays = %d, want 10", plan.TotalDays)
	}
	if plan.TotalTopics != 5 {
		t.Errorf("TotalTopics = %d, want 5", plan.TotalTopics)
	}

	want := []roadmap.StudyDay{
		{Day: 1, Tasks: []string{"Arrays"}},
		{Day: 2, Tasks: []string{"Linked Lists"}},
		{Day: 3, Tasks: []string{"Stacks"}},
		{Day: 4, Tasks: []string{"Trees"}},
		{Day: 5, Tasks: []string{"Graphs"}},
		{Day: 6, Tasks: []string{"Practice Problems"}},
		{Day: 7, Tasks: []string{"Reinforce Weak Topics"}},
		{Day: 8, Tasks: []string{"Timed Quiz Session"}},
		{Day: 9, Tasks: []string{"Weak Topic Revision"}},
		{Day: 10, Tasks: []string{"Full Revision", "Mock Test"}},
	}
	if diff := cmp.Diff(want, plan.StudyPlan); diff != "" {
		t.Errorf("StudyPlan mismatch (-want +got):\n%s", diff)
	}

	if plan.BurnoutRisk != roadmap.RiskLow {
		t.Errorf("BurnoutRisk = %s, want Low", plan.BurnoutRisk)
	}
	if plan.MentorAdvice != roadmap.MentorAdvice(roadmap.RiskLow) {
		t.Errorf("MentorAdvice = %q, want Low advice", plan.MentorAdvice)
	}
	if !strings.HasPrefix(plan.StrategyInsight, "You have 8 effective study days to cover 5 topics.") {
		t.Errorf("StrategyInsight = %q", plan.StrategyInsight)
	}
	if len(plan.TopicWeights) != 5 || plan.TopicWeights[1] != (roadmap.TopicWeight{Topic: "Linked Lists", Weight: 1}) {
		t.Errorf("TopicWeights = %v", plan.TopicWeights)
	}
}

func TestGenerator_Generate_FastPath(t *testing.T) {
	g := newTestGenerator()

	plan, err := g.Generate(context.Background(), roadmap.Request{
		SyllabusText: "Paging, Segmentation, Deadlocks, Semaphores, Monitors",
		ExamDate:     "2026-10-20",
		HoursPerDay:  8,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want := []roadmap.StudyDay{
		{Day: 1, Tasks: []string{"Paging", "Segmentation", "Deadlocks", "Semaphores", "Monitors"}},
		{Day: 2, Tasks: []string{"Full Revision"}},
	}
	if diff := cmp.Diff(want, plan.StudyPlan); diff != "" {
		t.Errorf("StudyPlan mismatch (-want +got):\n%s", diff)
	}
	if plan.BurnoutRisk != roadmap.RiskHigh {
		t.Errorf("BurnoutRisk = %s, want High", plan.BurnoutRisk)
	}
	if plan.TopicWeights[2].Weight != 2 {
		t.Errorf("Deadlocks weight = %d, want 2", plan.TopicWeights[2].Weight)
	}
}

func TestGenerator_Generate_Errors(t *testing.T) {
	g := newTestGenerator()

	tests := []struct {
		name  string
		req   roadmap.Request
		field string
	}{
		{
			name:  "malformed exam date",
			req:   roadmap.Request{SyllabusText: "Arrays", ExamDate: "28/10/2026", HoursPerDay: 3},
			field: "exam_date",
		},
		{
			name:  "zero hours",
			req:   roadmap.Request{SyllabusText: "Arrays", ExamDate: "2026-10-28", HoursPerDay: 0},
			field: "hours_per_day",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := g.Generate(context.Background(), tt.req)
			if err == nil {
				t.Fatal("Generate() should fail")
			}
			if plan != nil {
				t.Error("Generate() returned a partial plan")
			}
			var ve *apperr.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error = %v, want ValidationError", err)
			}
			if ve.Field != tt.field {
				t.Errorf("Field = %q, want %q", ve.Field, tt.field)
			}
		})
	}
}

func TestGenerator_Generate_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestGenerator().Generate(ctx, roadmap.Request{ExamDate: "2026-10-28", HoursPerDay: 2})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestGenerator_Generate_Idempotent(t *testing.T) {
	g := newTestGenerator()
	req := roadmap.Request{
		SyllabusText: "Unit 1: Normalization, Transactions Unit 2: Concurrency Control, Recovery",
		ExamDate:     "2026-11-30",
		HoursPerDay:  2,
	}

	first, err := g.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	second, err := g.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated Generate() differs (-first +second):\n%s", diff)
	}
}

func TestBuild_EmptySyllabus(t *testing.T) {
	plan := roadmap.Build(nil, 5, 3)

	if plan.TotalTopics != 0 {
		t.Errorf("TotalTopics = %d, want 0", plan.TotalTopics)
	}
	if len(plan.StudyPlan) != 5 {
		t.Errorf("len(StudyPlan) = %d, want 5", len(plan.StudyPlan))
	}
	if plan.BurnoutRisk != roadmap.RiskLow {
		t.Errorf("BurnoutRisk = %s, want Low", plan.BurnoutRisk)
	}
}
