package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/p-n-ai/edupilot/internal/curriculum"
	"github.com/p-n-ai/edupilot/internal/export"
	"github.com/p-n-ai/edupilot/internal/roadmap"
)

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a day-by-day study plan",
		Long: `Generate a study plan from syllabus text or a named preset.

Examples:
  edupilot plan --syllabus "Unit 1: Arrays, Trees Unit 2: Graphs" --exam-date 2026-11-30 --hours 3
  edupilot plan --syllabus-id cs-core --exam-date 2026-11-30 --hours 2 --xlsx plan.xlsx`,
		RunE: runPlan,
	}

	cmd.Flags().String("syllabus", "", "Syllabus text, e.g. \"Unit 1: Arrays, Trees\"")
	cmd.Flags().String("syllabus-id", "", "Preset syllabus ID (see 'edupilot syllabi')")
	cmd.Flags().String("exam-date", "", "Exam date (YYYY-MM-DD)")
	cmd.Flags().Int("hours", 2, "Study hours per day")
	cmd.Flags().String("today", "", "Plan as if today were this date (YYYY-MM-DD)")
	cmd.Flags().String("xlsx", "", "Also write the plan to this workbook path")
	addPresetsFlag(cmd)

	cmd.MarkFlagRequired("exam-date")
	cmd.MarkFlagsMutuallyExclusive("syllabus", "syllabus-id")
	cmd.MarkFlagsOneRequired("syllabus", "syllabus-id")
	return cmd
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	text, _ := cmd.Flags().GetString("syllabus")
	if id, _ := cmd.Flags().GetString("syllabus-id"); id != "" {
		loader, err := curriculum.NewLoader(presetsDir(cmd, cfg))
		if err != nil {
			return fmt.Errorf("load presets: %w", err)
		}
		syl, ok := loader.Get(id)
		if !ok {
			return fmt.Errorf("no syllabus preset %q", id)
		}
		text = syl.Text()
	}

	var clock roadmap.Clock = roadmap.SystemClock{}
	if today, _ := cmd.Flags().GetString("today"); today != "" {
		t, err := time.Parse(roadmap.DateLayout, today)
		if err != nil {
			return fmt.Errorf("--today must be YYYY-MM-DD: %w", err)
		}
		clock = roadmap.FixedClock(t)
	}

	examDate, _ := cmd.Flags().GetString("exam-date")
	hours, _ := cmd.Flags().GetInt("hours")

	gen := roadmap.NewGenerator(roadmap.GeneratorConfig{
		Clock:        clock,
		HardKeywords: cfg.Planner.HardKeywords,
	})
	plan, err := gen.Generate(cmd.Context(), roadmap.Request{
		SyllabusText: text,
		ExamDate:     examDate,
		HoursPerDay:  hours,
	})
	if err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("xlsx"); path != "" {
		if err := writeWorkbook(path, plan); err != nil {
			return err
		}
	}
	return printJSON(cmd.OutOrStdout(), plan)
}

func writeWorkbook(path string, plan *roadmap.StudyPlan) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create workbook: %w", err)
	}
	if err := export.WritePlan(f, plan); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
