// Package export renders study plans as spreadsheet workbooks.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/p-n-ai/edupilot/internal/roadmap"
)

// Sheet names.
const (
	PlanSheet    = "Plan"
	SummarySheet = "Summary"
)

// ContentType is the MIME type of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WritePlan writes plan as an .xlsx workbook with a day-by-day sheet and a
// summary sheet.
func WritePlan(w io.Writer, plan *roadmap.StudyPlan) error {
	if plan == nil {
		return fmt.Errorf("plan is nil")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", PlanSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	if err := writeDays(f, plan.StudyPlan); err != nil {
		return err
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}
	if err := writeSummary(f, plan); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeDays(f *excelize.File, days []roadmap.StudyDay) error {
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	if err := setRow(f, PlanSheet, 1, "Day", "Tasks"); err != nil {
		return err
	}
	if err := f.SetCellStyle(PlanSheet, "A1", "B1", header); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	for i, d := range days {
		if err := setRow(f, PlanSheet, i+2, d.Day, strings.Join(d.Tasks, ", ")); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(PlanSheet, "A", "A", 8); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}
	return f.SetColWidth(PlanSheet, "B", "B", 60)
}

func writeSummary(f *excelize.File, plan *roadmap.StudyPlan) error {
	rows := [][2]any{
		{"Total days", plan.TotalDays},
		{"Total topics", plan.TotalTopics},
		{"Burnout risk", string(plan.BurnoutRisk)},
		{"Strategy insight", plan.StrategyInsight},
		{"Mentor advice", plan.MentorAdvice},
	}
	for i, r := range rows {
		if err := setRow(f, SummarySheet, i+1, r[0], r[1]); err != nil {
			return err
		}
	}

	if len(plan.TopicWeights) == 0 {
		return f.SetColWidth(SummarySheet, "A", "B", 24)
	}

	row := len(rows) + 2
	if err := setRow(f, SummarySheet, row, "Topic", "Weight"); err != nil {
		return err
	}
	for _, tw := range plan.TopicWeights {
		row++
		if err := setRow(f, SummarySheet, row, tw.Topic, tw.Weight); err != nil {
			return err
		}
	}
	return f.SetColWidth(SummarySheet, "A", "B", 24)
}

func setRow(f *excelize.File, sheet string, row int, values ...any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("setting %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
