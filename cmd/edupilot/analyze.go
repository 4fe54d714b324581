package main

import (
	"github.com/spf13/cobra"

	"github.com/p-n-ai/edupilot/internal/skillgap"
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Classify quiz results and suggest what to study next",
		RunE:  runAnalyze,
	}

	cmd.Flags().Float64("ds", 0, "Data Structures accuracy (0-100)")
	cmd.Flags().Float64("algo", 0, "Algorithms accuracy (0-100)")
	cmd.Flags().Float64("dbms", 0, "DBMS accuracy (0-100)")
	cmd.Flags().Float64("os", 0, "Operating Systems accuracy (0-100)")
	cmd.Flags().Float64("avg-time", 0, "Average seconds per question")
	for _, name := range []string{"ds", "algo", "dbms", "os", "avg-time"} {
		cmd.MarkFlagRequired(name)
	}
	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var in skillgap.QuizInput
	in.DSAccuracy, _ = cmd.Flags().GetFloat64("ds")
	in.AlgoAccuracy, _ = cmd.Flags().GetFloat64("algo")
	in.DBMSAccuracy, _ = cmd.Flags().GetFloat64("dbms")
	in.OSAccuracy, _ = cmd.Flags().GetFloat64("os")
	in.AvgTime, _ = cmd.Flags().GetFloat64("avg-time")

	classifier := skillgap.ThresholdClassifier{
		BeginnerBelow:  cfg.SkillGap.BeginnerBelow,
		ProficientFrom: cfg.SkillGap.ProficientFrom,
	}
	if err := classifier.Validate(); err != nil {
		return err
	}

	analyzer := skillgap.NewAnalyzer(classifier)
	analysis, err := analyzer.Analyze(cmd.Context(), in)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), analysis)
}
