package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/p-n-ai/edupilot/internal/curriculum"
)

func newSyllabiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "syllabi",
		Short: "List syllabus presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			loader, err := curriculum.NewLoader(presetsDir(cmd, cfg))
			if err != nil {
				return fmt.Errorf("load presets: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), loader.All())
		},
	}
	addPresetsFlag(cmd)
	return cmd
}
