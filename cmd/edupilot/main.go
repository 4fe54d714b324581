// Command edupilot generates study plans and quiz analyses from the terminal.
package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/p-n-ai/edupilot/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "edupilot",
		Short:        "Adaptive study plans and skill-gap analysis",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if v, _ := cmd.Flags().GetBool("verbose"); v {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
				&slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")

	root.AddCommand(newPlanCmd())
	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newSyllabiCmd())
	return root
}

// loadConfig reads LEARN_ settings shared with the server.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func addPresetsFlag(cmd *cobra.Command) {
	cmd.Flags().String("presets", "", "Syllabus preset directory (overrides LEARN_CURRICULUM_PATH)")
}

func presetsDir(cmd *cobra.Command, cfg *config.Config) string {
	if dir, _ := cmd.Flags().GetString("presets"); dir != "" {
		return dir
	}
	return cfg.CurriculumPath
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
