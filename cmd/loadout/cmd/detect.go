package cmd

import (
	"github.com/spf13/cobra"

	"github.com/avoronin/loadout/internal/core/assistant"
	"github.com/avoronin/loadout/internal/ui"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show which assistants a project directory is configured for",
	Long: `Probe a project directory for assistant marker directories.

An assistant counts as configured when its marker directory exists:
.claude, .cursor, .codex or .opencode. The suggestion line is what the
interactive installer would preselect.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		targetDir, err := resolveTargetDir(cmd)
		if err != nil {
			return err
		}

		det := assistant.Detect(targetDir)

		if len(det.Detected) == 0 {
			ui.PrintInfo("No assistants detected in %s", targetDir)
			ui.PrintDim("Pass --assistants explicitly when installing, or create a marker directory first.")
			return nil
		}

		ui.PrintTitle("Assistants in %s", targetDir)
		for _, a := range det.Detected {
			ui.PrintSuccess("%s (%s)", a.DisplayName(), a.MarkerDir())
		}

		ui.Println()
		if det.Suggested == assistant.All {
			ui.PrintInfo("Suggested selection: all")
		} else {
			ui.PrintInfo("Suggested selection: %s", det.Suggested)
		}
		return nil
	},
}

func init() {
	detectCmd.Flags().StringP("dir", "d", "", "Project directory to probe (default: current directory)")
	rootCmd.AddCommand(detectCmd)
}
