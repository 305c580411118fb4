package cmd

import (
	"github.com/spf13/cobra"

	"github.com/avoronin/loadout/internal/core/assistant"
	"github.com/avoronin/loadout/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose catalog discovery and configuration",
	Long: `Show the resolved catalog paths, whether they exist on disk, the
config file state, and what is detected in the target directory.

Catalog discovery is lenient by default: when no catalog is found near
the executable, loadout assumes one beside it and reports the guess
here instead of failing. A missing root below means that guess (or a
configured override) points nowhere.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}

		targetDir, err := resolveTargetDir(cmd)
		if err != nil {
			return err
		}

		rootOK, skillsOK, rulesOK := d.paths.Exists()

		ui.PrintTitle("Catalog")
		printCheck(rootOK, "root: %s", d.paths.CatalogRoot)
		printCheck(skillsOK, "skills dir: %s", d.paths.SkillsDir)
		printCheck(rulesOK, "rules dir: %s", d.paths.RulesDir)
		if rootOK {
			ui.PrintDim("    %s, %s available",
				countNoun(len(d.catalog.Skills()), "skill"), countNoun(len(d.catalog.Rules()), "rule"))
		} else {
			ui.PrintWarning("Catalog root does not exist; installs will skip everything")
			ui.PrintDim("    Point --catalog (or the config's catalogRoot) at a catalog directory.")
		}

		ui.Println()
		ui.PrintTitle("Config")
		ui.PrintInfo("path: %s", d.config.ConfigPath())
		switch {
		case d.cfg.CatalogRoot != "":
			ui.PrintInfo("catalogRoot override: %s", d.cfg.CatalogRoot)
		default:
			ui.PrintDim("catalogRoot override: none (discovery relative to the executable)")
		}
		if len(d.cfg.DefaultAssistants) > 0 {
			ui.PrintInfo("defaultAssistants: %s", joinStrings(d.cfg.DefaultAssistants))
		} else {
			ui.PrintDim("defaultAssistants: none")
		}
		if d.cfg.StrictLocate {
			ui.PrintInfo("strictLocate: true")
		} else {
			ui.PrintDim("strictLocate: false (lenient fallback)")
		}

		ui.Println()
		ui.PrintTitle("Target")
		ui.PrintInfo("dir: %s", targetDir)
		det := assistant.Detect(targetDir)
		if len(det.Detected) == 0 {
			ui.PrintDim("no assistant markers found")
		}
		for _, a := range det.Detected {
			ui.PrintSuccess("%s (%s)", a.DisplayName(), a.MarkerDir())
		}

		return nil
	},
}

// printCheck renders one existence line with a pass/fail glyph.
func printCheck(ok bool, format string, args ...interface{}) {
	if ok {
		ui.PrintSuccess(format, args...)
	} else {
		ui.PrintError(format, args...)
	}
}

func init() {
	doctorCmd.Flags().StringP("dir", "d", "", "Project directory to diagnose (default: current directory)")
	rootCmd.AddCommand(doctorCmd)
}
