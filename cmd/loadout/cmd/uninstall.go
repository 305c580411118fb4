package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/avoronin/loadout/internal/core"
	"github.com/avoronin/loadout/internal/core/assistant"
	"github.com/avoronin/loadout/internal/tui"
	"github.com/avoronin/loadout/internal/ui"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall [name]",
	Short: "Remove installed resources from assistant directories",
	Long: `Remove a named skill or rule from a project's assistant directories.

Use --all to remove every installed resource instead of a single name.
Only the copies inside the assistant directories are touched; the
catalog itself never changes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		if len(args) == 0 && !all {
			return fmt.Errorf("specify a resource name or use --all")
		}
		if len(args) > 0 && all {
			return fmt.Errorf("cannot specify a resource name with --all")
		}

		d, err := newDeps()
		if err != nil {
			return err
		}

		targetDir, err := resolveTargetDir(cmd)
		if err != nil {
			return err
		}

		kind, err := resolveKind(cmd)
		if err != nil {
			return err
		}

		assistants, err := resolveAssistants(cmd, d.cfg, targetDir)
		if err != nil {
			return err
		}

		if all {
			ok, err := confirmRemoveAll(cmd, targetDir)
			if err != nil {
				return err
			}
			if !ok {
				ui.PrintDim("Uninstall cancelled.")
				return nil
			}
		}

		var names []string
		if len(args) > 0 {
			names = args[:1]
		}

		remover := core.NewRemover(d.logger)
		results, err := remover.Remove(assistants, kind, targetDir, names)
		if err != nil {
			return err
		}

		renderRemoveResults(results)
		return nil
	},
}

// confirmRemoveAll guards the bulk path: interactive runs get a dialog,
// scripted runs must pass --yes.
func confirmRemoveAll(cmd *cobra.Command, targetDir string) (bool, error) {
	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		return true, nil
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return false, fmt.Errorf("refusing to remove everything without confirmation; pass --yes")
	}
	return tui.RunConfirm(fmt.Sprintf("Remove all installed resources from %s?", targetDir))
}

// renderRemoveResults prints one tally block per assistant, in
// enumeration order.
func renderRemoveResults(results map[assistant.Type]*core.RemoveResult) {
	total := 0
	for _, a := range assistant.Known() {
		res, ok := results[a]
		if !ok {
			continue
		}

		if res.Removed() == 0 {
			ui.PrintDim("%s: nothing to remove", a.DisplayName())
			continue
		}

		total += res.Removed()
		ui.PrintSuccess("%s: removed %s, %s", a.DisplayName(),
			countNoun(len(res.SkillsRemoved), "skill"), countNoun(len(res.RulesRemoved), "rule"))
		if len(res.SkillsRemoved) > 0 {
			ui.PrintDim("    skills: %s", joinStrings(res.SkillsRemoved))
		}
		if len(res.RulesRemoved) > 0 {
			ui.PrintDim("    rules: %s", joinStrings(res.RulesRemoved))
		}
	}

	ui.Println()
	ui.PrintInfo("Removed %s", countNoun(total, "resource"))
}

func init() {
	uninstallCmd.Flags().StringP("dir", "d", "", "Target project directory (default: current directory)")
	uninstallCmd.Flags().StringP("kind", "k", "both", "Resource kind to remove: skill, rule or both")
	uninstallCmd.Flags().Bool("all", false, "Remove every installed resource")
	uninstallCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	addAssistantsFlag(uninstallCmd)
	rootCmd.AddCommand(uninstallCmd)
}
