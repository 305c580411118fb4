package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/avoronin/loadout/internal/core"
	"github.com/avoronin/loadout/internal/core/assistant"
	"github.com/avoronin/loadout/internal/core/resource"
	"github.com/avoronin/loadout/internal/tui"
	"github.com/avoronin/loadout/internal/ui"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install skills and rules into assistant config directories",
	Long: `Install resources from the catalog into a project's assistant directories.

With --skills or --rules the named resources are installed. With neither,
an interactive picker opens on a terminal; otherwise the full catalog for
the selected --kind is installed.

Existing destinations are left alone unless --force is set.

Examples:
  loadout install                                  # interactive
  loadout install --skills schema --assistants claude
  loadout install --kind rule --assistants all
  loadout install --skills schema,code-detector --force`,
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

		kind, err := resolveKind(cmd)
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		skills := splitFlagList(cmd, "skills")
		rules := splitFlagList(cmd, "rules")

		var assistants []assistant.Type

		if len(skills) == 0 && len(rules) == 0 && isatty.IsTerminal(os.Stdout.Fd()) {
			sel, err := runInstallPicker(d, kind, targetDir)
			if err != nil {
				return err
			}
			if !sel.Confirmed {
				ui.PrintDim("Install cancelled.")
				return nil
			}
			skills, rules = sel.Skills, sel.Rules
			assistants = sel.Assistants

			// The picker pins the exact selection; only the kinds the
			// user actually picked from get installed.
			kind = kindOf(len(skills) > 0, len(rules) > 0)
		} else {
			assistants, err = resolveAssistants(cmd, d.cfg, targetDir)
			if err != nil {
				return err
			}
			// Explicit names narrow the kind: --skills alone should not
			// drag in the full rule catalog.
			if len(skills) > 0 || len(rules) > 0 {
				kind = kindOf(len(skills) > 0, len(rules) > 0)
			}
		}

		installer := core.NewInstaller(core.NewCopier(d.paths, d.catalog, d.logger), d.logger)
		results, err := installer.Install(assistants, kind, targetDir, core.InstallOptions{
			Skills: skills,
			Rules:  rules,
			Force:  force,
		})
		if err != nil {
			return err
		}

		renderInstallResults(results, targetDir)
		return nil
	},
}

// kindOf maps which name lists are present to the matching kind.
func kindOf(hasSkills, hasRules bool) resource.Kind {
	switch {
	case hasSkills && !hasRules:
		return resource.KindSkill
	case hasRules && !hasSkills:
		return resource.KindRule
	default:
		return resource.KindBoth
	}
}

// runInstallPicker shows the interactive resource/assistant selection.
func runInstallPicker(d *deps, kind resource.Kind, targetDir string) (tui.Selection, error) {
	var entries []tui.Entry

	installed := installedAnywhere(targetDir)

	if kind.Includes(resource.KindSkill) {
		for _, name := range d.catalog.Skills() {
			desc := ""
			if meta, err := resource.ParseSkillMeta(filepath.Join(d.paths.SkillsDir, name)); err == nil {
				desc = meta.Description
			}
			entries = append(entries, tui.Entry{
				Name:        name,
				Kind:        resource.KindSkill,
				Description: desc,
				Installed:   installed[resource.KindSkill][name],
			})
		}
	}

	if kind.Includes(resource.KindRule) {
		for _, name := range d.catalog.Rules() {
			entries = append(entries, tui.Entry{
				Name:        name,
				Kind:        resource.KindRule,
				Description: resource.RuleTitle(filepath.Join(d.paths.RulesDir, name+resource.RuleExt)),
				Installed:   installed[resource.KindRule][name],
			})
		}
	}

	if len(entries) == 0 {
		return tui.Selection{}, fmt.Errorf("catalog at %s has no resources (run loadout doctor)", d.paths.CatalogRoot)
	}

	return tui.RunPicker(tui.PickerOptions{
		TargetDir: targetDir,
		Entries:   entries,
		Detected:  assistant.Detect(targetDir).Detected,
	})
}

// installedAnywhere reports which resources any detected assistant in
// targetDir already has, for the picker's "(installed)" tags.
func installedAnywhere(targetDir string) map[resource.Kind]map[string]bool {
	out := map[resource.Kind]map[string]bool{
		resource.KindSkill: {},
		resource.KindRule:  {},
	}
	for _, a := range assistant.Detect(targetDir).Detected {
		skills, rules := core.InstalledResources(a, targetDir)
		for _, name := range skills {
			out[resource.KindSkill][name] = true
		}
		for _, name := range rules {
			out[resource.KindRule][name] = true
		}
	}
	return out
}

// renderInstallResults prints one tally block per assistant, in
// enumeration order.
func renderInstallResults(results map[assistant.Type]*core.InstallResult, targetDir string) {
	total := 0
	failed := 0

	for _, a := range assistant.Known() {
		res, ok := results[a]
		if !ok {
			continue
		}

		if res.Err != nil {
			failed++
			ui.PrintError("%s: %v", a.DisplayName(), res.Err)
			continue
		}

		if res.Copied() == 0 {
			ui.PrintDim("%s: nothing new to install", a.DisplayName())
			continue
		}

		total += res.Copied()
		ui.PrintSuccess("%s: %s, %s", a.DisplayName(),
			countNoun(len(res.SkillsCopied), "skill"), countNoun(len(res.RulesCopied), "rule"))
		if len(res.SkillsCopied) > 0 {
			ui.PrintDim("    skills: %s", joinStrings(res.SkillsCopied))
		}
		if len(res.RulesCopied) > 0 {
			ui.PrintDim("    rules: %s", joinStrings(res.RulesCopied))
		}
	}

	ui.Println()
	if failed > 0 {
		ui.PrintWarning("Installed %s into %s; %s failed", countNoun(total, "resource"), targetDir, countNoun(failed, "assistant"))
		return
	}
	ui.PrintInfo("Installed %s into %s", countNoun(total, "resource"), targetDir)
}

func init() {
	installCmd.Flags().StringP("dir", "d", "", "Target project directory (default: current directory)")
	installCmd.Flags().StringP("kind", "k", "both", "Resource kind to install: skill, rule or both")
	installCmd.Flags().String("skills", "", "Comma-separated skill names (default: every catalog skill)")
	installCmd.Flags().String("rules", "", "Comma-separated rule names (default: every catalog rule)")
	installCmd.Flags().BoolP("force", "f", false, "Overwrite resources that are already installed")
	addAssistantsFlag(installCmd)
	rootCmd.AddCommand(installCmd)
}
