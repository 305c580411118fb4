package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/avoronin/loadout/internal/core/resource"
	"github.com/avoronin/loadout/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the resources available in the catalog",
	Long: `List the skills and rules the catalog offers.

Skill descriptions come from each skill's SKILL.md frontmatter; rule
descriptions come from the rule document's frontmatter or first heading.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}

		kind, err := resolveKind(cmd)
		if err != nil {
			return err
		}

		listed := 0

		if kind.Includes(resource.KindSkill) {
			skills := d.catalog.Skills()
			listed += len(skills)

			ui.PrintTitle("Skills (%d)", len(skills))
			if len(skills) == 0 {
				ui.PrintDim("  none")
			} else {
				table := ui.NewTable("NAME", "DESCRIPTION")
				table.SetMaxWidth(1, 72)
				for _, name := range skills {
					desc := ""
					if meta, err := resource.ParseSkillMeta(filepath.Join(d.paths.SkillsDir, name)); err == nil {
						desc = meta.Description
					}
					table.AddRow(name, desc)
				}
				table.Render()
			}
		}

		if kind.Includes(resource.KindRule) {
			if kind == resource.KindBoth {
				ui.Println()
			}
			rules := d.catalog.Rules()
			listed += len(rules)

			ui.PrintTitle("Rules (%d)", len(rules))
			if len(rules) == 0 {
				ui.PrintDim("  none")
			} else {
				table := ui.NewTable("NAME", "DESCRIPTION")
				table.SetMaxWidth(1, 72)
				for _, name := range rules {
					table.AddRow(name, resource.RuleTitle(filepath.Join(d.paths.RulesDir, name+resource.RuleExt)))
				}
				table.Render()
			}
		}

		if listed == 0 {
			ui.Println()
			ui.PrintWarning("Catalog at %s is empty; run loadout doctor to check the resolved paths", d.paths.CatalogRoot)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringP("kind", "k", "both", "Resource kind to list: skill, rule or both")
	rootCmd.AddCommand(listCmd)
}
