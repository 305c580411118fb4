package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/avoronin/loadout/internal/core/resource"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Render a resource document from the catalog",
	Long: `Render a skill's SKILL.md or a rule document in the terminal.

When a skill and a rule share a name, the skill wins; use --kind rule to
pick the rule instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}

		name := args[0]
		kindFlag, _ := cmd.Flags().GetString("kind")

		path, err := resolveDocument(d, name, kindFlag)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			// Fall back to the raw document rather than failing the read.
			fmt.Print(string(data))
			return nil
		}

		rendered, err := renderer.Render(string(data))
		if err != nil {
			fmt.Print(string(data))
			return nil
		}
		fmt.Print(rendered)
		return nil
	},
}

// resolveDocument finds the markdown document behind a resource name.
func resolveDocument(d *deps, name, kindFlag string) (string, error) {
	skillDoc := filepath.Join(d.paths.SkillsDir, name, resource.SkillFileName)
	ruleDoc := filepath.Join(d.paths.RulesDir, name+resource.RuleExt)
	legacyRuleDoc := filepath.Join(d.paths.CatalogRoot, name+resource.RuleExt)

	switch kindFlag {
	case "skill":
		if fileReadable(skillDoc) {
			return skillDoc, nil
		}
	case "rule":
		if fileReadable(ruleDoc) {
			return ruleDoc, nil
		}
		if fileReadable(legacyRuleDoc) {
			return legacyRuleDoc, nil
		}
	case "":
		for _, p := range []string{skillDoc, ruleDoc, legacyRuleDoc} {
			if fileReadable(p) {
				return p, nil
			}
		}
	default:
		return "", fmt.Errorf("unknown resource kind %q; available: skill, rule", kindFlag)
	}

	return "", fmt.Errorf("no resource named %q in catalog %s (try loadout list)", name, d.paths.CatalogRoot)
}

func fileReadable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func init() {
	showCmd.Flags().StringP("kind", "k", "", "Resolve the name as a specific kind: skill or rule")
	rootCmd.AddCommand(showCmd)
}
