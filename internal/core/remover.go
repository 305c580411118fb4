package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/avoronin/loadout/internal/core/assistant"
	"github.com/avoronin/loadout/internal/core/resource"
)

// RemoveResult tallies what one uninstall pass deleted for one
// assistant.
type RemoveResult struct {
	Assistant     assistant.Type
	SkillsRemoved []string
	RulesRemoved  []string
}

// Removed reports the total number of resources this assistant lost.
func (r *RemoveResult) Removed() int {
	return len(r.SkillsRemoved) + len(r.RulesRemoved)
}

// Remover deletes installed resources from assistant directories. It
// never touches the catalog.
type Remover struct {
	logger *log.Logger
}

// NewRemover creates a Remover.
func NewRemover(logger *log.Logger) *Remover {
	if logger == nil {
		logger = log.Default()
	}
	return &Remover{logger: logger}
}

// Remove deletes the named resources of the given kind from each
// assistant's directories under targetDir. An empty names slice removes
// everything currently installed for that assistant. A name that
// matches nothing is logged and skipped, and trouble with one
// assistant never stops the others. Resource directories left empty
// are pruned; the assistant's marker directory itself is kept since it
// can hold unrelated user files.
func (r *Remover) Remove(assistants []assistant.Type, kind resource.Kind, targetDir string, names []string) (map[assistant.Type]*RemoveResult, error) {
	if targetDir == "" {
		return nil, fmt.Errorf("target directory is required")
	}
	if len(assistants) == 0 {
		return nil, fmt.Errorf("at least one assistant is required")
	}
	for _, a := range assistants {
		if !a.Valid() {
			return nil, fmt.Errorf("uninstall needs concrete assistants, got %q", a)
		}
	}

	results := make(map[assistant.Type]*RemoveResult, len(assistants))
	for _, a := range assistants {
		res := &RemoveResult{Assistant: a}
		results[a] = res

		skillNames, ruleNames := names, names
		if len(names) == 0 {
			skillNames, ruleNames = InstalledResources(a, targetDir)
		}

		skillsDir := a.ResourceDir(targetDir, resource.KindSkill)
		rulesDir := a.ResourceDir(targetDir, resource.KindRule)

		// handled tracks names that matched an installed resource, so
		// explicit selections that matched nothing can be reported.
		handled := make(map[string]bool)

		if kind.Includes(resource.KindSkill) {
			for _, name := range skillNames {
				path := filepath.Join(skillsDir, name)
				if !dirExists(path) {
					continue
				}
				handled[name] = true
				if err := os.RemoveAll(path); err != nil {
					r.logger.Error("removing skill", "name", name, "assistant", string(a), "error", err)
					continue
				}
				res.SkillsRemoved = append(res.SkillsRemoved, name)
			}
			cleanupEmptyDir(skillsDir)
		}

		if kind.Includes(resource.KindRule) {
			for _, name := range ruleNames {
				path := filepath.Join(rulesDir, name+resource.RuleExt)
				if !fileExists(path) {
					continue
				}
				handled[name] = true
				if err := os.Remove(path); err != nil {
					r.logger.Error("removing rule", "name", name, "assistant", string(a), "error", err)
					continue
				}
				res.RulesRemoved = append(res.RulesRemoved, name)
			}
			cleanupEmptyDir(rulesDir)
		}

		for _, name := range names {
			if !handled[name] {
				r.logger.Warn("nothing to remove", "name", name, "assistant", string(a))
			}
		}
	}

	return results, nil
}
