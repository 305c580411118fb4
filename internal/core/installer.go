package core

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/avoronin/loadout/internal/core/assistant"
	"github.com/avoronin/loadout/internal/core/resource"
)

// InstallOptions carries the explicit resource selections for an
// install pass.
type InstallOptions struct {
	Skills []string // empty means every catalog skill
	Rules  []string // empty means every catalog rule
	Force  bool     // overwrite existing destinations
}

// InstallResult tallies what one install pass copied for one assistant.
// A fresh value is produced per assistant per call and never reused.
type InstallResult struct {
	Assistant    assistant.Type
	SkillsCopied []string
	RulesCopied  []string

	// Err is set when this assistant's installation was abandoned:
	// its marker directory could not be created, or a copy batch
	// could not start. Other assistants in the same pass proceed.
	Err error
}

// Copied reports the total number of resources this assistant received.
func (r *InstallResult) Copied() int {
	return len(r.SkillsCopied) + len(r.RulesCopied)
}

// Installer fans the copier out across assistants and resource kinds
// and aggregates per-assistant results. It is the only layer that
// isolates failures between assistants.
type Installer struct {
	copier *Copier
	logger *log.Logger
}

// NewInstaller creates an Installer around a configured Copier.
func NewInstaller(copier *Copier, logger *log.Logger) *Installer {
	if logger == nil {
		logger = log.Default()
	}
	return &Installer{copier: copier, logger: logger}
}

// Install copies the selected resources into each assistant's
// directories under targetDir and returns one result per assistant.
// The assistants list must contain concrete types only; ParseSelection
// expands "all" before this point. A failure while preparing or copying
// for one assistant is recorded on that assistant's result and does not
// stop the remaining ones.
func (inst *Installer) Install(assistants []assistant.Type, kind resource.Kind, targetDir string, opts InstallOptions) (map[assistant.Type]*InstallResult, error) {
	if targetDir == "" {
		return nil, fmt.Errorf("target directory is required")
	}
	if len(assistants) == 0 {
		return nil, fmt.Errorf("at least one assistant is required")
	}
	for _, a := range assistants {
		if !a.Valid() {
			return nil, fmt.Errorf("install needs concrete assistants, got %q", a)
		}
	}

	results := make(map[assistant.Type]*InstallResult, len(assistants))
	for _, a := range assistants {
		res := &InstallResult{Assistant: a}
		results[a] = res

		if _, err := assistant.EnsureDir(a, targetDir); err != nil {
			res.Err = err
			inst.logger.Error("skipping assistant", "assistant", string(a), "error", err)
			continue
		}

		if kind.Includes(resource.KindSkill) {
			copied, err := inst.copier.Copy(resource.KindSkill, a, targetDir, opts.Skills, opts.Force)
			if err != nil {
				res.Err = err
				inst.logger.Error("skill install failed", "assistant", string(a), "error", err)
				continue
			}
			res.SkillsCopied = copied
		}

		if kind.Includes(resource.KindRule) {
			copied, err := inst.copier.Copy(resource.KindRule, a, targetDir, opts.Rules, opts.Force)
			if err != nil {
				res.Err = err
				inst.logger.Error("rule install failed", "assistant", string(a), "error", err)
				continue
			}
			res.RulesCopied = copied
		}
	}

	return results, nil
}

// InstalledResources lists what is currently installed for one
// assistant under targetDir. Missing directories read as empty.
func InstalledResources(a assistant.Type, targetDir string) (skills, rules []string) {
	skills = readInstalledDir(a.ResourceDir(targetDir, resource.KindSkill), true)
	rules = readInstalledDir(a.ResourceDir(targetDir, resource.KindRule), false)
	return skills, rules
}

// readInstalledDir lists installed resource names in dir: directory
// entries for skills, *.md files (extension stripped) for rules.
// os.ReadDir returns entries sorted by name, so the output is ordered.
func readInstalledDir(dir string, wantDirs bool) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if wantDirs {
			if e.IsDir() {
				names = append(names, name)
			}
			continue
		}
		if !e.IsDir() && strings.HasSuffix(name, resource.RuleExt) {
			names = append(names, strings.TrimSuffix(name, resource.RuleExt))
		}
	}
	return names
}
