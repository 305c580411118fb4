package core

import (
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/avoronin/loadout/internal/core/resource"
)

// Catalog lists the resources available for installation. Skills and
// Rules return lexicographically sorted names.
type Catalog interface {
	Skills() []string
	Rules() []string
}

// DirCatalog lists resources by scanning the catalog directories on
// each call: skills are the non-hidden subdirectories of SkillsDir,
// rules the non-hidden *.md files of RulesDir with the extension
// stripped. A missing or unreadable directory degrades to an empty
// list plus a logged warning, never an error; the copier's existence
// checks produce the user-facing diagnostics.
type DirCatalog struct {
	paths  CatalogPaths
	logger *log.Logger
}

// NewDirCatalog creates a catalog scanning the given paths.
func NewDirCatalog(paths CatalogPaths, logger *log.Logger) *DirCatalog {
	if logger == nil {
		logger = log.Default()
	}
	return &DirCatalog{paths: paths, logger: logger}
}

// Skills returns the names of all skill directories in the catalog.
func (c *DirCatalog) Skills() []string {
	entries, err := os.ReadDir(c.paths.SkillsDir)
	if err != nil {
		c.logger.Warn("skills directory unavailable", "dir", c.paths.SkillsDir, "error", err)
		return nil
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// Rules returns the names of all rule documents in the catalog.
func (c *DirCatalog) Rules() []string {
	entries, err := os.ReadDir(c.paths.RulesDir)
	if err != nil {
		c.logger.Warn("rules directory unavailable", "dir", c.paths.RulesDir, "error", err)
		return nil
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, resource.RuleExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(name, resource.RuleExt))
	}
	sort.Strings(names)
	return names
}

// StaticCatalog is a fixed, compiled-in listing. It backs tests and
// callers that already know their names and want no directory scans.
type StaticCatalog struct {
	skills []string
	rules  []string
}

// NewStaticCatalog creates a catalog from fixed name lists. The input
// slices are copied and sorted.
func NewStaticCatalog(skills, rules []string) *StaticCatalog {
	c := &StaticCatalog{
		skills: append([]string(nil), skills...),
		rules:  append([]string(nil), rules...),
	}
	sort.Strings(c.skills)
	sort.Strings(c.rules)
	return c
}

// Skills returns a copy of the skill name list.
func (c *StaticCatalog) Skills() []string {
	return append([]string(nil), c.skills...)
}

// Rules returns a copy of the rule name list.
func (c *StaticCatalog) Rules() []string {
	return append([]string(nil), c.rules...)
}
