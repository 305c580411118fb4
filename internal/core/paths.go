// Package core implements the loadout installation engine. It has zero
// UI dependencies and is independently testable.
package core

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// CatalogPaths locates the asset catalog on disk. It is computed once at
// startup and handed to the components that need it; nothing in this
// package keeps a process-global copy, so tests construct synthetic
// catalogs freely.
type CatalogPaths struct {
	CatalogRoot string // directory holding the catalog
	SkillsDir   string // CatalogRoot/skills
	RulesDir    string // CatalogRoot/rules
}

// NewCatalogPaths derives catalog paths from an explicit root. Used when
// the root is already known (tests, the catalogRoot config override, the
// --catalog flag) and by LocateCatalogRoot once discovery settles.
func NewCatalogPaths(root string) CatalogPaths {
	return CatalogPaths{
		CatalogRoot: root,
		SkillsDir:   filepath.Join(root, "skills"),
		RulesDir:    filepath.Join(root, "rules"),
	}
}

// Exists reports which of the catalog paths are present on disk. The
// doctor command surfaces these booleans so a fallback root that points
// nowhere is visible instead of silently producing empty listings.
func (p CatalogPaths) Exists() (root, skills, rules bool) {
	return dirExists(p.CatalogRoot), dirExists(p.SkillsDir), dirExists(p.RulesDir)
}

// defaultLocateDepth bounds the upward walk so symlink cycles or odd
// mounts cannot loop forever.
const defaultLocateDepth = 10

// LocateOptions configures catalog discovery.
type LocateOptions struct {
	// Strict turns discovery failure into an error instead of a
	// fallback path.
	Strict bool

	// MaxDepth overrides the upward search bound; 0 means the default.
	MaxDepth int

	// Logger receives discovery warnings. Defaults to log.Default().
	Logger *log.Logger
}

// LocateCatalogRoot walks upward from startDir looking for the catalog:
// a directory containing assets/skills, or one containing a skills
// directory itself. startDir is normally the directory of the running
// executable. The walk is depth-bounded and stops early once the parent
// of the current directory is the directory itself (filesystem root).
//
// When nothing matches, the default lenient mode falls back to
// startDir/assets (the layout release archives use) and logs a
// warning; callers verify the guess through CatalogPaths.Exists. Strict
// mode returns an error instead.
func LocateCatalogRoot(startDir string, opts LocateOptions) (CatalogPaths, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = defaultLocateDepth
	}

	dir := startDir
	for i := 0; i < maxDepth; i++ {
		if root, ok := catalogAt(dir); ok {
			logger.Debug("catalog located", "root", root, "levels_up", i)
			return NewCatalogPaths(root), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached the filesystem root
		}
		dir = parent
	}

	if opts.Strict {
		return CatalogPaths{}, fmt.Errorf("no catalog found (searched %d levels up from %s)", maxDepth, startDir)
	}

	fallback := filepath.Join(startDir, "assets")
	logger.Warn("catalog not found, assuming it sits beside the program",
		"searched_from", startDir, "fallback", fallback)
	return NewCatalogPaths(fallback), nil
}

// catalogAt checks whether dir holds the catalog and returns its root:
// dir/assets when that contains a skills directory, or dir itself when
// it contains one directly.
func catalogAt(dir string) (string, bool) {
	assets := filepath.Join(dir, "assets")
	if dirExists(filepath.Join(assets, "skills")) {
		return assets, true
	}
	if dirExists(filepath.Join(dir, "skills")) {
		return dir, true
	}
	return "", false
}
