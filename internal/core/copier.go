package core

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/avoronin/loadout/internal/core/assistant"
	"github.com/avoronin/loadout/internal/core/resource"
)

// excludedEntries are never copied into an assistant directory, with or
// without force: dependency caches, VCS internals, OS metadata.
var excludedEntries = map[string]bool{
	".git":         true,
	"node_modules": true,
	"__pycache__":  true,
	".venv":        true,
	".DS_Store":    true,
	"Thumbs.db":    true,
}

// excludedFromCopy reports whether a directory entry stays out of
// recursive skill copies. Underscore-prefixed entries and *.local.*
// files are catalog-side only.
func excludedFromCopy(name string) bool {
	if excludedEntries[name] {
		return true
	}
	if strings.HasPrefix(name, "_") {
		return true
	}
	return strings.Contains(name, ".local.")
}

// Copier performs the per-resource filesystem copies from the catalog
// into assistant directories. Names always resolve against the catalog
// paths, never against the install target.
type Copier struct {
	paths   CatalogPaths
	catalog Catalog
	logger  *log.Logger
}

// NewCopier creates a Copier bound to a catalog location and listing.
func NewCopier(paths CatalogPaths, catalog Catalog, logger *log.Logger) *Copier {
	if logger == nil {
		logger = log.Default()
	}
	return &Copier{paths: paths, catalog: catalog, logger: logger}
}

// Copy installs resources of one concrete kind into an assistant's
// resource directory under targetDir. An empty names slice means the
// full catalog listing for the kind. Missing sources and destination
// collisions (without force) are skipped with a warning; a per-item I/O
// failure is logged and the batch continues. The returned names keep
// the working list's order, with skipped and failed items absent.
//
// Running the same copy twice with force=false copies nothing the
// second time; with force=true it re-copies everything. The only error
// returned is a failed destination directory creation, which makes the
// whole (assistant, kind) batch impossible.
func (c *Copier) Copy(kind resource.Kind, a assistant.Type, targetDir string, names []string, force bool) ([]string, error) {
	if kind != resource.KindSkill && kind != resource.KindRule {
		return nil, fmt.Errorf("copy needs a concrete resource kind, got %q", kind)
	}
	if !a.Valid() {
		return nil, fmt.Errorf("copy needs a concrete assistant, got %q", a)
	}

	destDir := a.ResourceDir(targetDir, kind)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", destDir, err)
	}

	working := names
	if len(working) == 0 {
		if kind == resource.KindRule {
			working = c.catalog.Rules()
		} else {
			working = c.catalog.Skills()
		}
	}

	var copied []string
	for _, name := range working {
		var ok bool
		var err error
		if kind == resource.KindSkill {
			ok, err = c.copySkill(name, destDir, force)
		} else {
			ok, err = c.copyRule(name, destDir, force)
		}
		if err != nil {
			c.logger.Error("copy failed", "kind", string(kind), "name", name, "error", err)
			continue
		}
		if ok {
			copied = append(copied, name)
		}
	}
	return copied, nil
}

// copySkill copies one skill directory tree into destDir. Returns false
// without error when the source is missing or the destination was kept.
func (c *Copier) copySkill(name, destDir string, force bool) (bool, error) {
	src := filepath.Join(c.paths.SkillsDir, name)
	if !dirExists(src) {
		c.logger.Warn("skill not found in catalog",
			"name", name, "path", src, "catalog_root", c.paths.CatalogRoot)
		return false, nil
	}

	dest := filepath.Join(destDir, name)
	if pathExists(dest) && !force {
		c.logger.Warn("skill already installed, skipping (use force to overwrite)",
			"name", name, "path", dest)
		return false, nil
	}

	if err := copyTree(src, dest); err != nil {
		return false, err
	}
	return true, nil
}

// copyRule copies one rule document into destDir. The source is
// rules/<name>.md, with the catalog root itself as a fallback for older
// catalog layouts that kept rules at the top level.
func (c *Copier) copyRule(name, destDir string, force bool) (bool, error) {
	src := filepath.Join(c.paths.RulesDir, name+resource.RuleExt)
	if !fileExists(src) {
		legacy := filepath.Join(c.paths.CatalogRoot, name+resource.RuleExt)
		if !fileExists(legacy) {
			c.logger.Warn("rule not found in catalog",
				"name", name, "path", src, "catalog_root", c.paths.CatalogRoot)
			return false, nil
		}
		src = legacy
	}

	dest := filepath.Join(destDir, name+resource.RuleExt)
	if pathExists(dest) && !force {
		c.logger.Warn("rule already installed, skipping (use force to overwrite)",
			"name", name, "path", dest)
		return false, nil
	}

	if err := copyFile(src, dest); err != nil {
		return false, err
	}
	return true, nil
}

// copyTree recursively copies a directory, skipping excluded entries.
// Files already present under dest are overwritten in place, which is
// what force re-syncs rely on.
func copyTree(src, dest string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		if path != src && excludedFromCopy(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		destPath := filepath.Join(dest, rel)
		if d.IsDir() {
			return os.MkdirAll(destPath, 0o755)
		}
		return copyFile(path, destPath)
	})
}

// copyFile copies a single file from src to dest, preserving its
// permission bits.
func copyFile(src, dest string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = srcFile.Close() }()

	info, err := srcFile.Stat()
	if err != nil {
		return err
	}

	dstFile, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() { _ = dstFile.Close() }()

	_, err = io.Copy(dstFile, srcFile)
	return err
}
