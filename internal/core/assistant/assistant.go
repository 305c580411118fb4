// Package assistant models the AI coding assistants that loadout
// installs resources into. The set of assistants is a closed
// enumeration; each one maps to a marker directory inside a target
// project and to skills/rules subdirectories under that marker.
package assistant

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/avoronin/loadout/internal/core/resource"
)

// Type identifies a supported assistant.
type Type string

const (
	Claude   Type = "claude"
	Cursor   Type = "cursor"
	Codex    Type = "codex"
	OpenCode Type = "opencode"

	// All is a selection-layer value meaning "every known assistant".
	// ParseSelection expands it; it is never a valid install target on
	// its own.
	All Type = "all"
)

// config describes one assistant's on-disk conventions.
type config struct {
	displayName string
	markerDir   string
}

// configs is the closed table of supported assistants. Marker presence
// in a project directory is what detection keys on.
var configs = map[Type]config{
	Claude:   {displayName: "Claude Code", markerDir: ".claude"},
	Cursor:   {displayName: "Cursor", markerDir: ".cursor"},
	Codex:    {displayName: "Codex", markerDir: ".codex"},
	OpenCode: {displayName: "OpenCode", markerDir: ".opencode"},
}

// known fixes the enumeration order. Detection results and install
// output iterate in this order so runs stay deterministic.
var known = []Type{Claude, Cursor, Codex, OpenCode}

// Known returns the concrete assistant types in enumeration order.
func Known() []Type {
	out := make([]Type, len(known))
	copy(out, known)
	return out
}

// Names returns the concrete assistant names in enumeration order.
func Names() []string {
	names := make([]string, len(known))
	for i, t := range known {
		names[i] = string(t)
	}
	return names
}

// Valid reports whether t is a concrete assistant type. All is not
// concrete.
func (t Type) Valid() bool {
	_, ok := configs[t]
	return ok
}

// DisplayName returns the assistant's product name.
func (t Type) DisplayName() string {
	if c, ok := configs[t]; ok {
		return c.displayName
	}
	return string(t)
}

// MarkerDir returns the project-relative directory whose presence marks
// the assistant as configured (".claude", ".cursor", ...).
func (t Type) MarkerDir() string {
	if c, ok := configs[t]; ok {
		return c.markerDir
	}
	return ""
}

// ResourceDir returns the directory under targetDir where resources of
// the given concrete kind are installed for this assistant.
func (t Type) ResourceDir(targetDir string, kind resource.Kind) string {
	return filepath.Join(targetDir, t.MarkerDir(), kind.Subdir())
}

// ByName resolves a user-supplied name to a concrete type or All.
func ByName(name string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(name)))
	if t == All || t.Valid() {
		return t, nil
	}
	return "", fmt.Errorf("unknown assistant %q; available: %s, all", name, strings.Join(Names(), ", "))
}

// ParseSelection resolves user-supplied names into concrete types,
// expanding "all" and dropping duplicates while preserving first-seen
// order.
func ParseSelection(names []string) ([]Type, error) {
	var out []Type
	seen := make(map[Type]bool, len(known))
	add := func(t Type) {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}

	for _, name := range names {
		t, err := ByName(name)
		if err != nil {
			return nil, err
		}
		if t == All {
			for _, k := range known {
				add(k)
			}
			continue
		}
		add(t)
	}
	return out, nil
}
