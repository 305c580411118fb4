package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/avoronin/loadout/internal/core"
	"github.com/avoronin/loadout/internal/core/assistant"
	"github.com/avoronin/loadout/internal/core/resource"
)

// deps holds shared dependencies for CLI commands.
type deps struct {
	config  *core.ConfigManager
	cfg     *core.Config
	logger  *log.Logger
	paths   core.CatalogPaths
	catalog core.Catalog
}

// newDeps creates shared dependencies. Called lazily by commands that
// need them. The catalog root comes from --catalog, the config file's
// catalogRoot, or discovery relative to the executable, in that order.
func newDeps() (*deps, error) {
	logger := log.Default()

	config, err := core.NewConfigManager()
	if err != nil {
		return nil, fmt.Errorf("initializing config: %w", err)
	}

	// The config file is optional and best-effort; a broken one should
	// not block an install with explicit flags.
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		logger.Warn("config unreadable, using defaults", "path", config.ConfigPath(), "error", cfgErr)
		cfg = &core.Config{}
	}

	paths, err := resolveCatalogPaths(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &deps{
		config:  config,
		cfg:     cfg,
		logger:  logger,
		paths:   paths,
		catalog: core.NewDirCatalog(paths, logger),
	}, nil
}

// resolveCatalogPaths picks the catalog root for this invocation.
func resolveCatalogPaths(cfg *core.Config, logger *log.Logger) (core.CatalogPaths, error) {
	if catalogFlag != "" {
		return core.NewCatalogPaths(core.ExpandPath(catalogFlag)), nil
	}
	if cfg.CatalogRoot != "" {
		return core.NewCatalogPaths(core.ExpandPath(cfg.CatalogRoot)), nil
	}

	startDir := executableDir()
	return core.LocateCatalogRoot(startDir, core.LocateOptions{
		Strict: strictFlag || cfg.StrictLocate,
		Logger: logger,
	})
}

// executableDir returns the directory of the running binary, falling
// back to the current directory when it cannot be determined (go run
// from a temp path, unusual procfs).
func executableDir() string {
	exe, err := os.Executable()
	if err == nil {
		if resolved, rErr := filepath.EvalSymlinks(exe); rErr == nil {
			exe = resolved
		}
		return filepath.Dir(exe)
	}
	cwd, _ := os.Getwd()
	return cwd
}

// resolveTargetDir resolves the --dir flag or falls back to cwd.
func resolveTargetDir(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString("dir")
	if dir != "" {
		return core.ExpandPath(dir), nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}

// resolveKind parses the --kind flag.
func resolveKind(cmd *cobra.Command) (resource.Kind, error) {
	flag, _ := cmd.Flags().GetString("kind")
	return resource.ParseKind(flag)
}

// splitFlagList parses a comma-separated flag value into trimmed names.
func splitFlagList(cmd *cobra.Command, name string) []string {
	flag, _ := cmd.Flags().GetString(name)
	if flag == "" {
		return nil
	}
	parts := strings.Split(flag, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// resolveAssistants turns the --assistants flag into concrete types.
// Without the flag it falls back to the assistants detected in
// targetDir, then to the config's defaultAssistants.
func resolveAssistants(cmd *cobra.Command, cfg *core.Config, targetDir string) ([]assistant.Type, error) {
	if names := splitFlagList(cmd, "assistants"); len(names) > 0 {
		return assistant.ParseSelection(names)
	}

	if det := assistant.Detect(targetDir); len(det.Detected) > 0 {
		return det.Detected, nil
	}

	if len(cfg.DefaultAssistants) > 0 {
		return assistant.ParseSelection(cfg.DefaultAssistants)
	}

	return nil, fmt.Errorf("no assistants detected in %s\nPass --assistants (e.g. --assistants claude,cursor or --assistants all) or configure defaultAssistants", targetDir)
}

// addAssistantsFlag adds the shared --assistants selector to a command.
func addAssistantsFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("assistants", "a", "", "Comma-separated assistant names (claude,cursor,codex,opencode or all)")
}

// joinStrings concatenates string slices with ", " separator.
func joinStrings(ss []string) string {
	return strings.Join(ss, ", ")
}

// countNoun formats "%d skill"/"%d skills" style tallies.
func countNoun(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
