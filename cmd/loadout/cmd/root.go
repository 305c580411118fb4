package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Persistent flags shared by every command.
var (
	verbose     bool
	catalogFlag string
	strictFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "loadout",
	Short: "Install shared skills and rules into AI assistant configs",
	Long: `Loadout copies shared AI assistant resources into a project.

Skills are directories of instructions and scripts; rules are single
markdown documents. Both live in a resource catalog shipped beside the
binary (or pointed at with --catalog) and get installed into the config
directories of the assistants a project uses: .claude, .cursor, .codex
and .opencode.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("loadout %s (commit: %s, built: %s)\n", Version, Commit, Date)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "", "Path to the resource catalog root (skips discovery)")
	rootCmd.PersistentFlags().BoolVar(&strictFlag, "strict", false, "Fail when no catalog is found instead of assuming one")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
