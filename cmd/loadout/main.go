// Command loadout installs shared AI assistant skills and rules into a
// project's assistant config directories.
package main

import (
	"fmt"
	"os"

	"github.com/avoronin/loadout/cmd/loadout/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
