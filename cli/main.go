// ABOUTME: Entry point for the assetdex CLI
// ABOUTME: Command-line tool for rack inventory lookups and placement checks in scripts

package main

import (
	"fmt"
	"os"

	"github.com/markalston/assetdex-dcim/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
