// Command petfarm plans check-ins for a pet farm and projects its weekly
// profit.
//
// Usage:
//
//	petfarm briefing
//	petfarm complete
//	petfarm tui --at 2025-03-10T12:00:00Z
package main

import (
	"fmt"
	"os"

	"github.com/Argeon482/Pet-Farm/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
