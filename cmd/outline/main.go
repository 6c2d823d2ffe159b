// Command outline infers PDF titles and heading outlines.
package main

import (
	"fmt"
	"os"

	"github.com/tsawler/outline/cmd/outline/commands"
)

var version = "0.1.0"

func main() {
	commands.SetVersion(version)
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
