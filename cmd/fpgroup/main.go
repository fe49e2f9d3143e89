// Command fpgroup enumerates finitely presented groups.
package main

import (
	"os"

	"github.com/katalvlaran/fpgroup/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
