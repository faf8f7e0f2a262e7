// Command spatialseqmine mines spatially-constrained sequential patterns
// from a transaction database and a neighborhood relation.
package main

import (
	"fmt"
	"os"

	"github.com/saint2706/spatialseqmine/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
