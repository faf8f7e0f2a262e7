// Package cmd implements spatialseqmine's Cobra command tree.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "spatialseqmine",
	Short: "Spatially-constrained sequential pattern miner",
	Long: `spatialseqmine finds frequent sequential patterns whose items are
mutually reachable under a neighborhood relation, following the
prefix-projection (PrefixSpan) family of algorithms.`,
	// main prints the returned error as the single diagnostic line.
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(mineCmd)
}
