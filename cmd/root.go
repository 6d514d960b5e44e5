// Package cmd is for command line interactions with the remapping pipeline
package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "remap",
	Short: `Resolve variation feature placements on a new genome assembly.
Filters raw flanking-sequence alignments and joins the survivors back
onto the features' attribute records`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
