package cmd

import (
	"github.com/shihabdider/ensembl-variation/internal/remap"
	"github.com/spf13/cobra"
)

// statsCmd prints the pre-filter counts for a shard's inputs.
var statsCmd = &cobra.Command{
	Use:                        "stats",
	Short:                      "Print pre-filter counts for a shard's inputs",
	Run:                        remap.StatsCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Count a shard's inputs without filtering anything: the sequence
entries in the FASTA file, the distinct query names the aligner placed,
and the distinct query names it failed to place.`,
}

// set flags
func init() {
	statsCmd.Flags().StringP("mappings", "m", "", "path to the primary mapping file")
	statsCmd.Flags().StringP("failed", "u", "", "path to the failed-mapping file")
	statsCmd.Flags().StringP("fasta", "q", "", "path to the flanking-sequence FASTA file")

	statsCmd.MarkFlagRequired("mappings")
	statsCmd.MarkFlagRequired("failed")
	statsCmd.MarkFlagRequired("fasta")

	RootCmd.AddCommand(statsCmd)
}
