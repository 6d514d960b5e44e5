package cmd

import (
	"github.com/shihabdider/ensembl-variation/internal/remap"
	"github.com/spf13/cobra"
)

// runCmd executes the full shard pipeline: filter then join.
var runCmd = &cobra.Command{
	Use:                        "run",
	Short:                      "Run the full pipeline for one shard",
	PreRun:                     bindPolicyFlags,
	Run:                        remap.RunCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Run the full remapping pipeline for one input shard.

Counts the shard's inputs, filters the raw alignments into surviving
placements, writes the statistics file, and joins the survivors onto the
feature attribute dump to produce the load-ready file. Re-running over
the same inputs regenerates byte-identical outputs.`,
}

// set flags
func init() {
	runCmd.Flags().StringP("mappings", "m", "", "path to the primary mapping file")
	runCmd.Flags().StringP("failed", "u", "", "path to the failed-mapping file")
	runCmd.Flags().StringP("fasta", "q", "", "path to the flanking-sequence FASTA file")
	runCmd.Flags().StringP("filtered", "i", "", "output path for the filtered mapping file")
	runCmd.Flags().StringP("stats", "s", "", "output path for the statistics file")
	runCmd.Flags().StringP("features", "a", "", "path to the feature attribute dump")
	runCmd.Flags().StringP("seq-regions", "r", "", "path to the seq region name/id table")
	runCmd.Flags().StringP("out", "o", "", "output path for the load-ready file")
	runCmd.Flags().Float64P("threshold", "t", 0.95, "minimum relative alignment score")
	runCmd.Flags().BoolP("use-prior", "p", false, "prefer candidates on the prior-assembly chromosome")
	runCmd.Flags().StringP("mode", "d", "standard", "resolution mode (standard|dbsnp)")

	runCmd.MarkFlagRequired("mappings")
	runCmd.MarkFlagRequired("failed")
	runCmd.MarkFlagRequired("fasta")
	runCmd.MarkFlagRequired("filtered")
	runCmd.MarkFlagRequired("stats")
	runCmd.MarkFlagRequired("features")
	runCmd.MarkFlagRequired("seq-regions")
	runCmd.MarkFlagRequired("out")

	RootCmd.AddCommand(runCmd)
}
