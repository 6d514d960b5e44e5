package cmd

import (
	"github.com/shihabdider/ensembl-variation/internal/remap"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// filterCmd resolves raw alignment results into surviving placements.
var filterCmd = &cobra.Command{
	Use:                        "filter",
	Short:                      "Filter raw alignments into surviving placements",
	PreRun:                     bindPolicyFlags,
	Run:                        remap.FilterCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Filter the raw alignments of one shard into surviving placements.

Features with a single candidate placement survive if their alignment
score clears the threshold. Features with several candidates are resolved
per feature: when the best candidate is a perfect match only perfect
placements are kept, otherwise every candidate clearing the threshold is.
Writes the filtered mapping file and the shard's statistics file.`,
}

// set flags
func init() {
	filterCmd.Flags().StringP("mappings", "m", "", "path to the primary mapping file")
	filterCmd.Flags().StringP("failed", "u", "", "path to the failed-mapping file")
	filterCmd.Flags().StringP("fasta", "q", "", "path to the flanking-sequence FASTA file")
	filterCmd.Flags().StringP("filtered", "o", "", "output path for the filtered mapping file")
	filterCmd.Flags().StringP("stats", "s", "", "output path for the statistics file")
	filterCmd.Flags().Float64P("threshold", "t", 0.95, "minimum relative alignment score")
	filterCmd.Flags().BoolP("use-prior", "p", false, "prefer candidates on the prior-assembly chromosome")
	filterCmd.Flags().StringP("mode", "d", "standard", "resolution mode (standard|dbsnp)")

	filterCmd.MarkFlagRequired("mappings")
	filterCmd.MarkFlagRequired("failed")
	filterCmd.MarkFlagRequired("fasta")
	filterCmd.MarkFlagRequired("filtered")
	filterCmd.MarkFlagRequired("stats")

	RootCmd.AddCommand(filterCmd)
}

// bindPolicyFlags binds the resolution settings of the invoked command to
// viper. Bound at PreRun, not init, so commands sharing flag names don't
// clobber each other's bindings.
func bindPolicyFlags(cmd *cobra.Command, args []string) {
	viper.BindPFlag("score-threshold", cmd.Flags().Lookup("threshold"))
	viper.BindPFlag("use-prior-info", cmd.Flags().Lookup("use-prior"))
	viper.BindPFlag("mode", cmd.Flags().Lookup("mode"))
}
