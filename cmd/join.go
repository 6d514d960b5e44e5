package cmd

import (
	"github.com/shihabdider/ensembl-variation/internal/remap"
	"github.com/spf13/cobra"
)

// joinCmd merges surviving placements with the attribute dump.
var joinCmd = &cobra.Command{
	Use:                        "join",
	Short:                      "Join surviving placements onto the feature attribute records",
	Run:                        remap.JoinCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Join a filtered mapping file onto the features' attribute dump.

Each surviving placement is merged into its feature's attribute record:
the new coordinates, the seq region id for the placement's chromosome,
the alignment quality and the post-filter map weight. Writes one
load-ready row per surviving placement.`,
}

// set flags
func init() {
	joinCmd.Flags().StringP("filtered", "i", "", "path to the filtered mapping file")
	joinCmd.Flags().StringP("features", "a", "", "path to the feature attribute dump")
	joinCmd.Flags().StringP("seq-regions", "r", "", "path to the seq region name/id table")
	joinCmd.Flags().StringP("out", "o", "", "output path for the load-ready file")

	joinCmd.MarkFlagRequired("filtered")
	joinCmd.MarkFlagRequired("features")
	joinCmd.MarkFlagRequired("seq-regions")
	joinCmd.MarkFlagRequired("out")

	RootCmd.AddCommand(joinCmd)
}
