package remap

import (
	"log"
	"os"

	"github.com/shihabdider/ensembl-variation/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Flags contains parsed cobra flags: the input and output paths shared
// between the filter, join and run commands.
type Flags struct {
	// the primary mapping file from the aligner
	mappings string

	// the failed-mapping file from the aligner
	failed string

	// the flanking-sequence FASTA file
	fasta string

	// the filtered mapping file (filter output, join input)
	filtered string

	// the statistics output file
	stats string

	// the attribute dump of the features being remapped
	features string

	// the seq region name to id table
	seqRegions string

	// the load-ready output file
	out string
}

// parseCmdFlags gathers the file paths from a cobra cmd object.
func parseCmdFlags(cmd *cobra.Command) *Flags {
	fs := &Flags{}
	fs.mappings, _ = cmd.Flags().GetString("mappings")
	fs.failed, _ = cmd.Flags().GetString("failed")
	fs.fasta, _ = cmd.Flags().GetString("fasta")
	fs.filtered, _ = cmd.Flags().GetString("filtered")
	fs.stats, _ = cmd.Flags().GetString("stats")
	fs.features, _ = cmd.Flags().GetString("features")
	fs.seqRegions, _ = cmd.Flags().GetString("seq-regions")
	fs.out, _ = cmd.Flags().GetString("out")
	return fs
}

// parseOptions merges cmd flags with viper settings into pipeline Options.
func parseOptions(cmd *cobra.Command) Options {
	fs := parseCmdFlags(cmd)
	c := config.New()

	mode, err := ParseMode(c.Mode)
	if err != nil {
		cmd.Help()
		stderr.Fatal(err)
	}

	return Options{
		Mappings:       fs.mappings,
		Failed:         fs.failed,
		Fasta:          fs.fasta,
		Filtered:       fs.filtered,
		Stats:          fs.stats,
		Features:       fs.features,
		SeqRegions:     fs.seqRegions,
		Out:            fs.out,
		Mode:           mode,
		ScoreThreshold: c.ScoreThreshold,
		UsePriorInfo:   c.UsePriorInfo,
	}
}

// newLogger builds the console logger shared by the commands.
func newLogger() *zap.Logger {
	conf := zap.NewProductionConfig()
	conf.Encoding = "console"
	conf.DisableCaller = true
	conf.OutputPaths = []string{"stderr"}

	logger, err := conf.Build()
	if err != nil {
		stderr.Fatalf("failed to build logger: %v", err)
	}

	return logger
}

// FilterCmd resolves raw alignments into surviving placements and writes
// the filtered mapping and statistics files.
func FilterCmd(cmd *cobra.Command, args []string) {
	opts := parseOptions(cmd)
	logger := newLogger()
	defer logger.Sync()

	stats := &Statistics{}
	if err := stats.PreFilterCounts(opts.Fasta, opts.Mappings, opts.Failed); err != nil {
		stderr.Fatal(err)
	}

	resolver := NewResolver(opts.Mode, opts.ScoreThreshold, opts.UsePriorInfo)
	resolver.SetLogger(logger)
	res, err := resolver.Filter(opts.Mappings, opts.Filtered)
	if err != nil {
		stderr.Fatal(err)
	}

	stats.Merge(res)
	if err := stats.Write(opts.Stats); err != nil {
		stderr.Fatal(err)
	}

	stats.Summary(os.Stdout)
}

// JoinCmd merges a filtered mapping file with the features' attribute
// dump and writes the load-ready file.
func JoinCmd(cmd *cobra.Command, args []string) {
	opts := parseOptions(cmd)
	logger := newLogger()
	defer logger.Sync()

	regions, err := LoadSeqRegions(opts.SeqRegions)
	if err != nil {
		stderr.Fatal(err)
	}

	joiner := NewJoiner(regions)
	joiner.SetLogger(logger)
	if err := joiner.Join(opts.Filtered, opts.Features, opts.Out); err != nil {
		stderr.Fatal(err)
	}
}

// RunCmd executes the full shard pipeline.
func RunCmd(cmd *cobra.Command, args []string) {
	opts := parseOptions(cmd)
	logger := newLogger()
	defer logger.Sync()

	if err := Run(opts, logger); err != nil {
		stderr.Fatal(err)
	}
}

// StatsCmd recomputes and prints the pre-filter counts. Useful for
// checking a shard's inputs before a run.
func StatsCmd(cmd *cobra.Command, args []string) {
	opts := parseOptions(cmd)

	stats := &Statistics{}
	if err := stats.PreFilterCounts(opts.Fasta, opts.Mappings, opts.Failed); err != nil {
		stderr.Fatal(err)
	}

	stats.Summary(os.Stdout)
}
