package remap

import (
	"os"

	"go.uber.org/zap"
)

// Options are the file paths and policy knobs for one shard's run. They
// are assembled from CLI flags and viper settings by the cmd package; the
// pipeline itself reads no globals.
type Options struct {
	// Mappings is the primary mapping file from the aligner
	Mappings string

	// Failed is the aligner's failed-mapping file
	Failed string

	// Fasta is the flanking-sequence input file, counted for statistics
	Fasta string

	// Filtered is the output path for surviving placements
	Filtered string

	// Stats is the output path for the pipeline counters
	Stats string

	// Features is the attribute dump of the features being remapped
	Features string

	// SeqRegions is the chromosome name to seq region id table
	SeqRegions string

	// Out is the load-ready output path
	Out string

	// Mode selects standard or dbSNP resolution
	Mode Mode

	// ScoreThreshold is the minimum relative alignment score
	ScoreThreshold float64

	// UsePriorInfo prefers candidates on the prior-assembly chromosome
	UsePriorInfo bool
}

// Run executes the shard pipeline end to end: pre-filter counts, mapping
// resolution, statistics, then the feature join. Each pass reads or
// writes whole files; re-running over the same inputs regenerates
// byte-identical outputs.
func Run(opts Options, logger *zap.Logger) error {
	stats := &Statistics{}
	if err := stats.PreFilterCounts(opts.Fasta, opts.Mappings, opts.Failed); err != nil {
		return err
	}
	logger.Info("pre-filter counts",
		zap.Int("inputIDs", stats.InputIDs),
		zap.Int("mapped", stats.PreMapped),
		zap.Int("unmapped", stats.PreUnmapped),
	)

	resolver := NewResolver(opts.Mode, opts.ScoreThreshold, opts.UsePriorInfo)
	resolver.SetLogger(logger)
	res, err := resolver.Filter(opts.Mappings, opts.Filtered)
	if err != nil {
		return err
	}

	stats.Merge(res)
	if err := stats.Write(opts.Stats); err != nil {
		return err
	}

	regions, err := LoadSeqRegions(opts.SeqRegions)
	if err != nil {
		return err
	}

	joiner := NewJoiner(regions)
	joiner.SetLogger(logger)
	if err := joiner.Join(opts.Filtered, opts.Features, opts.Out); err != nil {
		return err
	}

	stats.Summary(os.Stdout)

	return nil
}
