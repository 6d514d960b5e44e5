package remap

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Statistics holds the pipeline counters for one shard. They are written
// once at the end of a run and never read back by this core.
type Statistics struct {
	// InputIDs is the number of sequence entries in the input FASTA file
	InputIDs int

	// PreMapped is the number of distinct query names the aligner placed
	PreMapped int

	// PreUnmapped is the number of distinct query names only seen in the
	// failed-mapping file
	PreUnmapped int

	// Failed, UniqueMap and MultiMap are filled in from the resolver
	Failed    int
	UniqueMap int
	MultiMap  int
}

// Merge folds the resolver's classification counts into the statistics.
func (s *Statistics) Merge(res Resolution) {
	s.Failed = res.Failed
	s.UniqueMap = res.Unique
	s.MultiMap = res.Multi
}

// String serializes the counters as name=value lines. The field order is
// fixed; downstream report scripts index into it.
func (s *Statistics) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "count_input_ids=%d\n", s.InputIDs)
	fmt.Fprintf(&b, "pre_count_mapped=%d\n", s.PreMapped)
	fmt.Fprintf(&b, "pre_count_unmapped=%d\n", s.PreUnmapped)
	fmt.Fprintf(&b, "stats_failed=%d\n", s.Failed)
	fmt.Fprintf(&b, "stats_unique_map=%d\n", s.UniqueMap)
	fmt.Fprintf(&b, "stats_multi_map=%d\n", s.MultiMap)
	return b.String()
}

// Write serializes the counters to the statistics file.
func (s *Statistics) Write(path string) error {
	out, err := createOutput(path)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(out, s.String()); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

// Summary writes a human-readable counter table, for the console.
func (s *Statistics) Summary(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "counter\tvalue\t\n")
	fmt.Fprintf(tw, "input ids\t%d\t\n", s.InputIDs)
	fmt.Fprintf(tw, "mapped\t%d\t\n", s.PreMapped)
	fmt.Fprintf(tw, "unmapped\t%d\t\n", s.PreUnmapped)
	fmt.Fprintf(tw, "failed\t%d\t\n", s.Failed)
	fmt.Fprintf(tw, "unique\t%d\t\n", s.UniqueMap)
	fmt.Fprintf(tw, "multi\t%d\t\n", s.MultiMap)
	tw.Flush()
}

// PreFilterCounts fills in the counters that are computed before any
// filtering: the FASTA entry count, the distinct query names in the
// primary mapping file, and the distinct query names only present in the
// failed-mapping file.
func (s *Statistics) PreFilterCounts(fastaPath, mappingPath, failedPath string) error {
	inputIDs, err := countFastaEntries(fastaPath)
	if err != nil {
		return err
	}
	s.InputIDs = inputIDs

	mapped := make(map[string]struct{})
	err = eachLine(mappingPath, func(lineNo int, line string) error {
		rec, err := parseMappingLine(mappingPath, lineNo, line)
		if err != nil {
			return err
		}
		mapped[rec.QueryName] = struct{}{}
		return nil
	})
	if err != nil {
		return err
	}
	s.PreMapped = len(mapped)

	unmapped := make(map[string]struct{})
	err = eachLine(failedPath, func(lineNo int, line string) error {
		rec, err := parseFailedLine(failedPath, lineNo, line)
		if err != nil {
			return err
		}
		if _, ok := mapped[rec.QueryName]; !ok {
			unmapped[rec.QueryName] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.PreUnmapped = len(unmapped)

	return nil
}
