// Package remap resolves where variation features land on a new genome
// assembly after their flanking sequence has been re-aligned, and joins
// the surviving placements back onto the features' attribute records.
package remap

import (
	"fmt"
	"strconv"
	"strings"
)

// Locus is a placement on the new assembly.
type Locus struct {
	// Chrom is the seq region (chromosome) name
	Chrom string

	// Start of the placement (1-based, inclusive)
	Start int64

	// End of the placement (1-based, inclusive)
	End int64

	// Strand is 1 or -1
	Strand int
}

// Less orders loci by (chrom, start, end, strand). Used to break exact
// score ties so that re-runs always pick the same winner.
func (l Locus) Less(o Locus) bool {
	if l.Chrom != o.Chrom {
		return l.Chrom < o.Chrom
	}
	if l.Start != o.Start {
		return l.Start < o.Start
	}
	if l.End != o.End {
		return l.End < o.End
	}
	return l.Strand < o.Strand
}

// AlignmentRecord is one candidate placement reported by the aligner.
type AlignmentRecord struct {
	// OldLocus is the feature's locus on the prior assembly. Opaque here
	OldLocus string

	// NewLocus is the candidate placement on the new assembly
	NewLocus Locus

	// QueryName is the composite identifier of the flanking-sequence query
	QueryName string

	// MapWeight is the aligner-reported number of candidate placements
	MapWeight int

	// Cigar of the alignment
	Cigar string

	// Score is the relative alignment score in [0,1], 1.0 = perfect
	Score float64

	// ClipInfo describes soft-clipping of the query
	ClipInfo string
}

// column counts for the two aligner output formats
const (
	mappingColumns = 7
	failedColumns  = 8
)

// parseMappingLine reads one tab-separated line of the primary mapping file:
// old_locus, "chrom start end strand", query_name, map_weight, cigar, score, clip_info.
func parseMappingLine(file string, lineNo int, line string) (AlignmentRecord, error) {
	cols := strings.Split(line, "\t")
	if len(cols) < mappingColumns {
		return AlignmentRecord{}, &MalformedRecordError{File: file, Line: lineNo, Fields: len(cols), Want: mappingColumns}
	}

	return parseRecordColumns(file, lineNo, cols)
}

// parseFailedLine reads one line of the failed-mapping file, which carries a
// leading indel flag ahead of the primary-mapping columns.
func parseFailedLine(file string, lineNo int, line string) (AlignmentRecord, error) {
	cols := strings.Split(line, "\t")
	if len(cols) < failedColumns {
		return AlignmentRecord{}, &MalformedRecordError{File: file, Line: lineNo, Fields: len(cols), Want: failedColumns}
	}

	return parseRecordColumns(file, lineNo, cols[1:])
}

// parseRecordColumns converts the shared 7 column layout into a record.
func parseRecordColumns(file string, lineNo int, cols []string) (AlignmentRecord, error) {
	locus, err := parseLocus(cols[1])
	if err != nil {
		return AlignmentRecord{}, &MalformedRecordError{File: file, Line: lineNo, Fields: len(cols), Want: mappingColumns, cause: err}
	}

	weight, err := strconv.Atoi(cols[3])
	if err != nil {
		return AlignmentRecord{}, &MalformedRecordError{File: file, Line: lineNo, Fields: len(cols), Want: mappingColumns, cause: err}
	}

	score, err := strconv.ParseFloat(cols[5], 64)
	if err != nil {
		return AlignmentRecord{}, &MalformedRecordError{File: file, Line: lineNo, Fields: len(cols), Want: mappingColumns, cause: err}
	}

	return AlignmentRecord{
		OldLocus:  cols[0],
		NewLocus:  locus,
		QueryName: cols[2],
		MapWeight: weight,
		Cigar:     cols[4],
		Score:     score,
		ClipInfo:  cols[6],
	}, nil
}

// parseLocus reads the space-separated "chrom start end strand" column.
func parseLocus(s string) (Locus, error) {
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return Locus{}, fmt.Errorf("expected \"chrom start end strand\", got %q", s)
	}

	start, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return Locus{}, err
	}

	end, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return Locus{}, err
	}

	strand, err := strconv.Atoi(fields[3])
	if err != nil {
		return Locus{}, err
	}

	return Locus{
		Chrom:  fields[0],
		Start:  start,
		End:    end,
		Strand: strand,
	}, nil
}

// FilteredRow is one surviving placement written by the resolver and read
// back by the joiner: query_name, chrom, start, end, strand, score.
type FilteredRow struct {
	QueryName string
	Locus     Locus
	Score     float64
}

const filteredColumns = 6

// String formats the row for the filtered mapping file.
func (f FilteredRow) String() string {
	return strings.Join([]string{
		f.QueryName,
		f.Locus.Chrom,
		strconv.FormatInt(f.Locus.Start, 10),
		strconv.FormatInt(f.Locus.End, 10),
		strconv.Itoa(f.Locus.Strand),
		formatScore(f.Score),
	}, "\t")
}

// parseFilteredLine reads one line of the filtered mapping file.
func parseFilteredLine(file string, lineNo int, line string) (FilteredRow, error) {
	cols := strings.Split(line, "\t")
	if len(cols) < filteredColumns {
		return FilteredRow{}, &MalformedRecordError{File: file, Line: lineNo, Fields: len(cols), Want: filteredColumns}
	}

	start, err := strconv.ParseInt(cols[2], 10, 64)
	if err != nil {
		return FilteredRow{}, &MalformedRecordError{File: file, Line: lineNo, Fields: len(cols), Want: filteredColumns, cause: err}
	}

	end, err := strconv.ParseInt(cols[3], 10, 64)
	if err != nil {
		return FilteredRow{}, &MalformedRecordError{File: file, Line: lineNo, Fields: len(cols), Want: filteredColumns, cause: err}
	}

	strand, err := strconv.Atoi(cols[4])
	if err != nil {
		return FilteredRow{}, &MalformedRecordError{File: file, Line: lineNo, Fields: len(cols), Want: filteredColumns, cause: err}
	}

	score, err := strconv.ParseFloat(cols[5], 64)
	if err != nil {
		return FilteredRow{}, &MalformedRecordError{File: file, Line: lineNo, Fields: len(cols), Want: filteredColumns, cause: err}
	}

	return FilteredRow{
		QueryName: cols[0],
		Locus: Locus{
			Chrom:  cols[1],
			Start:  start,
			End:    end,
			Strand: strand,
		},
		Score: score,
	}, nil
}

// formatScore renders a score without trailing zeros, e.g. 0.95, 1.
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'g', -1, 64)
}
