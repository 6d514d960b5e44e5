package remap

import "fmt"

// MalformedRecordError reports a line that could not be parsed from one of
// the tab-separated input files. The run is aborted rather than letting a
// short line leak undefined values into the statistics.
type MalformedRecordError struct {
	// File is the path of the offending input file
	File string

	// Line is the 1-based line number
	Line int

	// Fields is the number of fields found on the line
	Fields int

	// Want is the number of fields expected
	Want int

	cause error
}

func (e *MalformedRecordError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("malformed record at %s:%d: %v", e.File, e.Line, e.cause)
	}
	return fmt.Sprintf("malformed record at %s:%d: %d fields, expected %d", e.File, e.Line, e.Fields, e.Want)
}

func (e *MalformedRecordError) Unwrap() error { return e.cause }

// JoinConsistencyError reports a filtered-mapping row that cannot be joined:
// either its variation feature has no attribute record or its chromosome
// name has no seq region id. The load-ready file cannot be produced for the
// shard, so the join fails outright.
type JoinConsistencyError struct {
	// QueryName of the filtered-mapping row
	QueryName string

	// VFID is the variation feature id decoded from the query name
	VFID string

	// Chrom is set when the failure was a seq region lookup
	Chrom string
}

func (e *JoinConsistencyError) Error() string {
	if e.Chrom != "" {
		return fmt.Sprintf("no seq region id for chromosome %q (query %s)", e.Chrom, e.QueryName)
	}
	return fmt.Sprintf("no attribute record for variation feature %s (query %s)", e.VFID, e.QueryName)
}
