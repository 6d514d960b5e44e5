package remap

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects how query names are decoded and how ambiguous placements
// are grouped during resolution.
type Mode string

const (
	// ModeStandard treats every query name as one variation feature
	ModeStandard Mode = "standard"

	// ModeDBSNP treats query names sharing a feature id as alternate
	// representations (e.g. allele encodings) of the same variant
	ModeDBSNP Mode = "dbsnp"
)

// ParseMode validates a mode string from the CLI or settings file.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeStandard, ModeDBSNP:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q: expected %q or %q", s, ModeStandard, ModeDBSNP)
}

// QueryKey is the decoded structure of a query name. It is parsed once at
// ingestion; nothing downstream re-splits the raw string.
type QueryKey struct {
	// VFID is the variation feature id, the grouping key in dbSNP mode
	VFID string

	// Version distinguishes alternate representations (dbSNP mode only)
	Version int

	// PriorChrom is the chromosome of the feature's locus on the prior
	// assembly (standard mode only)
	PriorChrom string

	// Allele, AlleleString and RSID are carried for dbSNP-mode queries
	Allele       string
	AlleleString string
	RSID         string
}

// hintSegment is the dash-delimited segment that carries either the prior
// chromosome hint (standard) or the allele fields (dbSNP).
const hintSegment = 4

// decodeStandardKey parses "<vf_id>-...-<chrom:...>" query names.
func decodeStandardKey(queryName string) (QueryKey, error) {
	segs := strings.Split(queryName, "-")

	if _, err := strconv.ParseInt(segs[0], 10, 64); err != nil {
		return QueryKey{}, fmt.Errorf("query name %q: leading segment is not a feature id: %v", queryName, err)
	}

	key := QueryKey{VFID: segs[0]}
	if len(segs) > hintSegment {
		key.PriorChrom = strings.SplitN(segs[hintSegment], ":", 2)[0]
	}

	return key, nil
}

// decodeDBSNPKey parses "<vf_id>.<version>-...-<allele:allele_string:rsid>"
// query names.
func decodeDBSNPKey(queryName string) (QueryKey, error) {
	segs := strings.Split(queryName, "-")

	id, version, found := strings.Cut(segs[0], ".")
	if !found {
		return QueryKey{}, fmt.Errorf("query name %q: leading segment %q is not <vf_id>.<version>", queryName, segs[0])
	}

	v, err := strconv.Atoi(version)
	if err != nil {
		return QueryKey{}, fmt.Errorf("query name %q: bad version %q: %v", queryName, version, err)
	}

	key := QueryKey{VFID: id, Version: v}
	if len(segs) > hintSegment {
		alleleFields := strings.SplitN(segs[hintSegment], ":", 3)
		key.Allele = alleleFields[0]
		if len(alleleFields) > 1 {
			key.AlleleString = alleleFields[1]
		}
		if len(alleleFields) > 2 {
			key.RSID = alleleFields[2]
		}
	}

	return key, nil
}

// decodeKey dispatches on the resolution mode.
func decodeKey(mode Mode, queryName string) (QueryKey, error) {
	if mode == ModeDBSNP {
		return decodeDBSNPKey(queryName)
	}
	return decodeStandardKey(queryName)
}

// featureID extracts the variation feature id from a query name without a
// full decode: the leading dash-delimited component, with any ".version"
// suffix trimmed so that dbSNP-mode rows key the same attribute records.
func featureID(queryName string) string {
	lead, _, _ := strings.Cut(queryName, "-")
	id, _, _ := strings.Cut(lead, ".")
	return id
}
