package remap

import (
	"strconv"
	"strings"
)

// SeqRegionResolver translates a chromosome name into the persistent seq
// region id it has on the new assembly. The concrete source (a core
// database dump, a registry) is an external concern; the joiner only needs
// lookups.
type SeqRegionResolver interface {
	Resolve(name string) (id int64, ok bool)
}

// SeqRegionMap is a SeqRegionResolver backed by an in-memory table.
type SeqRegionMap map[string]int64

// Resolve looks the name up in the table.
func (m SeqRegionMap) Resolve(name string) (int64, bool) {
	id, ok := m[name]
	return id, ok
}

const seqRegionColumns = 2

// LoadSeqRegions reads a two-column tab-separated file of seq region name
// and id, as dumped from the new assembly's core database.
func LoadSeqRegions(path string) (SeqRegionMap, error) {
	regions := make(SeqRegionMap)

	err := eachLine(path, func(lineNo int, line string) error {
		cols := strings.Split(line, "\t")
		if len(cols) < seqRegionColumns {
			return &MalformedRecordError{File: path, Line: lineNo, Fields: len(cols), Want: seqRegionColumns}
		}

		id, err := strconv.ParseInt(cols[1], 10, 64)
		if err != nil {
			return &MalformedRecordError{File: path, Line: lineNo, Fields: len(cols), Want: seqRegionColumns, cause: err}
		}

		regions[cols[0]] = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return regions, nil
}
