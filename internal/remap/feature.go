package remap

import (
	"sort"
	"strings"
)

// field names the joiner reads, writes or removes on a FeatureRecord
const (
	fieldVFID       = "variation_feature_id"
	fieldVFIDOld    = "variation_feature_id_old"
	fieldRegionID   = "seq_region_id"
	fieldRegionName = "seq_region_name"
	fieldStart      = "seq_region_start"
	fieldEnd        = "seq_region_end"
	fieldStrand     = "seq_region_strand"
	fieldQuality    = "alignment_quality"
	fieldMapWeight  = "map_weight"
)

// FeatureRecord is one variation feature's attribute record: an open set
// of key=value fields around the required variation_feature_id. Values
// stay strings; this core only rewrites the coordinate fields.
type FeatureRecord struct {
	fields map[string]string
}

// parseFeatureLine reads one attribute-dump line of tab-separated
// key=value fields.
func parseFeatureLine(file string, lineNo int, line string) (*FeatureRecord, error) {
	fields := make(map[string]string)
	for _, col := range strings.Split(line, "\t") {
		key, value, found := strings.Cut(col, "=")
		if !found {
			return nil, &MalformedRecordError{File: file, Line: lineNo, Fields: len(fields), Want: 1}
		}
		fields[key] = value
	}

	if _, ok := fields[fieldVFID]; !ok {
		return nil, &MalformedRecordError{File: file, Line: lineNo, Fields: len(fields), Want: 1}
	}

	return &FeatureRecord{fields: fields}, nil
}

// Get returns a field's value and whether it is present.
func (f *FeatureRecord) Get(key string) (string, bool) {
	v, ok := f.fields[key]
	return v, ok
}

// Set stores a field.
func (f *FeatureRecord) Set(key, value string) {
	f.fields[key] = value
}

// Rename moves a field's value to a new key. A no-op when from is absent.
func (f *FeatureRecord) Rename(from, to string) {
	if v, ok := f.fields[from]; ok {
		f.fields[to] = v
		delete(f.fields, from)
	}
}

// Delete removes a field.
func (f *FeatureRecord) Delete(key string) {
	delete(f.fields, key)
}

// Row renders the record for the load-ready file: the values of every
// field, ordered by field name, tab-joined.
func (f *FeatureRecord) Row() string {
	keys := make([]string, 0, len(f.fields))
	for k := range f.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make([]string, len(keys))
	for i, k := range keys {
		values[i] = f.fields[k]
	}

	return strings.Join(values, "\t")
}
