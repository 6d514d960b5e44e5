package remap

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"
)

// Joiner merges resolved placements with the features' original attribute
// records to produce rows ready to load into the new assembly's
// variation_feature table.
type Joiner struct {
	regions SeqRegionResolver
	logger  *zap.Logger
}

// NewJoiner creates a joiner that resolves chromosome names through
// regions.
func NewJoiner(regions SeqRegionResolver) *Joiner {
	return &Joiner{
		regions: regions,
		logger:  zap.NewNop(),
	}
}

// SetLogger sets the logger for per-pass progress messages.
func (j *Joiner) SetLogger(l *zap.Logger) {
	j.logger = l
}

// Join reads the filtered mapping file and the attribute dump and writes
// the load-ready file. The filtered file is scanned twice: once to count
// each query name's surviving placements (the new map_weight), once to
// join row by row.
func (j *Joiner) Join(filteredPath, featuresPath, outPath string) error {
	features, err := loadFeatures(featuresPath)
	if err != nil {
		return err
	}

	rows, err := readFilteredFile(filteredPath)
	if err != nil {
		return err
	}

	// post-filter map_weight can be lower than the aligner reported
	weights := make(map[string]int)
	for _, row := range rows {
		weights[row.QueryName]++
	}

	out, err := createOutput(outPath)
	if err != nil {
		return err
	}

	written := 0
	for _, row := range rows {
		vfID := featureID(row.QueryName)
		rec, ok := features[vfID]
		if !ok {
			out.Close()
			return &JoinConsistencyError{QueryName: row.QueryName, VFID: vfID}
		}

		regionID, ok := j.regions.Resolve(row.Locus.Chrom)
		if !ok {
			out.Close()
			return &JoinConsistencyError{QueryName: row.QueryName, VFID: vfID, Chrom: row.Locus.Chrom}
		}

		rec.Set(fieldRegionID, strconv.FormatInt(regionID, 10))
		rec.Set(fieldStart, strconv.FormatInt(row.Locus.Start, 10))
		rec.Set(fieldEnd, strconv.FormatInt(row.Locus.End, 10))
		rec.Set(fieldStrand, strconv.Itoa(row.Locus.Strand))
		rec.Set(fieldQuality, formatScore(row.Score))
		rec.Set(fieldMapWeight, strconv.Itoa(weights[row.QueryName]))
		rec.Rename(fieldVFID, fieldVFIDOld)
		rec.Delete(fieldRegionName)

		if _, err := fmt.Fprintln(out, rec.Row()); err != nil {
			out.Close()
			return err
		}
		written++
	}

	if err := out.Close(); err != nil {
		return err
	}

	j.logger.Info("joined features",
		zap.Int("placements", len(rows)),
		zap.Int("features", len(features)),
		zap.Int("written", written),
	)

	return nil
}

// loadFeatures indexes the attribute dump by variation_feature_id.
func loadFeatures(path string) (map[string]*FeatureRecord, error) {
	features := make(map[string]*FeatureRecord)

	err := eachLine(path, func(lineNo int, line string) error {
		rec, err := parseFeatureLine(path, lineNo, line)
		if err != nil {
			return err
		}
		id, _ := rec.Get(fieldVFID)
		features[id] = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	return features, nil
}
