package remap

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// perfectScore is the score of an exact alignment. When the best candidate
// of a group is perfect, only perfect placements are allowed to survive,
// whatever the configured threshold.
const perfectScore = 1.0

// candidate is one placement competing for a variation feature.
type candidate struct {
	locus     Locus
	queryName string
	score     float64
}

// Resolution tallies how each variation feature was classified.
type Resolution struct {
	// Failed features have no surviving placement
	Failed int

	// Unique features have exactly one surviving placement
	Unique int

	// Multi features have more than one surviving placement
	Multi int
}

// Resolver decides, per variation feature, which of its candidate
// placements on the new assembly survive.
type Resolver struct {
	mode      Mode
	threshold float64
	usePrior  bool
	logger    *zap.Logger
}

// NewResolver creates a resolver for the given mode. threshold is the
// minimum relative alignment score; usePrior restricts ambiguous features
// to candidates on their prior-assembly chromosome (standard mode only).
func NewResolver(mode Mode, threshold float64, usePrior bool) *Resolver {
	return &Resolver{
		mode:      mode,
		threshold: threshold,
		usePrior:  usePrior,
		logger:    zap.NewNop(),
	}
}

// SetLogger sets the logger for per-pass progress messages.
func (r *Resolver) SetLogger(l *zap.Logger) {
	r.logger = l
}

// Filter reads the primary mapping file, resolves every feature's
// placements and writes the survivors to outPath.
func (r *Resolver) Filter(mappingPath, outPath string) (Resolution, error) {
	records, err := readMappingFile(mappingPath)
	if err != nil {
		return Resolution{}, err
	}

	rows, res, err := r.resolve(records)
	if err != nil {
		return Resolution{}, err
	}

	out, err := createOutput(outPath)
	if err != nil {
		return Resolution{}, err
	}

	for _, row := range rows {
		if _, err := fmt.Fprintln(out, row.String()); err != nil {
			out.Close()
			return Resolution{}, err
		}
	}
	if err := out.Close(); err != nil {
		return Resolution{}, err
	}

	r.logger.Info("filtered mappings",
		zap.String("mode", string(r.mode)),
		zap.Int("records", len(records)),
		zap.Int("kept", len(rows)),
		zap.Int("unique", res.Unique),
		zap.Int("multi", res.Multi),
		zap.Int("failed", res.Failed),
	)

	return res, nil
}

// resolve dispatches on the resolution mode.
func (r *Resolver) resolve(records []AlignmentRecord) ([]FilteredRow, Resolution, error) {
	if r.mode == ModeDBSNP {
		return r.resolveDBSNP(records)
	}
	return r.resolveStandard(records)
}

// resolveStandard keeps unambiguous records that clear the threshold and
// runs ambiguity resolution per query name on the rest.
func (r *Resolver) resolveStandard(records []AlignmentRecord) (rows []FilteredRow, res Resolution, err error) {
	all := make(map[string][]candidate)
	sameChrom := make(map[string][]candidate)
	var order []string // first-seen order of ambiguous query names

	for _, rec := range records {
		if rec.MapWeight == 1 {
			if rec.Score >= r.threshold {
				res.Unique++
				rows = append(rows, FilteredRow{QueryName: rec.QueryName, Locus: rec.NewLocus, Score: rec.Score})
			} else {
				res.Failed++
			}
			continue
		}

		if _, seen := all[rec.QueryName]; !seen {
			order = append(order, rec.QueryName)
		}
		c := candidate{locus: rec.NewLocus, queryName: rec.QueryName, score: rec.Score}
		all[rec.QueryName] = append(all[rec.QueryName], c)

		if r.usePrior {
			key, err := decodeStandardKey(rec.QueryName)
			if err != nil {
				return nil, Resolution{}, err
			}
			if rec.NewLocus.Chrom == key.PriorChrom {
				sameChrom[rec.QueryName] = append(sameChrom[rec.QueryName], c)
			}
		}
	}

	working := all
	if r.usePrior {
		working = sameChrom
		// features whose candidates all sit on other chromosomes
		res.Failed += len(all) - len(sameChrom)
	}

	for _, name := range order {
		cands, ok := working[name]
		if !ok {
			continue // no same-chromosome candidate, counted above
		}

		kept := survivors(cands, r.threshold)
		switch len(kept) {
		case 0:
			res.Failed++
		case 1:
			res.Unique++
		default:
			res.Multi++
		}
		for _, c := range kept {
			rows = append(rows, FilteredRow{QueryName: name, Locus: c.locus, Score: c.score})
		}
	}

	return rows, res, nil
}

// resolveDBSNP groups candidates by feature id across their alternate
// representations, deduplicates coordinate-identical placements, then
// applies the same threshold rules as standard mode.
func (r *Resolver) resolveDBSNP(records []AlignmentRecord) (rows []FilteredRow, res Resolution, err error) {
	byVF := make(map[string][]candidate)
	var order []string // first-seen order of feature ids

	for _, rec := range records {
		key, err := decodeDBSNPKey(rec.QueryName)
		if err != nil {
			return nil, Resolution{}, err
		}
		if _, seen := byVF[key.VFID]; !seen {
			order = append(order, key.VFID)
		}
		byVF[key.VFID] = append(byVF[key.VFID], candidate{
			locus:     rec.NewLocus,
			queryName: rec.QueryName,
			score:     rec.Score,
		})
	}

	for _, vf := range order {
		// per coordinate, keep the best-scoring representation
		winners := make(map[Locus]candidate)
		for _, c := range byVF[vf] {
			w, ok := winners[c.locus]
			if !ok || c.score > w.score || (c.score == w.score && c.queryName < w.queryName) {
				winners[c.locus] = c
			}
		}

		var passed []candidate
		for _, c := range winners {
			if c.score >= r.threshold {
				passed = append(passed, c)
			}
		}
		if len(passed) == 0 {
			res.Failed++
			continue
		}

		kept := survivors(passed, r.threshold)
		switch len(kept) {
		case 0:
			res.Failed++
		case 1:
			res.Unique++
		default:
			res.Multi++
		}
		for _, c := range kept {
			rows = append(rows, FilteredRow{QueryName: c.queryName, Locus: c.locus, Score: c.score})
		}
	}

	return rows, res, nil
}

// survivors sorts candidates best-first and keeps those clearing the
// effective threshold: the configured one, raised to 1.0 when the best
// candidate is a perfect match.
func survivors(cands []candidate, threshold float64) []candidate {
	sortCandidates(cands)

	effective := threshold
	if cands[0].score == perfectScore {
		effective = perfectScore
	}

	var kept []candidate
	for _, c := range cands {
		if c.score >= effective {
			kept = append(kept, c)
		}
	}

	return kept
}

// sortCandidates orders by score descending. Exact score ties are broken
// by locus, then query name, so re-runs always emit the same rows in the
// same order.
func sortCandidates(cands []candidate) {
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].score != cands[j].score {
			return cands[i].score > cands[j].score
		}
		if cands[i].locus != cands[j].locus {
			return cands[i].locus.Less(cands[j].locus)
		}
		return cands[i].queryName < cands[j].queryName
	})
}
