package remap

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func Test_join(t *testing.T) {
	dir := t.TempDir()

	// feature 100 kept two placements, feature 101 kept one
	filtered := writeTemp(t, "filtered.txt", strings.Join([]string{
		"100-50-1-0-1:5000:5100:1\t1\t5000\t5100\t1\t0.97",
		"100-50-1-0-1:5000:5100:1\t1\t8000\t8100\t1\t0.95",
		"101-50-1-0-2:9000:9100:1\t2\t9000\t9100\t-1\t1",
	}, "\n")+"\n")

	features := writeTemp(t, "features.txt", strings.Join([]string{
		"variation_feature_id=100\tvariation_name=rs100\tseq_region_name=1\tallele_string=A/T",
		"variation_feature_id=101\tvariation_name=rs101\tseq_region_name=2\tallele_string=C/G",
	}, "\n")+"\n")

	out := filepath.Join(dir, "load.txt")

	joiner := NewJoiner(SeqRegionMap{"1": 2034, "2": 2035})
	if err := joiner.Join(filtered, features, out); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d load-ready rows, want 3", len(lines))
	}

	// field order: alignment_quality, allele_string, map_weight,
	// seq_region_end, seq_region_id, seq_region_start, seq_region_strand,
	// variation_feature_id_old, variation_name
	wantFirst := "0.97\tA/T\t2\t5100\t2034\t5000\t1\t100\trs100"
	if lines[0] != wantFirst {
		t.Errorf("row 0 = %q, want %q", lines[0], wantFirst)
	}

	wantThird := "1\tC/G\t1\t9100\t2035\t9000\t-1\t101\trs101"
	if lines[2] != wantThird {
		t.Errorf("row 2 = %q, want %q", lines[2], wantThird)
	}

	// map_weight equals the number of filtered rows sharing the query name
	for i, line := range lines[:2] {
		cols := strings.Split(line, "\t")
		if cols[2] != "2" {
			t.Errorf("row %d map_weight = %v, want 2", i, cols[2])
		}
	}
}

func Test_join_missingFeature(t *testing.T) {
	dir := t.TempDir()

	filtered := writeTemp(t, "filtered.txt", "999-50\t1\t5000\t5100\t1\t0.97\n")
	features := writeTemp(t, "features.txt", "variation_feature_id=100\tvariation_name=rs100\n")

	joiner := NewJoiner(SeqRegionMap{"1": 2034})
	err := joiner.Join(filtered, features, filepath.Join(dir, "load.txt"))

	var consistency *JoinConsistencyError
	if !errors.As(err, &consistency) {
		t.Fatalf("Join() error = %v, want *JoinConsistencyError", err)
	}
	if consistency.VFID != "999" {
		t.Errorf("JoinConsistencyError.VFID = %v, want 999", consistency.VFID)
	}
}

func Test_join_unknownChromosome(t *testing.T) {
	dir := t.TempDir()

	filtered := writeTemp(t, "filtered.txt", "100-50\tUn_gl000220\t5000\t5100\t1\t0.97\n")
	features := writeTemp(t, "features.txt", "variation_feature_id=100\tvariation_name=rs100\n")

	joiner := NewJoiner(SeqRegionMap{"1": 2034})
	err := joiner.Join(filtered, features, filepath.Join(dir, "load.txt"))

	var consistency *JoinConsistencyError
	if !errors.As(err, &consistency) {
		t.Fatalf("Join() error = %v, want *JoinConsistencyError", err)
	}
	if consistency.Chrom != "Un_gl000220" {
		t.Errorf("JoinConsistencyError.Chrom = %v, want Un_gl000220", consistency.Chrom)
	}
}
