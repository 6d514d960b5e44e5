package remap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTemp writes a test input file and returns its path.
func writeTemp(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func Test_statisticsString(t *testing.T) {
	s := &Statistics{
		InputIDs:    100,
		PreMapped:   90,
		PreUnmapped: 10,
		Failed:      5,
		UniqueMap:   80,
		MultiMap:    5,
	}

	want := strings.Join([]string{
		"count_input_ids=100",
		"pre_count_mapped=90",
		"pre_count_unmapped=10",
		"stats_failed=5",
		"stats_unique_map=80",
		"stats_multi_map=5",
	}, "\n") + "\n"

	if got := s.String(); got != want {
		t.Errorf("Statistics.String() = %q, want %q", got, want)
	}
}

func Test_preFilterCounts(t *testing.T) {
	fasta := writeTemp(t, "flank.fa", ">100-50\nACGTACGT\nACGT\n>101-50\nTTTT\n>102-50\nGGGG\n")

	// 100-50 appears twice in the primary file: counted once
	mappings := writeTemp(t, "mappings.txt", strings.Join([]string{
		"old\t1 100 200 1\t100-50\t2\t101M\t0.95\t-",
		"old\t2 300 400 1\t100-50\t2\t101M\t0.90\t-",
		"old\t3 500 600 1\t101-50\t1\t101M\t0.99\t-",
	}, "\n")+"\n")

	// 101-50 also failed somewhere, but it mapped: only 102-50 is unmapped
	failed := writeTemp(t, "failed.txt", strings.Join([]string{
		"0\told\t3 500 600 1\t101-50\t1\t101M\t0.2\t-",
		"1\told\t9 100 110 1\t102-50\t1\t101M\t0.1\t-",
	}, "\n")+"\n")

	s := &Statistics{}
	if err := s.PreFilterCounts(fasta, mappings, failed); err != nil {
		t.Fatal(err)
	}

	if s.InputIDs != 3 {
		t.Errorf("InputIDs = %d, want 3", s.InputIDs)
	}
	if s.PreMapped != 2 {
		t.Errorf("PreMapped = %d, want 2", s.PreMapped)
	}
	if s.PreUnmapped != 1 {
		t.Errorf("PreUnmapped = %d, want 1", s.PreUnmapped)
	}
}

func Test_statisticsMerge(t *testing.T) {
	s := &Statistics{InputIDs: 10, PreMapped: 8, PreUnmapped: 2}
	s.Merge(Resolution{Failed: 1, Unique: 6, Multi: 1})

	if s.Failed != 1 || s.UniqueMap != 6 || s.MultiMap != 1 {
		t.Errorf("Merge() = %+v, want failed 1, unique 6, multi 1", s)
	}
	if s.InputIDs != 10 || s.PreMapped != 8 || s.PreUnmapped != 2 {
		t.Errorf("Merge() clobbered the pre-filter counts: %+v", s)
	}
}

func Test_statisticsWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.txt")

	s := &Statistics{InputIDs: 1, PreMapped: 1, UniqueMap: 1}
	if err := s.Write(path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != s.String() {
		t.Errorf("written stats = %q, want %q", string(data), s.String())
	}
}
