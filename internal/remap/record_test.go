package remap

import (
	"errors"
	"testing"
)

func Test_parseMappingLine(t *testing.T) {
	type args struct {
		line string
	}
	tests := []struct {
		name    string
		args    args
		want    AlignmentRecord
		wantErr bool
	}{
		{
			"well formed record",
			args{"11:1000-1100\t11 27516916 27517157 1\t577946-120-1-0-11:27516916:27517157:1\t1\t241M\t0.98\tclipped 0"},
			AlignmentRecord{
				OldLocus:  "11:1000-1100",
				NewLocus:  Locus{Chrom: "11", Start: 27516916, End: 27517157, Strand: 1},
				QueryName: "577946-120-1-0-11:27516916:27517157:1",
				MapWeight: 1,
				Cigar:     "241M",
				Score:     0.98,
				ClipInfo:  "clipped 0",
			},
			false,
		},
		{
			"reverse strand",
			args{"7:500-600\t7 100 200 -1\t99-50\t2\t101M\t1.0\t-"},
			AlignmentRecord{
				OldLocus:  "7:500-600",
				NewLocus:  Locus{Chrom: "7", Start: 100, End: 200, Strand: -1},
				QueryName: "99-50",
				MapWeight: 2,
				Cigar:     "101M",
				Score:     1.0,
				ClipInfo:  "-",
			},
			false,
		},
		{
			"too few fields",
			args{"11:1000-1100\t11 27516916 27517157 1\t577946-120"},
			AlignmentRecord{},
			true,
		},
		{
			"bad locus column",
			args{"11:1000-1100\t11 27516916\t577946-120\t1\t241M\t0.98\t-"},
			AlignmentRecord{},
			true,
		},
		{
			"bad score column",
			args{"11:1000-1100\t11 1 2 1\t577946-120\t1\t241M\thigh\t-"},
			AlignmentRecord{},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseMappingLine("test.txt", 1, tt.args.line)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseMappingLine() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var malformed *MalformedRecordError
				if !errors.As(err, &malformed) {
					t.Fatalf("parseMappingLine() error = %T, want *MalformedRecordError", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("parseMappingLine() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func Test_parseFailedLine(t *testing.T) {
	line := "0\t11:1000-1100\t11 27516916 27517157 1\t577946-120\t1\t241M\t0.5\t-"

	got, err := parseFailedLine("failed.txt", 1, line)
	if err != nil {
		t.Fatalf("parseFailedLine() error = %v", err)
	}
	if got.QueryName != "577946-120" {
		t.Errorf("parseFailedLine() QueryName = %v, want 577946-120", got.QueryName)
	}
	if got.Score != 0.5 {
		t.Errorf("parseFailedLine() Score = %v, want 0.5", got.Score)
	}

	// the leading indel flag is required
	if _, err := parseFailedLine("failed.txt", 2, "11:1000-1100\t11 1 2 1\t577946-120\t1\t241M\t0.5\t-"); err == nil {
		t.Error("parseFailedLine() expected error for a line without the indel flag")
	}
}

func Test_filteredRowRoundTrip(t *testing.T) {
	row := FilteredRow{
		QueryName: "577946-120-1-0-11:27516916:27517157:1",
		Locus:     Locus{Chrom: "11", Start: 27516916, End: 27517157, Strand: -1},
		Score:     0.95,
	}

	got, err := parseFilteredLine("filtered.txt", 1, row.String())
	if err != nil {
		t.Fatalf("parseFilteredLine() error = %v", err)
	}
	if got != row {
		t.Errorf("parseFilteredLine(String()) = %+v, want %+v", got, row)
	}
}

func Test_locusLess(t *testing.T) {
	type args struct {
		a Locus
		b Locus
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{
			"chromosome name orders first",
			args{Locus{Chrom: "1", Start: 500}, Locus{Chrom: "2", Start: 1}},
			true,
		},
		{
			"start breaks chromosome ties",
			args{Locus{Chrom: "1", Start: 1}, Locus{Chrom: "1", Start: 2}},
			true,
		},
		{
			"strand orders last",
			args{Locus{Chrom: "1", Start: 1, End: 2, Strand: -1}, Locus{Chrom: "1", Start: 1, End: 2, Strand: 1}},
			true,
		},
		{
			"equal loci",
			args{Locus{Chrom: "1", Start: 1, End: 2, Strand: 1}, Locus{Chrom: "1", Start: 1, End: 2, Strand: 1}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.args.a.Less(tt.args.b); got != tt.want {
				t.Errorf("Locus.Less() = %v, want %v", got, tt.want)
			}
		})
	}
}
