package remap

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// openInput opens a file for reading, inflating it transparently when the
// path ends in ".gz".
func openInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &gzipReadCloser{gz: gz, file: f}, nil
}

// gzipReadCloser closes both the inflater and the underlying file.
type gzipReadCloser struct {
	gz   *gzip.Reader
	file *os.File
}

func (g *gzipReadCloser) Read(p []byte) (int, error) { return g.gz.Read(p) }

func (g *gzipReadCloser) Close() error {
	if err := g.gz.Close(); err != nil {
		g.file.Close()
		return err
	}
	return g.file.Close()
}

// createOutput creates a file for writing, deflating transparently when the
// path ends in ".gz".
func createOutput(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}

	return &gzipWriteCloser{gz: gzip.NewWriter(f), file: f}, nil
}

type gzipWriteCloser struct {
	gz   *gzip.Writer
	file *os.File
}

func (g *gzipWriteCloser) Write(p []byte) (int, error) { return g.gz.Write(p) }

func (g *gzipWriteCloser) Close() error {
	if err := g.gz.Close(); err != nil {
		g.file.Close()
		return err
	}
	return g.file.Close()
}

// eachLine calls fn with every non-empty line of the file at path, passing
// the 1-based line number. fn returning an error stops the scan.
func eachLine(path string, fn func(lineNo int, line string) error) error {
	r, err := openInput(path)
	if err != nil {
		return err
	}
	defer r.Close()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		if err := fn(lineNo, line); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// countFastaEntries counts the sequence entries (">" header lines) in a
// FASTA file. Sequence lines are ignored.
func countFastaEntries(path string) (count int, err error) {
	err = eachLine(path, func(_ int, line string) error {
		if strings.HasPrefix(line, ">") {
			count++
		}
		return nil
	})
	return
}

// readMappingFile parses every record of a primary mapping file.
func readMappingFile(path string) (records []AlignmentRecord, err error) {
	err = eachLine(path, func(lineNo int, line string) error {
		rec, err := parseMappingLine(path, lineNo, line)
		if err != nil {
			return err
		}
		records = append(records, rec)
		return nil
	})
	return
}

// readFilteredFile parses every row of a filtered mapping file.
func readFilteredFile(path string) (rows []FilteredRow, err error) {
	err = eachLine(path, func(lineNo int, line string) error {
		row, err := parseFilteredLine(path, lineNo, line)
		if err != nil {
			return err
		}
		rows = append(rows, row)
		return nil
	})
	return
}
