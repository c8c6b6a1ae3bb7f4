// Package csvfile reads and writes expense tables as CSV.
//
// A Table is kept as raw text cells so callers decide how to interpret
// each column; quoting follows RFC 4180 via encoding/csv.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Table is a header row plus data rows.
type Table struct {
	Header []string
	Rows   [][]string
}

var ErrEmptyFile = errors.New("empty csv file")

const bom = "\ufeff"

// Index returns the position of a header column, or -1.
func (t Table) Index(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Missing lists the required columns absent from the header, in the order given.
func (t Table) Missing(required ...string) []string {
	var missing []string
	for _, name := range required {
		if t.Index(name) < 0 {
			missing = append(missing, name)
		}
	}
	return missing
}

// Decode reads a header row followed by data rows.
// Every data row must have as many fields as the header.
func Decode(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Table{}, ErrEmptyFile
	}
	if err != nil {
		return Table{}, fmt.Errorf("read header: %w", err)
	}
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, bom)
		}
		header[i] = strings.TrimSpace(h)
	}

	t := Table{Header: header}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("read row: %w", err)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Encode writes the header and all rows.
func Encode(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	return nil
}

// ReadFile decodes the CSV file at path.
func ReadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()
	return Decode(f)
}

// WriteFile encodes t into path, replacing any existing file.
func WriteFile(path string, t Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return Encode(f, t)
}
