package scannotate

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// ReferenceRow is one line of the cell-type reference table
// (rna_single_cell_type.tsv): one gene's normalized expression in one cell
// type. NTPM is kept as the file's literal decimal string so the export
// stage can reformat it without float round-tripping.
type ReferenceRow struct {
	GeneID   string
	Gene     string
	CellType string
	NTPM     string
}

// Annotation pairs a query gene, in the casing it was queried with, with a
// cell type whose expression passed the nTPM cutoff.
type Annotation struct {
	Gene     string
	CellType string
	NTPM     string
}

type refEntry struct {
	row  ReferenceRow
	ntpm float64
}

// Reference is the annotation table indexed by upper-cased gene symbol.
// File order is preserved within each symbol.
type Reference struct {
	index map[string][]refEntry
}

// LoadReference reads the tab-separated reference table at path, discarding
// the header line. Columns are bound by position (gene id, gene symbol, cell
// type, nTPM). A row whose nTPM does not parse as a float is a hard error.
func LoadReference(path string) (*Reference, error) {
	if err := checkDelimiter(path, '\t'); err != nil {
		return nil, err
	}

	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	// Drop the header; column names are not trusted, positions are.
	if i := bytes.IndexByte(fileBytes, '\n'); i >= 0 {
		fileBytes = fileBytes[i+1:]
	} else {
		fileBytes = nil
	}

	// Tell gocsv to use tab as the delimiter
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = '\t'
		r.LazyQuotes = true
		return r
	})

	rows := []*ReferenceRow{}
	if len(bytes.TrimSpace(fileBytes)) > 0 {
		if err := gocsv.UnmarshalWithoutHeaders(bytes.NewReader(fileBytes), &rows); err != nil {
			return nil, pfx.Err(err)
		}
	}

	ref := &Reference{index: make(map[string][]refEntry)}
	for i, row := range rows {
		ntpm, err := strconv.ParseFloat(row.NTPM, 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d (gene %s): unparseable nTPM %q", path, i+2, row.Gene, row.NTPM)
		}

		key := strings.ToUpper(row.Gene)
		ref.index[key] = append(ref.index[key], refEntry{row: *row, ntpm: ntpm})
	}

	return ref, nil
}

// Annotate collects, for each query gene in order, every reference row whose
// symbol matches the gene case-insensitively and whose nTPM is at least
// minNTPM (inclusive). Matches for one gene keep reference-file order. The
// returned annotations carry the query gene's original casing, not the
// reference's.
func (r *Reference) Annotate(genes []string, minNTPM float64) []Annotation {
	out := make([]Annotation, 0)
	for _, gene := range genes {
		for _, entry := range r.index[strings.ToUpper(gene)] {
			if entry.ntpm < minNTPM {
				continue
			}

			out = append(out, Annotation{Gene: gene, CellType: entry.row.CellType, NTPM: entry.row.NTPM})
		}
	}

	return out
}
