package scannotate

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/carbocation/pfx"
)

// Merge joins annotations back onto the cluster rows. The join is exact,
// case-sensitive string equality between the row's gene column and the
// annotation's gene — unlike the case-insensitive annotation lookup. The
// asymmetry reproduces the upstream pipeline's observed behavior and is kept
// deliberately: a cluster file whose casing differs from the query casing
// stored in the annotation simply does not join.
//
// Every matching (row, annotation) pair yields one output row, so a gene
// appearing in two clusters with three qualifying cell types produces six
// rows. Both inputs are walked in order, rows outermost.
//
// Two row sets are returned: merged keeps nTPM as a dot-decimal string;
// export has the decimal points replaced by commas so spreadsheet imports in
// comma-decimal locales read the column as numeric. Strings without a dot
// pass through unchanged.
func Merge(rows [][]string, annotations []Annotation) (merged, export [][]string) {
	merged = make([][]string, 0)
	export = make([][]string, 0)

	for _, row := range rows {
		for _, a := range annotations {
			if row[GeneSymbol] != a.Gene {
				continue
			}

			merged = append(merged, []string{row[ClusterID], row[GeneSymbol], row[PValueAdjusted], a.CellType, a.NTPM})
			export = append(export, []string{row[ClusterID], row[GeneSymbol], row[PValueAdjusted], a.CellType, strings.ReplaceAll(a.NTPM, ".", ",")})
		}
	}

	return merged, export
}

// WriteTSV writes rows to path as tab-separated lines with no header row.
// An existing file at path is replaced.
func WriteTSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return pfx.Err(err)
	}

	if err := f.Close(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
