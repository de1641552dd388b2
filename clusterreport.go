// Package scannotate labels the marker genes of single-cell clusters with the
// cell types in which they are expressed. Gene annotations come from the
// Human Protein Atlas single-cell reference (https://www.proteinatlas.org/).
package scannotate

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/carbocation/pfx"
)

// Column positions within the cluster report, the top-N marker-gene table
// exported by the upstream Seurat integration step.
const (
	PValueAdjusted = 5
	ClusterID      = 6
	GeneSymbol     = 7
)

const minClusterFields = GeneSymbol + 1

// ReadClusterReport parses the comma-separated cluster report at path,
// discarding the first (header) line. It returns the gene symbol of every
// remaining row, in file order, along with the full rows. The surrounding
// double-quote pair is removed from every quote-wrapped field here, once, so
// later stages see normalized fields.
//
// Splitting is a plain split on commas, not RFC 4180 parsing: a quoted field
// containing a comma splits in two, which is the upstream pipeline's
// behavior for this report.
func ReadClusterReport(path string) (genes []string, rows [][]string, err error) {
	if err := checkDelimiter(path, ','); err != nil {
		return nil, nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, pfx.Err(err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	var lineNum int
	for scanner.Scan() {
		lineNum++
		if lineNum == 1 {
			// Header
			continue
		}

		fields := strings.Split(strings.TrimSuffix(scanner.Text(), "\r"), ",")
		if len(fields) < minClusterFields {
			return nil, nil, fmt.Errorf("%s line %d: got %d fields, need at least %d", path, lineNum, len(fields), minClusterFields)
		}

		for i, field := range fields {
			fields[i] = stripQuotes(field)
		}

		genes = append(genes, fields[GeneSymbol])
		rows = append(rows, fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, pfx.Err(err)
	}

	return genes, rows, nil
}

// stripQuotes removes the outer double-quote pair from a field, if present.
// Inner quotes are left alone.
func stripQuotes(field string) string {
	if len(field) >= 2 && strings.HasPrefix(field, `"`) && strings.HasSuffix(field, `"`) {
		return field[1 : len(field)-1]
	}

	return field
}
