// annotategenes labels each single-cell cluster's marker genes with the cell
// types expressing them, per the Human Protein Atlas single-cell reference,
// and writes the merged table as a spreadsheet-friendly TSV.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/sctools/scannotate"
)

func main() {
	cfg := scannotate.DefaultConfig()

	flag.StringVar(&cfg.ClusterReport, "clusters", cfg.ClusterReport, "Comma-separated cluster report. Column 8 must be the gene symbol, 7 the cluster id, 6 the adjusted p-value.")
	flag.StringVar(&cfg.Reference, "reference", cfg.Reference, "Tab-separated cell-type reference (gene id, gene symbol, cell type, nTPM).")
	flag.StringVar(&cfg.Output, "output", cfg.Output, "Output TSV. An existing file is overwritten.")
	flag.Float64Var(&cfg.MinNTPM, "ntpm", cfg.MinNTPM, "Minimum nTPM for a cell type to count as expressing a gene.")
	flag.Parse()

	fmt.Println("start")

	if _, err := scannotate.Run(cfg); err != nil {
		log.Fatalln(err)
	}

	fmt.Println("end")
}
