package scannotate

import "log"

// Config holds the pipeline's file locations and filter cutoff.
type Config struct {
	ClusterReport string
	Reference     string
	Output        string
	MinNTPM       float64
}

// DefaultConfig mirrors the fixed layout of the original analysis run:
// inputs under data/annotation/ relative to the working directory, output
// beside the process.
func DefaultConfig() Config {
	return Config{
		ClusterReport: "data/annotation/integrated_top10_genes_per_cluster.csv",
		Reference:     "data/annotation/rna_single_cell_type.tsv",
		Output:        "genes_per_cluster_w_cell_type.tsv",
		MinNTPM:       1,
	}
}

// Run executes the extract, annotate, and merge stages in sequence and
// writes the export TSV. Any stage failure aborts the run before the output
// file is touched, so a partial file is never left behind. It returns the
// number of rows written.
func Run(cfg Config) (int, error) {
	genes, rows, err := ReadClusterReport(cfg.ClusterReport)
	if err != nil {
		return 0, err
	}
	log.Printf("Extracted %d genes from %s\n", len(genes), cfg.ClusterReport)

	ref, err := LoadReference(cfg.Reference)
	if err != nil {
		return 0, err
	}

	annotations := ref.Annotate(genes, cfg.MinNTPM)
	log.Printf("Annotated %d gene/cell-type pairs at nTPM >= %g\n", len(annotations), cfg.MinNTPM)

	_, export := Merge(rows, annotations)
	if err := WriteTSV(cfg.Output, export); err != nil {
		return 0, err
	}
	log.Printf("Merged %d rows into %s\n", len(export), cfg.Output)

	return len(export), nil
}
