package scannotate

import (
	"reflect"
	"strings"
	"testing"
)

func TestAnnotate(t *testing.T) {
	content := strings.Join([]string{
		"Gene\tGene name\tCell type\tnTPM",
		"ENSG00000012048\tbrca1\tT-cell\t2.5",
		"ENSG00000012048\tbrca1\tB-cell\t0.4",
		"ENSG00000012048\tbrca1\tNK-cell\t1.0",
		"ENSG00000141510\tTP53\tHepatocyte\t7.1",
	}, "\n") + "\n"

	ref, err := LoadReference(writeFixture(t, "ref.tsv", content))
	if err != nil {
		t.Fatal(err)
	}

	// The lookup is case-insensitive, the threshold inclusive, and the
	// returned gene keeps the query's casing, not the reference's.
	got := ref.Annotate([]string{"BRCA1"}, 1)
	want := []Annotation{
		{Gene: "BRCA1", CellType: "T-cell", NTPM: "2.5"},
		{Gene: "BRCA1", CellType: "NK-cell", NTPM: "1.0"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Annotate = %+v, want %+v", got, want)
	}
}

func TestAnnotateOrder(t *testing.T) {
	content := strings.Join([]string{
		"Gene\tGene name\tCell type\tnTPM",
		"ENSG1\tBRCA1\tT-cell\t2.5",
		"ENSG2\tTP53\tHepatocyte\t7.1",
	}, "\n") + "\n"

	ref, err := LoadReference(writeFixture(t, "ref.tsv", content))
	if err != nil {
		t.Fatal(err)
	}

	// Output follows query order, not reference-file order.
	got := ref.Annotate([]string{"TP53", "BRCA1"}, 1)
	want := []Annotation{
		{Gene: "TP53", CellType: "Hepatocyte", NTPM: "7.1"},
		{Gene: "BRCA1", CellType: "T-cell", NTPM: "2.5"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Annotate = %+v, want %+v", got, want)
	}
}

func TestAnnotateThreshold(t *testing.T) {
	content := strings.Join([]string{
		"Gene\tGene name\tCell type\tnTPM",
		"ENSG1\tBRCA1\tT-cell\t2.5",
		"ENSG1\tBRCA1\tB-cell\t5.0",
	}, "\n") + "\n"

	ref, err := LoadReference(writeFixture(t, "ref.tsv", content))
	if err != nil {
		t.Fatal(err)
	}

	if got := ref.Annotate([]string{"BRCA1"}, 3); len(got) != 1 || got[0].CellType != "B-cell" {
		t.Fatalf("Annotate at nTPM >= 3 = %+v, want only the B-cell row", got)
	}
}

func TestLoadReferenceBadNTPM(t *testing.T) {
	content := strings.Join([]string{
		"Gene\tGene name\tCell type\tnTPM",
		"ENSG1\tBRCA1\tT-cell\tlots",
	}, "\n") + "\n"

	_, err := LoadReference(writeFixture(t, "ref.tsv", content))
	if err == nil {
		t.Fatal("expected an error for an unparseable nTPM")
	}
	if !strings.Contains(err.Error(), "BRCA1") {
		t.Fatalf("error %q does not identify the offending gene", err)
	}
}

func TestLoadReferenceWrongDelimiter(t *testing.T) {
	// A comma-separated file handed to the tab-separated stage.
	content := "Gene,Gene name,Cell type,nTPM\nENSG1,BRCA1,T-cell,2.5\n"

	if _, err := LoadReference(writeFixture(t, "ref.tsv", content)); err == nil {
		t.Fatal("expected a delimiter mismatch error")
	}
}
