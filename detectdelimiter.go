package scannotate

import (
	"fmt"
	"os"

	"github.com/carbocation/pfx"
	"github.com/csimplestring/go-csv/detector"
)

// checkDelimiter sniffs the file at path and returns an error if its content
// is confidently delimited by something other than want. This catches the
// easy mistake of handing the tab-separated reference to the comma-separated
// cluster stage (or vice versa) before a misparsed row turns into a confusing
// field-count error. Content too ambiguous to sniff (e.g., a single-column
// file) passes.
func checkDelimiter(path string, want rune) error {
	f, err := os.Open(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	candidates := detector.New().DetectDelimiter(f, '"')
	if len(candidates) == 0 {
		return nil
	}

	for _, candidate := range candidates {
		if rune(candidate[0]) == want {
			return nil
		}
	}

	return fmt.Errorf("%s: expected %q-delimited input, but the content looks %q-delimited", path, want, rune(candidates[0][0]))
}
