package opatch

import (
	"fmt"
	"io"

	"github.com/oradiff/opatch-diff/internal/inventory"
)

// Fetch acquires inventory text for a source and decodes it into a patch
// set. File sources auto-detect their format; live queries decode with the
// format they requested. The "Reading patches..." progress line goes to w
// as part of the report.
func Fetch(w io.Writer, src Source, runner *Runner) (*inventory.Set, error) {
	switch src.Kind {
	case SourceHome:
		lines, err := runner.Query(src.Path, src.Format, src.CapturePath)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(w, "Reading patches from 'opatch %s' for ORACLE_HOME: %s...\n", src.Format, src.Path)
		return inventory.Decode(lines, src.Format, src.Path)

	default:
		lines, err := ReadLines(src.Path)
		if err != nil {
			return nil, err
		}
		format := inventory.Detect(lines)
		fmt.Fprintf(w, "Reading patches from 'opatch %s' %s...\n", format, src.Path)
		return inventory.Decode(lines, format, src.Path)
	}
}
