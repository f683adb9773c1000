package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/oradiff/opatch-diff/internal/inventory"
)

// ReleaseUpdatePrefix marks the cumulative database version patch in its
// description.
const ReleaseUpdatePrefix = "Database Release Update"

// FindReleaseUpdate returns the first patch, in insertion order, whose
// description marks it as a Database Release Update.
func FindReleaseUpdate(set *inventory.Set) (inventory.Patch, bool) {
	for _, id := range set.IDs() {
		p, _ := set.Get(id)
		if strings.HasPrefix(p.Description, ReleaseUpdatePrefix) {
			return p, true
		}
	}
	return inventory.Patch{}, false
}

// WriteReleaseUpdate prints the single-source release-update section.
func WriteReleaseUpdate(w io.Writer, set *inventory.Set) {
	if set.Len() == 0 {
		return
	}

	fmt.Fprintln(w, "Database Release Update:")
	if ru, ok := FindReleaseUpdate(set); ok {
		fmt.Fprintf(w, "  - %s\n", ru.Description)
	} else {
		fmt.Fprintln(w, "  - No Database Release Update found")
	}
}

// writeReleaseUpdateCheck cross-checks the release updates of two sources.
// Differing versions are a warning, not an error: the comparison below will
// show the patch-level detail either way.
func writeReleaseUpdateCheck(w io.Writer, first, second *inventory.Set) {
	ru1, ok1 := FindReleaseUpdate(first)
	ru2, ok2 := FindReleaseUpdate(second)

	switch {
	case ok1 && ok2 && ru1.Description != ru2.Description:
		fmt.Fprintln(w, "\n ===> WARNING: Database Release Updates differ:")
		fmt.Fprintf(w, "  - First source  => %s\n", ru1.Description)
		fmt.Fprintf(w, "  - Second source => %s\n", ru2.Description)
	case ok1:
		fmt.Fprintf(w, "\n%s\n", ru1.Description)
	case ok2:
		fmt.Fprintf(w, "\n%s\n", ru2.Description)
	default:
		fmt.Fprintln(w, "\nNo Database Release Update found in either source")
	}
}
