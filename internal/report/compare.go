package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/oradiff/opatch-diff/internal/inventory"
)

// Compare renders the full comparison report for two patch sets: summary
// counts, the release-update cross-check, then the patches unique to each
// side in ascending ID order. Neither set is modified. verbose controls
// whether a patch's extra detail lines are printed.
func Compare(w io.Writer, firstLabel, secondLabel string, first, second *inventory.Set, verbose bool) {
	fmt.Fprintln(w, "\nSummary:")
	fmt.Fprintf(w, "  - First source  => %s contains %d patches\n", firstLabel, first.Len())
	fmt.Fprintf(w, "  - Second source => %s contains %d patches\n", secondLabel, second.Len())

	writeReleaseUpdateCheck(w, first, second)

	fmt.Fprintln(w, "\nPatches only in the first source:")
	writeUnique(w, firstLabel, first, second, verbose)

	fmt.Fprintln(w, "\nPatches only in the second source:")
	writeUnique(w, secondLabel, second, first, verbose)
}

// writeUnique lists the patches present in set but absent from other.
func writeUnique(w io.Writer, label string, set, other *inventory.Set, verbose bool) {
	unique := onlyIn(set, other)
	if len(unique) == 0 {
		fmt.Fprintf(w, "  No patches only in %s\n", label)
		return
	}

	for _, id := range unique {
		p, _ := set.Get(id)
		fmt.Fprintf(w, " ==> %d; %s\n", p.ID, p.Description)
		if verbose && p.ExtraLines != "" {
			fmt.Fprintf(w, "%s\n", p.ExtraLines)
		}
	}
}

// onlyIn returns the IDs present in set but not in other, ascending.
func onlyIn(set, other *inventory.Set) []int {
	var ids []int
	for _, id := range set.IDs() {
		if !other.Contains(id) {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}
