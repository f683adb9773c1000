package main

import (
	"fmt"
	"io"
	"os"

	"github.com/oradiff/opatch-diff/internal/inventory"
	"github.com/oradiff/opatch-diff/internal/opatch"
	"github.com/oradiff/opatch-diff/internal/report"
	"github.com/spf13/cobra"
)

var (
	compareFile1     string
	compareFile2     string
	compareHome1     string
	compareHome2     string
	compareLspatches bool
	compareLsinv     bool
	compareOut1      string
	compareOut2      string
	compareRUOnly    bool
)

var compareCmd = &cobra.Command{
	Use:   "compare [first-file] [second-file]",
	Short: "Compare two patch inventories",
	Long: `Compare two patch inventories. Each side is either a captured opatch
output file (positional argument or --file1/--file2) or a live ORACLE_HOME
to query (--home1/--home2).`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		first, second, err := resolveCompareSources(args)
		if err != nil {
			return err
		}
		return runCompare(os.Stdout, first, second)
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareFile1, "file1", "", "first opatch output file")
	compareCmd.Flags().StringVar(&compareFile2, "file2", "", "second opatch output file")
	compareCmd.Flags().StringVar(&compareHome1, "home1", "", "first ORACLE_HOME directory")
	compareCmd.Flags().StringVar(&compareHome2, "home2", "", "second ORACLE_HOME directory")
	compareCmd.Flags().BoolVar(&compareLspatches, "lspatches", false, "query live homes with 'opatch lspatches'")
	compareCmd.Flags().BoolVar(&compareLsinv, "lsinventory", false, "query live homes with 'opatch lsinventory' (default)")
	compareCmd.Flags().StringVar(&compareOut1, "out1", "", "save first home's raw opatch output to file")
	compareCmd.Flags().StringVar(&compareOut2, "out2", "", "save second home's raw opatch output to file")
	compareCmd.Flags().BoolVar(&compareRUOnly, "ru", false, "only print Release Update versions, skip the diff")
}

// resolveCompareSources turns positional arguments and flags into exactly
// one source per side.
func resolveCompareSources(args []string) (opatch.Source, opatch.Source, error) {
	var none opatch.Source

	if compareLspatches && compareLsinv {
		return none, none, fmt.Errorf("--lspatches and --lsinventory are mutually exclusive")
	}
	if (compareLspatches || compareLsinv) && compareHome1 == "" && compareHome2 == "" {
		return none, none, fmt.Errorf("--lspatches/--lsinventory require --home1 or --home2")
	}
	if compareOut1 != "" && compareHome1 == "" {
		return none, none, fmt.Errorf("--out1 requires --home1")
	}
	if compareOut2 != "" && compareHome2 == "" {
		return none, none, fmt.Errorf("--out2 requires --home2")
	}

	pos1, pos2 := "", ""
	if len(args) > 0 {
		pos1 = args[0]
	}
	if len(args) > 1 {
		pos2 = args[1]
	}

	first, err := resolveSide(1, pos1, compareFile1, compareHome1, compareOut1)
	if err != nil {
		return none, none, err
	}
	second, err := resolveSide(2, pos2, compareFile2, compareHome2, compareOut2)
	if err != nil {
		return none, none, err
	}
	return first, second, nil
}

func resolveSide(n int, positional, file, home, out string) (opatch.Source, error) {
	count := 0
	for _, v := range []string{positional, file, home} {
		if v != "" {
			count++
		}
	}
	if count == 0 {
		return opatch.Source{}, fmt.Errorf("no source %d: give a file argument, --file%d or --home%d", n, n, n)
	}
	if count > 1 {
		return opatch.Source{}, fmt.Errorf("source %d given more than once", n)
	}

	if home != "" {
		return opatch.HomeSource(home, liveFormat(), out), nil
	}
	if file != "" {
		return opatch.FileSource(file), nil
	}
	return opatch.FileSource(positional), nil
}

// liveFormat maps the --lspatches/--lsinventory flags to a format;
// lsinventory is the default for live queries.
func liveFormat() inventory.Format {
	if compareLspatches {
		return inventory.FormatPatchList
	}
	return inventory.FormatInventory
}

func runCompare(w io.Writer, first, second opatch.Source) error {
	runner := opatch.NewRunner(nil, cfg.Timeout())

	if first.Kind == opatch.SourceHome || second.Kind == opatch.SourceHome {
		report.WriteHostHeader(w)
	}

	set1, err := fetchAndReport(w, first, runner)
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	set2, err := fetchAndReport(w, second, runner)
	if err != nil {
		return err
	}

	if compareRUOnly {
		return nil
	}

	report.Compare(w, first.Label(), second.Label(), set1, set2, !shortMode)
	return nil
}

// fetchAndReport decodes one side and prints its per-source sections.
// A side with zero patches is reported and then aborts the comparison;
// when the first side is empty the second one is never fetched.
func fetchAndReport(w io.Writer, src opatch.Source, runner *opatch.Runner) (*inventory.Set, error) {
	set, err := opatch.Fetch(w, src, runner)
	if err != nil {
		return nil, err
	}

	if compareRUOnly {
		report.WriteReleaseUpdate(w, set)
	}
	if set.Len() == 0 {
		fmt.Fprintf(w, "No patches found in the %s\n", src.Label())
		return nil, &opatch.NoPatchesError{Source: src.Label()}
	}
	return set, nil
}
