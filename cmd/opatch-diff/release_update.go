package main

import (
	"fmt"
	"io"
	"os"

	"github.com/oradiff/opatch-diff/internal/opatch"
	"github.com/oradiff/opatch-diff/internal/report"
	"github.com/spf13/cobra"
)

var (
	ruFile string
	ruHome string
	ruOut  string
)

var releaseUpdateCmd = &cobra.Command{
	Use:     "release-update [file]",
	Aliases: []string{"ru"},
	Short:   "Print the Database Release Update of one inventory",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := resolveSingleSource(args)
		if err != nil {
			return err
		}
		return runReleaseUpdate(os.Stdout, src)
	},
}

func init() {
	releaseUpdateCmd.Flags().StringVar(&ruFile, "file", "", "opatch output file")
	releaseUpdateCmd.Flags().StringVar(&ruHome, "home", "", "ORACLE_HOME directory")
	releaseUpdateCmd.Flags().BoolVar(&compareLspatches, "lspatches", false, "query the live home with 'opatch lspatches'")
	releaseUpdateCmd.Flags().BoolVar(&compareLsinv, "lsinventory", false, "query the live home with 'opatch lsinventory' (default)")
	releaseUpdateCmd.Flags().StringVar(&ruOut, "out", "", "save raw opatch output to file")
}

func resolveSingleSource(args []string) (opatch.Source, error) {
	positional := ""
	if len(args) > 0 {
		positional = args[0]
	}

	if compareLspatches && compareLsinv {
		return opatch.Source{}, fmt.Errorf("--lspatches and --lsinventory are mutually exclusive")
	}
	if ruOut != "" && ruHome == "" {
		return opatch.Source{}, fmt.Errorf("--out requires --home")
	}

	count := 0
	for _, v := range []string{positional, ruFile, ruHome} {
		if v != "" {
			count++
		}
	}
	if count == 0 {
		return opatch.Source{}, fmt.Errorf("no source: give a file argument, --file or --home")
	}
	if count > 1 {
		return opatch.Source{}, fmt.Errorf("source given more than once")
	}

	if ruHome != "" {
		return opatch.HomeSource(ruHome, liveFormat(), ruOut), nil
	}
	if ruFile != "" {
		return opatch.FileSource(ruFile), nil
	}
	return opatch.FileSource(positional), nil
}

func runReleaseUpdate(w io.Writer, src opatch.Source) error {
	runner := opatch.NewRunner(nil, cfg.Timeout())

	if src.Kind == opatch.SourceHome {
		report.WriteHostHeader(w)
	}

	set, err := opatch.Fetch(w, src, runner)
	if err != nil {
		return err
	}

	if set.Len() == 0 {
		fmt.Fprintf(w, "No patches found in the %s\n", src.Label())
		return nil
	}

	report.WriteReleaseUpdate(w, set)
	return nil
}
