package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/oradiff/opatch-diff/internal/inventory"
	"github.com/oradiff/opatch-diff/internal/logging"
	"github.com/oradiff/opatch-diff/internal/opatch"
	"github.com/oradiff/opatch-diff/internal/report"
	"github.com/spf13/cobra"
)

var log = logging.L("cli")

var oratabCmd = &cobra.Command{
	Use:   "oratab",
	Short: "Print the Release Update of every ORACLE_HOME in /etc/oratab",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOratab(os.Stdout)
	},
}

func runOratab(w io.Writer) error {
	homes, err := opatch.OratabHomes(cfg.OratabPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", cfg.OratabPath, err)
	}

	report.WriteHostHeader(w)
	runner := opatch.NewRunner(nil, cfg.Timeout())

	for _, home := range homes {
		fmt.Fprintf(w, "Checking Release Update for ORACLE_HOME: %s\n", home)

		set, err := opatch.Fetch(w, opatch.HomeSource(home, inventory.FormatPatchList, ""), runner)
		if err != nil {
			// A home without a usable opatch or with empty output is
			// skipped; a failed opatch run aborts the sweep.
			if isSkippableHomeError(err) {
				log.Warn("skipping ORACLE_HOME", "oracleHome", home, logging.KeyError, err)
				fmt.Fprintf(w, "error: %v\n\n", err)
				continue
			}
			return err
		}

		report.WriteReleaseUpdate(w, set)
		fmt.Fprintln(w)
	}

	return nil
}

func isSkippableHomeError(err error) bool {
	var notFound *opatch.ToolNotFoundError
	var notExec *opatch.NotExecutableError
	var empty *opatch.EmptyInputError
	return errors.As(err, &notFound) || errors.As(err, &notExec) || errors.As(err, &empty)
}
