package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oradiff/opatch-diff/internal/config"
	"github.com/oradiff/opatch-diff/internal/inventory"
	"github.com/oradiff/opatch-diff/internal/opatch"
)

func writeSourceFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func resetCompareFlags() {
	compareFile1, compareFile2 = "", ""
	compareHome1, compareHome2 = "", ""
	compareLspatches, compareLsinv = false, false
	compareOut1, compareOut2 = "", ""
	compareRUOnly = false
}

func TestResolveCompareSourcesPositional(t *testing.T) {
	resetCompareFlags()

	first, second, err := resolveCompareSources([]string{"a.txt", "b.txt"})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if first.Kind != opatch.SourceFile || first.Path != "a.txt" {
		t.Errorf("first = %+v", first)
	}
	if second.Kind != opatch.SourceFile || second.Path != "b.txt" {
		t.Errorf("second = %+v", second)
	}
}

func TestResolveCompareSourcesMixedFileAndHome(t *testing.T) {
	resetCompareFlags()
	compareFile1 = "a.txt"
	compareHome2 = "/u01/dbhome_2"
	compareLspatches = true
	compareOut2 = "capture.out"

	first, second, err := resolveCompareSources(nil)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if first.Kind != opatch.SourceFile {
		t.Errorf("first = %+v", first)
	}
	if second.Kind != opatch.SourceHome || second.Format != inventory.FormatPatchList || second.CapturePath != "capture.out" {
		t.Errorf("second = %+v", second)
	}
}

func TestResolveCompareSourcesHomeDefaultsToLsinventory(t *testing.T) {
	resetCompareFlags()
	compareHome1 = "/u01/dbhome_1"
	compareHome2 = "/u01/dbhome_2"

	first, _, err := resolveCompareSources(nil)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if first.Format != inventory.FormatInventory {
		t.Errorf("first.Format = %v, want FormatInventory", first.Format)
	}
}

func TestRunCompareAbortsOnEmptyFirstSource(t *testing.T) {
	resetCompareFlags()
	cfg = config.Default()

	// The second source does not exist: if the run ever touched it, the
	// error would be a read failure instead of the empty-inventory one.
	empty := writeSourceFile(t, "empty.txt", "OPatch succeeded.\n")
	missing := filepath.Join(t.TempDir(), "never-read.txt")

	var buf bytes.Buffer
	err := runCompare(&buf, opatch.FileSource(empty), opatch.FileSource(missing))
	if err == nil {
		t.Fatal("expected error for empty first source")
	}
	var npe *opatch.NoPatchesError
	if !errors.As(err, &npe) {
		t.Fatalf("err = %v, want NoPatchesError", err)
	}

	out := buf.String()
	if !strings.Contains(out, "No patches found in the file: "+empty) {
		t.Errorf("missing empty-source report: %q", out)
	}
	if strings.Contains(out, "Summary:") {
		t.Errorf("comparison rendered after empty first source: %q", out)
	}
}

func TestRunCompareAbortsOnEmptySecondSource(t *testing.T) {
	resetCompareFlags()
	cfg = config.Default()

	first := writeSourceFile(t, "first.txt", "101;Desc A\n")
	empty := writeSourceFile(t, "empty.txt", "OPatch succeeded.\n")

	var buf bytes.Buffer
	err := runCompare(&buf, opatch.FileSource(first), opatch.FileSource(empty))

	var npe *opatch.NoPatchesError
	if !errors.As(err, &npe) {
		t.Fatalf("err = %v, want NoPatchesError", err)
	}
	if strings.Contains(buf.String(), "Summary:") {
		t.Errorf("comparison rendered after empty second source: %q", buf.String())
	}
}

func TestResolveCompareSourcesRejectsMissingSide(t *testing.T) {
	resetCompareFlags()
	compareFile1 = "a.txt"

	if _, _, err := resolveCompareSources(nil); err == nil {
		t.Fatal("expected error for missing second source")
	}
}

func TestResolveCompareSourcesRejectsDoubleSide(t *testing.T) {
	resetCompareFlags()
	compareFile1 = "a.txt"
	compareHome1 = "/u01/dbhome_1"
	compareFile2 = "b.txt"

	if _, _, err := resolveCompareSources(nil); err == nil {
		t.Fatal("expected error for first source given twice")
	}
}

func TestResolveCompareSourcesRejectsBothFormatFlags(t *testing.T) {
	resetCompareFlags()
	compareHome1 = "/u01/dbhome_1"
	compareFile2 = "b.txt"
	compareLspatches = true
	compareLsinv = true

	if _, _, err := resolveCompareSources(nil); err == nil {
		t.Fatal("expected error for both format flags")
	}
}

func TestResolveCompareSourcesRejectsFormatFlagWithoutHome(t *testing.T) {
	resetCompareFlags()
	compareFile1 = "a.txt"
	compareFile2 = "b.txt"
	compareLspatches = true

	if _, _, err := resolveCompareSources(nil); err == nil {
		t.Fatal("expected error for --lspatches without a home")
	}
}

func TestResolveCompareSourcesRejectsOutWithoutHome(t *testing.T) {
	resetCompareFlags()
	compareFile1 = "a.txt"
	compareFile2 = "b.txt"
	compareOut1 = "capture.out"

	if _, _, err := resolveCompareSources(nil); err == nil {
		t.Fatal("expected error for --out1 without --home1")
	}
}
