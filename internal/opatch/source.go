package opatch

import (
	"os"
	"strings"

	"github.com/oradiff/opatch-diff/internal/inventory"
)

// SourceKind says where inventory text comes from.
type SourceKind int

const (
	// SourceFile reads previously captured opatch output from disk.
	SourceFile SourceKind = iota
	// SourceHome runs opatch under a live ORACLE_HOME.
	SourceHome
)

// Source describes one side of a comparison: either a captured output file
// or an ORACLE_HOME to query.
type Source struct {
	Kind SourceKind
	Path string
	// Format selects which opatch report a live query requests. File
	// sources ignore it and auto-detect instead.
	Format inventory.Format
	// CapturePath, when set on a live query, receives the raw opatch
	// stdout as a side effect before parsing.
	CapturePath string
}

// FileSource describes a captured output file.
func FileSource(path string) Source {
	return Source{Kind: SourceFile, Path: path}
}

// HomeSource describes a live ORACLE_HOME query.
func HomeSource(home string, format inventory.Format, capturePath string) Source {
	return Source{Kind: SourceHome, Path: home, Format: format, CapturePath: capturePath}
}

// Label renders the source for report output.
func (s Source) Label() string {
	if s.Kind == SourceHome {
		return "ORACLE_HOME: " + s.Path
	}
	return "file: " + s.Path
}

// ReadLines loads a captured output file and splits it into lines.
// A missing file or a file with no lines is fatal for that source.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	lines := splitLines(string(data))
	if len(lines) == 0 {
		return nil, &EmptyInputError{Source: path}
	}
	return lines, nil
}

// splitLines splits text into lines, dropping the trailing empty element a
// final newline would produce and stripping CR from CRLF endings.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
