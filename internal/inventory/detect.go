package inventory

import "strings"

// Format identifies which OPatch report produced an inventory text.
type Format int

const (
	// FormatPatchList is the compact one-patch-per-line output of
	// "opatch lspatches".
	FormatPatchList Format = iota
	// FormatInventory is the verbose multi-line output of
	// "opatch lsinventory".
	FormatInventory
)

func (f Format) String() string {
	if f == FormatInventory {
		return "lsinventory"
	}
	return "lspatches"
}

// lsinventory output always carries one of these banner lines; lspatches
// output never does.
var inventoryMarkers = []string{
	"Oracle Interim Patch Installer",
	"Interim patches",
}

// Detect classifies a line sequence as lspatches or lsinventory output.
// Absence of any lsinventory marker means lspatches.
func Detect(lines []string) Format {
	for _, line := range lines {
		for _, marker := range inventoryMarkers {
			if strings.HasPrefix(line, marker) {
				return FormatInventory
			}
		}
	}
	return FormatPatchList
}

// Decode parses inventory text in the given format into a patch set.
// source names the origin for error messages.
func Decode(lines []string, format Format, source string) (*Set, error) {
	if format == FormatInventory {
		return decodeInventory(lines), nil
	}
	return decodePatchList(lines, source)
}
