package inventory

import (
	"strconv"
	"strings"
)

// decodePatchList parses "opatch lspatches" output: one patch per line,
// "<id>;<description>". Lines without a semicolon are noise (banners, blank
// lines) and are skipped; a semicolon line whose left side is not an integer
// aborts the decode.
func decodePatchList(lines []string, source string) (*Set, error) {
	set := NewSet()

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || !strings.Contains(line, ";") {
			continue
		}

		num, desc, _ := strings.Cut(line, ";")
		id, err := strconv.Atoi(strings.TrimSpace(num))
		if err != nil {
			return nil, &ParseError{Token: num, Source: source}
		}

		// The description is everything right of the first semicolon,
		// verbatim; it may itself contain semicolons.
		set.Insert(Patch{ID: id, Description: desc})
	}

	return set, nil
}
