package opatch

import "strings"

// OratabHomes parses an oratab file (SID:ORACLE_HOME:STARTUP per line) and
// returns the distinct ORACLE_HOME paths in file order. Blank lines,
// comments, and entries without a home field are skipped.
func OratabHomes(path string) ([]string, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}

	var homes []string
	seen := make(map[string]bool)

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, ":")
		if len(fields) < 2 {
			continue
		}
		home := fields[1]
		if home == "" || seen[home] {
			continue
		}

		seen[home] = true
		homes = append(homes, home)
	}

	return homes, nil
}
