package inventory

import "fmt"

// ParseError reports an unparseable patch identifier in lspatches output.
// It is fatal: a partial inventory must never feed a comparison.
type ParseError struct {
	Token  string // the offending identifier token
	Source string // file path or ORACLE_HOME the line came from
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid patch ID %q in %s", e.Token, e.Source)
}
