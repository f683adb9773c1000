package opatch

import "fmt"

// EmptyInputError reports a source that yielded no text lines at all.
// An inventory with zero patches is valid; an inventory with zero lines is
// not an inventory.
type EmptyInputError struct {
	Source string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("no lines found in %s", e.Source)
}

// NoPatchesError reports a source that decoded to zero patch records in a
// context that cannot proceed without any, such as one side of a comparison.
type NoPatchesError struct {
	Source string
}

func (e *NoPatchesError) Error() string {
	return fmt.Sprintf("no patches found in the %s", e.Source)
}

// ToolNotFoundError reports a missing ORACLE_HOME directory or opatch
// executable path.
type ToolNotFoundError struct {
	Path string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("the directory or file %s does not exist", e.Path)
}

// NotExecutableError reports an opatch path that exists but cannot be run.
type NotExecutableError struct {
	Path string
}

func (e *NotExecutableError) Error() string {
	return fmt.Sprintf("%s is not an executable file", e.Path)
}

// ToolRunError reports a failed opatch invocation with its captured stderr.
type ToolRunError struct {
	Cmd    string
	Stderr string
}

func (e *ToolRunError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("command %q failed", e.Cmd)
	}
	return fmt.Sprintf("command %q failed: %s", e.Cmd, e.Stderr)
}
