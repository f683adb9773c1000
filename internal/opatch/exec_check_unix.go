//go:build !windows

package opatch

import (
	"os"

	"golang.org/x/sys/unix"
)

// canExecute reports whether the current user may execute path.
func canExecute(path string, _ os.FileInfo) bool {
	return unix.Access(path, unix.X_OK) == nil
}
