//go:build windows

package opatch

import "os"

// canExecute reports whether path looks runnable. Windows has no execute
// bit; a regular file is the best check available here.
func canExecute(_ string, fi os.FileInfo) bool {
	return fi.Mode().IsRegular()
}
