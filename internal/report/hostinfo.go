package report

import (
	"fmt"
	"io"

	"github.com/shirou/gopsutil/v3/host"
)

// WriteHostHeader prints a one-line host banner. Used on reports that query
// a live ORACLE_HOME, where the machine identity is part of the result.
// Failures to read host info are not worth failing a report over.
func WriteHostHeader(w io.Writer) {
	info, err := host.Info()
	if err != nil {
		return
	}
	fmt.Fprintf(w, "Host: %s (%s %s)\n", info.Hostname, info.Platform, info.PlatformVersion)
}
