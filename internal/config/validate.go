package config

import (
	"fmt"
	"log/slog"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Validate checks the config for invalid values and returns all errors
// found. Values that would break the run are clamped to safe defaults;
// validation errors are logged as warnings but do not prevent startup.
func (c *Config) Validate() []error {
	var errs []error

	if c.LogLevel != "" && !validLogLevels[strings.ToLower(c.LogLevel)] {
		errs = append(errs, fmt.Errorf("log_level %q is not valid (use debug, info, warn, error)", c.LogLevel))
	}

	if c.LogFormat != "" && c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("log_format %q is not valid (use text or json)", c.LogFormat))
	}

	if c.OratabPath == "" {
		errs = append(errs, fmt.Errorf("oratab_path is empty, using /etc/oratab"))
		c.OratabPath = "/etc/oratab"
	}

	// Clamp the timeout to a sane range; opatch lsinventory is slow but
	// not hours-slow.
	if c.OPatchTimeoutSeconds < 1 {
		errs = append(errs, fmt.Errorf("opatch_timeout_seconds %d is below minimum 1, clamping", c.OPatchTimeoutSeconds))
		c.OPatchTimeoutSeconds = 1
	} else if c.OPatchTimeoutSeconds > 3600 {
		errs = append(errs, fmt.Errorf("opatch_timeout_seconds %d exceeds maximum 3600, clamping", c.OPatchTimeoutSeconds))
		c.OPatchTimeoutSeconds = 3600
	}

	for _, err := range errs {
		slog.Warn("config validation", "error", err)
	}

	return errs
}
