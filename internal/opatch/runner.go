package opatch

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/oradiff/opatch-diff/internal/inventory"
	"github.com/oradiff/opatch-diff/internal/logging"
)

var log = logging.L("opatch")

const (
	// DefaultTimeout bounds one opatch invocation. lsinventory against a
	// large home can take minutes.
	DefaultTimeout = 600 * time.Second

	// MaxTimeout is the largest configurable invocation timeout.
	MaxTimeout = 3600 * time.Second

	// MaxOutputSize caps captured stdout/stderr per stream.
	MaxOutputSize = 1024 * 1024 // 1MB
)

// ExecFunc runs a command with the given environment and returns stdout,
// stderr and the exit code. Injectable for tests.
type ExecFunc func(name string, args []string, env []string, timeout time.Duration) (stdout, stderr string, exitCode int, err error)

// Runner invokes opatch under an ORACLE_HOME and captures its output.
type Runner struct {
	exec    ExecFunc
	timeout time.Duration
}

// NewRunner creates a Runner. A nil exec uses the real subprocess
// implementation; timeout is clamped to (0, MaxTimeout].
func NewRunner(exec ExecFunc, timeout time.Duration) *Runner {
	if exec == nil {
		exec = runCommand
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if timeout > MaxTimeout {
		timeout = MaxTimeout
	}
	return &Runner{exec: exec, timeout: timeout}
}

// LocateTool resolves and verifies the opatch executable under home.
func LocateTool(home string) (string, error) {
	fi, err := os.Stat(home)
	if err != nil || !fi.IsDir() {
		return "", &ToolNotFoundError{Path: home}
	}

	path := filepath.Join(home, "OPatch", "opatch")
	fi, err = os.Stat(path)
	if err != nil {
		return "", &ToolNotFoundError{Path: path}
	}
	if !fi.Mode().IsRegular() || !canExecute(path, fi) {
		return "", &NotExecutableError{Path: path}
	}

	return path, nil
}

// Query runs "opatch lspatches" or "opatch lsinventory" under home and
// returns the captured stdout as lines. The child process sees
// ORACLE_HOME=home. When capturePath is set, raw stdout is persisted there
// before parsing.
func (r *Runner) Query(home string, format inventory.Format, capturePath string) ([]string, error) {
	tool, err := LocateTool(home)
	if err != nil {
		return nil, err
	}

	arg := format.String()
	cmdline := tool + " " + arg
	log.Info("running opatch", "cmd", cmdline, "oracleHome", home, "timeout", r.timeout)

	env := append(os.Environ(), "ORACLE_HOME="+home)
	start := time.Now()
	stdout, stderr, exitCode, err := r.exec(tool, []string{arg}, env, r.timeout)
	if err != nil {
		return nil, &ToolRunError{Cmd: cmdline, Stderr: err.Error()}
	}
	if exitCode != 0 {
		return nil, &ToolRunError{Cmd: cmdline, Stderr: strings.TrimSpace(stderr)}
	}
	log.Info("opatch completed", "cmd", cmdline, "durationMs", time.Since(start).Milliseconds())

	if capturePath != "" {
		if err := os.WriteFile(capturePath, []byte(stdout), 0644); err != nil {
			return nil, fmt.Errorf("save opatch output to %s: %w", capturePath, err)
		}
		log.Info("opatch output saved", "path", capturePath)
	}

	lines := splitLines(stdout)
	if len(lines) == 0 {
		return nil, &EmptyInputError{Source: "ORACLE_HOME: " + home}
	}
	return lines, nil
}

// runCommand is the real ExecFunc: subprocess with timeout and bounded
// output capture.
func runCommand(name string, args []string, env []string, timeout time.Duration) (string, string, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = env

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &limitedWriter{buf: &stdout, limit: MaxOutputSize}
	cmd.Stderr = &limitedWriter{buf: &stderr, limit: MaxOutputSize}

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return stdout.String(), stderr.String(), -1, fmt.Errorf("timed out after %s", timeout)
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			return stdout.String(), stderr.String(), exitErr.ExitCode(), nil
		}
		return stdout.String(), stderr.String(), -1, err
	}

	return stdout.String(), stderr.String(), 0, nil
}

// limitedWriter wraps a buffer with a size limit. Extra data is discarded
// without erroring so the child process never sees a write failure.
type limitedWriter struct {
	buf     *bytes.Buffer
	limit   int
	written int
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	if w.written >= w.limit {
		return len(p), nil
	}

	remaining := w.limit - w.written
	chunk := p
	if len(chunk) > remaining {
		chunk = chunk[:remaining]
	}

	n, err := w.buf.Write(chunk)
	w.written += n
	return len(p), err
}
