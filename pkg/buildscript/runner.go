// pkg/buildscript/runner.go
package buildscript

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Run executes the generated build script as a child process with the
// working directory set to the script's own directory. Standard streams are
// inherited and the child's exit code is returned verbatim; there is no
// timeout, no retry and no output capture.
func Run(ctx context.Context, scriptPath string) (int, error) {
	abs, err := filepath.Abs(scriptPath)
	if err != nil {
		return -1, fmt.Errorf("resolving script path: %w", err)
	}

	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "cmd", "/C", abs)
	} else {
		cmd = exec.CommandContext(ctx, abs)
	}
	cmd.Dir = filepath.Dir(abs)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err = cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("running %s: %w", abs, err)
}
