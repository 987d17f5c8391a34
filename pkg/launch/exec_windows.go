//go:build windows

package launch

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// exitFunc ends the wrapper with the child's exit status.
var exitFunc = os.Exit

// Exec runs the command as a child process with inherited standard streams
// and exits with its status. It only returns if the child could not be
// started.
func (c *Command) Exec() error {
	//nolint:gosec // G204: Subprocess launched with variable.
	cmd := exec.Command(c.Path, c.Args...)
	cmd.Env = c.Env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitFunc(exitErr.ExitCode())

		return nil
	}
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrLaunch, c.Path, err)
	}

	exitFunc(0)

	return nil
}
