//go:build !windows

package launch

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// execFunc replaces the current process. Tests override it to capture the
// call instead.
var execFunc = unix.Exec

// Exec replaces the current process with the command. It only returns if the
// replacement failed.
func (c *Command) Exec() error {
	err := execFunc(c.Path, c.Argv(), c.Env)

	return fmt.Errorf("%w %s: %w", ErrLaunch, c.Path, err)
}
