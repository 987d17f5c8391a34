package launch

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// ErrLaunch is returned when the target program cannot be started.
var ErrLaunch = errors.New("run subcommand")

// Command is a program invocation: path, arguments and environment.
type Command struct {
	// Path is the absolute path of the program.
	Path string
	// Args are the arguments, not including the program name.
	Args []string
	// Env is the complete environment, in "KEY=value" form.
	Env []string
}

// NewCommand creates a [Command] inheriting the current environment.
func NewCommand(path string, args ...string) *Command {
	return &Command{
		Path: path,
		Args: args,
		Env:  os.Environ(),
	}
}

// Argv returns the program path followed by the arguments.
func (c *Command) Argv() []string {
	argv := make([]string, 0, 1+len(c.Args))
	argv = append(argv, c.Path)
	argv = append(argv, c.Args...)

	return argv
}

// SetEnv sets key to value, replacing any existing entries for key.
func (c *Command) SetEnv(key, value string) {
	prefix := key + "="

	env := make([]string, 0, len(c.Env)+1)
	for _, kv := range c.Env {
		if strings.HasPrefix(kv, prefix) {
			continue
		}

		env = append(env, kv)
	}

	c.Env = append(env, prefix+value)
}

// LookupEnv returns the value of key in the command's environment.
func (c *Command) LookupEnv(key string) (string, bool) {
	prefix := key + "="

	for i := len(c.Env) - 1; i >= 0; i-- {
		if v, ok := strings.CutPrefix(c.Env[i], prefix); ok {
			return v, true
		}
	}

	return "", false
}

// String returns the command line, quoting arguments where needed.
func (c *Command) String() string {
	argv := c.Argv()

	parts := make([]string, 0, len(argv))
	for _, a := range argv {
		if a == "" || strings.ContainsAny(a, " \t\n\"'\\$`") {
			a = strconv.Quote(a)
		}

		parts = append(parts, a)
	}

	return strings.Join(parts, " ")
}

// LogValue implements [slog.LogValuer].
func (c *Command) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", c.Path),
		slog.Any("args", c.Args),
	)
}
