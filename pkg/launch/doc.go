// Package launch locates the wrapped program and hands control over to it.
//
// On Unix the current process image is replaced with the target, so a
// successful [Command.Exec] never returns. On Windows the target runs as a
// child process and its exit status becomes the wrapper's exit status.
package launch
