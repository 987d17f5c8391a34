// Package resolve selects the profile for an invocation and maps it to the
// wrapped program's configuration file.
//
// Resolution is a pure decision over explicitly passed inputs (see [Context]):
// an explicit override always wins, otherwise the first profile matching the
// working directory is used, otherwise no profile is selected and the wrapped
// program falls back to its own default configuration.
package resolve
