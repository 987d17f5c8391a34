// Package pattern matches directories against user-authored regular
// expressions.
//
// A pattern may contain the home placeholder ([Placeholder]), which is
// replaced with the caller's home directory before the pattern is compiled.
// [Match] applies the same substitution to the directory being tested, so
// `~/code/.*` and `/home/alice/code/.*` are interchangeable.
//
// Patterns use Go's RE2 syntax (see [regexp/syntax]) and match if they match
// any part of the directory string; anchor with `^` and `$` for a full match.
package pattern
