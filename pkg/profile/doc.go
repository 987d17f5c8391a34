// Package profile defines named sets of directory patterns.
//
// A profile maps to a configuration file for the wrapped program, and is
// selected either explicitly by name or because one of its patterns matches
// the current working directory.
package profile
