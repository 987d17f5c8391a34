// Package config loads the profiles configuration file.
//
// The file is TOML, and contains an array of profile tables:
//
//	[[profile]]
//	name = "work"
//	patterns = ["~/work/.*", "/srv/company"]
//
//	[[profile]]
//	name = "minimal"
//
// Profiles are kept in file order, which decides which profile wins when more
// than one matches a directory.
package config
