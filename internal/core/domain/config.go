// Package domain contains the core types for cflags.
package domain

import "slices"

// BaseFlags are the compiler flags emitted for every file, in order.
var BaseFlags = []string{"-Wall", "-Wextra", "-x", "c++", "-std=c++14"}

// IncludeDirs are the project-relative include directories appended to the
// base flags. Each becomes an "-I" pair resolved against the working
// directory at query time.
var IncludeDirs = []string{"include", "build/include", "build/target"}

// FlagConfiguration is the record handed to an editor host for one file:
// the compiler flags and whether the host may cache them.
type FlagConfiguration struct {
	Flags   []string `json:"flags" yaml:"flags"`
	DoCache bool     `json:"do_cache" yaml:"do_cache"`
}

// Clone returns a deep copy of the configuration.
func (c FlagConfiguration) Clone() FlagConfiguration {
	return FlagConfiguration{
		Flags:   slices.Clone(c.Flags),
		DoCache: c.DoCache,
	}
}

// Equal reports whether two configurations carry the same flags in the
// same order and the same cache setting.
func (c FlagConfiguration) Equal(other FlagConfiguration) bool {
	return c.DoCache == other.DoCache && slices.Equal(c.Flags, other.Flags)
}
