// Package env abstracts environment variable access behind an interface so
// the resolver can be tested against an injected environment instead of
// ambient process state.
package env

import "os"

// Lookup reports the value of an environment variable and whether it is set.
// A variable set to the empty string is present, which is distinct from an
// unset variable.
type Lookup interface {
	LookupEnv(key string) (string, bool)
}

// OS implements Lookup using the process environment.
type OS struct{}

// LookupEnv returns the value of the variable named by key and whether it is
// defined.
func (OS) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Map is a fixed in-memory Lookup, primarily for tests.
type Map map[string]string

// LookupEnv returns the mapped value for key and whether the key exists.
func (m Map) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
