package autouser

import "os"

// EnvSink isolates the one side effect this package has on global
// process state — publishing AUTOUSER_* variables for the eventual
// shell session — behind a small interface so tests can assert the
// published key/value set without mutating the real process
// environment.
type EnvSink interface {
	Setenv(key, value string) error
}

// OSEnv publishes variables into the real process environment, exactly
// as the original module's setenv calls did.
type OSEnv struct{}

func (OSEnv) Setenv(key, value string) error { return os.Setenv(key, value) }

// MapEnv collects published variables into an in-memory map instead of
// the process environment.
type MapEnv map[string]string

func (m MapEnv) Setenv(key, value string) error {
	m[key] = value
	return nil
}
