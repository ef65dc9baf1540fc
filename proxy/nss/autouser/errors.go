package autouser

import (
	"fmt"
	"strings"
)

// Status mirrors the glibc NSS status codes documented at
// https://www.gnu.org/software/libc/manual/html_node/NSS-Modules-Interface.html
// — the contract this package's entry point answers to is out of this
// module's scope, but the enum itself is useful return-value vocabulary
// for anything driving GetpwnamR directly (the operator CLI, tests).
type Status int

const (
	StatusSuccess Status = iota
	StatusNotFound
	StatusUnavail
	StatusTryAgain
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusNotFound:
		return "not-found"
	case StatusUnavail:
		return "unavail"
	case StatusTryAgain:
		return "try-again"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ConfigErrors aggregates every diagnostic produced while loading a
// configuration — currently always a single error (the file read
// failure, or the confparse diagnostic), but shaped
// as a slice so a future multi-file configuration can report all of
// them at once rather than stopping at the first.
type ConfigErrors struct {
	Path   string
	Errors []error
}

func (e *ConfigErrors) Error() string {
	var msg strings.Builder
	fmt.Fprintf(&msg, "error(s) parsing configuration file %q:\n", e.Path)
	for _, err := range e.Errors {
		fmt.Fprintf(&msg, "  %s\n", err)
	}
	return msg.String()
}

// Unwrap exposes the first underlying error so callers can reach it
// with errors.Is/errors.As, e.g. errors.As to a *confparse.Error to
// read its Kind.
func (e *ConfigErrors) Unwrap() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e.Errors[0]
}
