// Package autouser implements a policy-driven synthesizer of POSIX user
// records: given the name of the process performing a lookup and the
// requested user name, it decides whether to decorate an existing
// system account with alternate attributes, fabricate a fresh one with
// a deterministic UID, or decline the lookup entirely.
package autouser

// Flags is the bit set carried on a Rule for the boolean policy knobs.
// Each SetX bit records that the rule explicitly supplied the
// corresponding UseX value, so a default (unset) can be distinguished
// from an explicit false during merge.
type Flags uint32

const (
	// UseFullHome: the configured home path is used verbatim, with no
	// "/<name>" suffix appended.
	UseFullHome Flags = 1 << 0
	// SetFullHome records that UseFullHome was explicitly configured.
	SetFullHome Flags = 1 << 1

	// UsePassword: when decorating an existing user, keep that user's
	// system password hash instead of disabling the account ("*").
	UsePassword Flags = 1 << 4
	// SetPassword records that UsePassword was explicitly configured.
	SetPassword Flags = 1 << 5
)

// Rule is one authored policy block: an optional process glob, an
// optional name suffix, and the attributes applied when both match.
type Rule struct {
	Argv   string
	Suffix string

	Shell string
	Home  string
	Gecos string

	MinUID uint32
	MaxUID uint32
	GID    uint32

	Flags Flags
}

// Config is a fully parsed policy file: the UID-hash seed, an optional
// debug log path, and the ordered sequence of rules as authored. Rule
// order matters — within a bucket (see resolver.go) a later rule's
// non-empty fields override an earlier rule's.
type Config struct {
	Seed  string
	Debug string

	Rules []Rule
}
