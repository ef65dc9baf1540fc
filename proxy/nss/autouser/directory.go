package autouser

import "context"

// Passwd is the POSIX passwd shape this package ultimately produces and
// consumes: the strings a caller's flat record buffer is bump-allocated
// from, plus the numeric uid/gid.
type Passwd struct {
	Name   string
	Passwd string
	Gecos  string
	Dir    string
	Shell  string
	UID    uint32
	GID    uint32
}

// Directory abstracts "is this name/uid already a known system user",
// the one external collaborator §1 of the policy this package
// implements calls out as out of scope: the original engine always
// asked glibc via a nested getpwnam_r/getpwuid_r call, but nothing
// about decoration or collision-avoidance actually requires that
// specific backend. Swapping the implementation (OS accounts, a SQL
// identity table, a static map in tests) never changes resolver,
// hasher, or record-writer behavior.
type Directory interface {
	// Lookup returns the existing user's record, or found=false if
	// name is not a known user.
	Lookup(ctx context.Context, name string) (pwd *Passwd, found bool, err error)
	// Exists reports whether uid already belongs to a known user.
	Exists(ctx context.Context, uid uint32) (bool, error)
}

// NoneDirectory is a Directory with no existing users at all: every
// Lookup misses and no uid ever Exists. Useful for tests and for
// deployments that only ever synthesize accounts.
type NoneDirectory struct{}

func (NoneDirectory) Lookup(context.Context, string) (*Passwd, bool, error) { return nil, false, nil }
func (NoneDirectory) Exists(context.Context, uint32) (bool, error)          { return false, nil }

// MapDirectory is an in-memory Directory keyed by user name, used by
// tests to exercise resolution without touching the host's real user
// database.
type MapDirectory map[string]Passwd

func (m MapDirectory) Lookup(_ context.Context, name string) (*Passwd, bool, error) {
	p, ok := m[name]
	if !ok {
		return nil, false, nil
	}
	return &p, true, nil
}

func (m MapDirectory) Exists(_ context.Context, uid uint32) (bool, error) {
	for _, p := range m {
		if p.UID == uid {
			return true, nil
		}
	}
	return false, nil
}
