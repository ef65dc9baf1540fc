package autouser

import (
	"errors"
	"fmt"
)

// DefaultShell is used whenever a rule does not configure one.
const DefaultShell = "/bin/bash"

// ErrBufferTooSmall is returned by WriteRecord when buf cannot hold
// every field; callers answer the NSS caller with TryAgain/ERANGE.
var ErrBufferTooSmall = errors.New("autouser: record buffer too small")

// bumpBuffer is a minimal bump allocator over a caller-supplied flat
// byte slice: each Add copies one NUL-terminated string in, advancing
// the cursor, and fails once the remaining space can't hold it. It
// plays the role the original store_result's raw `char**dest`/`end`
// pointer pair played, without the unsafe pointer arithmetic — once a
// field fails to fit, the whole allocator is poisoned, matching
// store_result leaving the output record unusable on any overflow.
type bumpBuffer struct {
	buf    []byte
	cursor int
	failed bool
}

func newBumpBuffer(buf []byte) *bumpBuffer {
	return &bumpBuffer{buf: buf}
}

// add copies str plus its NUL terminator into the buffer and returns
// str itself, not a view into the buffer: the returned strings do not
// alias caller memory.
func (b *bumpBuffer) add(str string) string {
	if b.failed {
		return ""
	}
	need := len(str) + 1
	if b.cursor+need > len(b.buf) {
		b.failed = true
		return ""
	}
	start := b.cursor
	copy(b.buf[start:], str)
	b.buf[start+len(str)] = 0
	b.cursor += need
	return str
}

// WriteRecord packs name, the resolved rule, and either a synthesized
// uid or a decorated source record into buf, in the fixed field order
// name, password, gecos, shell, home, and publishes the AUTOUSER_*
// variables through env. original (the full requested name, before any
// suffix was stripped) is not written into buf; it is only published as
// AUTOUSER_ORIGINAL. fullHome controls whether home (if set) is used verbatim
// as the directory, or treated as a parent under which "/<name>" is
// appended — callers decide it explicitly rather than WriteRecord
// deriving it from the rule, because a decoration record always uses
// full-home semantics regardless of the rule's FullHomePath flag (the
// fallback home is the decorated user's own directory, which must never
// have the name appended again).
//
// decoration, if non-nil, is the existing system user being decorated;
// its password is reused only when the rule's UsePassword flag is set,
// and its shell/home/gecos fill in anything the rule left blank.
func WriteRecord(buf []byte, original, name string, uid uint32, rule *Rule, decoration *Passwd, fullHome, autogen bool, env EnvSink) (*Passwd, error) {
	gid := rule.GID
	if gid == 0 {
		gid = uid
	}

	shell := rule.Shell
	gecos := rule.Gecos
	home := rule.Home
	var password string
	if decoration != nil {
		if shell == "" {
			shell = decoration.Shell
		}
		if home == "" {
			home = decoration.Dir
		}
		if gecos == "" {
			gecos = decoration.Gecos
		}
		if rule.Flags&UsePassword != 0 {
			password = decoration.Passwd
		}
	}
	if shell == "" {
		shell = DefaultShell
	}
	if password == "" {
		password = "*"
	}

	dir := home
	if home == "" || !fullHome {
		base := home
		if base == "" {
			base = "/home"
		}
		dir = fmt.Sprintf("%s/%s", base, name)
	}

	w := newBumpBuffer(buf)
	p := &Passwd{
		Name:   w.add(name),
		Passwd: w.add(password),
		Gecos:  w.add(gecos),
		Shell:  w.add(shell),
		Dir:    w.add(dir),
		UID:    uid,
		GID:    gid,
	}
	if w.failed {
		return nil, ErrBufferTooSmall
	}

	publishEnv(env, original, p, autogen)
	return p, nil
}

func publishEnv(env EnvSink, original string, p *Passwd, autogen bool) {
	env.Setenv("AUTOUSER_ORIGINAL", original)
	env.Setenv("AUTOUSER_NAME", p.Name)
	env.Setenv("AUTOUSER_SHELL", p.Shell)
	env.Setenv("AUTOUSER_HOME", p.Dir)
	env.Setenv("AUTOUSER_GECOS", p.Gecos)
	env.Setenv("AUTOUSER_UID", fmt.Sprintf("%d", p.UID))
	env.Setenv("AUTOUSER_GID", fmt.Sprintf("%d", p.GID))
	if autogen {
		env.Setenv("AUTOUSER_AUTOGEN", "true")
	} else {
		env.Setenv("AUTOUSER_AUTOGEN", "false")
	}
}
