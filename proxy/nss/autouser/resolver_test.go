package autouser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePrecedenceWithinBucket(t *testing.T) {
	cfg := &Config{
		Rules: []Rule{
			{Shell: "/bin/first", MinUID: 100, MaxUID: 200},
			{Shell: "/bin/second", MaxUID: 300},
		},
	}

	resolved := Resolve(cfg, "anything", "alice")

	assert.Equal(t, "/bin/second", resolved.Rule.Shell)
	assert.EqualValues(t, 100, resolved.Rule.MinUID, "zero fields in the later rule must not clobber the earlier one")
	assert.EqualValues(t, 300, resolved.Rule.MaxUID)
	assert.Equal(t, -1, resolved.SuffixOffset)
}

func TestResolveBucketPrecedenceOrder(t *testing.T) {
	cfg := &Config{
		Rules: []Rule{
			{Shell: "/bin/def-def"},
			{Suffix: ":svc", Shell: "/bin/def-svc"},
			{Argv: "sshd", Shell: "/bin/set-def"},
			{Argv: "sshd", Suffix: ":svc", Shell: "/bin/set-svc"},
		},
	}

	resolved := Resolve(cfg, "sshd", "bob:svc")
	assert.Equal(t, "/bin/set-svc", resolved.Rule.Shell, "the most specific bucket (set-process x set-user) wins")
	assert.Equal(t, 3, resolved.SuffixOffset)

	resolved = Resolve(cfg, "telnetd", "bob:svc")
	assert.Equal(t, "/bin/def-svc", resolved.Rule.Shell, "set-process bucket never matches a different process")
}

func TestResolveNoMatchReturnsZeroRule(t *testing.T) {
	cfg := &Config{Rules: []Rule{{Argv: "sshd", Shell: "/bin/x"}}}

	resolved := Resolve(cfg, "telnetd", "bob")
	assert.Equal(t, Rule{}, resolved.Rule)
	assert.Equal(t, -1, resolved.SuffixOffset)
}

func TestResolveGlobMatchesFullProcessPath(t *testing.T) {
	cfg := &Config{Rules: []Rule{{Argv: "/usr/sbin/ssh*", Shell: "/bin/x"}}}

	resolved := Resolve(cfg, "/usr/sbin/sshd", "bob")
	assert.Equal(t, "/bin/x", resolved.Rule.Shell)
}

func TestResolveFlagBitsMergeAsAUnit(t *testing.T) {
	cfg := &Config{
		Rules: []Rule{
			{Flags: SetFullHome | UseFullHome},
			{Flags: SetPassword}, // PropagatePassword false, explicitly set
		},
	}

	resolved := Resolve(cfg, "x", "y")
	assert.NotZero(t, resolved.Rule.Flags&UseFullHome, "earlier rule's explicit true must survive a later rule that only sets a different flag")
	assert.Zero(t, resolved.Rule.Flags&UsePassword, "later rule's explicit false must override the unset default")
}

func TestSuffixIndex(t *testing.T) {
	assert.Equal(t, 3, suffixIndex("bob:svc", ":svc"))
	assert.Equal(t, -1, suffixIndex("bob:svc", ":nope"))
	assert.Equal(t, -1, suffixIndex("x", ":toolong"))
	assert.Equal(t, 0, suffixIndex(":svc", ":svc"))
}
