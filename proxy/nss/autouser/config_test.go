package autouser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigEmpty(t *testing.T) {
	cfg, err := ParseConfig([]byte(""))
	require.NoError(t, err)
	assert.Empty(t, cfg.Rules)
}

func TestParseConfigRootFields(t *testing.T) {
	cfg, err := ParseConfig([]byte("Seed myseed\nDebugLog /var/log/autouser.log\n"))
	require.NoError(t, err)
	assert.Equal(t, "myseed", cfg.Seed)
	assert.Equal(t, "/var/log/autouser.log", cfg.Debug)
}

func TestParseConfigBareDefaultRule(t *testing.T) {
	cfg, err := ParseConfig([]byte("MinUid 100\nMaxUid 200\n"))
	require.NoError(t, err)
	require.Len(t, cfg.Rules, 1)
	assert.Equal(t, "", cfg.Rules[0].Argv)
	assert.EqualValues(t, 100, cfg.Rules[0].MinUID)
	assert.EqualValues(t, 200, cfg.Rules[0].MaxUID)
}

func TestParseConfigMultipleSuffixBlocksBecomeSeparateRules(t *testing.T) {
	buf := []byte(`
Match sshd*
  Suffix :docker
    Shell /bin/docker-login
  Suffix :admin
    Shell /bin/admin-login
`)
	cfg, err := ParseConfig(buf)
	require.NoError(t, err)
	require.Len(t, cfg.Rules, 2)

	assert.Equal(t, "sshd*", cfg.Rules[0].Argv)
	assert.Equal(t, ":docker", cfg.Rules[0].Suffix)
	assert.Equal(t, "/bin/docker-login", cfg.Rules[0].Shell)

	assert.Equal(t, "sshd*", cfg.Rules[1].Argv, "the process glob is inherited across Suffix blocks under the same Match")
	assert.Equal(t, ":admin", cfg.Rules[1].Suffix)
	assert.Equal(t, "/bin/admin-login", cfg.Rules[1].Shell)
}

func TestParseConfigBooleanFields(t *testing.T) {
	buf := []byte(`
Match sshd
  Suffix :docker
    PropagatePassword yes
    FullHomePath true
`)
	cfg, err := ParseConfig(buf)
	require.NoError(t, err)
	require.Len(t, cfg.Rules, 1)
	r := cfg.Rules[0]
	assert.NotZero(t, r.Flags&UsePassword)
	assert.NotZero(t, r.Flags&SetPassword)
	assert.NotZero(t, r.Flags&UseFullHome)
	assert.NotZero(t, r.Flags&SetFullHome)
}

func TestParseConfigComments(t *testing.T) {
	buf := []byte(`
# a comment line
Seed x # trailing comment after the statement's last token
`)
	cfg, err := ParseConfig(buf)
	require.NoError(t, err)
	assert.Equal(t, "x", cfg.Seed)
}

func TestParseConfigRejectsUnknownCommand(t *testing.T) {
	_, err := ParseConfig([]byte("Bogus value\n"))
	assert.Error(t, err)
}
