package autouser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRecordGidDefaultsToUid(t *testing.T) {
	env := MapEnv{}
	p, err := WriteRecord(make([]byte, 256), "fueller", "fueller", 4242, &Rule{}, nil, false, true, env)
	require.NoError(t, err)
	assert.EqualValues(t, 4242, p.GID)
	assert.Equal(t, "*", p.Passwd)
	assert.Equal(t, DefaultShell, p.Shell)
	assert.Equal(t, "/home/fueller", p.Dir)
}

func TestWriteRecordExplicitGid(t *testing.T) {
	p, err := WriteRecord(make([]byte, 256), "fueller", "fueller", 4242, &Rule{GID: 99}, nil, false, true, MapEnv{})
	require.NoError(t, err)
	assert.EqualValues(t, 99, p.GID)
}

func TestWriteRecordFullHomeVerbatim(t *testing.T) {
	rule := &Rule{Home: "/srv/fueller"}
	p, err := WriteRecord(make([]byte, 256), "fueller", "fueller", 1, rule, nil, true, false, MapEnv{})
	require.NoError(t, err)
	assert.Equal(t, "/srv/fueller", p.Dir)
}

func TestWriteRecordHomeComposedWithName(t *testing.T) {
	rule := &Rule{Home: "/srv"}
	p, err := WriteRecord(make([]byte, 256), "fueller", "fueller", 1, rule, nil, false, false, MapEnv{})
	require.NoError(t, err)
	assert.Equal(t, "/srv/fueller", p.Dir)
}

func TestWriteRecordDecorationFillsBlankFields(t *testing.T) {
	decoration := &Passwd{Shell: "/bin/zsh", Dir: "/home/bin", Gecos: "Bin Account", Passwd: "hash"}
	p, err := WriteRecord(make([]byte, 256), "bin:docker", "bin", 2, &Rule{}, decoration, true, false, MapEnv{})
	require.NoError(t, err)
	assert.Equal(t, "/bin/zsh", p.Shell)
	assert.Equal(t, "/home/bin", p.Dir)
	assert.Equal(t, "Bin Account", p.Gecos)
	assert.Equal(t, "*", p.Passwd, "password is not propagated without UsePassword")
}

func TestWriteRecordPropagatesPasswordWhenFlagged(t *testing.T) {
	decoration := &Passwd{Shell: "/bin/zsh", Passwd: "hash"}
	p, err := WriteRecord(make([]byte, 256), "bin:docker", "bin", 2, &Rule{Flags: UsePassword}, decoration, true, false, MapEnv{})
	require.NoError(t, err)
	assert.Equal(t, "hash", p.Passwd)
}

func TestWriteRecordRuleFieldsOverrideDecoration(t *testing.T) {
	decoration := &Passwd{Shell: "/bin/zsh"}
	rule := &Rule{Shell: "/bin/docker-login"}
	p, err := WriteRecord(make([]byte, 256), "bin:docker", "bin", 2, rule, decoration, true, false, MapEnv{})
	require.NoError(t, err)
	assert.Equal(t, "/bin/docker-login", p.Shell)
}

func TestWriteRecordBufferTooSmall(t *testing.T) {
	_, err := WriteRecord(make([]byte, 3), "fueller", "fueller", 1, &Rule{}, nil, false, false, MapEnv{})
	assert.ErrorIs(t, err, ErrBufferTooSmall)
}

func TestWriteRecordPublishesEnvironment(t *testing.T) {
	env := MapEnv{}
	_, err := WriteRecord(make([]byte, 256), "fueller", "fueller", 7777, &Rule{}, nil, false, true, env)
	require.NoError(t, err)

	assert.Equal(t, "fueller", env["AUTOUSER_ORIGINAL"])
	assert.Equal(t, "fueller", env["AUTOUSER_NAME"])
	assert.Equal(t, "7777", env["AUTOUSER_UID"])
	assert.Equal(t, "7777", env["AUTOUSER_GID"])
	assert.Equal(t, "/home/fueller", env["AUTOUSER_HOME"])
	assert.Equal(t, DefaultShell, env["AUTOUSER_SHELL"])
	assert.Equal(t, "", env["AUTOUSER_GECOS"])
	assert.Equal(t, "true", env["AUTOUSER_AUTOGEN"])
}

func TestBumpBufferPoisonsOnFirstOverflow(t *testing.T) {
	b := newBumpBuffer(make([]byte, 4))
	assert.Equal(t, "abc", b.add("abc"))
	assert.Equal(t, "", b.add("more"))
	assert.True(t, b.failed)
	assert.Equal(t, "", b.add("x"), "once poisoned, every further add is a no-op")
}
