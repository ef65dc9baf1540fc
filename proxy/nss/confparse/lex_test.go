package confparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuotedStringEscapes(t *testing.T) {
	ctx := NewContext([]byte(`"\\foo\"bar\\ goo"uff"`))
	s, kind := ctx.ParseQuotedString()
	require.Equal(t, Success, kind)
	assert.Equal(t, `\foo"bar\ goo`, s)
	assert.Equal(t, byte('u'), ctx.cur())
}

func TestParseQuotedStringUnterminated(t *testing.T) {
	ctx := NewContext([]byte(`"hello`))
	_, kind := ctx.ParseQuotedString()
	assert.Equal(t, Unexpected, kind)
	assert.True(t, ctx.Err().IsSet())
}

func TestParseQuotedStringBadEscape(t *testing.T) {
	ctx := NewContext([]byte(`"a\nb"`))
	_, kind := ctx.ParseQuotedString()
	assert.Equal(t, ParseQuote, kind)
}

func TestParseStringBareToken(t *testing.T) {
	ctx := NewContext([]byte("bareword rest"))
	s, kind := ctx.ParseString()
	require.Equal(t, Success, kind)
	assert.Equal(t, "bareword", s)
	assert.Equal(t, byte(' '), ctx.cur())
}

func TestParseUint64Bounds(t *testing.T) {
	ctx := NewContext([]byte("300 "))
	_, kind := ctx.ParseUint64(255)
	assert.Equal(t, ParseInt, kind)

	ctx = NewContext([]byte("0x2a "))
	v, kind := ctx.ParseUint64(255)
	require.Equal(t, Success, kind)
	assert.Equal(t, uint64(42), v)
}

func TestParseInt64SignAndRange(t *testing.T) {
	ctx := NewContext([]byte("-5 "))
	v, kind := ctx.ParseInt64(-10, 10)
	require.Equal(t, Success, kind)
	assert.Equal(t, int64(-5), v)

	ctx = NewContext([]byte("-50 "))
	_, kind = ctx.ParseInt64(-10, 10)
	assert.Equal(t, ParseInt, kind)
}

func TestParseBool32PrefixMatching(t *testing.T) {
	const seen, flip uint32 = 0x10, 0x01
	dest := uint32(0x1000)

	ctx := NewContext([]byte("yes blah"))
	kind := ctx.ParseBool32(seen, flip, &dest)
	require.Equal(t, Success, kind)
	assert.Equal(t, uint32(0x1011), dest)
	assert.Equal(t, byte(' '), ctx.cur())
}

func TestParseBool32RejectsTrailingGarbage(t *testing.T) {
	var dest uint32
	ctx := NewContext([]byte("yesno"))
	kind := ctx.ParseBool32(0x10, 0x01, &dest)
	assert.Equal(t, ParseBool, kind)
}

func TestParseBool32False(t *testing.T) {
	const seen, flip uint32 = 0x10, 0x01
	dest := uint32(0x1011)
	ctx := NewContext([]byte("off"))
	kind := ctx.ParseBool32(seen, flip, &dest)
	require.Equal(t, Success, kind)
	assert.Equal(t, uint32(0x1010), dest)
}

func TestSkipUntilFieldRejectsNewline(t *testing.T) {
	ctx := NewContext([]byte("  \nrest"))
	kind := ctx.SkipUntilField()
	assert.Equal(t, Unexpected, kind)
}

func TestAssignBits(t *testing.T) {
	assert.Equal(t, uint32(0x1011), assignBits(0x1000, 0x11, 0x11))
	assert.Equal(t, uint32(0x1010), assignBits(0x1011, 0x10, 0x11))
}
