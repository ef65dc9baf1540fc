package confparse

import "strconv"

func isLineSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

// isSpace mirrors C's isspace: space, tab, newline, vertical tab, form
// feed, carriage return.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// SkipLineSpaces advances past space and tab. It never crosses a
// newline or the end of input.
func (c *Context) SkipLineSpaces() {
	for !c.AtEOF() && isLineSpace(c.cur()) {
		c.pos++
	}
}

// SkipUntilField advances past line spaces and fails unless the cursor
// now sits on something that can start a field: not end-of-input, and
// not any other whitespace (a stray newline, \r, \v, ...).
func (c *Context) SkipUntilField() Kind {
	c.SkipLineSpaces()
	if c.AtEOF() {
		return c.Errorf(Unexpected, "was expecting a field - found end of config")
	}
	if isSpace(c.cur()) {
		return c.Errorf(Unexpected, "was expecting a field - found a new line? unexpected space")
	}
	return Success
}

// SkipUntilEOL advances the cursor to the next newline, or to
// end-of-input, without consuming it.
func (c *Context) SkipUntilEOL() {
	for !c.AtEOF() && c.cur() != '\n' {
		c.pos++
	}
}

// ParseQuotedString requires an opening '"' and scans to a matching
// unescaped '"'. Embedded newlines are permitted and tracked. Only \\
// and \" are recognized escapes; anything else is a PARSE_QUOTE error,
// and an unterminated string is an UNEXPECTED error.
func (c *Context) ParseQuotedString() (string, Kind) {
	if k := c.SkipUntilField(); k != Success {
		return "", k
	}
	if c.cur() != '"' {
		return "", c.Errorf(ParseQuote, "was expecting a quoted string, starting with '\"', found '%c'", c.cur())
	}

	startLine := c.line
	c.pos++

	var out []byte
	for {
		if c.AtEOF() {
			return "", c.errorfAt(Unexpected, startLine, "reached end of file, without finding the closing '\"'")
		}
		b := c.cur()
		if b == '"' {
			c.pos++
			break
		}
		if b == '\n' {
			out = append(out, b)
			c.newline()
			c.pos++
			continue
		}
		if b != '\\' {
			out = append(out, b)
			c.pos++
			continue
		}
		// b == '\\'
		if c.pos+1 >= len(c.input) {
			return "", c.Errorf(Unexpected, "reached end of file, while processing escape '\\'")
		}
		next := c.peek(1)
		if next != '"' && next != '\\' {
			return "", c.Errorf(ParseQuote, "escape sequence '\\%c' is unknown - only \\\\ and \\\" supported", next)
		}
		out = append(out, next)
		c.pos += 2
	}

	return string(out), Success
}

// ParseString parses either a quoted string (delegating to
// ParseQuotedString) or a bare token running to the next whitespace.
func (c *Context) ParseString() (string, Kind) {
	if k := c.SkipUntilField(); k != Success {
		return "", k
	}
	if c.cur() == '"' {
		return c.ParseQuotedString()
	}

	start := c.pos
	for !c.AtEOF() && !isSpace(c.cur()) {
		c.pos++
	}
	return string(c.input[start:c.pos]), Success
}

// rawToken scans the maximal run of non-whitespace bytes starting at the
// cursor, without consuming leading space. Used by the numeric scanners,
// which must guarantee the terminating character is whitespace or EOF.
func (c *Context) rawToken() string {
	start := c.pos
	for !c.AtEOF() && !isSpace(c.cur()) {
		c.pos++
	}
	return string(c.input[start:c.pos])
}

// ParseUint64 scans an unsigned C-style numeric literal (decimal, 0x...,
// 0...), optionally preceded by a single '+'. The value must not exceed
// limit, and the token must end at whitespace or end-of-input.
func (c *Context) ParseUint64(limit uint64) (uint64, Kind) {
	if k := c.SkipUntilField(); k != Success {
		return 0, k
	}
	first := c.cur()
	if first != '+' && !(first >= '0' && first <= '9') {
		return 0, c.Errorf(ParseInt, "was expecting a digit, found '%c'", first)
	}

	token := c.rawToken()
	digits := token
	if len(digits) > 0 && digits[0] == '+' {
		digits = digits[1:]
	}
	value, err := strconv.ParseUint(digits, 0, 64)
	if err != nil {
		return 0, c.Errorf(ParseInt, "was expecting a number, found invalid token '%s'", token)
	}
	if value > limit {
		return 0, c.Errorf(ParseInt, "specified number is too large (max: %d)", limit)
	}
	return value, Success
}

// ParseInt64 is like ParseUint64 but also accepts a leading '-' and
// enforces min <= value <= max.
func (c *Context) ParseInt64(min, max int64) (int64, Kind) {
	if k := c.SkipUntilField(); k != Success {
		return 0, k
	}
	first := c.cur()
	if first != '+' && first != '-' && !(first >= '0' && first <= '9') {
		return 0, c.Errorf(ParseInt, "was expecting a digit, found '%c'", first)
	}

	token := c.rawToken()
	value, err := strconv.ParseInt(token, 0, 64)
	if err != nil {
		return 0, c.Errorf(ParseInt, "was expecting a number, found invalid token '%s'", token)
	}
	if value < min || value > max {
		return 0, c.Errorf(ParseInt, "specified number is outside valid range (min:%d, max:%d): %d", min, max, value)
	}
	return value, Success
}

var trueWords = []string{"True", "true", "yes", "on"}
var falseWords = []string{"False", "false", "no", "off"}

// parseBoolToken implements the shared prefix-matching logic behind
// ParseBool32/ParseBool64: it does not tokenize first, it matches the
// known literal words as prefixes of the remaining input, exactly as
// the grammar this package is grounded on does, so "yesno" fails (it
// matches "yes" then finds a non-terminator).
func (c *Context) parseBoolToken() (bool, Kind) {
	if k := c.SkipUntilField(); k != Success {
		return false, k
	}

	remaining := c.input[c.pos:]
	matchLen := -1
	var value bool
	for _, w := range trueWords {
		if hasPrefix(remaining, w) {
			matchLen = len(w)
			value = true
			break
		}
	}
	if matchLen < 0 {
		for _, w := range falseWords {
			if hasPrefix(remaining, w) {
				matchLen = len(w)
				value = false
				break
			}
		}
	}
	if matchLen < 0 {
		return false, c.Errorf(ParseBool, "was expecting a boolean (True/true/yes/on or False/false/no/off)")
	}
	c.pos += matchLen

	if c.AtEOF() || isSpace(c.cur()) {
		return value, Success
	}
	return false, c.Errorf(ParseBool, "unexpected character after bool %c", c.cur())
}

func hasPrefix(s []byte, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return string(s[:len(prefix)]) == prefix
}

// ParseBool32 recognizes True/true/yes/on or False/false/no/off as a
// prefix of the remaining input. On a true match it sets both seenBit
// and flipBit in *dest; on a false match it sets seenBit and clears
// flipBit. The terminating character must be whitespace or end-of-input.
func (c *Context) ParseBool32(seenBit, flipBit uint32, dest *uint32) Kind {
	value, k := c.parseBoolToken()
	if k != Success {
		return k
	}
	if value {
		*dest = assignBits(*dest, seenBit|flipBit, seenBit|flipBit)
	} else {
		*dest = assignBits(*dest, seenBit, seenBit|flipBit)
	}
	return Success
}

// ParseBool64 is the 64-bit flag-word variant of ParseBool32.
func (c *Context) ParseBool64(seenBit, flipBit uint64, dest *uint64) Kind {
	value, k := c.parseBoolToken()
	if k != Success {
		return k
	}
	if value {
		*dest = assignBits64(*dest, seenBit|flipBit, seenBit|flipBit)
	} else {
		*dest = assignBits64(*dest, seenBit, seenBit|flipBit)
	}
	return Success
}

// assignBits copies the bits of mask from source into dest, leaving the
// rest of dest untouched.
func assignBits(dest, source, mask uint32) uint32 {
	return dest ^ ((dest ^ source) & mask)
}

func assignBits64(dest, source, mask uint64) uint64 {
	return dest ^ ((dest ^ source) & mask)
}
