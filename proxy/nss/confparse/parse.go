package confparse

// ParseBuffer parses buf against table into a freshly zeroed T and
// returns it alongside any error. Reading the configuration source
// (a file, an embedded asset, a network fetch) is the caller's
// responsibility — mirroring the original engine's split between
// parse_buffer and parse_file, this package only ever touches the bytes
// it is handed.
//
// Required-option and localized lexical errors are already attached to
// the context by the time ParseSection returns them. Command (unknown
// command) and Repeated only carry a bare Kind up to here — this is
// where they finally get a line/column-localized message, same as the
// engine this package is grounded on attaches it at the outermost
// buffer-parsing entry point rather than at every recursive level.
func ParseBuffer[T any](buf []byte, table []Statement[T]) (*T, error) {
	ctx := NewContext(buf)
	dest := new(T)
	kind := ParseSection(ctx, table, dest)
	if kind == Success {
		return dest, nil
	}
	if ctx.Err().IsSet() {
		return nil, ctx.Err()
	}
	switch kind {
	case Command:
		ctx.Errorf(Command, "unknown command found around '%.16s'", remainder(ctx))
	case Repeated:
		ctx.Errorf(Repeated, "command can only appear once")
	default:
		ctx.Errorf(kind, "parsing failed")
	}
	return nil, ctx.Err()
}

func remainder(ctx *Context) string {
	start := ctx.Pos()
	end := start + 16
	if end > len(ctx.input) {
		end = len(ctx.input)
	}
	return string(ctx.input[start:end])
}
