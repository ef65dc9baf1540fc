package confparse

import "math"

// String returns an Adapter that scans a string field (quoted or bare)
// and stores it through get. Later occurrences simply overwrite — Go's
// garbage collector owns the replaced value, there is nothing to free.
func String[T any](get func(*T) *string) Adapter[T] {
	return func(ctx *Context, _ int, dest *T) Kind {
		v, k := ctx.ParseString()
		if k != Success {
			return k
		}
		*get(dest) = v
		return Success
	}
}

// Uint8 returns an Adapter that scans an unsigned integer field bounded
// to uint8's range and stores it through get.
func Uint8[T any](get func(*T) *uint8) Adapter[T] {
	return func(ctx *Context, _ int, dest *T) Kind {
		v, k := ctx.ParseUint64(math.MaxUint8)
		if k != Success {
			return k
		}
		*get(dest) = uint8(v)
		return Success
	}
}

// Uint16 is Uint8's 16-bit counterpart.
func Uint16[T any](get func(*T) *uint16) Adapter[T] {
	return func(ctx *Context, _ int, dest *T) Kind {
		v, k := ctx.ParseUint64(math.MaxUint16)
		if k != Success {
			return k
		}
		*get(dest) = uint16(v)
		return Success
	}
}

// Uint32 is Uint8's 32-bit counterpart.
func Uint32[T any](get func(*T) *uint32) Adapter[T] {
	return func(ctx *Context, _ int, dest *T) Kind {
		v, k := ctx.ParseUint64(math.MaxUint32)
		if k != Success {
			return k
		}
		*get(dest) = uint32(v)
		return Success
	}
}

// Uint64 is Uint8's 64-bit counterpart.
func Uint64[T any](get func(*T) *uint64) Adapter[T] {
	return func(ctx *Context, _ int, dest *T) Kind {
		v, k := ctx.ParseUint64(math.MaxUint64)
		if k != Success {
			return k
		}
		*get(dest) = v
		return Success
	}
}

// Int8 returns an Adapter that scans a signed integer field bounded to
// int8's range and stores it through get.
func Int8[T any](get func(*T) *int8) Adapter[T] {
	return func(ctx *Context, _ int, dest *T) Kind {
		v, k := ctx.ParseInt64(math.MinInt8, math.MaxInt8)
		if k != Success {
			return k
		}
		*get(dest) = int8(v)
		return Success
	}
}

// Int16 is Int8's 16-bit counterpart.
func Int16[T any](get func(*T) *int16) Adapter[T] {
	return func(ctx *Context, _ int, dest *T) Kind {
		v, k := ctx.ParseInt64(math.MinInt16, math.MaxInt16)
		if k != Success {
			return k
		}
		*get(dest) = int16(v)
		return Success
	}
}

// Int32 is Int8's 32-bit counterpart.
func Int32[T any](get func(*T) *int32) Adapter[T] {
	return func(ctx *Context, _ int, dest *T) Kind {
		v, k := ctx.ParseInt64(math.MinInt32, math.MaxInt32)
		if k != Success {
			return k
		}
		*get(dest) = int32(v)
		return Success
	}
}

// Int64 is Int8's 64-bit counterpart.
func Int64[T any](get func(*T) *int64) Adapter[T] {
	return func(ctx *Context, _ int, dest *T) Kind {
		v, k := ctx.ParseInt64(math.MinInt64, math.MaxInt64)
		if k != Success {
			return k
		}
		*get(dest) = v
		return Success
	}
}

// Bool32 returns an Adapter that scans a boolean word (see ParseBool32)
// and folds seenBit/flipBit into the uint32 flag word get returns.
func Bool32[T any](get func(*T) *uint32, seenBit, flipBit uint32) Adapter[T] {
	return func(ctx *Context, _ int, dest *T) Kind {
		return ctx.ParseBool32(seenBit, flipBit, get(dest))
	}
}

// Bool64 is Bool32's 64-bit flag-word counterpart.
func Bool64[T any](get func(*T) *uint64, seenBit, flipBit uint64) Adapter[T] {
	return func(ctx *Context, _ int, dest *T) Kind {
		return ctx.ParseBool64(seenBit, flipBit, get(dest))
	}
}

// Nothing returns an Adapter that consumes no input and always succeeds;
// useful for a bare marker statement whose presence alone is the signal.
func Nothing[T any]() Adapter[T] {
	return func(ctx *Context, _ int, dest *T) Kind {
		return Success
	}
}

// Record returns an Adapter for a statement that starts a new record
// nested under dest (the "match" keyword appending a new rule, as
// opposed to Subsection's "same record, nested fields"). add appends a
// fresh U to dest's collection and returns a pointer to it; the nested
// grammar table then parses directly into that new record.
func Record[T, U any](table []Statement[U], add func(*T) *U) Adapter[T] {
	return func(ctx *Context, tokenStart int, dest *T) Kind {
		ctx.SetPos(tokenStart)
		return ParseSection(ctx, table, add(dest))
	}
}

// Subsection returns an Adapter for a statement that introduces a nested
// block of fields belonging to the *same* record as dest (as opposed to
// Record's "append a new record"). table is parsed directly into dest.
func Subsection[T any](table []Statement[T]) Adapter[T] {
	return func(ctx *Context, tokenStart int, dest *T) Kind {
		ctx.SetPos(tokenStart)
		return ParseSection(ctx, table, dest)
	}
}
