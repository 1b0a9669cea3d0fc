package encoding

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/arloliu/varbin/endian"
	"github.com/arloliu/varbin/internal/options"
)

// LengthPrefixSize is the size of the length prefix in front of every plain-encoded value.
const LengthPrefixSize = 4

// PlainCursor walks a plain-encoded byte buffer: a sequence of records, each a 4-byte
// little-endian length followed by that many value bytes.
//
// The cursor borrows the buffer and never copies it. Returned values alias the buffer
// (with their capacity clipped to their length), so they stay valid only as long as the
// buffer does.
//
// maxCount is the number of values the cursor may produce. It equals the number of
// values in the buffer when the column has no nulls; with nulls it is an upper bound
// supplied by the caller's validity metadata.
//
// PlainCursor is forward-only and not safe for concurrent use.
type PlainCursor struct {
	data      []byte
	pos       int
	remaining int
	engine    endian.EndianEngine
	err       error
}

// NewPlainCursor creates a cursor over data that yields at most maxCount values.
// It panics if maxCount is negative or an option is invalid.
func NewPlainCursor(data []byte, maxCount int, opts ...CursorOption) *PlainCursor {
	if maxCount < 0 {
		panic(fmt.Sprintf("encoding: negative plain cursor count %d", maxCount))
	}

	cfg := &cursorConfig{engine: endian.GetLittleEndianEngine()}
	options.MustApply(cfg, opts...)

	return &PlainCursor{
		data:      data,
		remaining: maxCount,
		engine:    cfg.engine,
	}
}

// Next returns the next value.
//
// Once maxCount values have been produced it returns io.EOF; if bytes are left over
// at that point the buffer and the count disagree, which is a caller bug, and Next
// panics. A buffer that ends inside a record yields an error wrapping
// ErrCorruptEncoding. Errors are sticky: every later call returns the same error.
func (c *PlainCursor) Next() ([]byte, error) {
	if c.err != nil {
		return nil, c.err
	}

	if c.remaining == 0 {
		if c.pos != len(c.data) {
			panic(fmt.Sprintf("encoding: plain cursor exhausted with %d unconsumed bytes at offset %d",
				len(c.data)-c.pos, c.pos))
		}

		return nil, io.EOF
	}

	rest := c.data[c.pos:]
	if len(rest) < LengthPrefixSize {
		c.err = fmt.Errorf("%w: length prefix at offset %d needs %d bytes, %d left",
			ErrCorruptEncoding, c.pos, LengthPrefixSize, len(rest))

		return nil, c.err
	}

	length := uint64(c.engine.Uint32(rest))
	if length > uint64(len(rest)-LengthPrefixSize) {
		c.err = fmt.Errorf("%w: value at offset %d declares %d bytes, %d left",
			ErrCorruptEncoding, c.pos, length, len(rest)-LengthPrefixSize)

		return nil, c.err
	}

	end := LengthPrefixSize + int(length)
	value := rest[LengthPrefixSize:end:end]

	c.pos += end
	c.remaining--

	return value, nil
}

// All returns an iterator over the remaining values. Iteration ends after the last
// value or after yielding the first error.
func (c *PlainCursor) All() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for {
			value, err := c.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(value, nil) {
				return
			}
		}
	}
}

// RemainingUpperBound returns how many more values the cursor may produce. It is the
// exact remaining count only when the column has no nulls.
func (c *PlainCursor) RemainingUpperBound() int {
	return c.remaining
}

// SizeHint returns the bounds on the number of remaining values: a lower bound of 0
// and an upper bound of RemainingUpperBound.
func (c *PlainCursor) SizeHint() (lower, upper int) {
	return 0, c.remaining
}

// Offset returns the number of bytes consumed so far.
func (c *PlainCursor) Offset() int {
	return c.pos
}
