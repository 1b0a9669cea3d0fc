package encoding

import (
	"errors"

	"github.com/arloliu/varbin/offset"
)

var (
	// ErrOffsetOverflow is returned when a pushed value would make the cumulative byte
	// length exceed the range of the builder's offset width.
	ErrOffsetOverflow = offset.ErrOverflow

	// ErrCorruptEncoding is returned when a plain-encoded buffer ends inside a length
	// prefix or inside the value bytes the prefix announces.
	ErrCorruptEncoding = errors.New("corrupt plain encoding")

	// ErrValueTooLarge is returned when a value cannot be described by a 4-byte length prefix.
	ErrValueTooLarge = errors.New("value too large for plain encoding")
)
