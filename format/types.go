package format

import "math"

// OffsetWidth selects the integer width of an offsets sequence.
type OffsetWidth uint8

const (
	Offset32 OffsetWidth = 0x1 // Offset32 represents 32-bit signed offsets (binary/string columns).
	Offset64 OffsetWidth = 0x2 // Offset64 represents 64-bit signed offsets (large binary/string columns).
)

// ByteSize returns the number of bytes used by a single offset of this width.
// Unknown widths report 0.
func (w OffsetWidth) ByteSize() int {
	switch w {
	case Offset32:
		return 4
	case Offset64:
		return 8
	default:
		return 0
	}
}

// MaxOffset returns the largest cumulative byte length representable by this width.
// Unknown widths report 0.
func (w OffsetWidth) MaxOffset() int64 {
	switch w {
	case Offset32:
		return math.MaxInt32
	case Offset64:
		return math.MaxInt64
	default:
		return 0
	}
}

func (w OffsetWidth) String() string {
	switch w {
	case Offset32:
		return "Offset32"
	case Offset64:
		return "Offset64"
	default:
		return "Unknown"
	}
}
