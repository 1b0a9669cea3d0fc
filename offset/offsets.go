// Package offset implements the offsets half of the variable-size binary layout.
//
// An offsets sequence for N values holds N+1 non-decreasing integers. Element 0 is
// always 0 and element i+1 minus element i is the byte length of value i, so the last
// element equals the total number of value bytes. The element type is either int32
// or int64, fixed per instantiation, matching the 32-bit and 64-bit binary column
// layouts.
package offset

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/JohnCGriffin/overflow"

	"github.com/arloliu/varbin/format"
)

// ErrOverflow is returned when a cumulative byte length cannot be represented
// by the offset width.
var ErrOverflow = errors.New("offset overflow")

// Offset is the set of integer types usable as offsets.
type Offset interface {
	int32 | int64
}

// Width returns the format.OffsetWidth that corresponds to O.
func Width[O Offset]() format.OffsetWidth {
	var zero O
	if _, ok := any(zero).(int32); ok {
		return format.Offset32
	}

	return format.Offset64
}

// Offsets is a growable offsets sequence.
//
// The zero value is an empty sequence ready for use; New pre-sizes the backing slice.
type Offsets[O Offset] struct {
	buf []O
}

// New creates an empty offsets sequence with room for capacity values
// (capacity+1 offsets) before the backing slice has to grow.
func New[O Offset](capacity int) Offsets[O] {
	capacity = max(capacity, 0)
	buf := make([]O, 1, capacity+1)

	return Offsets[O]{buf: buf}
}

func (o *Offsets[O]) init() {
	if len(o.buf) == 0 {
		o.buf = append(o.buf[:0], 0)
	}
}

// Len returns the number of values described by the sequence.
func (o *Offsets[O]) Len() int {
	if len(o.buf) == 0 {
		return 0
	}

	return len(o.buf) - 1
}

// Capacity returns the number of values the sequence can describe before growing.
func (o *Offsets[O]) Capacity() int {
	if cap(o.buf) == 0 {
		return 0
	}

	return cap(o.buf) - 1
}

// ByteLen returns the encoded size of the sequence in bytes, leading zero included.
func (o *Offsets[O]) ByteLen() int {
	return (o.Len() + 1) * Width[O]().ByteSize()
}

// Last returns the last offset, which is the total byte length of all values.
func (o *Offsets[O]) Last() O {
	if len(o.buf) == 0 {
		return 0
	}

	return o.buf[len(o.buf)-1]
}

// TryPush appends the offset of a value of the given byte length.
//
// It returns an error wrapping ErrOverflow when length is negative or when the new
// cumulative length does not fit in O. The sequence is unchanged on error.
func (o *Offsets[O]) TryPush(length int) error {
	if length < 0 {
		return fmt.Errorf("%w: negative value length %d", ErrOverflow, length)
	}

	width := Width[O]()
	last := int64(o.Last())
	next, ok := overflow.Add64(last, int64(length))
	if !ok || next > width.MaxOffset() {
		return fmt.Errorf("%w: %d + %d exceeds %s range", ErrOverflow, last, length, width)
	}

	o.init()
	o.buf = append(o.buf, O(next))

	return nil
}

// ExtendConstant appends n zero-length values by repeating the last offset.
func (o *Offsets[O]) ExtendConstant(n int) {
	if n <= 0 {
		return
	}

	o.init()
	last := o.buf[len(o.buf)-1]
	o.buf = slices.Grow(o.buf, n)
	for range n {
		o.buf = append(o.buf, last)
	}
}

// Reserve grows the backing slice so that n more values fit without reallocating.
func (o *Offsets[O]) Reserve(n int) {
	if n <= 0 {
		return
	}

	o.init()
	o.buf = slices.Grow(o.buf, n)
}

// Range returns the byte range [start, end) of value i.
// Panics if i is out of range.
func (o *Offsets[O]) Range(i int) (start, end int) {
	if i < 0 || i >= o.Len() {
		panic(fmt.Sprintf("offset: index %d out of range [0, %d)", i, o.Len()))
	}

	return int(o.buf[i]), int(o.buf[i+1])
}

// Lengths returns an iterator over the byte length of every value.
func (o *Offsets[O]) Lengths() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 1; i < len(o.buf); i++ {
			if !yield(int(o.buf[i] - o.buf[i-1])) {
				return
			}
		}
	}
}

// Buffer returns the raw offsets, including the leading zero.
// The returned slice shares memory with the sequence.
func (o *Offsets[O]) Buffer() []O {
	o.init()
	return o.buf
}
