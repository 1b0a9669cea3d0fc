package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/varbin/endian"
	"github.com/arloliu/varbin/internal/pool"
)

// PlainEncoder frames byte values with the plain encoding read by PlainCursor.
// Each value is encoded as: [length:uint32][bytes]
//
// The output is accumulated in a pooled ByteBuffer. Call Finish when done to return
// the buffer to the pool.
type PlainEncoder struct {
	buf    *pool.ByteBuffer
	count  int
	engine endian.EndianEngine
}

// NewPlainEncoder creates a new plain encoder writing length prefixes with engine.
// Use endian.GetLittleEndianEngine for the standard plain encoding.
func NewPlainEncoder(engine endian.EndianEngine) *PlainEncoder {
	return &PlainEncoder{
		engine: engine,
		buf:    pool.GetPageBuffer(),
	}
}

// Write encodes a single value.
//
// Returns an error wrapping ErrValueTooLarge if the value is longer than a uint32
// length prefix can describe. Nothing is written in that case.
func (e *PlainEncoder) Write(value []byte) error {
	if err := checkValueLength(value); err != nil {
		return err
	}

	oldLen := e.buf.Len()
	e.buf.ExtendOrGrow(LengthPrefixSize + len(value))
	buf := e.buf.Bytes()

	e.engine.PutUint32(buf[oldLen:], uint32(len(value))) //nolint:gosec // checked above
	copy(buf[oldLen+LengthPrefixSize:], value)

	e.count++

	return nil
}

// WriteSlice encodes values in order with a single buffer growth.
// All values are validated before anything is written.
func (e *PlainEncoder) WriteSlice(values [][]byte) error {
	if len(values) == 0 {
		return nil
	}

	totalSize := 0
	for _, value := range values {
		if err := checkValueLength(value); err != nil {
			return err
		}
		totalSize += LengthPrefixSize + len(value)
	}

	offset := e.buf.Len()
	e.buf.ExtendOrGrow(totalSize)
	buf := e.buf.Bytes()

	for _, value := range values {
		e.engine.PutUint32(buf[offset:], uint32(len(value))) //nolint:gosec // checked above
		offset += LengthPrefixSize
		offset += copy(buf[offset:], value)
	}

	e.count += len(values)

	return nil
}

// Bytes returns the encoded data.
// The returned slice is valid until the next call to Write, WriteSlice, or Finish.
func (e *PlainEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of values encoded since the last Reset or Finish.
func (e *PlainEncoder) Len() int {
	return e.count
}

// Size returns the number of encoded bytes.
func (e *PlainEncoder) Size() int {
	return e.buf.Len()
}

// Reset clears the value count but keeps the encoded bytes, so several batches can be
// framed into one buffer.
func (e *PlainEncoder) Reset() {
	e.count = 0
}

// Finish returns the buffer to the pool and leaves the encoder empty and reusable.
// Slices previously returned by Bytes must not be used afterwards.
func (e *PlainEncoder) Finish() {
	pool.PutPageBuffer(e.buf)
	e.buf = pool.GetPageBuffer()
	e.count = 0
}

// EncodePlain returns the plain encoding of values in a newly allocated slice.
func EncodePlain(values [][]byte) ([]byte, error) {
	encoder := NewPlainEncoder(endian.GetLittleEndianEngine())
	defer encoder.Finish()

	if err := encoder.WriteSlice(values); err != nil {
		return nil, err
	}

	return append([]byte(nil), encoder.Bytes()...), nil
}

func checkValueLength(value []byte) error {
	if uint64(len(value)) > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes", ErrValueTooLarge, len(value))
	}

	return nil
}
