// Package varbin builds and parses variable-length binary columns.
//
// A binary column is stored as an offsets sequence plus one contiguous buffer of value
// bytes: value i is values[offsets[i]:offsets[i+1]]. Pages of such a column arrive
// plain-encoded, as consecutive records of a 4-byte little-endian length followed by
// the value bytes.
//
// # Core Features
//
//   - BinaryBuilder with 32-bit or 64-bit offsets and explicit overflow errors
//   - One-shot value buffer re-estimation after the first 100 values
//   - Zero-copy, bounds-checked PlainCursor over plain-encoded pages
//   - DecodePlain to fill a builder from a page and a validity bitmap
//
// # Basic Usage
//
// Decoding a page that has no nulls:
//
//	offsets, values, err := varbin.DecodeBinary(page, numValues, nil)
//	if err != nil {
//	    return err
//	}
//
// Driving the builder and the cursor by hand:
//
//	builder, _ := varbin.NewBinaryBuilder(numValues)
//	cursor := varbin.NewPlainCursor(page, numNonNull)
//	for i := range numValues {
//	    if !valid[i] {
//	        builder.PushNull()
//	        continue
//	    }
//	    v, err := cursor.Next()
//	    if err != nil {
//	        return err
//	    }
//	    if err := builder.Push(v); err != nil {
//	        return err
//	    }
//	}
//	offsets, values := builder.Take()
//
// # Package Structure
//
// This package wraps the encoding package for the common cases. Use encoding directly
// for custom options or for your own Pushable implementations.
package varbin

import (
	"github.com/arloliu/varbin/encoding"
	"github.com/arloliu/varbin/offset"
)

// NewBinaryBuilder creates a builder with 32-bit offsets sized for capacityHint values.
func NewBinaryBuilder(capacityHint int, opts ...encoding.BuilderOption) (*encoding.BinaryBuilder[int32], error) {
	return encoding.NewBinaryBuilder[int32](capacityHint, opts...)
}

// NewLargeBinaryBuilder creates a builder with 64-bit offsets sized for capacityHint values.
func NewLargeBinaryBuilder(capacityHint int, opts ...encoding.BuilderOption) (*encoding.BinaryBuilder[int64], error) {
	return encoding.NewBinaryBuilder[int64](capacityHint, opts...)
}

// NewPlainCursor creates a cursor over a plain-encoded page that yields at most
// maxCount values.
func NewPlainCursor(data []byte, maxCount int) *encoding.PlainCursor {
	return encoding.NewPlainCursor(data, maxCount)
}

// EncodePlain frames values with the plain encoding.
func EncodePlain(values [][]byte) ([]byte, error) {
	return encoding.EncodePlain(values)
}

// DecodeBinary decodes a plain-encoded page of numValues entries into 32-bit offsets
// and value bytes. validity marks present entries; nil means all are present. Null
// entries become empty values.
func DecodeBinary(data []byte, numValues int, validity []bool) ([]int32, []byte, error) {
	return decode[int32](data, numValues, validity)
}

// DecodeLargeBinary is like DecodeBinary but produces 64-bit offsets.
func DecodeLargeBinary(data []byte, numValues int, validity []bool) ([]int64, []byte, error) {
	return decode[int64](data, numValues, validity)
}

func decode[O offset.Offset](data []byte, numValues int, validity []bool) ([]O, []byte, error) {
	builder, err := encoding.NewBinaryBuilder[O](numValues)
	if err != nil {
		return nil, nil, err
	}

	if err := encoding.DecodePlain(builder, data, numValues, validity); err != nil {
		return nil, nil, err
	}

	offsets, values := builder.Take()

	return offsets, values, nil
}
