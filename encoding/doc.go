// Package encoding builds and parses variable-length binary columns.
//
// # Layout
//
// A binary column of N values is two buffers:
//
//	offsets: [0, len(v0), len(v0)+len(v1), ..., total]   (N+1 entries, int32 or int64)
//	values:  v0 v1 v2 ...                                  (total bytes, no delimiters)
//
// Value i is values[offsets[i]:offsets[i+1]]. BinaryBuilder produces this layout.
//
// # Plain Encoding
//
// Pages carry the values framed one after another:
//
//	[len0:uint32 LE][v0 bytes][len1:uint32 LE][v1 bytes]...
//
// Only present (non-null) values are framed; the caller's validity bitmap says which
// positions they belong to. PlainCursor reads this framing and PlainEncoder writes it.
//
// # Decoding a Page
//
//	builder, err := encoding.NewBinaryBuilder[int32](numValues)
//	if err != nil {
//	    return err
//	}
//	if err := encoding.DecodePlain(builder, page, numValues, validity); err != nil {
//	    return err
//	}
//	offsets, values := builder.Take()
//
// # Errors
//
// Input problems are returned as errors that wrap a sentinel:
//   - ErrCorruptEncoding: a page ends inside a length prefix or a value
//   - ErrOffsetOverflow: the column's total byte length does not fit the offset width
//   - ErrValueTooLarge: a value longer than a uint32 prefix can describe
//
// Broken caller contracts panic instead: leftover bytes once the expected count has been
// read, a non-empty value passed to BinaryBuilder.ExtendConstantValue, or using a
// BinaryBuilder after Take.
//
// # Memory
//
// BinaryBuilder sizes its value buffer for at most DefaultSamplingThreshold values of
// DefaultBytesPerValueEstimate bytes. After DefaultSamplingThreshold pushes it measures
// the real average once and, if the capacity hint is larger, grows the buffer to fit
// the whole hint. PlainCursor never copies: every value it returns aliases the page.
//
// # Thread Safety
//
// None of the types in this package are safe for concurrent use.
package encoding
